package middleware

import (
	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// HandleError writes err's message as the JSON error body.
func HandleError(resp *restful.Response, err error, status int) {
	WriteError(resp, err.Error(), status)
}

// WriteError writes a fixed message, hiding the underlying cause from the client.
func WriteError(resp *restful.Response, message string, status int) {
	if writeErr := resp.WriteHeaderAndEntity(status, ErrorResponse{
		Error: message,
		Code:  status,
	}); writeErr != nil {
		log.Error().Err(writeErr).Msg("Failed to write error response")
	}
}
