package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/povarna/generative-ai-agents/bylaw-search/internal/corpus"
)

const (
	codeUndefinedFunction = "42883"
	codeUndefinedObject   = "42704"
)

// classifyError turns missing extension errors into *corpus.CapabilityError.
func classifyError(err error) error {
	if capability := missingCapability(err); capability != "" {
		return &corpus.CapabilityError{Capability: capability, Err: err}
	}
	return err
}

func missingCapability(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		message := strings.ToLower(pgErr.Message)
		switch pgErr.Code {
		case codeUndefinedFunction:
			if strings.Contains(message, "similarity") {
				return corpus.CapabilityTrigram
			}
			if strings.Contains(message, "<=>") || strings.Contains(message, "vector") {
				return corpus.CapabilityVector
			}
		case codeUndefinedObject:
			if strings.Contains(message, "vector") {
				return corpus.CapabilityVector
			}
		}
	}

	if strings.Contains(err.Error(), "function similarity(text, text) does not exist") {
		return corpus.CapabilityTrigram
	}
	return ""
}
