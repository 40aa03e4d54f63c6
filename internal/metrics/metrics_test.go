package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	restful "github.com/emicklei/go-restful/v3"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRegister_Idempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Register()
		Register()
	})
}

func TestFilter_CountsByRoute(t *testing.T) {
	container := restful.NewContainer()
	container.Filter(Filter)

	ws := new(restful.WebService)
	ws.Path("/api")
	ws.Route(ws.GET("/ping").To(func(req *restful.Request, resp *restful.Response) {
		resp.WriteHeader(http.StatusNoContent)
	}))
	container.Add(ws)

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/ping", "204"))

	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/ping", "204"))
	assert.Equal(t, before+1, after)
}
