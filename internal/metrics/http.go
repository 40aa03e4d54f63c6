package metrics

import (
	"strconv"

	restful "github.com/emicklei/go-restful/v3"
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPRequestsTotal is fed by Filter.
var HTTPRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "bylaw_search",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests",
	},
	[]string{"method", "path", "status"},
)

// Filter counts requests per route template.
func Filter(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	chain.ProcessFilter(req, resp)

	path := req.SelectedRoutePath()
	if path == "" {
		path = "unmatched"
	}
	HTTPRequestsTotal.WithLabelValues(req.Request.Method, path, strconv.Itoa(resp.StatusCode())).Inc()
}
