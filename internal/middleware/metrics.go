// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"blog-publisher/internal/metrics"
)

const (
	// unmatchedRoute labels every request that hit no registered route.
	unmatchedRoute = "unmatched"
	// otherMethod labels requests whose method the API never serves.
	otherMethod = "OTHER"
)

// unobservedPaths are probe and scrape endpoints left out of HTTP metrics.
var unobservedPaths = map[string]bool{
	"/metrics": true,
	"/live":    true,
}

var knownMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodOptions: true,
}

// Metrics returns a Gin middleware that records Prometheus metrics for HTTP requests.
// Labels come only from route templates and a fixed method set, so client-chosen
// paths such as image filenames never create new series.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if unobservedPaths[c.FullPath()] {
			c.Next()
			return
		}

		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		method, route := requestLabels(c)
		metrics.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
	}
}

func requestLabels(c *gin.Context) (method, route string) {
	method = c.Request.Method
	if !knownMethods[method] {
		method = otherMethod
	}
	route = c.FullPath()
	if route == "" {
		route = unmatchedRoute
	}
	return method, route
}
