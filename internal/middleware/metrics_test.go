package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"blog-publisher/internal/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("labels requests by route template", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.GET("/api/blogs/:id", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"rows": []string{}})
		})

		initialTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/api/blogs/:id", "200"))
		initialInFlight := testutil.ToFloat64(metrics.HTTPRequestsInFlight)

		for _, id := range []string{"1", "2"} {
			req := httptest.NewRequest(http.MethodGet, "/api/blogs/"+id, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}

		newTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/api/blogs/:id", "200"))
		assert.Equal(t, initialTotal+2, newTotal)
		assert.Equal(t, initialInFlight, testutil.ToFloat64(metrics.HTTPRequestsInFlight))
	})

	t.Run("records error statuses", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.DELETE("/api/comment/delete/:commentId", func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		})

		initialTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("DELETE", "/api/comment/delete/:commentId", "404"))

		req := httptest.NewRequest(http.MethodDelete, "/api/comment/delete/9", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		newTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("DELETE", "/api/comment/delete/:commentId", "404"))
		assert.Equal(t, initialTotal+1, newTotal)
	})

	t.Run("groups unmatched routes", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())

		initialTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404"))

		req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		newTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404"))
		assert.Equal(t, initialTotal+1, newTotal)
	})

	t.Run("client-chosen paths never add series", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.GET("/api/:filename", func(c *gin.Context) {
			c.Status(http.StatusNotFound)
		})

		initialImages := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/api/:filename", "404"))
		initialUnmatched := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(otherMethod, unmatchedRoute, "404"))

		for _, name := range []string{"a.png", "b.jpg", "random-0001", "random-0002"} {
			req := httptest.NewRequest(http.MethodGet, "/api/"+name, nil)
			router.ServeHTTP(httptest.NewRecorder(), req)
		}
		for _, method := range []string{"PROPFIND", "X-SCAN"} {
			req := httptest.NewRequest(method, "/deep/"+method, nil)
			router.ServeHTTP(httptest.NewRecorder(), req)
		}

		assert.Equal(t, initialImages+4, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/api/:filename", "404")))
		assert.Equal(t, initialUnmatched+2, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(otherMethod, unmatchedRoute, "404")))
	})

	t.Run("skips scrape and liveness endpoints", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.GET("/metrics", func(c *gin.Context) {
			c.String(http.StatusOK, "metrics data")
		})
		router.GET("/live", func(c *gin.Context) {
			c.String(http.StatusOK, "alive")
		})

		initialMetrics := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/metrics", "200"))
		initialLive := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/live", "200"))

		for _, path := range []string{"/metrics", "/live"} {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}

		assert.Equal(t, initialMetrics, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/metrics", "200")))
		assert.Equal(t, initialLive, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/live", "200")))
	})
}
