package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const requestIDHeader = "X-Request-ID"

var (
	// httpRequests counts handled requests by route and status code
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "flightpath_http_requests_total",
		Help: "Total HTTP requests by route and status code",
	}, []string{"route", "code"})
)

// requestID echoes X-Request-ID or assigns a fresh UUID.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// accessLog logs one line per request and counts it.
func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		began := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		code := c.Writer.Status()
		httpRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
		s.log.Info("request",
			"request_id", c.GetString("request_id"),
			"method", c.Request.Method,
			"route", route,
			"status", code,
			"elapsed", time.Since(began))
	}
}
