package server

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/flightpath/config"
	"github.com/katalvlaran/flightpath/ingest"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error     string `json:"error"`
	Kind      string `json:"kind"`
	RequestID string `json:"request_id"`
}

func (s *Server) handleHealth(c *gin.Context) {
	if _, err := os.Stat(s.cfg.Dataset); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleSearch decodes a query body over the defaults, pins the dataset to
// the configured one and runs it. The response is the sorted itinerary array.
func (s *Server) handleSearch(c *gin.Context) {
	q := config.DefaultQuery()
	if err := c.ShouldBindJSON(&q); err != nil {
		s.fail(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	q.CSV = s.cfg.Dataset

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.cfg.RequestTimeout)
	defer cancel()

	res, err := s.svc.Run(ctx, q)
	if err != nil {
		status, kind := classify(err)
		s.fail(c, status, kind, err)
		return
	}
	c.JSON(http.StatusOK, res.Itineraries)
}

func (s *Server) fail(c *gin.Context, status int, kind string, err error) {
	c.AbortWithStatusJSON(status, errorBody{
		Error:     err.Error(),
		Kind:      kind,
		RequestID: c.GetString("request_id"),
	})
}

// classify maps a query error to its HTTP status and kind.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, config.ErrInvalid):
		return http.StatusBadRequest, "invalid_query"
	case errors.Is(err, ingest.ErrFileNotFound):
		return http.StatusUnprocessableEntity, "file_not_found"
	case errors.Is(err, ingest.ErrHeaderShape):
		return http.StatusUnprocessableEntity, "header_shape"
	case errors.Is(err, ingest.ErrRowValue):
		return http.StatusUnprocessableEntity, "row_value"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "timeout"
	default:
		return http.StatusInternalServerError, "internal"
	}
}
