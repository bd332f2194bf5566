package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func traceIDRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(TraceIDMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return router
}

func TestTraceIDGenerated(t *testing.T) {
	router := traceIDRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	got := rec.Header().Get(TraceIDHeader)
	_, err := uuid.Parse(got)
	require.NoError(t, err)
}

func TestTraceIDPropagated(t *testing.T) {
	router := traceIDRouter()
	inbound := uuid.New().String()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(TraceIDHeader, inbound)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, inbound, rec.Header().Get(TraceIDHeader))
}

func TestTraceIDRejectsNonUUID(t *testing.T) {
	router := traceIDRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(TraceIDHeader, "not-a-uuid\r\ninjected")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	got := rec.Header().Get(TraceIDHeader)
	_, err := uuid.Parse(got)
	require.NoError(t, err)
	require.NotContains(t, got, "injected")
}
