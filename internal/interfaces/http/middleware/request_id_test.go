package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func requestIDRouter(out *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/x", func(c *gin.Context) {
		*out = c.GetString(RequestIDKey)
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	var got string
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	rec := httptest.NewRecorder()
	requestIDRouter(&got).ServeHTTP(rec, req)

	assert.NotEmpty(t, got)
	_, err := uuid.Parse(got)
	assert.NoError(t, err)
}

func TestRequestIDMiddleware_HonorsIncomingHeader(t *testing.T) {
	var got string
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "req-from-client")
	rec := httptest.NewRecorder()
	requestIDRouter(&got).ServeHTTP(rec, req)

	assert.Equal(t, "req-from-client", got)
}

func TestRequestIDMiddleware_PropagatesToRequestContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())

	var fromCtx string
	r.GET("/x", func(c *gin.Context) {
		if v, ok := c.Request.Context().Value("request_id").(string); ok {
			fromCtx = v
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "ctx-check")
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "ctx-check", fromCtx)
}
