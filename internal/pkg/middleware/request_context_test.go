package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/optimat/internal/pkg/requestcontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestContextMiddleware_GeneratesIDs(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenRequestID, seenService string
	h := RequestContextMiddleware("provider-service")(func(c echo.Context) error {
		seenRequestID = requestcontext.GetRequestID(c.Request().Context())
		seenService = requestcontext.GetServiceName(c.Request().Context())
		return nil
	})

	require.NoError(t, h(c))

	assert.NotEmpty(t, seenRequestID)
	assert.Equal(t, "provider-service", seenService)
	assert.Equal(t, seenRequestID, rec.Header().Get(echo.HeaderXRequestID))
	assert.NotEmpty(t, rec.Header().Get(requestcontext.HeaderTraceID))
	require.NotNil(t, GetRequestContext(c))
	assert.Equal(t, seenRequestID, GetRequestContext(c).RequestID)
}

func TestRequestContextMiddleware_KeepsInboundIDs(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-from-gateway")
	req.Header.Set(requestcontext.HeaderTraceID, "trace-from-gateway")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := RequestContextMiddleware("provider-service")(func(c echo.Context) error {
		assert.Equal(t, "trace-from-gateway", requestcontext.GetTraceID(c.Request().Context()))
		return nil
	})

	require.NoError(t, h(c))
	assert.Equal(t, "req-from-gateway", rec.Header().Get(echo.HeaderXRequestID))
}

func TestGetRequestContext_Missing(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Nil(t, GetRequestContext(c))
}
