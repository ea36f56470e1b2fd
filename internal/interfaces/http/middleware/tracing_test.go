package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/appsmart/backend/internal/infrastructure/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func setupTestTracer(t *testing.T) (*sdktrace.TracerProvider, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() {
		_ = tp.Shutdown(t.Context())
	})
	return tp, sr
}

func newTracedRouter(tp *sdktrace.TracerProvider) *gin.Engine {
	router := gin.New()
	router.Use(
		RequestID(),
		TracingWithConfig(TracingConfig{ServiceName: "test", Enabled: true, TracerProvider: tp}),
		SpanEnricher(),
	)
	router.GET("/api/v1/customers/:customerId", func(c *gin.Context) {
		c.Set(PrincipalKey, auth.Principal{Username: "alice"})
		c.String(http.StatusOK, "ok")
	})
	router.GET("/api/v1/products/:productId", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})
	return router
}

func attrValue(span sdktrace.ReadOnlySpan, key string) string {
	for _, kv := range span.Attributes() {
		if string(kv.Key) == key {
			return kv.Value.Emit()
		}
	}
	return ""
}

func TestTracingWithConfig_Disabled(t *testing.T) {
	tp, sr := setupTestTracer(t)

	router := gin.New()
	router.Use(TracingWithConfig(TracingConfig{Enabled: false, TracerProvider: tp}))
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, sr.Ended())
}

func TestTracing_RecordsEnrichedSpan(t *testing.T) {
	tp, sr := setupTestTracer(t)
	router := newTracedRouter(tp)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/42", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	router.ServeHTTP(httptest.NewRecorder(), req)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Contains(t, spans[0].Name(), "/api/v1/customers/:customerId")
	assert.Equal(t, "req-42", attrValue(spans[0], "request_id"))
	assert.Equal(t, "alice", attrValue(spans[0], "enduser.id"))
	assert.NotEqual(t, codes.Error, spans[0].Status().Code)
}

func TestTracing_MarksErrorResponses(t *testing.T) {
	tp, sr := setupTestTracer(t)
	router := newTracedRouter(tp)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/products/1", nil))

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}
