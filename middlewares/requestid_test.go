package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/cln-solutions/contactform/internal"
	"github.com/cln-solutions/contactform/middlewares"
)

func runRequestID(t *testing.T, req *http.Request, opts ...middlewares.RequestIDOption) (*httptest.ResponseRecorder, string) {
	t.Helper()

	rec := httptest.NewRecorder()
	ctx := newTestContext(rec, req)

	var captured string
	err := middlewares.RequestID(opts...)(func(c internal.Context) error {
		captured = middlewares.GetRequestID(c)
		return nil
	})(ctx)
	require.NoError(t, err)
	return rec, captured
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generates a UUID when not present", func(t *testing.T) {
		t.Parallel()

		rec, id := runRequestID(t, httptest.NewRequest(http.MethodGet, "/", nil))
		require.NotEmpty(t, id)
		require.Equal(t, id, rec.Header().Get("X-Request-ID"))
		_, err := uuid.Parse(id)
		require.NoError(t, err)
	})

	t.Run("uses existing request ID from header", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "existing-request-id-123")

		rec, id := runRequestID(t, req)
		require.Equal(t, "existing-request-id-123", id)
		require.Equal(t, "existing-request-id-123", rec.Header().Get("X-Request-ID"))
	})

	t.Run("falls back to correlation header", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Correlation-ID", "corr-789")

		_, id := runRequestID(t, req)
		require.Equal(t, "corr-789", id)
	})

	t.Run("replaces unsafe upstream IDs", func(t *testing.T) {
		t.Parallel()

		for _, bad := range []string{"has space", strings.Repeat("a", 200), "tab\there"} {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("X-Request-ID", bad)

			_, id := runRequestID(t, req)
			require.NotEqual(t, bad, id)
			_, err := uuid.Parse(id)
			require.NoError(t, err)
		}
	})

	t.Run("custom headers in priority order", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Trace-ID", "trace-456")

		_, id := runRequestID(t, req, middlewares.WithRequestIDHeaders("X-Custom-ID", "X-Trace-ID"))
		require.Equal(t, "trace-456", id)
	})

	t.Run("custom generator and response header", func(t *testing.T) {
		t.Parallel()

		rec, id := runRequestID(t, httptest.NewRequest(http.MethodGet, "/", nil),
			middlewares.WithRequestIDGenerator(func() string { return "generated-123" }),
			middlewares.WithRequestIDResponseHeader("X-Response-ID"),
		)
		require.Equal(t, "generated-123", id)
		require.Equal(t, "generated-123", rec.Header().Get("X-Response-ID"))
		require.Empty(t, rec.Header().Get("X-Request-ID"))
	})
}

func TestGetRequestID_NotSet(t *testing.T) {
	t.Parallel()

	ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Empty(t, middlewares.GetRequestID(ctx))
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	t.Run("returns attribute when request ID present", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "abc")
		ctx := newTestContext(httptest.NewRecorder(), req)

		var attrOK bool
		var value string
		err := middlewares.RequestID()(func(c internal.Context) error {
			attr, ok := middlewares.RequestIDExtractor()(c.Context())
			attrOK, value = ok, attr.Value.String()
			return nil
		})(ctx)
		require.NoError(t, err)
		require.True(t, attrOK)
		require.Equal(t, "abc", value)
	})

	t.Run("returns false when no request ID in context", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		_, ok := middlewares.RequestIDExtractor()(ctx.Context())
		require.False(t, ok)
	})
}
