package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		method        string
		path          string
		status        int
		providedReqID string
		wantLogFields []string
	}{
		{
			name:   "logs GET request with generated ID",
			method: http.MethodGet,
			path:   "/api/v1/estimates",
			status: http.StatusOK,
			wantLogFields: []string{
				"level=INFO",
				"method=GET",
				"path=/api/v1/estimates",
				"status=200",
				"duration_ms=",
				"remote_ip=",
				"request_id=",
			},
		},
		{
			name:   "logs POST request",
			method: http.MethodPost,
			path:   "/api/v1/quotes",
			status: http.StatusCreated,
			wantLogFields: []string{
				"method=POST",
				"status=201",
			},
		},
		{
			name:   "client errors log at warn",
			method: http.MethodGet,
			path:   "/api/v1/shops/missing",
			status: http.StatusNotFound,
			wantLogFields: []string{
				"level=WARN",
				"status=404",
			},
		},
		{
			name:   "server errors log at error",
			method: http.MethodPost,
			path:   "/api/v1/quotes",
			status: http.StatusBadGateway,
			wantLogFields: []string{
				"level=ERROR",
				"status=502",
			},
		},
		{
			name:          "uses provided request ID",
			method:        http.MethodGet,
			path:          "/test",
			status:        http.StatusOK,
			providedReqID: "custom-req-id-123",
			wantLogFields: []string{
				"request_id=custom-req-id-123",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			e := echo.New()
			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			if tt.providedReqID != "" {
				req.Header.Set(requestIDHeader, tt.providedReqID)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			handler := RequestLog(logger)(func(c echo.Context) error {
				ctxID = RequestID(c.Request().Context())
				return c.NoContent(tt.status)
			})

			require.NoError(t, handler(c))

			logOutput := buf.String()
			for _, field := range tt.wantLogFields {
				assert.Contains(t, logOutput, field)
			}

			respID := rec.Header().Get(requestIDHeader)
			assert.NotEmpty(t, respID)
			assert.Equal(t, respID, ctxID, "handlers see the same ID through the request context")
			assert.Equal(t, respID, c.Get("request_id"))

			if tt.providedReqID != "" {
				assert.Equal(t, tt.providedReqID, respID)
			}
		})
	}
}

func TestRequestLog_HandlerError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/estimates/nope", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestLog(logger)(func(_ echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "estimate not found")
	})

	require.NoError(t, handler(c), "the error is rendered before logging")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, buf.String(), "status=404")
}

func TestRequestLog_UnexpectedError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/boom", http.NoBody)
	rec := httptest.NewRecorder()

	handler := RequestLog(logger)(func(_ echo.Context) error {
		return errors.New("boom")
	})

	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), "level=ERROR")
}

func TestRequestID_Missing(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	assert.Empty(t, RequestID(req.Context()))
}
