package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskdesk/pkg/domain"
	dErrors "riskdesk/pkg/domain-errors"
)

type themeRequest struct {
	Name       string `json:"name"`
	normalized bool
}

func (r *themeRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.normalized = true
}

func (r *themeRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

type codedRequest struct{}

func (r *codedRequest) Validate() error {
	return dErrors.New(dErrors.CodeConflict, "already exists")
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestDecodeJSON(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"name":"Access control"}`))
		w := httptest.NewRecorder()

		got, ok := DecodeJSON[themeRequest](w, req, quietLogger(), ctx, "rid")

		require.True(t, ok)
		assert.Equal(t, "Access control", got.Name)
	})

	t.Run("invalid json is a 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{nope`))
		w := httptest.NewRecorder()

		got, ok := DecodeJSON[themeRequest](w, req, quietLogger(), ctx, "rid")

		assert.False(t, ok)
		assert.Nil(t, got)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "bad_request", decodeError(t, w).Error)
	})
}

func TestDecodeJSON_Messages(t *testing.T) {
	cases := map[string]struct {
		body    string
		limit   int64
		message string
	}{
		"empty":     {body: "", message: "request body is required"},
		"truncated": {body: `{"name":"x"`, message: "request body is truncated"},
		"syntax":    {body: `{nope`, message: "malformed JSON at offset 2"},
		"type":      {body: `{"name":5}`, message: "name must be a string"},
		"too large": {body: `{"name":"Governance"}`, limit: 4, message: "request body must not exceed 4 bytes"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			if tc.limit > 0 {
				req.Body = http.MaxBytesReader(w, req.Body, tc.limit)
			}

			_, ok := DecodeJSON[themeRequest](w, req, quietLogger(), context.Background(), "rid")

			require.False(t, ok)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.message, decodeError(t, w).ErrorDescription)
		})
	}
}

func TestDecodeAndPrepare(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes before validating", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"name":"  Governance  "}`))
		w := httptest.NewRecorder()

		got, ok := DecodeAndPrepare[themeRequest](w, req, quietLogger(), ctx, "rid")

		require.True(t, ok)
		assert.True(t, got.normalized)
		assert.Equal(t, "Governance", got.Name)
	})

	t.Run("plain validation errors become validation_error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"name":"   "}`))
		w := httptest.NewRecorder()

		_, ok := DecodeAndPrepare[themeRequest](w, req, quietLogger(), ctx, "rid")

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, "validation_error", body.Error)
		assert.Equal(t, "name is required", body.ErrorDescription)
	})

	t.Run("domain errors keep their code", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()

		_, ok := DecodeAndPrepare[codedRequest](w, req, quietLogger(), ctx, "rid")

		assert.False(t, ok)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestWriteError(t *testing.T) {
	cases := []struct {
		err        error
		status     int
		code       string
		descriptor string
	}{
		{dErrors.New(dErrors.CodeNotFound, "audit not found"), http.StatusNotFound, "not_found", "audit not found"},
		{dErrors.New(dErrors.CodeUpstreamFailed, "enrichment service returned invalid JSON"), http.StatusBadGateway, "upstream_error", "enrichment service returned invalid JSON"},
		{dErrors.New(dErrors.CodeUnavailable, ""), http.StatusServiceUnavailable, "service_unavailable", GenericErrorMessage},
		{dErrors.Wrap(errors.New("pq: relation missing"), dErrors.CodeInternal, "list audits"), http.StatusInternalServerError, "internal_error", GenericErrorMessage},
		{errors.New("raw"), http.StatusInternalServerError, "internal_error", GenericErrorMessage},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		WriteError(w, tc.err)

		assert.Equal(t, tc.status, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, tc.code, body.Error)
		assert.Equal(t, tc.descriptor, body.ErrorDescription)
	}
}

func TestPathID(t *testing.T) {
	r := chi.NewRouter()
	var got domain.AuditID
	r.Get("/audits/{id}", func(w http.ResponseWriter, r *http.Request) {
		auditID, ok := PathID(w, r, "id", domain.ParseAuditID)
		if !ok {
			return
		}
		got = auditID
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/audits/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/audits/6f1f2a56-1d5e-4c36-9df1-0b1c1f7a5a10", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "6f1f2a56-1d5e-4c36-9df1-0b1c1f7a5a10", got.String())
}
