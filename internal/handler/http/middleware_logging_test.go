// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a test request carrying a logger that writes to buf,
// the same way withTraceID attaches one.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "GET user 200",
			method:          http.MethodGet,
			path:            "/user/1",
			handlerStatus:   http.StatusOK,
			handlerResponse: `{"id":1}`,
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/user/1"`,
				`"status":200`,
				`"duration":`,
				`"size":8`,
			},
		},
		{
			name:            "POST advertisement 403",
			method:          http.MethodPost,
			path:            "/advertisment",
			handlerStatus:   http.StatusForbidden,
			handlerResponse: `{"error":"x"}`,
			checkLogContains: []string{
				`"method":"POST"`,
				`"status":403`,
			},
		},
		{
			name:          "DELETE without body",
			method:        http.MethodDelete,
			path:          "/advertisment/3",
			handlerStatus: http.StatusNoContent,
			checkLogContains: []string{
				`"status":204`,
				`"size":0`,
			},
		},
		{
			name:            "query string kept in uri",
			method:          http.MethodGet,
			path:            "/metrics?name=x",
			handlerStatus:   http.StatusOK,
			handlerResponse: "ok",
			checkLogContains: []string{
				`"uri":"/metrics?name=x"`,
			},
		},
	}

	h := newTestHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, &logBuf))

			assert.Equal(t, tt.handlerStatus, rr.Code)
			for _, expected := range tt.checkLogContains {
				assert.Contains(t, logBuf.String(), expected)
			}
		})
	}
}

func TestWithLogging_NeverLogsCredentials(t *testing.T) {
	var logBuf bytes.Buffer
	h := newTestHandler()

	req := makeRequest(http.MethodPost, "/advertisment", &logBuf)
	req.Header.Set(emailHeader, "alice@example.com")
	req.Header.Set(passwordHeader, "s3cretpass")

	h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(httptest.NewRecorder(), req)

	assert.NotContains(t, logBuf.String(), "s3cretpass")
}
