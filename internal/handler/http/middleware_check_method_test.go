// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func buildRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Get("/flat", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Route("/nested", func(r chi.Router) {
		r.Get("/items/{id}", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
		r.Post("/", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusCreated) })
	})
	r.MethodNotAllowed(CheckHTTPMethod)
	return r
}

func TestCheckHTTPMethod(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{method: http.MethodGet, path: "/flat", want: http.StatusOK},
		{method: http.MethodPost, path: "/flat", want: http.StatusNotFound},
		{method: http.MethodGet, path: "/nested/items/42", want: http.StatusOK},
		{method: http.MethodDelete, path: "/nested/items/42", want: http.StatusNotFound},
		{method: http.MethodPost, path: "/nested/", want: http.StatusCreated},
		{method: http.MethodGet, path: "/nested/", want: http.StatusNotFound},
		{method: http.MethodGet, path: "/missing", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}
