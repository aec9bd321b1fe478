// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Raphalinho91

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusConflict)
	w.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusConflict, w.Status())
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestResponseWriter_CountsBytes(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	n1, err := w.Write([]byte("hello "))
	assert.NoError(t, err)
	n2, err := w.Write([]byte("world"))
	assert.NoError(t, err)

	assert.Equal(t, 6, n1)
	assert.Equal(t, 5, n2)
	assert.Equal(t, 11, w.size)
	assert.Equal(t, http.StatusOK, w.Status())
	assert.Equal(t, "hello world", rr.Body.String())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	assert.Same(t, rr, w.Unwrap())
}
