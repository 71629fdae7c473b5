package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	t.Run("internal error omits description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, http.StatusInternalServerError, "internal_error", "db failed")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var body map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "internal_error", body["error"])
		assert.NotContains(t, body, "error_description")
	})

	t.Run("bad request includes description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, http.StatusBadRequest, "bad_request", "invalid input")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "invalid input", body["error_description"])
	})
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	got, err := DecodeJSON[payload](httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`)))
	require.NoError(t, err)
	assert.Equal(t, "x", got.Name)

	got, err = DecodeJSON[payload](httptest.NewRequest(http.MethodPost, "/", http.NoBody))
	require.NoError(t, err)
	assert.Empty(t, got.Name)

	_, err = DecodeJSON[payload](httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`)))
	assert.Error(t, err)
}
