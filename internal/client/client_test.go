package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveResponse(t *testing.T) {
	var got SaveResponsePayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/responses", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"ok":true,"id":"01ABC"}`))
	}))
	defer srv.Close()

	res, err := New(srv.URL+"/", 0).SaveResponse(context.Background(), SaveResponsePayload{Name: "Alex", LoveAnswer: "like_you", Wish: "all"})
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, "01ABC", res.ID)
	assert.Equal(t, "Alex", got.Name)
	assert.Equal(t, "like_you", string(got.LoveAnswer))
}

func TestSaveResponseErrorCarriesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"error":"Invalid wish"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, 0).SaveResponse(context.Background(), SaveResponsePayload{Wish: "gold"})
	require.Error(t, err)
	assert.Equal(t, `{"ok":false,"error":"Invalid wish"}`, err.Error())

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadRequest, se.Code)
}

func TestSaveResponseEmptyErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL, 0).SaveResponse(context.Background(), SaveResponsePayload{})
	require.Error(t, err)
	assert.Equal(t, "Failed to save response (502)", err.Error())
}
