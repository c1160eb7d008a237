package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVendorHandler_Create(t *testing.T) {
	t.Run("creates vendor and returns the record", func(t *testing.T) {
		engine := newTestServer(t)

		w := performRequest(engine, http.MethodPost, "/vendors", `{"name":"Acme","contact":"555-0100"}`)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":1,"name":"Acme","contact":"555-0100"}`, w.Body.String())
	})

	t.Run("accepts an empty body", func(t *testing.T) {
		engine := newTestServer(t)

		w := performRequest(engine, http.MethodPost, "/vendors", `{}`)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":1,"name":"","contact":""}`, w.Body.String())
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		engine := newTestServer(t)

		w := performRequest(engine, http.MethodPost, "/vendors", `{"name":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid request body"}`, w.Body.String())
	})
}

func TestVendorHandler_List(t *testing.T) {
	t.Run("empty store serializes as an array", func(t *testing.T) {
		engine := newTestServer(t)

		w := performRequest(engine, http.MethodGet, "/vendors", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("returns all vendors", func(t *testing.T) {
		engine := newTestServer(t)
		performRequest(engine, http.MethodPost, "/vendors", `{"name":"Acme","contact":"555-0100"}`)
		performRequest(engine, http.MethodPost, "/vendors", `{"name":"Globex","contact":"555-0200"}`)

		w := performRequest(engine, http.MethodGet, "/vendors", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[
			{"id":1,"name":"Acme","contact":"555-0100"},
			{"id":2,"name":"Globex","contact":"555-0200"}
		]`, w.Body.String())
	})
}

func TestVendorHandler_Update(t *testing.T) {
	t.Run("echoes the new fields", func(t *testing.T) {
		engine := newTestServer(t)
		performRequest(engine, http.MethodPost, "/vendors", `{"name":"Acme","contact":"555-0100"}`)

		w := performRequest(engine, http.MethodPut, "/vendors/1", `{"name":"Acme Industries","contact":""}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":1,"name":"Acme Industries","contact":""}`, w.Body.String())
	})

	t.Run("unknown id yields 404", func(t *testing.T) {
		engine := newTestServer(t)

		w := performRequest(engine, http.MethodPut, "/vendors/9999", `{"name":"Ghost","contact":""}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Vendor not found"}`, w.Body.String())
	})

	t.Run("non-numeric id yields 400", func(t *testing.T) {
		engine := newTestServer(t)

		w := performRequest(engine, http.MethodPut, "/vendors/abc", `{"name":"Acme","contact":""}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid vendor ID"}`, w.Body.String())
	})
}

func TestVendorHandler_Delete(t *testing.T) {
	t.Run("deletes and returns an empty 204", func(t *testing.T) {
		engine := newTestServer(t)
		performRequest(engine, http.MethodPost, "/vendors", `{"name":"Acme","contact":"555-0100"}`)

		w := performRequest(engine, http.MethodDelete, "/vendors/1", "")

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("second delete yields 404", func(t *testing.T) {
		engine := newTestServer(t)
		performRequest(engine, http.MethodPost, "/vendors", `{"name":"Acme","contact":"555-0100"}`)
		performRequest(engine, http.MethodDelete, "/vendors/1", "")

		w := performRequest(engine, http.MethodDelete, "/vendors/1", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Vendor not found"}`, w.Body.String())
	})
}
