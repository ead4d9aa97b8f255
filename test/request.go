package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"student-wellness-system/internal/global/jwt"
	"student-wellness-system/internal/global/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// DoRequest runs a handler against a JSON body and decodes the response
// envelope.
func DoRequest(t *testing.T, handlerFunc gin.HandlerFunc, request any) response.ResponseBody {
	return DoRequestAs(t, handlerFunc, nil, request)
}

// DoRequestAs does the same with an authenticated payload installed, plus
// optional path parameters.
func DoRequestAs(t *testing.T, handlerFunc gin.HandlerFunc, payload *jwt.Payload, request any, params ...gin.Param) (resp response.ResponseBody) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	requestBytes, err := json.Marshal(request)
	require.NoError(t, err)
	c.Request = httptest.NewRequest(http.MethodPost, "/test", bytes.NewReader(requestBytes))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	if payload != nil {
		c.Set("payload", &jwt.Claims{Payload: *payload})
	}
	handlerFunc(c)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return
}

// DoGet runs a handler against a GET with a raw query string.
func DoGet(t *testing.T, handlerFunc gin.HandlerFunc, payload *jwt.Payload, query string, params ...gin.Param) (resp response.ResponseBody) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	target := "/test"
	if query != "" {
		target += "?" + query
	}
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	c.Params = params
	if payload != nil {
		c.Set("payload", &jwt.Claims{Payload: *payload})
	}
	handlerFunc(c)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return
}

// DoRaw runs a handler and returns the raw recorder, for endpoints that
// stream files instead of JSON.
func DoRaw(t *testing.T, handlerFunc gin.HandlerFunc, payload *jwt.Payload, query string, params ...gin.Param) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	target := "/test"
	if query != "" {
		target += "?" + query
	}
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	c.Params = params
	if payload != nil {
		c.Set("payload", &jwt.Claims{Payload: *payload})
	}
	handlerFunc(c)
	return w
}
