package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"technocy-server/middleware"
	"technocy-server/utils"
)

func requestWithClaims(email string, vars map[string]string) *http.Request {
	req := httptest.NewRequest("GET", "/", nil)
	if email != "" {
		claims := &utils.Claims{Email: email}
		req = req.WithContext(context.WithValue(req.Context(), middleware.UserContextKey, claims))
	}
	return mux.SetURLVars(req, vars)
}

func TestCheckAdminRejectsOtherCallersEmail(t *testing.T) {
	uc := &UserController{}

	req := requestWithClaims("alice@example.com", map[string]string{"email": "bob@example.com"})
	rec := httptest.NewRecorder()

	uc.CheckAdmin(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Forbidden-Access", body["message"])
}

func TestCheckAdminWithoutClaims(t *testing.T) {
	uc := &UserController{}

	req := requestWithClaims("", map[string]string{"email": "alice@example.com"})
	rec := httptest.NewRecorder()

	uc.CheckAdmin(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Unauthorized-Access", body["message"])
}

func TestGetPaymentsByEmailWithoutClaims(t *testing.T) {
	pc := &PaymentController{}

	req := requestWithClaims("", map[string]string{"email": "alice@example.com"})
	rec := httptest.NewRecorder()

	pc.GetPaymentsByEmail(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Unauthorized-Access", body["message"])
}

func TestGetPaymentsByEmailRejectsOtherCallersEmail(t *testing.T) {
	pc := &PaymentController{}

	req := requestWithClaims("alice@example.com", map[string]string{"email": "bob@example.com"})
	rec := httptest.NewRecorder()

	pc.GetPaymentsByEmail(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Forbidden-Access", body["message"])
}
