package api

import (
	"encoding/json"
	"net/http"

	"github.com/example/bookshop/internal/auth"
	"github.com/example/bookshop/internal/storefront"
)

type AuthHandlers struct {
	controller   *storefront.Controller
	jwtService   *auth.JWTService
	passwordHash string
}

func NewAuthHandlers(controller *storefront.Controller, jwtService *auth.JWTService, passwordHash string) *AuthHandlers {
	return &AuthHandlers{
		controller:   controller,
		jwtService:   jwtService,
		passwordHash: passwordHash,
	}
}

// Login checks the admin password and issues a session token. This is a
// capability toggle, not account auth: there is a single admin
// credential and a single role.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !auth.CheckPassword(req.Password, h.passwordHash) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, expiresAt, err := h.jwtService.GenerateAdminToken()
	if err != nil {
		http.Error(w, "failed to issue token", http.StatusInternalServerError)
		return
	}

	h.controller.Login()

	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
	})
	respondJSON(w, http.StatusOK, map[string]any{
		"access_token": token,
		"expires_at":   expiresAt,
	})
}

// Logout drops the admin capability.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.controller.Logout()
	http.SetCookie(w, &http.Cookie{
		Name:   "access_token",
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	w.WriteHeader(http.StatusOK)
}
