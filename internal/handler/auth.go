package handler

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/sneakercollection/sneakercollection-go/internal/model"
)

// AuthService is the authentication seam the handler depends on.
// GenerateToken must only be called after Authenticate has succeeded.
type AuthService interface {
	Authenticate(ctx context.Context, login model.UserLoginDTO) (bool, error)
	GenerateToken(email string) (string, error)
}

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	service  AuthService
	validate *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc AuthService) *AuthHandler {
	return &AuthHandler{service: svc, validate: validator.New()}
}

// HandleAuthenticate handles POST /api/Authentication requests.
func (h *AuthHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	var req model.UserLoginDTO
	if !bindJSON(w, r, &req) {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			respondValidationError(w, errs)
			return
		}
		respondError(w, http.StatusBadRequest, "invalid request")
		return
	}

	ok, err := h.service.Authenticate(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if !ok {
		respondError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := h.service.GenerateToken(req.Email)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondData(w, http.StatusOK, token)
}
