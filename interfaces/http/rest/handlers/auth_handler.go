package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/Zzzisey/hackson/application/services"
	"github.com/Zzzisey/hackson/pkg/common"
	apperrors "github.com/Zzzisey/hackson/pkg/errors"
	"github.com/Zzzisey/hackson/pkg/utils"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	auth   *services.AuthService
	logger *zap.Logger
}

// NewAuthHandler creates the auth endpoints.
func NewAuthHandler(auth *services.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"max=200"`
}

// LoginRequest is the JSON login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := common.ParseJSONBody(r, &req, maxRequestBody); err != nil {
		writeError(w, h.logger, apperrors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		writeError(w, h.logger, apperrors.NewValidationError(err.Error()))
		return
	}

	u, err := h.auth.Register(r.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, u)
}

// Login handles POST /api/auth/login, the form-encoded flow where the email
// travels in the username field.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, h.logger, apperrors.NewValidationError("invalid form body"))
		return
	}

	email := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		writeError(w, h.logger, apperrors.NewValidationError("username and password are required"))
		return
	}

	h.issueToken(w, r, email, password)
}

// LoginJSON handles POST /api/auth/login-json.
func (h *AuthHandler) LoginJSON(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := common.ParseJSONBody(r, &req, maxRequestBody); err != nil {
		writeError(w, h.logger, apperrors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		writeError(w, h.logger, apperrors.NewValidationError(err.Error()))
		return
	}

	h.issueToken(w, r, req.Email, req.Password)
}

func (h *AuthHandler) issueToken(w http.ResponseWriter, r *http.Request, email, password string) {
	token, err := h.auth.Login(r.Context(), email, password)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, token)
}
