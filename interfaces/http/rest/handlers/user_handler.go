package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/Zzzisey/hackson/application/ports"
	"github.com/Zzzisey/hackson/domain/user"
	"github.com/Zzzisey/hackson/pkg/auth"
	"github.com/Zzzisey/hackson/pkg/common"
	apperrors "github.com/Zzzisey/hackson/pkg/errors"
)

// UserHandler serves account reads. All routes sit behind strict auth.
type UserHandler struct {
	users  ports.UserStore
	logger *zap.Logger
}

// NewUserHandler creates the user endpoints.
func NewUserHandler(users ports.UserStore, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// Me handles GET /api/users/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}
	common.RespondJSON(w, http.StatusOK, u)
}

// List handles GET /api/users/.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page := common.ExtractPageParams(r)

	users, err := h.users.List(r.Context(), page.Skip, page.Limit)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if users == nil {
		users = []*user.User{}
	}
	common.RespondJSON(w, http.StatusOK, users)
}
