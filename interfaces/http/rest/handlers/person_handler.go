package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Zzzisey/hackson/application/ports"
	"github.com/Zzzisey/hackson/domain/person"
	"github.com/Zzzisey/hackson/pkg/auth"
	"github.com/Zzzisey/hackson/pkg/common"
	apperrors "github.com/Zzzisey/hackson/pkg/errors"
	"github.com/Zzzisey/hackson/pkg/utils"
)

// PersonHandler serves Person CRUD. All routes sit behind strict auth, so
// reads run at full visibility.
type PersonHandler struct {
	persons ports.PersonRepository
	users   ports.UserStore
	logger  *zap.Logger
}

// NewPersonHandler creates the person endpoints.
func NewPersonHandler(persons ports.PersonRepository, users ports.UserStore, logger *zap.Logger) *PersonHandler {
	return &PersonHandler{persons: persons, users: users, logger: logger}
}

// CreatePersonRequest is the node creation payload.
type CreatePersonRequest struct {
	Name            string   `json:"name" validate:"required,max=200"`
	BirthYear       *int     `json:"birth_year" validate:"omitempty,gte=0"`
	DeathYear       *int     `json:"death_year" validate:"omitempty,gte=0"`
	Occupation      []string `json:"occupation"`
	Specialty       []string `json:"specialty"`
	Hobby           []string `json:"hobby"`
	Achievement     *string  `json:"achievement"`
	Type            *string  `json:"type"`
	Frequency       *int     `json:"frequency"`
	Degree          *int     `json:"degree"`
	Description     *string  `json:"description"`
	HumanReadableID *string  `json:"human_readable_id"`
	KnowledgeSource *string  `json:"knowledge_source"`
}

// UpdatePersonRequest is the sparse update payload: absent fields keep their
// stored values.
type UpdatePersonRequest struct {
	Name            *string  `json:"name" validate:"omitempty,max=200"`
	BirthYear       *int     `json:"birth_year" validate:"omitempty,gte=0"`
	DeathYear       *int     `json:"death_year" validate:"omitempty,gte=0"`
	Occupation      []string `json:"occupation"`
	Specialty       []string `json:"specialty"`
	Hobby           []string `json:"hobby"`
	Achievement     *string  `json:"achievement"`
	Type            *string  `json:"type"`
	Frequency       *int     `json:"frequency"`
	Degree          *int     `json:"degree"`
	Description     *string  `json:"description"`
	HumanReadableID *string  `json:"human_readable_id"`
	KnowledgeSource *string  `json:"knowledge_source"`
	IsVerified      *bool    `json:"is_verified"`
}

// Create handles POST /api/persons. The node is tagged user_created and
// attributed to the caller.
func (h *PersonHandler) Create(w http.ResponseWriter, r *http.Request) {
	u, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	var req CreatePersonRequest
	if err := common.ParseJSONBody(r, &req, maxRequestBody); err != nil {
		writeError(w, h.logger, apperrors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		writeError(w, h.logger, apperrors.NewValidationError(err.Error()))
		return
	}

	created, err := h.persons.Create(r.Context(), person.CreateFields{
		Name:            req.Name,
		BirthYear:       req.BirthYear,
		DeathYear:       req.DeathYear,
		Occupation:      req.Occupation,
		Specialty:       req.Specialty,
		Hobby:           req.Hobby,
		Achievement:     req.Achievement,
		Type:            req.Type,
		Frequency:       req.Frequency,
		Degree:          req.Degree,
		Description:     req.Description,
		HumanReadableID: req.HumanReadableID,
		KnowledgeSource: req.KnowledgeSource,
		SourceType:      person.SourceTypeUserCreated,
		CreatedBy:       &u.Email,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	// an account whose registration-time graph write failed gets its
	// back-reference here, on its first successful create
	if u.LinkedPersonID == nil || *u.LinkedPersonID == "" {
		if err := h.users.SetPersonLink(r.Context(), u.ID, created.ID); err != nil {
			h.logger.Warn("person link update failed",
				zap.String("email", u.Email),
				zap.String("person_id", created.ID),
				zap.Error(err))
		}
	}

	common.RespondJSON(w, http.StatusCreated, created)
}

// List handles GET /api/persons.
func (h *PersonHandler) List(w http.ResponseWriter, r *http.Request) {
	page := common.ExtractPageParams(r)

	persons, err := h.persons.List(r.Context(), page.Skip, page.Limit, person.ScopeFull)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, persons)
}

// Get handles GET /api/persons/{id}.
func (h *PersonHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.persons.Get(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, p)
}

// Me handles GET /api/persons/me, the caller's own linked node. Unlinked
// accounts and stale references both read as not found.
func (h *PersonHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}
	if u.LinkedPersonID == nil || *u.LinkedPersonID == "" {
		writeError(w, h.logger, apperrors.NewNotFoundError("linked person"))
		return
	}

	p, err := h.persons.Get(r.Context(), *u.LinkedPersonID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, p)
}

// Update handles PUT /api/persons/{id}. An update carrying no fields is
// rejected rather than treated as a no-op.
func (h *PersonHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdatePersonRequest
	if err := common.ParseJSONBody(r, &req, maxRequestBody); err != nil {
		writeError(w, h.logger, apperrors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		writeError(w, h.logger, apperrors.NewValidationError(err.Error()))
		return
	}

	fields := person.UpdateFields{
		Name:            req.Name,
		BirthYear:       req.BirthYear,
		DeathYear:       req.DeathYear,
		Occupation:      req.Occupation,
		Specialty:       req.Specialty,
		Hobby:           req.Hobby,
		Achievement:     req.Achievement,
		Type:            req.Type,
		Frequency:       req.Frequency,
		Degree:          req.Degree,
		Description:     req.Description,
		HumanReadableID: req.HumanReadableID,
		KnowledgeSource: req.KnowledgeSource,
		IsVerified:      req.IsVerified,
	}
	if fields.IsEmpty() {
		writeError(w, h.logger, apperrors.NewValidationError("no fields to update"))
		return
	}

	p, err := h.persons.Update(r.Context(), id, fields)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, p)
}
