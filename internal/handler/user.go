package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/sneakercollection/sneakercollection-go/internal/model"
)

// UserService is the user business-logic seam the handler depends on.
type UserService interface {
	Add(ctx context.Context, dto model.UserLoginDTO) (model.UserDTO, error)
	Get(ctx context.Context, q model.PageQuery) ([]model.UserDTO, error)
	GetByID(ctx context.Context, id int) (model.UserDTO, error)
	GetByEmail(ctx context.Context, email string) (model.UserDTO, error)
	Update(ctx context.Context, dto model.UserUpdateDTO) (model.UserDTO, error)
	Delete(ctx context.Context, id int) error
}

// UserHandler handles HTTP requests for user CRUD.
type UserHandler struct {
	service  UserService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{service: svc, validate: validator.New()}
}

// HandleGet handles GET /api/User requests (paginated listing).
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	q := model.ParsePageQuery(r.URL.Query(), model.DefaultUserSort)

	users, err := h.service.Get(r.Context(), q)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondData(w, http.StatusOK, users)
}

// HandleGetByID handles GET /api/User/{id} requests.
func (h *UserHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	user, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondData(w, http.StatusOK, user)
}

// HandleGetByEmail handles GET /api/User/GetByEmail?email= requests.
func (h *UserHandler) HandleGetByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if err := h.validate.Var(email, "required,email"); err != nil {
		respondError(w, http.StatusBadRequest, "a valid email query parameter is required")
		return
	}

	user, err := h.service.GetByEmail(r.Context(), email)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondData(w, http.StatusOK, user)
}

// HandleCreate handles POST /api/User requests. This route is anonymous so
// new users can register.
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
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

	user, err := h.service.Add(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondData(w, http.StatusCreated, user)
}

// HandleUpdate handles PATCH /api/User requests.
func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req model.UserUpdateDTO
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

	user, err := h.service.Update(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondData(w, http.StatusOK, user)
}

// HandleDelete handles DELETE /api/User/{id} requests.
func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID parses the {id} route parameter, answering 400 on garbage.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		respondError(w, http.StatusBadRequest, "id must be a positive integer")
		return 0, false
	}
	return id, true
}
