package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/sneakercollection/sneakercollection-go/internal/model"
)

// SneakerService is the sneaker business-logic seam the handler depends on.
type SneakerService interface {
	Add(ctx context.Context, dto model.SneakerCreateDTO) (model.SneakerDTO, error)
	Get(ctx context.Context, q model.PageQuery) ([]model.SneakerDTO, error)
	GetByID(ctx context.Context, id int) (model.SneakerDTO, error)
	GetByUserID(ctx context.Context, userID int) ([]model.SneakerDTO, error)
	GetByUserEmail(ctx context.Context, email string) ([]model.SneakerDTO, error)
	Update(ctx context.Context, dto model.SneakerUpdateDTO) (model.SneakerDTO, error)
	Delete(ctx context.Context, id int) error
}

// SneakerHandler handles HTTP requests for sneaker CRUD.
type SneakerHandler struct {
	service  SneakerService
	validate *validator.Validate
}

// NewSneakerHandler creates a new SneakerHandler.
func NewSneakerHandler(svc SneakerService) *SneakerHandler {
	return &SneakerHandler{service: svc, validate: validator.New()}
}

// HandleGet handles GET /api/Sneaker requests (paginated listing).
func (h *SneakerHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	q := model.ParsePageQuery(r.URL.Query(), model.DefaultSneakerSort)

	sneakers, err := h.service.Get(r.Context(), q)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondData(w, http.StatusOK, sneakers)
}

// HandleGetByID handles GET /api/Sneaker/{id} requests.
func (h *SneakerHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	sneaker, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondData(w, http.StatusOK, sneaker)
}

// HandleGetByUserID handles GET /api/Sneaker/GetByUserId?userId= requests.
func (h *SneakerHandler) HandleGetByUserID(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(r.URL.Query().Get("userId"))
	if err != nil || userID < 1 {
		respondError(w, http.StatusBadRequest, "userId must be a positive integer")
		return
	}

	sneakers, err := h.service.GetByUserID(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondData(w, http.StatusOK, sneakers)
}

// HandleGetByUserEmail handles GET /api/Sneaker/GetByUserEmail?email= requests.
func (h *SneakerHandler) HandleGetByUserEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if err := h.validate.Var(email, "required,email"); err != nil {
		respondError(w, http.StatusBadRequest, "a valid email query parameter is required")
		return
	}

	sneakers, err := h.service.GetByUserEmail(r.Context(), email)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondData(w, http.StatusOK, sneakers)
}

// HandleCreate handles POST /api/Sneaker requests.
func (h *SneakerHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req model.SneakerCreateDTO
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

	sneaker, err := h.service.Add(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondData(w, http.StatusCreated, sneaker)
}

// HandleUpdate handles PATCH /api/Sneaker requests.
func (h *SneakerHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req model.SneakerUpdateDTO
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

	sneaker, err := h.service.Update(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondData(w, http.StatusOK, sneaker)
}

// HandleDelete handles DELETE /api/Sneaker/{id} requests.
func (h *SneakerHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
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
