package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/sneakercollection/sneakercollection-go/internal/model"
	"github.com/sneakercollection/sneakercollection-go/internal/service"
)

func userRouter(svc UserService) http.Handler {
	h := NewUserHandler(svc)
	r := chi.NewRouter()
	r.Get("/api/User", h.HandleGet)
	r.Get("/api/User/GetByEmail", h.HandleGetByEmail)
	r.Get("/api/User/{id}", h.HandleGetByID)
	r.Post("/api/User", h.HandleCreate)
	r.Patch("/api/User", h.HandleUpdate)
	r.Delete("/api/User/{id}", h.HandleDelete)
	return r
}

func TestUserGetByID_UnknownIDEnvelope(t *testing.T) {
	svc := new(mockUserService)
	svc.On("GetByID", mock.Anything, 99).
		Return(model.UserDTO{}, &service.NotFoundError{Message: "User with Id: '99' was not found"})

	req := httptest.NewRequest(http.MethodGet, "/api/User/99", nil)
	rec := httptest.NewRecorder()
	userRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	// The envelope must carry the status, a message naming the id, and an
	// explicit null data field.
	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Equal(t, float64(404), raw["statusCode"])
	assert.Contains(t, raw["message"], "99")
	data, present := raw["data"]
	assert.True(t, present, "data field must be serialized")
	assert.Nil(t, data)
}

func TestUserCreate(t *testing.T) {
	svc := new(mockUserService)
	svc.On("Add", mock.Anything, model.UserLoginDTO{Email: "a@b.com", Password: "x"}).
		Return(model.UserDTO{ID: 7, Email: "a@b.com", Password: "x", CreationDate: time.Now()}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/User", strings.NewReader(`{"email":"a@b.com","password":"x"}`))
	rec := httptest.NewRecorder()
	userRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, http.StatusCreated, env.StatusCode)
	assert.Equal(t, "Success", env.Message)

	data := env.Data.(map[string]any)
	assert.Greater(t, data["id"].(float64), float64(0))
}

func TestUserCreate_ValidationDetails(t *testing.T) {
	svc := new(mockUserService)

	req := httptest.NewRequest(http.MethodPost, "/api/User", strings.NewReader(`{"email":"nope","password":""}`))
	rec := httptest.NewRecorder()
	userRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)

	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Contains(t, env.Details, "Email")
	assert.Contains(t, env.Details, "Password")
}

func TestUserList_PassesParsedQuery(t *testing.T) {
	svc := new(mockUserService)
	svc.On("Get", mock.Anything, model.PageQuery{Page: 2, PageSize: 5, SortBy: "email", Descending: false}).
		Return([]model.UserDTO{{ID: 1, Email: "a@b.com"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/User?page=2&pageSize=5&descending=false", nil)
	rec := httptest.NewRecorder()
	userRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestUserList_EmptyIs404(t *testing.T) {
	svc := new(mockUserService)
	svc.On("Get", mock.Anything, mock.Anything).
		Return(nil, &service.NotFoundError{Message: "No Users were found"})

	req := httptest.NewRequest(http.MethodGet, "/api/User", nil)
	rec := httptest.NewRecorder()
	userRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserGetByEmail_RequiresValidEmail(t *testing.T) {
	svc := new(mockUserService)

	req := httptest.NewRequest(http.MethodGet, "/api/User/GetByEmail?email=not-an-email", nil)
	rec := httptest.NewRecorder()
	userRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}

func TestUserDelete_NoContent(t *testing.T) {
	svc := new(mockUserService)
	svc.On("Delete", mock.Anything, 5).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/User/5", nil)
	rec := httptest.NewRecorder()
	userRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestUserGetByID_BadID(t *testing.T) {
	svc := new(mockUserService)

	req := httptest.NewRequest(http.MethodGet, "/api/User/banana", nil)
	rec := httptest.NewRecorder()
	userRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestUserUpdate_ServiceErrorIs500(t *testing.T) {
	svc := new(mockUserService)
	svc.On("Update", mock.Anything, mock.Anything).
		Return(model.UserDTO{}, &service.CommonError{Message: "connection refused"})

	req := httptest.NewRequest(http.MethodPatch, "/api/User", strings.NewReader(`{"id":3,"email":"a@b.com","password":"x"}`))
	rec := httptest.NewRecorder()
	userRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Contains(t, env.Message, "connection refused")
}
