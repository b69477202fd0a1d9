package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/sneakercollection/sneakercollection-go/internal/service"
)

const successMessage = "Success"

// Envelope is the uniform shape every response body is wrapped in.
// Data is serialized even when nil so clients always see the field.
type Envelope struct {
	StatusCode int                 `json:"statusCode"`
	Message    string              `json:"message"`
	Data       any                 `json:"data"`
	Details    map[string][]string `json:"details,omitempty"`
}

func writeEnvelope(w http.ResponseWriter, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(env.StatusCode)
	json.NewEncoder(w).Encode(env)
}

func respondData(w http.ResponseWriter, status int, data any) {
	writeEnvelope(w, Envelope{StatusCode: status, Message: successMessage, Data: data})
}

func respondError(w http.ResponseWriter, status int, message string) {
	writeEnvelope(w, Envelope{StatusCode: status, Message: message})
}

// respondValidationError renders field-level validation failures into the
// envelope's details map, keyed by struct field name.
func respondValidationError(w http.ResponseWriter, errs validator.ValidationErrors) {
	details := make(map[string][]string, len(errs))
	for _, fe := range errs {
		details[fe.Field()] = append(details[fe.Field()], validationMessage(fe))
	}
	writeEnvelope(w, Envelope{
		StatusCode: http.StatusBadRequest,
		Message:    "One or more validation errors occurred.",
		Details:    details,
	})
}

// respondServiceError maps the service error taxonomy to status codes:
// NotFoundError to 404, everything else to 500 carrying the inner message.
func respondServiceError(w http.ResponseWriter, err error) {
	var notFound *service.NotFoundError
	if errors.As(err, &notFound) {
		respondError(w, http.StatusNotFound, notFound.Message)
		return
	}

	var common *service.CommonError
	if errors.As(err, &common) {
		respondError(w, http.StatusInternalServerError, common.Message)
		return
	}

	respondError(w, http.StatusInternalServerError, err.Error())
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", fe.Field())
	case "email":
		return fmt.Sprintf("The %s field is not a valid e-mail address.", fe.Field())
	case "gt", "gte":
		return fmt.Sprintf("The %s field must be greater than %s.", fe.Field(), orZero(fe.Param()))
	case "min", "max":
		return fmt.Sprintf("The %s field must satisfy %s=%s.", fe.Field(), fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("The %s field failed the '%s' rule.", fe.Field(), fe.Tag())
	}
}

func orZero(param string) string {
	if param == "" {
		return "0"
	}
	return param
}

// bindJSON decodes a request body into dst, writing the appropriate error
// envelope on failure. Returns false when the request is already answered.
func bindJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
