package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-console/internal/domain/department"
	"github.com/cmlabs-hris/hris-console/internal/domain/document"
	"github.com/cmlabs-hris/hris-console/internal/domain/employee"
	"github.com/cmlabs-hris/hris-console/internal/domain/report"
	"github.com/cmlabs-hris/hris-console/internal/pkg/datastore"
	"github.com/cmlabs-hris/hris-console/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-console/internal/store"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Not found must win over the transport error it wraps
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, document.ErrDocumentNotFound):
		NotFound(w, "Not found")
	case errors.Is(err, document.ErrUnknownCollection):
		NotFound(w, "Unknown collection")

	case errors.Is(err, document.ErrDuplicateID):
		Conflict(w, err.Error())
	case errors.Is(err, document.ErrInvalidDocument):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, report.ErrUnknownDepartment):
		BadRequest(w, err.Error(), nil)

	// Console state
	case errors.Is(err, store.ErrConfirmationRequired):
		PreconditionRequired(w, "Confirmation required: repeat the request with confirm=true")
	case errors.Is(err, store.ErrNotLoaded):
		ServiceUnavailable(w, datastoreMessage(err))

	default:
		var netErr *datastore.NetworkError
		if errors.As(err, &netErr) {
			BadGateway(w, netErr.Message)
			return
		}
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}

func datastoreMessage(err error) string {
	var netErr *datastore.NetworkError
	if errors.As(err, &netErr) {
		return "Error fetching data: " + netErr.Message
	}
	return "Data is not loaded"
}
