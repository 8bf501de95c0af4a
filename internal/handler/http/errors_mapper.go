package http

import (
	"errors"
	"net/http"

	"github.com/mlevkova/bijoux-shop/internal/logger"
	"github.com/mlevkova/bijoux-shop/internal/store"
	"github.com/mlevkova/bijoux-shop/internal/utils"
	"github.com/mlevkova/bijoux-shop/internal/validators"
	"github.com/mlevkova/bijoux-shop/models"
)

const internalServerErrorMessage = "Internal Server Error"

// errorStatusMap translates well-known sentinel errors into HTTP status
// codes. Duplicate username/email deliberately maps to 400 rather than 409,
// preserving the contract the storefront was built against.
var errorStatusMap = map[error]int{
	errRequestTooLarge: http.StatusRequestEntityTooLarge,
	errMalformedForm:   http.StatusBadRequest,

	validators.ErrUserFieldsRequired:    http.StatusBadRequest,
	validators.ErrProductFieldsRequired: http.StatusBadRequest,
	validators.ErrNegativePrice:         http.StatusBadRequest,
	validators.ErrInvalidAmount:         http.StatusBadRequest,

	store.ErrUsernameAlreadyExists: http.StatusBadRequest,
	store.ErrEmailAlreadyExists:    http.StatusBadRequest,
	store.ErrCategoryNotFound:      http.StatusBadRequest,
	store.ErrInvalidImageFormat:    http.StatusBadRequest,
	store.ErrEmptyImageFilename:    http.StatusBadRequest,

	store.ErrUserNotFound:      http.StatusNotFound,
	store.ErrProductNotFound:   http.StatusNotFound,
	store.ErrNoUsersFound:      http.StatusNotFound,
	store.ErrNoProductsFound:   http.StatusNotFound,
	store.ErrNoCategoriesFound: http.StatusNotFound,
	store.ErrImageNotFound:     http.StatusNotFound,

	store.ErrPoolExhausted:       http.StatusInternalServerError,
	store.ErrAcquiringConnection: http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:    http.StatusInternalServerError,
	store.ErrExecutingQuery:      http.StatusInternalServerError,
	store.ErrExecutingStatement:  http.StatusInternalServerError,
	store.ErrScanningRow:         http.StatusInternalServerError,
	store.ErrScanningRows:        http.StatusInternalServerError,
}

// errorMessageMap carries the exact client-facing message for each mapped
// error. Anything not listed here renders as "Internal Server Error" so
// database details never leak to the client.
var errorMessageMap = map[error]string{
	errRequestTooLarge: "Uploaded file is too large",
	errMalformedForm:   "No input data provided",

	validators.ErrUserFieldsRequired:    validators.ErrUserFieldsRequired.Error(),
	validators.ErrProductFieldsRequired: validators.ErrProductFieldsRequired.Error(),
	validators.ErrNegativePrice:         validators.ErrNegativePrice.Error(),
	validators.ErrInvalidAmount:         validators.ErrInvalidAmount.Error(),

	store.ErrUsernameAlreadyExists: "Username already exists",
	store.ErrEmailAlreadyExists:    "Email already exists",
	store.ErrCategoryNotFound:      "Category not found",
	store.ErrInvalidImageFormat:    "Invalid image format",
	store.ErrEmptyImageFilename:    "Invalid image format",

	store.ErrUserNotFound:      "User not found",
	store.ErrProductNotFound:   "Product not found",
	store.ErrNoUsersFound:      "No users found",
	store.ErrNoProductsFound:   "No products found",
	store.ErrNoCategoriesFound: "No categories found",
	store.ErrImageNotFound:     "Image not found",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return internalServerErrorMessage
}

// writeError renders err as the uniform {"message": ...} JSON body with the
// mapped status code.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed with internal error")
	}

	if _, writeErr := utils.WriteJSON(w, models.MessageResponse{Message: messageFromError(err)}, status); writeErr != nil {
		logger.FromRequest(r).Err(writeErr).Msg("writing error response failed")
	}
}
