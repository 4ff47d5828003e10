package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotLoggedIn    = http.StatusUnauthorized
	ErrStatusNoPermission   = http.StatusForbidden
	ErrStatusUnauthorized   = http.StatusUnauthorized
	ErrStatusNotFound       = http.StatusNotFound
	ErrStatusConflict       = http.StatusConflict
	ErrStatusTooLarge       = http.StatusRequestEntityTooLarge
	ErrStatusUnavailable    = http.StatusServiceUnavailable
)

var (
	ErrInternalServer          = errors.New("Server error")
	ErrClient                  = errors.New("Bad request")
	ErrValidation              = errors.New("Validation failed")
	ErrNotLoggedIn             = errors.New("Unauthorized access")
	ErrInvalidCredentialsEmail = errors.New("Email or password is incorrect")
	ErrForbidden               = errors.New("Forbidden access")
	ErrNotFound                = errors.New("Resource not found")
	ErrAccountNotFound         = errors.New("Account not found")
	ErrProductNotFound         = errors.New("Product not found")
	ErrProfileNotFound         = errors.New("No seller profile found")
	ErrEmailAlreadyUsed        = errors.New("Email already in use")
	ErrInvalidRole             = errors.New("Role must be either customer or seller")
	ErrSellerRoleRequired      = errors.New("Access denied. Seller role required.")
	ErrOnlySellersCanCreate    = errors.New("Only sellers can create products")
	ErrSellerNotApproved       = errors.New("Seller profile must be approved before managing products")
	ErrNotOwner                = errors.New("Not authorized")
	ErrInvalidTransition       = errors.New("Profile status transition is not allowed")
	ErrFileTooLarge            = errors.New("File exceeds the 5MB limit")
	ErrUnsupportedFileType     = errors.New("Unsupported file type")
	ErrTooManyFiles            = errors.New("Too many files uploaded")
	ErrSearchUnavailable       = errors.New("Product search is not available")
)

var errorMap = map[error]int{
	ErrInternalServer:          ErrStatusInternalServer,
	ErrClient:                  ErrStatusClient,
	ErrValidation:              ErrStatusClient,
	ErrNotLoggedIn:             ErrStatusNotLoggedIn,
	ErrInvalidCredentialsEmail: ErrStatusUnauthorized,
	ErrForbidden:               ErrStatusNoPermission,
	ErrNotFound:                ErrStatusNotFound,
	ErrAccountNotFound:         ErrStatusNotFound,
	ErrProductNotFound:         ErrStatusNotFound,
	ErrProfileNotFound:         ErrStatusNotFound,
	ErrEmailAlreadyUsed:        ErrStatusConflict,
	ErrInvalidRole:             ErrStatusClient,
	ErrSellerRoleRequired:      ErrStatusNoPermission,
	ErrOnlySellersCanCreate:    ErrStatusNoPermission,
	ErrSellerNotApproved:       ErrStatusNoPermission,
	ErrNotOwner:                ErrStatusNoPermission,
	ErrInvalidTransition:       ErrStatusConflict,
	ErrFileTooLarge:            ErrStatusTooLarge,
	ErrUnsupportedFileType:     ErrStatusClient,
	ErrTooManyFiles:            ErrStatusClient,
	ErrSearchUnavailable:       ErrStatusUnavailable,
}

// GetErrorStatusCode maps err, or the first known error it wraps, to an HTTP
// status. Anything unknown is a storage or programming failure and maps to 500.
func GetErrorStatusCode(err error) int {
	if errStatusCode, ok := errorMap[err]; ok {
		return errStatusCode
	}

	for known, errStatusCode := range errorMap {
		if errors.Is(err, known) {
			return errStatusCode
		}
	}

	return errorMap[ErrInternalServer]
}

// IsInternal reports whether err would surface as a 500.
func IsInternal(err error) bool {
	return GetErrorStatusCode(err) == ErrStatusInternalServer
}
