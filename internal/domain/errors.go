package domain

// ErrorKind classifies a domain failure so the boundary layer can map it to a
// client-facing rejection without inspecting messages.
type ErrorKind string

const (
	KindNotFound     ErrorKind = "NOT_FOUND"
	KindInvalidInput ErrorKind = "INVALID_INPUT"
	KindBusinessRule ErrorKind = "BUSINESS_RULE"
	KindStorageFault ErrorKind = "STORAGE_FAULT"
)

// Error is a typed domain failure with a stable message. Sentinel values below
// are compared with errors.Is; messages propagate unchanged to the boundary.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	ErrDriverNotFound       = &Error{KindNotFound, "driver not found"}
	ErrCnpjAlreadyExists    = &Error{KindBusinessRule, "CNPJ already exists"}
	ErrLicenseNumberExists  = &Error{KindBusinessRule, "license number already exists"}
	ErrDriverNotCategoryA   = &Error{KindBusinessRule, "driver must be enabled for category A"}
	ErrBikeNotFound         = &Error{KindNotFound, "bike not found"}
	ErrPlateAlreadyExists   = &Error{KindBusinessRule, "plate already exists"}
	ErrPlateRequired        = &Error{KindInvalidInput, "plate is required"}
	ErrBikeHasRentals       = &Error{KindBusinessRule, "bike cannot be removed because it has rentals"}
	ErrRentalNotFound       = &Error{KindNotFound, "rental not found"}
	ErrInvalidPlanType      = &Error{KindInvalidInput, "invalid rental plan type"}
	ErrStartDateInPast      = &Error{KindBusinessRule, "start date cannot be in the past"}
	ErrReturnBeforeStart    = &Error{KindBusinessRule, "return date cannot be before start date"}
	ErrBikeAlreadyRented    = &Error{KindBusinessRule, "bike is already rented in the selected period"}
	ErrUnsupportedImageType = &Error{KindInvalidInput, "invalid file format, only PNG and BMP are allowed"}
	ErrUploadDirUnavailable = &Error{KindStorageFault, "uploads directory could not be created or accessed"}
	ErrUploadPermission     = &Error{KindStorageFault, "no permission to save files in the uploads folder"}
	ErrUploadDirNotFound    = &Error{KindStorageFault, "upload folder not found"}
	ErrUploadIOFailure      = &Error{KindStorageFault, "error saving file to server"}
)
