package apperror

// Kind classifies an error so callers can tell expected outcomes apart from faults.
type Kind int

const (
	// KindInternal covers store and transport failures. Retrying may help.
	KindInternal Kind = iota
	// KindValidation marks input rejected before any store access.
	KindValidation
	// KindRejection marks a normal admission outcome: the slot is taken.
	// The caller should refresh availability and pick another slot.
	KindRejection
	// KindNotFound marks absence of data (no such room, no such reservation).
	KindNotFound
	// KindPolicy marks a temporal-policy outcome, e.g. a check-in attempt
	// outside its window. Distinct from KindNotFound: the data exists.
	KindPolicy
)

// AppError is a custom error type that carries an HTTP status code and a Kind.
type AppError struct {
	Code    int    // HTTP status code (e.g. 400, 409)
	Kind    Kind   // Error classification
	Message string // User-facing error message
	Err     error  // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with a status code, kind and message.
func New(code int, kind Kind, message string) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, code int, kind Kind, message string) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}
