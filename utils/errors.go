package utils

// CustomError is an error carrying the HTTP status it should surface with
type CustomError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *CustomError) Error() string {
	return e.Message
}

// NewCustomError is a helper to build a CustomError
func NewCustomError(statusCode int, message string) *CustomError {
	return &CustomError{StatusCode: statusCode, Message: message}
}
