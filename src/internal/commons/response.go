package commons

type Response[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    *T       `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    &data,
	}
}

func ErrorResponse[T any](message string, errors ...string) Response[T] {
	return Response[T]{
		Success: false,
		Message: message,
		Errors:  errors,
	}
}

// NotFoundResponse reports absence without an accompanying Go error.
// Lookups that may legitimately miss return this with a nil error.
func NotFoundResponse[T any](message string) Response[T] {
	return Response[T]{
		Success: false,
		Message: message,
	}
}
