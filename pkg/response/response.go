package response

// Response represents a standard API response format
type Response struct {
	Status     string      `json:"status"`      // "success" or "error"
	StatusCode int         `json:"status_code"` // HTTP status code
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// Success returns a standard success response wrapping the data
func Success(statusCode int, data interface{}) Response {
	return Response{
		Status:     "success",
		StatusCode: statusCode,
		Data:       data,
	}
}

// Error returns a standard error response wrapping the error message
func Error(statusCode int, err string) Response {
	return Response{
		Status:     "error",
		StatusCode: statusCode,
		Error:      err,
	}
}

// ErrorWithData returns an error response that still carries a payload, used when
// the client needs the outcome that caused the error (e.g. a stock shortfall).
func ErrorWithData(statusCode int, err string, data interface{}) Response {
	return Response{
		Status:     "error",
		StatusCode: statusCode,
		Data:       data,
		Error:      err,
	}
}
