package dto

// NewError builds the normalized error envelope for a status code.
func NewError(code int, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorBody{Code: code, Message: message}}
}

// NewValidationError builds a 400 envelope carrying per-field reasons.
func NewValidationError(code int, fields map[string][]string) ErrorResponse {
	return ErrorResponse{Error: ErrorBody{
		Code:    code,
		Message: "Validation failed",
		Fields:  fields,
	}}
}
