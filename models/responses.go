package models

// FieldErrors maps a request field name to the list of validation messages
// recorded against it. It is the body of every 400 Bad Request produced by
// input validation, matching the original API's per-field error shape:
//
//	{"email": ["this field is required"], "password": ["this field is required"]}
type FieldErrors map[string][]string

// Add records a validation message against the given field.
func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Empty reports whether no validation errors were recorded.
func (e FieldErrors) Empty() bool {
	return len(e) == 0
}

// ErrorResponse is the body of non-validation error responses.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
