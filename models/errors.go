package models

import "fmt"

// ValidationError dikembalikan ketika field tidak memenuhi aturan validasi.
// Objek yang divalidasi tidak pernah diubah sebagian.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
