package utils

import (
	"github.com/google/uuid"
)

// RequestIDHeader carries the correlation id in requests and responses
const RequestIDHeader = "X-Request-ID"

// RequestID keeps an incoming id when it is a valid UUID and mints a new one otherwise
func RequestID(incoming string) string {
	if _, err := uuid.Parse(incoming); err == nil {
		return incoming
	}
	return uuid.NewString()
}
