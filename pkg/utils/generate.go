package utils

import (
	"github.com/google/uuid"
)

// GenerateRequestID returns a random id used to correlate log lines of one request.
func GenerateRequestID() string {
	return uuid.New().String()
}
