package valueobjects

import (
	"fmt"
	"strings"
)

// RequestType is the ticket category chosen on submission. The UI offers a
// fixed list but the server only constrains length and presence, so new
// categories can ship without a backend change.
type RequestType string

const maxRequestTypeLength = 50

func (r RequestType) String() string {
	return string(r)
}

func NewRequestType(s string) (RequestType, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", fmt.Errorf("request type is required")
	}
	if len(trimmed) > maxRequestTypeLength {
		return "", fmt.Errorf("request type exceeds maximum length of %d characters", maxRequestTypeLength)
	}
	return RequestType(trimmed), nil
}
