package utils

import (
	"strings"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// ==================== PAYMENT REFERENCE CODE ====================

// GenerateReferenceCode returns a 12-character uppercase hex code used to
// identify a payment. Codes are unique-indexed in the database; callers
// retry on collision.
func GenerateReferenceCode() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return strings.ToUpper(raw[:12])
}
