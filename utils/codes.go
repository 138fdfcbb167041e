package utils

import (
	"os"
	"strings"

	"github.com/google/uuid"
)

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// GenerateReferenceCode builds a short human-quotable reservation code such
// as "RSV-9F2C41AB". Uniqueness is ultimately enforced by the database
// index; the uuid source just makes collisions practically unheard of.
func GenerateReferenceCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "RSV-" + raw[:8]
}
