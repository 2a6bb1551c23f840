package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GenerateOrderID returns a unique order reference for a member's payment.
func GenerateOrderID(userID uint) string {
	return fmt.Sprintf("PA-%d-%s", userID, shortUUID())
}

// GenerateObjectKey returns a unique storage object name preserving the
// original file extension.
func GenerateObjectKey(userID uint, ext string) string {
	return fmt.Sprintf("%d_%s%s", userID, shortUUID(), ext)
}

func shortUUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
