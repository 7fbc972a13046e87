package services

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

/*
* Apartment IDs are short upper-hex tokens, three random bytes wide.
* Tenant IDs are UUIDs, so the two identifier spaces never collide.
 */
func GenerateApartmentID() (string, error) {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}

func GenerateTenantID() string {
	return uuid.NewString()
}
