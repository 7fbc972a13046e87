package services

import (
	"crypto/subtle"
	"os"
)

// Fallback pair matching the original deployment; override with
// LANDLORD_USERNAME and LANDLORD_PASSWORD.
const (
	defaultLandlordUsername = "admin"
	defaultLandlordPassword = "admin123"
)

func landlordCredentials() (string, string) {
	username := os.Getenv("LANDLORD_USERNAME")
	if username == "" {
		username = defaultLandlordUsername
	}
	password := os.Getenv("LANDLORD_PASSWORD")
	if password == "" {
		password = defaultLandlordPassword
	}
	return username, password
}

/*
* The landlord is a single configured identity, not a stored record.
* Comparison is constant time so timing does not leak either field.
 */
func VerifyLandlord(username string, password string) bool {
	wantUser, wantPass := landlordCredentials()
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(wantUser))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(wantPass))
	return userOK&passOK == 1
}
