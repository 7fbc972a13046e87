package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyLandlord_Defaults(t *testing.T) {
	assert.True(t, VerifyLandlord("admin", "admin123"))
	assert.False(t, VerifyLandlord("admin", "wrong"))
	assert.False(t, VerifyLandlord("someone", "admin123"))
	assert.False(t, VerifyLandlord("", ""))
}

func TestVerifyLandlord_EnvOverride(t *testing.T) {
	t.Setenv("LANDLORD_USERNAME", "owner")
	t.Setenv("LANDLORD_PASSWORD", "s3cret")

	assert.True(t, VerifyLandlord("owner", "s3cret"))
	assert.False(t, VerifyLandlord("admin", "admin123"))
}
