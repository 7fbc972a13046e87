package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"RentMe/models"
	"RentMe/util"
)

func TestHashPassword_Roundtrip(t *testing.T) {
	hash, err := hashPassword("pw1")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", hash)

	assert.NoError(t, verifyPassword(hash, "pw1"))
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	hash, err := hashPassword("pw1")
	require.NoError(t, err)

	err = verifyPassword(hash, "pw2")
	require.Error(t, err)
	assert.Equal(t, util.INVALID_CREDENTIALS, err.Error())
}

func TestParseTenantUpdateFields_NoFields(t *testing.T) {
	_, err := parseTenantUpdateFields(map[string]interface{}{})
	require.Error(t, err)
	assert.Equal(t, util.NO_FIELDS_PROVIDED_TO_UPDATE, err.Error())
}

func TestParseTenantUpdateFields_BlankValuesIgnored(t *testing.T) {
	_, err := parseTenantUpdateFields(map[string]interface{}{
		"name":     "   ",
		"password": "",
	})
	require.Error(t, err)
	assert.Equal(t, util.NO_FIELDS_PROVIDED_TO_UPDATE, err.Error())
}

func TestParseTenantUpdateFields_HashesPassword(t *testing.T) {
	update, err := parseTenantUpdateFields(map[string]interface{}{
		"name":     "  Alice ",
		"password": "newpw",
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice", update["name"])
	assert.NotEqual(t, "newpw", update["password"])
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(update["password"].(string)), []byte("newpw")))
	assert.Contains(t, update, "updatedAt")
}

func TestApplyRentToggle_DoubleToggleRestores(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	tenant := models.Tenant{ID: "t1", RentPaid: true}

	once, _ := applyRentToggle(tenant, now)
	assert.False(t, once.RentPaid)

	twice, _ := applyRentToggle(once, now.Add(time.Minute))
	assert.Equal(t, tenant.RentPaid, twice.RentPaid)
}

func TestApplyRentToggle_UpdateDocument(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	tenant := models.Tenant{ID: "t1", RentPaid: false}

	toggled, update := applyRentToggle(tenant, now)
	assert.True(t, toggled.RentPaid)
	assert.Equal(t, now, toggled.UpdatedAt)

	set, ok := update["$set"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, true, set["rentPaid"])
	assert.Equal(t, now, set["updatedAt"])
}

func TestIsNoDocuments(t *testing.T) {
	assert.True(t, isNoDocuments(mongo.ErrNoDocuments))
	assert.True(t, isNoDocuments(fmt.Errorf("findOne failed: %w", mongo.ErrNoDocuments)))
	assert.True(t, isNoDocuments(errors.New("mongo: no documents in result")))
	assert.False(t, isNoDocuments(errors.New("connection reset by peer")))
	assert.False(t, isNoDocuments(nil))
}

func TestValidateRegisterInput(t *testing.T) {
	err := validateRegisterInput(map[string]interface{}{
		"name":     "Alice",
		"password": "pw1",
	})
	assert.NoError(t, err)

	err = validateRegisterInput(map[string]interface{}{"name": "Alice"})
	require.Error(t, err)
	assert.Equal(t, util.PASSWORD_NOT_PROVIDED, err.Error())

	err = validateRegisterInput(map[string]interface{}{"password": "pw1"})
	require.Error(t, err)
	assert.Equal(t, util.NAME_NOT_PROVIDED, err.Error())
}
