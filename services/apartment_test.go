package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"RentMe/models"
)

func TestApartmentSeatFilter_GuardsCapacity(t *testing.T) {
	filter := apartmentSeatFilter("ABC123")

	assert.Equal(t, "ABC123", filter["apartmentID"])

	// seat index 2 occupied means the apartment already holds three tenants
	guard, ok := filter["tenants.2"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, false, guard["$exists"])
}

func TestDecideSeatClaim(t *testing.T) {
	// the conditional update matched, the seat is taken
	assert.Equal(t, seatClaimed, decideSeatClaim(1, true))

	// nothing matched but the apartment exists, it must be full
	assert.Equal(t, seatUnavailable, decideSeatClaim(0, true))

	// nothing matched and no apartment, create it around the tenant
	assert.Equal(t, seatCreate, decideSeatClaim(0, false))
}

func TestDecodeDocument_Apartment(t *testing.T) {
	doc := bson.M{
		"apartmentID": "ABC123",
		"tenants":     []string{"t1", "t2"},
		"rentAmount":  float64(1200),
	}

	var apartment models.Apartment
	require.NoError(t, decodeDocument(doc, &apartment))

	assert.Equal(t, "ABC123", apartment.ApartmentID)
	assert.Equal(t, []string{"t1", "t2"}, apartment.Tenants)
	assert.Equal(t, float64(1200), apartment.RentAmount)
}

func TestDecodeDocument_SkipsUnknownFields(t *testing.T) {
	doc := bson.M{
		"tenantID": "t1",
		"amount":   float64(500),
		"extra":    "ignored",
	}

	var payment models.Payment
	require.NoError(t, decodeDocument(doc, &payment))
	assert.Equal(t, "t1", payment.TenantID)
	assert.Equal(t, float64(500), payment.Amount)
}
