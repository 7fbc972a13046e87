package models

import (
	"time"
)

// Tenants holds tenant IDs, not embedded documents. The tenant records
// themselves live in the TENANT collection and are resolved on read.
type Apartment struct {
	ApartmentID string    `json:"apartmentID" bson:"apartmentID"`
	Tenants     []string  `json:"tenants" bson:"tenants"`
	RentAmount  float64   `json:"rentAmount" bson:"rentAmount"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ApartmentDetails is the landlord view of an apartment with the
// tenant reference list expanded to full records.
type ApartmentDetails struct {
	ApartmentID string   `json:"apartmentID" bson:"apartmentID"`
	Tenants     []Tenant `json:"tenants" bson:"tenants"`
	RentAmount  float64  `json:"rentAmount" bson:"rentAmount"`
}
