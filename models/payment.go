package models

import (
	"time"
)

type Payment struct {
	TenantID string    `json:"tenantID" bson:"tenantID"`
	Amount   float64   `json:"amount" bson:"amount"`
	Date     time.Time `json:"date" bson:"date"`
}
