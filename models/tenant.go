package models

import (
	"time"
)

type Tenant struct {
	ID        string     `json:"id" bson:"id"`
	Name      string     `json:"name" bson:"name"`
	Password  string     `json:"password,omitempty" bson:"password"`
	RentPaid  bool       `json:"rentPaid" bson:"rentPaid"`
	RentStart *time.Time `json:"rentStart,omitempty" bson:"rentStart,omitempty"`
	RentEnd   *time.Time `json:"rentEnd,omitempty" bson:"rentEnd,omitempty"`
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updatedAt"`
}
