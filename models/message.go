package models

import (
	"time"
)

type Message struct {
	Sender   string    `json:"sender" bson:"sender"`
	Receiver string    `json:"receiver" bson:"receiver"`
	Message  string    `json:"message" bson:"message"`
	Date     time.Time `json:"date" bson:"date"`
}
