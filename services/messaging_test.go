package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"RentMe/models"
	"RentMe/util"
)

func TestParticipantFilter_MatchesEitherSide(t *testing.T) {
	filter := participantFilter("tenant-1")

	or, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, or, 2)
	assert.Equal(t, "tenant-1", or[0]["sender"])
	assert.Equal(t, "tenant-1", or[1]["receiver"])
}

func TestSortMessagesByDate_Ascending(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	messages := []models.Message{
		{Sender: "landlord", Receiver: "t1", Message: "third", Date: base.Add(2 * time.Hour)},
		{Sender: "t1", Receiver: "landlord", Message: "first", Date: base},
		{Sender: "t1", Receiver: "landlord", Message: "second", Date: base.Add(time.Hour)},
	}

	sortMessagesByDate(messages)

	assert.Equal(t, "first", messages[0].Message)
	assert.Equal(t, "second", messages[1].Message)
	assert.Equal(t, "third", messages[2].Message)
}

func TestValidateMessageInput(t *testing.T) {
	err := validateMessageInput(map[string]interface{}{
		"sender":   "t1",
		"receiver": "landlord",
		"message":  "hello",
	})
	assert.NoError(t, err)

	err = validateMessageInput(map[string]interface{}{
		"sender":  "t1",
		"message": "hello",
	})
	require.Error(t, err)
	assert.Equal(t, util.RECEIVER_NOT_PROVIDED, err.Error())
}
