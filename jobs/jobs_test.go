package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestOverdueRentFilter(t *testing.T) {
	now := time.Date(2026, 8, 28, 0, 5, 0, 0, time.UTC)
	filter := overdueRentFilter(now)

	assert.Equal(t, true, filter["rentPaid"])

	window, ok := filter["rentEnd"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, now, window["$lt"])
}
