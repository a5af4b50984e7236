package fsrs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewLogJSONRoundTrip(t *testing.T) {
	log := ReviewLog{
		CardID:        3,
		Rating:        Hard,
		State:         Relearning,
		ElapsedDays:   2,
		ScheduledDays: 0,
		Review:        t0,
	}

	data, err := json.Marshal(log)
	require.NoError(t, err)
	for _, key := range []string{`"card_id":3`, `"rating":"Hard"`, `"state":"Relearning"`, `"elapsed_days":2`, `"review"`} {
		assert.Contains(t, string(data), key)
	}

	var got ReviewLog
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, log.CardID, got.CardID)
	assert.Equal(t, log.Rating, got.Rating)
	assert.Equal(t, log.State, got.State)
	assert.Equal(t, log.ElapsedDays, got.ElapsedDays)
	assert.True(t, log.Review.Equal(got.Review))
}

func TestReviewLogRejectsUnknownRating(t *testing.T) {
	var got ReviewLog
	err := json.Unmarshal([]byte(`{"card_id":1,"rating":"Perfect"}`), &got)
	assert.Error(t, err)
}
