package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baechuer/real-time-ressys/services/eventhub-service/internal/domain"
)

func TestToEventResp(t *testing.T) {
	now := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
	futureStart := now.Add(2 * time.Hour)
	pastStart := now.Add(-4 * time.Hour)
	pastEnd := now.Add(-2 * time.Hour)
	futureEnd := now.Add(2 * time.Hour)

	t.Run("successfully_maps_all_fields", func(t *testing.T) {
		e := &domain.Event{
			ID: 1, UserID: 2, Name: "Jazz", Description: "Live",
			Date: futureStart, Location: "Club", PricingInfo: 12.5, Capacity: 50,
			State: domain.StatePublished, Categories: []string{"Music"},
			CreatedAt: now, UpdatedAt: now,
		}
		resp := ToEventResp(e, now)

		assert.Equal(t, int64(1), resp.EventID)
		assert.Equal(t, int64(2), resp.UserID)
		assert.Equal(t, "PUBLISHED", resp.State)
		assert.Equal(t, []string{"Music"}, resp.Categories)
		assert.False(t, resp.Ended)
		assert.True(t, resp.Joinable)
	})

	t.Run("ended_uses_end_time_when_present", func(t *testing.T) {
		running := &domain.Event{Date: pastStart, EndTime: &futureEnd, State: domain.StatePublished}
		assert.False(t, ToEventResp(running, now).Ended)

		over := &domain.Event{Date: pastStart, EndTime: &pastEnd, State: domain.StatePublished}
		resp := ToEventResp(over, now)
		assert.True(t, resp.Ended)
		assert.False(t, resp.Joinable)
	})

	t.Run("draft_not_joinable", func(t *testing.T) {
		resp := ToEventResp(&domain.Event{Date: futureStart, State: domain.StateDraft}, now)
		assert.False(t, resp.Joinable)
		assert.NotNil(t, resp.Categories)
	})
}

func TestToUserResp_NoHash(t *testing.T) {
	resp := ToUserResp(&domain.User{ID: 3, Username: "jane_smith", PasswordHash: "secret"})
	assert.Equal(t, int64(3), resp.UserID)
	assert.NotNil(t, resp.SocialLinks)
}

func TestUpdateEventReq_ToEventPatch(t *testing.T) {
	name := "New"
	cats := []string{"Food & Drink"}
	p := UpdateEventReq{Name: &name, Categories: &cats}.ToEventPatch()
	assert.Equal(t, &name, p.Name)
	assert.Equal(t, &cats, p.Categories)
	assert.Nil(t, p.Location)
}

func TestUpdateEventReq_EndTime(t *testing.T) {
	decode := func(body string) domain.EventPatch {
		t.Helper()
		var req UpdateEventReq
		require.NoError(t, json.Unmarshal([]byte(body), &req))
		return req.ToEventPatch()
	}

	absent := decode(`{"name":"x"}`)
	assert.Nil(t, absent.EndTime)
	assert.False(t, absent.ClearEndTime)

	cleared := decode(`{"end_time":null}`)
	assert.Nil(t, cleared.EndTime)
	assert.True(t, cleared.ClearEndTime)

	set := decode(`{"end_time":"2030-01-01T10:00:00Z"}`)
	require.NotNil(t, set.EndTime)
	assert.Equal(t, time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC), set.EndTime.UTC())
	assert.False(t, set.ClearEndTime)

	var bad UpdateEventReq
	assert.Error(t, json.Unmarshal([]byte(`{"end_time":"tomorrow"}`), &bad))
}
