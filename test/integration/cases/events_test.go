//go:build integration

package cases

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvents_LifecycleAndQueries(t *testing.T) {
	setup(t)

	owner := registerUser(t, "john_doe")

	code, env := doJSON(t, http.MethodPost, "/categories", map[string]any{"categories": []string{"Music", "Technology"}})
	require.Equal(t, http.StatusCreated, code, env.Error)

	jazz := createEvent(t, owner, map[string]any{
		"name":       "Jazz Night",
		"date":       "2030-09-20T19:00:00Z",
		"location":   "Central Park, New York",
		"categories": []string{"Music"},
	})
	assert.Equal(t, "DRAFT", jazz.State)
	assert.Equal(t, []string{"Music"}, jazz.Categories)

	expo := createEvent(t, owner, map[string]any{
		"name":       "Tech Expo",
		"date":       "2030-09-21T09:00:00Z",
		"location":   "Tech Center, San Francisco",
		"state":      "PUBLISHED",
		"categories": []string{"Technology", "Music"},
	})
	assert.ElementsMatch(t, []string{"Technology", "Music"}, expo.Categories)

	t.Run("unknown_category_rejected", func(t *testing.T) {
		code, env := doJSON(t, http.MethodPost, fmt.Sprintf("/users/%d/events", owner), map[string]any{
			"name": "X", "date": "2030-01-01T00:00:00Z", "categories": []string{"Opera"},
		})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "reference_not_found", env.Error.Code)
	})

	t.Run("publish_then_list_by_state", func(t *testing.T) {
		code, env := doJSON(t, http.MethodPost, fmt.Sprintf("/users/%d/events/%d/publish", owner, jazz.EventID), nil)
		require.Equal(t, http.StatusOK, code, env.Error)
		assert.Equal(t, "PUBLISHED", decode[eventResp](t, env).State)

		code, env = doJSON(t, http.MethodGet, "/events?state=PUBLISHED", nil)
		require.Equal(t, http.StatusOK, code)
		assert.Len(t, decode[[]eventResp](t, env), 2)
	})

	t.Run("filter_by_category_and_day", func(t *testing.T) {
		code, env := doJSON(t, http.MethodGet, "/events/filter?category=Music&date=2030-09-20", nil)
		require.Equal(t, http.StatusOK, code, env.Error)
		page := decode[struct {
			Items []eventResp `json:"items"`
			Page  int         `json:"page"`
			Limit int         `json:"limit"`
		}](t, env)
		require.Len(t, page.Items, 1)
		assert.Equal(t, jazz.EventID, page.Items[0].EventID)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 10, page.Limit)

		code, env = doJSON(t, http.MethodGet, "/events/filter?location=San%20Francisco&page=2&limit=1", nil)
		require.Equal(t, http.StatusOK, code)
		assert.Contains(t, string(env.Data), `"items":[]`)
	})

	t.Run("search_matches_name_or_location", func(t *testing.T) {
		code, env := doJSON(t, http.MethodGet, "/events/search?keyword=expo", nil)
		require.Equal(t, http.StatusOK, code)
		got := decode[[]eventResp](t, env)
		require.Len(t, got, 1)
		assert.Equal(t, expo.EventID, got[0].EventID)
	})

	t.Run("state_not_patchable", func(t *testing.T) {
		code, _ := doJSON(t, http.MethodPut, fmt.Sprintf("/users/%d/events/%d", owner, jazz.EventID),
			map[string]any{"state": "DRAFT"})
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("cancel_is_final", func(t *testing.T) {
		code, _ := doJSON(t, http.MethodPost, fmt.Sprintf("/users/%d/events/%d/cancel", owner, expo.EventID), nil)
		require.Equal(t, http.StatusOK, code)

		code, _ = doJSON(t, http.MethodPost, fmt.Sprintf("/users/%d/events/%d/publish", owner, expo.EventID), nil)
		assert.Equal(t, http.StatusConflict, code)
	})
}

func TestEvents_OwnershipIsNotFound(t *testing.T) {
	setup(t)

	owner := registerUser(t, "owner")
	other := registerUser(t, "other")
	ev := createEvent(t, owner, map[string]any{"name": "Private", "date": "2030-05-01T10:00:00Z"})

	code, _ := doJSON(t, http.MethodGet, fmt.Sprintf("/users/%d/events/%d", other, ev.EventID), nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = doJSON(t, http.MethodPut, fmt.Sprintf("/users/%d/events/%d", other, ev.EventID), map[string]any{"name": "Hijack"})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = doJSON(t, http.MethodDelete, fmt.Sprintf("/users/%d/events/%d", other, ev.EventID), nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = doJSON(t, http.MethodDelete, fmt.Sprintf("/users/%d/events/%d", owner, ev.EventID), nil)
	assert.Equal(t, http.StatusNoContent, code)
}
