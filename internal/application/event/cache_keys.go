package event

import "fmt"

// CacheKeyEventDetails is the detail-cache key of one event. Writers outside this
// package that change what a cached event embeds evict through it.
func CacheKeyEventDetails(id int64) string {
	return fmt.Sprintf("event:%d", id)
}
