// Package derive holds the pure computations that turn server
// responses into render-ready values.
package derive

import (
	"math"
	"strings"
)

// Tags parses a comma-joined tag string into trimmed tokens, dropping
// empty ones and preserving order.
func Tags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var tags []string
	for _, raw := range strings.Split(s, ",") {
		t := strings.TrimSpace(raw)
		if t == "" {
			continue
		}
		tags = append(tags, t)
	}
	return tags
}

// VisibleTags caps the tags shown on a card, returning the visible
// slice and how many were hidden behind the "+N" indicator.
func VisibleTags(tags []string, max int) (shown []string, hidden int) {
	if max <= 0 || len(tags) <= max {
		return tags, 0
	}
	return tags[:max], len(tags) - max
}

// CompletionPercent is round(100*completed/total), 0 when there is
// nothing to complete, clamped to 0..100.
func CompletionPercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	p := int(math.Round(float64(completed) / float64(total) * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
