package domain

import "strings"

type Category struct {
	ID   int64
	Name string
}

// NormalizeCategoryNames trims names and drops duplicates, keeping first-seen order.
// Blank names are rejected.
func NormalizeCategoryNames(names []string) ([]string, error) {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		v := strings.TrimSpace(n)
		if v == "" {
			return nil, ErrInvalidField("categories", "category name must not be empty")
		}
		if len(v) > 100 {
			return nil, ErrInvalidField("categories", "category name must be <= 100 chars")
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out, nil
}
