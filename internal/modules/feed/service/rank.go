package service

import (
	"sort"

	"environews/internal/modules/feed/domain"
)

// Dedupe collapses items sharing an identity key. When duplicates
// exist the most recent PublishedAt wins; identical timestamps resolve
// to the first-seen item so repeated runs stay deterministic. Output
// preserves the first-seen order of each surviving key, which makes
// Dedupe a no-op on an already unique list.
func Dedupe(items []domain.Item) []domain.Item {
	position := make(map[string]int, len(items))
	result := make([]domain.Item, 0, len(items))

	for _, item := range items {
		idx, seen := position[item.IdentityKey]
		if !seen {
			position[item.IdentityKey] = len(result)
			result = append(result, item)
			continue
		}
		if item.PublishedAt.After(result[idx].PublishedAt) {
			result[idx] = item
		}
	}

	return result
}

// Bound stable-sorts items by PublishedAt descending and truncates to
// cap. Stability keeps equal-timestamp items in input order so
// unchanged inputs produce byte-identical output.
func Bound(items []domain.Item, cap int) []domain.Item {
	sorted := make([]domain.Item, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PublishedAt.After(sorted[j].PublishedAt)
	})

	if cap >= 0 && len(sorted) > cap {
		sorted = sorted[:cap]
	}
	return sorted
}
