// Package rank orders and trims issue lists by creation time.
package rank

import (
	"sort"

	"github.com/joescharf/ghissues/internal/github"
)

// ByCreatedDesc returns a copy of issues sorted most recent first,
// comparing created_at values as strings. The sort is stable: equal
// timestamps keep their input order.
func ByCreatedDesc(issues []github.Issue) []github.Issue {
	sorted := make([]github.Issue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt() > sorted[j].CreatedAt()
	})
	return sorted
}

// Latest takes the first count issues of a descending-sorted list and
// reverses them, so the result reads oldest-of-the-selection first. A
// count at or beyond the list length returns the whole list reversed.
func Latest(issues []github.Issue, count int) []github.Issue {
	if count > len(issues) {
		count = len(issues)
	}
	if count < 0 {
		count = 0
	}
	out := make([]github.Issue, count)
	for i := 0; i < count; i++ {
		out[i] = issues[count-1-i]
	}
	return out
}
