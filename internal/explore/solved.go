// Package explore holds the pure transformations between raw API
// payloads and what the dashboard views render: solved-count
// reduction, contest partitioning, problem filtering and pagination,
// rating series shaping, and head-to-head comparison.
package explore

import "github.com/deepakvishwakarma24/codeforces-explorer/internal/codeforces"

// CountSolved counts distinct accepted problems in a submission list.
// Resubmissions of the same problem collapse onto the composite
// (contestId, index) key; order does not matter.
func CountSolved(subs []codeforces.Submission) int {
	seen := make(map[string]struct{})
	for _, sub := range subs {
		if sub.Verdict != codeforces.VerdictAccepted {
			continue
		}
		seen[sub.Problem.Key()] = struct{}{}
	}
	return len(seen)
}
