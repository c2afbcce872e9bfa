package explore

import (
	"fmt"
	"sort"
	"time"

	"github.com/deepakvishwakarma24/codeforces-explorer/internal/codeforces"
)

// The past tab only shows the most recent contests; the full FINISHED
// list is thousands long.
const pastContestLimit = 20

// ContestGroups is the contest list split for the two dashboard tabs.
type ContestGroups struct {
	Upcoming []codeforces.Contest `json:"upcoming"`
	Past     []codeforces.Contest `json:"past"`
}

// PartitionContests splits the raw list into upcoming contests
// (ascending by start time) and the 20 most recent finished ones
// (descending). Contests mid-run or awaiting system tests land in
// neither group.
func PartitionContests(contests []codeforces.Contest) ContestGroups {
	var groups ContestGroups
	for _, c := range contests {
		switch c.Phase {
		case codeforces.PhaseBefore:
			groups.Upcoming = append(groups.Upcoming, c)
		case codeforces.PhaseFinished:
			groups.Past = append(groups.Past, c)
		}
	}

	sort.SliceStable(groups.Upcoming, func(i, j int) bool {
		return groups.Upcoming[i].StartTimeSeconds < groups.Upcoming[j].StartTimeSeconds
	})
	sort.SliceStable(groups.Past, func(i, j int) bool {
		return groups.Past[i].StartTimeSeconds > groups.Past[j].StartTimeSeconds
	})
	if len(groups.Past) > pastContestLimit {
		groups.Past = groups.Past[:pastContestLimit]
	}
	return groups
}

// TimeUntil renders a countdown to a contest start, relative to now.
func TimeUntil(startTimeSeconds int64, now time.Time) string {
	diff := startTimeSeconds - now.Unix()
	if diff < 0 {
		return "Started"
	}

	days := diff / 86400
	hours := (diff % 86400) / 3600
	minutes := (diff % 3600) / 60
	if days > 0 {
		return fmt.Sprintf("in %dd %dh", days, hours)
	}
	if hours > 0 {
		return fmt.Sprintf("in %dh %dm", hours, minutes)
	}
	return fmt.Sprintf("in %dm", minutes)
}

// FormatContestDuration renders a contest length as "2h 30m".
func FormatContestDuration(seconds int64) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// FormatStartTime renders a contest start timestamp for display.
func FormatStartTime(startTimeSeconds int64) string {
	return time.Unix(startTimeSeconds, 0).Format("Jan 2, 2006 3:04 PM")
}
