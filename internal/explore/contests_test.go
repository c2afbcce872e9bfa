package explore

import (
	"testing"
	"time"

	"github.com/deepakvishwakarma24/codeforces-explorer/internal/codeforces"
)

func TestPartitionContests(t *testing.T) {
	contests := []codeforces.Contest{
		{ID: 1, Phase: "FINISHED", StartTimeSeconds: 100},
		{ID: 2, Phase: "BEFORE", StartTimeSeconds: 500},
		{ID: 3, Phase: "CODING", StartTimeSeconds: 300},
		{ID: 4, Phase: "BEFORE", StartTimeSeconds: 200},
		{ID: 5, Phase: "FINISHED", StartTimeSeconds: 400},
	}

	groups := PartitionContests(contests)

	wantUpcoming := []int{4, 2}
	if len(groups.Upcoming) != len(wantUpcoming) {
		t.Fatalf("got %d upcoming, want %d", len(groups.Upcoming), len(wantUpcoming))
	}
	for i, id := range wantUpcoming {
		if groups.Upcoming[i].ID != id {
			t.Errorf("upcoming[%d].ID = %d, want %d", i, groups.Upcoming[i].ID, id)
		}
	}

	wantPast := []int{5, 1}
	if len(groups.Past) != len(wantPast) {
		t.Fatalf("got %d past, want %d", len(groups.Past), len(wantPast))
	}
	for i, id := range wantPast {
		if groups.Past[i].ID != id {
			t.Errorf("past[%d].ID = %d, want %d", i, groups.Past[i].ID, id)
		}
	}
}

func TestPartitionContestsCapsPast(t *testing.T) {
	var contests []codeforces.Contest
	for i := 1; i <= 25; i++ {
		contests = append(contests, codeforces.Contest{
			ID: i, Phase: "FINISHED", StartTimeSeconds: int64(i * 100),
		})
	}

	groups := PartitionContests(contests)
	if len(groups.Past) != pastContestLimit {
		t.Fatalf("got %d past contests, want %d", len(groups.Past), pastContestLimit)
	}
	// Most recent first, so the cap keeps contests 25 down to 6.
	if groups.Past[0].ID != 25 {
		t.Errorf("past[0].ID = %d, want 25", groups.Past[0].ID)
	}
	if groups.Past[19].ID != 6 {
		t.Errorf("past[19].ID = %d, want 6", groups.Past[19].ID)
	}
}

func TestTimeUntil(t *testing.T) {
	now := time.Unix(1_000_000, 0)
	tests := []struct {
		name  string
		start int64
		want  string
	}{
		{"already started", 999_999, "Started"},
		{"days out", 1_000_000 + 2*86400 + 3*3600, "in 2d 3h"},
		{"hours out", 1_000_000 + 5*3600 + 30*60, "in 5h 30m"},
		{"minutes out", 1_000_000 + 45*60, "in 45m"},
		{"exactly now", 1_000_000, "in 0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimeUntil(tt.start, now); got != tt.want {
				t.Errorf("TimeUntil() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatContestDuration(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{7200, "2h 0m"},
		{9000, "2h 30m"},
		{5400, "1h 30m"},
		{0, "0h 0m"},
	}

	for _, tt := range tests {
		if got := FormatContestDuration(tt.seconds); got != tt.want {
			t.Errorf("FormatContestDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
