package explore

import (
	"reflect"
	"testing"

	"github.com/deepakvishwakarma24/codeforces-explorer/internal/codeforces"
)

func testProblems() []codeforces.Problem {
	return []codeforces.Problem{
		{ContestID: 1, Index: "A", Name: "Theatre Square", Rating: 1000, Tags: []string{"math"}},
		{ContestID: 1, Index: "B", Name: "Spreadsheet", Rating: 1600, Tags: []string{"implementation", "math"}},
		{ContestID: 4, Index: "A", Name: "Watermelon", Rating: 800, Tags: []string{"brute force", "math"}},
		{ContestID: 231, Index: "A", Name: "Team", Rating: 800, Tags: []string{"brute force", "greedy"}},
		{ContestID: 996, Index: "A", Name: "Hit the Lottery", Rating: 800, Tags: []string{"dp", "greedy"}},
		{ContestID: 977, Index: "A", Name: "Wrong Subtraction", Rating: 800, Tags: []string{"implementation"}},
	}
}

func problemNames(problems []codeforces.Problem) []string {
	names := make([]string, len(problems))
	for i, p := range problems {
		names[i] = p.Name
	}
	return names
}

func TestFilterProblems(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"no filter", Filter{}, []string{
			"Theatre Square", "Spreadsheet", "Watermelon", "Team", "Hit the Lottery", "Wrong Subtraction",
		}},
		{"search is case-insensitive substring", Filter{Search: "w"}, []string{
			"Watermelon", "Hit the Lottery", "Wrong Subtraction",
		}},
		{"tag must match exactly", Filter{Tag: "greedy"}, []string{"Team", "Hit the Lottery"}},
		{"rating must match exactly", Filter{Rating: 1600}, []string{"Spreadsheet"}},
		{"criteria combine conjunctively", Filter{Search: "t", Tag: "brute force", Rating: 800}, []string{
			"Watermelon", "Team",
		}},
		{"no match", Filter{Search: "nonexistent"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := problemNames(FilterProblems(testProblems(), tt.filter))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterProblems() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterProblemsIdempotent(t *testing.T) {
	f := Filter{Tag: "math"}
	once := FilterProblems(testProblems(), f)
	twice := FilterProblems(once, f)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("filtering twice changed the result: %v vs %v", once, twice)
	}
}

func TestPaginate(t *testing.T) {
	problems := make([]codeforces.Problem, 45)
	for i := range problems {
		problems[i] = codeforces.Problem{ContestID: i + 1, Index: "A"}
	}

	tests := []struct {
		name       string
		number     int
		wantNumber int
		wantLen    int
		wantFirst  int
	}{
		{"first page", 1, 1, 20, 1},
		{"middle page", 2, 2, 20, 21},
		{"last partial page", 3, 3, 5, 41},
		{"clamps below range", 0, 1, 20, 1},
		{"clamps above range", 99, 3, 5, 41},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(problems, tt.number)
			if page.Number != tt.wantNumber {
				t.Errorf("Number = %d, want %d", page.Number, tt.wantNumber)
			}
			if page.Count != 3 {
				t.Errorf("Count = %d, want 3", page.Count)
			}
			if page.Total != 45 {
				t.Errorf("Total = %d, want 45", page.Total)
			}
			if len(page.Problems) != tt.wantLen {
				t.Fatalf("got %d problems, want %d", len(page.Problems), tt.wantLen)
			}
			if page.Problems[0].ContestID != tt.wantFirst {
				t.Errorf("first problem contest = %d, want %d", page.Problems[0].ContestID, tt.wantFirst)
			}
		})
	}
}

func TestPaginateEmpty(t *testing.T) {
	page := Paginate(nil, 5)
	if page.Number != 1 || page.Count != 0 || page.Total != 0 {
		t.Errorf("Paginate(nil) = %+v, want page 1 of 0", page)
	}
	if len(page.Problems) != 0 {
		t.Errorf("got %d problems, want 0", len(page.Problems))
	}
}

func TestTagVocabulary(t *testing.T) {
	got := TagVocabulary(testProblems())
	want := []string{"brute force", "dp", "greedy", "implementation", "math"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TagVocabulary() = %v, want %v", got, want)
	}
}
