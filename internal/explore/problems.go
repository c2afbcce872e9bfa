package explore

import (
	"sort"
	"strings"

	"github.com/deepakvishwakarma24/codeforces-explorer/internal/codeforces"
)

// PageSize is how many problems the browser shows per page.
const PageSize = 20

// Filter narrows the problem list. Zero values mean "no restriction".
type Filter struct {
	Search string
	Tag    string
	Rating int
}

// FilterProblems applies all set criteria conjunctively, preserving
// the order of the input list.
func FilterProblems(problems []codeforces.Problem, f Filter) []codeforces.Problem {
	search := strings.ToLower(f.Search)
	out := make([]codeforces.Problem, 0, len(problems))
	for _, p := range problems {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if f.Tag != "" && !hasTag(p.Tags, f.Tag) {
			continue
		}
		if f.Rating != 0 && p.Rating != f.Rating {
			continue
		}
		out = append(out, p)
	}
	return out
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Page is one window of a filtered problem list.
type Page struct {
	Problems []codeforces.Problem `json:"problems"`
	Number   int                  `json:"number"`
	Count    int                  `json:"count"`
	Total    int                  `json:"total"`
}

// Paginate slices the filtered list into the requested page. Page
// numbers out of range clamp to the nearest valid page.
func Paginate(problems []codeforces.Problem, number int) Page {
	total := len(problems)
	count := (total + PageSize - 1) / PageSize
	if count == 0 {
		return Page{Problems: []codeforces.Problem{}, Number: 1, Count: 0, Total: 0}
	}
	if number < 1 {
		number = 1
	}
	if number > count {
		number = count
	}
	start := (number - 1) * PageSize
	end := start + PageSize
	if end > total {
		end = total
	}
	return Page{Problems: problems[start:end], Number: number, Count: count, Total: total}
}

// TagVocabulary collects every distinct tag across the unfiltered
// list, sorted, for the tag dropdown.
func TagVocabulary(problems []codeforces.Problem) []string {
	seen := make(map[string]struct{})
	for _, p := range problems {
		for _, t := range p.Tags {
			seen[t] = struct{}{}
		}
	}
	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}
