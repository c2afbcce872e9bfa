package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/deepakvishwakarma24/codeforces-explorer/internal/codeforces"
	"github.com/deepakvishwakarma24/codeforces-explorer/internal/explore"
	"github.com/deepakvishwakarma24/codeforces-explorer/internal/rank"
)

var client *codeforces.Client

// Swapped in tests to pin countdown output.
var timeNow = time.Now

// SetClient wires the shared Codeforces client used by every handler.
func SetClient(c *codeforces.Client) {
	client = c
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// writeError maps client errors onto HTTP codes: unknown handles are
// 404, anything upstream is 502.
func writeError(w http.ResponseWriter, err error) {
	var nf *codeforces.NotFoundError
	if errors.As(err, &nf) {
		http.Error(w, nf.Error(), http.StatusNotFound)
		return
	}
	var te *codeforces.TransportError
	if errors.As(err, &te) {
		http.Error(w, te.Error(), http.StatusBadGateway)
		return
	}
	var fe *codeforces.FetchError
	if errors.As(err, &fe) {
		http.Error(w, fe.Error(), http.StatusBadGateway)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// UserProfileResponse is the combined payload for the profile view.
type UserProfileResponse struct {
	User   codeforces.User `json:"user"`
	Band   rank.Band       `json:"band"`
	Solved int             `json:"solved"`
}

// HandleAPIUser serves the profile for one handle. The profile and
// the submission list are fetched in parallel.
func HandleAPIUser(w http.ResponseWriter, r *http.Request) {
	handle := chi.URLParam(r, "handle")
	if handle == "" {
		http.Error(w, "handle required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	type userResult struct {
		user *codeforces.User
		err  error
	}
	userCh := make(chan userResult, 1)
	solvedCh := make(chan int, 1)

	go func() {
		u, err := client.GetUserInfo(ctx, handle)
		userCh <- userResult{u, err}
	}()
	go func() {
		solvedCh <- explore.CountSolved(client.GetUserSubmissions(ctx, handle))
	}()

	ur := <-userCh
	solved := <-solvedCh
	if ur.err != nil {
		writeError(w, ur.err)
		return
	}

	writeJSON(w, UserProfileResponse{
		User:   *ur.user,
		Band:   rank.Classify(ur.user.Rating),
		Solved: solved,
	})
}

// RatingResponse is the rating chart payload for one handle.
type RatingResponse struct {
	Points  []explore.RatingPoint `json:"points"`
	Summary explore.SeriesSummary `json:"summary"`
	Rated   bool                  `json:"rated"`
}

func HandleAPIRating(w http.ResponseWriter, r *http.Request) {
	handle := chi.URLParam(r, "handle")
	if handle == "" {
		http.Error(w, "handle required", http.StatusBadRequest)
		return
	}

	points := explore.BuildRatingSeries(client.GetRatingHistory(r.Context(), handle))
	if points == nil {
		points = []explore.RatingPoint{}
	}
	summary, rated := explore.SummarizeSeries(points)

	writeJSON(w, RatingResponse{Points: points, Summary: summary, Rated: rated})
}

// ContestEntry is one row of the contests view, with the derived
// display strings precomputed server side.
type ContestEntry struct {
	codeforces.Contest
	StartsIn  string `json:"startsIn,omitempty"`
	StartDate string `json:"startDate"`
	Length    string `json:"length"`
}

// ContestsResponse is the partitioned contest listing.
type ContestsResponse struct {
	Upcoming []ContestEntry `json:"upcoming"`
	Past     []ContestEntry `json:"past"`
}

func buildContestsResponse(groups explore.ContestGroups) ContestsResponse {
	now := timeNow()
	resp := ContestsResponse{
		Upcoming: make([]ContestEntry, 0, len(groups.Upcoming)),
		Past:     make([]ContestEntry, 0, len(groups.Past)),
	}
	for _, c := range groups.Upcoming {
		resp.Upcoming = append(resp.Upcoming, ContestEntry{
			Contest:   c,
			StartsIn:  explore.TimeUntil(c.StartTimeSeconds, now),
			StartDate: explore.FormatStartTime(c.StartTimeSeconds),
			Length:    explore.FormatContestDuration(c.DurationSeconds),
		})
	}
	for _, c := range groups.Past {
		resp.Past = append(resp.Past, ContestEntry{
			Contest:   c,
			StartDate: explore.FormatStartTime(c.StartTimeSeconds),
			Length:    explore.FormatContestDuration(c.DurationSeconds),
		})
	}
	return resp
}

func HandleAPIContests(w http.ResponseWriter, r *http.Request) {
	contests, err := client.GetContestList(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, buildContestsResponse(explore.PartitionContests(contests)))
}

// ProblemsResponse is one page of the filtered problem catalog plus
// the tag vocabulary for the dropdown.
type ProblemsResponse struct {
	explore.Page
	Tags []string `json:"tags"`
}

func HandleAPIProblems(w http.ResponseWriter, r *http.Request) {
	problems, err := client.GetProblemSet(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	q := r.URL.Query()
	filter := explore.Filter{
		Search: q.Get("search"),
		Tag:    q.Get("tag"),
	}
	if rating := q.Get("rating"); rating != "" {
		n, err := strconv.Atoi(rating)
		if err != nil {
			http.Error(w, "rating must be a number", http.StatusBadRequest)
			return
		}
		filter.Rating = n
	}
	page := 1
	if p := q.Get("page"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			http.Error(w, "page must be a number", http.StatusBadRequest)
			return
		}
		page = n
	}

	writeJSON(w, ProblemsResponse{
		Page: explore.Paginate(explore.FilterProblems(problems, filter), page),
		Tags: explore.TagVocabulary(problems),
	})
}

// CompareResponse pairs the two combined profiles with the verdicts.
type CompareResponse struct {
	First   explore.CombinedProfile `json:"first"`
	Second  explore.CombinedProfile `json:"second"`
	Outcome explore.Comparison      `json:"outcome"`
}

// HandleAPICompare evaluates two handles side by side. Both profiles
// are fetched in parallel and the response is all or nothing.
func HandleAPICompare(w http.ResponseWriter, r *http.Request) {
	a := r.URL.Query().Get("a")
	b := r.URL.Query().Get("b")
	if a == "" || b == "" {
		http.Error(w, "both a and b handles are required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	type profileResult struct {
		profile explore.CombinedProfile
		err     error
	}
	fetch := func(handle string, ch chan<- profileResult) {
		user, err := client.GetUserInfo(ctx, handle)
		if err != nil {
			ch <- profileResult{err: err}
			return
		}
		solved := explore.CountSolved(client.GetUserSubmissions(ctx, handle))
		ch <- profileResult{profile: explore.CombinedProfile{User: *user, Solved: solved}}
	}

	firstCh := make(chan profileResult, 1)
	secondCh := make(chan profileResult, 1)
	go fetch(a, firstCh)
	go fetch(b, secondCh)

	first := <-firstCh
	second := <-secondCh
	if first.err != nil {
		writeError(w, first.err)
		return
	}
	if second.err != nil {
		writeError(w, second.err)
		return
	}

	writeJSON(w, CompareResponse{
		First:   first.profile,
		Second:  second.profile,
		Outcome: explore.Compare(first.profile, second.profile),
	})
}
