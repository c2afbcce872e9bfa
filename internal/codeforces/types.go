package codeforces

import "strconv"

// User is a profile snapshot as returned by user.info. Numeric fields
// are zero when the API omits them; a zero rating means unrated.
type User struct {
	Handle       string `json:"handle"`
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	Country      string `json:"country,omitempty"`
	City         string `json:"city,omitempty"`
	Organization string `json:"organization,omitempty"`
	Contribution int    `json:"contribution"`
	Rank         string `json:"rank,omitempty"`
	MaxRank      string `json:"maxRank,omitempty"`
	Rating       int    `json:"rating,omitempty"`
	MaxRating    int    `json:"maxRating,omitempty"`
	TitlePhoto   string `json:"titlePhoto,omitempty"`
	Avatar       string `json:"avatar,omitempty"`
}

// DisplayName prefers the real name when both parts are present.
func (u User) DisplayName() string {
	if u.FirstName != "" && u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	return u.Handle
}

type Contest struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Type             string `json:"type,omitempty"`
	Phase            string `json:"phase"`
	DurationSeconds  int64  `json:"durationSeconds"`
	StartTimeSeconds int64  `json:"startTimeSeconds"`
}

// Contest phases surfaced by the dashboard. Contests in any other
// phase (CODING, PENDING_SYSTEM_TEST, ...) are not listed.
const (
	PhaseBefore   = "BEFORE"
	PhaseFinished = "FINISHED"
)

type Problem struct {
	ContestID   int      `json:"contestId"`
	Index       string   `json:"index"`
	Name        string   `json:"name"`
	Type        string   `json:"type,omitempty"`
	Rating      int      `json:"rating,omitempty"`
	Tags        []string `json:"tags"`
	SolvedCount int      `json:"solvedCount,omitempty"`
}

// Key is the composite problem identity. Problem names are not unique
// across contests, so this pair is the only safe key.
func (p Problem) Key() string {
	return strconv.Itoa(p.ContestID) + "-" + p.Index
}

// ProblemRef identifies a problem inside a submission.
type ProblemRef struct {
	ContestID int    `json:"contestId"`
	Index     string `json:"index"`
	Name      string `json:"name,omitempty"`
}

func (r ProblemRef) Key() string {
	return strconv.Itoa(r.ContestID) + "-" + r.Index
}

type Submission struct {
	ID      int64      `json:"id"`
	Verdict string     `json:"verdict"`
	Problem ProblemRef `json:"problem"`
}

// VerdictAccepted is the only verdict that counts as solved.
const VerdictAccepted = "OK"

type RatingChange struct {
	ContestID               int    `json:"contestId"`
	ContestName             string `json:"contestName"`
	Handle                  string `json:"handle"`
	Rank                    int    `json:"rank"`
	RatingUpdateTimeSeconds int64  `json:"ratingUpdateTimeSeconds"`
	OldRating               int    `json:"oldRating"`
	NewRating               int    `json:"newRating"`
}
