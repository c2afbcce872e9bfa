package codeforces

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the public Codeforces API endpoint. Override via
// Config.BaseURL (CF_API_BASE_URL at the top level).
const DefaultBaseURL = "https://codeforces.com/api"

// The API caps user.status pages; one page of this size covers the
// submissions the dashboard needs.
const submissionFetchCount = 10000

const defaultTimeout = 30 * time.Second

type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client wraps the five read operations the dashboard uses. Each call
// issues exactly one outbound GET: no retries, no caching.
type Client struct {
	http    *http.Client
	baseURL string
}

func New(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{http: httpClient, baseURL: baseURL}
}

// envelope is the response wrapper every API method uses.
type envelope struct {
	Status  string          `json:"status"`
	Comment string          `json:"comment"`
	Result  json.RawMessage `json:"result"`
}

// statusError is a decoded envelope whose status was not OK. Callers
// map it to their operation's failure type.
type statusError struct {
	comment  string
	httpCode int
}

func (e *statusError) Error() string {
	if e.comment != "" {
		return e.comment
	}
	return "API returned status FAILED"
}

func (c *Client) call(ctx context.Context, method string, query url.Values) (json.RawMessage, error) {
	u := c.baseURL + "/" + method
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	// The API reports failures as a FAILED envelope, usually with an
	// HTTP error code, so decode the body before checking the code.
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%s: HTTP %d", method, resp.StatusCode)
		}
		return nil, fmt.Errorf("%s: unexpected response: %w", method, err)
	}
	if env.Status != "OK" {
		return nil, &statusError{comment: env.Comment, httpCode: resp.StatusCode}
	}
	return env.Result, nil
}

// GetUserInfo returns the profile for one handle.
func (c *Client) GetUserInfo(ctx context.Context, handle string) (*User, error) {
	result, err := c.call(ctx, "user.info", url.Values{"handles": {handle}})
	if err != nil {
		var se *statusError
		if errors.As(err, &se) {
			if se.httpCode != http.StatusOK {
				return nil, &TransportError{Comment: se.comment}
			}
			return nil, &NotFoundError{Handle: handle}
		}
		return nil, &TransportError{Err: err}
	}

	var users []User
	if err := json.Unmarshal(result, &users); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("user.info: %w", err)}
	}
	if len(users) == 0 {
		return nil, &NotFoundError{Handle: handle}
	}
	return &users[0], nil
}

// GetRatingHistory returns a user's rating changes, oldest first. A
// user with no rated contests is a normal state, indistinguishable
// here from a transient failure, so any error degrades to an empty
// slice instead of surfacing.
func (c *Client) GetRatingHistory(ctx context.Context, handle string) []RatingChange {
	result, err := c.call(ctx, "user.rating", url.Values{"handle": {handle}})
	if err != nil {
		log.Printf("codeforces: rating history for %s: %v", handle, err)
		return nil
	}

	var changes []RatingChange
	if err := json.Unmarshal(result, &changes); err != nil {
		log.Printf("codeforces: rating history for %s: %v", handle, err)
		return nil
	}
	return changes
}

// GetUserSubmissions returns the user's most recent submissions, up to
// 10000. Degrades to an empty slice on any failure, same reasoning as
// GetRatingHistory.
func (c *Client) GetUserSubmissions(ctx context.Context, handle string) []Submission {
	query := url.Values{
		"handle": {handle},
		"from":   {"1"},
		"count":  {strconv.Itoa(submissionFetchCount)},
	}
	result, err := c.call(ctx, "user.status", query)
	if err != nil {
		log.Printf("codeforces: submissions for %s: %v", handle, err)
		return nil
	}

	var subs []Submission
	if err := json.Unmarshal(result, &subs); err != nil {
		log.Printf("codeforces: submissions for %s: %v", handle, err)
		return nil
	}
	return subs
}

// GetContestList returns every contest the API knows about, all phases.
func (c *Client) GetContestList(ctx context.Context) ([]Contest, error) {
	result, err := c.call(ctx, "contest.list", nil)
	if err != nil {
		return nil, &FetchError{Resource: "contests", Err: err}
	}

	var contests []Contest
	if err := json.Unmarshal(result, &contests); err != nil {
		return nil, &FetchError{Resource: "contests", Err: err}
	}
	return contests, nil
}

// problemSetResult is the problemset.problems payload. The statistics
// array parallels the problems array but is keyed independently.
type problemSetResult struct {
	Problems   []Problem          `json:"problems"`
	Statistics []problemStatistic `json:"problemStatistics"`
}

type problemStatistic struct {
	ContestID   int    `json:"contestId"`
	Index       string `json:"index"`
	SolvedCount int    `json:"solvedCount"`
}

// GetProblemSet returns the full problem catalog with solved counts
// merged in from the statistics array.
func (c *Client) GetProblemSet(ctx context.Context) ([]Problem, error) {
	result, err := c.call(ctx, "problemset.problems", nil)
	if err != nil {
		return nil, &FetchError{Resource: "problems", Err: err}
	}

	var set problemSetResult
	if err := json.Unmarshal(result, &set); err != nil {
		return nil, &FetchError{Resource: "problems", Err: err}
	}

	solved := make(map[string]int, len(set.Statistics))
	for _, s := range set.Statistics {
		solved[strconv.Itoa(s.ContestID)+"-"+s.Index] = s.SolvedCount
	}
	for i := range set.Problems {
		if count, ok := solved[set.Problems[i].Key()]; ok {
			set.Problems[i].SolvedCount = count
		}
	}
	return set.Problems, nil
}
