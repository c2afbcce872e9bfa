package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/deepakvishwakarma24/codeforces-explorer/internal/codeforces"
	"github.com/deepakvishwakarma24/codeforces-explorer/internal/explore"
)

// fakeAPI stands in for the Codeforces API, dispatching on method name.
func fakeAPI(t *testing.T, responses map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := responses[r.URL.Path]
		if !ok {
			t.Errorf("unexpected API call %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(body))
	}))
}

func newRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Get("/api/user/{handle}", HandleAPIUser)
	r.Get("/api/rating/{handle}", HandleAPIRating)
	r.Get("/api/contests", HandleAPIContests)
	r.Get("/api/problems", HandleAPIProblems)
	r.Get("/api/compare", HandleAPICompare)
	return r
}

func TestHandleAPIUser(t *testing.T) {
	api := fakeAPI(t, map[string]string{
		"/user.info":   `{"status":"OK","result":[{"handle":"someone","rating":1950,"maxRating":2000}]}`,
		"/user.status": `{"status":"OK","result":[{"id":1,"verdict":"OK","problem":{"contestId":1,"index":"A"}},{"id":2,"verdict":"OK","problem":{"contestId":1,"index":"A"}}]}`,
	})
	defer api.Close()
	SetClient(codeforces.New(codeforces.Config{BaseURL: api.URL}))

	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest("GET", "/api/user/someone", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}
	var resp UserProfileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.User.Handle != "someone" {
		t.Errorf("handle = %q, want someone", resp.User.Handle)
	}
	if resp.Band.Label != "Candidate Master" {
		t.Errorf("band = %q, want Candidate Master", resp.Band.Label)
	}
	if resp.Solved != 1 {
		t.Errorf("solved = %d, want 1", resp.Solved)
	}
}

func TestHandleAPIUserNotFound(t *testing.T) {
	api := fakeAPI(t, map[string]string{
		"/user.info":   `{"status":"OK","result":[]}`,
		"/user.status": `{"status":"OK","result":[]}`,
	})
	defer api.Close()
	SetClient(codeforces.New(codeforces.Config{BaseURL: api.URL}))

	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest("GET", "/api/user/ghost", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandleAPIRatingUnrated(t *testing.T) {
	api := fakeAPI(t, map[string]string{
		"/user.rating": `{"status":"OK","result":[]}`,
	})
	defer api.Close()
	SetClient(codeforces.New(codeforces.Config{BaseURL: api.URL}))

	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest("GET", "/api/rating/newcomer", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp RatingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Rated {
		t.Error("Rated = true, want false")
	}
	if resp.Points == nil || len(resp.Points) != 0 {
		t.Errorf("Points = %v, want empty slice", resp.Points)
	}
}

func TestHandleAPIContests(t *testing.T) {
	api := fakeAPI(t, map[string]string{
		"/contest.list": `{"status":"OK","result":[
			{"id":1,"name":"Old Round","phase":"FINISHED","startTimeSeconds":100,"durationSeconds":7200},
			{"id":2,"name":"Next Round","phase":"BEFORE","startTimeSeconds":99999999999,"durationSeconds":9000},
			{"id":3,"name":"Running Round","phase":"CODING","startTimeSeconds":200,"durationSeconds":7200}
		]}`,
	})
	defer api.Close()
	SetClient(codeforces.New(codeforces.Config{BaseURL: api.URL}))

	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest("GET", "/api/contests", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp ContestsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Upcoming) != 1 || resp.Upcoming[0].ID != 2 {
		t.Errorf("upcoming = %+v, want one entry with ID 2", resp.Upcoming)
	}
	if resp.Upcoming[0].StartsIn == "" || resp.Upcoming[0].StartsIn == "Started" {
		t.Errorf("StartsIn = %q, want a countdown", resp.Upcoming[0].StartsIn)
	}
	if len(resp.Past) != 1 || resp.Past[0].ID != 1 {
		t.Errorf("past = %+v, want one entry with ID 1", resp.Past)
	}
	if resp.Past[0].Length != "2h 0m" {
		t.Errorf("Length = %q, want 2h 0m", resp.Past[0].Length)
	}
}

func TestHandleAPIProblems(t *testing.T) {
	api := fakeAPI(t, map[string]string{
		"/problemset.problems": `{"status":"OK","result":{
			"problems":[
				{"contestId":1,"index":"A","name":"Sum of Two","tags":["math"],"rating":800},
				{"contestId":1,"index":"B","name":"Sumo Wrestling","tags":["greedy"],"rating":1200},
				{"contestId":2,"index":"A","name":"Graph Walk","tags":["graphs"],"rating":1500}
			],
			"problemStatistics":[]}}`,
	})
	defer api.Close()
	SetClient(codeforces.New(codeforces.Config{BaseURL: api.URL}))

	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest("GET", "/api/problems?search=sum", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp ProblemsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Total != 2 {
		t.Errorf("Total = %d, want 2 (Sum of Two and Sumo Wrestling)", resp.Total)
	}
	// The tag dropdown reflects the whole catalog, not the filtered view.
	if len(resp.Tags) != 3 {
		t.Errorf("Tags = %v, want 3 tags", resp.Tags)
	}
}

func TestHandleAPIProblemsBadRating(t *testing.T) {
	api := fakeAPI(t, map[string]string{
		"/problemset.problems": `{"status":"OK","result":{"problems":[],"problemStatistics":[]}}`,
	})
	defer api.Close()
	SetClient(codeforces.New(codeforces.Config{BaseURL: api.URL}))

	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest("GET", "/api/problems?rating=abc", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleAPICompare(t *testing.T) {
	api := fakeAPI(t, map[string]string{
		"/user.info":   `{"status":"OK","result":[{"handle":"alice","rating":1600,"maxRating":1700,"contribution":5}]}`,
		"/user.status": `{"status":"OK","result":[]}`,
	})
	defer api.Close()
	SetClient(codeforces.New(codeforces.Config{BaseURL: api.URL}))

	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest("GET", "/api/compare?a=alice&b=alice", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}
	var resp CompareResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Outcome.Overall != explore.OutcomeEven {
		t.Errorf("Overall = %q, want even", resp.Outcome.Overall)
	}
}

func TestHandleAPICompareMissingHandle(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest("GET", "/api/compare?a=alice", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
