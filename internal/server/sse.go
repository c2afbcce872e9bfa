package server

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/alexandrevicenzi/go-sse"

	"github.com/deepakvishwakarma24/codeforces-explorer/internal/codeforces"
	"github.com/deepakvishwakarma24/codeforces-explorer/internal/explore"
)

var SSEServer *sse.Server

const (
	contestRefreshInterval = 10 * time.Minute
	countdownTickInterval  = 30 * time.Second
)

// CountdownUpdate is pushed to connected browsers so contest
// countdowns tick without a reload.
type CountdownUpdate struct {
	Type     string           `json:"type"`
	Contests []CountdownEntry `json:"contests"`
}

type CountdownEntry struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	StartsIn string `json:"startsIn"`
}

func InitSSE() {
	SSEServer = sse.NewServer(&sse.Options{
		Logger: log.New(log.Writer(), "go-sse: ", log.Ldate|log.Ltime),
	})
}

// StartCountdownBroadcast refetches the contest list on a slow cycle
// and rebroadcasts the derived countdowns on a fast one. Runs until
// ctx is cancelled.
func StartCountdownBroadcast(ctx context.Context, c *codeforces.Client) {
	var upcoming []codeforces.Contest

	refresh := func() {
		contests, err := c.GetContestList(ctx)
		if err != nil {
			log.Printf("SSE: contest refresh: %v", err)
			return
		}
		upcoming = explore.PartitionContests(contests).Upcoming
	}
	refresh()
	broadcastCountdowns(upcoming)

	refreshTicker := time.NewTicker(contestRefreshInterval)
	tick := time.NewTicker(countdownTickInterval)
	defer refreshTicker.Stop()
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-refreshTicker.C:
			refresh()
		case <-tick.C:
			broadcastCountdowns(upcoming)
		}
	}
}

func broadcastCountdowns(upcoming []codeforces.Contest) {
	if len(upcoming) == 0 {
		return
	}

	now := timeNow()
	update := CountdownUpdate{Type: "countdown"}
	for _, c := range upcoming {
		update.Contests = append(update.Contests, CountdownEntry{
			ID:       c.ID,
			Name:     c.Name,
			StartsIn: explore.TimeUntil(c.StartTimeSeconds, now),
		})
	}

	data, err := json.Marshal(update)
	if err != nil {
		log.Printf("SSE: failed to marshal countdown: %v", err)
		return
	}
	SSEServer.SendMessage("/events/updates", sse.SimpleMessage(string(data)))
}
