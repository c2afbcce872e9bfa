package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/deepakvishwakarma24/codeforces-explorer/internal/codeforces"
	"github.com/deepakvishwakarma24/codeforces-explorer/internal/server"
	"github.com/deepakvishwakarma24/codeforces-explorer/internal/tui"
)

type Config struct {
	APIBaseURL     string
	WebPort        string
	ExternalURL    string
	RequestTimeout time.Duration
}

func loadConfig() Config {
	cfg := Config{
		APIBaseURL:  getEnv("CF_API_BASE_URL", codeforces.DefaultBaseURL),
		WebPort:     getEnv("CF_HTTP_PORT", "8080"),
		ExternalURL: getEnv("CF_EXTERNAL_URL", "http://localhost:8080"),
	}
	timeout := getEnv("CF_REQUEST_TIMEOUT", "30s")
	d, err := time.ParseDuration(timeout)
	if err != nil {
		log.Fatalf("invalid CF_REQUEST_TIMEOUT %q: %v", timeout, err)
	}
	cfg.RequestTimeout = d
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	godotenv.Load()

	useTUI := flag.Bool("tui", false, "run the terminal dashboard instead of the web server")
	flag.Parse()

	cfg := loadConfig()
	client := codeforces.New(codeforces.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.RequestTimeout,
	})

	if *useTUI {
		p := tea.NewProgram(tui.InitialModel(client), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			log.Fatal(err)
		}
		return
	}

	server.InitSSE()
	server.SetClient(client)

	broadcastCtx, broadcastCancel := context.WithCancel(context.Background())
	defer broadcastCancel()
	go server.StartCountdownBroadcast(broadcastCtx, client)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Mount("/events/", server.SSEServer)
	r.Get("/api/user/{handle}", server.HandleAPIUser)
	r.Get("/api/rating/{handle}", server.HandleAPIRating)
	r.Get("/api/contests", server.HandleAPIContests)
	r.Get("/api/problems", server.HandleAPIProblems)
	r.Get("/api/compare", server.HandleAPICompare)
	r.Get("/", server.HandleDashboard)

	srv := &http.Server{Addr: ":" + cfg.WebPort, Handler: r}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-done
		log.Println("Shutting down...")
		broadcastCancel()
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Fatal(err)
		}
	}()

	log.Printf("Dashboard running at %s", cfg.ExternalURL)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
