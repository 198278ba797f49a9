// Package web provides a local HTTP server for previewing generated
// statements.
//
// The server exposes a small JSON API for generating statements from a
// posted configuration, plus a single-page preview frontend. An optional
// holiday file is watched for changes and reloaded live.
//
// SECURITY WARNING: This server has no authentication and should only be
// bound to localhost (127.0.0.1). Do not expose it to untrusted networks.
package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nepdocs/stmtgen/holiday"
	"github.com/nepdocs/stmtgen/telemetry"
)

type Server struct {
	Port      int
	Host      string
	Version   string
	CommitSHA string

	// holidayFile is an optional JSON holiday file. When set it is loaded
	// at startup and watched for changes.
	holidayFile string

	mu       sync.RWMutex
	holidays holiday.Set

	// SSE clients for broadcasting reload events
	sseClients map[chan string]struct{}
	sseMu      sync.Mutex
}

func New(port int, holidayFile string) *Server {
	return NewWithVersion(port, holidayFile, "", "")
}

func NewWithVersion(port int, holidayFile, version, commitSHA string) *Server {
	return &Server{
		Port:        port,
		Host:        "127.0.0.1",
		Version:     version,
		CommitSHA:   commitSHA,
		holidayFile: holidayFile,
		holidays:    holiday.NewSet(),
	}
}

func (s *Server) Start(ctx context.Context) error {
	collector := telemetry.FromContext(ctx)
	timer := collector.Start(fmt.Sprintf("web.start %s:%d", s.Host, s.Port))
	defer timer.End()

	s.sseClients = make(map[chan string]struct{})

	if s.holidayFile != "" {
		loadTimer := timer.Child("web.load_holidays")
		err := s.reloadHolidays()
		loadTimer.End()
		if err != nil {
			return fmt.Errorf("failed to load holidays: %w", err)
		}

		if err := s.startWatcher(ctx); err != nil {
			return fmt.Errorf("failed to start file watcher: %w", err)
		}
	}

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	return http.ListenAndServe(addr, s.router())
}

func (s *Server) router() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /", s.handleIndex)
	mux.HandleFunc("POST /api/statement", s.handleGenerate)
	mux.HandleFunc("GET /api/templates", s.handleTemplates)
	mux.HandleFunc("GET /api/holidays", s.handleHolidays)
	mux.HandleFunc("GET /api/events", s.handleSSE)

	return mux
}

// currentHolidays returns the holiday set under the read lock.
func (s *Server) currentHolidays() holiday.Set {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.holidays
}

// reloadHolidays loads or reloads the holiday set from disk.
func (s *Server) reloadHolidays() error {
	set, err := holiday.Load(s.holidayFile)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.holidays = set
	s.mu.Unlock()

	return nil
}

// startWatcher watches the holiday file, reloading the set and broadcasting
// an SSE event on change.
func (s *Server) startWatcher(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(s.holidayFile); err != nil {
		return fmt.Errorf("failed to watch %s: %w", s.holidayFile, err)
	}

	go s.runWatcher(ctx, watcher)

	return nil
}

// runWatcher processes file system events with debouncing. Editors often
// write files in multiple steps, so changes coalesce before reloading.
func (s *Server) runWatcher(ctx context.Context, watcher *fsnotify.Watcher) {
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		_ = watcher.Close()
	}()

	const debounceDelay = 100 * time.Millisecond

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			// Remove/Rename are common in atomic saves.
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}

			debounceTimer = time.AfterFunc(debounceDelay, func() {
				s.handleFileChange(watcher)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)
		}
	}
}

func (s *Server) handleFileChange(watcher *fsnotify.Watcher) {
	if err := s.reloadHolidays(); err != nil {
		log.Printf("Failed to reload holidays: %v", err)
		return
	}

	// Re-add the watch in case the file was replaced atomically.
	if err := watcher.Add(s.holidayFile); err != nil {
		log.Printf("Warning: failed to re-watch %s: %v", s.holidayFile, err)
	}

	s.broadcast("reload")
}

// handleSSE handles Server-Sent Events connections for live reloads.
func (s *Server) handleSSE(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	clientChan := make(chan string, 10)

	s.sseMu.Lock()
	s.sseClients[clientChan] = struct{}{}
	s.sseMu.Unlock()

	defer func() {
		s.sseMu.Lock()
		delete(s.sseClients, clientChan)
		s.sseMu.Unlock()
		close(clientChan)
	}()

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	_, _ = fmt.Fprintf(w, "event: connected\ndata: ok\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case msg := <-clientChan:
			_, _ = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", msg, msg)
			flusher.Flush()
		}
	}
}

// broadcast sends an event to all connected SSE clients.
func (s *Server) broadcast(event string) {
	s.sseMu.Lock()
	defer s.sseMu.Unlock()

	for clientChan := range s.sseClients {
		select {
		case clientChan <- event:
		default:
			// Client buffer full, skip.
		}
	}
}
