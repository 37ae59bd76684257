// Package server exposes the normalized Emby views as a JSON API for
// front-end pollers. Handlers only translate typed absence into HTTP
// shapes; they never see a raised upstream error.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"embyassist/internal/api/emby"
	"embyassist/internal/config"
	"embyassist/internal/logger"
	"embyassist/internal/timeutil"
)

const (
	defaultCompletedLimit = 15
	defaultMediaLimit     = 50
	defaultPersonsLimit   = 50
)

// Server is the HTTP status service.
type Server struct {
	server *http.Server
	emby   emby.ClientInterface
	cfg    *config.Config
	logger *logger.Logger
}

// New creates the status service listening on the configured port.
func New(cfg *config.Config, client emby.ClientInterface, log *logger.Logger) *Server {
	s := &Server{
		emby:   client,
		cfg:    cfg,
		logger: log,
	}

	handler := http.NewServeMux()
	handler.HandleFunc("/healthz", s.handleHealthCheck)
	handler.HandleFunc("/api/status", s.handleStatus)
	handler.HandleFunc("/api/current-processing", s.handleCurrentProcessing)
	handler.HandleFunc("/api/completed-tasks", s.handleCompletedTasks)
	handler.HandleFunc("/api/indexed-media", s.handleIndexedMedia)
	handler.HandleFunc("/api/all-tasks", s.handleAllTasks)
	handler.HandleFunc("/api/movies", s.handleMovies)
	handler.HandleFunc("/api/libraries", s.handleLibraries)
	handler.HandleFunc("/api/sessions", s.handleSessions)
	handler.HandleFunc("/api/persons", s.handlePersons)
	handler.HandleFunc("/api/image/", s.handleImage)
	handler.HandleFunc("/api/config", s.handleConfig)

	s.server = &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      logger.HTTPMiddleware(handler),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s
}

// Handler returns the root handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start runs the server until Shutdown.
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": s.server.Addr,
	})
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, `{"status":"ok"}`)
}

// handleStatus is the one view with a mandatory upstream dependency: when
// system info is absent the response is an error document, matching how
// the monitoring front-ends signal a dead server.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	status := s.emby.GetStatus(r.Context())
	if status == nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Could not connect to Emby server",
		})
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleCurrentProcessing(w http.ResponseWriter, r *http.Request) {
	processing := s.emby.ListProcessing(r.Context())

	type processingView struct {
		TaskName    string  `json:"task_name"`
		State       string  `json:"state"`
		Progress    float64 `json:"progress"`
		Category    string  `json:"category"`
		Description string  `json:"description"`
		StartedAt   string  `json:"started_at"`
	}
	views := make([]processingView, 0, len(processing))
	for _, item := range processing {
		views = append(views, processingView{
			TaskName:    item.TaskName,
			State:       item.State,
			Progress:    item.Progress,
			Category:    item.Category,
			Description: item.Description,
			StartedAt:   timeutil.Format(item.StartedAt),
		})
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleCompletedTasks(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", defaultCompletedLimit)
	writeJSON(w, http.StatusOK, s.emby.ListCompleted(r.Context(), limit))
}

func (s *Server) handleIndexedMedia(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", defaultMediaLimit)
	items := s.emby.RecentlyAdded(r.Context(), limit)

	type mediaView struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		Type       string `json:"type"`
		AddedAt    string `json:"added_at"`
		Path       string `json:"path"`
		SeriesName string `json:"series_name,omitempty"`
		Season     int    `json:"season,omitempty"`
		Episode    int    `json:"episode,omitempty"`
	}
	views := make([]mediaView, 0, len(items))
	for _, item := range items {
		views = append(views, mediaView{
			ID:         item.ID,
			Name:       item.Name,
			Type:       item.Type,
			AddedAt:    timeutil.Format(item.CreatedAt),
			Path:       item.Path,
			SeriesName: item.SeriesName,
			Season:     item.SeasonNumber,
			Episode:    item.EpisodeNumber,
		})
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleAllTasks(w http.ResponseWriter, r *http.Request) {
	tasks := s.emby.ListScheduledTasks(r.Context())

	type taskView struct {
		ID         string  `json:"id"`
		Name       string  `json:"name"`
		Category   string  `json:"category"`
		State      string  `json:"state"`
		Progress   float64 `json:"current_progress"`
		LastStart  string  `json:"last_start"`
		LastEnd    string  `json:"last_end"`
		LastStatus string  `json:"last_status"`
	}
	views := make([]taskView, 0, len(tasks))
	for _, task := range tasks {
		view := taskView{
			ID:         task.ID,
			Name:       task.Name,
			Category:   task.Category,
			State:      task.State,
			Progress:   task.CurrentProgress,
			LastStart:  timeutil.Sentinel,
			LastEnd:    timeutil.Sentinel,
			LastStatus: timeutil.Sentinel,
		}
		if task.LastExecution != nil {
			view.LastStart = timeutil.Format(task.LastExecution.StartTime)
			view.LastEnd = timeutil.Format(task.LastExecution.EndTime)
			view.LastStatus = task.LastExecution.Status
		}
		views = append(views, view)
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleMovies(w http.ResponseWriter, r *http.Request) {
	q := emby.ItemQuery{
		CollectionType: "movies",
		ParentID:       r.URL.Query().Get("parent_id"),
		Limit:          queryInt(r, "limit", defaultMediaLimit),
		StartIndex:     queryInt(r, "start_index", 0),
		SortBy:         "SortName",
		SortOrder:      "Ascending",
		SearchTerm:     r.URL.Query().Get("search"),
	}
	writeJSON(w, http.StatusOK, s.emby.QueryItems(r.Context(), q))
}

func (s *Server) handleLibraries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.emby.ListLibraries(r.Context()))
}

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.emby.ListNowPlaying(r.Context()))
}

func (s *Server) handlePersons(w http.ResponseWriter, r *http.Request) {
	persons := s.emby.ListPersons(
		r.Context(),
		queryInt(r, "limit", defaultPersonsLimit),
		queryInt(r, "start_index", 0),
		r.URL.Query().Get("search"),
	)
	writeJSON(w, http.StatusOK, persons)
}

// handleImage proxies artwork bytes. Absence is a plain 404: the front-end
// renders its own placeholder.
func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	entityID := strings.TrimPrefix(r.URL.Path, "/api/image/")
	if entityID == "" || strings.Contains(entityID, "/") {
		http.NotFound(w, r)
		return
	}

	kind := emby.ImageKindItem
	if r.URL.Query().Get("kind") == "person" {
		kind = emby.ImageKindPerson
	}

	img, ok := s.emby.GetImage(r.Context(), entityID, kind)
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", img.ContentType)
	_, _ = w.Write(img.Data)
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"processing_refresh_seconds": int(s.cfg.Refresh.Processing.Seconds()),
		"status_refresh_seconds":     int(s.cfg.Refresh.Status.Seconds()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Get().Error("Failed to write response", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
