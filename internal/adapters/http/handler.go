package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/PabloGalante/mawazo/internal/app/ai"
	"github.com/PabloGalante/mawazo/internal/app/journal"
	"github.com/PabloGalante/mawazo/internal/domain"
	"github.com/PabloGalante/mawazo/internal/observability"
)

// HealthChecker reports whether the storage behind the journal is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HostConnector (re)connects the AI backend when no host is published yet.
type HostConnector interface {
	Connect(ctx context.Context) error
}

type Server struct {
	journal   *journal.Service
	ai        *ai.Gateway
	health    HealthChecker
	connector HostConnector
}

// NewServer builds the HTTP API. health and connector may be nil.
func NewServer(journalSvc *journal.Service, gateway *ai.Gateway, health HealthChecker, connector HostConnector) http.Handler {
	s := &Server{journal: journalSvc, ai: gateway, health: health, connector: connector}

	r := mux.NewRouter()
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		methodNotAllowed(w)
	})

	r.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)

	r.HandleFunc("/entries", s.handleListEntries).Methods(http.MethodGet)
	r.HandleFunc("/entries", s.handleCreateEntry).Methods(http.MethodPost)
	r.HandleFunc("/entries/{id}", s.handleGetEntry).Methods(http.MethodGet)
	r.HandleFunc("/entries/{id}", s.handleDeleteEntry).Methods(http.MethodDelete)
	r.HandleFunc("/streak", s.handleStreak).Methods(http.MethodGet)

	r.HandleFunc("/ai/status", s.handleAIStatus).Methods(http.MethodGet)
	r.HandleFunc("/ai/probe", s.handleProbe).Methods(http.MethodPost)
	r.HandleFunc("/ai/warmup", s.handleWarmUp).Methods(http.MethodPost)
	r.HandleFunc("/ai/prompt", s.handlePrompt).Methods(http.MethodGet)
	r.HandleFunc("/ai/mood", s.handleMood).Methods(http.MethodPost)
	r.HandleFunc("/ai/enhance", s.textTask(s.ai.EnhanceWriting)).Methods(http.MethodPost)
	r.HandleFunc("/ai/summarize", s.textTask(s.ai.SummarizeContent)).Methods(http.MethodPost)
	r.HandleFunc("/ai/proofread", s.textTask(s.ai.ProofreadEntry)).Methods(http.MethodPost)
	r.HandleFunc("/ai/translate", s.handleTranslate).Methods(http.MethodPost)
	r.HandleFunc("/ai/life-story", s.handleLifeStory).Methods(http.MethodPost)
	r.HandleFunc("/ws/life-story", s.handleLifeStoryWS).Methods(http.MethodGet)

	return chainMiddlewares(r, withRecovery, withLogging, withRequestID, withCORS)
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type createEntryRequest struct {
	Content    string   `json:"content"`
	Moods      []string `json:"moods,omitempty"`
	AudioFiles [][]byte `json:"audioFiles,omitempty"`
	ImageFiles [][]byte `json:"imageFiles,omitempty"`
	// DetectMood asks the AI for moods when none are given.
	DetectMood bool `json:"detectMood,omitempty"`
}

type entryResponse struct {
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	Moods     []domain.Mood `json:"moods"`
	Timestamp time.Time     `json:"timestamp"`
	WordCount int           `json:"wordCount"`
	HasAudio  bool          `json:"hasAudio"`
	HasImage  bool          `json:"hasImage"`
}

type listEntriesResponse struct {
	Entries []entryResponse `json:"entries"`
}

type streakResponse struct {
	Streak int `json:"streak"`
}

type statusResponse struct {
	Available bool `json:"available"`
}

type textRequest struct {
	Text       string `json:"text"`
	TargetLang string `json:"targetLang,omitempty"`
}

type textResponse struct {
	Result string `json:"result"`
}

type moodResponse struct {
	Moods []domain.Mood `json:"moods"`
}

type lifeStoryResponse struct {
	Story      string `json:"story"`
	EntryCount int    `json:"entryCount"`
}

// ─────────────────────────────────────────────
// Journal handlers
// ─────────────────────────────────────────────

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		if err := s.health.HealthCheck(r.Context()); err != nil {
			observability.LoggerFromContext(r.Context()).Warn("health check failed", zap.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := journal.Query{
		Search: q.Get("q"),
		Sort:   journal.ParseSortBy(q.Get("sort")),
	}
	if raw := q.Get("mood"); raw != "" {
		m, ok := domain.ParseMood(raw)
		if !ok {
			badRequest(w, "unknown mood")
			return
		}
		query.Mood = m
	}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			badRequest(w, "limit must be a non-negative integer")
			return
		}
		query.Limit = n
	}

	entries, err := s.journal.ListEntries(r.Context(), query)
	if err != nil {
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listEntriesResponse{Entries: toEntriesResponse(entries)})
}

func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	in := domain.NewEntry{
		Content:    req.Content,
		AudioFiles: req.AudioFiles,
		ImageFiles: req.ImageFiles,
	}
	for _, m := range req.Moods {
		in.Moods = append(in.Moods, domain.Mood(m))
	}
	if len(in.Moods) == 0 && req.DetectMood && strings.TrimSpace(req.Content) != "" {
		in.Moods = s.ai.AnalyzeMood(r.Context(), req.Content)
	}

	entry, err := s.journal.SaveEntry(r.Context(), in)
	if err != nil {
		s.journalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

func (s *Server) handleGetEntry(w http.ResponseWriter, r *http.Request) {
	id := domain.JournalEntryID(mux.Vars(r)["id"])

	entry, err := s.journal.GetEntry(r.Context(), id)
	if err != nil {
		s.journalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	id := domain.JournalEntryID(mux.Vars(r)["id"])

	if err := s.journal.DeleteEntry(r.Context(), id); err != nil {
		s.journalError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleStreak(w http.ResponseWriter, r *http.Request) {
	streak, err := s.journal.CalculateStreak(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, streakResponse{Streak: streak})
}

// ─────────────────────────────────────────────
// AI handlers
// ─────────────────────────────────────────────

func (s *Server) handleAIStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Available: s.ai.IsAvailable()})
}

func (s *Server) handleProbe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.ai.Probe(r.Context()))
}

// handleWarmUp first retries connecting the backend, so a model that was
// unreachable at start-up is published before the gateway warms it up.
func (s *Server) handleWarmUp(w http.ResponseWriter, r *http.Request) {
	if s.connector != nil {
		if err := s.connector.Connect(r.Context()); err != nil {
			observability.LoggerFromContext(r.Context()).Warn("AI host still unavailable", zap.Error(err))
		}
	}
	writeJSON(w, http.StatusOK, s.ai.WarmUp(r.Context()))
}

func (s *Server) handlePrompt(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, textResponse{Result: s.ai.GenerateJournalPrompt()})
}

func (s *Server) handleMood(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeText(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, moodResponse{Moods: s.ai.AnalyzeMood(r.Context(), req.Text)})
}

// textTask serves the gateway tasks that map one text to another.
func (s *Server) textTask(task func(ctx context.Context, text string) string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeText(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, textResponse{Result: task(r.Context(), req.Text)})
	}
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeText(w, r)
	if !ok {
		return
	}
	if strings.TrimSpace(req.TargetLang) == "" {
		badRequest(w, "targetLang is required")
		return
	}
	writeJSON(w, http.StatusOK, textResponse{Result: s.ai.TranslateEntry(r.Context(), req.Text, req.TargetLang)})
}

func (s *Server) handleLifeStory(w http.ResponseWriter, r *http.Request) {
	contents, err := s.journal.EntryContents(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}

	story := s.ai.GenerateLifeStory(r.Context(), contents, nil)
	writeJSON(w, http.StatusOK, lifeStoryResponse{Story: story, EntryCount: len(contents)})
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func decodeText(w http.ResponseWriter, r *http.Request) (textRequest, bool) {
	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return req, false
	}
	if strings.TrimSpace(req.Text) == "" {
		badRequest(w, "text is required")
		return req, false
	}
	return req, true
}

func (s *Server) journalError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, journal.ErrEmptyContent):
		badRequest(w, "content is required")
	case errors.Is(err, journal.ErrUnknownMood):
		badRequest(w, err.Error())
	case errors.Is(err, journal.ErrEntryNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "entry not found"})
	default:
		internalError(w, r, err)
	}
}

func toEntryResponse(e *domain.JournalEntry) entryResponse {
	moods := e.Moods
	if moods == nil {
		moods = []domain.Mood{}
	}
	return entryResponse{
		ID:        string(e.ID),
		Content:   e.Content,
		Moods:     moods,
		Timestamp: e.Timestamp,
		WordCount: e.WordCount,
		HasAudio:  e.HasAudio,
		HasImage:  e.HasImage,
	}
}

func toEntriesResponse(entries []*domain.JournalEntry) []entryResponse {
	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

func internalError(w http.ResponseWriter, r *http.Request, err error) {
	observability.LoggerFromContext(r.Context()).Error("request failed", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": "internal server error",
	})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error": "method not allowed",
	})
}
