package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rpedroni/project-luca-car-trivia/internal/domain/entities"
	"github.com/rpedroni/project-luca-car-trivia/internal/service"
)

// maxBodyBytes caps request bodies; every request body here is a tiny JSON object.
const maxBodyBytes = 1 << 12

var errNotFound = errors.New("not found")

// Handler serves the browser API.
type Handler struct {
	catalog    service.Catalog
	factory    SessionFactory
	sessions   SessionStore
	playerName string
	logger     *zap.Logger

	mu    sync.Mutex
	feeds map[string]*SpeechFeed
}

// NewHandler creates a Handler and drops the speech feed of every session the
// store evicts.
func NewHandler(
	catalog service.Catalog,
	factory SessionFactory,
	sessions SessionStore,
	playerName string,
	logger *zap.Logger,
) *Handler {
	h := &Handler{
		catalog:    catalog,
		factory:    factory,
		sessions:   sessions,
		playerName: playerName,
		logger:     logger,
		feeds:      make(map[string]*SpeechFeed),
	}
	sessions.OnEvict(h.dropFeed)
	return h
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) listModes(w http.ResponseWriter, _ *http.Request) {
	modes := entities.Modes()
	out := make([]modeView, 0, len(modes))
	for _, m := range modes {
		out = append(out, modeView{ID: m, Title: m.Title(), Description: m.Description()})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) listBrands(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.AllBrands())
}

func (h *Handler) getBrand(w http.ResponseWriter, r *http.Request) {
	b, ok := h.catalog.BrandByID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "brand not found")
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *Handler) listBrandCars(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.catalog.BrandByID(id); !ok {
		writeError(w, http.StatusNotFound, "brand not found")
		return
	}
	writeJSON(w, http.StatusOK, h.catalog.CarsByBrand(id))
}

func (h *Handler) listCars(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.AllCars())
}

type startRequest struct {
	Mode entities.Mode `json:"mode"`
}

func (h *Handler) startSession(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	if !req.Mode.Valid() {
		writeError(w, http.StatusBadRequest, "unknown mode")
		return
	}

	id := uuid.NewString()
	feed := NewSpeechFeed()

	session, err := h.factory.New(id, req.Mode, feed)
	if err != nil {
		h.logger.Error("failed to create session", zap.Error(err), zap.String("mode", string(req.Mode)))
		writeError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	h.mu.Lock()
	h.feeds[id] = feed
	h.mu.Unlock()
	h.sessions.Store(session)

	if err = session.Start(); err != nil {
		h.logger.Error("failed to start session", zap.Error(err), zap.String("session_id", id))
		h.sessions.Delete(id)
		writeError(w, http.StatusInternalServerError, "failed to start session")
		return
	}

	writeJSON(w, http.StatusCreated, renderSession(session.Snapshot(), h.catalog, feed.Drain()))
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	session, feed, err := h.lookup(r)
	if err != nil {
		writeLookupError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, renderSession(session.Snapshot(), h.catalog, feed.Drain()))
}

type answerRequest struct {
	Round    int    `json:"round"`
	AnswerID string `json:"answerId"`
}

func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	session, feed, err := h.lookup(r)
	if err != nil {
		writeLookupError(w, err)
		return
	}

	var req answerRequest
	if err = decodeJSON(w, r, &req); err != nil || req.AnswerID == "" {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}

	var out entities.Outcome
	if req.Round == 0 {
		out = session.Submit(req.AnswerID)
	} else {
		out = session.SubmitRound(req.Round, req.AnswerID)
	}

	view := renderSession(session.Snapshot(), h.catalog, feed.Drain())
	view.Accepted = &out.Accepted
	if out.Accepted {
		view.Correct = &out.Correct
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) leaveSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	if !h.sessions.Delete(id) {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) scorecard(w http.ResponseWriter, r *http.Request) {
	session, _, err := h.lookup(r)
	if err != nil {
		writeLookupError(w, err)
		return
	}

	snap := session.Snapshot()
	pdf, err := renderScorecard(scorecardData{
		SessionID:  snap.SessionID,
		PlayerName: h.playerName,
		Mode:       snap.Mode,
		Score:      snap.Score,
		Attempts:   snap.Attempts,
		BestStreak: snap.BestStreak,
		Date:       time.Now(),
	})
	if err != nil {
		h.logger.Error("failed to render scorecard", zap.Error(err), zap.String("session_id", snap.SessionID))
		writeError(w, http.StatusInternalServerError, "failed to render scorecard")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=scorecard-"+snap.SessionID+".pdf")
	_, _ = w.Write(pdf)
}

type badIDError struct{}

func (badIDError) Error() string { return "invalid session id" }

func (h *Handler) lookup(r *http.Request) (*service.Session, *SpeechFeed, error) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil, badIDError{}
	}

	session, ok := h.sessions.Get(id)
	if !ok {
		return nil, nil, errNotFound
	}

	h.mu.Lock()
	feed, ok := h.feeds[id]
	h.mu.Unlock()
	if !ok {
		// Sessions created through another transport have no feed.
		return nil, nil, errNotFound
	}

	return session, feed, nil
}

func (h *Handler) dropFeed(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.feeds, id)
}

func writeLookupError(w http.ResponseWriter, err error) {
	var bad badIDError
	if errors.As(err, &bad) {
		writeError(w, http.StatusBadRequest, bad.Error())
		return
	}
	writeError(w, http.StatusNotFound, "session not found")
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
