package clients

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler handles client profile HTTP requests
type Handler struct {
	repo *Repository
	log  zerolog.Logger
}

// NewHandler creates a new client handler
func NewHandler(repo *Repository, log zerolog.Logger) *Handler {
	return &Handler{
		repo: repo,
		log:  log.With().Str("handler", "clients").Logger(),
	}
}

// RegisterRoutes mounts client routes on the router
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)
	r.Get("/{id}", h.HandleGet)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
}

// HandleList returns all client profiles
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	records, err := h.repo.List()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list client profiles")
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"clients": records,
		"count":   len(records),
	})
}

// HandleGet returns a single client profile
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	record, err := h.repo.Get(id)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if record == nil {
		h.writeError(w, http.StatusNotFound, "Client not found")
		return
	}

	h.writeJSON(w, http.StatusOK, record)
}

// HandleCreate stores a new client profile
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var record ClientRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(record.Name) == "" {
		h.writeError(w, http.StatusBadRequest, "Client name is required")
		return
	}

	id, err := h.repo.Create(record)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create client profile")
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusCreated, map[string]interface{}{"id": id})
}

// HandleUpdate replaces an existing client profile
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var record ClientRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(record.Name) == "" {
		h.writeError(w, http.StatusBadRequest, "Client name is required")
		return
	}

	updated, err := h.repo.Update(id, record)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !updated {
		h.writeError(w, http.StatusNotFound, "Client not found")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{"id": id})
}

// HandleDelete removes a client profile
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	deleted, err := h.repo.Delete(id)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		h.writeError(w, http.StatusNotFound, "Client not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid client id")
		return 0, false
	}
	return id, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
