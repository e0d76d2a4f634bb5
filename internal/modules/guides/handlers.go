package guides

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/brokerdesk/appetite-engine/internal/modules/appetite"
)

// Handler handles appetite guide HTTP requests
type Handler struct {
	repo *Repository
	log  zerolog.Logger
}

// NewHandler creates a new guide handler
func NewHandler(repo *Repository, log zerolog.Logger) *Handler {
	return &Handler{
		repo: repo,
		log:  log.With().Str("handler", "guides").Logger(),
	}
}

// RegisterRoutes mounts guide routes on the router
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)
	r.Get("/{id}", h.HandleGet)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
}

// guidePayload accepts premium bounds of any JSON shape. LLM-extracted
// appetite data frequently delivers numbers as strings ("£10,000"), so the
// values are coerced at this boundary rather than rejected.
type guidePayload struct {
	UnderwriterName    string      `json:"underwriter_name"`
	TargetSectors      []string    `json:"target_sectors"`
	SpecialtyFocus     []string    `json:"specialty_focus"`
	GeographicCoverage []string    `json:"geographic_coverage"`
	RiskAppetite       string      `json:"risk_appetite"`
	MinimumPremium     interface{} `json:"minimum_premium"`
	MaximumPremium     interface{} `json:"maximum_premium"`
	Exclusions         []string    `json:"exclusions"`
	Notes              string      `json:"notes"`
	Active             *bool       `json:"active"`
}

func (p guidePayload) toGuide() AppetiteGuide {
	active := true
	if p.Active != nil {
		active = *p.Active
	}

	return AppetiteGuide{
		AppetiteRecord: appetite.AppetiteRecord{
			UnderwriterName:    p.UnderwriterName,
			TargetSectors:      p.TargetSectors,
			SpecialtyFocus:     p.SpecialtyFocus,
			GeographicCoverage: p.GeographicCoverage,
			RiskAppetite:       p.RiskAppetite,
			MinimumPremium:     appetite.ParsePremium(p.MinimumPremium),
			MaximumPremium:     appetite.ParsePremium(p.MaximumPremium),
			Exclusions:         p.Exclusions,
		},
		Notes:  p.Notes,
		Active: active,
	}
}

// HandleList returns all appetite guides. ?active=true restricts to active ones.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	guideList, err := h.repo.List(activeOnly)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list appetite guides")
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"guides": guideList,
		"count":  len(guideList),
	})
}

// HandleGet returns a single guide by id
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	guide, err := h.repo.Get(id)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if guide == nil {
		h.writeError(w, http.StatusNotFound, "Appetite guide not found")
		return
	}

	h.writeJSON(w, http.StatusOK, guide)
}

// HandleCreate stores a new appetite guide
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var payload guidePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(payload.UnderwriterName) == "" {
		h.writeError(w, http.StatusBadRequest, "Underwriter name is required")
		return
	}

	id, err := h.repo.Create(payload.toGuide())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create appetite guide")
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusCreated, map[string]interface{}{"id": id})
}

// HandleUpdate replaces an existing guide
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var payload guidePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(payload.UnderwriterName) == "" {
		h.writeError(w, http.StatusBadRequest, "Underwriter name is required")
		return
	}

	updated, err := h.repo.Update(id, payload.toGuide())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !updated {
		h.writeError(w, http.StatusNotFound, "Appetite guide not found")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{"id": id})
}

// HandleDelete removes a guide
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
		h.writeError(w, http.StatusNotFound, "Appetite guide not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid guide id")
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
