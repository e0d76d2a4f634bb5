package matching

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/brokerdesk/appetite-engine/internal/modules/appetite"
)

// Handler handles matching HTTP requests
type Handler struct {
	service *Service
	repo    *Repository
	log     zerolog.Logger
}

// NewHandler creates a new matching handler
func NewHandler(service *Service, repo *Repository, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		repo:    repo,
		log:     log.With().Str("handler", "matching").Logger(),
	}
}

// RegisterRoutes mounts match routes on the router
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleList)
	r.Post("/preview", h.HandlePreview)
	r.Get("/{id}", h.HandleGet)
}

// HandleRunForClient executes a matching run for a stored client.
// Mounted as POST /api/clients/{id}/matches.
func (h *Handler) HandleRunForClient(w http.ResponseWriter, r *http.Request) {
	clientID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid client id")
		return
	}

	run, err := h.service.RunForClient(clientID)
	if err != nil {
		h.log.Error().Err(err).Int64("client_id", clientID).Msg("Matching run failed")
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if run == nil {
		h.writeError(w, http.StatusNotFound, "Client not found")
		return
	}

	h.writeJSON(w, http.StatusCreated, run)
}

// previewRecord mirrors appetite.AppetiteRecord but takes premium bounds of
// any JSON shape, coerced at this boundary.
type previewRecord struct {
	UnderwriterName    string      `json:"underwriter_name"`
	TargetSectors      []string    `json:"target_sectors"`
	SpecialtyFocus     []string    `json:"specialty_focus"`
	GeographicCoverage []string    `json:"geographic_coverage"`
	RiskAppetite       string      `json:"risk_appetite"`
	MinimumPremium     interface{} `json:"minimum_premium"`
	MaximumPremium     interface{} `json:"maximum_premium"`
	Exclusions         []string    `json:"exclusions"`
}

type previewRequest struct {
	Profile appetite.ClientProfile `json:"profile"`
	Records []previewRecord        `json:"records"`
}

// HandlePreview ranks inline records without persisting a run
func (h *Handler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	records := make([]appetite.AppetiteRecord, 0, len(req.Records))
	for _, p := range req.Records {
		records = append(records, appetite.AppetiteRecord{
			UnderwriterName:    p.UnderwriterName,
			TargetSectors:      p.TargetSectors,
			SpecialtyFocus:     p.SpecialtyFocus,
			GeographicCoverage: p.GeographicCoverage,
			RiskAppetite:       p.RiskAppetite,
			MinimumPremium:     appetite.ParsePremium(p.MinimumPremium),
			MaximumPremium:     appetite.ParsePremium(p.MaximumPremium),
			Exclusions:         p.Exclusions,
		})
	}

	h.writeJSON(w, http.StatusOK, h.service.Preview(req.Profile, records))
}

// HandleGet returns a stored match run by id
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	run, err := h.repo.Get(id)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if run == nil {
		h.writeError(w, http.StatusNotFound, "Match run not found")
		return
	}

	h.writeJSON(w, http.StatusOK, run)
}

// HandleList returns match run summaries, optionally filtered by
// ?client_id= and capped by ?limit= (default 50).
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	var clientID int64
	if raw := r.URL.Query().Get("client_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "Invalid client_id filter")
			return
		}
		clientID = parsed
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	summaries, err := h.repo.List(clientID, limit)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"runs":  summaries,
		"count": len(summaries),
	})
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
