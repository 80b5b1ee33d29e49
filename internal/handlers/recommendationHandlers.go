package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"agenthub/internal/models"
	"agenthub/internal/services"
	"agenthub/internal/utils"
)

const maxMixedBodyBytes = 1 << 20

type RecommendationHandler struct {
	service services.RecommendationService
}

func NewRecommendationHandler(service services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{service: service}
}

// sendServiceError maps service errors onto status codes.
func sendServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrItemNotFound):
		utils.SendJSONError(w, "Item not found", http.StatusNotFound)
	case errors.Is(err, services.ErrCatalogUnavailable):
		utils.SendJSONError(w, "Catalog temporarily unavailable, try again", http.StatusServiceUnavailable)
	default:
		utils.SendJSONError(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *RecommendationHandler) GetTrending(w http.ResponseWriter, r *http.Request) {
	limit, err := utils.ParseLimit(r, utils.DefaultLimit)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	results, err := h.service.GetTrending(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("Error getting trending recommendations")
		sendServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, results)
}

func (h *RecommendationHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, h.service.Categories())
}

func (h *RecommendationHandler) GetByCategory(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]
	limit, err := utils.ParseLimit(r, utils.DefaultLimit)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	results, err := h.service.GetByCategory(r.Context(), category, limit)
	if err != nil {
		log.Error().Err(err).Str("category", category).Msg("Error getting category recommendations")
		sendServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, results)
}

func (h *RecommendationHandler) GetSimilar(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["id"]
	limit, err := utils.ParseLimit(r, utils.DefaultLimit)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	exclude := utils.ParseIDList(r.URL.Query().Get("exclude"))

	results, err := h.service.GetSimilar(r.Context(), itemID, limit, exclude)
	if err != nil {
		log.Error().Err(err).Str("itemID", itemID).Msg("Error getting similar items")
		sendServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, results)
}

func (h *RecommendationHandler) GetPersonalized(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	limit, err := utils.ParseLimit(r, utils.DefaultLimit)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.service.GetPersonalized(r.Context(), userID, limit))
}

func (h *RecommendationHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	limit, err := utils.ParseLimit(r, utils.DefaultLimit)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	results, err := h.service.Search(r.Context(), query, limit)
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("Error searching items")
		sendServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, results)
}

func (h *RecommendationHandler) GetMixed(w http.ResponseWriter, r *http.Request) {
	req := models.MixedRequest{Limit: services.DefaultMixedLimit}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxMixedBodyBytes))
	if err != nil {
		utils.SendJSONError(w, "Request body too large", http.StatusRequestEntityTooLarge)
		return
	}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			log.Warn().Err(err).Msg("Invalid JSON for GetMixed")
			utils.SendJSONError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.UserID = strings.TrimSpace(req.UserID)
	req.Category = strings.TrimSpace(req.Category)

	resp, err := h.service.GetMixed(r.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("userID", req.UserID).Msg("Error getting mixed recommendations")
		sendServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *RecommendationHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error getting catalog stats")
		sendServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}
