package handlers

import (
	"net/http"

	"agenthub/internal/database"
	"agenthub/internal/utils"
)

type CommonHandler struct {
	db database.Service
}

func NewCommonHandler(db database.Service) *CommonHandler {
	return &CommonHandler{db: db}
}

func (h *CommonHandler) HelloWorldHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Hello World"})
}

// HealthHandler reports 503 when the database does not answer a ping.
func (h *CommonHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	health := h.db.Health()
	code := http.StatusOK
	if _, failed := health["error"]; failed {
		code = http.StatusServiceUnavailable
	}
	utils.RespondWithJSON(w, code, health)
}
