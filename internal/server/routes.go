package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"agenthub/internal/handlers"
	"agenthub/internal/middlewares"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	r.Use(middlewares.RequestLogger)
	r.Use(middlewares.Instrument)
	r.Use(middlewares.NewCorsMiddleware(s.cfg.Origins()))

	ch := handlers.NewCommonHandler(s.db)
	r.HandleFunc("/", ch.HelloWorldHandler).Methods("GET")
	r.HandleFunc("/health", ch.HealthHandler).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.limiter.Limit)
	s.registerRecommendationRoutes(api)

	return r
}

func (s *Server) registerRecommendationRoutes(r *mux.Router) {
	rh := handlers.NewRecommendationHandler(s.recommendationService)

	r.HandleFunc("/recommendations/trending", rh.GetTrending).Methods("GET", "OPTIONS")
	r.HandleFunc("/recommendations/categories", rh.GetCategories).Methods("GET", "OPTIONS")
	r.HandleFunc("/recommendations/category/{category}", rh.GetByCategory).Methods("GET", "OPTIONS")
	r.HandleFunc("/recommendations/similar/{id}", rh.GetSimilar).Methods("GET", "OPTIONS")
	r.HandleFunc("/recommendations/personalized/{userId}", rh.GetPersonalized).Methods("GET", "OPTIONS")
	r.HandleFunc("/recommendations/search", rh.Search).Methods("GET", "OPTIONS")
	r.HandleFunc("/recommendations/mixed", rh.GetMixed).Methods("POST", "OPTIONS")
	r.HandleFunc("/recommendations/stats", rh.GetStats).Methods("GET", "OPTIONS")
}
