package rest

import (
	"net/http"
	"os"

	"portfolio-analyzer/internal/cache"
	"portfolio-analyzer/internal/service"
	"portfolio-analyzer/internal/transport/rest/handler"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Container holds all dependencies for the router
type Container struct {
	EssayAnalyzer    *service.EssayAnalyzerService
	PortfolioService *service.PortfolioService
	TestPlanService  *service.TestPlanService
	ProfileService   *service.ProfileService
	AnalysisCache    cache.AnalysisCache
	Logger           *zap.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	essayHandler := handler.NewEssayHandler(c.EssayAnalyzer)
	portfolioHandler := handler.NewPortfolioHandler(c.PortfolioService, c.AnalysisCache, c.Logger)
	testsHandler := handler.NewTestsHandler(c.TestPlanService)
	profileHandler := handler.NewProfileHandler(c.ProfileService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// Health check
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Portfolio analysis
	r.HandleFunc("/portfolio/analyze", portfolioHandler.Analyze).Methods("POST", "OPTIONS")
	r.HandleFunc("/portfolio/analyze/latest/{studentId}", portfolioHandler.Latest).Methods("GET", "OPTIONS")
	r.HandleFunc("/portfolio/regenerate-tasks", portfolioHandler.RegenerateTasks).Methods("POST", "OPTIONS")

	// Test planning and eligibility
	r.HandleFunc("/tests/plan", testsHandler.Plan).Methods("POST", "OPTIONS")
	r.HandleFunc("/eligibility/check", testsHandler.CheckEligibility).Methods("POST", "OPTIONS")

	// Profile and activity CRUD
	r.HandleFunc("/profile/{studentId}", profileHandler.Get).Methods("GET", "OPTIONS")
	r.HandleFunc("/profile/{studentId}", profileHandler.Update).Methods("POST", "OPTIONS")
	r.HandleFunc("/profile/{studentId}/activities", profileHandler.ListActivities).Methods("GET", "OPTIONS")
	r.HandleFunc("/profile/{studentId}/activities", profileHandler.AddActivity).Methods("POST", "OPTIONS")
	r.HandleFunc("/profile/{studentId}/activities/{activityId}", profileHandler.UpdateActivity).Methods("PUT", "OPTIONS")
	r.HandleFunc("/profile/{studentId}/activities/{activityId}", profileHandler.DeleteActivity).Methods("DELETE", "OPTIONS")

	// Essay analysis
	r.HandleFunc("/essays/analyze-text", essayHandler.AnalyzeText).Methods("POST", "OPTIONS")
	r.HandleFunc("/essays/{essayId}/analyze", essayHandler.Analyze).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
