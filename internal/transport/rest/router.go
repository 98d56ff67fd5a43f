package rest

import (
	"net/http"
	"os"

	"lexdraft/internal/service"
	"lexdraft/internal/transport/rest/handler"
	"lexdraft/internal/transport/rest/middleware"

	"github.com/gorilla/mux"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService     *service.AuthService
	FlowService     *service.FlowService
	DraftService    *service.DraftService
	ReviewService   *service.ReviewService
	TemplateService *service.TemplateService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	categoryHandler := handler.NewCategoryHandler()
	flowHandler := handler.NewFlowHandler(c.FlowService, c.DraftService)
	reviewHandler := handler.NewReviewHandler(c.ReviewService)
	renderHandler := handler.NewRenderHandler()
	templateHandler := handler.NewTemplateHandler(c.TemplateService)

	// Initialize middleware
	sessionMW := middleware.NewSessionMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/categories", categoryHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/categories/{key}/questions", categoryHandler.Questions).Methods("GET", "OPTIONS")
	v1.HandleFunc("/flows", flowHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/reviews", reviewHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/render", renderHandler.Render).Methods("POST", "OPTIONS")
	v1.HandleFunc("/templates", templateHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/templates/{templateId}", templateHandler.Get).Methods("GET", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Flow session routes (require the session token issued at creation)
	flowRoutes := v1.NewRoute().Subrouter()
	flowRoutes.Use(sessionMW.RequireSession)

	flowRoutes.HandleFunc("/flows/{flowId}", flowHandler.Get).Methods("GET", "OPTIONS")
	flowRoutes.HandleFunc("/flows/{flowId}/category", flowHandler.SelectCategory).Methods("POST", "OPTIONS")
	flowRoutes.HandleFunc("/flows/{flowId}/category", flowHandler.ClearCategory).Methods("DELETE", "OPTIONS")
	flowRoutes.HandleFunc("/flows/{flowId}/answers/{questionId}", flowHandler.SetAnswer).Methods("PUT", "OPTIONS")
	flowRoutes.HandleFunc("/flows/{flowId}/advance", flowHandler.Advance).Methods("POST", "OPTIONS")
	flowRoutes.HandleFunc("/flows/{flowId}/retreat", flowHandler.Retreat).Methods("POST", "OPTIONS")
	flowRoutes.HandleFunc("/flows/{flowId}/summary", flowHandler.Summary).Methods("GET", "OPTIONS")
	flowRoutes.HandleFunc("/flows/{flowId}/draft", flowHandler.GenerateDraft).Methods("POST", "OPTIONS")

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
