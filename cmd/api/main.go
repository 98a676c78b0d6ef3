package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shopmap/cmd/app"
	"shopmap/internal/config"
	handlers "shopmap/internal/handler"
	"shopmap/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set in the .env file")
	}

	db, repo, services, geocoder := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, geocoder, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	router.HandleFunc("/api/auth/register", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/refresh-token", handler.RefreshToken).Methods(http.MethodPost)

	router.HandleFunc("/api/me", handler.GetCurrentUser).Methods(http.MethodGet)
	router.HandleFunc("/api/users/{username}", handler.GetUser).Methods(http.MethodGet)
	router.HandleFunc("/api/users/{id}/follow", handler.FollowUser).Methods(http.MethodPost)
	router.HandleFunc("/api/users/{id}/follow", handler.UnfollowUser).Methods(http.MethodDelete)

	router.HandleFunc("/api/timeline", handler.GetTimeline).Methods(http.MethodGet)

	router.HandleFunc("/api/posts", handler.CreatePost).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{id}", handler.GetPost).Methods(http.MethodGet)
	router.HandleFunc("/api/posts/{id}", handler.DeletePost).Methods(http.MethodDelete)
	router.HandleFunc("/api/posts/{id}/like", handler.LikePost).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{id}/like", handler.UnlikePost).Methods(http.MethodDelete)
	router.HandleFunc("/api/posts/{id}/comments", handler.AddComment).Methods(http.MethodPost)
	router.HandleFunc("/api/posts/{id}/comments", handler.GetComments).Methods(http.MethodGet)

	router.HandleFunc("/api/shops/search", handler.SearchShop).Methods(http.MethodGet)
	router.HandleFunc("/api/shops/{id}", handler.GetShop).Methods(http.MethodGet)
	router.HandleFunc("/api/shops/{id}/bookmark", handler.BookmarkShop).Methods(http.MethodPost)
	router.HandleFunc("/api/shops/{id}/bookmark", handler.UnbookmarkShop).Methods(http.MethodDelete)

	router.HandleFunc("/api/stats", handler.StatsHandler).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		router,
		middleware.AuthMiddleware(cfg),
		middleware.MetricsMiddleware,
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Server listening on %s\n", addr)
	fmt.Printf("Database: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
