package main

import (
	"fmt"
	"log"
	"net/http"

	"studysets/config"
	"studysets/db"
	"studysets/handlers"
	"studysets/services"
	"studysets/services/chat"
	"studysets/services/quiz"

	"github.com/gorilla/mux"
	"github.com/tmc/langchaingo/llms/openai"
)

func main() {
	cfg := config.Load()

	if cfg.GroqAPIKey == "" {
		log.Fatal("GROQ_API_KEY environment variable is required")
	}

	llm, err := openai.New(
		openai.WithToken(cfg.GroqAPIKey),
		openai.WithModel(cfg.GroqModel),
		openai.WithBaseURL(cfg.GroqBaseURL),
	)
	if err != nil {
		log.Fatalf("Failed to create LLM client: %v", err)
	}

	setRepo := db.NewFileSetRepository(cfg.SetsFile)

	setService := services.NewSetService(setRepo)
	setHandler := handlers.NewSetHandler(setService)

	quizService := quiz.NewService(llm)
	quizHandler := handlers.NewQuizHandler(quizService)

	chatService := chat.NewService(llm)
	chatHandler := handlers.NewChatHandler(chatService)

	router := mux.NewRouter()

	router.Use(corsMiddleware)
	router.Use(jsonMiddleware)

	router.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("OPTIONS")

	setHandler.RegisterRoutes(router)
	quizHandler.RegisterRoutes(router)
	chatHandler.RegisterRoutes(router)

	router.HandleFunc("/health", healthCheckHandler).Methods("GET")

	if cfg.StaticDir != "" {
		router.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.StaticDir)))
	}

	addr := ":" + cfg.Port
	fmt.Printf("Server starting on port %s\n", cfg.Port)

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func jsonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "healthy"}`))
}
