package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"studysets/models"
	"studysets/services/chat"

	"github.com/gorilla/mux"
)

type ChatHandler struct {
	service *chat.Service
}

func NewChatHandler(service *chat.Service) *ChatHandler {
	return &ChatHandler{service: service}
}

func (h *ChatHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/chat", h.ProcessMessage).Methods("POST")
}

func (h *ChatHandler) ProcessMessage(w http.ResponseWriter, r *http.Request) {
	log.Printf("[INFO] Received chat request")

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode chat request JSON: %v", err)
		h.writeJSONResponse(w, http.StatusBadRequest, models.ChatResponse{Response: chat.EmptyMessageReply})
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		log.Printf("[ERROR] Empty message in chat request")
		h.writeJSONResponse(w, http.StatusBadRequest, models.ChatResponse{Response: chat.EmptyMessageReply})
		return
	}

	reply := h.service.ProcessMessage(req.Message, req.History)

	log.Printf("[INFO] Chat request completed")
	h.writeJSONResponse(w, http.StatusOK, models.ChatResponse{Response: reply})
}

func (h *ChatHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}
