package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"studysets/db"
	"studysets/models"
	"studysets/services"

	"github.com/gorilla/mux"
)

type SetHandler struct {
	service *services.SetService
}

func NewSetHandler(service *services.SetService) *SetHandler {
	return &SetHandler{service: service}
}

func (h *SetHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/sets", h.CreateSet).Methods("POST")
	router.HandleFunc("/api/sets", h.GetAllSets).Methods("GET")
	router.HandleFunc("/api/sets/{id}", h.GetSetByID).Methods("GET")
	router.HandleFunc("/api/sets/{id}", h.DeleteSet).Methods("DELETE")
}

func (h *SetHandler) CreateSet(w http.ResponseWriter, r *http.Request) {
	log.Printf("[INFO] Received create study set request")

	var req models.CreateSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode create set JSON: %v", err)
		h.writeJSONResponse(w, http.StatusBadRequest, models.CreateSetResponse{Success: false, Error: "Invalid JSON payload"})
		return
	}

	set, err := h.service.CreateSet(&req)
	if err != nil {
		log.Printf("[ERROR] Study set creation failed: %v", err)
		h.writeJSONResponse(w, http.StatusInternalServerError, models.CreateSetResponse{Success: false, Error: err.Error()})
		return
	}

	h.writeJSONResponse(w, http.StatusCreated, models.CreateSetResponse{Success: true, ID: set.ID})
}

func (h *SetHandler) GetAllSets(w http.ResponseWriter, r *http.Request) {
	sets, err := h.service.GetAllSets(r.URL.Query().Get("q"))
	if err != nil {
		h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to retrieve study sets")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, sets)
}

func (h *SetHandler) GetSetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	set, err := h.service.GetSetByID(vars["id"])
	if err != nil {
		if errors.Is(err, db.ErrSetNotFound) {
			h.writeErrorResponse(w, http.StatusNotFound, err.Error())
		} else {
			h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to retrieve study set")
		}
		return
	}

	h.writeJSONResponse(w, http.StatusOK, set)
}

func (h *SetHandler) DeleteSet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.service.DeleteSet(vars["id"]); err != nil {
		h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to delete study set")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, models.DeleteSetResponse{Success: true})
}

func (h *SetHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *SetHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
