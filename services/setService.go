package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"studysets/db"
	"studysets/models"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

type SetService struct {
	repo db.SetRepository
}

func NewSetService(repo db.SetRepository) *SetService {
	return &SetService{repo: repo}
}

func (s *SetService) CreateSet(req *models.CreateSetRequest) (*models.StudySet, error) {
	log.Printf("[INFO] Starting study set creation")

	if req == nil {
		return nil, fmt.Errorf("request cannot be nil")
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = "Untitled Set"
	}

	createdAt := strings.TrimSpace(req.CreatedAt)
	if createdAt == "" {
		createdAt = time.Now().UTC().Format(time.RFC3339)
	}

	set := &models.StudySet{
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Cards:       req.Cards,
		CardCount:   len(req.Cards),
		CreatedAt:   createdAt,
	}

	if err := s.repo.CreateSet(set); err != nil {
		log.Printf("[ERROR] Failed to create study set in repository: %v", err)
		return nil, fmt.Errorf("failed to create study set: %w", err)
	}

	log.Printf("[INFO] Successfully created study set %s with %d cards", set.ID, set.CardCount)
	return set, nil
}

// GetAllSets returns every stored set, narrowed by a fuzzy title/description
// match when query is non-empty.
func (s *SetService) GetAllSets(query string) ([]*models.StudySet, error) {
	log.Printf("[INFO] Starting get all study sets")

	sets, err := s.repo.LoadAll()
	if err != nil {
		log.Printf("[ERROR] Failed to load study sets: %v", err)
		return nil, fmt.Errorf("failed to load study sets: %w", err)
	}

	query = strings.TrimSpace(query)
	if query == "" {
		log.Printf("[INFO] Successfully retrieved %d study sets", len(sets))
		return sets, nil
	}

	matching := make([]*models.StudySet, 0)
	for _, set := range sets {
		if s.setMatchesSearch(set, query) {
			matching = append(matching, set)
		}
	}

	log.Printf("[INFO] Found %d study sets matching %q", len(matching), query)
	return matching, nil
}

func (s *SetService) GetSetByID(id string) (*models.StudySet, error) {
	log.Printf("[INFO] Starting get study set %s", id)

	if strings.TrimSpace(id) == "" {
		log.Printf("[ERROR] Empty study set ID provided")
		return nil, fmt.Errorf("study set ID is required")
	}

	set, err := s.repo.GetSetByID(id)
	if err != nil {
		log.Printf("[ERROR] Failed to get study set %s: %v", id, err)
		return nil, err
	}

	log.Printf("[INFO] Successfully retrieved study set %s", id)
	return set, nil
}

func (s *SetService) DeleteSet(id string) error {
	log.Printf("[INFO] Starting delete study set %s", id)

	if strings.TrimSpace(id) == "" {
		log.Printf("[ERROR] Empty study set ID provided for deletion")
		return fmt.Errorf("study set ID is required")
	}

	if err := s.repo.DeleteSet(id); err != nil {
		log.Printf("[ERROR] Failed to delete study set %s: %v", id, err)
		return err
	}

	log.Printf("[INFO] Successfully deleted study set %s", id)
	return nil
}

func (s *SetService) setMatchesSearch(set *models.StudySet, query string) bool {
	haystack := set.Title + " " + set.Description

	// Exact substring match (highest priority)
	if fuzzy.MatchFold(query, haystack) {
		return true
	}

	// Clean words by removing punctuation, then fuzzy match each word
	words := strings.Fields(strings.ToLower(haystack))
	cleanWords := make([]string, 0, len(words))
	for _, word := range words {
		cleanWord := strings.Trim(word, ".,!?;:()[]{}\"'")
		if len(cleanWord) > 0 {
			cleanWords = append(cleanWords, cleanWord)
		}
	}

	return len(fuzzy.Find(strings.ToLower(query), cleanWords)) > 0
}
