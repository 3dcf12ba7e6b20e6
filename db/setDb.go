package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"studysets/models"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

var ErrSetNotFound = errors.New("study set not found")

type SetRepository interface {
	LoadAll() ([]*models.StudySet, error)
	SaveAll(sets []*models.StudySet) error
	CreateSet(set *models.StudySet) error
	GetSetByID(id string) (*models.StudySet, error)
	DeleteSet(id string) error
}

// FileSetRepository stores the whole collection as one JSON document that is
// read and rewritten wholesale. The read-modify-write cycle is not locked:
// two concurrent writers race and the last full rewrite wins.
type FileSetRepository struct {
	path string
}

func NewFileSetRepository(path string) *FileSetRepository {
	return &FileSetRepository{path: path}
}

func (r *FileSetRepository) LoadAll() ([]*models.StudySet, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*models.StudySet{}, nil
		}
		return nil, fmt.Errorf("failed to read sets file: %w", err)
	}

	sets := make([]*models.StudySet, 0)
	if err := json.Unmarshal(data, &sets); err != nil {
		return nil, fmt.Errorf("failed to parse sets file: %w", err)
	}

	return sets, nil
}

func (r *FileSetRepository) SaveAll(sets []*models.StudySet) error {
	data, err := json.MarshalIndent(sets, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal sets: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write sets file: %w", err)
	}

	return nil
}

func (r *FileSetRepository) CreateSet(set *models.StudySet) error {
	sets, err := r.LoadAll()
	if err != nil {
		return err
	}

	set.ID = uuid.NewString()
	sets = append(sets, set)

	return r.SaveAll(sets)
}

func (r *FileSetRepository) GetSetByID(id string) (*models.StudySet, error) {
	sets, err := r.LoadAll()
	if err != nil {
		return nil, err
	}

	set, found := lo.Find(sets, func(s *models.StudySet) bool {
		return s.ID == id
	})
	if !found {
		return nil, fmt.Errorf("study set with id %s: %w", id, ErrSetNotFound)
	}

	return set, nil
}

// DeleteSet removes every set matching id and rewrites the remainder.
// Deleting an id that does not exist is not an error.
func (r *FileSetRepository) DeleteSet(id string) error {
	sets, err := r.LoadAll()
	if err != nil {
		return err
	}

	remaining := lo.Filter(sets, func(s *models.StudySet, _ int) bool {
		return s.ID != id
	})

	return r.SaveAll(remaining)
}
