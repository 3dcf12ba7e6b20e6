package db

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"studysets/models"
)

func testRepo(t *testing.T) *FileSetRepository {
	t.Helper()
	return NewFileSetRepository(filepath.Join(t.TempDir(), "sets.json"))
}

func testSet(title string, cardCount int) *models.StudySet {
	cards := make([]json.RawMessage, 0, cardCount)
	for i := 0; i < cardCount; i++ {
		cards = append(cards, json.RawMessage(`{"term":"t","definition":"d"}`))
	}
	return &models.StudySet{
		Title:     title,
		Cards:     cards,
		CardCount: cardCount,
		CreatedAt: "2026-01-15T10:00:00Z",
	}
}

func TestLoadAllMissingFile(t *testing.T) {
	repo := testRepo(t)

	sets, err := repo.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() on missing file returned error: %v", err)
	}
	if sets == nil {
		t.Fatal("LoadAll() on missing file returned nil, expected empty slice")
	}
	if len(sets) != 0 {
		t.Fatalf("LoadAll() on missing file returned %d sets, expected 0", len(sets))
	}
}

func TestSaveAllLoadAllRoundTrip(t *testing.T) {
	repo := testRepo(t)

	saved := []*models.StudySet{testSet("Bio", 3), testSet("Chem", 1)}
	saved[0].ID = "id-1"
	saved[1].ID = "id-2"

	if err := repo.SaveAll(saved); err != nil {
		t.Fatalf("SaveAll() returned error: %v", err)
	}

	loaded, err := repo.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() returned error: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("LoadAll() returned %d sets, expected 2", len(loaded))
	}
	if loaded[0].ID != "id-1" || loaded[1].ID != "id-2" {
		t.Errorf("LoadAll() lost ordering: got %s, %s", loaded[0].ID, loaded[1].ID)
	}
	if loaded[0].Title != "Bio" || loaded[0].CardCount != 3 {
		t.Errorf("round trip corrupted set: got title=%q card_count=%d", loaded[0].Title, loaded[0].CardCount)
	}
	if len(loaded[0].Cards) != 3 {
		t.Errorf("round trip lost cards: got %d, expected 3", len(loaded[0].Cards))
	}
}

func TestCreateSetAssignsUniqueIDs(t *testing.T) {
	repo := testRepo(t)

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		set := testSet("History", 2)
		if err := repo.CreateSet(set); err != nil {
			t.Fatalf("CreateSet() returned error: %v", err)
		}
		if set.ID == "" {
			t.Fatal("CreateSet() left ID empty")
		}
		if seen[set.ID] {
			t.Fatalf("CreateSet() produced duplicate ID %s", set.ID)
		}
		seen[set.ID] = true
	}

	sets, err := repo.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() returned error: %v", err)
	}
	if len(sets) != 5 {
		t.Fatalf("expected 5 persisted sets, got %d", len(sets))
	}
}

func TestGetSetByID(t *testing.T) {
	repo := testRepo(t)

	set := testSet("Physics", 4)
	if err := repo.CreateSet(set); err != nil {
		t.Fatalf("CreateSet() returned error: %v", err)
	}

	got, err := repo.GetSetByID(set.ID)
	if err != nil {
		t.Fatalf("GetSetByID() returned error: %v", err)
	}
	if got.Title != "Physics" || got.CardCount != 4 {
		t.Errorf("GetSetByID() returned wrong set: title=%q card_count=%d", got.Title, got.CardCount)
	}

	_, err = repo.GetSetByID("no-such-id")
	if !errors.Is(err, ErrSetNotFound) {
		t.Errorf("GetSetByID() with unknown id returned %v, expected ErrSetNotFound", err)
	}
}

func TestDeleteSet(t *testing.T) {
	repo := testRepo(t)

	keep := testSet("Keep", 1)
	drop := testSet("Drop", 1)
	if err := repo.CreateSet(keep); err != nil {
		t.Fatalf("CreateSet() returned error: %v", err)
	}
	if err := repo.CreateSet(drop); err != nil {
		t.Fatalf("CreateSet() returned error: %v", err)
	}

	if err := repo.DeleteSet(drop.ID); err != nil {
		t.Fatalf("DeleteSet() returned error: %v", err)
	}

	sets, err := repo.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() returned error: %v", err)
	}
	if len(sets) != 1 || sets[0].ID != keep.ID {
		t.Fatalf("DeleteSet() left wrong collection: %d sets", len(sets))
	}

	if _, err := repo.GetSetByID(drop.ID); !errors.Is(err, ErrSetNotFound) {
		t.Errorf("deleted set still retrievable, err=%v", err)
	}
}

func TestDeleteSetNonexistentIsNoOp(t *testing.T) {
	repo := testRepo(t)

	set := testSet("Stay", 2)
	if err := repo.CreateSet(set); err != nil {
		t.Fatalf("CreateSet() returned error: %v", err)
	}

	if err := repo.DeleteSet("no-such-id"); err != nil {
		t.Fatalf("DeleteSet() with unknown id returned error: %v", err)
	}

	sets, err := repo.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() returned error: %v", err)
	}
	if len(sets) != 1 || sets[0].ID != set.ID {
		t.Fatalf("DeleteSet() with unknown id changed the collection: %d sets", len(sets))
	}
}
