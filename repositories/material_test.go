package repositories

import (
	"errors"
	"testing"

	"github.com/sitetrack-api/models"
	"gorm.io/gorm"
)

func TestUpdateLockedAppliesMutation(t *testing.T) {
	setupTestDB(t)
	repo := NewMaterialRepository()

	material, err := repo.Create(models.Material{
		ProjectID: "p1",
		Name:      "Cement",
		Category:  "Cement & Binders",
		Quantity:  10,
	})
	if err != nil {
		t.Fatalf("create material: %v", err)
	}

	updated, err := repo.UpdateLocked(material.ID, func(m *models.Material) error {
		m.Quantity = 25
		return nil
	})
	if err != nil {
		t.Fatalf("UpdateLocked: %v", err)
	}
	if updated.Quantity != 25 {
		t.Errorf("quantity = %g, want 25", updated.Quantity)
	}

	persisted, err := repo.FindByID(material.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if persisted.Quantity != 25 {
		t.Errorf("persisted quantity = %g, want 25", persisted.Quantity)
	}
}

func TestUpdateLockedRollsBackOnError(t *testing.T) {
	setupTestDB(t)
	repo := NewMaterialRepository()

	material, err := repo.Create(models.Material{
		ProjectID: "p1",
		Name:      "Cement",
		Category:  "Cement & Binders",
		Quantity:  10,
	})
	if err != nil {
		t.Fatalf("create material: %v", err)
	}

	boom := errors.New("boom")
	_, err = repo.UpdateLocked(material.ID, func(m *models.Material) error {
		m.Quantity = 99
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want the callback error", err)
	}

	persisted, err := repo.FindByID(material.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if persisted.Quantity != 10 {
		t.Errorf("persisted quantity = %g, callback error must roll back", persisted.Quantity)
	}
}

func TestUpdateLockedMissingMaterial(t *testing.T) {
	setupTestDB(t)
	repo := NewMaterialRepository()

	_, err := repo.UpdateLocked("missing", func(m *models.Material) error { return nil })
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestUpdateHistoryRoundTrip(t *testing.T) {
	setupTestDB(t)
	repo := NewMaterialRepository()

	material, err := repo.Create(models.Material{
		ProjectID: "p1",
		Name:      "Cement",
		Category:  "Cement & Binders",
	})
	if err != nil {
		t.Fatalf("create material: %v", err)
	}

	_, err = repo.UpdateLocked(material.ID, func(m *models.Material) error {
		m.UpdateHistory = append(m.UpdateHistory, models.HistoryEntry{Remark: "first entry"})
		return nil
	})
	if err != nil {
		t.Fatalf("UpdateLocked: %v", err)
	}

	persisted, err := repo.FindByID(material.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if len(persisted.UpdateHistory) != 1 || persisted.UpdateHistory[0].Remark != "first entry" {
		t.Errorf("history = %+v, want the appended entry back", persisted.UpdateHistory)
	}
}
