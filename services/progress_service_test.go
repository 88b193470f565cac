package services

import (
	"testing"

	"github.com/sitetrack-api/dto"
	"github.com/sitetrack-api/models"
	"github.com/sitetrack-api/utils"
)

func TestUpsertProgressCreatesThenUpdates(t *testing.T) {
	setupTestDB(t)
	svc := NewProgressService()

	first, created, err := svc.UpsertProgress(dto.UpsertProgressRequest{
		ProjectID: "p1",
		Section:   "Foundation",
		Progress:  20,
	})
	if err != nil {
		t.Fatalf("first UpsertProgress: %v", err)
	}
	if !created {
		t.Error("expected first upsert to create")
	}
	if first.Status != models.ProgressStatusStart {
		t.Errorf("status = %q, want default Start", first.Status)
	}

	second, created, err := svc.UpsertProgress(dto.UpsertProgressRequest{
		ProjectID: "p1",
		Section:   "Foundation",
		Progress:  65,
		Status:    "In Progress",
		Remarks:   "Columns up",
	})
	if err != nil {
		t.Fatalf("second UpsertProgress: %v", err)
	}
	if created {
		t.Error("expected second upsert to update in place")
	}
	if second.ID != first.ID {
		t.Errorf("ID changed on upsert: %q -> %q", first.ID, second.ID)
	}
	if second.Progress != 65 || second.Status != models.ProgressStatusInProgress {
		t.Errorf("record = %g%% %q, want 65%% In Progress", second.Progress, second.Status)
	}

	records, err := svc.GetProgress("p1")
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, one record per (project, section) expected", len(records))
	}
	if records[0].Remarks != "Columns up" {
		t.Errorf("remarks = %q, want latest value", records[0].Remarks)
	}
}

func TestUpsertProgressSeparateSections(t *testing.T) {
	setupTestDB(t)
	svc := NewProgressService()

	for _, section := range []string{"Foundation", "Plumbing"} {
		if _, _, err := svc.UpsertProgress(dto.UpsertProgressRequest{
			ProjectID: "p1",
			Section:   section,
			Progress:  10,
		}); err != nil {
			t.Fatalf("UpsertProgress(%s): %v", section, err)
		}
	}

	records, err := svc.GetProgress("p1")
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("records = %d, want one per section", len(records))
	}
}

func TestUpsertProgressValidation(t *testing.T) {
	setupTestDB(t)
	svc := NewProgressService()

	tests := []dto.UpsertProgressRequest{
		{Section: "Foundation"},
		{ProjectID: "p1"},
	}
	for _, req := range tests {
		if _, _, err := svc.UpsertProgress(req); !utils.IsValidation(err) {
			t.Errorf("req %+v: expected validation error, got %v", req, err)
		}
	}
}
