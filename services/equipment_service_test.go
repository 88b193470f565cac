package services

import (
	"testing"
	"time"

	"github.com/sitetrack-api/dto"
	"github.com/sitetrack-api/models"
	"github.com/sitetrack-api/utils"
)

func TestComputeRentalCost(t *testing.T) {
	tests := []struct {
		name  string
		unit  models.RentalUnit
		rate  float64
		hours float64
		want  float64
	}{
		{"per hour", models.RentalUnitPerHour, 500, 6, 3000},
		{"per hour idle", models.RentalUnitPerHour, 500, 0, 0},
		{"per day ignores hours", models.RentalUnitPerDay, 2000, 6, 2000},
		{"fixed never charges per entry", models.RentalUnitFixed, 90000, 8, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeRentalCost(tt.unit, tt.rate, tt.hours); got != tt.want {
				t.Errorf("ComputeRentalCost = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestAddEquipmentDefaults(t *testing.T) {
	setupTestDB(t)
	svc := NewEquipmentService()

	equipment, err := svc.AddEquipment(dto.AddEquipmentRequest{
		ProjectID:  "p1",
		Name:       "JCB 3DX",
		Type:       "Excavator",
		RentalRate: 1200,
		RentalUnit: "Per Hour",
	})
	if err != nil {
		t.Fatalf("AddEquipment: %v", err)
	}
	if equipment.Status != models.EquipmentStatusActive {
		t.Errorf("status = %q, want default Active", equipment.Status)
	}
	if equipment.FuelType != "None" {
		t.Errorf("fuelType = %q, want default None", equipment.FuelType)
	}
}

func TestAddLogDerivesCosts(t *testing.T) {
	setupTestDB(t)
	svc := NewEquipmentService()
	logDate := fixedTime(t, "2025-05-02T00:00:00Z")
	svc.now = func() time.Time { return logDate }

	equipment, err := svc.AddEquipment(dto.AddEquipmentRequest{
		ProjectID:  "p1",
		Name:       "JCB 3DX",
		Type:       "Excavator",
		RentalRate: 500,
		RentalUnit: "Per Hour",
		FuelType:   "Diesel",
	})
	if err != nil {
		t.Fatalf("AddEquipment: %v", err)
	}

	log, err := svc.AddLog(dto.AddEquipmentLogRequest{
		EquipmentID:  equipment.ID,
		HoursUsed:    floatPtr(4),
		FuelConsumed: floatPtr(12),
		FuelCost:     floatPtr(300),
	})
	if err != nil {
		t.Fatalf("AddLog: %v", err)
	}

	if log.RentalCost != 2000 {
		t.Errorf("rentalCost = %g, want 4h x 500 = 2000", log.RentalCost)
	}
	if log.TotalCost != 2300 {
		t.Errorf("totalCost = %g, want rental 2000 + fuel 300", log.TotalCost)
	}
	if !log.Date.Equal(logDate) {
		t.Errorf("date = %v, want clock fallback %v", log.Date, logDate)
	}
}

func TestAddLogUnknownEquipment(t *testing.T) {
	setupTestDB(t)
	svc := NewEquipmentService()

	_, err := svc.AddLog(dto.AddEquipmentLogRequest{EquipmentID: "missing"})
	if !utils.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestDeleteEquipmentRemovesLogs(t *testing.T) {
	setupTestDB(t)
	svc := NewEquipmentService()

	equipment, err := svc.AddEquipment(dto.AddEquipmentRequest{
		ProjectID:  "p1",
		Name:       "Concrete Mixer",
		Type:       "Mixer",
		RentalRate: 800,
		RentalUnit: "Per Day",
	})
	if err != nil {
		t.Fatalf("AddEquipment: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := svc.AddLog(dto.AddEquipmentLogRequest{EquipmentID: equipment.ID}); err != nil {
			t.Fatalf("AddLog: %v", err)
		}
	}

	if err := svc.DeleteEquipment(equipment.ID); err != nil {
		t.Fatalf("DeleteEquipment: %v", err)
	}

	logs, err := svc.ListLogs(equipment.ID)
	if err != nil {
		t.Fatalf("ListLogs: %v", err)
	}
	if len(logs) != 0 {
		t.Errorf("logs remaining after delete = %d, want 0", len(logs))
	}

	if err := svc.DeleteEquipment(equipment.ID); !utils.IsNotFound(err) {
		t.Fatalf("expected not-found on second delete, got %v", err)
	}
}

func TestUpdateEquipmentPartial(t *testing.T) {
	setupTestDB(t)
	svc := NewEquipmentService()

	equipment, err := svc.AddEquipment(dto.AddEquipmentRequest{
		ProjectID:  "p1",
		Name:       "Tower Crane",
		Type:       "Crane",
		RentalRate: 15000,
		RentalUnit: "Per Day",
	})
	if err != nil {
		t.Fatalf("AddEquipment: %v", err)
	}

	inactive := "Inactive"
	updated, err := svc.UpdateEquipment(equipment.ID, dto.UpdateEquipmentRequest{Status: &inactive})
	if err != nil {
		t.Fatalf("UpdateEquipment: %v", err)
	}
	if updated.Status != models.EquipmentStatusInactive {
		t.Errorf("status = %q, want Inactive", updated.Status)
	}
	if updated.RentalRate != 15000 {
		t.Errorf("rentalRate = %g, want unchanged 15000", updated.RentalRate)
	}

	if _, err := svc.UpdateEquipment("missing", dto.UpdateEquipmentRequest{}); !utils.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestDeleteLogNotFound(t *testing.T) {
	setupTestDB(t)
	svc := NewEquipmentService()

	if err := svc.DeleteLog("missing"); !utils.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
