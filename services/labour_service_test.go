package services

import (
	"testing"
	"time"

	"github.com/sitetrack-api/dto"
	"github.com/sitetrack-api/models"
	"github.com/sitetrack-api/utils"
)

func TestAddLabourContract(t *testing.T) {
	setupTestDB(t)
	svc := NewLabourService()
	svc.now = func() time.Time { return fixedTime(t, "2025-04-01T00:00:00Z") }

	record, err := svc.AddLabourRecord(dto.AddLabourRequest{
		ProjectID: "p1",
		Mode:      "contract",
		ContractDetails: &dto.ContractDetailsRequest{
			ContractorName:  "Sharma Constructions",
			EstimatedAmount: 500000,
			PaidAmount:      floatPtr(120000),
		},
	})
	if err != nil {
		t.Fatalf("AddLabourRecord: %v", err)
	}

	if record.Mode != models.LabourModeContract {
		t.Errorf("mode = %q, want contract", record.Mode)
	}
	if record.ContractDetails == nil {
		t.Fatal("contract details missing")
	}
	if record.DailyLabourDetails != nil {
		t.Error("daily details must be nil on a contract record")
	}
	if record.ContractDetails.PaidAmount != 120000 {
		t.Errorf("paidAmount = %g, want 120000", record.ContractDetails.PaidAmount)
	}
}

func TestAddLabourDailyComputesTotal(t *testing.T) {
	setupTestDB(t)
	svc := NewLabourService()

	record, err := svc.AddLabourRecord(dto.AddLabourRequest{
		ProjectID: "p1",
		Mode:      "daily",
		DailyLabourDetails: &dto.DailyLabourDetailsRequest{
			Labourers: []dto.LabourerRequest{
				{Name: "Mohan", Wage: 100},
				{Name: "Suresh", Wage: 100},
			},
		},
	})
	if err != nil {
		t.Fatalf("AddLabourRecord: %v", err)
	}
	if record.DailyLabourDetails == nil {
		t.Fatal("daily details missing")
	}
	if record.DailyLabourDetails.TotalAmount != 200 {
		t.Errorf("totalAmount = %g, want sum of wages 200", record.DailyLabourDetails.TotalAmount)
	}
	if record.ContractDetails != nil {
		t.Error("contract details must be nil on a daily record")
	}
}

func TestAddLabourDailyKeepsCallerTotal(t *testing.T) {
	setupTestDB(t)
	svc := NewLabourService()

	record, err := svc.AddLabourRecord(dto.AddLabourRequest{
		ProjectID: "p1",
		Mode:      "daily",
		DailyLabourDetails: &dto.DailyLabourDetailsRequest{
			Labourers:   []dto.LabourerRequest{{Name: "Mohan", Wage: 100}},
			TotalAmount: floatPtr(250),
		},
	})
	if err != nil {
		t.Fatalf("AddLabourRecord: %v", err)
	}
	if record.DailyLabourDetails.TotalAmount != 250 {
		t.Errorf("totalAmount = %g, caller-supplied total must win", record.DailyLabourDetails.TotalAmount)
	}
}

func TestAddLabourValidation(t *testing.T) {
	setupTestDB(t)
	svc := NewLabourService()

	tests := []struct {
		name string
		req  dto.AddLabourRequest
		want string
	}{
		{
			name: "missing project",
			req:  dto.AddLabourRequest{Mode: "daily"},
			want: "Project ID and Mode are required",
		},
		{
			name: "missing mode",
			req:  dto.AddLabourRequest{ProjectID: "p1"},
			want: "Project ID and Mode are required",
		},
		{
			name: "unknown mode",
			req:  dto.AddLabourRequest{ProjectID: "p1", Mode: "weekly"},
			want: "Invalid mode. Must be 'contract' or 'daily'",
		},
		{
			name: "contract without payload",
			req:  dto.AddLabourRequest{ProjectID: "p1", Mode: "contract"},
			want: "Missing contract details",
		},
		{
			name: "contract without paid amount",
			req: dto.AddLabourRequest{
				ProjectID:       "p1",
				Mode:            "contract",
				ContractDetails: &dto.ContractDetailsRequest{ContractorName: "Sharma"},
			},
			want: "Missing contract details",
		},
		{
			name: "daily without labourers",
			req: dto.AddLabourRequest{
				ProjectID:          "p1",
				Mode:               "daily",
				DailyLabourDetails: &dto.DailyLabourDetailsRequest{},
			},
			want: "Missing daily labour details",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddLabourRecord(tt.req)
			if !utils.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if err.Error() != tt.want {
				t.Errorf("message = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}

func TestListLabourRecordsNewestFirst(t *testing.T) {
	setupTestDB(t)
	svc := NewLabourService()

	older := dto.DateTime{Time: fixedTime(t, "2025-04-01T00:00:00Z")}
	newer := dto.DateTime{Time: fixedTime(t, "2025-04-15T00:00:00Z")}

	for _, date := range []*dto.DateTime{&older, &newer} {
		_, err := svc.AddLabourRecord(dto.AddLabourRequest{
			ProjectID: "p1",
			Mode:      "daily",
			Date:      date,
			DailyLabourDetails: &dto.DailyLabourDetailsRequest{
				Labourers: []dto.LabourerRequest{{Name: "Mohan", Wage: 100}},
			},
		})
		if err != nil {
			t.Fatalf("AddLabourRecord: %v", err)
		}
	}

	records, err := svc.ListLabourRecords("p1")
	if err != nil {
		t.Fatalf("ListLabourRecords: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if !records[0].Date.After(records[1].Date) {
		t.Errorf("records not newest first: %v then %v", records[0].Date, records[1].Date)
	}
}

func TestTotalWages(t *testing.T) {
	labourers := []models.Labourer{
		{Name: "Mohan", Wage: 450},
		{Name: "Suresh", Wage: 500},
		{Name: "Ganesh", Wage: 550},
	}
	if got := TotalWages(labourers); got != 1500 {
		t.Errorf("TotalWages = %g, want 1500", got)
	}
	if got := TotalWages(nil); got != 0 {
		t.Errorf("TotalWages(nil) = %g, want 0", got)
	}
}
