package services

import (
	"testing"

	"ev-warehouse/models"
	"ev-warehouse/utils"
)

func newTestLogger() *utils.Logger { return utils.NewLogger() }

func TestLoaderStageTrimsAndNulls(t *testing.T) {
	l := NewLoader(newTestLogger())

	rows := []*models.IntakeRow{
		{Company: "  Tesla ", Model: "Model 3", Seat: " 5 ", PriceRaw: "£38,990*"},
		{Company: "", Model: "   ", Battery: "57.5 kWh"},
	}

	staged := l.Stage(rows)
	if len(staged) != 2 {
		t.Fatalf("expected 2 staged rows, got %d", len(staged))
	}

	first := staged[0]
	if first.ID != 1 {
		t.Errorf("expected first staged id 1, got %d", first.ID)
	}
	if first.Company == nil || *first.Company != "Tesla" {
		t.Errorf("expected trimmed company %q, got %v", "Tesla", first.Company)
	}
	if first.Seat == nil || *first.Seat != "5" {
		t.Errorf("expected trimmed seat %q, got %v", "5", first.Seat)
	}

	second := staged[1]
	if second.Company != nil {
		t.Errorf("expected empty company to be NULL, got %q", *second.Company)
	}
	if second.Model != nil {
		t.Errorf("expected whitespace model to be NULL, got %q", *second.Model)
	}
	if second.Battery == nil || *second.Battery != "57.5 kWh" {
		t.Errorf("expected battery preserved, got %v", second.Battery)
	}
	if second.Towing != nil {
		t.Errorf("expected absent towing to be NULL, got %q", *second.Towing)
	}
}

func TestLoaderStageKeepsEveryRow(t *testing.T) {
	l := NewLoader(newTestLogger())

	// Rows are never dropped during staging, however empty.
	rows := []*models.IntakeRow{{}, {}, {Company: "BMW"}}
	staged := l.Stage(rows)
	if len(staged) != 3 {
		t.Fatalf("expected 3 staged rows, got %d", len(staged))
	}
	for i, r := range staged {
		if r.ID != int64(i+1) {
			t.Errorf("staged row %d has id %d; want %d", i, r.ID, i+1)
		}
	}
}
