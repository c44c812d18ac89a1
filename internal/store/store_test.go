package store

import (
	"testing"

	"github.com/timesheet-api/internal/models"
)

func TestAddInternalActivity(t *testing.T) {
	s := New()

	activity := s.AddInternalActivity("  Formación  ")

	if activity.ID == "" {
		t.Error("Expected generated id")
	}
	if activity.Name != "Formación" {
		t.Errorf("Expected trimmed name, got %q", activity.Name)
	}
	if !activity.IsActive {
		t.Error("New activities should be active")
	}
	if activity.CreatedAt.IsZero() || activity.UpdatedAt.IsZero() {
		t.Error("Both timestamps should be set")
	}
	if !activity.CreatedAt.Equal(activity.UpdatedAt) {
		t.Error("Timestamps should be equal at creation")
	}

	// Appended after the seed activities, insertion order preserved
	activities := s.Activities()
	if len(activities) != 4 {
		t.Fatalf("Expected 4 activities, got %d", len(activities))
	}
	if activities[3].ID != activity.ID {
		t.Error("New activity should be appended last")
	}
}

func TestUpdateInternalActivity(t *testing.T) {
	s := New()
	created := s.AddInternalActivity("Formación")

	name := "Training"
	inactive := false
	updated := s.UpdateInternalActivity(created.ID, models.ActivityUpdate{Name: &name, IsActive: &inactive})

	if updated == nil {
		t.Fatal("Expected updated record")
	}
	if updated.ID != created.ID {
		t.Error("Update must not change the identifier")
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("Update must not change the creation timestamp")
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Error("Update must advance the updated timestamp")
	}
	if updated.Name != "Training" {
		t.Errorf("Expected name Training, got %q", updated.Name)
	}
	if updated.IsActive {
		t.Error("Expected activity to be deactivated")
	}
}

func TestUpdateInternalActivity_PartialFields(t *testing.T) {
	s := New()
	created := s.AddInternalActivity("Formación")

	inactive := false
	updated := s.UpdateInternalActivity(created.ID, models.ActivityUpdate{IsActive: &inactive})

	if updated == nil {
		t.Fatal("Expected updated record")
	}
	if updated.Name != "Formación" {
		t.Errorf("Name should be untouched, got %q", updated.Name)
	}
	if updated.IsActive {
		t.Error("Expected activity to be deactivated")
	}
}

func TestUpdateInternalActivity_NotFound(t *testing.T) {
	s := New()

	name := "whatever"
	if got := s.UpdateInternalActivity("missing-id", models.ActivityUpdate{Name: &name}); got != nil {
		t.Errorf("Expected nil for unknown id, got %+v", got)
	}
}

func TestDeleteInternalActivity_DoesNotCascade(t *testing.T) {
	s := New()

	// A week referencing a seed activity
	week := s.AddWeek("demo-user-1", "2026-01-05", []models.EntryInput{
		{ProjectType: models.ProjectTypeInternal, ProjectID: "int-1", Hours: 40},
	}, "")

	s.DeleteInternalActivity("int-1")

	for _, a := range s.Activities() {
		if a.ID == "int-1" {
			t.Error("Activity should be removed from subsequent reads")
		}
	}

	// The historical entry still references the deleted id
	stored := s.WeekByID(week.ID)
	if stored == nil {
		t.Fatal("Week should still exist")
	}
	if len(stored.Entries) != 1 || stored.Entries[0].ProjectID != "int-1" {
		t.Error("Deleting an activity must not alter entries referencing it")
	}
}

func TestDeleteInternalActivity_NoOpWhenAbsent(t *testing.T) {
	s := New()
	before := len(s.Activities())

	s.DeleteInternalActivity("missing-id")

	if got := len(s.Activities()); got != before {
		t.Errorf("Expected %d activities, got %d", before, got)
	}
}

func TestAddWeek(t *testing.T) {
	s := New()

	week := s.AddWeek("demo-user-1", "2026-01-05", []models.EntryInput{
		{ProjectType: models.ProjectTypeDeal, ProjectID: "deal-1", Hours: 20},
		{ProjectType: models.ProjectTypePitch, ProjectID: "pitch-1", Hours: 15},
	}, "busy week")

	if week.ID == "" {
		t.Error("Expected generated week id")
	}
	if week.TotalHours != 35 {
		t.Errorf("Expected total 35, got %d", week.TotalHours)
	}
	if len(week.Entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(week.Entries))
	}
	for _, e := range week.Entries {
		if e.ID == "" {
			t.Error("Expected generated entry id")
		}
		if e.WeekID != week.ID {
			t.Error("Entry should reference its parent week")
		}
	}
	if week.Notes != "busy week" {
		t.Errorf("Expected notes, got %q", week.Notes)
	}
	if !week.CreatedAt.Equal(week.UpdatedAt) {
		t.Error("Timestamps should be equal at creation")
	}
}

func TestAddWeek_PrependsMostRecentFirst(t *testing.T) {
	s := New()

	first := s.AddWeek("demo-user-1", "2026-01-05", []models.EntryInput{{ProjectType: "deal", ProjectID: "deal-1", Hours: 40}}, "")
	second := s.AddWeek("demo-user-1", "2026-01-12", []models.EntryInput{{ProjectType: "deal", ProjectID: "deal-1", Hours: 40}}, "")

	weeks := s.Weeks()
	if len(weeks) != 2 {
		t.Fatalf("Expected 2 weeks, got %d", len(weeks))
	}
	if weeks[0].ID != second.ID || weeks[1].ID != first.ID {
		t.Error("Newest week should come first")
	}
}

func TestUpdateWeek(t *testing.T) {
	s := New()
	created := s.AddWeek("demo-user-1", "2026-01-05", []models.EntryInput{
		{ProjectType: models.ProjectTypeDeal, ProjectID: "deal-1", Hours: 20},
	}, "initial")
	oldEntryID := created.Entries[0].ID

	updated := s.UpdateWeek(created.ID, []models.EntryInput{
		{ProjectType: models.ProjectTypeDeal, ProjectID: "deal-1", Hours: 25},
		{ProjectType: models.ProjectTypeInternal, ProjectID: "int-1", Hours: 15},
	}, "revised")

	if updated == nil {
		t.Fatal("Expected updated week")
	}
	if updated.ID != created.ID {
		t.Error("Week identifier must be preserved")
	}
	if updated.EmployeeID != "demo-user-1" || updated.WeekStart != "2026-01-05" {
		t.Error("Owner and week start must be preserved")
	}
	if updated.TotalHours != 40 {
		t.Errorf("Expected recomputed total 40, got %d", updated.TotalHours)
	}
	if len(updated.Entries) != 2 {
		t.Fatalf("Expected 2 entries after wholesale replace, got %d", len(updated.Entries))
	}
	if updated.Entries[0].ID == oldEntryID {
		t.Error("Entry identifiers should be regenerated on update")
	}
	if updated.Notes != "revised" {
		t.Errorf("Expected replaced notes, got %q", updated.Notes)
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Error("Update must advance the updated timestamp")
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("Update must not change the creation timestamp")
	}
}

func TestUpdateWeek_NotFound(t *testing.T) {
	s := New()

	if got := s.UpdateWeek("missing-id", nil, ""); got != nil {
		t.Errorf("Expected nil for unknown week, got %+v", got)
	}
}

func TestDeleteWeek(t *testing.T) {
	s := New()
	week := s.AddWeek("demo-user-1", "2026-01-05", []models.EntryInput{{ProjectType: "deal", ProjectID: "deal-1", Hours: 40}}, "")

	s.DeleteWeek(week.ID)

	if got := s.WeekByID(week.ID); got != nil {
		t.Error("Deleted week should not be readable")
	}
	if got := len(s.Weeks()); got != 0 {
		t.Errorf("Expected 0 weeks, got %d", got)
	}
}

func TestReadsReturnCopies(t *testing.T) {
	s := New()
	s.AddWeek("demo-user-1", "2026-01-05", []models.EntryInput{{ProjectType: "deal", ProjectID: "deal-1", Hours: 40}}, "")

	weeks := s.Weeks()
	weeks[0].Entries[0].Hours = 999

	if s.Weeks()[0].Entries[0].Hours != 40 {
		t.Error("Mutating a returned week must not affect the store")
	}

	activities := s.Activities()
	activities[0].Name = "tampered"

	if s.Activities()[0].Name == "tampered" {
		t.Error("Mutating a returned activity must not affect the store")
	}
}

func TestReset(t *testing.T) {
	s := New()
	s.AddInternalActivity("Extra")
	s.AddWeek("demo-user-1", "2026-01-05", []models.EntryInput{{ProjectType: "deal", ProjectID: "deal-1", Hours: 40}}, "")

	s.Reset()

	if got := len(s.Activities()); got != 3 {
		t.Errorf("Expected 3 seed activities after reset, got %d", got)
	}
	if got := len(s.Weeks()); got != 0 {
		t.Errorf("Expected 0 weeks after reset, got %d", got)
	}
}
