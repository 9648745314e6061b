package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func TestEnrollmentsICS(t *testing.T) {
	repos := newTestRepos()
	seedActivity(repos, "WS-01", 10)
	enrollSvc := NewEnrollmentService(repos, newMockNotifier(), zap.NewNop())
	if _, err := enrollSvc.Create(context.Background(), enrollmentRequest("WS-01", "ada@example.com")); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	svc := NewFeedService(repos, zap.NewNop())
	feed, err := svc.EnrollmentsICS(context.Background(), "ada@example.com")
	if err != nil {
		t.Fatalf("EnrollmentsICS: %v", err)
	}

	for _, want := range []string{"BEGIN:VCALENDAR", "BEGIN:VEVENT", "SUMMARY:Mindful Session WS-01", "LOCATION:CBD"} {
		if !strings.Contains(feed, want) {
			t.Errorf("feed missing %q", want)
		}
	}
}

func TestEnrollmentsICSEmptyForUnknownEmail(t *testing.T) {
	repos := newTestRepos()
	svc := NewFeedService(repos, zap.NewNop())

	feed, err := svc.EnrollmentsICS(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("EnrollmentsICS: %v", err)
	}
	if strings.Contains(feed, "BEGIN:VEVENT") {
		t.Error("feed for unknown email should carry no events")
	}
	if !strings.Contains(feed, "BEGIN:VCALENDAR") {
		t.Error("feed should still be a valid calendar")
	}
}

func TestParseActivityStart(t *testing.T) {
	tests := []struct {
		date, timeOfDay string
		wantHour        int
	}{
		{"2025-08-01", "14:00", 14},
		{"2025-08-01", "2:00 PM", 14},
		{"2025-08-01", "10:00 AM - 11:00 AM", 10},
		{"2025-08-01", "sometime", 9},
	}
	for _, tt := range tests {
		got, ok := parseActivityStart(tt.date, tt.timeOfDay)
		if !ok {
			t.Errorf("parseActivityStart(%q, %q) failed", tt.date, tt.timeOfDay)
			continue
		}
		if got.Hour() != tt.wantHour {
			t.Errorf("parseActivityStart(%q, %q).Hour() = %d, want %d", tt.date, tt.timeOfDay, got.Hour(), tt.wantHour)
		}
	}

	if _, ok := parseActivityStart("not-a-date", "14:00"); ok {
		t.Error("unparseable date should fail")
	}
}

func TestEnrollmentsXLSX(t *testing.T) {
	repos := newTestRepos()
	seedActivity(repos, "WS-01", 10)
	enrollSvc := NewEnrollmentService(repos, newMockNotifier(), zap.NewNop())
	if _, err := enrollSvc.Create(context.Background(), enrollmentRequest("WS-01", "ada@example.com")); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	svc := NewExportService(repos, zap.NewNop())
	data, err := svc.EnrollmentsXLSX(context.Background(), "")
	if err != nil {
		t.Fatalf("EnrollmentsXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	header, err := f.GetCellValue("Enrollments", "A1")
	if err != nil {
		t.Fatalf("read header: %v", err)
	}
	if header != "Activity Code" {
		t.Errorf("A1 = %q", header)
	}
	email, err := f.GetCellValue("Enrollments", "H2")
	if err != nil {
		t.Fatalf("read email: %v", err)
	}
	if email != "ada@example.com" {
		t.Errorf("H2 = %q", email)
	}
}

func TestEnrollmentsXLSXFilteredByActivity(t *testing.T) {
	repos := newTestRepos()
	seedActivity(repos, "WS-01", 10)
	seedActivity(repos, "WS-02", 10)
	enrollSvc := NewEnrollmentService(repos, newMockNotifier(), zap.NewNop())
	if _, err := enrollSvc.Create(context.Background(), enrollmentRequest("WS-01", "ada@example.com")); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if _, err := enrollSvc.Create(context.Background(), enrollmentRequest("WS-02", "bob@example.com")); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	svc := NewExportService(repos, zap.NewNop())
	data, err := svc.EnrollmentsXLSX(context.Background(), "WS-02")
	if err != nil {
		t.Fatalf("EnrollmentsXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Enrollments")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus one row, got %d rows", len(rows))
	}
	if rows[1][0] != "WS-02" {
		t.Errorf("A2 = %q, want WS-02", rows[1][0])
	}
}
