package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/kwon0144/HarborHub/internal/dto"
	"github.com/kwon0144/HarborHub/internal/model"
)

func createActivityRequest(code string) *dto.CreateActivityRequest {
	return &dto.CreateActivityRequest{
		Code:     code,
		Name:     "Stress Less Workshop",
		Date:     "2025-08-01",
		Time:     "2:00 PM",
		Location: "Fitzroy",
		Type:     "workshop",
		Capacity: 15,
	}
}

func TestCreateActivity(t *testing.T) {
	repos := newTestRepos()
	svc := NewActivityService(repos, zap.NewNop())

	got, err := svc.Create(context.Background(), createActivityRequest("WS-01"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.Code != "WS-01" || got.Capacity != 15 {
		t.Errorf("unexpected response %+v", got)
	}
	if got.NumOfEnrollments != 0 {
		t.Errorf("new activity should have 0 enrollments, got %d", got.NumOfEnrollments)
	}
}

func TestCreateActivityDuplicateCode(t *testing.T) {
	repos := newTestRepos()
	svc := NewActivityService(repos, zap.NewNop())

	if _, err := svc.Create(context.Background(), createActivityRequest("WS-01")); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	if _, err := svc.Create(context.Background(), createActivityRequest("WS-01")); !errors.Is(err, ErrDuplicateActivityCode) {
		t.Errorf("got %v, want ErrDuplicateActivityCode", err)
	}
}

func TestCreateActivityValidation(t *testing.T) {
	repos := newTestRepos()
	svc := NewActivityService(repos, zap.NewNop())

	req := createActivityRequest("WS-01")
	req.Location = "Docklands"
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrUnknownLocation) {
		t.Errorf("got %v, want ErrUnknownLocation", err)
	}

	req = createActivityRequest("WS-01")
	req.Type = "seminar"
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrUnknownActivityType) {
		t.Errorf("got %v, want ErrUnknownActivityType", err)
	}

	req = createActivityRequest("WS-01")
	req.Capacity = -1
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrInvalidCapacity) {
		t.Errorf("got %v, want ErrInvalidCapacity", err)
	}
}

func TestCreateActivityZeroCapacity(t *testing.T) {
	repos := newTestRepos()
	svc := NewActivityService(repos, zap.NewNop())

	req := createActivityRequest("WS-01")
	req.Capacity = 0
	got, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.Capacity != 0 {
		t.Errorf("capacity = %d, want 0", got.Capacity)
	}

	// Nobody can enroll until the capacity is raised.
	enrollSvc := NewEnrollmentService(repos, newMockNotifier(), zap.NewNop())
	if _, err := enrollSvc.Create(context.Background(), enrollmentRequest("WS-01", "ada@example.com")); !errors.Is(err, ErrActivityFull) {
		t.Errorf("got %v, want ErrActivityFull", err)
	}
}

func TestGetActivityDerivesCountAndAddress(t *testing.T) {
	repos := newTestRepos()
	_ = repos.Address.Upsert(context.Background(), &model.Address{
		Location: "CBD", AddressLine: "123 Collins St", Suburb: "Melbourne",
		State: "VIC", Postcode: "3000", Country: "Australia",
	})
	seedActivity(repos, "WS-01", 10)

	enrollSvc := NewEnrollmentService(repos, newMockNotifier(), zap.NewNop())
	if _, err := enrollSvc.Create(context.Background(), enrollmentRequest("WS-01", "ada@example.com")); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	svc := NewActivityService(repos, zap.NewNop())
	got, err := svc.GetByCode(context.Background(), "WS-01")
	if err != nil {
		t.Fatalf("GetByCode: %v", err)
	}
	if got.NumOfEnrollments != 1 {
		t.Errorf("count = %d, want 1", got.NumOfEnrollments)
	}
	if got.Address == nil || got.Address.AddressLine != "123 Collins St" {
		t.Errorf("address not joined: %+v", got.Address)
	}
}

func TestListActivitiesOrdered(t *testing.T) {
	repos := newTestRepos()
	svc := NewActivityService(repos, zap.NewNop())

	later := createActivityRequest("WS-02")
	later.Date = "2025-09-01"
	if _, err := svc.Create(context.Background(), later); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(context.Background(), createActivityRequest("WS-01")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(got))
	}
	if got[0].Code != "WS-01" || got[1].Code != "WS-02" {
		t.Errorf("activities not date-ordered: %s, %s", got[0].Code, got[1].Code)
	}
}

func TestUpdateActivityPartial(t *testing.T) {
	repos := newTestRepos()
	svc := NewActivityService(repos, zap.NewNop())

	if _, err := svc.Create(context.Background(), createActivityRequest("WS-01")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	newName := "Stress Less Workshop v2"
	newCapacity := 20
	got, err := svc.Update(context.Background(), "WS-01", &dto.UpdateActivityRequest{
		Name:     &newName,
		Capacity: &newCapacity,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Name != newName || got.Capacity != newCapacity {
		t.Errorf("update not applied: %+v", got)
	}
	// Untouched fields keep their values.
	if got.Location != "Fitzroy" || got.Type != "workshop" {
		t.Errorf("untouched fields changed: %+v", got)
	}

	if _, err := svc.Update(context.Background(), "NOPE-99", &dto.UpdateActivityRequest{Name: &newName}); !errors.Is(err, ErrActivityNotFound) {
		t.Errorf("got %v, want ErrActivityNotFound", err)
	}
}

func TestDeleteActivityCascades(t *testing.T) {
	repos := newTestRepos()
	seedActivity(repos, "WS-01", 10)
	enrollSvc := NewEnrollmentService(repos, newMockNotifier(), zap.NewNop())
	if _, err := enrollSvc.Create(context.Background(), enrollmentRequest("WS-01", "ada@example.com")); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	svc := NewActivityService(repos, zap.NewNop())
	if err := svc.Delete(context.Background(), "WS-01"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(context.Background(), "WS-01"); !errors.Is(err, ErrActivityNotFound) {
		t.Errorf("got %v, want ErrActivityNotFound", err)
	}

	remaining, err := repos.Enrollment.ListByEmail(context.Background(), "ada@example.com")
	if err != nil {
		t.Fatalf("ListByEmail: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("enrollments should cascade with the activity, %d left", len(remaining))
	}
}
