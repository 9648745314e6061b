package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/kwon0144/HarborHub/internal/dto"
	"github.com/kwon0144/HarborHub/internal/model"
	"github.com/kwon0144/HarborHub/internal/repository"
)

func seedResource(repos *repository.Repositories, id string) {
	_ = repos.Resource.SeedMeditations(context.Background(), []model.Meditation{
		{ID: id, Title: "Body Scan", Brief: "brief", Description: "desc", Src: "/audio/x.mp3"},
	})
}

func TestCreateRatingAndSummary(t *testing.T) {
	repos := newTestRepos()
	seedResource(repos, "med-001")
	svc := NewRatingService(repos, zap.NewNop())

	for _, stars := range []int{4, 5} {
		if _, err := svc.Create(context.Background(), &dto.CreateRatingRequest{ResourceID: "med-001", Rating: stars}); err != nil {
			t.Fatalf("Create(%d): %v", stars, err)
		}
	}

	got, err := svc.Summary(context.Background(), "med-001")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if got.TotalRatings != 2 {
		t.Errorf("total = %d, want 2", got.TotalRatings)
	}
	if got.AverageRating != 4.5 {
		t.Errorf("average = %v, want 4.5", got.AverageRating)
	}
}

func TestCreateRatingOutOfRange(t *testing.T) {
	repos := newTestRepos()
	seedResource(repos, "med-001")
	svc := NewRatingService(repos, zap.NewNop())

	for _, stars := range []int{0, 6, -1} {
		if _, err := svc.Create(context.Background(), &dto.CreateRatingRequest{ResourceID: "med-001", Rating: stars}); !errors.Is(err, ErrRatingOutOfRange) {
			t.Errorf("rating %d: got %v, want ErrRatingOutOfRange", stars, err)
		}
	}
}

func TestCreateRatingUnknownResource(t *testing.T) {
	repos := newTestRepos()
	svc := NewRatingService(repos, zap.NewNop())

	if _, err := svc.Create(context.Background(), &dto.CreateRatingRequest{ResourceID: "ghost", Rating: 3}); !errors.Is(err, ErrResourceNotFound) {
		t.Errorf("got %v, want ErrResourceNotFound", err)
	}
}

func TestSummaryAll(t *testing.T) {
	repos := newTestRepos()
	seedResource(repos, "med-001")
	seedResource(repos, "med-002")
	svc := NewRatingService(repos, zap.NewNop())

	ratings := map[string][]int{
		"med-001": {3, 4},
		"med-002": {5},
	}
	for id, stars := range ratings {
		for _, s := range stars {
			if _, err := svc.Create(context.Background(), &dto.CreateRatingRequest{ResourceID: id, Rating: s}); err != nil {
				t.Fatalf("Create(%s, %d): %v", id, s, err)
			}
		}
	}

	got, err := svc.SummaryAll(context.Background())
	if err != nil {
		t.Fatalf("SummaryAll: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(got))
	}
	if got[0].ResourceID != "med-001" || got[0].AverageRating != 3.5 || got[0].TotalRatings != 2 {
		t.Errorf("med-001 summary = %+v", got[0])
	}
	if got[1].ResourceID != "med-002" || got[1].AverageRating != 5 || got[1].TotalRatings != 1 {
		t.Errorf("med-002 summary = %+v", got[1])
	}
}

func TestDeleteRating(t *testing.T) {
	repos := newTestRepos()
	seedResource(repos, "med-001")
	svc := NewRatingService(repos, zap.NewNop())

	rating := &model.SimpleRating{ResourceID: "med-001", Rating: 2}
	if err := repos.Rating.Create(context.Background(), rating); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(context.Background(), rating.ID.String()); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	summary, err := svc.Summary(context.Background(), "med-001")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if summary.TotalRatings != 0 {
		t.Errorf("total after delete = %d, want 0", summary.TotalRatings)
	}

	if err := svc.Delete(context.Background(), rating.ID.String()); !errors.Is(err, ErrRatingNotFound) {
		t.Errorf("second delete: got %v, want ErrRatingNotFound", err)
	}
}

func TestSummaryEmptyResource(t *testing.T) {
	repos := newTestRepos()
	seedResource(repos, "med-001")
	svc := NewRatingService(repos, zap.NewNop())

	got, err := svc.Summary(context.Background(), "med-001")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if got.TotalRatings != 0 || got.AverageRating != 0 {
		t.Errorf("empty summary should be zeroed, got %+v", got)
	}
}
