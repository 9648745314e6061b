package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/kwon0144/HarborHub/internal/model"
	"github.com/kwon0144/HarborHub/internal/repository"
)

// SeedService loads the reference data a fresh deployment needs: hub
// addresses, the self-help resource catalogues and a handful of sample
// activities. Idempotent.
type SeedService interface {
	Run(ctx context.Context) (*SeedResult, error)
}

// SeedResult reports how many rows each seed step touched.
type SeedResult struct {
	Addresses   int `json:"addresses"`
	Meditations int `json:"meditations"`
	Exercises   int `json:"exercises"`
	Techniques  int `json:"techniques"`
	Activities  int `json:"activities"`
}

type seedService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewSeedService creates a SeedService.
func NewSeedService(repos *repository.Repositories, logger *zap.Logger) SeedService {
	return &seedService{repos: repos, logger: logger}
}

func (s *seedService) Run(ctx context.Context) (*SeedResult, error) {
	addresses := []model.Address{
		{Location: "CBD", AddressLine: "123 Collins St", Suburb: "Melbourne", State: "VIC", Postcode: "3000", Country: "Australia"},
		{Location: "Fitzroy", AddressLine: "456 Brunswick St", Suburb: "Fitzroy", State: "VIC", Postcode: "3065", Country: "Australia"},
		{Location: "St Kilda", AddressLine: "789 Acland St", Suburb: "St Kilda", State: "VIC", Postcode: "3182", Country: "Australia"},
	}
	for i := range addresses {
		if err := s.repos.Address.Upsert(ctx, &addresses[i]); err != nil {
			s.logger.Error("seed address failed", zap.String("location", addresses[i].Location), zap.Error(err))
			return nil, err
		}
	}

	meditations := []model.Meditation{
		{ID: "med-001", Title: "Body Scan", Brief: "A guided scan from head to toe.", Description: "Lie down, close your eyes and move your attention slowly through the body, noticing sensation without judgement.", Src: "/audio/body-scan.mp3"},
		{ID: "med-002", Title: "Breathing Anchor", Brief: "Ten minutes with the breath.", Description: "Count breaths from one to ten and start over. When the mind wanders, return to one.", Src: "/audio/breathing-anchor.mp3"},
		{ID: "med-003", Title: "Loving Kindness", Brief: "Cultivate warmth toward yourself and others.", Description: "Repeat short phrases of goodwill, widening the circle from yourself outward.", Src: "/audio/loving-kindness.mp3"},
	}
	exercises := []model.Exercise{
		{ID: "exe-001", Title: "Morning Stretch", Brief: "Five gentle stretches to start the day.", Description: "A short sequence loosening neck, shoulders, back and hips.", Src: "/video/morning-stretch.mp4"},
		{ID: "exe-002", Title: "Walking Reset", Brief: "A mindful ten-minute walk.", Description: "Walk at an easy pace, matching steps to breath, attention on the soles of the feet.", Src: "/video/walking-reset.mp4"},
	}
	techniques := []model.Technique{
		{ID: "tec-001", Title: "5-4-3-2-1 Grounding", Brief: "Engage the senses to settle anxiety.", Description: "Name five things you can see, four you can touch, three you can hear, two you can smell and one you can taste.", Src: "/docs/grounding.pdf"},
		{ID: "tec-002", Title: "Box Breathing", Brief: "Four counts in, hold, out, hold.", Description: "Breathe in a square: inhale four counts, hold four, exhale four, hold four. Repeat for two minutes.", Src: "/docs/box-breathing.pdf"},
	}

	if err := s.repos.Resource.SeedMeditations(ctx, meditations); err != nil {
		s.logger.Error("seed meditations failed", zap.Error(err))
		return nil, err
	}
	if err := s.repos.Resource.SeedExercises(ctx, exercises); err != nil {
		s.logger.Error("seed exercises failed", zap.Error(err))
		return nil, err
	}
	if err := s.repos.Resource.SeedTechniques(ctx, techniques); err != nil {
		s.logger.Error("seed techniques failed", zap.Error(err))
		return nil, err
	}

	activities := []model.Activity{
		{Code: "YGA101", Name: "Sunrise Yoga", Date: "2026-09-14", Time: "9:00 AM", Location: "CBD", Type: "workshop", Capacity: 15, Description: "A gentle vinyasa flow for all levels."},
		{Code: "TLK201", Name: "Managing Everyday Stress", Date: "2026-09-21", Time: "2:00 PM", Location: "Fitzroy", Type: "talk", Capacity: 40, Description: "A psychologist-led talk on practical stress tools."},
		{Code: "SOC301", Name: "Seaside Picnic", Date: "2026-10-03", Time: "12:00 PM", Location: "St Kilda", Type: "socialising", Capacity: 25, Description: "A relaxed community picnic by the beach."},
	}
	created := 0
	for i := range activities {
		if _, err := s.repos.Activity.GetByCode(ctx, activities[i].Code); err == nil {
			continue
		}
		if err := s.repos.Activity.Create(ctx, &activities[i]); err != nil {
			s.logger.Error("seed activity failed", zap.String("code", activities[i].Code), zap.Error(err))
			return nil, err
		}
		created++
	}

	s.logger.Info("seed completed",
		zap.Int("addresses", len(addresses)),
		zap.Int("meditations", len(meditations)),
		zap.Int("exercises", len(exercises)),
		zap.Int("techniques", len(techniques)),
		zap.Int("activities", created))

	return &SeedResult{
		Addresses:   len(addresses),
		Meditations: len(meditations),
		Exercises:   len(exercises),
		Techniques:  len(techniques),
		Activities:  created,
	}, nil
}
