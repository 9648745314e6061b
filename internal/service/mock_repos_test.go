package service

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kwon0144/HarborHub/internal/model"
	"github.com/kwon0144/HarborHub/internal/repository"
)

// ── Mock ActivityRepository ──

type mockActivityRepo struct {
	activities  map[string]*model.Activity
	enrollments *mockEnrollmentRepo
}

func newMockActivityRepo(enrollments *mockEnrollmentRepo) *mockActivityRepo {
	return &mockActivityRepo{
		activities:  make(map[string]*model.Activity),
		enrollments: enrollments,
	}
}

func (m *mockActivityRepo) Create(_ context.Context, activity *model.Activity) error {
	if _, ok := m.activities[activity.Code]; ok {
		return gorm.ErrDuplicatedKey
	}
	if activity.ID == uuid.Nil {
		activity.ID = uuid.New()
	}
	m.activities[activity.Code] = activity
	return nil
}

func (m *mockActivityRepo) GetByCode(_ context.Context, code string) (*model.Activity, error) {
	if a, ok := m.activities[code]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockActivityRepo) ListWithCounts(_ context.Context) ([]repository.ActivityWithCount, error) {
	var result []repository.ActivityWithCount
	for _, a := range m.activities {
		result = append(result, repository.ActivityWithCount{
			Activity:        *a,
			EnrollmentCount: m.enrollments.countFor(a.Code),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		return result[i].Time < result[j].Time
	})
	return result, nil
}

func (m *mockActivityRepo) GetWithCount(ctx context.Context, code string) (*repository.ActivityWithCount, error) {
	a, err := m.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return &repository.ActivityWithCount{
		Activity:        *a,
		EnrollmentCount: m.enrollments.countFor(code),
	}, nil
}

func (m *mockActivityRepo) Update(_ context.Context, activity *model.Activity) error {
	m.activities[activity.Code] = activity
	return nil
}

func (m *mockActivityRepo) DeleteByCode(_ context.Context, code string) (int64, error) {
	if _, ok := m.activities[code]; !ok {
		return 0, nil
	}
	delete(m.activities, code)
	// Mirror the database's ON DELETE CASCADE.
	m.enrollments.deleteByActivity(code)
	return 1, nil
}

// ── Mock EnrollmentRepository ──

type mockEnrollmentRepo struct {
	enrollments []*model.Enrollment
	activities  *mockActivityRepo
}

func newMockEnrollmentRepo() *mockEnrollmentRepo {
	return &mockEnrollmentRepo{}
}

func (m *mockEnrollmentRepo) countFor(activityCode string) int {
	count := 0
	for _, e := range m.enrollments {
		if e.ActivityCode == activityCode {
			count++
		}
	}
	return count
}

func (m *mockEnrollmentRepo) deleteByActivity(activityCode string) {
	kept := m.enrollments[:0]
	for _, e := range m.enrollments {
		if e.ActivityCode != activityCode {
			kept = append(kept, e)
		}
	}
	m.enrollments = kept
}

func (m *mockEnrollmentRepo) Admit(ctx context.Context, enrollment *model.Enrollment) error {
	activity, err := m.activities.GetByCode(ctx, enrollment.ActivityCode)
	if err != nil {
		return err
	}
	// Capacity is checked before the unique constraint fires, same as
	// the locked transaction in the real repository.
	if m.countFor(enrollment.ActivityCode) >= activity.Capacity {
		return repository.ErrCapacityReached
	}
	for _, e := range m.enrollments {
		if e.ActivityCode == enrollment.ActivityCode && e.Email == enrollment.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if enrollment.ID == uuid.Nil {
		enrollment.ID = uuid.New()
	}
	m.enrollments = append(m.enrollments, enrollment)
	return nil
}

func (m *mockEnrollmentRepo) ListByActivity(_ context.Context, activityCode string) ([]model.Enrollment, error) {
	var result []model.Enrollment
	for _, e := range m.enrollments {
		if e.ActivityCode == activityCode {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (m *mockEnrollmentRepo) ListByEmail(_ context.Context, email string) ([]model.Enrollment, error) {
	var result []model.Enrollment
	for _, e := range m.enrollments {
		if e.Email == email {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (m *mockEnrollmentRepo) ListAll(_ context.Context) ([]model.Enrollment, error) {
	result := make([]model.Enrollment, 0, len(m.enrollments))
	for _, e := range m.enrollments {
		result = append(result, *e)
	}
	return result, nil
}

func (m *mockEnrollmentRepo) TrendByMonth(ctx context.Context) ([]repository.MonthCount, error) {
	counts := make(map[string]int)
	for _, e := range m.enrollments {
		activity, err := m.activities.GetByCode(ctx, e.ActivityCode)
		if err != nil {
			continue
		}
		if len(activity.Date) >= 7 {
			counts[activity.Date[:7]]++
		}
	}
	months := make([]string, 0, len(counts))
	for month := range counts {
		months = append(months, month)
	}
	sort.Strings(months)
	result := make([]repository.MonthCount, 0, len(months))
	for _, month := range months {
		result = append(result, repository.MonthCount{Month: month, Count: counts[month]})
	}
	return result, nil
}

func (m *mockEnrollmentRepo) Delete(_ context.Context, activityCode, email string) (int64, error) {
	for i, e := range m.enrollments {
		if e.ActivityCode == activityCode && e.Email == email {
			m.enrollments = append(m.enrollments[:i], m.enrollments[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// ── Mock AddressRepository ──

type mockAddressRepo struct {
	addresses map[string]*model.Address
}

func newMockAddressRepo() *mockAddressRepo {
	return &mockAddressRepo{addresses: make(map[string]*model.Address)}
}

func (m *mockAddressRepo) GetByLocation(_ context.Context, location string) (*model.Address, error) {
	if a, ok := m.addresses[location]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAddressRepo) ListAll(_ context.Context) ([]model.Address, error) {
	var result []model.Address
	for _, a := range m.addresses {
		result = append(result, *a)
	}
	return result, nil
}

func (m *mockAddressRepo) Upsert(_ context.Context, address *model.Address) error {
	if address.ID == uuid.Nil {
		address.ID = uuid.New()
	}
	m.addresses[address.Location] = address
	return nil
}

// ── Mock ResourceRepository ──

type mockResourceRepo struct {
	entries map[string]repository.CatalogueEntry
}

func newMockResourceRepo() *mockResourceRepo {
	return &mockResourceRepo{entries: make(map[string]repository.CatalogueEntry)}
}

func (m *mockResourceRepo) add(entry repository.CatalogueEntry) {
	m.entries[entry.ID] = entry
}

func (m *mockResourceRepo) ListAll(_ context.Context) ([]repository.CatalogueEntry, error) {
	ids := make([]string, 0, len(m.entries))
	for id := range m.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	result := make([]repository.CatalogueEntry, 0, len(ids))
	for _, id := range ids {
		result = append(result, m.entries[id])
	}
	return result, nil
}

func (m *mockResourceRepo) ListByType(ctx context.Context, resourceType string) ([]repository.CatalogueEntry, error) {
	switch resourceType {
	case repository.ResourceTypeMeditation, repository.ResourceTypeExercise, repository.ResourceTypeTechnique:
	default:
		return nil, gorm.ErrRecordNotFound
	}
	all, _ := m.ListAll(ctx)
	var result []repository.CatalogueEntry
	for _, e := range all {
		if e.Type == resourceType {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *mockResourceRepo) GetByID(_ context.Context, id string) (*repository.CatalogueEntry, error) {
	if e, ok := m.entries[id]; ok {
		return &e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockResourceRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := m.entries[id]
	return ok, nil
}

func (m *mockResourceRepo) SeedMeditations(_ context.Context, rows []model.Meditation) error {
	for _, r := range rows {
		m.add(repository.CatalogueEntry{ID: r.ID, Type: repository.ResourceTypeMeditation, Title: r.Title, Brief: r.Brief, Description: r.Description, Src: r.Src})
	}
	return nil
}

func (m *mockResourceRepo) SeedExercises(_ context.Context, rows []model.Exercise) error {
	for _, r := range rows {
		m.add(repository.CatalogueEntry{ID: r.ID, Type: repository.ResourceTypeExercise, Title: r.Title, Brief: r.Brief, Description: r.Description, Src: r.Src})
	}
	return nil
}

func (m *mockResourceRepo) SeedTechniques(_ context.Context, rows []model.Technique) error {
	for _, r := range rows {
		m.add(repository.CatalogueEntry{ID: r.ID, Type: repository.ResourceTypeTechnique, Title: r.Title, Brief: r.Brief, Description: r.Description, Src: r.Src})
	}
	return nil
}

// ── Mock RatingRepository ──

type mockRatingRepo struct {
	ratings []*model.SimpleRating
}

func newMockRatingRepo() *mockRatingRepo {
	return &mockRatingRepo{}
}

func (m *mockRatingRepo) Create(_ context.Context, rating *model.SimpleRating) error {
	if rating.ID == uuid.Nil {
		rating.ID = uuid.New()
	}
	m.ratings = append(m.ratings, rating)
	return nil
}

func (m *mockRatingRepo) Summarize(_ context.Context, resourceID string) (*repository.RatingAggregate, error) {
	agg := &repository.RatingAggregate{ResourceID: resourceID}
	sum := 0
	for _, r := range m.ratings {
		if r.ResourceID == resourceID {
			sum += r.Rating
			agg.TotalRatings++
		}
	}
	if agg.TotalRatings > 0 {
		agg.AverageRating = float64(sum) / float64(agg.TotalRatings)
	}
	return agg, nil
}

func (m *mockRatingRepo) Delete(_ context.Context, id string) (int64, error) {
	for i, r := range m.ratings {
		if r.ID.String() == id {
			m.ratings = append(m.ratings[:i], m.ratings[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *mockRatingRepo) SummarizeAll(ctx context.Context) ([]repository.RatingAggregate, error) {
	seen := make(map[string]bool)
	var ids []string
	for _, r := range m.ratings {
		if !seen[r.ResourceID] {
			seen[r.ResourceID] = true
			ids = append(ids, r.ResourceID)
		}
	}
	sort.Strings(ids)
	result := make([]repository.RatingAggregate, 0, len(ids))
	for _, id := range ids {
		agg, _ := m.Summarize(ctx, id)
		result = append(result, *agg)
	}
	return result, nil
}

// ── Mock CommentRepository ──

type mockCommentRepo struct {
	comments []*model.SimpleComment
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{}
}

func (m *mockCommentRepo) Create(_ context.Context, comment *model.SimpleComment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	m.comments = append(m.comments, comment)
	return nil
}

func (m *mockCommentRepo) ListByResource(_ context.Context, resourceID string) ([]model.SimpleComment, error) {
	var result []model.SimpleComment
	for _, c := range m.comments {
		if c.ResourceID == resourceID {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (m *mockCommentRepo) CountByResourceIDs(_ context.Context, resourceIDs []string) (int64, error) {
	wanted := make(map[string]bool, len(resourceIDs))
	for _, id := range resourceIDs {
		wanted[id] = true
	}
	var count int64
	for _, c := range m.comments {
		if wanted[c.ResourceID] {
			count++
		}
	}
	return count, nil
}

// ── test fixture helpers ──

func newTestRepos() *repository.Repositories {
	enrollmentRepo := newMockEnrollmentRepo()
	activityRepo := newMockActivityRepo(enrollmentRepo)
	enrollmentRepo.activities = activityRepo

	return &repository.Repositories{
		Activity:   activityRepo,
		Enrollment: enrollmentRepo,
		Address:    newMockAddressRepo(),
		Resource:   newMockResourceRepo(),
		Rating:     newMockRatingRepo(),
		Comment:    newMockCommentRepo(),
	}
}

func seedActivity(repos *repository.Repositories, code string, capacity int) *model.Activity {
	activity := &model.Activity{
		Code:     code,
		Name:     "Mindful Session " + code,
		Date:     "2025-07-10",
		Time:     "10:00 AM",
		Location: "CBD",
		Type:     "workshop",
		Capacity: capacity,
	}
	_ = repos.Activity.Create(context.Background(), activity)
	return activity
}
