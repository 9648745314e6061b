package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/kwon0144/HarborHub/internal/model"
	"github.com/kwon0144/HarborHub/internal/repository"
)

// ExportService renders the enrollment ledger as a spreadsheet for
// location coordinators.
type ExportService interface {
	EnrollmentsXLSX(ctx context.Context, activityCode string) ([]byte, error)
}

type exportService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewExportService creates an ExportService.
func NewExportService(repos *repository.Repositories, logger *zap.Logger) ExportService {
	return &exportService{repos: repos, logger: logger}
}

// EnrollmentsXLSX writes one row per enrollment with its activity
// details joined in, sorted the way the ledger lists them. A non-empty
// activityCode narrows the sheet to that activity.
func (s *exportService) EnrollmentsXLSX(ctx context.Context, activityCode string) ([]byte, error) {
	var (
		enrollments []model.Enrollment
		err         error
	)
	if activityCode != "" {
		enrollments, err = s.repos.Enrollment.ListByActivity(ctx, activityCode)
	} else {
		enrollments, err = s.repos.Enrollment.ListAll(ctx)
	}
	if err != nil {
		s.logger.Error("list enrollments failed", zap.Error(err))
		return nil, err
	}

	activities, err := s.repos.Activity.ListWithCounts(ctx)
	if err != nil {
		s.logger.Error("list activities failed", zap.Error(err))
		return nil, err
	}
	byCode := make(map[string]repository.ActivityWithCount, len(activities))
	for _, a := range activities {
		byCode[a.Code] = a
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Enrollments"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"Activity Code", "Activity", "Date", "Time", "Location", "First Name", "Last Name", "Email", "Phone"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for row, e := range enrollments {
		activity := byCode[e.ActivityCode]
		values := []interface{}{
			e.ActivityCode,
			activity.Name,
			activity.Date,
			activity.Time,
			activity.Location,
			e.FirstName,
			e.LastName,
			e.Email,
			e.PhoneNumber,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", row+2, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("enrollment export generated", zap.Int("rows", len(enrollments)))

	return buf.Bytes(), nil
}
