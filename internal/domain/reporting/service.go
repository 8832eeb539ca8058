package reporting

import (
	"context"
	"errors"
	"fmt"
)

// Service exposes reports and statistics to the HTTP layer.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListReports(ctx context.Context) ([]Report, error) {
	reports, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return reports, nil
}

// GetReport returns the report with the given id, or ErrReportNotFound.
func (s *Service) GetReport(ctx context.Context, id int) (*Report, error) {
	rep, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrReportNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get report %d: %w", id, err)
	}
	return rep, nil
}

func (s *Service) GetStatistics(ctx context.Context) (*Statistics, error) {
	stats, err := s.repo.Statistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("statistics: %w", err)
	}
	return stats, nil
}
