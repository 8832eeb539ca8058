package reporting

import (
	"context"
	"slices"

	"github.com/samber/lo"
)

// MemoryRepository serves the seeded reports and statistics. Read-only after
// construction and safe for concurrent use.
type MemoryRepository struct {
	reports []Report
	stats   Statistics
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		reports: seedReports(),
		stats:   seedStatistics(),
	}
}

// List returns reports in authored order.
func (r *MemoryRepository) List(_ context.Context) ([]Report, error) {
	return lo.Map(r.reports, func(rep Report, _ int) Report {
		return cloneReport(rep)
	}), nil
}

// GetByID scans the reports in order and returns the first with a matching id.
func (r *MemoryRepository) GetByID(_ context.Context, id int) (*Report, error) {
	rep, ok := lo.Find(r.reports, func(rep Report) bool {
		return rep.ID == id
	})
	if !ok {
		return nil, ErrReportNotFound
	}
	rep = cloneReport(rep)
	return &rep, nil
}

func (r *MemoryRepository) Statistics(_ context.Context) (*Statistics, error) {
	s := Statistics{
		MonthlyConsultations: slices.Clone(r.stats.MonthlyConsultations),
		TopDiagnoses:         slices.Clone(r.stats.TopDiagnoses),
		ConsultationTypes:    slices.Clone(r.stats.ConsultationTypes),
		EfficiencyMetrics:    r.stats.EfficiencyMetrics,
	}
	return &s, nil
}

func cloneReport(rep Report) Report {
	rep.ICDCodes = slices.Clone(rep.ICDCodes)
	return rep
}
