package reporting

import (
	"context"
	"errors"
)

// ErrReportNotFound is returned when no report has the requested id.
var ErrReportNotFound = errors.New("report not found")

// Repository provides read access to reports and dashboard statistics.
type Repository interface {
	List(ctx context.Context) ([]Report, error)
	GetByID(ctx context.Context, id int) (*Report, error)
	Statistics(ctx context.Context) (*Statistics, error)
}
