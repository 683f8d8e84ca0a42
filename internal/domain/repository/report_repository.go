package repository

import "github.com/echomap/echomap/internal/domain/entity"

// ReportRepository defines the interface for abuse report persistence.
// Reports are append-only; the admin surface only reads them.
type ReportRepository interface {
	All() ([]entity.Report, error)
	Create(r *entity.Report) error
}
