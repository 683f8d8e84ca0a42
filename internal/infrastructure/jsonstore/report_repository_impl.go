package jsonstore

import (
	"github.com/echomap/echomap/internal/domain/entity"
	"github.com/echomap/echomap/internal/domain/repository"
)

type ReportRepository struct {
	store *Store
}

func NewReportRepository(store *Store) *ReportRepository {
	return &ReportRepository{store: store}
}

func (r *ReportRepository) All() ([]entity.Report, error) {
	return Read[entity.Report](r.store, CollectionReports)
}

func (r *ReportRepository) Create(rep *entity.Report) error {
	return Update(r.store, CollectionReports, func(reports []entity.Report) ([]entity.Report, error) {
		return append(reports, *rep), nil
	})
}

var _ repository.ReportRepository = (*ReportRepository)(nil)
