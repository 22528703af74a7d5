package repository

import "environews/internal/modules/search/domain"

// Repository persists crawler reports.
type Repository interface {
	SaveReport(report *domain.Report) error
}
