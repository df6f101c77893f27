package ports

import (
	"context"

	"wasteflow/internal/core/domain/model/complaint"
	"wasteflow/internal/core/domain/model/kernel"
)

type WasteReportRepository interface {
	Add(ctx context.Context, aggregate *complaint.Report) error
	Update(ctx context.Context, aggregate *complaint.Report) error
	Get(ctx context.Context, id kernel.UUID) (*complaint.Report, error)
}
