// Package recordrepo persists collection records.
package recordrepo

import (
	"context"
	"errors"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/domain/model/request"
	"wasteflow/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormCollectionRecordRepository struct {
	db *gorm.DB
}

func NewGormCollectionRecordRepository(db *gorm.DB) *GormCollectionRecordRepository {
	return &GormCollectionRecordRepository{db: db}
}

func (r *GormCollectionRecordRepository) AddIfAbsent(ctx context.Context, record *request.Record) (bool, error) {
	if err := record.Validate(); err != nil {
		return false, err
	}

	dto := fromDomain(record)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "collection_request_id"}},
			DoNothing: true,
		}).
		Omit(clause.Associations).
		Create(&dto)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

func (r *GormCollectionRecordRepository) Update(ctx context.Context, record *request.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	result := r.db.WithContext(ctx).
		Model(&CollectionRecordDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "collection_request_id", "created_at", clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("collectionRecord", record.ID().String())
	}
	return nil
}

func (r *GormCollectionRecordRepository) GetByRequestID(ctx context.Context, requestID kernel.UUID) (*request.Record, error) {
	if err := requestID.Validate(); err != nil {
		return nil, err
	}

	var dto CollectionRecordDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "collection_request_id = ?", requestID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("collectionRequestId", requestID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
