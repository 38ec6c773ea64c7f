package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"marryday/internal/models/db_models"
)

type IVendorRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Vendor, error)
	List(ctx context.Context, category, region string, page, pageSize int) ([]db_models.Vendor, error)
	// IncrementViewCount is fire-and-forget; callers ignore the error.
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
	SearchByVector(ctx context.Context, vector pgvector.Vector) ([]db_models.Vendor, error)
	UpsertEmbedding(ctx context.Context, embedding *db_models.VendorEmbedding) error
}

type VendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) IVendorRepository {
	return &VendorRepository{db: db}
}

func (v *VendorRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Vendor, error) {
	var vendor db_models.Vendor
	err := v.db.WithContext(ctx).First(&vendor, "id = ? AND is_active = ?", id, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vendor, nil
}

func (v *VendorRepository) List(ctx context.Context, category, region string, page, pageSize int) ([]db_models.Vendor, error) {
	query := v.db.WithContext(ctx).Where("is_active = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if region != "" {
		query = query.Where("region = ?", region)
	}

	var vendors []db_models.Vendor
	err := query.
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Order("view_count DESC").
		Find(&vendors).Error
	if err != nil {
		return nil, err
	}
	return vendors, nil
}

func (v *VendorRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	return v.db.WithContext(ctx).Model(&db_models.Vendor{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (v *VendorRepository) SearchByVector(ctx context.Context, vector pgvector.Vector) ([]db_models.Vendor, error) {
	var vendors []db_models.Vendor

	query := `
        SELECT v.*
        FROM vendors v
        JOIN vendor_embeddings e ON e.vendor_id = v.id
        WHERE v.is_active = TRUE
        ORDER BY e.embedding <=> $1
        LIMIT 10
    `

	err := v.db.WithContext(ctx).Raw(query, vector.String()).Scan(&vendors).Error
	if err != nil {
		return nil, err
	}
	return vendors, nil
}

func (v *VendorRepository) UpsertEmbedding(ctx context.Context, embedding *db_models.VendorEmbedding) error {
	existing := db_models.VendorEmbedding{}
	err := v.db.WithContext(ctx).First(&existing, "vendor_id = ?", embedding.VendorID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return v.db.WithContext(ctx).Create(embedding).Error
	}
	if err != nil {
		return err
	}
	return v.db.WithContext(ctx).Model(&existing).
		Update("embedding", embedding.Embedding).Error
}
