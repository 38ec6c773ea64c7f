package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"marryday/internal/models/db_models"
	"marryday/internal/models/response_models"
	"marryday/internal/repositories"
	"marryday/pkg/utils"
)

type VendorServiceInterface interface {
	ListVendors(ctx context.Context, category, region string, page, pageSize int) ([]response_models.VendorSummary, error)
	GetVendor(ctx context.Context, id uuid.UUID) (*response_models.VendorDetail, error)
	SearchVendors(ctx context.Context, query string) ([]response_models.VendorSummary, error)
	// IndexVendor refreshes the vendor's description embedding.
	IndexVendor(ctx context.Context, id uuid.UUID) error
}

type VendorService struct {
	vendorRepo repositories.IVendorRepository
	aiClient   utils.AIClientInterface
}

func NewVendorService(vendorRepo repositories.IVendorRepository, aiClient utils.AIClientInterface) VendorServiceInterface {
	return &VendorService{
		vendorRepo: vendorRepo,
		aiClient:   aiClient,
	}
}

func (v *VendorService) ListVendors(ctx context.Context, category, region string, page, pageSize int) ([]response_models.VendorSummary, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	vendors, err := v.vendorRepo.List(ctx, category, region, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.VendorSummary, 0, len(vendors))
	for _, vendor := range vendors {
		result = append(result, toVendorSummary(vendor))
	}
	return result, nil
}

func (v *VendorService) GetVendor(ctx context.Context, id uuid.UUID) (*response_models.VendorDetail, error) {
	vendor, err := v.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if vendor == nil {
		return nil, utils.ErrVendorNotFound
	}

	// view counting is fire-and-forget
	if err := v.vendorRepo.IncrementViewCount(ctx, id); err != nil {
		log.Printf("vendor %s: view count increment failed: %v", id, err)
	}

	detail := &response_models.VendorDetail{VendorSummary: toVendorSummary(*vendor)}
	if vendor.Description != nil {
		detail.Description = *vendor.Description
	}
	return detail, nil
}

func (v *VendorService) SearchVendors(ctx context.Context, query string) ([]response_models.VendorSummary, error) {
	vector, err := v.aiClient.GetEmbedding(ctx, query)
	if err != nil {
		log.Printf("vendor search: embedding failed: %v", err)
		return nil, utils.ErrAIResponseInvalid
	}

	vendors, err := v.vendorRepo.SearchByVector(ctx, vector)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.VendorSummary, 0, len(vendors))
	for _, vendor := range vendors {
		result = append(result, toVendorSummary(vendor))
	}
	return result, nil
}

func (v *VendorService) IndexVendor(ctx context.Context, id uuid.UUID) error {
	vendor, err := v.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if vendor == nil {
		return utils.ErrVendorNotFound
	}

	text := vendor.Name + " " + vendor.Category + " " + vendor.Region
	if vendor.Description != nil {
		text += " " + *vendor.Description
	}

	vector, err := v.aiClient.GetEmbedding(ctx, text)
	if err != nil {
		log.Printf("vendor %s: embedding failed: %v", id, err)
		return utils.ErrAIResponseInvalid
	}

	if err := v.vendorRepo.UpsertEmbedding(ctx, &db_models.VendorEmbedding{
		VendorID:  id,
		Embedding: vector,
	}); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toVendorSummary(vendor db_models.Vendor) response_models.VendorSummary {
	return response_models.VendorSummary{
		ID:        vendor.ID,
		Name:      vendor.Name,
		Category:  vendor.Category,
		Region:    vendor.Region,
		PriceMin:  vendor.PriceMin,
		PriceMax:  vendor.PriceMax,
		ImageURL:  vendor.ImageURL,
		Tags:      vendor.Tags,
		ViewCount: vendor.ViewCount,
	}
}
