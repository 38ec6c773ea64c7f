package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

type Vendor struct {
	BaseModel
	Name        string `gorm:"not null"`
	Category    string `gorm:"size:30;index"` // hall, studio, dress, makeup, catering
	Region      string `gorm:"size:50;index"`
	Description *string
	PriceMin    int64
	PriceMax    int64
	ImageURL    string
	Tags        pq.StringArray `gorm:"type:text[]"`
	ViewCount   int64          `gorm:"default:0"`
	IsActive    bool           `gorm:"default:true"`
}

type VendorEmbedding struct {
	BaseModel
	VendorID  uuid.UUID       `gorm:"uniqueIndex;not null"`
	Embedding pgvector.Vector `gorm:"type:vector(1536)"`

	Vendor Vendor `gorm:"foreignKey:VendorID"`
}
