package db_models

type Product struct {
	BaseModel
	Name        string `gorm:"not null"`
	Description *string
	Category    string `gorm:"size:30;index"` // invitation, favor, deco, hanbok, gift
	Price       int64  `gorm:"not null"`      // KRW, smallest unit
	ImageURL    string
	Stock       int  `gorm:"default:0"`
	IsActive    bool `gorm:"default:true"`
}
