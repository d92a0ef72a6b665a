package models

import "time"

type ProductCategory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(50);not null" json:"name"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type Product struct {
	ID            uint             `gorm:"primaryKey" json:"id"`
	Name          string           `gorm:"type:varchar(50);not null" json:"name"`
	CategoryID    *uint            `gorm:"index" json:"-"`
	Category      *ProductCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Price         float64          `gorm:"type:decimal(8,2);not null" json:"price"`
	ImageURL      string           `gorm:"type:varchar(255)" json:"image"`
	SpecialStatus bool             `gorm:"index" json:"special_status"`
	Description   string           `gorm:"type:text" json:"description"`
	CreatedAt     time.Time        `json:"-"`
	UpdatedAt     time.Time        `json:"-"`
}
