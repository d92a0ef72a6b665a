package models

import "time"

type Restaurant struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Name         string  `gorm:"type:varchar(50);not null" json:"name"`
	Address      string  `gorm:"type:varchar(100)" json:"address"`
	ContactPhone string  `gorm:"type:varchar(50)" json:"contact_phone"`
	// Lazily resolved from Address and kept forever once both are set.
	Lon       *float64  `json:"lon,omitempty"`
	Lat       *float64  `json:"lat,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// RestaurantMenuItem links a restaurant to a product it may sell.
// At most one row per (restaurant, product) pair.
type RestaurantMenuItem struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	RestaurantID uint       `gorm:"not null;uniqueIndex:idx_restaurant_product" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"-"`
	ProductID    uint       `gorm:"not null;uniqueIndex:idx_restaurant_product" json:"product_id"`
	Product      Product    `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	Availability bool       `gorm:"index" json:"availability"`
	CreatedAt    time.Time  `json:"-"`
	UpdatedAt    time.Time  `json:"-"`
}
