package services

import (
	"gorm.io/gorm"

	"github.com/axrasp/start-burger/models"
)

// MenuIndex answers availability questions over restaurant menus. It is a
// read-only view recomputed from live menu rows on every call, so catalog
// edits take effect immediately.
type MenuIndex struct {
	db *gorm.DB
}

func NewMenuIndex(db *gorm.DB) *MenuIndex {
	return &MenuIndex{db: db}
}

// RestaurantsOffering returns the restaurants whose available menu covers
// every product in productIDs, in insertion order. A restaurant missing a
// single product is excluded; an empty product list matches nothing.
func (mi *MenuIndex) RestaurantsOffering(productIDs []uint) ([]models.Restaurant, error) {
	unique := make([]uint, 0, len(productIDs))
	seen := make(map[uint]bool, len(productIDs))
	for _, id := range productIDs {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	if len(unique) == 0 {
		return nil, nil
	}

	var restaurantIDs []uint
	err := mi.db.Model(&models.RestaurantMenuItem{}).
		Where("availability = ? AND product_id IN ?", true, unique).
		Group("restaurant_id").
		Having("COUNT(DISTINCT product_id) = ?", len(unique)).
		Pluck("restaurant_id", &restaurantIDs).Error
	if err != nil {
		return nil, err
	}
	if len(restaurantIDs) == 0 {
		return nil, nil
	}

	var restaurants []models.Restaurant
	err = mi.db.Where("id IN ?", restaurantIDs).Order("id").Find(&restaurants).Error
	if err != nil {
		return nil, err
	}
	return restaurants, nil
}

// AvailableProducts lists products offered by at least one restaurant,
// with categories preloaded for the public catalog API.
func (mi *MenuIndex) AvailableProducts() ([]models.Product, error) {
	sub := mi.db.Model(&models.RestaurantMenuItem{}).
		Where("availability = ?", true).
		Select("product_id")

	var products []models.Product
	err := mi.db.Preload("Category").
		Where("id IN (?)", sub).
		Order("id").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
