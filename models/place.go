package models

import "time"

// Place caches the geocoder's answer for one address string.
// Lon/Lat stay null until the first successful resolution; a row with
// either coordinate missing is treated as unresolved.
type Place struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Address   string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"address"`
	Lon       *float64  `json:"lon,omitempty"`
	Lat       *float64  `json:"lat,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Resolved reports whether both coordinates are present.
func (p *Place) Resolved() bool {
	return p.Lon != nil && p.Lat != nil
}
