package models

import "time"

const (
	OrderStatusNew             = "new"
	OrderStatusPreparing       = "preparing"
	OrderStatusHandedToCourier = "handed_to_courier"
	OrderStatusClosed          = "closed"
)

// ValidOrderStatus reports whether s is one of the known lifecycle states.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusNew, OrderStatusPreparing, OrderStatusHandedToCourier, OrderStatusClosed:
		return true
	}
	return false
}

type Order struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Firstname    string      `gorm:"type:varchar(20);not null;index" json:"firstname"`
	Lastname     string      `gorm:"type:varchar(20);index" json:"lastname"`
	Phonenumber  string      `gorm:"type:varchar(20);not null" json:"phonenumber"`
	Address      string      `gorm:"type:varchar(100);not null;index" json:"address"`
	Status       string      `gorm:"type:varchar(20);not null;default:'new';index" json:"status"`
	Comment      string      `gorm:"type:text" json:"comment"`
	RegisteredAt time.Time   `gorm:"not null;index" json:"registered_at"`
	CalledAt     *time.Time  `gorm:"index" json:"called_at,omitempty"`
	DeliveredAt  *time.Time  `gorm:"index" json:"delivered_at,omitempty"`
	Items        []OrderItem `gorm:"foreignKey:OrderID" json:"products"`
	CreatedAt    time.Time   `json:"-"`
	UpdatedAt    time.Time   `json:"-"`
}

// TotalPrice sums quantity times the unit price snapshotted at order time.
func (o *Order) TotalPrice() float64 {
	var total float64
	for _, item := range o.Items {
		total += float64(item.Quantity) * item.Price
	}
	return total
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"not null" json:"-"`
	Order     Order   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
	ProductID uint    `gorm:"not null" json:"product"`
	Product   Product `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT" json:"-"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	// Price is the catalog price at the moment the order was registered,
	// never recomputed from the current catalog.
	Price     float64   `gorm:"type:decimal(8,2);not null" json:"price"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
