package models

import "time"

const (
	WasteNewspaper = "newspaper"
	WasteEggshells = "eggshells"
	WasteCardboard = "cardboard"
)

const (
	SeedTulsi     = "tulsi"
	SeedMint      = "mint"
	SeedCoriander = "coriander"
	SeedTomato    = "tomato"
	SeedChilli    = "chilli"
)

const (
	StatusPlaced    = "placed"
	StatusScheduled = "scheduled"
	StatusPicked    = "picked"
	StatusMaking    = "making"
	StatusReady     = "ready"
	StatusDelivered = "delivered"
)

// TimelineEntry records one status change. Entries are append-only; the
// first entry always carries StatusPlaced at the order's creation time.
type TimelineEntry struct {
	Status string    `json:"status"`
	At     time.Time `json:"at"`
}

type Order struct {
	ID         string          `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
	OwnerEmail string          `gorm:"index;not null" json:"-"`
	User       User            `gorm:"column:user_snapshot;serializer:json" json:"user"`
	WasteType  string          `gorm:"not null" json:"waste_type"`
	Quantity   float64         `gorm:"not null" json:"quantity"`
	Seed       string          `gorm:"not null" json:"seed"`
	Pods       int             `gorm:"not null" json:"pods"`
	Express    bool            `gorm:"not null;default:false" json:"express"`
	Notes      string          `json:"notes"`
	PickupDate string          `gorm:"not null" json:"pickup_date"`
	Amount     int             `gorm:"not null" json:"amount"`
	Paid       bool            `gorm:"not null;default:false" json:"paid"`
	Status     string          `gorm:"not null;default:placed" json:"status"`
	Timeline   []TimelineEntry `gorm:"serializer:json" json:"timeline"`
}
