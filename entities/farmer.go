package entities

import "time"

type Farmer struct {
	FarmerID      uint      `gorm:"primaryKey" json:"id"`
	Name          string    `json:"name"`
	Phone         string    `gorm:"uniqueIndex" json:"phone"`
	Location      string    `json:"location"`
	State         string    `json:"state,omitempty"`
	District      string    `json:"district,omitempty"`
	SoilType      string    `json:"soilType,omitempty"`
	FarmSizeAcres float64   `json:"farmSizeAcres"`
	Crops         []string  `gorm:"serializer:json" json:"crops"`
	Language      string    `json:"language,omitempty"` // en|hi|pa|...
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
