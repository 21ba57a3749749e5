package entities

import "time"

// Upload purposes.
const (
	UploadGeneral       = "general"
	UploadPestDetection = "pest_detection"
)

// UploadRecord is the metadata kept for an accepted image. The bytes are
// not stored.
type UploadRecord struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Purpose     string    `gorm:"index" json:"purpose"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"mimetype"`
	Size        int64     `json:"size"`
	SHA256      string    `gorm:"index" json:"sha256"`
	CropType    string    `json:"cropType,omitempty"`
	Result      string    `json:"result,omitempty"` // diagnosed pest key
	CreatedAt   time.Time `json:"createdAt"`
}
