package models

import "time"

// Club is a listening club users join to share album posts.
type Club struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:120;not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Founder      string    `gorm:"size:30;not null;index" json:"founder"`
	FounderUser  *User     `gorm:"foreignKey:Founder;references:Username" json:"-"`
	IsPublic     bool      `gorm:"not null;default:false" json:"is_public"`
	Founded      time.Time `gorm:"not null" json:"founded"`
	BannerImgURL string    `gorm:"size:2048" json:"banner_img_url,omitempty"`

	// Members is a response-shaping projection, not a persisted column.
	Members []User `gorm:"-" json:"members,omitempty"`
}

// TableName specifies the table name for GORM.
func (Club) TableName() string {
	return "clubs"
}
