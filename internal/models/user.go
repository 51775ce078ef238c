package models

import "time"

// User is a registered account. Username is the natural key referenced by
// memberships, posts, comments and votes.
type User struct {
	Username      string    `gorm:"primaryKey;size:30" json:"username"`
	Email         string    `gorm:"size:254;not null;uniqueIndex" json:"email"`
	Password      string    `gorm:"not null" json:"-"`
	Admin         bool      `gorm:"not null;default:false" json:"admin"`
	ProfileImgURL string    `gorm:"size:2048" json:"profile_img_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
