package models

import "time"

// Post is an album shared into a club. DiscogsID references the cached
// Album row for the release being discussed.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ClubID    uint      `gorm:"not null;index" json:"club_id"`
	Club      *Club     `gorm:"foreignKey:ClubID" json:"-"`
	DiscogsID int       `gorm:"not null;index" json:"discogs_id"`
	PostedBy  string    `gorm:"size:30;not null" json:"posted_by"`
	PostedAt  time.Time `gorm:"not null" json:"posted_at"`
	Content   string    `gorm:"type:text" json:"content"`
	RecTracks string    `gorm:"type:text" json:"rec_tracks,omitempty"`

	// Album and Comments are populated for response shaping, not persisted
	// on the posts table.
	Album    *Album    `gorm:"-" json:"album,omitempty"`
	Comments []Comment `gorm:"-" json:"comments,omitempty"`
}

// TableName specifies the table name for GORM.
func (Post) TableName() string {
	return "posts"
}
