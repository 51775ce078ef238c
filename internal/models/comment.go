package models

import "time"

// Comment is a user's remark on a post.
type Comment struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Username string    `gorm:"size:30;not null;index" json:"username"`
	User     *User     `gorm:"foreignKey:Username;references:Username" json:"user,omitempty"`
	Body     string    `gorm:"column:comment;type:text;not null" json:"comment"`
	PostID   uint      `gorm:"not null;index" json:"post_id"`
	PostedAt time.Time `gorm:"not null" json:"posted_at"`
}

// TableName specifies the table name for GORM.
func (Comment) TableName() string {
	return "comments"
}
