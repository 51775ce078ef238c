package models

// Vote records one user's up/down vote on a post. Repeated votes update
// the Liked flag in place; the composite key keeps one row per pair.
type Vote struct {
	PostID   uint   `gorm:"primaryKey;autoIncrement:false" json:"post_id"`
	Username string `gorm:"primaryKey;size:30;autoIncrement:false" json:"username"`
	Liked    bool   `gorm:"not null" json:"liked"`
}

// TableName specifies the table name for GORM.
func (Vote) TableName() string {
	return "votes"
}
