package models

import "time"

// Membership maps a user to a club. The composite primary key is the
// store-level backstop against concurrent duplicate joins.
type Membership struct {
	Username  string    `gorm:"primaryKey;size:30;autoIncrement:false" json:"username"`
	User      *User     `gorm:"foreignKey:Username;references:Username" json:"user,omitempty"`
	ClubID    uint      `gorm:"primaryKey;autoIncrement:false" json:"club_id"`
	Club      *Club     `gorm:"foreignKey:ClubID" json:"club,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Membership) TableName() string {
	return "users_clubs"
}
