package models

import "time"

// Invitation is a pending offer for a non-member to join a club.
// At most one invitation exists per (club, invitee) pair.
type Invitation struct {
	ClubID    uint      `gorm:"primaryKey;autoIncrement:false" json:"club_id"`
	Club      *Club     `gorm:"foreignKey:ClubID" json:"club,omitempty"`
	Username  string    `gorm:"primaryKey;size:30;autoIncrement:false" json:"username"`
	SentFrom  string    `gorm:"size:30;not null" json:"sent_from"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Invitation) TableName() string {
	return "invitations"
}
