package model

import (
	"time"

	"github.com/google/uuid"
)

// ConversationModel mirrors the 'conversations' table.
//
// ParticipantLo and ParticipantHi hold the participant pair in lexical order,
// independent of who initiated. The composite unique index on
// (post_id, participant_lo, participant_hi) is what makes concurrent creates
// for the same pair collapse into one row: inserts go through
// ON CONFLICT DO NOTHING against this index.
type ConversationModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PostID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_conversations_post_pair"`
	SenderID      string    `gorm:"type:varchar(255);not null;index"`
	ReceiverID    string    `gorm:"type:varchar(255);not null;index"`
	ParticipantLo string    `gorm:"type:varchar(255);not null;uniqueIndex:uniq_conversations_post_pair"`
	ParticipantHi string    `gorm:"type:varchar(255);not null;uniqueIndex:uniq_conversations_post_pair"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt     time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ConversationModel) TableName() string {
	return "conversations"
}
