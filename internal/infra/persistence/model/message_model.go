package model

import "time"

// ContactMessageModel is the GORM-specific struct for the 'contact_messages' table.
type ContactMessageModel struct {
	ID        int64     `gorm:"primary_key;autoIncrement"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ContactMessageModel) TableName() string {
	return "contact_messages"
}
