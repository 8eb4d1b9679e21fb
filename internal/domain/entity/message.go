package entity

import "time"

// ContactMessage is a message submitted through the contact form. Messages
// are only ever created by shoppers and deleted by an admin.
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}
