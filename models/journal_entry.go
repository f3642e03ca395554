package models

import "time"

// JournalEntry -> satu baris audit untuk setiap perubahan meja/booking.
// Hanya ditulis, tidak pernah dibaca ulang ke Restaurant.
type JournalEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Event     string    `gorm:"type:varchar(50);not null;index" json:"event"`
	TableID   *int      `gorm:"index" json:"table_id,omitempty"`
	BookingID *int      `gorm:"index" json:"booking_id,omitempty"`
	Payload   string    `gorm:"type:text" json:"payload"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
