package gormstore

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reservation mirrors the reservations table. The integer primary key
// preserves insertion order for listings; the uuid is the stable external
// reference. The unique index enforces the one-booking-per-room-per-date
// invariant at the schema level.
type Reservation struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	ReservationID string    `gorm:"type:uuid;not null;uniqueIndex"`
	RoomNumber    string    `gorm:"not null;index:idx_reservations_room_date,unique,priority:1"`
	StayDate      string    `gorm:"not null;index:idx_reservations_room_date,unique,priority:2"`
	CreatedAt     time.Time `gorm:"not null"`
}

func (Reservation) TableName() string { return "reservations" }

func (reservation *Reservation) BeforeCreate(tx *gorm.DB) error {
	if reservation.ReservationID == "" {
		reservation.ReservationID = uuid.NewString()
	}
	return nil
}
