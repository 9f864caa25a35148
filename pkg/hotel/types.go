package hotel

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// PriceForints is an integer nightly price in Hungarian forints.
type PriceForints int64

// Int64 returns the raw price value.
func (price PriceForints) Int64() int64 {
	return int64(price)
}

// RoomNumber identifies a room within the catalog.
type RoomNumber struct {
	value string
}

// NewRoomNumber validates and normalizes a room number.
func NewRoomNumber(raw string) (RoomNumber, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return RoomNumber{}, fmt.Errorf("%w: empty value", ErrInvalidRoomNumber)
	}
	return RoomNumber{value: trimmed}, nil
}

// String returns the normalized room number.
func (number RoomNumber) String() string {
	return number.value
}

// RoomType enumerates the closed set of room kinds. The nightly price is
// fully determined by the type; rooms carry no per-room override.
type RoomType string

const (
	RoomTypeSingle RoomType = "single"
	RoomTypeDouble RoomType = "double"
)

// ParseRoomType validates a raw room type label.
func ParseRoomType(raw string) (RoomType, error) {
	switch RoomType(strings.ToLower(strings.TrimSpace(raw))) {
	case RoomTypeSingle:
		return RoomTypeSingle, nil
	case RoomTypeDouble:
		return RoomTypeDouble, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRoomType, raw)
	}
}

// String returns the canonical type value.
func (roomType RoomType) String() string {
	return string(roomType)
}

// Label returns the human-readable type label.
func (roomType RoomType) Label() string {
	switch roomType {
	case RoomTypeSingle:
		return "Single"
	case RoomTypeDouble:
		return "Double"
	default:
		return string(roomType)
	}
}

// NightlyPrice returns the fixed price for the room type.
func (roomType RoomType) NightlyPrice() PriceForints {
	switch roomType {
	case RoomTypeDouble:
		return PriceForints(priceDoubleForints)
	default:
		return PriceForints(priceSingleForints)
	}
}

// StayDate is a calendar date with no time component, normalized to UTC.
type StayDate struct {
	value time.Time
}

// ParseStayDate parses a raw date string under the fixed DateLayout.
func ParseStayDate(raw string) (StayDate, error) {
	parsed, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return StayDate{}, fmt.Errorf("%w: %q does not match %s", ErrInvalidDateFormat, raw, DateLayout)
	}
	return NewStayDate(parsed), nil
}

// NewStayDate truncates an instant to its calendar day in UTC.
func NewStayDate(instant time.Time) StayDate {
	year, month, day := instant.UTC().Date()
	return StayDate{value: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// String formats the date under the fixed DateLayout.
func (date StayDate) String() string {
	return date.value.Format(DateLayout)
}

// Before reports whether the date falls strictly before other.
func (date StayDate) Before(other StayDate) bool {
	return date.value.Before(other.value)
}

// IsZero reports whether the date was never set.
func (date StayDate) IsZero() bool {
	return date.value.IsZero()
}

// Room is an immutable catalog record.
type Room struct {
	number   RoomNumber
	roomType RoomType
}

// NewRoom validates and builds a room record.
func NewRoom(number RoomNumber, roomType RoomType) (Room, error) {
	if number.value == "" {
		return Room{}, fmt.Errorf("%w: empty value", ErrInvalidRoomNumber)
	}
	if _, err := ParseRoomType(roomType.String()); err != nil {
		return Room{}, err
	}
	return Room{number: number, roomType: roomType}, nil
}

// Number returns the room identifier.
func (room Room) Number() RoomNumber {
	return room.number
}

// Type returns the room type.
func (room Room) Type() RoomType {
	return room.roomType
}

// NightlyPrice returns the price implied by the room type.
func (room Room) NightlyPrice() PriceForints {
	return room.roomType.NightlyPrice()
}

// Reservation is a claim on a specific room for a specific date. Immutable
// once created; removed only by explicit cancellation.
type Reservation struct {
	roomNumber RoomNumber
	stayDate   StayDate
}

// NewReservation validates and builds a reservation record.
func NewReservation(roomNumber RoomNumber, stayDate StayDate) (Reservation, error) {
	if roomNumber.value == "" {
		return Reservation{}, fmt.Errorf("%w: empty value", ErrInvalidRoomNumber)
	}
	if stayDate.IsZero() {
		return Reservation{}, fmt.Errorf("%w: zero value", ErrInvalidStayDate)
	}
	return Reservation{roomNumber: roomNumber, stayDate: stayDate}, nil
}

// RoomNumber returns the reserved room identifier.
func (reservation Reservation) RoomNumber() RoomNumber {
	return reservation.roomNumber
}

// StayDate returns the reserved date.
func (reservation Reservation) StayDate() StayDate {
	return reservation.stayDate
}

// Store is the reservation persistence contract used by Service.
type Store interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, txStore Store) error) error
	InsertReservation(ctx context.Context, reservation Reservation) error
	DeleteReservation(ctx context.Context, roomNumber RoomNumber, stayDate StayDate) error
	HasReservation(ctx context.Context, roomNumber RoomNumber, stayDate StayDate) (bool, error)
	ListReservations(ctx context.Context) ([]Reservation, error)
}
