package gormstore

import (
	"context"
	"errors"

	"github.com/MarkoPoloResearchLab/hotel/pkg/hotel"
	gosqlite "github.com/glebarez/go-sqlite"
	"gorm.io/gorm"
)

const (
	sqliteConstraintCode = 19

	errorOperationStore     = "store"
	errorSubjectReservation = "reservation"
	errorCodeDelete         = "delete"
	errorCodeInsert         = "insert"
	errorCodeInvalid        = "invalid"
	errorCodeList           = "list"
	errorCodeLookup         = "lookup"
)

// Store implements hotel.Store using GORM.
type Store struct {
	db *gorm.DB
}

// New returns a Store backed by gorm.DB.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// WithTx executes fn within a transaction.
func (store *Store) WithTx(ctx context.Context, fn func(ctx context.Context, txStore hotel.Store) error) error {
	return store.db.WithContext(ctx).Transaction(func(transaction *gorm.DB) error {
		return fn(ctx, &Store{db: transaction})
	})
}

// InsertReservation appends a reservation row, mapping the unique-index
// violation back to the domain duplicate error.
func (store *Store) InsertReservation(ctx context.Context, reservation hotel.Reservation) error {
	row := Reservation{
		RoomNumber: reservation.RoomNumber().String(),
		StayDate:   reservation.StayDate().String(),
	}
	err := store.db.WithContext(ctx).Create(&row).Error
	if isPairConflict(err) {
		return wrapStoreError(errorCodeInsert, hotel.ErrRoomAlreadyBooked)
	}
	if err != nil {
		return wrapStoreError(errorCodeInsert, err)
	}
	return nil
}

// DeleteReservation removes the reservation matching the pair.
func (store *Store) DeleteReservation(ctx context.Context, roomNumber hotel.RoomNumber, stayDate hotel.StayDate) error {
	result := store.db.WithContext(ctx).
		Where("room_number = ? AND stay_date = ?", roomNumber.String(), stayDate.String()).
		Delete(&Reservation{})
	if result.Error != nil {
		return wrapStoreError(errorCodeDelete, result.Error)
	}
	if result.RowsAffected == 0 {
		return wrapStoreError(errorCodeDelete, hotel.ErrReservationNotFound)
	}
	return nil
}

// HasReservation reports whether the (room, date) pair is already reserved.
func (store *Store) HasReservation(ctx context.Context, roomNumber hotel.RoomNumber, stayDate hotel.StayDate) (bool, error) {
	var count int64
	err := store.db.WithContext(ctx).
		Model(&Reservation{}).
		Where("room_number = ? AND stay_date = ?", roomNumber.String(), stayDate.String()).
		Count(&count).Error
	if err != nil {
		return false, wrapStoreError(errorCodeLookup, err)
	}
	return count > 0, nil
}

// ListReservations returns all reservations in insertion order.
func (store *Store) ListReservations(ctx context.Context) ([]hotel.Reservation, error) {
	var rows []Reservation
	err := store.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	if err != nil {
		return nil, wrapStoreError(errorCodeList, err)
	}
	reservations := make([]hotel.Reservation, 0, len(rows))
	for _, row := range rows {
		reservation, err := mapReservation(row)
		if err != nil {
			return nil, wrapStoreError(errorCodeInvalid, err)
		}
		reservations = append(reservations, reservation)
	}
	return reservations, nil
}

func mapReservation(row Reservation) (hotel.Reservation, error) {
	roomNumber, err := hotel.NewRoomNumber(row.RoomNumber)
	if err != nil {
		return hotel.Reservation{}, err
	}
	stayDate, err := hotel.ParseStayDate(row.StayDate)
	if err != nil {
		return hotel.Reservation{}, err
	}
	return hotel.NewReservation(roomNumber, stayDate)
}

func wrapStoreError(code string, err error) error {
	return hotel.WrapError(errorOperationStore, errorSubjectReservation, code, err)
}

func isPairConflict(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var sqliteErr *gosqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code()&0xFF == sqliteConstraintCode
	}
	return false
}
