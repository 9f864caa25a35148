// Package memstore keeps reservations in process memory. It is the default
// store: nothing survives a restart, matching the single-process demo model.
package memstore

import (
	"context"
	"sync"

	"github.com/MarkoPoloResearchLab/hotel/pkg/hotel"
)

type pairKey struct {
	roomNumber string
	stayDate   string
}

type state struct {
	reservations []hotel.Reservation
	index        map[pairKey]struct{}
}

// Store implements hotel.Store with an insertion-ordered slice guarded by a
// mutex. WithTx holds the lock for the whole closure, so a transaction sees
// and mutates a consistent snapshot.
type Store struct {
	mu    sync.Mutex
	state state
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{state: state{index: make(map[pairKey]struct{})}}
}

// WithTx executes fn under the store lock.
func (store *Store) WithTx(ctx context.Context, fn func(ctx context.Context, txStore hotel.Store) error) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	return fn(ctx, &txView{state: &store.state})
}

// InsertReservation appends a reservation, rejecting duplicate pairs.
func (store *Store) InsertReservation(ctx context.Context, reservation hotel.Reservation) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.state.insert(reservation)
}

// DeleteReservation removes the first reservation matching the pair.
func (store *Store) DeleteReservation(ctx context.Context, roomNumber hotel.RoomNumber, stayDate hotel.StayDate) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.state.delete(roomNumber, stayDate)
}

// HasReservation reports whether the (room, date) pair is already reserved.
func (store *Store) HasReservation(ctx context.Context, roomNumber hotel.RoomNumber, stayDate hotel.StayDate) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.state.has(roomNumber, stayDate), nil
}

// ListReservations returns all reservations in insertion order.
func (store *Store) ListReservations(ctx context.Context) ([]hotel.Reservation, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.state.list(), nil
}

// txView serves Store calls inside WithTx without re-acquiring the lock.
type txView struct {
	state *state
}

func (view *txView) WithTx(ctx context.Context, fn func(ctx context.Context, txStore hotel.Store) error) error {
	return fn(ctx, view)
}

func (view *txView) InsertReservation(ctx context.Context, reservation hotel.Reservation) error {
	return view.state.insert(reservation)
}

func (view *txView) DeleteReservation(ctx context.Context, roomNumber hotel.RoomNumber, stayDate hotel.StayDate) error {
	return view.state.delete(roomNumber, stayDate)
}

func (view *txView) HasReservation(ctx context.Context, roomNumber hotel.RoomNumber, stayDate hotel.StayDate) (bool, error) {
	return view.state.has(roomNumber, stayDate), nil
}

func (view *txView) ListReservations(ctx context.Context) ([]hotel.Reservation, error) {
	return view.state.list(), nil
}

func keyFor(roomNumber hotel.RoomNumber, stayDate hotel.StayDate) pairKey {
	return pairKey{roomNumber: roomNumber.String(), stayDate: stayDate.String()}
}

func (s *state) insert(reservation hotel.Reservation) error {
	key := keyFor(reservation.RoomNumber(), reservation.StayDate())
	if _, exists := s.index[key]; exists {
		return hotel.ErrRoomAlreadyBooked
	}
	s.index[key] = struct{}{}
	s.reservations = append(s.reservations, reservation)
	return nil
}

func (s *state) delete(roomNumber hotel.RoomNumber, stayDate hotel.StayDate) error {
	key := keyFor(roomNumber, stayDate)
	if _, exists := s.index[key]; !exists {
		return hotel.ErrReservationNotFound
	}
	delete(s.index, key)
	for position, reservation := range s.reservations {
		if reservation.RoomNumber() == roomNumber && reservation.StayDate() == stayDate {
			s.reservations = append(s.reservations[:position], s.reservations[position+1:]...)
			break
		}
	}
	return nil
}

func (s *state) has(roomNumber hotel.RoomNumber, stayDate hotel.StayDate) bool {
	_, exists := s.index[keyFor(roomNumber, stayDate)]
	return exists
}

func (s *state) list() []hotel.Reservation {
	return append([]hotel.Reservation(nil), s.reservations...)
}
