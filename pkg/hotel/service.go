package hotel

import (
	"context"
	"fmt"
	"time"
)

// Service is the booking ledger. It owns the room catalog and enforces the
// booking invariants over a reservation Store.
type Service struct {
	catalog *Catalog
	store   Store
	nowFn   func() time.Time
	logger  OperationLogger
}

// NewService wires a Service.
func NewService(catalog *Catalog, store Store, now func() time.Time, options ...ServiceOption) (*Service, error) {
	if catalog == nil {
		return nil, fmt.Errorf("%w: catalog dependency is nil", ErrInvalidServiceConfig)
	}
	if store == nil {
		return nil, fmt.Errorf("%w: store dependency is nil", ErrInvalidServiceConfig)
	}
	if now == nil {
		return nil, fmt.Errorf("%w: clock dependency is nil", ErrInvalidServiceConfig)
	}
	service := &Service{catalog: catalog, store: store, nowFn: now}
	for _, option := range options {
		if option != nil {
			option(service)
		}
	}
	return service, nil
}

// Book reserves a room for a date and returns its nightly price. The checks
// run in a fixed order: date format, past date, duplicate (room, date) pair,
// then room existence. A duplicate pair is reported even when the room is
// absent from the catalog.
func (service *Service) Book(ctx context.Context, roomNumber RoomNumber, rawDate string) (PriceForints, error) {
	stayDate, err := ParseStayDate(rawDate)
	if err != nil {
		return 0, err
	}
	// Day granularity: a booking for the current date is accepted.
	today := NewStayDate(service.nowFn())
	if stayDate.Before(today) {
		return 0, fmt.Errorf("%w: %s is before %s", ErrPastDate, stayDate, today)
	}
	var price PriceForints
	operationError := service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
		taken, err := transactionStore.HasReservation(ctx, roomNumber, stayDate)
		if err != nil {
			return err
		}
		if taken {
			return ErrRoomAlreadyBooked
		}
		room, found := service.catalog.FindRoom(roomNumber)
		if !found {
			return ErrRoomNotFound
		}
		reservation, err := NewReservation(roomNumber, stayDate)
		if err != nil {
			return err
		}
		if err := transactionStore.InsertReservation(ctx, reservation); err != nil {
			return err
		}
		price = room.NightlyPrice()
		return nil
	})
	service.logOperation(ctx, OperationLog{
		Operation:  operationBook,
		RoomNumber: roomNumber,
		StayDate:   stayDate.String(),
		Price:      price,
		Error:      operationError,
	})
	if operationError != nil {
		return 0, operationError
	}
	return price, nil
}

// Cancel removes the reservation for the given room and date.
func (service *Service) Cancel(ctx context.Context, roomNumber RoomNumber, rawDate string) error {
	stayDate, err := ParseStayDate(rawDate)
	if err != nil {
		return err
	}
	operationError := service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
		return transactionStore.DeleteReservation(ctx, roomNumber, stayDate)
	})
	service.logOperation(ctx, OperationLog{
		Operation:  operationCancel,
		RoomNumber: roomNumber,
		StayDate:   stayDate.String(),
		Error:      operationError,
	})
	return operationError
}

func (service *Service) logOperation(ctx context.Context, entry OperationLog) {
	if service.logger == nil {
		return
	}
	if entry.Status == "" {
		if entry.Error != nil {
			entry.Status = operationStatusError
		} else {
			entry.Status = operationStatusOK
		}
	}
	service.logger.LogOperation(ctx, entry)
}
