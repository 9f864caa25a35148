package hotel

import "context"

// ListRooms returns the catalog contents in insertion order.
func (service *Service) ListRooms(ctx context.Context) []Room {
	return service.catalog.Rooms()
}

// ListBookings returns all reservations in insertion order.
func (service *Service) ListBookings(ctx context.Context) ([]Reservation, error) {
	return service.store.ListReservations(ctx)
}

// LoadSeed populates the catalog and applies the initial reservations. Seed
// bookings skip the past-date check but keep the duplicate and existence
// checks; an individual booking failure is logged and skipped, while an
// invalid seed room aborts startup.
func (service *Service) LoadSeed(ctx context.Context, seed Seed) error {
	for _, seedRoom := range seed.Rooms {
		number, err := NewRoomNumber(seedRoom.Number)
		if err != nil {
			return err
		}
		roomType, err := ParseRoomType(seedRoom.Type)
		if err != nil {
			return err
		}
		room, err := NewRoom(number, roomType)
		if err != nil {
			return err
		}
		service.catalog.AddRoom(room)
	}
	for _, seedBooking := range seed.Bookings {
		service.applySeedBooking(ctx, seedBooking)
	}
	return nil
}

func (service *Service) applySeedBooking(ctx context.Context, seedBooking SeedBooking) {
	entry := OperationLog{Operation: operationSeed}
	defer func() { service.logOperation(ctx, entry) }()

	roomNumber, err := NewRoomNumber(seedBooking.RoomNumber)
	if err != nil {
		entry.Error = err
		return
	}
	entry.RoomNumber = roomNumber
	stayDate, err := ParseStayDate(seedBooking.Date)
	if err != nil {
		entry.Error = err
		return
	}
	entry.StayDate = stayDate.String()
	entry.Error = service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
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
		entry.Price = room.NightlyPrice()
		return nil
	})
}
