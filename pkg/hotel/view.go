package hotel

import (
	"fmt"
	"strings"
)

const (
	emptyRoomsIndicator    = "No rooms in the catalog."
	emptyBookingsIndicator = "No bookings."
)

// RenderRooms formats the catalog as one line per room, in catalog order.
func RenderRooms(rooms []Room) string {
	if len(rooms) == 0 {
		return emptyRoomsIndicator
	}
	lines := make([]string, 0, len(rooms))
	for _, room := range rooms {
		lines = append(lines, fmt.Sprintf("Room %s (%s), price: %d Ft", room.Number(), room.Type().Label(), room.NightlyPrice().Int64()))
	}
	return strings.Join(lines, "\n")
}

// RenderBookings formats reservations as one line per booking, in insertion
// order, with dates under the fixed DateLayout.
func RenderBookings(reservations []Reservation) string {
	if len(reservations) == 0 {
		return emptyBookingsIndicator
	}
	lines := make([]string, 0, len(reservations))
	for _, reservation := range reservations {
		lines = append(lines, fmt.Sprintf("Room %s, date: %s", reservation.RoomNumber(), reservation.StayDate()))
	}
	return strings.Join(lines, "\n")
}
