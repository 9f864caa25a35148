package hotel

// SeedRoom describes one catalog entry in the startup seed.
type SeedRoom struct {
	Number string
	Type   string
}

// SeedBooking describes one initial reservation in the startup seed.
type SeedBooking struct {
	RoomNumber string
	Date       string
}

// Seed is the fixed data loaded at process start, prior to any interaction.
type Seed struct {
	Rooms    []SeedRoom
	Bookings []SeedBooking
}

// DefaultSeed returns the fixed startup inventory: two single rooms, one
// double room, and the initial reservations. Several of the dates are in the
// past at most run times; seed loading is exempt from the past-date check.
func DefaultSeed() Seed {
	return Seed{
		Rooms: []SeedRoom{
			{Number: "105", Type: "single"},
			{Number: "106", Type: "single"},
			{Number: "107", Type: "double"},
		},
		Bookings: []SeedBooking{
			{RoomNumber: "105", Date: "2024-12-01"},
			{RoomNumber: "105", Date: "2024-12-02"},
			{RoomNumber: "106", Date: "2024-07-30"},
			{RoomNumber: "107", Date: "2024-12-31"},
			{RoomNumber: "107", Date: "2025-01-01"},
		},
	}
}
