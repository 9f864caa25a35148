package hotel

// Catalog holds the fixed set of bookable rooms in insertion order. It is
// populated once at startup and read-only afterwards; duplicate numbers are
// the caller's responsibility and FindRoom returns the first match.
type Catalog struct {
	rooms []Room
}

// NewCatalog builds a catalog from the given rooms.
func NewCatalog(rooms ...Room) *Catalog {
	catalog := &Catalog{}
	for _, room := range rooms {
		catalog.AddRoom(room)
	}
	return catalog
}

// AddRoom appends a room to the catalog.
func (catalog *Catalog) AddRoom(room Room) {
	catalog.rooms = append(catalog.rooms, room)
}

// FindRoom scans the catalog for a room with the given number.
func (catalog *Catalog) FindRoom(number RoomNumber) (Room, bool) {
	for _, room := range catalog.rooms {
		if room.Number() == number {
			return room, true
		}
	}
	return Room{}, false
}

// Rooms returns the catalog contents in insertion order.
func (catalog *Catalog) Rooms() []Room {
	return append([]Room(nil), catalog.rooms...)
}
