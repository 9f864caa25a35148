package hotel

import "testing"

func TestCatalogPreservesInsertionOrder(test *testing.T) {
	test.Parallel()
	catalog := defaultCatalog(test)
	rooms := catalog.Rooms()
	expected := []string{"105", "106", "107"}
	if len(rooms) != len(expected) {
		test.Fatalf("expected %d rooms, got %d", len(expected), len(rooms))
	}
	for position, number := range expected {
		if rooms[position].Number().String() != number {
			test.Fatalf("position %d: expected %s, got %s", position, number, rooms[position].Number())
		}
	}
}

func TestCatalogFindRoom(test *testing.T) {
	test.Parallel()
	catalog := defaultCatalog(test)

	room, found := catalog.FindRoom(mustRoomNumber(test, "106"))
	if !found {
		test.Fatalf("expected room 106 to be found")
	}
	if room.Type() != RoomTypeSingle {
		test.Fatalf("expected single, got %s", room.Type())
	}
	if _, found := catalog.FindRoom(mustRoomNumber(test, "999")); found {
		test.Fatalf("expected room 999 to be absent")
	}
}

func TestCatalogFindRoomReturnsFirstMatch(test *testing.T) {
	test.Parallel()
	// Duplicate numbers are caller responsibility; lookup takes the first.
	catalog := NewCatalog(
		mustRoom(test, "105", RoomTypeSingle),
		mustRoom(test, "105", RoomTypeDouble),
	)
	room, found := catalog.FindRoom(mustRoomNumber(test, "105"))
	if !found || room.Type() != RoomTypeSingle {
		test.Fatalf("expected first single room, got found=%v type=%s", found, room.Type())
	}
}

func TestCatalogEmptyRooms(test *testing.T) {
	test.Parallel()
	catalog := NewCatalog()
	if rooms := catalog.Rooms(); len(rooms) != 0 {
		test.Fatalf("expected empty catalog, got %d rooms", len(rooms))
	}
}
