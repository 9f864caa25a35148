package hotel

import (
	"context"
	"errors"
	"testing"
)

type recorderLogger struct {
	entries []OperationLog
}

func (logger *recorderLogger) LogOperation(_ context.Context, entry OperationLog) {
	logger.entries = append(logger.entries, entry)
}

func TestServiceLogsBookOperation(test *testing.T) {
	test.Parallel()
	logger := &recorderLogger{}
	service := mustNewService(test, defaultCatalog(test), newStubStore(), WithOperationLogger(logger))

	if _, err := service.Book(context.Background(), mustRoomNumber(test, "105"), "2099-01-01"); err != nil {
		test.Fatalf("book: %v", err)
	}
	if len(logger.entries) != 1 {
		test.Fatalf("expected one log entry, got %d", len(logger.entries))
	}
	entry := logger.entries[0]
	if entry.Operation != operationBook || entry.RoomNumber.String() != "105" || entry.StayDate != "2099-01-01" {
		test.Fatalf("unexpected log entry: %+v", entry)
	}
	if entry.Price.Int64() != 50000 {
		test.Fatalf("expected price in log entry, got %d", entry.Price.Int64())
	}
	if entry.Error != nil || entry.Status != operationStatusOK {
		test.Fatalf("expected successful log entry, got %+v", entry)
	}
}

func TestServiceLogsErrorStatus(test *testing.T) {
	test.Parallel()
	store := newStubStore()
	store.insertErr = errors.New("boom")
	logger := &recorderLogger{}
	service := mustNewService(test, defaultCatalog(test), store, WithOperationLogger(logger))

	if _, err := service.Book(context.Background(), mustRoomNumber(test, "105"), "2099-01-01"); err == nil {
		test.Fatalf("expected error")
	}
	if len(logger.entries) != 1 {
		test.Fatalf("expected one log entry, got %d", len(logger.entries))
	}
	if logger.entries[0].Status != operationStatusError || logger.entries[0].Error == nil {
		test.Fatalf("expected error log entry, got %+v", logger.entries[0])
	}
}

func TestServiceLogsCancelOperation(test *testing.T) {
	test.Parallel()
	store := newStubStore()
	store.reservations = append(store.reservations, mustReservation(test, "106", "2099-01-01"))
	logger := &recorderLogger{}
	service := mustNewService(test, defaultCatalog(test), store, WithOperationLogger(logger))

	if err := service.Cancel(context.Background(), mustRoomNumber(test, "106"), "2099-01-01"); err != nil {
		test.Fatalf("cancel: %v", err)
	}
	if len(logger.entries) != 1 || logger.entries[0].Operation != operationCancel {
		test.Fatalf("unexpected log entries: %+v", logger.entries)
	}
}
