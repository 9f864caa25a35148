// Package oplog adapts the ledger's OperationLogger contract to zap.
package oplog

import (
	"context"

	"github.com/MarkoPoloResearchLab/hotel/pkg/hotel"
	"go.uber.org/zap"
)

// Logger emits one structured record per booking operation.
type Logger struct {
	base *zap.Logger
}

// New wires a zap-backed operation logger.
func New(base *zap.Logger) *Logger {
	return &Logger{base: base}
}

// LogOperation implements hotel.OperationLogger.
func (logger *Logger) LogOperation(_ context.Context, entry hotel.OperationLog) {
	fields := []zap.Field{
		zap.String("operation", entry.Operation),
		zap.String("room_number", entry.RoomNumber.String()),
		zap.String("stay_date", entry.StayDate),
		zap.String("status", entry.Status),
	}
	if entry.Price != 0 {
		fields = append(fields, zap.Int64("price_forints", entry.Price.Int64()))
	}
	if entry.Error != nil {
		logger.base.Warn("booking operation failed", append(fields, zap.Error(entry.Error))...)
		return
	}
	logger.base.Info("booking operation", fields...)
}
