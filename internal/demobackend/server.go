// Package demobackend is the shell surface over the booking ledger: it
// collects the two free-text fields, performs the empty-field check, invokes
// the ledger operation, and renders the result or error. It holds no
// business logic of its own.
package demobackend

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MarkoPoloResearchLab/hotel/pkg/hotel"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Run boots the HTTP shell using the supplied configuration.
func Run(ctx context.Context, cfg Config, bookingService *hotel.Service, logger *zap.Logger) error {
	handler := &httpHandler{
		logger:         logger,
		bookingService: bookingService,
	}

	router := setupRouter(cfg, handler)

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("booking shell listening", zap.String("addr", cfg.ListenAddr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
			logger.Warn("server shutdown error", zap.Error(shutdownErr))
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func setupRouter(cfg Config, handler *httpHandler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Origin", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.GET("/rooms", handler.handleRooms)
	api.GET("/bookings", handler.handleBookings)
	api.POST("/bookings", handler.handleBook)
	api.POST("/cancellations", handler.handleCancel)

	return router
}

type httpHandler struct {
	logger         *zap.Logger
	bookingService *hotel.Service
}

type bookingRequest struct {
	RoomNumber string `json:"room_number"`
	Date       string `json:"date"`
}

func (handler *httpHandler) handleRooms(ctx *gin.Context) {
	rooms := handler.bookingService.ListRooms(ctx.Request.Context())
	payloads := make([]roomPayload, 0, len(rooms))
	for _, room := range rooms {
		payloads = append(payloads, roomPayload{
			RoomNumber:          room.Number().String(),
			Type:                room.Type().Label(),
			NightlyPriceForints: room.NightlyPrice().Int64(),
		})
	}
	ctx.JSON(http.StatusOK, gin.H{
		"rooms":    payloads,
		"rendered": hotel.RenderRooms(rooms),
	})
}

func (handler *httpHandler) handleBookings(ctx *gin.Context) {
	reservations, err := handler.bookingService.ListBookings(ctx.Request.Context())
	if err != nil {
		handler.logger.Error("booking list failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, errorResponse("store_error", "bookings unavailable"))
		return
	}
	payloads := make([]bookingPayload, 0, len(reservations))
	for _, reservation := range reservations {
		payloads = append(payloads, bookingPayload{
			RoomNumber: reservation.RoomNumber().String(),
			Date:       reservation.StayDate().String(),
		})
	}
	ctx.JSON(http.StatusOK, gin.H{
		"bookings": payloads,
		"rendered": hotel.RenderBookings(reservations),
	})
}

func (handler *httpHandler) handleBook(ctx *gin.Context) {
	request, ok := handler.bindBookingRequest(ctx)
	if !ok {
		return
	}
	roomNumber, err := hotel.NewRoomNumber(request.RoomNumber)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse("invalid_room_number", err.Error()))
		return
	}
	price, err := handler.bookingService.Book(ctx.Request.Context(), roomNumber, request.Date)
	if err != nil {
		statusCode, code := mapDomainError(err)
		ctx.JSON(statusCode, errorResponse(code, err.Error()))
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{
		"room_number":           roomNumber.String(),
		"date":                  request.Date,
		"nightly_price_forints": price.Int64(),
	})
}

func (handler *httpHandler) handleCancel(ctx *gin.Context) {
	request, ok := handler.bindBookingRequest(ctx)
	if !ok {
		return
	}
	roomNumber, err := hotel.NewRoomNumber(request.RoomNumber)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse("invalid_room_number", err.Error()))
		return
	}
	if err := handler.bookingService.Cancel(ctx.Request.Context(), roomNumber, request.Date); err != nil {
		statusCode, code := mapDomainError(err)
		ctx.JSON(statusCode, errorResponse(code, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status":      "cancelled",
		"room_number": roomNumber.String(),
		"date":        request.Date,
	})
}

// bindBookingRequest parses the payload and performs the empty-field check
// before the ledger is invoked.
func (handler *httpHandler) bindBookingRequest(ctx *gin.Context) (bookingRequest, bool) {
	var request bookingRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse("invalid_payload", "expected JSON body"))
		return bookingRequest{}, false
	}
	if request.RoomNumber == "" {
		ctx.JSON(http.StatusBadRequest, errorResponse("empty_field", hotel.ErrEmptyField.Error()+": room number"))
		return bookingRequest{}, false
	}
	if request.Date == "" {
		ctx.JSON(http.StatusBadRequest, errorResponse("empty_field", hotel.ErrEmptyField.Error()+": date"))
		return bookingRequest{}, false
	}
	return request, true
}

func mapDomainError(err error) (int, string) {
	switch {
	case errors.Is(err, hotel.ErrInvalidDateFormat):
		return http.StatusBadRequest, "invalid_date_format"
	case errors.Is(err, hotel.ErrPastDate):
		return http.StatusBadRequest, "past_date"
	case errors.Is(err, hotel.ErrRoomAlreadyBooked):
		return http.StatusConflict, "room_already_booked"
	case errors.Is(err, hotel.ErrRoomNotFound):
		return http.StatusNotFound, "room_not_found"
	case errors.Is(err, hotel.ErrReservationNotFound):
		return http.StatusNotFound, "reservation_not_found"
	case errors.Is(err, hotel.ErrInvalidRoomNumber):
		return http.StatusBadRequest, "invalid_room_number"
	default:
		return http.StatusInternalServerError, "store_error"
	}
}

func errorResponse(code string, message string) gin.H {
	return gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	}
}

type roomPayload struct {
	RoomNumber          string `json:"room_number"`
	Type                string `json:"type"`
	NightlyPriceForints int64  `json:"nightly_price_forints"`
}

type bookingPayload struct {
	RoomNumber string `json:"room_number"`
	Date       string `json:"date"`
}
