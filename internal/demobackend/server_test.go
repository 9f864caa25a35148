package demobackend

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MarkoPoloResearchLab/hotel/internal/store/memstore"
	"github.com/MarkoPoloResearchLab/hotel/pkg/hotel"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var testClock = func() time.Time { return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC) }

func newTestRouter(test *testing.T) *gin.Engine {
	test.Helper()
	bookingService, err := hotel.NewService(hotel.NewCatalog(), memstore.New(), testClock)
	if err != nil {
		test.Fatalf("service init: %v", err)
	}
	seed := hotel.Seed{
		Rooms: []hotel.SeedRoom{
			{Number: "105", Type: "single"},
			{Number: "106", Type: "single"},
			{Number: "107", Type: "double"},
		},
	}
	if err := bookingService.LoadSeed(context.Background(), seed); err != nil {
		test.Fatalf("seed load: %v", err)
	}
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		test.Fatalf("config: %v", err)
	}
	handler := &httpHandler{
		logger:         zap.NewNop(),
		bookingService: bookingService,
	}
	return setupRouter(cfg, handler)
}

func performJSON(test *testing.T, router *gin.Engine, method string, path string, payload any) *httptest.ResponseRecorder {
	test.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			test.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	request := httptest.NewRequest(method, path, body)
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestHealthz(test *testing.T) {
	router := newTestRouter(test)
	recorder := performJSON(test, router, http.MethodGet, "/healthz", nil)
	if recorder.Code != http.StatusOK {
		test.Fatalf("healthz status=%d", recorder.Code)
	}
}

func TestBookingLifecycle(test *testing.T) {
	router := newTestRouter(test)
	payload := map[string]string{"room_number": "105", "date": "2099-01-01"}

	created := performJSON(test, router, http.MethodPost, "/api/bookings", payload)
	if created.Code != http.StatusCreated {
		test.Fatalf("book status=%d body=%s", created.Code, created.Body.String())
	}
	var bookResponse struct {
		NightlyPriceForints int64 `json:"nightly_price_forints"`
	}
	if err := json.Unmarshal(created.Body.Bytes(), &bookResponse); err != nil {
		test.Fatalf("decode book response: %v", err)
	}
	if bookResponse.NightlyPriceForints != 50000 {
		test.Fatalf("expected price 50000, got %d", bookResponse.NightlyPriceForints)
	}

	listed := performJSON(test, router, http.MethodGet, "/api/bookings", nil)
	if listed.Code != http.StatusOK {
		test.Fatalf("list status=%d", listed.Code)
	}
	if !strings.Contains(listed.Body.String(), "Room 105, date: 2099-01-01") {
		test.Fatalf("expected rendered booking, got %s", listed.Body.String())
	}

	duplicate := performJSON(test, router, http.MethodPost, "/api/bookings", payload)
	if duplicate.Code != http.StatusConflict {
		test.Fatalf("duplicate status=%d body=%s", duplicate.Code, duplicate.Body.String())
	}

	cancelled := performJSON(test, router, http.MethodPost, "/api/cancellations", payload)
	if cancelled.Code != http.StatusOK {
		test.Fatalf("cancel status=%d body=%s", cancelled.Code, cancelled.Body.String())
	}

	relisted := performJSON(test, router, http.MethodGet, "/api/bookings", nil)
	if !strings.Contains(relisted.Body.String(), "No bookings.") {
		test.Fatalf("expected empty indicator, got %s", relisted.Body.String())
	}

	missing := performJSON(test, router, http.MethodPost, "/api/cancellations", payload)
	if missing.Code != http.StatusNotFound {
		test.Fatalf("cancel missing status=%d body=%s", missing.Code, missing.Body.String())
	}
}

func TestBookValidationFailures(test *testing.T) {
	router := newTestRouter(test)

	testCases := []struct {
		name       string
		payload    map[string]string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "empty room number",
			payload:    map[string]string{"room_number": "", "date": "2099-01-01"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "empty_field",
		},
		{
			name:       "empty date",
			payload:    map[string]string{"room_number": "105", "date": ""},
			wantStatus: http.StatusBadRequest,
			wantCode:   "empty_field",
		},
		{
			name:       "malformed date",
			payload:    map[string]string{"room_number": "105", "date": "01/01/2099"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_date_format",
		},
		{
			name:       "past date",
			payload:    map[string]string{"room_number": "107", "date": "2020-01-01"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "past_date",
		},
		{
			name:       "unknown room",
			payload:    map[string]string{"room_number": "999", "date": "2099-01-01"},
			wantStatus: http.StatusNotFound,
			wantCode:   "room_not_found",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		test.Run(testCase.name, func(test *testing.T) {
			recorder := performJSON(test, router, http.MethodPost, "/api/bookings", testCase.payload)
			if recorder.Code != testCase.wantStatus {
				test.Fatalf("status=%d body=%s", recorder.Code, recorder.Body.String())
			}
			if !strings.Contains(recorder.Body.String(), testCase.wantCode) {
				test.Fatalf("expected code %q, got %s", testCase.wantCode, recorder.Body.String())
			}
		})
	}
}

func TestRoomsListing(test *testing.T) {
	router := newTestRouter(test)
	recorder := performJSON(test, router, http.MethodGet, "/api/rooms", nil)
	if recorder.Code != http.StatusOK {
		test.Fatalf("rooms status=%d", recorder.Code)
	}
	var response struct {
		Rooms []struct {
			RoomNumber          string `json:"room_number"`
			Type                string `json:"type"`
			NightlyPriceForints int64  `json:"nightly_price_forints"`
		} `json:"rooms"`
		Rendered string `json:"rendered"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		test.Fatalf("decode rooms: %v", err)
	}
	if len(response.Rooms) != 3 {
		test.Fatalf("expected 3 rooms, got %d", len(response.Rooms))
	}
	if response.Rooms[2].Type != "Double" || response.Rooms[2].NightlyPriceForints != 80000 {
		test.Fatalf("unexpected third room: %+v", response.Rooms[2])
	}
	if !strings.Contains(response.Rendered, "Room 105 (Single), price: 50000 Ft") {
		test.Fatalf("unexpected rendering: %s", response.Rendered)
	}
}
