package controllers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"devevents/internal/delivery/http/helpers"
	"devevents/internal/domain"
)

// BookingResponse is the body for POST /bookings (201).
type BookingResponse struct {
	Message string          `json:"message"`
	Booking *domain.Booking `json:"booking"`
}

// ListBookingsResponse is the body for GET /bookings (200).
type ListBookingsResponse struct {
	Message  string            `json:"message"`
	Bookings []*domain.Booking `json:"bookings"`
	Count    int               `json:"count"`
}

type BookingController struct {
	Logger       *slog.Logger
	Service      domain.BookingService
	ExposeErrors bool
}

func NewBookingController(logger *slog.Logger, svc domain.BookingService, exposeErrors bool) *BookingController {
	return &BookingController{
		Logger:       logger,
		Service:      svc,
		ExposeErrors: exposeErrors,
	}
}

// CreateBooking godoc
// @Summary Book an event
// @Description Reserves a spot for email on the event. The email is stored lowercased; one booking per event and email.
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body domain.BookingInput true "Event ID and email"
// @Success 201 {object} controllers.BookingResponse
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 409 {object} helpers.APIError "code: conflict (already booked)"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /bookings [post]
func (c *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var input domain.BookingInput
	if !helpers.DecodeJSON(w, r, &input) {
		return
	}
	booking, err := c.Service.CreateBooking(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, c.Logger, c.ExposeErrors, "Failed to create booking", err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, BookingResponse{
		Message: "Booking created successfully",
		Booking: booking,
	})
}

// ListBookings godoc
// @Summary List bookings
// @Description Newest first, restricted to eventId when given.
// @Tags bookings
// @Produce json
// @Param eventId query string false "Event ID"
// @Success 200 {object} controllers.ListBookingsResponse
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /bookings [get]
func (c *BookingController) ListBookings(w http.ResponseWriter, r *http.Request) {
	eventID := r.URL.Query().Get("eventId")
	bookings, err := c.Service.ListBookings(r.Context(), eventID)
	if err != nil {
		writeServiceError(w, r, c.Logger, c.ExposeErrors, "Failed to fetch bookings", err)
		return
	}
	msg := "All bookings fetched successfully"
	if eventID != "" {
		msg = "Bookings fetched successfully"
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListBookingsResponse{
		Message:  msg,
		Bookings: bookings,
		Count:    len(bookings),
	})
}

// ExportBookings godoc
// @Summary Export bookings as CSV
// @Description Same selection as GET /bookings, as id,eventId,email,createdAt rows.
// @Tags bookings
// @Produce text/csv
// @Param eventId query string false "Event ID"
// @Success 200 {string} string "CSV"
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /bookings/export [get]
func (c *BookingController) ExportBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := c.Service.ListBookings(r.Context(), r.URL.Query().Get("eventId"))
	if err != nil {
		writeServiceError(w, r, c.Logger, c.ExposeErrors, "Failed to export bookings", err)
		return
	}
	rows := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		row := *b
		row.ID = csvSafe(row.ID)
		row.EventID = csvSafe(row.EventID)
		row.Email = csvSafe(row.Email)
		rows = append(rows, &row)
	}
	var buf bytes.Buffer
	if err := gocsv.Marshal(rows, &buf); err != nil {
		writeServiceError(w, r, c.Logger, c.ExposeErrors, "Failed to export bookings", err)
		return
	}
	filename := fmt.Sprintf("bookings-%s.csv", time.Now().UTC().Format("20060102-150405"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// csvSafe quotes a cell that a spreadsheet would otherwise evaluate as a formula.
func csvSafe(s string) string {
	if s != "" && strings.ContainsRune("=+-@\t\r", rune(s[0])) {
		return "'" + s
	}
	return s
}
