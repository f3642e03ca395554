package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/table-booking/services"
	"github.com/yeremiapane/table-booking/utils"
)

type BookingController struct {
	Service *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{Service: svc}
}

// GetActiveBookings -> booking yang masih aktif
func (bc *BookingController) GetActiveBookings(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Active bookings", bc.Service.ActiveBookings())
}

// GetBookingHistory -> semua booking termasuk yang dibatalkan
func (bc *BookingController) GetBookingHistory(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Booking history", bc.Service.BookingHistory())
}

// CreateBooking -> start_time/end_time boleh kosong dua-duanya (pakai jam default)
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req struct {
		GuestName string `json:"guest_name"`
		Phone     string `json:"phone"`
		TableID   int    `json:"table_id" binding:"required"`
		StartTime string `json:"start_time"`
		EndTime   string `json:"end_time"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	// nama tamu kosong dilaporkan lebih dulu oleh domain; format telepon dicek sesudahnya
	if strings.TrimSpace(req.GuestName) != "" && strings.TrimSpace(req.Phone) != "" && !utils.ValidatePhone(req.Phone) {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidPhone)
		return
	}

	start, end, err := bc.bookingInterval(req.StartTime, req.EndTime)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	booking, err := bc.Service.CreateBooking(req.GuestName, req.Phone, req.TableID, start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Booking created", booking)
}

// CancelBooking -> batalkan booking aktif
func (bc *BookingController) CancelBooking(c *gin.Context) {
	id, ok := paramID(c, "booking_id")
	if !ok {
		return
	}
	booking, err := bc.Service.CancelBooking(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Booking cancelled", booking)
}

func (bc *BookingController) bookingInterval(rawStart, rawEnd string) (time.Time, time.Time, error) {
	now := bc.Service.Now()
	rawStart, rawEnd = strings.TrimSpace(rawStart), strings.TrimSpace(rawEnd)

	switch {
	case rawStart == "" && rawEnd == "":
		start, end := utils.DefaultBookingTimes(now)
		return start, end, nil
	case rawStart == "" || rawEnd == "":
		return time.Time{}, time.Time{}, ErrIncompleteTimes
	}

	start, err := utils.ParseBookingTime(rawStart, now)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := utils.ParseBookingTime(rawEnd, now)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
