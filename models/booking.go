package models

import (
	"strings"
	"time"
)

const (
	BookingStatusActive    = "Active"
	BookingStatusCancelled = "Cancelled"

	// SummaryTimeLayout dipakai untuk start_time/end_time di summary.
	SummaryTimeLayout = "2006-01-02 15:04"
)

// Booking -> reservasi satu meja untuk satu tamu pada interval [Start, End)
type Booking struct {
	ID        int
	guestName string
	phone     string
	table     *Table
	start     time.Time
	end       time.Time
	active    bool
}

type BookingSummary struct {
	ID        int    `json:"id"`
	GuestName string `json:"guest_name"`
	Phone     string `json:"phone"`
	Table     string `json:"table"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
}

// NewBooking validates guest name, phone, start and end, in that order, and
// returns the first violation. now is the reference for "start in the past".
func NewBooking(id int, guestName, phone string, table *Table, start, end, now time.Time) (*Booking, error) {
	guestName = strings.TrimSpace(guestName)
	if guestName == "" {
		return nil, newValidationError("guest_name", "Guest name cannot be empty")
	}
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, newValidationError("phone", "Phone cannot be empty")
	}
	if start.Before(now) {
		return nil, newValidationError("start_time", "Start time cannot be in the past")
	}
	if !end.After(start) {
		return nil, newValidationError("end_time", "End time must be after start time")
	}

	return &Booking{
		ID:        id,
		guestName: guestName,
		phone:     phone,
		table:     table,
		start:     start,
		end:       end,
		active:    true,
	}, nil
}

func (b *Booking) GuestName() string { return b.guestName }
func (b *Booking) Phone() string { return b.phone }
func (b *Booking) Table() *Table { return b.table }
func (b *Booking) Start() time.Time { return b.start }
func (b *Booking) End() time.Time { return b.end }
func (b *Booking) Active() bool { return b.active }

// Overlaps reports whether [start, end) intersects the booking interval.
// Touching intervals do not overlap.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return start.Before(b.end) && b.start.Before(end)
}

// Cancel -> batalkan booking; meja hanya dilepas kalau masih dipegang booking ini
func (b *Booking) Cancel() {
	b.active = false
	if b.table != nil && b.table.CurrentBooking() == b {
		b.table.Release()
	}
}

func (b *Booking) Summary() BookingSummary {
	status := BookingStatusActive
	if !b.active {
		status = BookingStatusCancelled
	}
	var tableName string
	if b.table != nil {
		tableName = b.table.Name()
	}
	return BookingSummary{
		ID:        b.ID,
		GuestName: b.guestName,
		Phone:     b.phone,
		Table:     tableName,
		StartTime: b.start.Format(SummaryTimeLayout),
		EndTime:   b.end.Format(SummaryTimeLayout),
		Status:    status,
	}
}
