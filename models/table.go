package models

import "strings"

const (
	TableStatusOccupied  = "Occupied"
	TableStatusAvailable = "Available"

	noGuestPlaceholder = "-"
)

// Table adalah meja fisik yang bisa dipesan.
// CurrentBooking hanya referensi, pemiliknya tetap Restaurant.
type Table struct {
	ID             int
	name           string
	seats          int
	occupied       bool
	currentBooking *Booking
}

// TableSummary -> data meja untuk ditampilkan ke UI
type TableSummary struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Seats        int    `json:"seats"`
	Status       string `json:"status"`
	CurrentGuest string `json:"current_guest"`
}

// NewTable validates name and seats before building the table.
func NewTable(id int, name string, seats int) (*Table, error) {
	name, err := validateTableName(name)
	if err != nil {
		return nil, err
	}
	if err := validateSeats(seats); err != nil {
		return nil, err
	}
	return &Table{ID: id, name: name, seats: seats}, nil
}

func (t *Table) Name() string { return t.name }

func (t *Table) Seats() int { return t.seats }

func (t *Table) Occupied() bool { return t.occupied }

// CurrentBooking returns nil for free tables and for walk-ins.
func (t *Table) CurrentBooking() *Booking { return t.currentBooking }

// SetName -> ganti nama meja (di-trim)
func (t *Table) SetName(value string) error {
	name, err := validateTableName(value)
	if err != nil {
		return err
	}
	t.name = name
	return nil
}

// SetSeats -> ganti jumlah kursi
func (t *Table) SetSeats(value int) error {
	if err := validateSeats(value); err != nil {
		return err
	}
	t.seats = value
	return nil
}

// Occupy marks the table as in use. A nil booking means walk-in guests.
// Calling it on an occupied table overwrites the booking reference.
func (t *Table) Occupy(booking *Booking) {
	t.occupied = true
	t.currentBooking = booking
}

// Release -> kosongkan meja
func (t *Table) Release() {
	t.occupied = false
	t.currentBooking = nil
}

func (t *Table) Summary() TableSummary {
	s := TableSummary{
		ID:           t.ID,
		Name:         t.name,
		Seats:        t.seats,
		Status:       TableStatusAvailable,
		CurrentGuest: noGuestPlaceholder,
	}
	if t.occupied {
		s.Status = TableStatusOccupied
	}
	if t.currentBooking != nil {
		s.CurrentGuest = t.currentBooking.GuestName()
	}
	return s
}

func validateTableName(value string) (string, error) {
	name := strings.TrimSpace(value)
	if name == "" {
		return "", newValidationError("name", "Table name cannot be empty")
	}
	return name, nil
}

func validateSeats(value int) error {
	if value <= 0 {
		return newValidationError("seats", "Number of seats must be positive")
	}
	return nil
}
