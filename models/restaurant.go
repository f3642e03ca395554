package models

import "time"

// Restaurant memegang semua meja dan booking, sekaligus mesin availability.
// Tidak ada locking di sini: pemanggil yang harus menserialisasi akses.
type Restaurant struct {
	// Now dipakai untuk validasi "start time cannot be in the past".
	Now func() time.Time

	tables        []*Table
	bookings      []*Booking
	nextTableID   int
	nextBookingID int
}

// AvailabilityQuery -> filter untuk AvailableTables.
// Seats <= 0 berarti tanpa filter kursi; filter waktu hanya aktif kalau Start dan End diisi.
type AvailabilityQuery struct {
	Seats int
	Start time.Time
	End   time.Time
}

func (q AvailabilityQuery) hasInterval() bool {
	return !q.Start.IsZero() && !q.End.IsZero()
}

// Stats -> ringkasan jumlah meja untuk dashboard
type Stats struct {
	Total          int `json:"total"`
	Occupied       int `json:"occupied"`
	Available      int `json:"available"`
	ActiveBookings int `json:"active_bookings"`
}

func NewRestaurant() *Restaurant {
	return &Restaurant{
		Now:           time.Now,
		nextTableID:   1,
		nextBookingID: 1,
	}
}

// Tables returns a copy of the table list in insertion order.
func (r *Restaurant) Tables() []*Table {
	out := make([]*Table, len(r.tables))
	copy(out, r.tables)
	return out
}

// ActiveBookings -> booking yang belum dibatalkan, urut sesuai waktu dibuat
func (r *Restaurant) ActiveBookings() []*Booking {
	out := make([]*Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		if b.Active() {
			out = append(out, b)
		}
	}
	return out
}

// BookingHistory returns every booking ever created, cancelled ones included.
func (r *Restaurant) BookingHistory() []*Booking {
	out := make([]*Booking, len(r.bookings))
	copy(out, r.bookings)
	return out
}

// AddTable -> tambah meja baru. ID hanya dipakai kalau validasi lolos.
func (r *Restaurant) AddTable(name string, seats int) (*Table, error) {
	table, err := NewTable(r.nextTableID, name, seats)
	if err != nil {
		return nil, err
	}
	r.tables = append(r.tables, table)
	r.nextTableID++
	return table, nil
}

// RemoveTable returns false when the table is unknown or occupied.
// Bookings on the table are not cancelled.
func (r *Restaurant) RemoveTable(tableID int) bool {
	for i, t := range r.tables {
		if t.ID != tableID {
			continue
		}
		if t.Occupied() {
			return false
		}
		r.tables = append(r.tables[:i:i], r.tables[i+1:]...)
		return true
	}
	return false
}

func (r *Restaurant) FindTableByID(tableID int) *Table {
	for _, t := range r.tables {
		if t.ID == tableID {
			return t
		}
	}
	return nil
}

func (r *Restaurant) FindBookingByID(bookingID int) *Booking {
	for _, b := range r.bookings {
		if b.ID == bookingID {
			return b
		}
	}
	return nil
}

// UpdateTable validates both values before touching the table.
// The bool result is false when the table does not exist.
func (r *Restaurant) UpdateTable(tableID int, name string, seats int) (*Table, bool, error) {
	table := r.FindTableByID(tableID)
	if table == nil {
		return nil, false, nil
	}
	name, err := validateTableName(name)
	if err != nil {
		return table, true, err
	}
	if err := validateSeats(seats); err != nil {
		return table, true, err
	}
	table.name = name
	table.seats = seats
	return table, true, nil
}

// CreateBooking returns (nil, nil) when the table is unknown or not free for
// [start, end). Field errors come back as *ValidationError. The table is not
// marked occupied; availability is computed from active bookings.
func (r *Restaurant) CreateBooking(guestName, phone string, tableID int, start, end time.Time) (*Booking, error) {
	table := r.FindTableByID(tableID)
	if table == nil {
		return nil, nil
	}
	if r.IsTableOccupied(table, start, end) {
		return nil, nil
	}

	booking, err := NewBooking(r.nextBookingID, guestName, phone, table, start, end, r.CurrentTime())
	if err != nil {
		return nil, err
	}
	r.bookings = append(r.bookings, booking)
	r.nextBookingID++
	return booking, nil
}

// IsTableOccupied reports whether the table is in use now, or has an active
// booking intersecting [start, end).
func (r *Restaurant) IsTableOccupied(table *Table, start, end time.Time) bool {
	if table.Occupied() {
		return true
	}
	for _, b := range r.bookings {
		if b.Active() && b.Table() == table && b.Overlaps(start, end) {
			return true
		}
	}
	return false
}

// AvailableTables -> meja yang cocok dengan query.
// Tanpa interval waktu, booking yang ada tidak ikut dipertimbangkan.
func (r *Restaurant) AvailableTables(q AvailabilityQuery) []*Table {
	out := make([]*Table, 0, len(r.tables))
	for _, t := range r.tables {
		if q.Seats > 0 && t.Seats() < q.Seats {
			continue
		}
		if q.hasInterval() && r.IsTableOccupied(t, q.Start, q.End) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// OccupyTableDirectly -> walk-in, tanpa booking
func (r *Restaurant) OccupyTableDirectly(tableID int) bool {
	table := r.FindTableByID(tableID)
	if table == nil || table.Occupied() {
		return false
	}
	table.Occupy(nil)
	return true
}

func (r *Restaurant) ReleaseTable(tableID int) bool {
	table := r.FindTableByID(tableID)
	if table == nil || !table.Occupied() {
		return false
	}
	table.Release()
	return true
}

func (r *Restaurant) CancelBooking(bookingID int) bool {
	booking := r.FindBookingByID(bookingID)
	if booking == nil || !booking.Active() {
		return false
	}
	booking.Cancel()
	return true
}

func (r *Restaurant) Stats() Stats {
	s := Stats{Total: len(r.tables)}
	for _, t := range r.tables {
		if t.Occupied() {
			s.Occupied++
		}
	}
	s.Available = s.Total - s.Occupied
	for _, b := range r.bookings {
		if b.Active() {
			s.ActiveBookings++
		}
	}
	return s
}

// CurrentTime -> jam dari Now, atau time.Now kalau Now nil
func (r *Restaurant) CurrentTime() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}
