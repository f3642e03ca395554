package services

import (
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/table-booking/kds"
	"github.com/yeremiapane/table-booking/models"
	"github.com/yeremiapane/table-booking/utils"
)

var (
	ErrTableNotFound    = errors.New("table not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrTableUnavailable = errors.New("table is not available")
	ErrTableNotOccupied = errors.New("table is not occupied")
	ErrBookingInactive  = errors.New("booking is already cancelled")
)

// BookingService adalah satu-satunya pintu ke Restaurant untuk handler HTTP.
// Semua operasi diserialisasi lewat satu mutex; hasil dikembalikan sebagai
// summary (salinan) sehingga tidak ada objek domain yang bocor keluar lock.
type BookingService struct {
	mu         sync.Mutex
	restaurant *models.Restaurant

	journal *Journal
	hub     *kds.BoardHub
}

// NewBookingService -> journal dan hub boleh nil
func NewBookingService(restaurant *models.Restaurant, journal *Journal, hub *kds.BoardHub) *BookingService {
	return &BookingService{
		restaurant: restaurant,
		journal:    journal,
		hub:        hub,
	}
}

// Now returns the restaurant clock.
func (s *BookingService) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restaurant.CurrentTime()
}

func (s *BookingService) Tables() []models.TableSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return tableSummaries(s.restaurant.Tables())
}

func (s *BookingService) AvailableTables(q models.AvailabilityQuery) []models.TableSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return tableSummaries(s.restaurant.AvailableTables(q))
}

func (s *BookingService) FindTable(tableID int) (models.TableSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	table := s.restaurant.FindTableByID(tableID)
	if table == nil {
		return models.TableSummary{}, ErrTableNotFound
	}
	return table.Summary(), nil
}

func (s *BookingService) ActiveBookings() []models.BookingSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return bookingSummaries(s.restaurant.ActiveBookings())
}

func (s *BookingService) BookingHistory() []models.BookingSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return bookingSummaries(s.restaurant.BookingHistory())
}

func (s *BookingService) Stats() models.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restaurant.Stats()
}

// AddTable -> validasi gagal dikembalikan sebagai *models.ValidationError
func (s *BookingService) AddTable(name string, seats int) (models.TableSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.restaurant.AddTable(name, seats)
	if err != nil {
		return models.TableSummary{}, err
	}
	summary := table.Summary()

	s.publish(kds.EventTableCreate, &summary.ID, nil, summary)
	utils.InfoLogger.WithFields(logrus.Fields{
		"table_id": summary.ID,
		"seats":    summary.Seats,
	}).Infof("New table created: %s", summary.Name)
	return summary, nil
}

func (s *BookingService) UpdateTable(tableID int, name string, seats int) (models.TableSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, found, err := s.restaurant.UpdateTable(tableID, name, seats)
	if !found {
		return models.TableSummary{}, ErrTableNotFound
	}
	if err != nil {
		return models.TableSummary{}, err
	}
	summary := table.Summary()

	s.publish(kds.EventTableUpdate, &summary.ID, nil, summary)
	utils.InfoLogger.Printf("Table %d updated: %s (%d seats)", summary.ID, summary.Name, summary.Seats)
	return summary, nil
}

// RemoveTable -> meja yang sedang terisi tidak bisa dihapus
func (s *BookingService) RemoveTable(tableID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	table := s.restaurant.FindTableByID(tableID)
	if table == nil {
		return ErrTableNotFound
	}
	summary := table.Summary()
	if !s.restaurant.RemoveTable(tableID) {
		return ErrTableUnavailable
	}

	s.publish(kds.EventTableDelete, &tableID, nil, summary)
	utils.InfoLogger.Printf("Table %d deleted", tableID)
	return nil
}

// OccupyTable -> walk-in
func (s *BookingService) OccupyTable(tableID int) (models.TableSummary, error) {
	return s.changeOccupancy(tableID, true)
}

func (s *BookingService) ReleaseTable(tableID int) (models.TableSummary, error) {
	return s.changeOccupancy(tableID, false)
}

func (s *BookingService) changeOccupancy(tableID int, occupy bool) (models.TableSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table := s.restaurant.FindTableByID(tableID)
	if table == nil {
		return models.TableSummary{}, ErrTableNotFound
	}

	if occupy && !s.restaurant.OccupyTableDirectly(tableID) {
		return models.TableSummary{}, ErrTableUnavailable
	}
	if !occupy && !s.restaurant.ReleaseTable(tableID) {
		return models.TableSummary{}, ErrTableNotOccupied
	}
	summary := table.Summary()

	s.publish(kds.EventTableUpdate, &tableID, nil, summary)
	utils.InfoLogger.Printf("Table %d status changed to %s", tableID, summary.Status)
	return summary, nil
}

// CreateBooking returns ErrTableNotFound, ErrTableUnavailable (occupied or
// overlapping), or a *models.ValidationError.
func (s *BookingService) CreateBooking(guestName, phone string, tableID int, start, end time.Time) (models.BookingSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.restaurant.FindTableByID(tableID) == nil {
		return models.BookingSummary{}, ErrTableNotFound
	}
	booking, err := s.restaurant.CreateBooking(guestName, phone, tableID, start, end)
	if err != nil {
		return models.BookingSummary{}, err
	}
	if booking == nil {
		return models.BookingSummary{}, ErrTableUnavailable
	}
	summary := booking.Summary()

	s.publish(kds.EventBookingCreate, &tableID, &summary.ID, summary)
	utils.InfoLogger.WithFields(logrus.Fields{
		"booking_id": summary.ID,
		"table_id":   tableID,
		"start":      summary.StartTime,
		"end":        summary.EndTime,
	}).Info("Booking created")
	return summary, nil
}

func (s *BookingService) CancelBooking(bookingID int) (models.BookingSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking := s.restaurant.FindBookingByID(bookingID)
	if booking == nil {
		return models.BookingSummary{}, ErrBookingNotFound
	}
	if !s.restaurant.CancelBooking(bookingID) {
		return models.BookingSummary{}, ErrBookingInactive
	}
	summary := booking.Summary()
	tableID := booking.Table().ID

	s.publish(kds.EventBookingCancel, &tableID, &bookingID, summary)
	utils.InfoLogger.Printf("Booking %d cancelled", bookingID)
	return summary, nil
}

// publish harus dipanggil selagi s.mu dipegang: urutan journal dan broadcast
// sama dengan urutan mutasi. Journal dan hub tidak memanggil balik service.
func (s *BookingService) publish(event string, tableID, bookingID *int, data interface{}) {
	stats := s.restaurant.Stats()
	if s.journal != nil {
		s.journal.Record(event, tableID, bookingID, data)
	}
	if s.hub != nil {
		s.hub.Broadcast(kds.Message{
			Event: event,
			Data: map[string]interface{}{
				"item":  data,
				"stats": stats,
			},
		})
		s.hub.Broadcast(kds.Message{Event: kds.EventDashboardUpdate, Data: stats})
	}
}

func tableSummaries(tables []*models.Table) []models.TableSummary {
	out := make([]models.TableSummary, 0, len(tables))
	for _, t := range tables {
		out = append(out, t.Summary())
	}
	return out
}

func bookingSummaries(bookings []*models.Booking) []models.BookingSummary {
	out := make([]models.BookingSummary, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, b.Summary())
	}
	return out
}

func (s *BookingService) logSeedError(what string, err error) {
	utils.ErrorLogger.Printf("Seeding %s skipped: %v", what, err)
}
