package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/yeremiapane/table-booking/models"
	"github.com/yeremiapane/table-booking/utils"
	"gorm.io/gorm"
)

const (
	journalBatchSize  = 100
	journalMaxPending = 10000
)

// Journal menulis jejak audit perubahan meja/booking ke database secara batch.
// Record tidak pernah memblokir operasi domain.
type Journal struct {
	DB       *gorm.DB
	Interval time.Duration
	// MaxPending membatasi entry yang tertahan saat database gagal;
	// entry tertua dibuang lebih dulu.
	MaxPending int

	mu       sync.Mutex
	pending  []models.JournalEntry
	stopChan chan struct{}
	done     chan struct{}
	now      func() time.Time
}

func NewJournal(db *gorm.DB) *Journal {
	return &Journal{
		DB:         db,
		Interval:   1 * time.Second,
		MaxPending: journalMaxPending,
		now:        time.Now,
	}
}

// Record queues an entry; payload is stored as JSON.
func (j *Journal) Record(event string, tableID, bookingID *int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		utils.ErrorLogger.Printf("Error marshaling journal payload for %s: %v", event, err)
		return
	}

	j.mu.Lock()
	j.pending = append(j.pending, models.JournalEntry{
		Event:     event,
		TableID:   tableID,
		BookingID: bookingID,
		Payload:   string(data),
		CreatedAt: j.now(),
	})
	j.trimLocked()
	j.mu.Unlock()
}

// Pending -> jumlah entry yang belum ditulis
func (j *Journal) Pending() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.pending)
}

func (j *Journal) trimLocked() {
	if j.MaxPending <= 0 || len(j.pending) <= j.MaxPending {
		return
	}
	dropped := len(j.pending) - j.MaxPending
	j.pending = append([]models.JournalEntry(nil), j.pending[dropped:]...)
	utils.ErrorLogger.Printf("Journal backlog full, dropped %d oldest entries", dropped)
}

func (j *Journal) Start() {
	j.stopChan = make(chan struct{})
	j.done = make(chan struct{})

	go func() {
		defer close(j.done)
		ticker := time.NewTicker(j.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := j.Flush(); err != nil {
					utils.ErrorLogger.Printf("Error flushing journal: %v", err)
				}
			case <-j.stopChan:
				return
			}
		}
	}()
}

// Stop menghentikan loop lalu menulis sisa entry yang tertunda
func (j *Journal) Stop() {
	if j.stopChan != nil {
		close(j.stopChan)
		<-j.done
		j.stopChan = nil
	}
	if err := j.Flush(); err != nil {
		utils.ErrorLogger.Printf("Error flushing journal on stop: %v", err)
	}
}

// Flush writes all pending entries. On failure the entries are put back in
// front of anything recorded meanwhile, up to MaxPending.
func (j *Journal) Flush() error {
	j.mu.Lock()
	batch := j.pending
	j.pending = nil
	j.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}

	if err := j.DB.CreateInBatches(&batch, journalBatchSize).Error; err != nil {
		j.mu.Lock()
		j.pending = append(batch, j.pending...)
		j.trimLocked()
		j.mu.Unlock()
		return err
	}

	utils.InfoLogger.Debugf("Journal flushed %d entries", len(batch))
	return nil
}

// Recent -> entry terbaru lebih dulu
func (j *Journal) Recent(limit int) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	if err := j.DB.Order("id DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
