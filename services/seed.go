package services

import "time"

type sampleTable struct {
	name  string
	seats int
}

var sampleTables = []sampleTable{
	{"Window 1", 2},
	{"Window 2", 2},
	{"Center 1", 4},
	{"Center 2", 4},
	{"VIP 1", 6},
	{"VIP 2", 8},
	{"Bar Counter 1", 1},
	{"Bar Counter 2", 1},
}

// SeedSampleData -> data contoh untuk demo. Error hanya di-log.
func SeedSampleData(s *BookingService) {
	for _, t := range sampleTables {
		if _, err := s.AddTable(t.name, t.seats); err != nil {
			s.logSeedError("table "+t.name, err)
		}
	}

	now := s.Now()
	if _, err := s.CreateBooking("Ryan Gosling", "+79161234567", 1, now.Add(2*time.Hour), now.Add(3*time.Hour)); err != nil {
		s.logSeedError("booking for table 1", err)
	}
	if _, err := s.CreateBooking("Jane Doe", "+79167654321", 3, now.Add(1*time.Hour), now.Add(2*time.Hour)); err != nil {
		s.logSeedError("booking for table 3", err)
	}
}
