package status

import (
	"fmt"
	"sync"
	"time"

	"flightbooker/pkg/logger"
	"flightbooker/pkg/model"
	"flightbooker/pkg/random"
)

var gateLetters = []string{"A", "B", "C", "D"}

const (
	minGateNumber = 1
	maxGateNumber = 30
)

// Simulator owns the per-flight-number status table. State lives for the
// lifetime of the simulator instance; construct a fresh one per process (or
// per test).
type Simulator struct {
	mu       sync.Mutex
	records  map[string]model.StatusRecord
	rng      random.Rand
	flipOdds int
	now      func() time.Time
	log      *logger.Logger
}

// NewSimulator builds a simulator around the given record table (a fresh one
// is allocated when records is nil). flipOdds is the N in the 1-in-N chance
// that a repeat poll re-rolls the record.
func NewSimulator(records map[string]model.StatusRecord, rng random.Rand, flipOdds int, log *logger.Logger) *Simulator {
	if records == nil {
		records = make(map[string]model.StatusRecord)
	}
	if flipOdds < 1 {
		flipOdds = 1
	}
	return &Simulator{
		records:  records,
		rng:      rng,
		flipOdds: flipOdds,
		now:      time.Now,
		log:      log,
	}
}

// GetStatus returns the simulated status for a flight number, creating a
// record on first sight and occasionally re-rolling it on repeat polls. The
// mutex serializes same-key read-modify-write so concurrent polls cannot
// lose a flip.
func (s *Simulator) GetStatus(flightNumber string) model.StatusRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, exists := s.records[flightNumber]
	if !exists {
		record = s.roll()
		s.records[flightNumber] = record
		s.log.Debug("Created status record", "flight_number", flightNumber, "status", record.Status)
		return record
	}

	if s.rng.Intn(s.flipOdds) == 0 {
		record = s.roll()
		s.records[flightNumber] = record
		s.log.Debug("Status record re-rolled", "flight_number", flightNumber, "status", record.Status)
	}

	return record
}

func (s *Simulator) roll() model.StatusRecord {
	return model.StatusRecord{
		Status:    random.Pick(s.rng, model.FlightStatuses),
		Gate:      s.randomGate(),
		UpdatedAt: s.now().UTC(),
	}
}

func (s *Simulator) randomGate() string {
	return fmt.Sprintf("%s%d", random.Pick(s.rng, gateLetters), random.Between(s.rng, minGateNumber, maxGateNumber))
}
