// Package attendance records one run of student check-ins and summarizes it.
package attendance

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName         = errors.New("name cannot be empty")
	ErrDuplicateName     = errors.New("name has already been recorded")
	ErrEmptyTime         = errors.New("time cannot be empty")
	ErrTimeTooShort      = errors.New("time format seems invalid, use a format like '09:15 AM'")
	ErrInvalidClassSize  = errors.New("class size must be a positive number")
	ErrClassSizeTooSmall = errors.New("class size cannot be less than present students")
)

// minTimeLen is the shortest check-in string accepted ("9:15").
const minTimeLen = 4

// Record is one student's check-in.
type Record struct {
	Name string
	Time string
}

// Session holds the check-ins of a single run. Nothing carries over between
// sessions.
type Session struct {
	ID string

	records   []Record
	names     map[string]struct{}
	classSize int
}

func NewSession() *Session {
	return &Session{
		ID:    uuid.NewString(),
		names: make(map[string]struct{}),
	}
}

// ValidateName checks a name against the session without recording it.
func (s *Session) ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if _, ok := s.names[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	return nil
}

// ValidateTime checks the free-form check-in time.
func ValidateTime(t string) error {
	t = strings.TrimSpace(t)
	if t == "" {
		return ErrEmptyTime
	}
	if len(t) < minTimeLen {
		return ErrTimeTooShort
	}
	return nil
}

// CheckIn records name at t. Names are compared exactly after trimming.
func (s *Session) CheckIn(name, t string) error {
	if err := s.ValidateName(name); err != nil {
		return err
	}
	if err := ValidateTime(t); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	s.names[name] = struct{}{}
	s.records = append(s.records, Record{Name: name, Time: strings.TrimSpace(t)})
	return nil
}

// SetClassSize declares how many students the class has, enabling absentee
// statistics.
func (s *Session) SetClassSize(total int) error {
	if total <= 0 {
		return ErrInvalidClassSize
	}
	if total < len(s.records) {
		return fmt.Errorf("%w (%d)", ErrClassSizeTooSmall, len(s.records))
	}
	s.classSize = total
	return nil
}

// Records returns the check-ins in the order they were taken.
func (s *Session) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Summary is the presence/absence statistic of a session.
type Summary struct {
	Present      int
	Absent       int
	ClassSize    int
	HasClassSize bool
	Rate         float64
}

func (s *Session) Summary() Summary {
	sum := Summary{Present: len(s.records)}
	if s.classSize > 0 {
		sum.HasClassSize = true
		sum.ClassSize = s.classSize
		sum.Absent = s.classSize - sum.Present
		sum.Rate = float64(sum.Present) / float64(s.classSize) * 100
	}
	return sum
}
