package member

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrAlreadyExists is returned when the member id is already registered.
	ErrAlreadyExists = errors.New("member ID already exists")
)

// Member is a registered borrower. BorrowedBooks holds ISBNs in borrow order, without duplicates.
type Member struct {
	Name          string   `json:"name"`
	MemberID      string   `json:"member_id"`
	BorrowedBooks []string `json:"borrowed_books"`
}

func New(name, memberID string) Member {
	return Member{Name: name, MemberID: memberID, BorrowedBooks: []string{}}
}

// Borrow records isbn on the member. Recording the same ISBN twice is a no-op.
func (m *Member) Borrow(isbn string) {
	if slices.Contains(m.BorrowedBooks, isbn) {
		return
	}
	m.BorrowedBooks = append(m.BorrowedBooks, isbn)
}

// Return removes isbn and reports whether it was on record.
func (m *Member) Return(isbn string) bool {
	i := slices.Index(m.BorrowedBooks, isbn)
	if i < 0 {
		return false
	}
	m.BorrowedBooks = slices.Delete(m.BorrowedBooks, i, i+1)
	return true
}

// Has reports whether isbn is currently borrowed by the member.
func (m Member) Has(isbn string) bool {
	return slices.Contains(m.BorrowedBooks, isbn)
}

// Books returns a copy of the borrowed ISBNs.
func (m Member) Books() []string {
	out := make([]string, len(m.BorrowedBooks))
	copy(out, m.BorrowedBooks)
	return out
}

// Active reports whether the member holds at least one unreturned book.
func (m Member) Active() bool {
	return len(m.BorrowedBooks) > 0
}

// Clone returns a deep copy so callers cannot mutate the store's slice.
func (m Member) Clone() Member {
	m.BorrowedBooks = m.Books()
	return m
}

func (m Member) String() string {
	return fmt.Sprintf("%s (ID: %s) - Borrowed: %d", m.Name, m.MemberID, len(m.BorrowedBooks))
}
