package circulation

import (
	"fmt"
	"strings"

	"librarydesk/internal/book"
)

// Report is a point-in-time summary of the store.
type Report struct {
	TotalBooks      int
	TotalMembers    int
	ActiveMembers   int
	BorrowedBooks   int
	MostBorrowed    book.Book
	HasMostBorrowed bool
}

// Report computes the summary shown by the "View Library Report" option.
func (s *Store) Report() Report {
	most, ok := s.MostBorrowedBook()
	return Report{
		TotalBooks:      len(s.books),
		TotalMembers:    len(s.members),
		ActiveMembers:   s.TotalActiveMembers(),
		BorrowedBooks:   s.BooksCurrentlyBorrowed(),
		MostBorrowed:    most,
		HasMostBorrowed: ok,
	}
}

func (r Report) String() string {
	most := "No books yet."
	if r.HasMostBorrowed {
		most = fmt.Sprintf("'%s' (ISBN: %s) borrowed %d times.", r.MostBorrowed.Title, r.MostBorrowed.ISBN, r.MostBorrowed.BorrowCount)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Total books: %d\n", r.TotalBooks)
	fmt.Fprintf(&sb, "Total members: %d\n", r.TotalMembers)
	fmt.Fprintf(&sb, "Active members (with at least one borrowed book): %d\n", r.ActiveMembers)
	fmt.Fprintf(&sb, "Books currently borrowed: %d\n", r.BorrowedBooks)
	fmt.Fprintf(&sb, "Most borrowed book: %s", most)
	return sb.String()
}
