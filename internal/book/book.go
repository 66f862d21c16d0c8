package book

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyExists is returned when a book with the same ISBN is already stored.
	ErrAlreadyExists = errors.New("a book with that ISBN already exists")
)

// Book represents a circulating copy keyed by ISBN.
type Book struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn"`
	Available   bool   `json:"available"`
	BorrowCount int    `json:"borrow_count"`
}

// New returns an available book that has never been borrowed.
func New(title, author, isbn string) Book {
	return Book{
		Title:     title,
		Author:    author,
		ISBN:      isbn,
		Available: true,
	}
}

// Borrow moves the book from Available to Borrowed and counts the loan.
// It reports false and changes nothing when the book is already out.
func (b *Book) Borrow() bool {
	if !b.Available {
		return false
	}
	b.Available = false
	b.BorrowCount++
	return true
}

// Return moves the book back to Available. BorrowCount is never touched.
func (b *Book) Return() bool {
	if b.Available {
		return false
	}
	b.Available = true
	return true
}

// Status is the human label for the availability flag.
func (b Book) Status() string {
	if b.Available {
		return "Available"
	}
	return "Borrowed"
}

func (b Book) String() string {
	return fmt.Sprintf("%s by %s (ISBN: %s) - %s (borrowed %d times)", b.Title, b.Author, b.ISBN, b.Status(), b.BorrowCount)
}
