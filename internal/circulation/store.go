package circulation

import (
	"context"
	"errors"
	"fmt"

	"librarydesk/internal/book"
	"librarydesk/internal/member"
)

// Store owns the book and member collections and enforces the lend/return
// rules. Books and members only know each other by key.
type Store struct {
	repo Repository

	books     map[string]*book.Book
	bookOrder []string

	members     map[string]*member.Member
	memberOrder []string
}

// NewStore creates an empty store persisting through repo.
func NewStore(repo Repository) *Store {
	return &Store{
		repo:    repo,
		books:   make(map[string]*book.Book),
		members: make(map[string]*member.Member),
	}
}

// AddBook inserts an available, never-borrowed book.
func (s *Store) AddBook(title, author, isbn string) error {
	if _, ok := s.books[isbn]; ok {
		return book.ErrAlreadyExists
	}
	b := book.New(title, author, isbn)
	s.books[isbn] = &b
	s.bookOrder = append(s.bookOrder, isbn)
	return nil
}

// RegisterMember inserts a member with nothing borrowed.
func (s *Store) RegisterMember(name, memberID string) error {
	if _, ok := s.members[memberID]; ok {
		return member.ErrAlreadyExists
	}
	m := member.New(name, memberID)
	s.members[memberID] = &m
	s.memberOrder = append(s.memberOrder, memberID)
	return nil
}

// FindBook returns a copy of the book stored under isbn.
func (s *Store) FindBook(isbn string) (book.Book, bool) {
	b, ok := s.books[isbn]
	if !ok {
		return book.Book{}, false
	}
	return *b, true
}

// FindMember returns a copy of the member stored under memberID.
func (s *Store) FindMember(memberID string) (member.Member, bool) {
	m, ok := s.members[memberID]
	if !ok {
		return member.Member{}, false
	}
	return m.Clone(), true
}

// LendBook hands isbn to memberID and persists both collections. The error is
// only set when persisting fails; the loan itself stands in that case.
func (s *Store) LendBook(ctx context.Context, memberID, isbn string) (LendResult, error) {
	m, ok := s.members[memberID]
	if !ok {
		return LendResult{Outcome: LendMemberNotFound}, nil
	}
	b, ok := s.books[isbn]
	if !ok {
		return LendResult{Outcome: LendBookNotFound, MemberName: m.Name}, nil
	}

	res := LendResult{Title: b.Title, MemberName: m.Name}
	if !b.Borrow() {
		res.Outcome = LendUnavailable
		return res, nil
	}
	m.Borrow(isbn)
	res.Outcome = Lent

	return res, s.Save(ctx)
}

// TakeReturn clears isbn from memberID's record and marks the book available.
// A book that was already available is still reported as a recorded return,
// under its own outcome.
func (s *Store) TakeReturn(ctx context.Context, memberID, isbn string) (ReturnResult, error) {
	m, ok := s.members[memberID]
	if !ok {
		return ReturnResult{Outcome: ReturnMemberNotFound}, nil
	}
	b, ok := s.books[isbn]
	if !ok {
		return ReturnResult{Outcome: ReturnBookNotFound, MemberName: m.Name}, nil
	}

	res := ReturnResult{Title: b.Title, MemberName: m.Name}
	if !m.Return(isbn) {
		res.Outcome = ReturnNotOnRecord
		return res, nil
	}
	if b.Return() {
		res.Outcome = Returned
	} else {
		res.Outcome = ReturnAlreadyAvailable
	}

	return res, s.Save(ctx)
}

// MostBorrowedBook returns the book with the highest borrow count. Ties go to
// the book added first.
func (s *Store) MostBorrowedBook() (book.Book, bool) {
	var best *book.Book
	for _, isbn := range s.bookOrder {
		b := s.books[isbn]
		if best == nil || b.BorrowCount > best.BorrowCount {
			best = b
		}
	}
	if best == nil {
		return book.Book{}, false
	}
	return *best, true
}

// TotalActiveMembers counts members holding at least one book.
func (s *Store) TotalActiveMembers() int {
	n := 0
	for _, m := range s.members {
		if m.Active() {
			n++
		}
	}
	return n
}

// BooksCurrentlyBorrowed counts books that are out.
func (s *Store) BooksCurrentlyBorrowed() int {
	n := 0
	for _, b := range s.books {
		if !b.Available {
			n++
		}
	}
	return n
}

// Books returns copies of every book in insertion order.
func (s *Store) Books() []book.Book {
	out := make([]book.Book, 0, len(s.bookOrder))
	for _, isbn := range s.bookOrder {
		out = append(out, *s.books[isbn])
	}
	return out
}

// Members returns copies of every member in registration order.
func (s *Store) Members() []member.Member {
	out := make([]member.Member, 0, len(s.memberOrder))
	for _, id := range s.memberOrder {
		out = append(out, s.members[id].Clone())
	}
	return out
}

// Save persists books and members separately. A failure on one collection
// does not stop the other from being written; all failures are returned.
func (s *Store) Save(ctx context.Context) error {
	var errs []error
	if err := s.repo.SaveBooks(ctx, s.Books()); err != nil {
		errs = append(errs, fmt.Errorf("save books: %w", err))
	}
	if err := s.repo.SaveMembers(ctx, s.Members()); err != nil {
		errs = append(errs, fmt.Errorf("save members: %w", err))
	}
	return errors.Join(errs...)
}

// Load replaces both collections with what the repository holds. A collection
// that fails to load is left empty; the other one is still loaded.
func (s *Store) Load(ctx context.Context) error {
	var errs []error

	books, err := s.repo.LoadBooks(ctx)
	if err == nil {
		err = s.setBooks(books)
	}
	if err != nil {
		_ = s.setBooks(nil)
		errs = append(errs, fmt.Errorf("load books: %w", err))
	}

	members, err := s.repo.LoadMembers(ctx)
	if err == nil {
		err = s.setMembers(members)
	}
	if err != nil {
		_ = s.setMembers(nil)
		errs = append(errs, fmt.Errorf("load members: %w", err))
	}

	return errors.Join(errs...)
}

func (s *Store) setBooks(books []book.Book) error {
	s.books = make(map[string]*book.Book, len(books))
	s.bookOrder = make([]string, 0, len(books))
	for i := range books {
		b := books[i]
		if _, dup := s.books[b.ISBN]; dup {
			return fmt.Errorf("%w: duplicate isbn %q", ErrMalformedSnapshot, b.ISBN)
		}
		s.books[b.ISBN] = &b
		s.bookOrder = append(s.bookOrder, b.ISBN)
	}
	return nil
}

func (s *Store) setMembers(members []member.Member) error {
	s.members = make(map[string]*member.Member, len(members))
	s.memberOrder = make([]string, 0, len(members))
	for i := range members {
		m := members[i].Clone()
		if _, dup := s.members[m.MemberID]; dup {
			return fmt.Errorf("%w: duplicate member_id %q", ErrMalformedSnapshot, m.MemberID)
		}
		s.members[m.MemberID] = &m
		s.memberOrder = append(s.memberOrder, m.MemberID)
	}
	return nil
}
