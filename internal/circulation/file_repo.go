package circulation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"librarydesk/internal/book"
	"librarydesk/internal/member"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary
	validate = validator.New()
)

const snapshotPerm = 0o644

// bookRecord is the on-disk shape of a book. Pointers tell a missing field
// apart from a zero value so defaults apply only to absent optional fields.
type bookRecord struct {
	Title       *string `json:"title" validate:"required"`
	Author      *string `json:"author" validate:"required"`
	ISBN        *string `json:"isbn" validate:"required"`
	Available   *bool   `json:"available"`
	BorrowCount *int    `json:"borrow_count" validate:"omitempty,gte=0"`
}

func (r bookRecord) toBook() book.Book {
	b := book.Book{
		Title:     *r.Title,
		Author:    *r.Author,
		ISBN:      *r.ISBN,
		Available: true,
	}
	if r.Available != nil {
		b.Available = *r.Available
	}
	if r.BorrowCount != nil {
		b.BorrowCount = *r.BorrowCount
	}
	return b
}

type memberRecord struct {
	Name          *string  `json:"name" validate:"required"`
	MemberID      *string  `json:"member_id" validate:"required"`
	BorrowedBooks []string `json:"borrowed_books"`
}

func (r memberRecord) toMember() member.Member {
	m := member.New(*r.Name, *r.MemberID)
	for _, isbn := range r.BorrowedBooks {
		m.Borrow(isbn)
	}
	return m
}

// FileRepo keeps each collection in its own JSON document.
type FileRepo struct {
	booksPath   string
	membersPath string
}

func NewFileRepo(booksPath, membersPath string) *FileRepo {
	return &FileRepo{booksPath: booksPath, membersPath: membersPath}
}

func (r *FileRepo) LoadBooks(_ context.Context) ([]book.Book, error) {
	var records []bookRecord
	found, err := readSnapshot(r.booksPath, &records)
	if err != nil || !found {
		return []book.Book{}, err
	}

	books := make([]book.Book, 0, len(records))
	for i, rec := range records {
		if err := validate.Struct(rec); err != nil {
			return []book.Book{}, fmt.Errorf("%w: %s: book #%d: %v", ErrMalformedSnapshot, r.booksPath, i+1, err)
		}
		books = append(books, rec.toBook())
	}
	return books, nil
}

func (r *FileRepo) LoadMembers(_ context.Context) ([]member.Member, error) {
	var records []memberRecord
	found, err := readSnapshot(r.membersPath, &records)
	if err != nil || !found {
		return []member.Member{}, err
	}

	members := make([]member.Member, 0, len(records))
	for i, rec := range records {
		if err := validate.Struct(rec); err != nil {
			return []member.Member{}, fmt.Errorf("%w: %s: member #%d: %v", ErrMalformedSnapshot, r.membersPath, i+1, err)
		}
		members = append(members, rec.toMember())
	}
	return members, nil
}

func (r *FileRepo) SaveBooks(_ context.Context, books []book.Book) error {
	if books == nil {
		books = []book.Book{}
	}
	return writeSnapshot(r.booksPath, books)
}

func (r *FileRepo) SaveMembers(_ context.Context, members []member.Member) error {
	out := make([]member.Member, 0, len(members))
	for _, m := range members {
		m = m.Clone()
		if m.BorrowedBooks == nil {
			m.BorrowedBooks = []string{}
		}
		out = append(out, m)
	}
	return writeSnapshot(r.membersPath, out)
}

// readSnapshot decodes path into dst. found is false when the file does not exist.
func readSnapshot(path string, dst any) (found bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrMalformedSnapshot, path, err)
	}
	return true, nil
}

// writeSnapshot writes v as indented JSON through a temp file and rename so a
// failed write never truncates the previous snapshot.
func writeSnapshot(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	// CreateTemp opens with 0600; snapshots stay readable like any other data file.
	if err := tmp.Chmod(snapshotPerm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
