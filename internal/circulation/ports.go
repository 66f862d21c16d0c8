package circulation

import (
	"context"
	"errors"

	"librarydesk/internal/book"
	"librarydesk/internal/member"
)

//go:generate mockgen -source=ports.go -destination=mock_repository_test.go -package=circulation

// ErrMalformedSnapshot is returned when a persisted collection cannot be decoded
// into valid records. The affected collection is left empty.
var ErrMalformedSnapshot = errors.New("malformed snapshot")

// Repository persists the two circulation collections independently.
// Load methods return an empty slice when nothing has been saved yet.
type Repository interface {
	LoadBooks(ctx context.Context) ([]book.Book, error)
	LoadMembers(ctx context.Context) ([]member.Member, error)
	SaveBooks(ctx context.Context, books []book.Book) error
	SaveMembers(ctx context.Context, members []member.Member) error
}
