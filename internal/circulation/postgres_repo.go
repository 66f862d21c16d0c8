package circulation

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"librarydesk/internal/book"
	"librarydesk/internal/member"
)

// PostgresRepo stores each collection as a table snapshot. Saving a
// collection replaces its table in one transaction; the two tables are never
// written in the same transaction.
type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) LoadBooks(ctx context.Context) ([]book.Book, error) {
	const query = `
		SELECT title, author, isbn, available, borrow_count
		FROM books
		ORDER BY position ASC
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return []book.Book{}, err
	}
	defer rows.Close()

	out := []book.Book{}
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(&b.Title, &b.Author, &b.ISBN, &b.Available, &b.BorrowCount); err != nil {
			return []book.Book{}, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) LoadMembers(ctx context.Context) ([]member.Member, error) {
	const query = `
		SELECT name, member_id, borrowed_books
		FROM members
		ORDER BY position ASC
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return []member.Member{}, err
	}
	defer rows.Close()

	out := []member.Member{}
	for rows.Next() {
		var (
			name, id string
			isbns    []string
		)
		if err := rows.Scan(&name, &id, &isbns); err != nil {
			return []member.Member{}, err
		}
		m := member.New(name, id)
		for _, isbn := range isbns {
			m.Borrow(isbn)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) SaveBooks(ctx context.Context, books []book.Book) error {
	rows := make([][]any, 0, len(books))
	for i, b := range books {
		rows = append(rows, []any{i, b.Title, b.Author, b.ISBN, b.Available, b.BorrowCount})
	}
	return r.replace(ctx, "books", []string{"position", "title", "author", "isbn", "available", "borrow_count"}, rows)
}

func (r *PostgresRepo) SaveMembers(ctx context.Context, members []member.Member) error {
	rows := make([][]any, 0, len(members))
	for i, m := range members {
		rows = append(rows, []any{i, m.Name, m.MemberID, m.Books()})
	}
	return r.replace(ctx, "members", []string{"position", "name", "member_id", "borrowed_books"}, rows)
}

func (r *PostgresRepo) replace(ctx context.Context, table string, columns []string, rows [][]any) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(timeoutCtx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(timeoutCtx) }()

	if _, err := tx.Exec(timeoutCtx, "DELETE FROM "+pgx.Identifier{table}.Sanitize()); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}
	if len(rows) > 0 {
		if _, err := tx.CopyFrom(timeoutCtx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows)); err != nil {
			return fmt.Errorf("copy %s: %w", table, err)
		}
	}
	return tx.Commit(timeoutCtx)
}
