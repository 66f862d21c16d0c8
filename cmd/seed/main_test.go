package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"librarydesk/internal/circulation"
)

func TestSeed_RespectsLendRules(t *testing.T) {
	dir := t.TempDir()
	repo := circulation.NewFileRepo(filepath.Join(dir, "books.json"), filepath.Join(dir, "members.json"))
	store := circulation.NewStore(repo)

	res, err := seed(context.Background(), store, seedOptions{Books: 5, Members: 3, Loans: 20, Seed: 42}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 5, res.books)
	assert.Equal(t, 3, res.members)
	assert.LessOrEqual(t, res.loans, 5, "a book can only be out once")
	assert.Equal(t, res.loans, store.BooksCurrentlyBorrowed())

	held := 0
	for _, m := range store.Members() {
		held += len(m.BorrowedBooks)
	}
	assert.Equal(t, res.loans, held)
}

func TestSeed_SkipsExistingKeys(t *testing.T) {
	dir := t.TempDir()
	store := circulation.NewStore(circulation.NewFileRepo(filepath.Join(dir, "b.json"), filepath.Join(dir, "m.json")))
	require.NoError(t, store.AddBook("Kept", "Someone", "978-00000001"))

	res, err := seed(context.Background(), store, seedOptions{Books: 2, Seed: 1}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 1, res.books)
	b, ok := store.FindBook("978-00000001")
	require.True(t, ok)
	assert.Equal(t, "Kept", b.Title)
}

func TestBatchRepo_HoldsSaves(t *testing.T) {
	dir := t.TempDir()
	booksPath := filepath.Join(dir, "books.json")
	batch := &batchRepo{Repository: circulation.NewFileRepo(booksPath, filepath.Join(dir, "members.json")), hold: true}
	store := circulation.NewStore(batch)
	ctx := context.Background()

	require.NoError(t, store.AddBook("Dune", "Herbert", "111"))
	require.NoError(t, store.Save(ctx))
	assert.NoFileExists(t, booksPath)

	batch.hold = false
	require.NoError(t, store.Save(ctx))
	assert.FileExists(t, booksPath)
}
