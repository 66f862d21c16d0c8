package circulation

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"librarydesk/internal/console"
)

func runConsole(t *testing.T, repo Repository, input ...string) (*Store, string) {
	t.Helper()
	store := NewStore(repo)
	var out bytes.Buffer
	h := NewConsoleHandler(
		store,
		console.NewPrompter(strings.NewReader(strings.Join(input, "\n")+"\n"), &out),
		console.NewPrinter(&out),
		zap.NewNop(),
	)
	h.Welcome()
	require.NoError(t, h.Run(context.Background()))
	return store, out.String()
}

func TestConsoleHandler_FullSession(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileRepo(filepath.Join(dir, "books.json"), filepath.Join(dir, "members.json"))

	store, out := runConsole(t, repo,
		"1", "Dune", "Herbert", "111",
		"1", "Other", "Someone", "111",
		"2", "Alice", "M1",
		"2", "Bob", "M1",
		"3", "M1", "111",
		"3", "M1", "111",
		"5",
		"4", "M1", "111",
		"6",
		"7",
		"9",
		"8",
	)

	assert.Contains(t, out, "Welcome to the Library Inventory System")
	assert.Contains(t, out, "1. Add Book")
	assert.Contains(t, out, "8. Exit")
	assert.Contains(t, out, "Book added successfully.")
	assert.Contains(t, out, "A book with that ISBN already exists.")
	assert.Contains(t, out, "Member registered successfully.")
	assert.Contains(t, out, "Member ID already exists.")
	assert.Contains(t, out, "Book 'Dune' lent to Alice.")
	assert.Contains(t, out, "Book is currently not available.")
	assert.Contains(t, out, "Books currently borrowed: 1")
	assert.Contains(t, out, "Book 'Dune' successfully returned by Alice.")
	assert.Contains(t, out, " - Dune by Herbert (ISBN: 111) - Available (borrowed 1 times)")
	assert.Contains(t, out, " - Alice (ID: M1) - Borrowed: 0")
	assert.Contains(t, out, "Invalid choice. Please enter a number between 1 and 8.")
	assert.Contains(t, out, "Saving data and exiting...")

	fresh := NewStore(repo)
	require.NoError(t, fresh.Load(context.Background()))
	assert.Equal(t, store.Books(), fresh.Books())
	assert.Equal(t, store.Members(), fresh.Members())
}

func TestConsoleHandler_EndOfInputSaves(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileRepo(filepath.Join(dir, "books.json"), filepath.Join(dir, "members.json"))

	_, out := runConsole(t, repo, "2", "Alice")

	assert.NotContains(t, out, "Member registered successfully.")

	fresh := NewStore(repo)
	require.NoError(t, fresh.Load(context.Background()))
	assert.Empty(t, fresh.Members())
}

func TestConsoleHandler_ReturnUnknownMember(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileRepo(filepath.Join(dir, "books.json"), filepath.Join(dir, "members.json"))

	_, out := runConsole(t, repo, "4", "ghost", "111", "8")

	assert.Contains(t, out, "Member not found.")
}

func TestConsoleHandler_OversizedInputKeepsMenuRunning(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileRepo(filepath.Join(dir, "books.json"), filepath.Join(dir, "members.json"))

	store, out := runConsole(t, repo,
		strings.Repeat("x", 70000),
		strings.Repeat("y", 2<<20),
		"1", "Dune", "Herbert", "111",
		"8",
	)

	assert.Contains(t, out, "Invalid choice. Please enter a number between 1 and 8.")
	assert.Contains(t, out, "Input too long, please try again.")
	assert.Len(t, store.Books(), 1)

	fresh := NewStore(repo)
	require.NoError(t, fresh.Load(context.Background()))
	assert.Len(t, fresh.Books(), 1)
}
