package contact

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"librarydesk/internal/console"
	"librarydesk/internal/logging"
)

func TestConsoleHandler_Session(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "error_log.txt")
	oplog, err := logging.OpenOperationLog(logPath)
	require.NoError(t, err)

	d := NewDirectory(filepath.Join(dir, "contacts.csv"), oplog.Logger)
	jsonPath := filepath.Join(dir, "contacts.json")

	input := strings.Join([]string{
		"2",
		"1", "Alice Smith", "555-0100", "alice@example.com", "y",
		"Bob Jones", "555-0101", "bob@example.com", "n",
		"1", "Carol", "", "carol@example.com",
		"2",
		"3", "smith",
		"4", "bob jones", "555-7777",
		"4", "nobody",
		"5", "Alice Smith", "n",
		"6",
		"7",
		"5", "Alice Smith", "y",
		"0",
		"8",
	}, "\n") + "\n"

	var out bytes.Buffer
	h := NewConsoleHandler(d, jsonPath, console.NewPrompter(strings.NewReader(input), &out), console.NewPrinter(&out), zap.NewNop())
	h.Welcome()
	require.NoError(t, h.Run(context.Background()))
	require.NoError(t, oplog.Close())

	got := out.String()
	assert.Contains(t, got, "Welcome to Contact Book Management System!")
	assert.Contains(t, got, "ERROR: no contacts file found, please add contacts first")
	assert.Contains(t, got, "SUCCESS: Contact 'Alice Smith' added successfully!")
	assert.Contains(t, got, "SUCCESS: Contact 'Bob Jones' added successfully!")
	assert.Contains(t, got, "ERROR: all fields (Name, Phone, Email) are required")
	assert.Contains(t, got, "Total Contacts: 2")
	assert.Contains(t, got, "Name:  Alice Smith")
	assert.Contains(t, got, "Current Phone: 555-0101")
	assert.Contains(t, got, "SUCCESS: Contact 'bob jones' updated successfully!")
	assert.Contains(t, got, "No contact found with name 'nobody'")
	assert.Contains(t, got, "Deletion cancelled.")
	assert.Contains(t, got, "SUCCESS: 2 contacts exported to")
	assert.Contains(t, got, "CONTACTS FROM JSON")
	assert.Contains(t, got, "SUCCESS: Contact 'Alice Smith' deleted successfully!")
	assert.Contains(t, got, "Invalid choice! Please enter a number between 1-8.")
	assert.Contains(t, got, "Thank you for using Contact Book Management System!")

	remaining, err := d.List()
	require.NoError(t, err)
	assert.Equal(t, []Contact{{Name: "Bob Jones", Phone: "555-7777", Email: "bob@example.com"}}, remaining)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	line := regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] \[(INFO|ERROR)\] .+$`)
	for _, l := range lines {
		assert.Regexp(t, line, l)
	}
	assert.Contains(t, string(data), "[INFO] Contact 'Alice Smith' added successfully")
	assert.Contains(t, string(data), "[ERROR] Error adding contact: all fields (Name, Phone, Email) are required")
	assert.Contains(t, string(data), "[INFO] Exported 2 contacts to JSON")
	assert.Contains(t, string(data), "[INFO] Contact 'Alice Smith' deleted")
}

func TestConsoleHandler_EndOfInput(t *testing.T) {
	d, _, _ := newDirectory(t)
	var out bytes.Buffer
	h := NewConsoleHandler(d, filepath.Join(t.TempDir(), "c.json"), console.NewPrompter(strings.NewReader("1\nAlice\n"), &out), console.NewPrinter(&out), zap.NewNop())

	assert.NoError(t, h.Run(context.Background()))
	assert.NotContains(t, out.String(), "added successfully")
}
