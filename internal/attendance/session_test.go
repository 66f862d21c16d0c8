package attendance

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"librarydesk/internal/console"
)

func TestNewSession_AssignsID(t *testing.T) {
	a, b := NewSession(), NewSession()

	_, err := uuid.Parse(a.ID)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestSession_CheckIn(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.CheckIn("  Asha ", "09:15 AM"))

	tests := []struct {
		name    string
		student string
		time    string
		wantErr error
	}{
		{"empty name", "   ", "09:15 AM", ErrEmptyName},
		{"duplicate name", "Asha", "09:20 AM", ErrDuplicateName},
		{"empty time", "Ravi", "  ", ErrEmptyTime},
		{"short time", "Ravi", "9:1", ErrTimeTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, s.CheckIn(tt.student, tt.time), tt.wantErr)
		})
	}

	require.NoError(t, s.CheckIn("asha", "9:15"))
	assert.Equal(t, []Record{{"Asha", "09:15 AM"}, {"asha", "9:15"}}, s.Records())
}

func TestSession_SetClassSize(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.CheckIn("Asha", "09:15 AM"))
	require.NoError(t, s.CheckIn("Ravi", "09:17 AM"))

	assert.ErrorIs(t, s.SetClassSize(0), ErrInvalidClassSize)
	assert.ErrorIs(t, s.SetClassSize(-3), ErrInvalidClassSize)
	assert.ErrorIs(t, s.SetClassSize(1), ErrClassSizeTooSmall)
	assert.False(t, s.Summary().HasClassSize)

	require.NoError(t, s.SetClassSize(2))
	assert.Equal(t, Summary{Present: 2, Absent: 0, ClassSize: 2, HasClassSize: true, Rate: 100}, s.Summary())
}

func TestSession_Summary(t *testing.T) {
	s := NewSession()
	assert.Equal(t, Summary{}, s.Summary())

	require.NoError(t, s.CheckIn("Asha", "09:15 AM"))
	require.NoError(t, s.CheckIn("Ravi", "09:17 AM"))
	require.NoError(t, s.CheckIn("Meena", "09:20 AM"))
	require.NoError(t, s.SetClassSize(4))

	sum := s.Summary()
	assert.Equal(t, 3, sum.Present)
	assert.Equal(t, 1, sum.Absent)
	assert.InDelta(t, 75.0, sum.Rate, 0.001)
}

func TestSession_WriteReport(t *testing.T) {
	now := time.Date(2025, time.March, 7, 14, 5, 9, 0, time.UTC)
	rule := strings.Repeat("=", 70)
	line := strings.Repeat("-", 50)

	s := NewSession()
	require.NoError(t, s.CheckIn("Asha", "09:15 AM"))
	require.NoError(t, s.CheckIn("Ravi", "09:17 AM"))

	t.Run("without class size", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, s.WriteReport(&buf, now))

		want := rule + "\n" +
			"            STUDENT ATTENDANCE RECORD\n" +
			rule + "\n\n" +
			"Report Generated: March 07, 2025 at 02:05:09 PM\n\n" +
			"Student Name                  Check-in Time       \n" +
			line + "\n" +
			"Asha                          09:15 AM            \n" +
			"Ravi                          09:17 AM            \n" +
			line + "\n" +
			"\nTotal Students Present: 2\n" +
			"\n" + rule + "\n" +
			"End of Report\n" +
			rule + "\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("with class size", func(t *testing.T) {
		require.NoError(t, s.SetClassSize(3))
		var buf bytes.Buffer
		require.NoError(t, s.WriteReport(&buf, now))

		assert.Contains(t, buf.String(), "Total Students Present: 2\nTotal Students Absent: 1\nAttendance Rate: 66.7%\n")
	})
}

func TestSession_SaveReport(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.CheckIn("Asha", "09:15 AM"))
	path := filepath.Join(t.TempDir(), "attendance_log.txt")

	require.NoError(t, os.WriteFile(path, []byte("old contents"), 0o644))
	require.NoError(t, s.SaveReport(path, time.Now()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "old contents")
	assert.Contains(t, string(data), "Asha")

	assert.Error(t, s.SaveReport(filepath.Join(t.TempDir(), "missing", "r.txt"), time.Now()))
}

func TestConsoleHandler_Run(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attendance_log.txt")
	input := strings.Join([]string{
		"zero", "0", "2",
		"", "Asha", "09:15 AM",
		"Asha", "Ravi", "9", "09:17 AM",
		"yes", "1", "3",
		"y",
	}, "\n") + "\n"

	var out bytes.Buffer
	s := NewSession()
	h := NewConsoleHandler(s, console.NewPrompter(strings.NewReader(input), &out), console.NewPrinter(&out), zap.NewNop(), path)
	h.Welcome()
	require.NoError(t, h.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "STUDENT ATTENDANCE TRACKING SYSTEM")
	assert.Contains(t, got, "Error: Please enter a valid number.")
	assert.Contains(t, got, "please enter a positive number")
	assert.Contains(t, got, "Error: name cannot be empty")
	assert.Contains(t, got, "Warning: name has already been recorded: Asha")
	assert.Contains(t, got, "Warning: time format seems invalid")
	assert.Contains(t, got, "class size cannot be less than present students (2)")
	assert.Contains(t, got, "Total Students Absent: 1")
	assert.Contains(t, got, "Attendance Rate: 66.7%")
	assert.Contains(t, got, "Attendance log saved successfully")
	assert.Contains(t, got, "Session completed successfully.")

	assert.Equal(t, []Record{{"Asha", "09:15 AM"}, {"Ravi", "09:17 AM"}}, s.Records())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Ravi                          09:17 AM")
}

func TestConsoleHandler_RunEndsOnClosedInput(t *testing.T) {
	var out bytes.Buffer
	s := NewSession()
	h := NewConsoleHandler(s, console.NewPrompter(strings.NewReader("3\nAsha\n"), &out), console.NewPrinter(&out), zap.NewNop(), filepath.Join(t.TempDir(), "r.txt"))

	assert.NoError(t, h.Run(context.Background()))
	assert.Empty(t, s.Records())
}
