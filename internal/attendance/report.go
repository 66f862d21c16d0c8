package attendance

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

const (
	ruleWidth   = 70
	tableWidth  = 50
	generatedAt = "January 02, 2006 at 03:04:05 PM"
)

// WriteReport renders the fixed-layout attendance record stamped with now.
func (s *Session) WriteReport(w io.Writer, now time.Time) error {
	bw := bufio.NewWriter(w)
	rule := strings.Repeat("=", ruleWidth)
	line := strings.Repeat("-", tableWidth)

	fmt.Fprintln(bw, rule)
	fmt.Fprintln(bw, "            STUDENT ATTENDANCE RECORD")
	fmt.Fprintln(bw, rule)
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "Report Generated: %s\n\n", now.Format(generatedAt))

	fmt.Fprintf(bw, "%-30s%-20s\n", "Student Name", "Check-in Time")
	fmt.Fprintln(bw, line)
	for _, r := range s.records {
		fmt.Fprintf(bw, "%-30s%-20s\n", r.Name, r.Time)
	}
	fmt.Fprintln(bw, line)

	sum := s.Summary()
	fmt.Fprintf(bw, "\nTotal Students Present: %d\n", sum.Present)
	if sum.HasClassSize {
		fmt.Fprintf(bw, "Total Students Absent: %d\n", sum.Absent)
		fmt.Fprintf(bw, "Attendance Rate: %.1f%%\n", sum.Rate)
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, rule)
	fmt.Fprintln(bw, "End of Report")
	fmt.Fprintln(bw, rule)
	return bw.Flush()
}

// SaveReport writes the report to path, replacing any previous one.
func (s *Session) SaveReport(path string, now time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := s.WriteReport(f, now); err != nil {
		_ = f.Close()
		return fmt.Errorf("write report: %w", err)
	}
	return f.Close()
}
