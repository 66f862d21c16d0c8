package attendance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"librarydesk/internal/console"
)

var errNotPositive = errors.New("please enter a positive number")

// ConsoleHandler walks the user through a single attendance run.
type ConsoleHandler struct {
	session    *Session
	prompt     *console.Prompter
	out        *console.Printer
	logger     *zap.Logger
	reportPath string
	now        func() time.Time
}

func NewConsoleHandler(session *Session, prompt *console.Prompter, out *console.Printer, logger *zap.Logger, reportPath string) *ConsoleHandler {
	return &ConsoleHandler{
		session:    session,
		prompt:     prompt,
		out:        out,
		logger:     logger.With(zap.String("session_id", session.ID)),
		reportPath: reportPath,
		now:        time.Now,
	}
}

func (h *ConsoleHandler) Welcome() {
	h.out.Println()
	h.out.Rule("=", ruleWidth)
	h.out.Header("STUDENT ATTENDANCE TRACKING SYSTEM")
	h.out.Rule("=", ruleWidth)
	h.out.Println()
	h.out.Info("Welcome to the Attendance Tracker!")
	h.out.Println("This tool helps you efficiently record and manage student attendance.")
	h.out.Println("Features:")
	h.out.Println("  > Record student check-in times")
	h.out.Println("  > Validate entries to prevent errors")
	h.out.Println("  > Generate formatted attendance reports")
	h.out.Println("  > Calculate absentee statistics")
	h.out.Println("  > Export records to file")
}

// Run collects check-ins, optional absentee statistics and an optional report.
// Running out of input ends the session early without an error.
func (h *ConsoleHandler) Run(ctx context.Context) error {
	err := h.run(ctx)
	if errors.Is(err, console.ErrInputClosed) {
		h.logger.Info("input closed before the session finished")
		return nil
	}
	return err
}

func (h *ConsoleHandler) run(ctx context.Context) error {
	if err := h.Collect(ctx); err != nil {
		return err
	}

	calc, err := h.prompt.Confirm("Would you like to calculate absentee statistics? (yes/no): ")
	if err != nil {
		return err
	}
	if calc {
		if _, err := h.prompt.AskInt("Enter total number of students in the class: ", h.session.SetClassSize, h.out); err != nil {
			return err
		}
	}

	h.ShowSummary()

	save, err := h.prompt.Confirm("Would you like to save the attendance report to a file? (yes/no): ")
	if err != nil {
		return err
	}
	if save {
		if err := h.session.SaveReport(h.reportPath, h.now()); err != nil {
			h.logger.Error("saving report failed", zap.String("path", h.reportPath), zap.Error(err))
			h.out.Error("Error saving file: " + err.Error())
		} else {
			h.logger.Info("report saved", zap.String("path", h.reportPath))
			h.out.Success(fmt.Sprintf("Attendance log saved successfully to '%s'", h.reportPath))
		}
	}

	h.out.Println()
	h.out.Success("Thank you for using the Attendance Tracker!")
	h.out.Info("Session completed successfully.")
	return nil
}

// Collect asks how many students to record and reads a validated name and
// time for each, re-prompting on every rejected answer.
func (h *ConsoleHandler) Collect(ctx context.Context) error {
	positive := func(n int) error {
		if n <= 0 {
			return errNotPositive
		}
		return nil
	}
	count, err := h.prompt.AskInt("How many students do you want to record? ", positive, h.out)
	if err != nil {
		return err
	}

	h.out.Println()
	h.out.Header("--- Recording Attendance ---")
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		h.out.Printf("\nEntry %d of %d:\n", i+1, count)

		name, err := h.askValid("  Enter student name: ", h.session.ValidateName)
		if err != nil {
			return err
		}
		t, err := h.askValid("  Enter check-in time (e.g., 09:15 AM): ", ValidateTime)
		if err != nil {
			return err
		}
		if err := h.session.CheckIn(name, t); err != nil {
			return err
		}
		h.logger.Debug("checked in", zap.String("name", name), zap.String("time", t))
		h.out.Success("  Recorded successfully!")
	}
	return nil
}

func (h *ConsoleHandler) askValid(prompt string, valid func(string) error) (string, error) {
	for {
		answer, err := h.prompt.Ask(prompt)
		if err != nil {
			return "", err
		}
		if err := valid(answer); err != nil {
			if errors.Is(err, ErrDuplicateName) || errors.Is(err, ErrTimeTooShort) {
				h.out.Warn("  Warning: " + err.Error())
			} else {
				h.out.Error("  Error: " + err.Error())
			}
			h.out.Info("  Please try again.")
			continue
		}
		return answer, nil
	}
}

// ShowSummary prints the on-screen summary table. The rate is only shown when
// someone is absent.
func (h *ConsoleHandler) ShowSummary() {
	rule := strings.Repeat("=", ruleWidth)
	line := strings.Repeat("-", tableWidth)

	h.out.Println()
	h.out.Header(rule)
	h.out.Header("                    ATTENDANCE SUMMARY REPORT")
	h.out.Header(rule)
	h.out.Println()
	h.out.Printf("%-30s%-20s\n", "Student Name", "Check-in Time")
	h.out.Println(line)
	for _, r := range h.session.Records() {
		h.out.Printf("%-30s%-20s\n", r.Name, r.Time)
	}
	h.out.Println(line)

	sum := h.session.Summary()
	h.out.Println()
	h.out.Info(fmt.Sprintf("Total Students Present: %d", sum.Present))
	if sum.HasClassSize {
		h.out.Warn(fmt.Sprintf("Total Students Absent: %d", sum.Absent))
		if sum.Absent > 0 {
			h.out.Info(fmt.Sprintf("Attendance Rate: %.1f%%", sum.Rate))
		}
	}
	h.out.Println()
	h.out.Header(rule)
}
