// Package console holds the line-oriented input and styled output shared by
// the interactive menus.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrInputClosed is returned once the input stream is exhausted.
var ErrInputClosed = errors.New("input closed")

// errLineTooLong marks an answer longer than maxLineLen. The rest of the line
// is discarded and the prompt is repeated.
var errLineTooLong = errors.New("input line too long")

const maxLineLen = 1 << 20

// Prompter reads one trimmed line of input per prompt.
type Prompter struct {
	in    *bufio.Reader
	out   io.Writer
	style lipgloss.Style
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	r := lipgloss.NewRenderer(out)
	return &Prompter{
		in:    bufio.NewReaderSize(in, 64*1024),
		out:   out,
		style: r.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

// Ask writes prompt and returns the next line with surrounding spaces removed.
// An oversized line is rejected and the prompt is shown again.
func (p *Prompter) Ask(prompt string) (string, error) {
	for {
		fmt.Fprint(p.out, p.style.Render(prompt))
		line, err := p.readLine()
		if errors.Is(err, errLineTooLong) {
			fmt.Fprintln(p.out, p.style.Render("Input too long, please try again."))
			continue
		}
		return line, err
	}
}

func (p *Prompter) readLine() (string, error) {
	var (
		line    []byte
		tooLong bool
	)
	for {
		chunk, more, err := p.in.ReadLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return "", err
			}
			if len(line) == 0 && !tooLong {
				return "", ErrInputClosed
			}
			break
		}
		if !tooLong {
			line = append(line, chunk...)
			if len(line) > maxLineLen {
				tooLong, line = true, nil
			}
		}
		if !more {
			break
		}
	}
	if tooLong {
		return "", errLineTooLong
	}
	return strings.TrimSpace(string(line)), nil
}

// Confirm asks a yes/no question; "y" and "yes" (any case) mean yes.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	answer, err := p.Ask(prompt)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// AskInt re-prompts until the answer parses as an integer accepted by valid.
// Each rejected answer is reported through printer.
func (p *Prompter) AskInt(prompt string, valid func(int) error, printer *Printer) (int, error) {
	for {
		answer, err := p.Ask(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err != nil {
			printer.Error("Error: Please enter a valid number.")
			continue
		}
		if valid != nil {
			if err := valid(n); err != nil {
				printer.Warn(err.Error())
				continue
			}
		}
		return n, nil
	}
}

// Printer writes styled lines. Styles degrade to plain text when out is not a
// color terminal.
type Printer struct {
	out     io.Writer
	header  lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	warning lipgloss.Style
	info    lipgloss.Style
}

func NewPrinter(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out:     out,
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		success: r.NewStyle().Foreground(lipgloss.Color("10")),
		failure: r.NewStyle().Foreground(lipgloss.Color("9")),
		warning: r.NewStyle().Foreground(lipgloss.Color("11")),
		info:    r.NewStyle().Foreground(lipgloss.Color("14")),
	}
}

func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

func (p *Printer) Header(s string) { fmt.Fprintln(p.out, p.header.Render(s)) }

func (p *Printer) Success(s string) { fmt.Fprintln(p.out, p.success.Render(s)) }

func (p *Printer) Error(s string) { fmt.Fprintln(p.out, p.failure.Render(s)) }

func (p *Printer) Warn(s string) { fmt.Fprintln(p.out, p.warning.Render(s)) }

func (p *Printer) Info(s string) { fmt.Fprintln(p.out, p.info.Render(s)) }

// Rule prints a horizontal rule of n copies of ch.
func (p *Printer) Rule(ch string, n int) {
	fmt.Fprintln(p.out, strings.Repeat(ch, n))
}

// Menu prints a numbered option list under title.
func (p *Printer) Menu(title string, options []string) {
	p.Println()
	p.Header(title)
	for i, opt := range options {
		p.Printf("%d. %s\n", i+1, opt)
	}
}
