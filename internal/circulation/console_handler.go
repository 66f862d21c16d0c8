package circulation

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"librarydesk/internal/book"
	"librarydesk/internal/console"
	"librarydesk/internal/member"
)

var menuOptions = []string{
	"Add Book",
	"Register Member",
	"Borrow Book",
	"Return Book",
	"View Library Report",
	"List All Books",
	"List All Members",
	"Exit",
}

// ConsoleHandler drives the circulation store from a numbered text menu.
type ConsoleHandler struct {
	store  *Store
	prompt *console.Prompter
	out    *console.Printer
	logger *zap.Logger
}

func NewConsoleHandler(store *Store, prompt *console.Prompter, out *console.Printer, logger *zap.Logger) *ConsoleHandler {
	return &ConsoleHandler{store: store, prompt: prompt, out: out, logger: logger}
}

// Welcome prints the banner shown once at startup.
func (h *ConsoleHandler) Welcome() {
	h.out.Rule("*", 42)
	h.out.Header("  Welcome to the Library Inventory System ")
	h.out.Rule("*", 42)
}

// Run shows the menu until the user exits or input ends. Both paths save.
// Errors from individual options are reported and the loop continues.
func (h *ConsoleHandler) Run(ctx context.Context) error {
	for {
		h.out.Menu("Menu:", menuOptions)
		choice, err := h.prompt.Ask("Choose an option (1-8): ")
		if errors.Is(err, console.ErrInputClosed) {
			return h.exit(ctx)
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = h.AddBook(ctx)
		case "2":
			err = h.RegisterMember(ctx)
		case "3":
			err = h.Borrow(ctx)
		case "4":
			err = h.Return(ctx)
		case "5":
			h.ShowReport()
		case "6":
			h.ListBooks()
		case "7":
			h.ListMembers()
		case "8":
			h.out.Println("Saving data and exiting...")
			return h.exit(ctx)
		default:
			h.out.Warn("Invalid choice. Please enter a number between 1 and 8.")
		}

		if errors.Is(err, console.ErrInputClosed) {
			return h.exit(ctx)
		}
		if err != nil {
			h.logger.Error("menu option failed", zap.String("choice", choice), zap.Error(err))
			h.out.Error("Error: " + err.Error())
		}
	}
}

func (h *ConsoleHandler) exit(ctx context.Context) error {
	if err := h.store.Save(ctx); err != nil {
		h.logger.Error("saving on exit failed", zap.Error(err))
		h.out.Error("Error saving data: " + err.Error())
	}
	return nil
}

func (h *ConsoleHandler) AddBook(ctx context.Context) error {
	title, err := h.prompt.Ask("Title: ")
	if err != nil {
		return err
	}
	author, err := h.prompt.Ask("Author: ")
	if err != nil {
		return err
	}
	isbn, err := h.prompt.Ask("ISBN: ")
	if err != nil {
		return err
	}

	if err := h.store.AddBook(title, author, isbn); err != nil {
		if errors.Is(err, book.ErrAlreadyExists) {
			h.out.Warn("A book with that ISBN already exists.")
			return nil
		}
		return err
	}
	h.logger.Info("book added", zap.String("isbn", isbn))
	if err := h.store.Save(ctx); err != nil {
		return err
	}
	h.out.Success("Book added successfully.")
	return nil
}

func (h *ConsoleHandler) RegisterMember(ctx context.Context) error {
	name, err := h.prompt.Ask("Member Name: ")
	if err != nil {
		return err
	}
	id, err := h.prompt.Ask("Member ID: ")
	if err != nil {
		return err
	}

	if err := h.store.RegisterMember(name, id); err != nil {
		if errors.Is(err, member.ErrAlreadyExists) {
			h.out.Warn("Member ID already exists.")
			return nil
		}
		return err
	}
	h.logger.Info("member registered", zap.String("member_id", id))
	if err := h.store.Save(ctx); err != nil {
		return err
	}
	h.out.Success("Member registered successfully.")
	return nil
}

func (h *ConsoleHandler) Borrow(ctx context.Context) error {
	id, err := h.prompt.Ask("Member ID: ")
	if err != nil {
		return err
	}
	isbn, err := h.prompt.Ask("ISBN of book to borrow: ")
	if err != nil {
		return err
	}

	res, err := h.store.LendBook(ctx, id, isbn)
	h.logger.Info("lend", zap.String("member_id", id), zap.String("isbn", isbn), zap.Stringer("outcome", res.Outcome))
	h.printOutcome(res.OK(), res.String())
	return err
}

func (h *ConsoleHandler) Return(ctx context.Context) error {
	id, err := h.prompt.Ask("Member ID: ")
	if err != nil {
		return err
	}
	isbn, err := h.prompt.Ask("ISBN of book to return: ")
	if err != nil {
		return err
	}

	res, err := h.store.TakeReturn(ctx, id, isbn)
	h.logger.Info("return", zap.String("member_id", id), zap.String("isbn", isbn), zap.Stringer("outcome", res.Outcome))
	if res.Outcome == ReturnAlreadyAvailable {
		h.logger.Warn("book was available while still on a member record", zap.String("isbn", isbn))
	}
	h.printOutcome(res.OK(), res.String())
	return err
}

func (h *ConsoleHandler) printOutcome(ok bool, msg string) {
	if ok {
		h.out.Success(msg)
		return
	}
	h.out.Warn(msg)
}

func (h *ConsoleHandler) ShowReport() {
	h.out.Println()
	h.out.Header("Library Report")
	h.out.Println("-----------------")
	h.out.Println(h.store.Report().String())
}

func (h *ConsoleHandler) ListBooks() {
	h.out.Println()
	h.out.Header("Books:")
	for _, b := range h.store.Books() {
		h.out.Println(" -", b.String())
	}
}

func (h *ConsoleHandler) ListMembers() {
	h.out.Println()
	h.out.Header("Members:")
	for _, m := range h.store.Members() {
		h.out.Println(" -", m.String())
	}
}
