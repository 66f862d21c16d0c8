package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"librarydesk/internal/console"
)

var menuOptions = []string{
	"Add New Contact",
	"Display All Contacts",
	"Search Contact",
	"Update Contact",
	"Delete Contact",
	"Export to JSON",
	"Import from JSON",
	"Exit",
}

// ConsoleHandler drives the directory from a numbered text menu.
type ConsoleHandler struct {
	dir      *Directory
	jsonPath string
	prompt   *console.Prompter
	out      *console.Printer
	logger   *zap.Logger
}

func NewConsoleHandler(dir *Directory, jsonPath string, prompt *console.Prompter, out *console.Printer, logger *zap.Logger) *ConsoleHandler {
	return &ConsoleHandler{dir: dir, jsonPath: jsonPath, prompt: prompt, out: out, logger: logger}
}

func (h *ConsoleHandler) Welcome() {
	h.out.Println()
	h.out.Rule("=", 70)
	h.out.Header("     Welcome to Contact Book Management System!")
	h.out.Rule("=", 70)
}

// Run shows the menu until the user exits or input ends.
func (h *ConsoleHandler) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		h.out.Println()
		h.out.Rule("=", 70)
		h.out.Header("          CONTACT BOOK MANAGEMENT SYSTEM")
		h.out.Rule("=", 70)
		for i, opt := range menuOptions {
			h.out.Printf("%d. %s\n", i+1, opt)
		}
		h.out.Rule("=", 70)

		choice, err := h.prompt.Ask("Enter your choice (1-8): ")
		if errors.Is(err, console.ErrInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = h.AddContacts()
		case "2":
			err = h.DisplayContacts()
		case "3":
			err = h.SearchContact()
		case "4":
			err = h.UpdateContact()
		case "5":
			err = h.DeleteContact()
		case "6":
			err = h.ExportJSON()
		case "7":
			err = h.ImportJSON()
		case "8":
			h.out.Println()
			h.out.Rule("=", 70)
			h.out.Success("     Thank you for using Contact Book Management System!")
			h.out.Rule("=", 70)
			return nil
		default:
			h.out.Error("Invalid choice! Please enter a number between 1-8.")
		}

		if errors.Is(err, console.ErrInputClosed) {
			return nil
		}
		if err != nil {
			h.logger.Debug("contact operation failed", zap.String("choice", choice), zap.Error(err))
			h.out.Println()
			h.out.Error("ERROR: " + err.Error())
		}
	}
}

func (h *ConsoleHandler) section(title string) {
	h.out.Println()
	h.out.Rule("=", 60)
	h.out.Header("           " + title)
	h.out.Rule("=", 60)
}

// AddContacts keeps adding contacts while the user answers "y". A rejected
// contact ends the loop with its error.
func (h *ConsoleHandler) AddContacts() error {
	for {
		h.section("ADD NEW CONTACT")
		h.out.Println()
		h.out.Info("Please enter the contact details:")

		name, err := h.prompt.Ask("Name: ")
		if err != nil {
			return err
		}
		phone, err := h.prompt.Ask("Phone Number: ")
		if err != nil {
			return err
		}
		email, err := h.prompt.Ask("Email Address: ")
		if err != nil {
			return err
		}

		c := Contact{Name: name, Phone: phone, Email: email}
		if err := h.dir.Add(c); err != nil {
			return err
		}
		h.out.Println()
		h.out.Success(fmt.Sprintf("SUCCESS: Contact '%s' added successfully!", c.Name))

		h.out.Println()
		again, err := h.prompt.Confirm("Add another contact? (y/n): ")
		if err != nil || !again {
			return err
		}
	}
}

func (h *ConsoleHandler) DisplayContacts() error {
	contacts, err := h.dir.List()
	if err != nil {
		return err
	}
	if len(contacts) == 0 {
		h.out.Println()
		h.out.Warn("Warning: Contact list is empty!")
		return nil
	}
	h.printTable("ALL CONTACTS", contacts)
	return nil
}

func (h *ConsoleHandler) printTable(title string, contacts []Contact) {
	h.out.Println()
	h.out.Rule("=", 80)
	h.out.Header("                    " + title)
	h.out.Rule("=", 80)
	h.out.Printf("%-30s %-20s %-30s\n", "Name", "Phone", "Email")
	h.out.Rule("-", 80)
	for _, c := range contacts {
		h.out.Printf("%-30s %-20s %-30s\n", c.Name, c.Phone, c.Email)
	}
	h.out.Rule("-", 80)
	h.out.Printf("Total Contacts: %d\n", len(contacts))
	h.out.Rule("=", 80)
}

func (h *ConsoleHandler) printContact(c Contact) {
	h.out.Printf("Name:  %s\n", c.Name)
	h.out.Printf("Phone: %s\n", c.Phone)
	h.out.Printf("Email: %s\n", c.Email)
}

func (h *ConsoleHandler) SearchContact() error {
	h.section("SEARCH CONTACT")
	h.out.Println()
	term, err := h.prompt.Ask("Enter name to search: ")
	if err != nil {
		return err
	}

	found, err := h.dir.Search(term)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		h.out.Println()
		h.out.Warn(fmt.Sprintf("No contact found with name '%s'", term))
		return nil
	}
	for _, c := range found {
		h.out.Println()
		h.out.Rule("=", 60)
		h.printContact(c)
		h.out.Rule("=", 60)
	}
	return nil
}

func (h *ConsoleHandler) UpdateContact() error {
	h.section("UPDATE CONTACT")
	h.out.Println()
	name, err := h.prompt.Ask("Enter name of contact to update: ")
	if err != nil {
		return err
	}

	current, err := h.dir.Find(name)
	if errors.Is(err, ErrContactNotFound) {
		h.out.Println()
		h.out.Warn(fmt.Sprintf("No contact found with name '%s'", name))
		return nil
	}
	if err != nil {
		return err
	}
	h.out.Info("Current Phone: " + current.Phone)

	phone, err := h.prompt.Ask("Enter new phone number: ")
	if err != nil {
		return err
	}
	if _, err := h.dir.UpdatePhone(name, phone); err != nil {
		return err
	}
	h.out.Println()
	h.out.Success(fmt.Sprintf("SUCCESS: Contact '%s' updated successfully!", name))
	return nil
}

func (h *ConsoleHandler) DeleteContact() error {
	h.section("DELETE CONTACT")
	h.out.Println()
	name, err := h.prompt.Ask("Enter name of contact to delete: ")
	if err != nil {
		return err
	}

	c, err := h.dir.Find(name)
	if errors.Is(err, ErrContactNotFound) {
		h.out.Println()
		h.out.Warn(fmt.Sprintf("No contact found with name '%s'", name))
		return nil
	}
	if err != nil {
		return err
	}
	h.out.Println()
	h.out.Info("Contact Details:")
	h.printContact(c)

	h.out.Println()
	ok, err := h.prompt.Ask("Are you sure you want to delete this contact? (y/n): ")
	if err != nil {
		return err
	}
	if !strings.EqualFold(ok, "y") {
		h.out.Println()
		h.out.Warn("Deletion cancelled.")
		return nil
	}

	if _, err := h.dir.Delete(name); err != nil {
		return err
	}
	h.out.Println()
	h.out.Success(fmt.Sprintf("SUCCESS: Contact '%s' deleted successfully!", name))
	return nil
}

func (h *ConsoleHandler) ExportJSON() error {
	h.section("EXPORT TO JSON")
	n, err := h.dir.ExportJSON(h.jsonPath)
	if errors.Is(err, ErrNoContacts) {
		h.out.Println()
		h.out.Warn("No contacts to export!")
		return nil
	}
	if err != nil {
		return err
	}
	h.out.Println()
	h.out.Success(fmt.Sprintf("SUCCESS: %d contacts exported to '%s' successfully!", n, h.jsonPath))
	return nil
}

func (h *ConsoleHandler) ImportJSON() error {
	contacts, err := h.dir.ImportJSON(h.jsonPath)
	if err != nil {
		return err
	}
	h.section("IMPORT FROM JSON")
	if len(contacts) == 0 {
		h.out.Println()
		h.out.Warn("JSON file is empty!")
		return nil
	}
	h.printTable("CONTACTS FROM JSON", contacts)
	return nil
}
