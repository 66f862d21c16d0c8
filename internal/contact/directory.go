package contact

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

var header = []string{"Name", "Phone", "Email"}

const csvPerm = 0o644

// Directory is the CSV-backed contact list. Every call opens, fully reads or
// writes, and closes the file. Each operation is recorded in the log.
type Directory struct {
	csvPath string
	log     *zap.Logger
}

func NewDirectory(csvPath string, log *zap.Logger) *Directory {
	return &Directory{csvPath: csvPath, log: log}
}

// Add appends c, writing the header first when the file is new or empty.
func (d *Directory) Add(c Contact) error {
	if err := d.add(c); err != nil {
		d.log.Error(fmt.Sprintf("Error adding contact: %v", err))
		return err
	}
	d.log.Info(fmt.Sprintf("Contact '%s' added successfully", c.Name))
	return nil
}

func (d *Directory) add(c Contact) error {
	if err := c.Validate(); err != nil {
		return err
	}

	f, err := os.OpenFile(d.csvPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, csvPerm)
	if err != nil {
		return fmt.Errorf("open %s: %w", d.csvPath, err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("stat %s: %w", d.csvPath, err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		_ = w.Write(header)
	}
	_ = w.Write([]string{c.Name, c.Phone, c.Email})
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", d.csvPath, err)
	}
	return f.Close()
}

// List returns every row in file order.
func (d *Directory) List() ([]Contact, error) {
	contacts, err := d.read()
	if err != nil {
		d.log.Error(fmt.Sprintf("Error displaying contacts: %v", err))
		return nil, err
	}
	return contacts, nil
}

// Search returns every contact whose name contains term, ignoring case.
func (d *Directory) Search(term string) ([]Contact, error) {
	contacts, err := d.read()
	if err != nil {
		d.log.Error(fmt.Sprintf("Error searching contact: %v", err))
		return nil, err
	}

	var found []Contact
	for _, c := range contacts {
		if c.Matches(term) {
			found = append(found, c)
		}
	}
	return found, nil
}

// Find returns the first contact named name, ignoring case.
func (d *Directory) Find(name string) (Contact, error) {
	contacts, err := d.read()
	if err != nil {
		return Contact{}, err
	}
	for _, c := range contacts {
		if c.Is(name) {
			return c, nil
		}
	}
	return Contact{}, fmt.Errorf("%w: '%s'", ErrContactNotFound, name)
}

// UpdatePhone sets the phone of the first contact named name and rewrites the
// file. It returns the updated contact.
func (d *Directory) UpdatePhone(name, phone string) (Contact, error) {
	updated, err := d.updatePhone(name, phone)
	if err != nil {
		d.log.Error(fmt.Sprintf("Error updating contact: %v", err))
		return Contact{}, err
	}
	d.log.Info(fmt.Sprintf("Contact '%s' updated", name))
	return updated, nil
}

func (d *Directory) updatePhone(name, phone string) (Contact, error) {
	contacts, err := d.read()
	if err != nil {
		return Contact{}, err
	}

	for i, c := range contacts {
		if !c.Is(name) {
			continue
		}
		c.Phone = phone
		if err := c.Validate(); err != nil {
			return Contact{}, err
		}
		contacts[i] = c
		return c, d.rewrite(contacts)
	}
	return Contact{}, fmt.Errorf("%w: '%s'", ErrContactNotFound, name)
}

// Delete removes every contact named name and rewrites the file. It returns
// how many rows were removed.
func (d *Directory) Delete(name string) (int, error) {
	n, err := d.delete(name)
	if err != nil {
		d.log.Error(fmt.Sprintf("Error deleting contact: %v", err))
		return 0, err
	}
	d.log.Info(fmt.Sprintf("Contact '%s' deleted", name))
	return n, nil
}

func (d *Directory) delete(name string) (int, error) {
	contacts, err := d.read()
	if err != nil {
		return 0, err
	}

	kept := contacts[:0]
	for _, c := range contacts {
		if !c.Is(name) {
			kept = append(kept, c)
		}
	}
	removed := len(contacts) - len(kept)
	if removed == 0 {
		return 0, fmt.Errorf("%w: '%s'", ErrContactNotFound, name)
	}
	return removed, d.rewrite(kept)
}

// read loads all rows, locating columns by the header names.
func (d *Directory) read() ([]Contact, error) {
	f, err := os.Open(d.csvPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoContactsFile
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", d.csvPath, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	head, err := r.Read()
	if errors.Is(err, io.EOF) {
		return []Contact{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCSV, err)
	}

	col := make(map[string]int, len(head))
	for i, h := range head {
		col[h] = i
	}
	for _, h := range header {
		if _, ok := col[h]; !ok {
			return nil, fmt.Errorf("%w: missing %q column", ErrMalformedCSV, h)
		}
	}

	contacts := []Contact{}
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedCSV, err)
		}
		contacts = append(contacts, Contact{
			Name:  rec[col["Name"]],
			Phone: rec[col["Phone"]],
			Email: rec[col["Email"]],
		})
	}
	return contacts, nil
}

// rewrite replaces the file with header plus contacts via a temp file.
func (d *Directory) rewrite(contacts []Contact) error {
	tmp, err := os.CreateTemp(filepath.Dir(d.csvPath), filepath.Base(d.csvPath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", d.csvPath, err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	_ = w.Write(header)
	for _, c := range contacts {
		_ = w.Write([]string{c.Name, c.Phone, c.Email})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", d.csvPath, err)
	}
	if err := tmp.Chmod(csvPerm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", d.csvPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", d.csvPath, err)
	}
	if err := os.Rename(tmp.Name(), d.csvPath); err != nil {
		return fmt.Errorf("write %s: %w", d.csvPath, err)
	}
	return nil
}
