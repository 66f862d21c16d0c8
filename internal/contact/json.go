package contact

import (
	"errors"
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ExportJSON mirrors every row to path as a JSON array and returns how many
// contacts were written.
func (d *Directory) ExportJSON(path string) (int, error) {
	n, err := d.exportJSON(path)
	if err != nil {
		d.log.Error(fmt.Sprintf("Error exporting to JSON: %v", err))
		return 0, err
	}
	d.log.Info(fmt.Sprintf("Exported %d contacts to JSON", n))
	return n, nil
}

func (d *Directory) exportJSON(path string) (int, error) {
	contacts, err := d.read()
	if err != nil {
		return 0, err
	}
	if len(contacts) == 0 {
		return 0, ErrNoContacts
	}

	data, err := json.MarshalIndent(contacts, "", "    ")
	if err != nil {
		return 0, fmt.Errorf("encode contacts: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return len(contacts), nil
}

// ImportJSON reads an exported file for display. The contacts are never merged
// into the CSV file.
func (d *Directory) ImportJSON(path string) ([]Contact, error) {
	contacts, err := importJSON(path)
	if err != nil {
		d.log.Error(fmt.Sprintf("Error importing from JSON: %v", err))
		return nil, err
	}
	d.log.Info(fmt.Sprintf("Imported %d contacts from JSON", len(contacts)))
	return contacts, nil
}

func importJSON(path string) ([]Contact, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoJSONFile
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	contacts := []Contact{}
	if err := json.Unmarshal(data, &contacts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	for i, c := range contacts {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("%w: contact #%d: %v", ErrInvalidJSON, i+1, err)
		}
	}
	return contacts, nil
}
