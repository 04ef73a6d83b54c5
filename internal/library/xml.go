package library

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/noodlecollie/RekordboxFlacToMp3/internal/services"
)

// Parse reads a library export and validates that the sections the
// transformation needs are present. It fails before anything can be mutated.
func Parse(r io.Reader) (*Document, error) {
	decoder := xml.NewDecoder(r)
	var doc Document
	if err := decoder.Decode(&doc); err != nil {
		return nil, services.Wrap(services.ErrStructural, "library", "parse document", "", err)
	}
	if err := doc.validateStructure(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ParseFile reads and validates the library export at path.
func ParseFile(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open library: %w", err)
	}
	defer file.Close()
	return Parse(file)
}

func (d *Document) validateStructure() error {
	if d.Collection == nil {
		return services.Wrap(services.ErrStructural, "library", "locate collection", "document has no COLLECTION section", nil)
	}
	if d.Playlists == nil {
		return services.Wrap(services.ErrStructural, "library", "locate playlists", "document has no PLAYLISTS section", nil)
	}
	if len(d.Playlists.Roots) == 0 {
		return services.Wrap(services.ErrStructural, "library", "locate playlists", "PLAYLISTS section has no root node", nil)
	}
	return nil
}

// Write serializes the document as indented XML with the standard header.
func (d *Document) Write(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(d); err != nil {
		return fmt.Errorf("serialize library: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteFile serializes the document to path, truncating any existing file.
func (d *Document) WriteFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create library output: %w", err)
	}
	if err := d.Write(file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
