package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/abhisek/mededu/internal/model"
)

// Encode serialises doc as 4-space indented JSON. Nil collections are
// written as empty arrays, so encoding a decoded document is stable.
func Encode(doc *model.Document) ([]byte, error) {
	doc.Normalize()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode validates raw against the document schema and parses it.
func Decode(raw []byte) (*model.Document, error) {
	if err := Validate(raw); err != nil {
		return nil, err
	}

	var doc model.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	doc.Normalize()
	return &doc, nil
}
