package report

import (
	"encoding/json"
	"fmt"

	"claude-explorer/pkg/models"
)

// Encode serializes the composite document for embedding. The encoder
// escapes <, > and & to \u00XX sequences, including inside passthrough
// blobs, so the output can sit inside a <script> element without any
// byte sequence able to close it. Identical documents always produce
// identical bytes.
func Encode(doc *models.Document) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return data, nil
}

// EncodeIndent is Encode with indentation, for --json output.
func EncodeIndent(doc *models.Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return data, nil
}

// Decode parses bytes produced by Encode back into a document. Used by
// tests and by anything that consumes the embedded dataset.
func Decode(data []byte) (*models.Document, error) {
	doc := models.NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}
