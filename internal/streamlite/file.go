package streamlite

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dsjohal14/cocktailstack/internal/catalog/db"
)

var _ db.Source = (*FileConnector)(nil)

// FileConnector reads a JSON dump of drink records
type FileConnector struct {
	BaseConnector
	path string
}

// NewFileConnector creates a connector for the dump at path
func NewFileConnector(path string) *FileConnector {
	return &FileConnector{BaseConnector: NewBaseConnector(path), path: path}
}

// Fetch reads and decodes the whole dump
func (c *FileConnector) Fetch(ctx context.Context) ([]db.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return DecodeRecords(data)
}

// DecodeRecords parses either a JSON array of drink objects or the
// {"drinks": [...]} envelope returned by the upstream API
func DecodeRecords(data []byte) ([]db.Record, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("catalog is empty")
	}

	if data[0] == '{' {
		var envelope struct {
			Drinks []db.Record `json:"drinks"`
		}
		if err := json.Unmarshal(data, &envelope); err != nil {
			return nil, fmt.Errorf("failed to decode catalog: %w", err)
		}
		if envelope.Drinks == nil {
			return nil, errors.New("catalog object has no drinks array")
		}
		return envelope.Drinks, nil
	}

	var records []db.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if records == nil {
		return nil, errors.New("catalog is not an array")
	}
	return records, nil
}
