// Package receiptstore persists rendered receipt documents on local disk.
package receiptstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"hotelbook/internal/usecase/commands"
)

type fileStore struct {
	dir string
}

func NewFileStore(dir string) commands.ReceiptStore {
	return &fileStore{dir: dir}
}

// Save writes the document under the store directory, creating it on first
// use. An existing file with the same name is overwritten, which keeps
// exactly one artifact per receipt name.
func (s *fileStore) Save(_ context.Context, name string, pdf []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create receipts directory: %w", err)
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", fmt.Errorf("write receipt file: %w", err)
	}
	return path, nil
}
