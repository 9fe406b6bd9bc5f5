// Package upload Screenshot storage on local disk.
package upload

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	checkoutapp "github.com/krishivishwa/storefront/application/checkout"
	"github.com/krishivishwa/storefront/domain/checkout"
)

// DiskStore writes payment screenshots under a base directory with
// generated names; the original filename survives only in metadata.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the base directory if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Save streams the upload to disk and returns the stored screenshot.
func (s *DiskStore) Save(ctx context.Context, up checkoutapp.ScreenshotUpload) (checkout.Screenshot, error) {
	ext := strings.ToLower(filepath.Ext(up.Filename))
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return checkout.Screenshot{}, fmt.Errorf("failed to create screenshot file: %w", err)
	}

	written, err := io.Copy(f, up.Content)
	if err != nil {
		f.Close()
		os.Remove(path)
		return checkout.Screenshot{}, fmt.Errorf("failed to write screenshot: %w", err)
	}

	// Close can surface a deferred write failure; only a fully flushed
	// file counts as stored.
	if err := f.Close(); err != nil {
		os.Remove(path)
		return checkout.Screenshot{}, fmt.Errorf("failed to write screenshot: %w", err)
	}

	return checkout.Screenshot{
		Filename:    up.Filename,
		ContentType: up.ContentType,
		Size:        written,
		StoredPath:  path,
	}, nil
}
