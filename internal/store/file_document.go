package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-bill-desk/internal/config"
	"github.com/MKhiriev/go-bill-desk/internal/logger"
	"github.com/MKhiriev/go-bill-desk/models"
)

const tempFilePattern = ".bill-*.part"

// fileDocumentSink writes documents into a download directory. Every save
// goes through a temporary file in the same directory which is renamed over
// the final name, so a reader never sees a half-written bill.
type fileDocumentSink struct {
	dir      string
	fileName string
	logger   *logger.Logger
}

// NewFileDocumentSink creates the download directory if needed and returns a
// sink saving every document as cfg.FileName inside it.
func NewFileDocumentSink(cfg config.ClientExport, logger *logger.Logger) (DocumentSink, error) {
	dir, err := filepath.Abs(cfg.DownloadDir)
	if err != nil {
		return nil, fmt.Errorf("resolve download dir %q: %w", cfg.DownloadDir, err)
	}

	if err = os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create download dir %q: %w", dir, err)
	}

	return &fileDocumentSink{dir: dir, fileName: cfg.FileName, logger: logger}, nil
}

func (s *fileDocumentSink) Save(ctx context.Context, doc models.Document) (path string, err error) {
	if len(doc.Body) == 0 {
		return "", ErrEmptyDocument
	}
	if err = ctx.Err(); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(s.dir, tempFilePattern)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCreatingTempFile, err)
	}
	tmpName := tmp.Name()

	// the temporary file is released on every path; after a successful
	// rename it no longer exists and the removal is a no-op
	defer func() {
		_ = tmp.Close()
		if rmErr := os.Remove(tmpName); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			s.logger.Warn().Err(rmErr).Str("file", tmpName).Msg("remove temporary document")
		}
	}()

	if _, err = tmp.Write(doc.Body); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}
	if err = tmp.Sync(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}

	path = filepath.Join(s.dir, s.fileName)
	if err = os.Rename(tmpName, path); err != nil {
		return "", fmt.Errorf("%w: %w", ErrPublishingFile, err)
	}

	s.logger.Debug().
		Str("path", path).
		Str("content_type", doc.ContentType).
		Int("bytes", len(doc.Body)).
		Msg("document saved")
	return path, nil
}
