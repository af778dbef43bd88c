package services

import (
	"mime/multipart"

	"github.com/rs/zerolog"
	"github.com/yigit/egresados/internal/pkg/filestorage"
)

// storedUpload is the result of saving an optional upload.
type storedUpload struct {
	Path         string
	OriginalName string
}

// uploads wraps file storage with the replace-then-delete sequence used by every upload field.
type uploads struct {
	storage filestorage.FileStorage
	logger  zerolog.Logger
}

// save stores fh if present. A nil header yields a nil upload.
func (u uploads) save(fh *multipart.FileHeader, category filestorage.Category) (*storedUpload, error) {
	if fh == nil {
		return nil, nil
	}
	path, err := u.storage.SaveFile(fh, category)
	if err != nil {
		return nil, err
	}
	return &storedUpload{Path: path, OriginalName: fh.Filename}, nil
}

// discard removes a freshly stored upload after the row write failed.
func (u uploads) discard(up *storedUpload) {
	if up == nil {
		return
	}
	u.remove(up.Path)
}

// remove deletes stored files. Failures are logged and never returned.
func (u uploads) remove(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := u.storage.DeleteFile(p); err != nil {
			u.logger.Warn().Err(err).Str("path", p).Msg("Failed to delete stored file")
		}
	}
}

func (u uploads) url(path string) string {
	if path == "" {
		return ""
	}
	return u.storage.PublicURL(path)
}
