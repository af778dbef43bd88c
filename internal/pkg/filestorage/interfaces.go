package filestorage

import (
	"mime/multipart"
)

// Category is the storage subdirectory an upload belongs to.
type Category string

const (
	CategoryCertificates  Category = "certificates"
	CategoryProfilePhotos Category = "profile_photos"
	CategoryNews          Category = "news"
)

// UploadPolicy constrains what a category accepts.
type UploadPolicy struct {
	MaxBytes    int64
	AllowedMIME []string
	// MaxWidth downscales raster images wider than this. Zero keeps the original.
	MaxWidth int
}

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFile validates an upload against the category policy and stores it.
	// The returned value is the path relative to the storage root, e.g. "certificates/<uuid>.pdf".
	SaveFile(fileHeader *multipart.FileHeader, category Category) (string, error)

	// DeleteFile removes a stored file. Missing files are not an error.
	DeleteFile(relativePath string) error

	// GetFullPath returns the filesystem path for a stored relative path
	GetFullPath(relativePath string) string

	// PublicURL returns the URL clients use to fetch a stored file
	PublicURL(relativePath string) string
}

// DefaultPolicies returns the upload policies used by the API.
func DefaultPolicies(certificateMaxBytes, photoMaxBytes int64, photoMaxWidth int) map[Category]UploadPolicy {
	images := []string{"image/jpeg", "image/png", "image/gif"}
	return map[Category]UploadPolicy{
		CategoryCertificates: {
			MaxBytes:    certificateMaxBytes,
			AllowedMIME: []string{"application/pdf"},
		},
		CategoryProfilePhotos: {
			MaxBytes:    photoMaxBytes,
			AllowedMIME: images,
			MaxWidth:    photoMaxWidth,
		},
		CategoryNews: {
			MaxBytes:    photoMaxBytes,
			AllowedMIME: images,
			MaxWidth:    photoMaxWidth,
		},
	}
}
