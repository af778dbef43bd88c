package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/yigit/egresados/internal/pkg/apperrors"
	"github.com/yigit/egresados/internal/pkg/logger"
)

// URLPrefix is the route under which stored files are served.
const URLPrefix = "/uploads"

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string
	baseURL  string
	policies map[Category]UploadPolicy
}

// NewLocalStorage creates a new LocalStorage instance.
// baseURL is optional; when empty, PublicURL returns a root-relative path.
func NewLocalStorage(basePath, baseURL string, policies map[Category]UploadPolicy) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	if policies == nil {
		policies = map[Category]UploadPolicy{}
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
		policies: policies,
	}, nil
}

// SaveFile validates and stores an upload under its category subdirectory.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader, category Category) (string, error) {
	policy := ls.policies[category]

	mtype, err := DetectUpload(fileHeader, policy)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(ls.basePath, string(category))
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", dir).Msg("Failed to create subdirectory")
		return "", fmt.Errorf("failed to create subdirectory: %w", err)
	}

	uniqueFilename := uuid.New().String() + mtype.Extension()
	dstPath := filepath.Join(dir, uniqueFilename)

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	if policy.MaxWidth > 0 && strings.HasPrefix(mtype.String(), "image/") {
		err = saveImage(src, dstPath, policy.MaxWidth)
	} else {
		err = saveRaw(src, dstPath)
	}
	if err != nil {
		_ = os.Remove(dstPath)
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to save uploaded file")
		return "", err
	}

	relativePath := path.Join(string(category), uniqueFilename)
	logger.Info().
		Str("filename", fileHeader.Filename).
		Str("saved_as", relativePath).
		Str("mime", mtype.String()).
		Msg("File saved successfully")
	return relativePath, nil
}

func saveRaw(src io.Reader, dstPath string) error {
	dst, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to save file content: %w", err)
	}
	return nil
}

func saveImage(src io.Reader, dstPath string, maxWidth int) error {
	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return &apperrors.CustomError{Err: apperrors.ErrInvalidFile, Message: "image could not be decoded"}
	}

	if img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	if err := imaging.Save(img, dstPath); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// DeleteFile removes a file given the relative path stored in the database.
func (ls *LocalStorage) DeleteFile(relativePath string) error {
	if relativePath == "" {
		return nil
	}

	physicalPath := ls.GetFullPath(relativePath)
	if physicalPath == "" {
		return fmt.Errorf("invalid file path: %s", relativePath)
	}

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted successfully")
	return nil
}

// GetFullPath maps a relative path to the filesystem. Paths escaping the root yield "".
func (ls *LocalStorage) GetFullPath(relativePath string) string {
	relativePath = strings.TrimPrefix(relativePath, URLPrefix+"/")
	cleaned := path.Clean("/" + filepath.ToSlash(relativePath))
	if cleaned == "/" {
		return ""
	}
	return filepath.Join(ls.basePath, filepath.FromSlash(strings.TrimPrefix(cleaned, "/")))
}

// PublicURL returns the URL a stored file is served under.
func (ls *LocalStorage) PublicURL(relativePath string) string {
	if relativePath == "" {
		return ""
	}
	return ls.baseURL + URLPrefix + "/" + strings.TrimPrefix(relativePath, "/")
}
