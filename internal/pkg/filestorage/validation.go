package filestorage

import (
	"fmt"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"
	"github.com/yigit/egresados/internal/pkg/apperrors"
)

// DetectUpload sniffs the content type of an upload and checks it against the policy.
func DetectUpload(fileHeader *multipart.FileHeader, policy UploadPolicy) (*mimetype.MIME, error) {
	if fileHeader == nil {
		return nil, apperrors.NewBadRequestError("no file provided")
	}
	if policy.MaxBytes > 0 && fileHeader.Size > policy.MaxBytes {
		return nil, &apperrors.CustomError{
			Err:     apperrors.ErrFileTooLarge,
			Message: fmt.Sprintf("file exceeds the maximum size of %d MB", policy.MaxBytes>>20),
		}
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to detect file type: %w", err)
	}

	if len(policy.AllowedMIME) > 0 && !mimetype.EqualsAny(mtype.String(), policy.AllowedMIME...) {
		return nil, &apperrors.CustomError{
			Err:     apperrors.ErrInvalidFile,
			Message: fmt.Sprintf("file type %s is not allowed", mtype.String()),
		}
	}

	return mtype, nil
}
