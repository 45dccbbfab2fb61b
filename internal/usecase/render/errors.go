package render

import (
	"errors"
	"fmt"

	"placid-connector/internal/domain"
)

var (
	ErrMissingTemplateID = errors.New("template ID is required")
	ErrMissingResourceID = errors.New("resource ID is required")
	ErrNoPages           = errors.New("at least one page is required for PDF generation")
	ErrNoClips           = errors.New("at least one clip is required for video generation")
	ErrNoFiles           = errors.New("at least one file must be specified")
	ErrTooManyFiles      = errors.New("maximum of 5 files can be uploaded at once")
	ErrNoUpdateFields    = errors.New("at least one field must be provided for update")
	ErrNoMediaInResponse = errors.New("invalid response format from media upload API")
	ErrBinaryNotFound    = errors.New("binary data not found")
)

func kindLabel(kind domain.ResourceKind) string {
	switch kind {
	case domain.ResourceImage:
		return "Image"
	case domain.ResourcePDF:
		return "PDF"
	case domain.ResourceVideo:
		return "Video"
	case domain.ResourceTemplate:
		return "Template"
	default:
		return string(kind)
	}
}

// JobFailedError is a job that the remote service reported as failed.
type JobFailedError struct {
	Kind    domain.ResourceKind
	Message string
}

func (e *JobFailedError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "Unknown error"
	}
	return fmt.Sprintf("%s generation failed: %s", kindLabel(e.Kind), msg)
}

// JobTimeoutError is a job that never reached a terminal status within the
// polling attempt cap. LastStatus is the status of the original creation
// response, not of the last poll.
type JobTimeoutError struct {
	Kind       domain.ResourceKind
	Attempts   int
	LastStatus string
}

func (e *JobTimeoutError) Error() string {
	return fmt.Sprintf("%s generation timed out after %d attempts. Last status: %s",
		kindLabel(e.Kind), e.Attempts, e.LastStatus)
}
