package utils

import (
	"github.com/gabriel-vasile/mimetype"

	"jobportal/validation"
)

// DetectImageType sniffs the upload content. ok is false when the bytes are
// not one of the accepted image formats, whatever the client claimed.
func DetectImageType(data []byte) (mime string, ok bool) {
	detected := mimetype.Detect(data)
	for _, allowed := range validation.AllowedImageTypes {
		if detected.Is(allowed) {
			return allowed, true
		}
	}
	return detected.String(), false
}
