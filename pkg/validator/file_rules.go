package validator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/relato/pkg/file"
)

// DefaultMaxPhotoBytes is the attachment limit of the report form (5 MiB).
const DefaultMaxPhotoBytes int64 = 5 << 20

// AllowedPhotoTypes lists the accepted attachment MIME types.
var AllowedPhotoTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// Photo validates the optional attachment. A nil attachment is valid;
// otherwise its MIME type must be allowed and its size at most maxBytes.
// The attachment is inspected as metadata only.
func Photo(a *file.Attachment, maxBytes int64) Result {
	if a == nil {
		return Valid()
	}

	if !slices.Contains(AllowedPhotoTypes, baseMediaType(a.MIMEType)) {
		return invalid("validation.photo_type", "Apenas imagens são permitidas (JPEG, PNG, GIF, WebP)")
	}
	if a.Size > maxBytes {
		return invalid("validation.photo_size", fmt.Sprintf("A imagem deve ter no máximo %dMB", maxBytes>>20))
	}
	return Valid()
}

// baseMediaType drops parameters and normalizes case: "Image/PNG; q=1" -> "image/png".
func baseMediaType(mimeType string) string {
	base, _, _ := strings.Cut(mimeType, ";")
	return strings.ToLower(strings.TrimSpace(base))
}
