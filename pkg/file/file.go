package file

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Attachment describes a user-chosen file by metadata only. Validators
// never read its content.
type Attachment struct {
	Filename string
	Size     int64
	MIMEType string
}

// Extension returns the lowercase file extension including the dot.
func (a *Attachment) Extension() string {
	if a == nil {
		return ""
	}
	return strings.ToLower(filepath.Ext(a.Filename))
}

var imageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".bmp":  "image/bmp",
	".svg":  "image/svg+xml",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".heic": "image/heic",
	".avif": "image/avif",
}

// FromFileHeader builds an Attachment from a multipart upload. The declared
// Content-Type wins, the way a browser reports File.type; content sniffing is
// used only when the part carries no usable type.
func FromFileHeader(fh *multipart.FileHeader) (*Attachment, error) {
	if fh == nil {
		return nil, ErrNilFileHeader
	}

	a := &Attachment{
		Filename: SanitizeFilename(fh.Filename),
		Size:     fh.Size,
		MIMEType: fh.Header.Get("Content-Type"),
	}
	if a.MIMEType != "" && a.MIMEType != "application/octet-stream" {
		return a, nil
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	defer func() { _ = f.Close() }()

	mimeType, err := DetectMIMEType(f)
	if err != nil {
		return nil, err
	}
	a.MIMEType = refineByExtension(mimeType, a.Extension())
	return a, nil
}

// Stat builds an Attachment for a local file, sniffing its MIME type from
// the first bytes. Directories are rejected.
func Stat(path string) (*Attachment, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	defer func() { _ = f.Close() }()

	mimeType, err := DetectMIMEType(f)
	if err != nil {
		return nil, err
	}

	a := &Attachment{
		Filename: SanitizeFilename(info.Name()),
		Size:     info.Size(),
	}
	a.MIMEType = refineByExtension(mimeType, a.Extension())
	return a, nil
}

// DetectMIMEType sniffs the media type from the first 512 bytes of r using
// magic bytes rather than file names.
func DetectMIMEType(r io.Reader) (string, error) {
	// 512 bytes is the maximum http.DetectContentType reads
	buffer := make([]byte, 512)
	n, err := io.ReadFull(r, buffer)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}

	// Reset position for subsequent readers of the same file
	if seeker, ok := r.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	return http.DetectContentType(buffer[:n]), nil
}

// refineByExtension falls back to the extension table when sniffing only
// produced a generic type, e.g. for formats DetectContentType does not know.
func refineByExtension(sniffed, ext string) string {
	if sniffed != "application/octet-stream" {
		return sniffed
	}
	if mimeType, ok := imageExtensions[ext]; ok {
		return mimeType
	}
	return sniffed
}

// SanitizeFilename removes any path components from a filename.
// Returns "unnamed" for empty or special directory references.
//
// Example:
//
//	safe := file.SanitizeFilename("../../../etc/passwd") // Returns "passwd"
//	safe = file.SanitizeFilename("C:\\Windows\\file.txt") // Returns "file.txt"
func SanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}

	return filename
}
