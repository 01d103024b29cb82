// Package file inspects user-chosen attachments and reduces them to the
// metadata the form validators need: file name, size and MIME type.
//
// Two sources are supported:
//   - FromFileHeader: a multipart upload; the declared Content-Type is kept
//     (mirroring what a browser reports) and sniffed only when missing.
//   - Stat: a local path picked in a terminal host; the MIME type is sniffed
//     from magic bytes with http.DetectContentType, falling back to the
//     extension for image formats the sniffer does not know.
//
// # Usage
//
//	a, err := file.Stat("/tmp/buraco.jpg")
//	if err != nil {
//	    return err
//	}
//	res := validator.Photo(a, validator.DefaultMaxPhotoBytes)
//
// Errors are sentinel values (ErrFileNotFound, ErrIsDirectory, ...) wrapped
// with context; use errors.Is to classify them.
package file
