package category

import "errors"

var (
	ErrFailedToReadFile  = errors.New("category: failed to read catalog file")
	ErrFailedToParseYAML = errors.New("category: failed to parse catalog YAML")
	ErrEmptyCatalog      = errors.New("category: catalog has no categories")
	ErrInvalidEntry      = errors.New("category: entry needs both slug and label")
	ErrDuplicateSlug     = errors.New("category: duplicate slug")
)
