package compose

import (
	"path/filepath"
	"strings"
)

// DefaultMediaType is the media type assumed for attachments whose filename
// extension is unknown or absent.
const DefaultMediaType = "application/octet-stream"

// mediaTypes maps lowercase filename extensions, including the dot, to the
// MIME content type declared for attachments with that extension.
var mediaTypes = map[string]string{
	".csv":  "text/csv",
	".gif":  "image/gif",
	".gz":   "application/gzip",
	".htm":  "text/html",
	".html": "text/html",
	".jpeg": "image/jpeg",
	".jpg":  "image/jpeg",
	".json": "application/json",
	".md":   "text/markdown",
	".pdf":  "application/pdf",
	".png":  "image/png",
	".svg":  "image/svg+xml",
	".tsv":  "text/tab-separated-values",
	".txt":  "text/plain",
	".xml":  "application/xml",
	".yaml": "application/yaml",
	".yml":  "application/yaml",
	".zip":  "application/zip",
}

// MediaTypeFor returns the MIME content type declared for the given
// filename's extension or DefaultMediaType if the extension is unknown.
func MediaTypeFor(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if mt, known := mediaTypes[ext]; known {
		return mt
	}
	return DefaultMediaType
}
