package data

import (
	"strings"
	"time"
)

const exportPrefix = "slotify_export_"

// ImportResult is the JSON body returned by a successful import.
type ImportResult struct {
	Message string `json:"message"`
}

// ExportFilename names a downloaded archive after its retrieval time
// (UTC). The extension follows the response content type: JSON exports
// get .json, everything else is treated as a ZIP archive.
func ExportFilename(at time.Time, contentType string) string {
	ext := "zip"
	if strings.HasPrefix(contentType, "application/json") {
		ext = "json"
	}
	return exportPrefix + at.UTC().Format("20060102_150405") + "." + ext
}

// IsExportFile reports whether a directory entry looks like an archive
// written by ExportFilename.
func IsExportFile(name string) bool {
	return strings.HasPrefix(name, exportPrefix)
}
