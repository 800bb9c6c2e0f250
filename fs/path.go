// Package fs provides file-based document reading and record writing.
package fs

import (
	"path/filepath"
	"strings"

	"github.com/fwojciec/mosaic"
)

// DocumentExt is the extension every input document must carry.
const DocumentExt = ".html"

// ValidateDocumentPath returns EINVALID unless path names an .html file.
func ValidateDocumentPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return mosaic.Errorf(mosaic.EINVALID, "document path required")
	}
	if !strings.EqualFold(filepath.Ext(path), DocumentExt) {
		return mosaic.Errorf(mosaic.EINVALID, "document path %q must end in %s", path, DocumentExt)
	}
	return nil
}

// DocumentName returns the base name of a document path without its
// extension.
// Example: files/van-gogh-paintings.html → van-gogh-paintings
func DocumentName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OutputPath derives the JSON output path for a document inside outDir.
// Example: (files/van-gogh-paintings.html, results) → results/van-gogh-paintings.json
func OutputPath(documentPath, outDir string) string {
	return filepath.Join(outDir, DocumentName(documentPath)+".json")
}
