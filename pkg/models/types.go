package models

import "time"

// Document is a text file held in memory. Content is the raw UTF-8 text,
// read and written verbatim. An empty Path means the document has never
// been saved.
type Document struct {
	Path     string
	Content  string
	Modified time.Time
}

// Named returns true when the document is backed by a file on disk.
func (d *Document) Named() bool {
	return d.Path != ""
}
