// Package container adapts an OLE compound-file document (the storage
// format every HWP 5.x file is wrapped in) into named-stream lookups, the
// single operation the rest of this module needs from the container
// format. Locating, decrypting, and parsing what's inside those streams
// is out of scope for this package.
package container

import (
	"errors"
	"fmt"
	"io"

	"github.com/richardlehane/mscfb"
)

// ErrStreamNotFound is returned by Stream when no entry in the container
// matches the requested path. Callers that treat a missing stream as
// expected (e.g. a skipped section) should check for it with errors.Is.
var ErrStreamNotFound = errors.New("container: stream not found")

// Document is an opened OLE compound-file document.
type Document struct {
	ra io.ReaderAt
}

// Open wraps a ReaderAt as an OLE compound-file document. Opening does not
// itself validate structure beyond what mscfb.New checks; streams are
// located lazily on Stream/Streams calls.
func Open(ra io.ReaderAt) (*Document, error) {
	if _, err := mscfb.New(ra); err != nil {
		return nil, fmt.Errorf("container: %w", err)
	}
	return &Document{ra: ra}, nil
}

// Stream returns the full contents of the named stream, addressed by its
// slash-joined storage path (e.g. "BodyText/Section0").
func (d *Document) Stream(name string) ([]byte, error) {
	doc, err := mscfb.New(d.ra)
	if err != nil {
		return nil, fmt.Errorf("container: %w", err)
	}

	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		if entryPath(entry) != name {
			continue
		}
		buf := make([]byte, entry.Size)
		if _, err := io.ReadFull(doc, buf); err != nil && err != io.EOF {
			return nil, fmt.Errorf("container: reading stream %q: %w", name, err)
		}
		return buf, nil
	}

	return nil, errNotFound(name)
}

func errNotFound(name string) error {
	return fmt.Errorf("%w: %q", ErrStreamNotFound, name)
}

// Streams lists every stream path in the document, in container order.
func (d *Document) Streams() ([]string, error) {
	doc, err := mscfb.New(d.ra)
	if err != nil {
		return nil, fmt.Errorf("container: %w", err)
	}

	var names []string
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		if entry.Size > 0 || len(entry.Path) > 0 {
			names = append(names, entryPath(entry))
		}
	}
	return names, nil
}

func entryPath(entry *mscfb.File) string {
	full := ""
	for _, p := range entry.Path {
		full += p + "/"
	}
	return full + entry.Name
}
