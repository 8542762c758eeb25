// Package hwp5 decodes the binary HWP 5.x on-disk format: OLE-contained
// FileHeader/DocInfo/BodyText streams, the packed record encoding, the
// distribution-document cryptosystem, and the section tree walk that turns
// a record sequence into text with embedded Markdown tables.
package hwp5

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/kohwp/hwp/internal/container"
)

// Document is an opened HWP 5.x document, positioned to extract text
// section by section.
type Document struct {
	container    *container.Document
	header       FileHeader
	sectionCount int
}

// Open reads the FileHeader and DocInfo streams and determines the section
// count. It does not read any BodyText/ViewText stream yet; those are read
// lazily, one per section, by ExtractText.
func Open(c *container.Document) (*Document, error) {
	headerBytes, err := c.Stream("FileHeader")
	if err != nil {
		return nil, wrapMissingRequiredStream(err)
	}
	header, err := readFileHeader(bytes.NewReader(headerBytes))
	if err != nil {
		return nil, err
	}

	docInfoRaw, err := c.Stream("DocInfo")
	if err != nil {
		return nil, wrapMissingRequiredStream(err)
	}
	docInfoBody := docInfoRaw
	if header.Compressed() {
		docInfoBody, err = inflateRaw(docInfoRaw)
		if err != nil {
			return nil, err
		}
	}

	records, err := readRecords(docInfoBody)
	if err != nil {
		return nil, err
	}
	n, err := sectionCount(records)
	if err != nil {
		return nil, err
	}

	return &Document{container: c, header: header, sectionCount: n}, nil
}

// SectionCount returns the number of BodyText/ViewText sections.
func (d *Document) SectionCount() int { return d.sectionCount }

// ExtractText returns the document's full text, sections concatenated in
// document order, with tables rendered as Markdown in place, alongside a
// best-effort read of the document's \x05HwpSummaryInformation property set
// (title/author/subject). Sections are decrypted/decompressed/parsed/walked
// concurrently across a bounded worker pool; the concurrency is purely a
// throughput optimization; output order always matches section order
// regardless of completion order.
func (d *Document) ExtractText() (string, container.Metadata, error) {
	texts := make([]string, d.sectionCount)
	errs := make([]error, d.sectionCount)

	pool := newWorkerPool()
	var wg sync.WaitGroup
	for i := 0; i < d.sectionCount; i++ {
		i := i
		wg.Add(1)
		pool.submit(func() {
			defer wg.Done()
			text, err := d.extractSection(i)
			texts[i], errs[i] = text, err
		})
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return "", container.Metadata{}, err
		}
	}

	return strings.Join(texts, ""), d.container.Metadata(), nil
}

func (d *Document) extractSection(index int) (string, error) {
	name := sectionStreamName(d.header.Distribution(), index)
	raw, err := d.container.Stream(name)
	if err != nil {
		if errors.Is(err, container.ErrStreamNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("hwp5: section %d: %w", index, err)
	}

	body := raw
	if d.header.Distribution() {
		body, err = decryptDistributionStream(raw)
		if err != nil {
			return "", fmt.Errorf("hwp5: section %d: %w", index, err)
		}
	}
	if d.header.Compressed() {
		body, err = inflateRaw(body)
		if err != nil {
			return "", fmt.Errorf("hwp5: section %d: %w", index, err)
		}
	}

	records, err := readRecords(body)
	if err != nil {
		return "", fmt.Errorf("hwp5: section %d: %w", index, err)
	}

	return newSectionWalker(records).walk(), nil
}

// wrapMissingRequiredStream turns a container.ErrStreamNotFound for
// FileHeader or DocInfo into this package's own StreamNotFound error;
// those two streams are required, unlike a section stream.
func wrapMissingRequiredStream(err error) error {
	if errors.Is(err, container.ErrStreamNotFound) {
		return fmt.Errorf("%w: %v", ErrStreamNotFound, err)
	}
	return fmt.Errorf("hwp5: %w", err)
}

func sectionStreamName(distribution bool, index int) string {
	if distribution {
		return fmt.Sprintf("ViewText/Section%d", index)
	}
	return fmt.Sprintf("BodyText/Section%d", index)
}
