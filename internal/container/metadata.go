package container

import (
	"bytes"

	"github.com/richardlehane/msoleps"
)

// Metadata is the subset of the \x05HwpSummaryInformation property set worth
// surfacing. Every field is empty when the stream is absent or malformed;
// metadata is a nice-to-have annotation, never load-bearing for extraction.
type Metadata struct {
	Title   string
	Author  string
	Subject string
}

const summaryInformationStream = "\x05HwpSummaryInformation"

// Metadata best-effort reads the document's property-set stream. Any
// failure, including the stream simply not existing, yields a zero
// Metadata and no error.
func (d *Document) Metadata() Metadata {
	raw, err := d.Stream(summaryInformationStream)
	if err != nil {
		return Metadata{}
	}

	doc, err := msoleps.New(bytes.NewReader(raw))
	if err != nil {
		return Metadata{}
	}

	var m Metadata
	for _, prop := range doc.Property {
		if prop == nil {
			continue
		}
		switch prop.Name {
		case "Title":
			m.Title = stringValue(prop)
		case "Author":
			m.Author = stringValue(prop)
		case "Subject":
			m.Subject = stringValue(prop)
		}
	}
	return m
}

func stringValue(prop *msoleps.Property) string {
	defer func() { recover() }()
	return prop.String()
}
