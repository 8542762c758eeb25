package hwpx

import (
	"fmt"
	"io"
	"strings"

	"github.com/kohwp/hwp/internal/document"
	"github.com/kohwp/hwp/internal/mdtable"
)

// ExtractText concatenates every section's text in document order,
// rendering table nodes as Markdown the same way the binary-format
// pipeline does, so the two formats produce output in the same shape.
func (r *Reader) ExtractText() (string, error) {
	var sb strings.Builder

	for _, section := range r.sections {
		file, err := r.zipReader.Open(section.name)
		if err != nil {
			return "", fmt.Errorf("hwpx: opening %s: %w", section.name, err)
		}

		text, err := extractSectionText(file)
		file.Close()
		if err != nil {
			return "", fmt.Errorf("hwpx: %s: %w", section.name, err)
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}

func extractSectionText(r io.ReadCloser) (string, error) {
	scanner, err := NewContentScanner(r)
	if err != nil {
		return "", err
	}
	defer scanner.Close()

	var sb strings.Builder
	for {
		node, err := scanner.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch n := node.(type) {
		case *document.Paragraph:
			sb.WriteString(n.Text)
			sb.WriteString("\n\n")
		case *document.Table:
			sb.WriteString(mdtable.Render(n))
			sb.WriteString("\n\n")
		}
	}

	return sb.String(), nil
}
