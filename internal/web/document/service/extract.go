// Package service extracts post drafts from uploaded documents.
package service

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"html"
	"io"
	"path/filepath"
	"strings"

	"github.com/Laisky/errors/v2"
	"github.com/ledongthuc/pdf"
)

// ErrUnsupportedFormat is returned for file extensions the extractor
// cannot handle.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Extract converts an uploaded document into HTML paragraphs suitable
// for seeding a post draft. The format is picked from the filename
// extension.
func Extract(filename string, content []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".docx":
		return extractDocx(content)
	case ".pdf":
		return extractPDF(content)
	default:
		return "", errors.WithStack(ErrUnsupportedFormat)
	}
}

// docx paragraph styles that map to headings
func headingTag(style string) string {
	switch strings.ToLower(style) {
	case "heading1", "heading 1", "title":
		return "h2"
	case "heading2", "heading 2":
		return "h3"
	default:
		return "p"
	}
}

// extractDocx walks word/document.xml inside the docx container and
// renders each paragraph as an HTML block.
func extractDocx(content []byte) (string, error) {
	reader, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", errors.Wrap(err, "open docx container")
	}

	var document *zip.File
	for _, file := range reader.File {
		if file.Name == "word/document.xml" {
			document = file
			break
		}
	}
	if document == nil {
		return "", errors.New("docx has no word/document.xml")
	}

	rc, err := document.Open()
	if err != nil {
		return "", errors.Wrap(err, "open document.xml")
	}
	defer rc.Close() //nolint:errcheck

	decoder := xml.NewDecoder(rc)

	var blocks []string
	var paragraph strings.Builder
	tag := "p"
	inParagraph := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", errors.Wrap(err, "parse document.xml")
		}

		switch el := token.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "p":
				inParagraph = true
				paragraph.Reset()
				tag = "p"
			case "pStyle":
				for _, attr := range el.Attr {
					if attr.Name.Local == "val" {
						tag = headingTag(attr.Value)
					}
				}
			case "t":
				var text string
				if err := decoder.DecodeElement(&text, &el); err != nil {
					return "", errors.Wrap(err, "decode text run")
				}
				paragraph.WriteString(text)
			case "tab":
				paragraph.WriteString("\t")
			case "br":
				paragraph.WriteString("\n")
			}
		case xml.EndElement:
			if el.Name.Local == "p" && inParagraph {
				inParagraph = false
				if text := strings.TrimSpace(paragraph.String()); text != "" {
					blocks = append(blocks,
						"<"+tag+">"+html.EscapeString(text)+"</"+tag+">")
				}
			}
		}
	}

	if len(blocks) == 0 {
		return "", errors.New("docx contains no text")
	}

	return strings.Join(blocks, "\n"), nil
}

// extractPDF pulls the plain text out of a pdf and groups it into
// paragraphs on blank lines.
func extractPDF(content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", errors.Wrap(err, "open pdf")
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", errors.Wrap(err, "extract pdf text")
	}

	raw, err := io.ReadAll(plain)
	if err != nil {
		return "", errors.Wrap(err, "read pdf text")
	}

	var blocks []string
	for _, chunk := range strings.Split(string(raw), "\n\n") {
		text := strings.TrimSpace(strings.Join(strings.Fields(chunk), " "))
		if text == "" {
			continue
		}
		blocks = append(blocks, "<p>"+html.EscapeString(text)+"</p>")
	}

	if len(blocks) == 0 {
		return "", errors.New("pdf contains no text")
	}

	return strings.Join(blocks, "\n"), nil
}
