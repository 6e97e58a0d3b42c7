package service

import (
	"regexp"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
)

var (
	htmlTagRe = regexp.MustCompile(`<[^>]*>`)

	// markdownPatterns are the heuristics that mark a stored post body
	// as markdown rather than editor-produced HTML.
	markdownPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?m)^#+\s`),     // headers
		regexp.MustCompile(`\*\*.*\*\*`),    // bold
		regexp.MustCompile(`(?m)^>\s`),      // blockquotes
		regexp.MustCompile(`(?m)^-\s`),      // unordered lists
		regexp.MustCompile(`(?m)^\d+\.\s`),  // ordered lists
		regexp.MustCompile(`(?m)^---+$`),    // horizontal rules
		regexp.MustCompile(`\[.*\]\(.*\)`),  // links
		regexp.MustCompile("`[^`]+`"),       // inline code
	}
)

// IsMarkdown reports whether the content looks like markdown.
// Content containing HTML tags is assumed to already be HTML.
func IsMarkdown(content string) bool {
	if htmlTagRe.MatchString(content) {
		return false
	}

	for _, pattern := range markdownPatterns {
		if pattern.MatchString(content) {
			return true
		}
	}

	return false
}

// ParseMarkdown2HTML parse markdown to an HTML string
func ParseMarkdown2HTML(md []byte) string {
	htmlFlags := html.CommonFlags | html.HrefTargetBlank
	opts := html.RendererOptions{Flags: htmlFlags}
	renderer := html.NewRenderer(opts)
	return string(markdown.ToHTML(md, nil, renderer))
}

// RenderContent returns the post body ready for display, converting
// markdown to HTML when the heuristics detect it.
func RenderContent(content string) string {
	if IsMarkdown(content) {
		return ParseMarkdown2HTML([]byte(content))
	}

	return content
}
