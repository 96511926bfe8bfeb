package export

import "errors"

// Result is a rendered artifact ready to stream as an attachment.
type Result struct {
	Data     []byte
	Filename string
	MimeType string
}

// Format selects the export renderer. PDF is the default when the caller
// omits the format query parameter.
type Format string

const (
	FormatPDF      Format = "pdf"
	FormatMarkdown Format = "markdown"
)

var ErrPDFDependencyMissing = errors.New("pdf export dependency missing")

func ParseFormat(raw string) (Format, bool) {
	switch raw {
	case "", string(FormatPDF):
		return FormatPDF, true
	case string(FormatMarkdown):
		return FormatMarkdown, true
	}
	return "", false
}

// Markdown wraps raw markup as a downloadable file.
func Markdown(markup string, title string) *Result {
	return &Result{
		Data:     []byte(markup),
		Filename: sanitizeFilename(title) + ".md",
		MimeType: "text/markdown",
	}
}

// sanitizeFilename creates a safe filename from a title.
func sanitizeFilename(title string) string {
	result := ""
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			result += string(r)
		case r == ' ':
			result += "-"
		case r == '-', r == '_':
			result += string(r)
		default:
			// Skip other characters
		}
	}

	if len(result) > 50 {
		result = result[:50]
	}

	if result == "" {
		result = "document"
	}

	return result
}
