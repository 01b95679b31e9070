package output

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/todoapp/network-go/request"
)

const (
	nilDescriptor = "Invalid urlRequest: urlRequest is nil."

	bannerStart = "================ REQUEST INFO START ================"
	bannerEnd   = "================= REQUEST INFO END ================="

	invalidMethod = "--> Invalid method"
	invalidURL    = "--> Invalid URL"
	invalidBody   = "--> INVALID BODY"
	emptyBody     = "--> EMPTY BODY)" // the trailing paren is part of the established log format
)

type part int

const (
	bannerPart part = iota
	labelPart
	valuePart
	headerNamePart
	headerValuePart
	placeholderPart
)

// painter decorates one part of the description. Describe uses plainPaint.
type painter func(p part, s string) string

func plainPaint(_ part, s string) string {
	return s
}

// Describe renders d as a multi-line block for diagnostic logs. It never
// fails: missing pieces are replaced by placeholders.
func Describe(d *request.Descriptor) string {
	return describe(d, plainPaint)
}

func describe(d *request.Descriptor, paint painter) string {
	if d == nil {
		return nilDescriptor
	}

	var sb strings.Builder
	sb.WriteString("\n\n")
	sb.WriteString(paint(bannerPart, bannerStart))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%s\t\t%s\n", paint(labelPart, "METHOD:"), describeMethod(d, paint))
	fmt.Fprintf(&sb, "%s\t\t%s\n", paint(labelPart, "URL:"), describeURL(d, paint))
	fmt.Fprintf(&sb, "%s\t%s\n", paint(labelPart, "HEADERS:"), describeHeader(d.Header(), paint))
	fmt.Fprintf(&sb, "%s\t%s\n", paint(labelPart, "BODY:"), describeBody(d.Body(), paint))
	sb.WriteString(paint(bannerPart, bannerEnd))
	sb.WriteString("\n")
	return sb.String()
}

func describeMethod(d *request.Descriptor, paint painter) string {
	if d.Method() == "" {
		return paint(placeholderPart, invalidMethod)
	}
	return paint(valuePart, string(d.Method()))
}

func describeURL(d *request.Descriptor, paint painter) string {
	if d.URL() == "" {
		return paint(placeholderPart, invalidURL)
	}
	return paint(valuePart, d.URL())
}

func describeHeader(header map[string]string, paint painter) string {
	names := make([]string, 0, len(header))
	for name := range header {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]string, 0, len(names))
	for _, name := range names {
		fields = append(fields, fmt.Sprintf("\t%s: %s",
			paint(headerNamePart, name),
			paint(headerValuePart, header[name])))
	}
	return "[\n" + strings.Join(fields, ",\n") + "\n]"
}

func describeBody(body []byte, paint painter) string {
	switch {
	case body == nil:
		return paint(placeholderPart, emptyBody)
	case !utf8.Valid(body):
		return paint(placeholderPart, invalidBody)
	default:
		return paint(valuePart, string(body))
	}
}
