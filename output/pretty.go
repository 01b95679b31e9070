package output

import (
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strings"

	"code.cloudfoundry.org/bytefmt"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/todoapp/network-go/request"
)

type PrettyPrinter struct {
	writer         io.Writer
	plain          Printer
	aurora         aurora.Aurora
	headerPalette  *HeaderPalette
	requestPalette *RequestPalette
}

type PrettyPrinterConfig struct {
	Writer      io.Writer
	EnableColor bool
}

type HeaderPalette struct {
	Proto          aurora.Color
	Status         aurora.Color
	FieldName      aurora.Color
	FieldValue     aurora.Color
	FieldSeparator aurora.Color
}

var defaultHeaderPalette = HeaderPalette{
	Proto:          aurora.BlueFg,
	Status:         aurora.BrownFg | aurora.BoldFm,
	FieldName:      aurora.GrayFg,
	FieldValue:     aurora.CyanFg,
	FieldSeparator: aurora.GrayFg,
}

type RequestPalette struct {
	Banner      aurora.Color
	Label       aurora.Color
	Value       aurora.Color
	HeaderName  aurora.Color
	HeaderValue aurora.Color
	Placeholder aurora.Color
}

var defaultRequestPalette = RequestPalette{
	Banner:      aurora.MagentaFg | aurora.BoldFm,
	Label:       aurora.BlueFg,
	Value:       aurora.GreenFg,
	HeaderName:  aurora.GrayFg,
	HeaderValue: aurora.CyanFg,
	Placeholder: aurora.RedFg,
}

func NewPrettyPrinter(config PrettyPrinterConfig) Printer {
	return &PrettyPrinter{
		writer:         config.Writer,
		plain:          NewPlainPrinter(config.Writer),
		aurora:         aurora.NewAurora(config.EnableColor),
		headerPalette:  &defaultHeaderPalette,
		requestPalette: &defaultRequestPalette,
	}
}

func (p *PrettyPrinter) paint(pt part, s string) string {
	var color aurora.Color
	switch pt {
	case bannerPart:
		color = p.requestPalette.Banner
	case labelPart:
		color = p.requestPalette.Label
	case valuePart:
		color = p.requestPalette.Value
	case headerNamePart:
		color = p.requestPalette.HeaderName
	case headerValuePart:
		color = p.requestPalette.HeaderValue
	case placeholderPart:
		color = p.requestPalette.Placeholder
	default:
		return s
	}
	return p.aurora.Colorize(s, color).String()
}

func (p *PrettyPrinter) PrintRequest(d *request.Descriptor) error {
	if d == nil {
		_, err := fmt.Fprintln(p.writer, p.aurora.Colorize(nilDescriptor, p.requestPalette.Placeholder))
		if err != nil {
			return errors.Wrap(err, "printing request description")
		}
		return nil
	}
	_, err := io.WriteString(p.writer, describe(d, p.paint)+"\n")
	if err != nil {
		return errors.Wrap(err, "printing request description")
	}
	return nil
}

func (p *PrettyPrinter) PrintStatusLine(proto string, status string, statusCode int) error {
	fmt.Fprintf(p.writer, "%s %s\n",
		p.aurora.Colorize(proto, p.headerPalette.Proto),
		p.aurora.Colorize(status, p.headerPalette.Status))
	return nil
}

func (p *PrettyPrinter) PrintHeader(header http.Header) error {
	for _, name := range sortedNames(header) {
		for _, value := range header[name] {
			fmt.Fprintf(p.writer, "%s%s %s\n",
				p.aurora.Colorize(name, p.headerPalette.FieldName),
				p.aurora.Colorize(":", p.headerPalette.FieldSeparator),
				p.aurora.Colorize(value, p.headerPalette.FieldValue))
		}
	}

	fmt.Fprintln(p.writer)
	return nil
}

func (p *PrettyPrinter) PrintBody(body io.Reader, contentType string) error {
	if isTextual(contentType) {
		return p.plain.PrintBody(body, contentType)
	}

	n, err := io.Copy(ioutil.Discard, body)
	if err != nil {
		return errors.Wrap(err, "reading response body")
	}
	fmt.Fprintf(p.writer, "%s\n", p.aurora.Colorize(
		fmt.Sprintf("+-----------------------------------------+\n"+
			"| NOTE: binary data not shown in terminal |\n"+
			"+-----------------------------------------+ (%s)", bytefmt.ByteSize(uint64(n))),
		p.requestPalette.Placeholder))
	return nil
}

// isTextual reports whether a body of contentType is safe to write to a terminal.
// An empty content type counts as textual.
func isTextual(contentType string) bool {
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	if semicolon := strings.Index(contentType, ";"); semicolon != -1 {
		contentType = strings.TrimSpace(contentType[:semicolon])
	}

	switch {
	case contentType == "":
		return true
	case strings.HasPrefix(contentType, "text/"):
		return true
	case strings.HasSuffix(contentType, "json"), strings.HasSuffix(contentType, "+xml"):
		return true
	}
	switch contentType {
	case "application/xml", "application/javascript", "application/x-www-form-urlencoded":
		return true
	}
	return false
}
