package output

import (
	"net/http"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/todoapp/network-go/request"
)

func buildDescriptor(t *testing.T, spec request.Spec) *request.Descriptor {
	d, err := request.Build(spec)
	if err != nil {
		t.Fatalf("failed to build request: %+v", err)
	}
	return d
}

func TestPrettyPrinter_PrintStatusLine(t *testing.T) {
	// Setup
	var buffer strings.Builder
	printer := NewPrettyPrinter(PrettyPrinterConfig{
		Writer:      &buffer,
		EnableColor: false,
	})
	response := &http.Response{
		Status:     "200 OK",
		StatusCode: 200,
		Proto:      "HTTP/1.1",
	}

	// Exercise
	err := printer.PrintStatusLine(response.Proto, response.Status, response.StatusCode)
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	// Verify
	expected := "HTTP/1.1 200 OK\n"
	if buffer.String() != expected {
		t.Errorf("unexpected output: expected=%s, actual=%s", expected, buffer.String())
	}
}

func TestPrettyPrinter_PrintRequest(t *testing.T) {
	// Setup
	var buffer strings.Builder
	printer := NewPrettyPrinter(PrettyPrinterConfig{
		Writer:      &buffer,
		EnableColor: false,
	})
	d := buildDescriptor(t, request.Spec{
		BaseURL:    "http://example.com",
		Path:       "/hello",
		Method:     request.MethodGet,
		Header:     map[string]string{"Accept": "*/*"},
		QueryItems: []request.QueryItem{{Name: "foo", Value: "bar"}},
	})

	// Exercise
	err := printer.PrintRequest(d)
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	// Verify
	expected := Describe(d) + "\n"
	if buffer.String() != expected {
		t.Errorf("unexpected output: expected=\n%s\nactual=\n%s\n", expected, buffer.String())
	}
}

func TestPrettyPrinter_PrintRequest_Color(t *testing.T) {
	// Setup
	var buffer strings.Builder
	printer := NewPrettyPrinter(PrettyPrinterConfig{
		Writer:      &buffer,
		EnableColor: true,
	})
	d := buildDescriptor(t, request.Spec{
		BaseURL: "http://example.com",
		Path:    "/hello",
		Method:  request.MethodDelete,
	})

	// Exercise
	err := printer.PrintRequest(d)
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	// Verify
	out := buffer.String()
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("expected ANSI escapes in colored output: %q", out)
	}
	for _, s := range []string{"REQUEST INFO START", "DELETE", "http://example.com/hello", "--> EMPTY BODY)"} {
		if !strings.Contains(out, s) {
			t.Errorf("colored output lacks %q: %q", s, out)
		}
	}
}

func TestPrettyPrinter_PrintRequest_Nil(t *testing.T) {
	var buffer strings.Builder
	printer := NewPrettyPrinter(PrettyPrinterConfig{Writer: &buffer})

	if err := printer.PrintRequest(nil); err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	expected := "Invalid urlRequest: urlRequest is nil.\n"
	if buffer.String() != expected {
		t.Errorf("unexpected output: expected=%q, actual=%q", expected, buffer.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestPrettyPrinter_PrintRequest_WriteError(t *testing.T) {
	printer := NewPrettyPrinter(PrettyPrinterConfig{Writer: failingWriter{}})

	if err := printer.PrintRequest(nil); err == nil {
		t.Errorf("expected a write error for a nil descriptor")
	}
	d := buildDescriptor(t, request.Spec{BaseURL: "http://example.com", Method: request.MethodGet})
	if err := printer.PrintRequest(d); err == nil {
		t.Errorf("expected a write error for a descriptor")
	}
}

func TestPrettyPrinter_PrintHeader(t *testing.T) {
	// Setup
	var buffer strings.Builder
	printer := NewPrettyPrinter(PrettyPrinterConfig{
		Writer:      &buffer,
		EnableColor: false,
	})
	header := http.Header{
		"Content-Type": []string{"application/json"},
		"X-Foo":        []string{"hello", "world", "aaa"},
		"Date":         []string{"Tue, 12 Feb 2019 16:01:54 GMT"},
	}

	// Exercise
	err := printer.PrintHeader(header)
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	// Verify
	expected := strings.Join([]string{
		"Content-Type: application/json\n",
		"Date: Tue, 12 Feb 2019 16:01:54 GMT\n",
		"X-Foo: hello\n",
		"X-Foo: world\n",
		"X-Foo: aaa\n",
		"\n",
	}, "")
	if buffer.String() != expected {
		t.Errorf("unexpected output: expected=\n%s\n (len=%d)\nactual=\n%s\n (len=%d)",
			expected, len(expected), buffer.String(), len(buffer.String()))
	}
}

func TestPrettyPrinter_PrintBody(t *testing.T) {
	testCases := []struct {
		title       string
		body        string
		contentType string
		expected    string
	}{
		{
			title:       "JSON is printed verbatim",
			body:        `{"zzz": "hello", "aaa": [3.14, true]}`,
			contentType: "application/json; charset=utf-8",
			expected:    `{"zzz": "hello", "aaa": [3.14, true]}`,
		},
		{
			title:       "Plain text",
			body:        "hello\nworld\n",
			contentType: "text/plain",
			expected:    "hello\nworld\n",
		},
		{
			title:       "No content type",
			body:        "xyz",
			contentType: "",
			expected:    "xyz",
		},
		{
			title:       "Body is empty",
			body:        "",
			contentType: "application/json",
			expected:    "",
		},
		{
			title:       "Binary",
			body:        strings.Repeat("\x00", 2048),
			contentType: "image/png",
			expected: strings.Join([]string{
				"+-----------------------------------------+",
				"| NOTE: binary data not shown in terminal |",
				"+-----------------------------------------+ (2K)",
				"",
			}, "\n"),
		},
	}

	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			// Setup
			var buffer strings.Builder
			printer := NewPrettyPrinter(PrettyPrinterConfig{
				Writer:      &buffer,
				EnableColor: false,
			})

			// Exercise
			err := printer.PrintBody(strings.NewReader(tt.body), tt.contentType)
			if err != nil {
				t.Fatalf("unexpected error: err=%+v", err)
			}

			// Verify
			if buffer.String() != tt.expected {
				t.Errorf("unexpected output: expected=\n%s\nactual=\n%s\n", tt.expected, buffer.String())
			}
		})
	}
}

func TestIsTextual(t *testing.T) {
	textual := []string{"", "text/html", "application/json", "application/problem+json", "application/atom+xml", "Application/XML"}
	for _, contentType := range textual {
		if !isTextual(contentType) {
			t.Errorf("didn't detect %q as textual", contentType)
		}
	}
	binary := []string{"image/png", "application/octet-stream", "application/pdf"}
	for _, contentType := range binary {
		if isTextual(contentType) {
			t.Errorf("detected %q as textual", contentType)
		}
	}
}

func TestPlainPrinter(t *testing.T) {
	// Setup
	var buffer strings.Builder
	printer := NewPlainPrinter(&buffer)
	d := buildDescriptor(t, request.Spec{
		BaseURL: "http://example.com",
		Path:    "/todos",
		Method:  request.MethodPost,
		Body:    []byte("hi"),
	})

	// Exercise
	if err := printer.PrintRequest(d); err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}
	if err := printer.PrintStatusLine("HTTP/1.1", "201 Created", 201); err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}
	if err := printer.PrintHeader(http.Header{"Location": []string{"/todos/1"}}); err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}
	if err := printer.PrintBody(strings.NewReader("ok"), "text/plain"); err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	// Verify
	expected := Describe(d) + "\n" + "HTTP/1.1 201 Created\n" + "Location: /todos/1\n\n" + "ok"
	if buffer.String() != expected {
		t.Errorf("unexpected output: expected=\n%s\nactual=\n%s\n", expected, buffer.String())
	}
}
