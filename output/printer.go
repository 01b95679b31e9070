package output

import (
	"io"
	"net/http"

	"github.com/todoapp/network-go/request"
)

type Printer interface {
	PrintRequest(d *request.Descriptor) error
	PrintStatusLine(proto string, status string, statusCode int) error
	PrintHeader(header http.Header) error
	PrintBody(body io.Reader, contentType string) error
}
