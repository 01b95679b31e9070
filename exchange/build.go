package exchange

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"sort"

	"github.com/pkg/errors"

	"github.com/todoapp/network-go/request"
	"github.com/todoapp/network-go/version"
)

// BuildHTTPRequest turns a descriptor into a request for net/http.
// A nil descriptor means the build failed and nothing may be sent.
func BuildHTTPRequest(ctx context.Context, d *request.Descriptor) (*http.Request, error) {
	if d == nil {
		return nil, errors.New("refusing to send a request that failed to build")
	}

	u := d.ParsedURL()
	if u == nil {
		return nil, errors.New("request descriptor has no URL")
	}

	header := buildHTTPHeader(d)

	r := &http.Request{
		Method:     string(d.Method()),
		URL:        u,
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     header,
		Host:       header.Get("Host"),
	}
	if body := d.Body(); body != nil {
		r.Body = http.NoBody
		if len(body) > 0 {
			r.ContentLength = int64(len(body))
			r.Body = newBodyReader(body)
			r.GetBody = func() (io.ReadCloser, error) {
				return newBodyReader(body), nil
			}
		}
	}
	return r.WithContext(ctx), nil
}

func buildHTTPHeader(d *request.Descriptor) http.Header {
	// Names differing only in case collapse into one field; the last in
	// byte order wins.
	fields := d.Header()
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	header := make(http.Header)
	for _, name := range names {
		header.Set(name, fields[name])
	}

	if header.Get("User-Agent") == "" {
		header.Set("User-Agent", fmt.Sprintf("todonet/%s", version.Current()))
	}
	if d.CachePolicy() == request.ReloadIgnoringCacheData && header.Get("Cache-Control") == "" {
		header.Set("Cache-Control", "no-cache")
	}
	return header
}

func newBodyReader(body []byte) io.ReadCloser {
	return ioutil.NopCloser(bytes.NewReader(body))
}
