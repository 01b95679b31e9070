package exchange

import (
	"crypto/tls"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const maxRedirects = 10

// BuildHTTPClient returns a client for a single exchange. timeout bounds the
// whole exchange, redirects included.
func BuildHTTPClient(options *Options, timeout time.Duration) (*http.Client, error) {
	return &http.Client{
		Transport:     buildTransport(options),
		CheckRedirect: redirectPolicy(options.FollowRedirects),
		Timeout:       timeout,
	}, nil
}

func redirectPolicy(follow bool) func(*http.Request, []*http.Request) error {
	if !follow {
		return func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}
	return func(req *http.Request, via []*http.Request) error {
		if len(via) >= maxRedirects {
			return errors.Errorf("stopped after %d redirects", maxRedirects)
		}
		return nil
	}
}

// buildTransport configures a copy of the caller's *http.Transport, or of
// http.DefaultTransport when none is given. Other round trippers are used as is.
func buildTransport(options *Options) http.RoundTripper {
	base := options.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	httpTransport, ok := base.(*http.Transport)
	if !ok {
		return base
	}

	transport := httpTransport.Clone()
	if transport.TLSClientConfig == nil {
		transport.TLSClientConfig = &tls.Config{}
	}
	transport.TLSClientConfig.InsecureSkipVerify = options.SkipVerify
	if options.ForceHTTP1 {
		transport.ForceAttemptHTTP2 = false
		transport.TLSClientConfig.NextProtos = []string{"http/1.1", "http/1.0"}
		transport.TLSNextProto = make(map[string]func(string, *tls.Conn) http.RoundTripper)
	}
	return transport
}
