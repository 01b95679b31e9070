package request

import (
	"net/url"
	"strings"

	"code.cloudfoundry.org/lager"
	"github.com/pkg/errors"
)

// Builder resolves Specs into Descriptors. It keeps no per-call state and
// may be shared between goroutines.
type Builder struct {
	logger lager.Logger
}

// NewBuilder returns a Builder that reports build failures to logger.
// A nil logger discards them.
func NewBuilder(logger lager.Logger) *Builder {
	if logger == nil {
		logger = lager.NewLogger("request")
	}
	return &Builder{logger: logger}
}

var discardBuilder = NewBuilder(nil)

// Build is a shorthand for a Builder without a log sink.
func Build(spec Spec) (*Descriptor, error) {
	return discardBuilder.Build(spec)
}

func (b *Builder) Build(spec Spec) (*Descriptor, error) {
	logger := b.logger.Session("build-request", lager.Data{
		"method":   string(spec.Method),
		"base_url": spec.BaseURL,
		"path":     spec.Path,
	})

	u, err := resolveURL(spec)
	if err != nil {
		logger.Error("invalid-url", err)
		return nil, err
	}

	d := &Descriptor{
		method:      spec.Method,
		url:         u,
		header:      copyHeader(spec.Header),
		timeout:     DefaultTimeout,
		cachePolicy: ReloadIgnoringCacheData,
	}
	if spec.Body != nil {
		d.body = make([]byte, len(spec.Body))
		copy(d.body, spec.Body)
	}

	logger.Debug("built", lager.Data{"url": d.URL()})
	return d, nil
}

func resolveURL(spec Spec) (*url.URL, error) {
	if spec.BaseURL == "" {
		return nil, newError(InvalidURL, spec, errors.New("base URL is empty"))
	}

	u, err := url.Parse(spec.BaseURL)
	if err != nil {
		return nil, newError(InvalidURL, spec, errors.Wrap(err, "parsing base URL"))
	}

	// The path is appended as is; callers own the slashes.
	u.Path += spec.Path
	u.RawPath = ""
	u.RawQuery = encodeQueryItems(spec.QueryItems)
	u.ForceQuery = false

	if u.Scheme == "" || u.Host == "" {
		return nil, newError(InvalidURL, spec, errors.New("URL must have a scheme and a host"))
	}
	if u.Path != "" && !strings.HasPrefix(u.Path, "/") {
		return nil, newError(InvalidURL, spec, errors.Errorf("path must begin with '/' when the URL has a host: %q", u.Path))
	}

	resolved, err := url.Parse(u.String())
	if err != nil {
		return nil, newError(InvalidURL, spec, errors.Wrap(err, "materializing URL"))
	}
	return resolved, nil
}

// encodeQueryItems keeps the caller's order; url.Values.Encode would sort by key.
func encodeQueryItems(items []QueryItem) string {
	if len(items) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(item.Name))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(item.Value))
	}
	return sb.String()
}

func copyHeader(header map[string]string) map[string]string {
	if header == nil {
		return nil
	}
	copied := make(map[string]string, len(header))
	for name, value := range header {
		copied[name] = value
	}
	return copied
}
