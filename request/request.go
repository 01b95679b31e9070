package request

import (
	"net/url"
	"time"
)

type Method string

const (
	MethodGet     Method = "GET"
	MethodHead    Method = "HEAD"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodPatch   Method = "PATCH"
	MethodDelete  Method = "DELETE"
	MethodOptions Method = "OPTIONS"
	MethodConnect Method = "CONNECT"
	MethodTrace   Method = "TRACE"
	MethodQuery   Method = "QUERY"
)

// CachePolicy tells the transport whether a locally cached response may be used.
type CachePolicy int

const (
	UseProtocolCachePolicy CachePolicy = iota
	ReloadIgnoringCacheData
)

func (p CachePolicy) String() string {
	switch p {
	case UseProtocolCachePolicy:
		return "use-protocol-cache-policy"
	case ReloadIgnoringCacheData:
		return "reload-ignoring-cache-data"
	default:
		return "unknown"
	}
}

// DefaultTimeout is attached to every descriptor.
const DefaultTimeout = 60 * time.Second

type QueryItem struct {
	Name  string
	Value string
}

// Spec describes an HTTP call before its URL is resolved.
type Spec struct {
	BaseURL    string
	Path       string
	Method     Method
	Header     map[string]string
	QueryItems []QueryItem
	Body       []byte
}

// Descriptor is a resolved request ready for a transport. Its fields are
// fixed by Build; the accessors hand out copies.
type Descriptor struct {
	method      Method
	url         *url.URL
	header      map[string]string
	body        []byte
	timeout     time.Duration
	cachePolicy CachePolicy
}

func (d *Descriptor) Method() Method {
	return d.method
}

// URL returns the resolved URL, or "" for a descriptor that was not built.
func (d *Descriptor) URL() string {
	if d.url == nil {
		return ""
	}
	return d.url.String()
}

func (d *Descriptor) ParsedURL() *url.URL {
	if d.url == nil {
		return nil
	}
	u := *d.url
	if d.url.User != nil {
		user := *d.url.User
		u.User = &user
	}
	return &u
}

func (d *Descriptor) Header() map[string]string {
	if d.header == nil {
		return nil
	}
	header := make(map[string]string, len(d.header))
	for name, value := range d.header {
		header[name] = value
	}
	return header
}

// Body returns a copy of the body; nil when the request has none. A
// present but empty body is returned as an empty non-nil slice.
func (d *Descriptor) Body() []byte {
	if d.body == nil {
		return nil
	}
	body := make([]byte, len(d.body))
	copy(body, d.body)
	return body
}

func (d *Descriptor) Timeout() time.Duration {
	return d.timeout
}

func (d *Descriptor) CachePolicy() CachePolicy {
	return d.cachePolicy
}
