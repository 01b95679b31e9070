package exchange

import "net/http"

type Options struct {
	FollowRedirects bool
	SkipVerify      bool
	ForceHTTP1      bool
	Transport       http.RoundTripper
}
