package exchange

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/todoapp/network-go/request"
)

// SendRequest executes d once. The client timeout is the descriptor's.
func SendRequest(ctx context.Context, d *request.Descriptor, options *Options) (*http.Response, error) {
	r, err := BuildHTTPRequest(ctx, d)
	if err != nil {
		return nil, err
	}
	client, err := BuildHTTPClient(options, d.Timeout())
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(r)
	if err != nil {
		return nil, errors.Wrap(err, "sending HTTP request")
	}

	return resp, nil
}
