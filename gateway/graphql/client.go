// Package graphql implements the backend gateway over the platform's
// GraphQL endpoint. All wire-level naming and casing differences are
// normalized here so nothing above this package sees them.
package graphql

import (
	"context"
	"net/http"
	"strings"

	"github.com/machinebox/graphql"

	"github.com/freementors/sdk-go/core"
)

// Client talks to the GraphQL endpoint and implements core.Gateway.
// The bearer token is read from the token store on every request, so a
// Login in one component is immediately visible to all others sharing
// the store.
type Client struct {
	endpoint string
	gql      *graphql.Client
	tokens   core.TokenStore
}

var _ core.Gateway = (*Client)(nil)

type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client, mainly for tests
// and custom transports.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.gql = graphql.NewClient(c.endpoint, graphql.WithHTTPClient(httpClient))
	}
}

func NewClient(endpoint string, tokens core.TokenStore, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		gql:      graphql.NewClient(endpoint),
		tokens:   tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// run executes one GraphQL operation with the stored bearer token
// attached and translates every failure into an APIError.
func (c *Client) run(ctx context.Context, req *graphql.Request, out interface{}) error {
	token, err := c.tokens.Load()
	if err != nil {
		return core.TransportError(err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if err := c.gql.Run(ctx, req, out); err != nil {
		return classify(err)
	}
	return nil
}

// classify buckets a request failure. The GraphQL client prefixes
// server-side rejections with "graphql: "; anything else never reached
// the server.
func classify(err error) *core.APIError {
	const prefix = "graphql: "
	msg := err.Error()
	if !strings.HasPrefix(msg, prefix) {
		return core.TransportError(err)
	}
	message := strings.TrimPrefix(msg, prefix)
	return core.RemoteError(kindOf(message), message)
}

// kindOf maps the server's message text onto an error kind. The
// backend returns plain strings, so keyword matching is the only
// signal available.
func kindOf(message string) core.ErrorKind {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "not authorized"),
		strings.Contains(lower, "permission"),
		strings.Contains(lower, "logged in"),
		strings.Contains(lower, "credentials"),
		strings.Contains(lower, "signature"),
		strings.Contains(lower, "token"):
		return core.KindAuthorization
	case strings.Contains(lower, "not found"),
		strings.Contains(lower, "does not exist"):
		return core.KindNotFound
	case strings.Contains(lower, "already exists"):
		return core.KindConflict
	case strings.Contains(lower, "must be"),
		strings.Contains(lower, "invalid"),
		strings.Contains(lower, "required"),
		strings.Contains(lower, "incomplete"):
		return core.KindValidation
	}
	return core.KindConflict
}
