// Package webicons resolves webicon identifiers into attribution pages.
//
// A request names a family (emojis or icons), an identifier and optionally a
// vendor. The identifier may be a canonical hex codepoint ("1f600"), a literal
// glyph or an emoji shortcode ("grinning"). Resolution loads the vendor
// metadata fresh, picks the family's default vendor when none is given,
// canonicalizes the identifier and renders the vendor's attribution page.
//
// Example usage:
//
//	client, err := webicons.New(webicons.WithConfigPath("./config/metadata.json"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	p, err := client.Resolve(ctx, webicons.Request{Family: "emojis", ID: "grinning"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(p.Title) // 😀 (1f600)
//	fmt.Println(p.HTML())
package webicons

import (
	"context"
	stderrors "errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/agentstation/webicons/pkg/errors"
	"github.com/agentstation/webicons/pkg/logging"
	"github.com/agentstation/webicons/pkg/metadata"
)

const instrumentationName = "github.com/agentstation/webicons"

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// Resolver turns requests into pages.
type Resolver interface {
	Resolve(ctx context.Context, req Request) (*Page, error)
}

// Configs provides read-through access to the vendor metadata.
type Configs interface {
	// Config loads the metadata document. Every call reads the source again.
	Config(ctx context.Context) (*metadata.Config, error)
}

// Client resolves webicons against a metadata source.
type Client interface {
	Resolver
	Configs
}

// client is the internal implementation of the Client interface.
type client struct {
	options *options
	tracer  trace.Tracer
}

// New creates a new Client with the given options.
func New(opts ...Option) (Client, error) {
	o, err := defaults().apply(opts...)
	if err != nil {
		return nil, fmt.Errorf("applying options: %w", err)
	}

	logging.Debug().
		Str("source", o.source.Name()).
		Dur("load_timeout", o.loadTimeout).
		Msg("Webicons client created")

	return &client{
		options: o,
		tracer:  otel.Tracer(instrumentationName),
	}, nil
}

// Config implements Configs.
func (c *client) Config(ctx context.Context) (*metadata.Config, error) {
	if c.options.loadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.options.loadTimeout)
		defer cancel()
	}
	cfg, err := metadata.Load(ctx, c.options.source)
	if err != nil && stderrors.Is(err, context.DeadlineExceeded) {
		return nil, errors.NewTimeoutError("metadata load", c.options.loadTimeout.String(), err)
	}
	return cfg, err
}
