package webicons

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agentstation/webicons/pkg/emoji"
	"github.com/agentstation/webicons/pkg/errors"
	"github.com/agentstation/webicons/pkg/logging"
	"github.com/agentstation/webicons/pkg/metadata"
	"github.com/agentstation/webicons/pkg/page"
	"github.com/agentstation/webicons/pkg/token"
)

// Request names the webicon to resolve. An empty Vendor selects the family default.
type Request struct {
	Family string `json:"family"`
	ID     string `json:"id"`
	Vendor string `json:"vendor,omitempty"`
}

// Page is a resolved webicon.
type Page struct {
	Family   metadata.Family         `json:"family" yaml:"family"`
	ID       string                  `json:"id" yaml:"id"`
	Glyph    string                  `json:"glyph,omitempty" yaml:"glyph,omitempty"`
	Title    string                  `json:"title" yaml:"title"`
	Vendor   string                  `json:"vendor" yaml:"vendor"`
	Metadata metadata.VendorMetadata `json:"metadata" yaml:"metadata"`

	document *page.Document
}

// Document returns the rendered attribution page.
func (p *Page) Document() *page.Document {
	return p.document
}

// HTML returns the serialized attribution page.
func (p *Page) HTML() string {
	return p.document.String()
}

// Resolve implements Resolver.
func (c *client) Resolve(ctx context.Context, req Request) (*Page, error) {
	ctx, span := c.tracer.Start(ctx, "webicons.Resolve", trace.WithAttributes(
		attribute.String("webicons.family", req.Family),
		attribute.String("webicons.id", req.ID),
		attribute.String("webicons.vendor", req.Vendor),
	))
	defer span.End()

	p, err := c.resolve(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, errors.Kind(err))
		return nil, err
	}
	span.SetAttributes(
		attribute.String("webicons.canonical_id", p.ID),
		attribute.String("webicons.resolved_vendor", p.Vendor),
	)
	return p, nil
}

func (c *client) resolve(ctx context.Context, req Request) (*Page, error) {
	family, err := metadata.ParseFamily(req.Family)
	if err != nil {
		return nil, err
	}
	ctx = logging.WithFamily(ctx, family.String())
	log := logging.FromContext(ctx)

	cfg, err := c.Config(ctx)
	if err != nil {
		return nil, err
	}

	vendor := req.Vendor
	if vendor == "" {
		if vendor, err = cfg.DefaultVendor(family); err != nil {
			return nil, err
		}
		log.Debug().Str("vendor", vendor).Msg("Using default vendor")
	}

	id, err := token.Normalize(c.options.emojis, req.ID, family)
	if err != nil {
		return nil, err
	}

	p := &Page{Family: family, ID: id, Vendor: vendor, Title: id}
	if family == metadata.Emojis {
		if p.Glyph, err = emoji.CodepointToGlyph(c.options.emojis, id); err != nil {
			return nil, err
		}
		p.Title = fmt.Sprintf("%s (%s)", p.Glyph, id)
	}

	if p.Metadata, err = cfg.Metadata(family, vendor); err != nil {
		return nil, err
	}
	p.document = page.Render(p.Metadata, p.Title)

	log.Debug().
		Str("vendor", vendor).
		Str("id", id).
		Str("input", req.ID).
		Msg("Resolved webicon")
	return p, nil
}
