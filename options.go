package webicons

import (
	"fmt"
	"time"

	"github.com/agentstation/webicons/internal/embedded"
	"github.com/agentstation/webicons/pkg/constants"
	"github.com/agentstation/webicons/pkg/emoji"
	"github.com/agentstation/webicons/pkg/metadata"
)

// Option is a function that configures a Client.
type Option func(*options) error

// options holds the client configuration.
type options struct {
	source      metadata.Source
	emojis      emoji.Table
	loadTimeout time.Duration
}

// defaults returns options pointing at ./config/metadata.json and the built-in emoji table.
func defaults() *options {
	return &options{
		source:      metadata.FileSource(constants.DefaultMetadataPath),
		loadTimeout: constants.DefaultLoadTimeout,
	}
}

// apply applies the given options in order.
func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	if o.emojis == nil {
		o.emojis = emoji.Default()
	}
	return o, nil
}

// WithSource reads vendor metadata from src.
func WithSource(src metadata.Source) Option {
	return func(o *options) error {
		if src == nil {
			return fmt.Errorf("metadata source cannot be nil")
		}
		o.source = src
		return nil
	}
}

// WithConfigPath reads vendor metadata from the file at path.
func WithConfigPath(path string) Option {
	return func(o *options) error {
		if path == "" {
			return fmt.Errorf("metadata path cannot be empty")
		}
		o.source = metadata.FileSource(path)
		return nil
	}
}

// WithEmbeddedConfig reads vendor metadata from the document compiled into the binary.
func WithEmbeddedConfig() Option {
	return func(o *options) error {
		o.source = embedded.Source()
		return nil
	}
}

// WithEmojiTable replaces the built-in emoji table.
func WithEmojiTable(t emoji.Table) Option {
	return func(o *options) error {
		if t == nil {
			return fmt.Errorf("emoji table cannot be nil")
		}
		o.emojis = t
		return nil
	}
}

// WithLoadTimeout bounds each metadata load. Zero disables the bound.
func WithLoadTimeout(d time.Duration) Option {
	return func(o *options) error {
		if d < 0 {
			return fmt.Errorf("load timeout must not be negative, got %s", d)
		}
		o.loadTimeout = d
		return nil
	}
}
