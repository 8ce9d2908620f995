// Package extension provides the base every SDK extension is built on: it
// creates LIME commands and hands them to a Processor.
package extension

import (
	"context"
	"log/slog"

	"github.com/8thgencore/blip/pkg/lime"
	"github.com/8thgencore/blip/pkg/logger/sl"
)

// Processor sends a command and returns the matching response
type Processor interface {
	ProcessCommand(ctx context.Context, cmd *lime.Command) (*lime.Command, error)
}

// Base builds commands and delegates their processing to a Processor
type Base struct {
	client Processor
	to     string
	log    *slog.Logger
}

// Option configures a Base
type Option func(*Base)

// WithTo sets the default destination of every created command
func WithTo(to string) Option {
	return func(b *Base) {
		b.to = to
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(log *slog.Logger) Option {
	return func(b *Base) {
		if log != nil {
			b.log = log
		}
	}
}

// New creates a new Base
func New(client Processor, opts ...Option) *Base {
	b := &Base{
		client: client,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// To returns the default destination, empty when none was configured
func (b *Base) To() string {
	return b.to
}

// CommandOption sets an optional field of a created command
type CommandOption func(*commandOptions)

type commandOptions struct {
	id        string
	mediaType string
}

// WithID sets the command id instead of generating one
func WithID(id string) CommandOption {
	return func(o *commandOptions) {
		o.id = id
	}
}

// WithType sets the media type of the command resource
func WithType(mediaType string) CommandOption {
	return func(o *commandOptions) {
		o.mediaType = mediaType
	}
}

// GetCommand creates a get command
func (b *Base) GetCommand(uri string, opts ...CommandOption) *lime.Command {
	return b.newCommand(lime.MethodGet, uri, nil, opts)
}

// SetCommand creates a set command carrying resource
func (b *Base) SetCommand(uri string, resource any, opts ...CommandOption) *lime.Command {
	return b.newCommand(lime.MethodSet, uri, resource, opts)
}

// MergeCommand creates a merge command carrying resource
func (b *Base) MergeCommand(uri string, resource any, opts ...CommandOption) *lime.Command {
	return b.newCommand(lime.MethodMerge, uri, resource, opts)
}

// DeleteCommand creates a delete command
func (b *Base) DeleteCommand(uri string, opts ...CommandOption) *lime.Command {
	return b.newCommand(lime.MethodDelete, uri, nil, opts)
}

func (b *Base) newCommand(method lime.Method, uri string, resource any, opts []CommandOption) *lime.Command {
	o := commandOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = lime.NewID()
	}

	cmd := lime.NewCommand(method, uri)
	cmd.ID = o.id
	cmd.To = b.to
	if method == lime.MethodSet || method == lime.MethodMerge {
		cmd.Type = o.mediaType
		cmd.Resource = resource
	}

	return cmd
}

// ProcessCommand assigns an id to cmd when it has none and sends it through
// the client. The client's error is returned as is.
func (b *Base) ProcessCommand(ctx context.Context, cmd *lime.Command) (*lime.Command, error) {
	if cmd == nil {
		return nil, ErrNilCommand
	}
	if cmd.ID == "" {
		cmd.ID = lime.NewID()
	}

	b.log.Debug("Processing command", sl.Command(cmd))

	return b.client.ProcessCommand(ctx, cmd)
}

// Result is the outcome of an asynchronous ProcessCommand
type Result struct {
	Command *lime.Command
	Err     error
}

// ProcessCommandAsync is ProcessCommand running in its own goroutine. The id
// is assigned before it returns. The channel yields one Result and is closed.
func (b *Base) ProcessCommandAsync(ctx context.Context, cmd *lime.Command) <-chan Result {
	results := make(chan Result, 1)
	if cmd != nil && cmd.ID == "" {
		cmd.ID = lime.NewID()
	}

	go func() {
		defer close(results)
		resp, err := b.ProcessCommand(ctx, cmd)
		results <- Result{Command: resp, Err: err}
	}()

	return results
}
