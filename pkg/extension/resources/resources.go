// Package resources stores arbitrary documents on the server side
package resources

import (
	"context"
	"strconv"

	"github.com/8thgencore/blip/pkg/extension"
	"github.com/8thgencore/blip/pkg/lime"
)

const (
	resourcesURI = "/resources"
	resourceURI  = "/resources/{{id}}"
)

// Extension sends resource commands
type Extension struct {
	*extension.Base
}

// New creates a resources extension
func New(client extension.Processor, opts ...extension.Option) *Extension {
	return &Extension{Base: extension.New(client, opts...)}
}

// GetResource gets a stored resource
func (e *Extension) GetResource(ctx context.Context, id string) (*lime.Command, error) {
	return e.ProcessCommand(ctx, e.GetCommand(e.uri(id)))
}

// GetResourceIDs gets a page of stored resource ids
func (e *Extension) GetResourceIDs(ctx context.Context, skip, take int) (*lime.Command, error) {
	uri := e.BuildResourceQuery(resourcesURI, []extension.QueryParam{
		{Key: "$skip", Value: strconv.Itoa(skip)},
		{Key: "$take", Value: strconv.Itoa(take)},
	})
	return e.ProcessCommand(ctx, e.GetCommand(uri))
}

// SetResource stores resource under id
func (e *Extension) SetResource(ctx context.Context, id string, resource any, mediaType string) (*lime.Command, error) {
	return e.ProcessCommand(ctx, e.SetCommand(e.uri(id), resource, extension.WithType(mediaType)))
}

// DeleteResource removes a stored resource
func (e *Extension) DeleteResource(ctx context.Context, id string) (*lime.Command, error) {
	return e.ProcessCommand(ctx, e.DeleteCommand(e.uri(id)))
}

func (e *Extension) uri(id string) string {
	return e.BuildURI(resourceURI, map[string]any{"id": id})
}
