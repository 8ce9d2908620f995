// Package contacts manages the contact roster of a bot
package contacts

import (
	"context"
	"strconv"

	"github.com/8thgencore/blip/pkg/extension"
	"github.com/8thgencore/blip/pkg/lime"
)

const (
	// Destination is the address of the CRM postmaster
	Destination = "postmaster@crm.msging.net"
	// MediaType is the media type of a contact resource
	MediaType = "application/vnd.lime.contact+json"

	contactsURI = "/contacts"
	contactURI  = "/contacts/{{identity}}"
)

// Contact is a roster entry
type Contact struct {
	Identity    string            `json:"identity"`
	Name        string            `json:"name,omitempty"`
	Email       string            `json:"email,omitempty"`
	PhoneNumber string            `json:"phoneNumber,omitempty"`
	City        string            `json:"city,omitempty"`
	Extras      map[string]string `json:"extras,omitempty"`
}

// Extension sends contact commands
type Extension struct {
	*extension.Base
}

// New creates a contacts extension addressed to Destination
func New(client extension.Processor, opts ...extension.Option) *Extension {
	opts = append([]extension.Option{extension.WithTo(Destination)}, opts...)
	return &Extension{Base: extension.New(client, opts...)}
}

// GetContact gets a contact by identity
func (e *Extension) GetContact(ctx context.Context, identity string) (*lime.Command, error) {
	uri := e.BuildURI(contactURI, map[string]any{"identity": identity})
	return e.ProcessCommand(ctx, e.GetCommand(uri))
}

// GetContacts gets a page of contacts
func (e *Extension) GetContacts(ctx context.Context, skip, take int) (*lime.Command, error) {
	uri := e.BuildResourceQuery(contactsURI, []extension.QueryParam{
		{Key: "$skip", Value: strconv.Itoa(skip)},
		{Key: "$take", Value: strconv.Itoa(take)},
	})
	return e.ProcessCommand(ctx, e.GetCommand(uri))
}

// SetContact creates or replaces a contact
func (e *Extension) SetContact(ctx context.Context, contact Contact) (*lime.Command, error) {
	return e.ProcessCommand(ctx, e.SetCommand(contactsURI, contact, extension.WithType(MediaType)))
}

// MergeContact updates the given fields of a contact
func (e *Extension) MergeContact(ctx context.Context, contact Contact) (*lime.Command, error) {
	return e.ProcessCommand(ctx, e.MergeCommand(contactsURI, contact, extension.WithType(MediaType)))
}

// DeleteContact removes a contact
func (e *Extension) DeleteContact(ctx context.Context, identity string) (*lime.Command, error) {
	uri := e.BuildURI(contactURI, map[string]any{"identity": identity})
	return e.ProcessCommand(ctx, e.DeleteCommand(uri))
}
