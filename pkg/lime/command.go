// Package lime contains the command envelope of the LIME messaging protocol.
package lime

import (
	"fmt"

	"github.com/google/uuid"
)

// Reason describes why a command failed
type Reason struct {
	Code        int    `json:"code"`
	Description string `json:"description,omitempty"`
}

// Command is a request or response envelope
type Command struct {
	ID       string            `json:"id,omitempty"`
	From     string            `json:"from,omitempty"`
	To       string            `json:"to,omitempty"`
	Method   Method            `json:"method"`
	URI      string            `json:"uri,omitempty"`
	Type     string            `json:"type,omitempty"`
	Resource any               `json:"resource,omitempty"`
	Status   Status            `json:"status,omitempty"`
	Reason   *Reason           `json:"reason,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// NewCommand creates a command without an id
func NewCommand(method Method, uri string) *Command {
	return &Command{Method: method, URI: uri}
}

// NewID returns a fresh command id
func NewID() string {
	return uuid.NewString()
}

// IsSuccess reports whether the command is a successful response
func (c *Command) IsSuccess() bool {
	return c.Status == StatusSuccess
}

// Err returns a *ReasonError for failed responses and nil otherwise
func (c *Command) Err() error {
	if c.Status != StatusFailure {
		return nil
	}

	reason := Reason{Code: ReasonGeneralError}
	if c.Reason != nil {
		reason = *c.Reason
	}

	return &ReasonError{CommandID: c.ID, Reason: reason}
}

// ReasonError is a failed response turned into an error
type ReasonError struct {
	CommandID string
	Reason    Reason
}

func (e *ReasonError) Error() string {
	return fmt.Sprintf("command %s failed: %s (code %d)", e.CommandID, e.Reason.Description, e.Reason.Code)
}
