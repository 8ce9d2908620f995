// Package loopback answers LIME commands in process, backed by an in-memory
// resource store. It stands in for a remote server in tests and dry runs.
package loopback

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/8thgencore/blip/internal/storage"
	"github.com/8thgencore/blip/pkg/extension"
	"github.com/8thgencore/blip/pkg/lime"
	"github.com/8thgencore/blip/pkg/logger/sl"
)

// Collection is the resource of a listing response
type Collection struct {
	Total    int      `json:"total"`
	ItemType string   `json:"itemType"`
	Items    []string `json:"items"`
}

// Processor answers commands from its store
type Processor struct {
	log      *slog.Logger
	store    storage.Storage
	mu       sync.Mutex
	commands []*lime.Command
}

// NewProcessor creates a new Processor
func NewProcessor(log *slog.Logger, store storage.Storage) *Processor {
	return &Processor{log: log, store: store}
}

// Commands returns every command processed so far
func (p *Processor) Commands() []*lime.Command {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]*lime.Command(nil), p.commands...)
}

// ProcessCommand handles a command and returns its response
func (p *Processor) ProcessCommand(ctx context.Context, cmd *lime.Command) (*lime.Command, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.commands = append(p.commands, cmd)
	p.mu.Unlock()

	p.log.Debug("Handling command", sl.Command(cmd))

	resp := p.handle(cmd)
	resp.ID = cmd.ID
	resp.Method = cmd.Method
	resp.From = cmd.To
	resp.To = cmd.From

	return resp, nil
}

func (p *Processor) handle(cmd *lime.Command) *lime.Command {
	resourcePath, rawQuery, _ := strings.Cut(cmd.URI, "?")
	if resourcePath == "" {
		return failure(lime.ReasonValidationError, "command uri is empty")
	}

	switch cmd.Method {
	case lime.MethodGet:
		return p.get(resourcePath, rawQuery)

	case lime.MethodSet, lime.MethodMerge:
		entry, err := normalize(cmd)
		if err != nil {
			p.log.Warn("Invalid resource", sl.Command(cmd), sl.Err(err))
			return failure(lime.ReasonValidationError, "invalid resource: "+err.Error())
		}
		key := entryPath(resourcePath, entry)
		if cmd.Method == lime.MethodSet {
			p.store.Set(key, entry)
		} else {
			p.store.Merge(key, entry)
		}
		return success()

	case lime.MethodDelete:
		if !p.store.Delete(resourcePath) {
			return failure(lime.ReasonCommandResourceNotFound, ErrResourceNotFound.Error())
		}
		return success()
	}

	return failure(lime.ReasonCommandMethodNotSupported, ErrMethodNotSupported.Error())
}

func (p *Processor) get(resourcePath, rawQuery string) *lime.Command {
	if entry, ok := p.store.Get(resourcePath); ok {
		resp := success()
		resp.Type = entry.Type
		resp.Resource = entry.Resource
		return resp
	}

	prefix := strings.TrimSuffix(resourcePath, "/") + "/"
	keys := p.store.Keys(prefix)
	if len(keys) == 0 {
		return failure(lime.ReasonCommandResourceNotFound, ErrResourceNotFound.Error())
	}

	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return failure(lime.ReasonValidationError, "invalid query: "+err.Error())
	}
	skip := queryInt(query, QuerySkip, 0)
	take := queryInt(query, QueryTake, defaultTake)

	items := make([]string, 0)
	for i := skip; i < len(keys) && len(items) < take; i++ {
		item := strings.TrimPrefix(keys[i], prefix)
		if unescaped, err := url.PathUnescape(item); err == nil {
			item = unescaped
		}
		items = append(items, item)
	}

	resp := success()
	resp.Type = MediaTypeCollection
	resp.Resource = Collection{Total: len(keys), ItemType: MediaTypeText, Items: items}

	return resp
}

// entryPath returns where a SET or MERGE stores its resource. Documents sent
// to a top level collection such as /contacts are kept under their identity.
func entryPath(resourcePath string, entry storage.Entry) string {
	collection := strings.Trim(resourcePath, "/")
	if collection == "" || strings.Contains(collection, "/") {
		return resourcePath
	}

	resource, ok := entry.Resource.(map[string]any)
	if !ok {
		return resourcePath
	}
	identity, ok := resource[identityField].(string)
	if !ok || identity == "" {
		return resourcePath
	}

	return "/" + collection + "/" + extension.Escape(identity)
}

// normalize gives a structured resource the shape it would have after
// crossing the wire as json
func normalize(cmd *lime.Command) (storage.Entry, error) {
	switch cmd.Resource.(type) {
	case nil, string, map[string]any:
		return storage.Entry{Type: cmd.Type, Resource: cmd.Resource}, nil
	}

	data, err := json.Marshal(cmd.Resource)
	if err != nil {
		return storage.Entry{}, err
	}

	var resource any
	if err := json.Unmarshal(data, &resource); err != nil {
		return storage.Entry{}, err
	}

	return storage.Entry{Type: cmd.Type, Resource: resource}, nil
}

func queryInt(query url.Values, key string, fallback int) int {
	value, err := strconv.Atoi(query.Get(key))
	if err != nil || value < 0 {
		return fallback
	}

	return value
}

func success() *lime.Command {
	return &lime.Command{Status: lime.StatusSuccess}
}

func failure(code int, description string) *lime.Command {
	return &lime.Command{
		Status: lime.StatusFailure,
		Reason: &lime.Reason{Code: code, Description: description},
	}
}
