package storage

import (
	"hash/fnv"
	"maps"
	"sort"
	"strings"
	"sync"
)

// Engine is an in-memory resource store sharded by uri
type Engine struct {
	partitions []*partition
	numShards  uint32
}

type partition struct {
	data map[string]Entry
	mu   sync.RWMutex
}

const defaultNumShards = 16

// NewEngine creates a new Engine
func NewEngine() *Engine {
	e := &Engine{
		partitions: make([]*partition, defaultNumShards),
		numShards:  defaultNumShards,
	}

	for i := range e.partitions {
		e.partitions[i] = &partition{
			data: make(map[string]Entry),
		}
	}

	return e
}

// getPartition returns the partition for a given uri
func (e *Engine) getPartition(uri string) *partition {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(uri))

	return e.partitions[hash.Sum32()%e.numShards]
}

// Set stores an entry, replacing any previous one. Map resources are copied.
func (e *Engine) Set(uri string, entry Entry) {
	if resource, ok := entry.Resource.(map[string]any); ok {
		entry.Resource = maps.Clone(resource)
	}

	p := e.getPartition(uri)
	p.mu.Lock()
	p.data[uri] = entry
	p.mu.Unlock()
}

// Merge merges entry into the stored one. Map resources are merged key by
// key, anything else replaces the stored resource. Returns the result.
func (e *Engine) Merge(uri string, entry Entry) Entry {
	p := e.getPartition(uri)
	p.mu.Lock()
	defer p.mu.Unlock()

	current, exists := p.data[uri]
	if exists {
		entry = mergeEntries(current, entry)
	}
	p.data[uri] = entry

	return entry
}

func mergeEntries(current, update Entry) Entry {
	dst, ok := current.Resource.(map[string]any)
	src, ok2 := update.Resource.(map[string]any)
	if !ok || !ok2 {
		return update
	}

	merged := make(map[string]any, len(dst)+len(src))
	maps.Copy(merged, dst)
	maps.Copy(merged, src)

	mediaType := update.Type
	if mediaType == "" {
		mediaType = current.Type
	}

	return Entry{Type: mediaType, Resource: merged}
}

// Get gets the entry stored under uri
func (e *Engine) Get(uri string) (Entry, bool) {
	p := e.getPartition(uri)
	p.mu.RLock()
	entry, exists := p.data[uri]
	p.mu.RUnlock()

	return entry, exists
}

// Delete deletes the entry stored under uri and reports whether it existed
func (e *Engine) Delete(uri string) bool {
	p := e.getPartition(uri)
	p.mu.Lock()
	_, exists := p.data[uri]
	delete(p.data, uri)
	p.mu.Unlock()

	return exists
}

// Keys lists stored uris starting with prefix in sorted order
func (e *Engine) Keys(prefix string) []string {
	keys := make([]string, 0)
	for _, p := range e.partitions {
		p.mu.RLock()
		for uri := range p.data {
			if strings.HasPrefix(uri, prefix) {
				keys = append(keys, uri)
			}
		}
		p.mu.RUnlock()
	}
	sort.Strings(keys)

	return keys
}
