package hxpipe

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
)

// Ops is the per-request, insertion-ordered accumulator of pending response
// operations. It lives for exactly one request: the middleware installs it,
// handlers fill it, the middleware drains it.
type Ops struct {
	names []string
	args  map[string]any
}

// NewOps returns an empty pending-operations container.
func NewOps() *Ops {
	return &Ops{args: make(map[string]any)}
}

// Add registers an operation. Re-adding an existing name keeps its position
// but replaces its arguments.
func (o *Ops) Add(name string, args any) {
	if _, ok := o.args[name]; !ok {
		o.names = append(o.names, name)
	}
	o.args[name] = args
}

// Merge folds a name→args map into the container, right-biased. Incoming
// names are added in sorted order since Go maps carry no ordering of their
// own.
func (o *Ops) Merge(ops map[string]any) {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		o.Add(name, ops[name])
	}
}

// Get returns the arguments registered for an operation name.
func (o *Ops) Get(name string) (any, bool) {
	args, ok := o.args[name]
	return args, ok
}

// Names returns the operation names in registration order.
func (o *Ops) Names() []string {
	out := make([]string, len(o.names))
	copy(out, o.names)
	return out
}

// Len returns the number of pending operations.
func (o *Ops) Len() int {
	return len(o.names)
}

// Each calls fn for every operation in registration order, stopping at the
// first error.
func (o *Ops) Each(fn func(name string, args any) error) error {
	for _, name := range o.names {
		if err := fn(name, o.args[name]); err != nil {
			return err
		}
	}
	return nil
}

type opsKey struct{}

// WithOps installs a fresh pending-operations container on the context.
// Called by the HTMXResponse middleware at the start of every request.
func WithOps(ctx context.Context) context.Context {
	return context.WithValue(ctx, opsKey{}, NewOps())
}

// FromContext returns the request's pending-operations container, if the
// middleware installed one.
func FromContext(ctx context.Context) (*Ops, bool) {
	ops, ok := ctx.Value(opsKey{}).(*Ops)
	return ops, ok
}

// Register merges operations into the request's pending-ops container and
// returns the request. When no container is installed (the middleware is not
// in the chain) a new one is attached and the derived request is returned;
// callers should keep using the returned request in that case.
func Register(r *http.Request, ops map[string]any) *http.Request {
	if len(ops) == 0 {
		return r
	}

	if existing, ok := FromContext(r.Context()); ok {
		existing.Merge(ops)
		return r
	}

	ctx := WithOps(r.Context())
	pending, _ := FromContext(ctx)
	pending.Merge(ops)
	return r.WithContext(ctx)
}

// ParseConfig decodes the self-configuration query parameter: a JSON object
// mapping operation names to arguments. Malformed JSON or a non-object
// payload yields nil; a client cannot break the pipeline with a bad config
// value.
func ParseConfig(raw string) map[string]any {
	if raw == "" {
		return nil
	}

	var ops map[string]any
	if err := json.Unmarshal([]byte(raw), &ops); err != nil {
		return nil
	}
	if len(ops) == 0 {
		return nil
	}
	return ops
}
