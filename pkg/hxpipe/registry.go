package hxpipe

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/hxkit/hxkit/pkg/htmx"
)

// BuiltinModule is the module bare operation names resolve against.
const BuiltinModule = "htmx"

// MutatorFunc applies one pending operation to the response headers.
type MutatorFunc func(h http.Header, args Args) error

// LookupError reports an operation name that resolved to no registered
// mutator. It names both parts so a misconfigured pipeline is easy to trace.
type LookupError struct {
	Module   string
	Function string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("hxpipe: function %q not found in module %q", e.Function, e.Module)
}

// Registry maps operation names to compiled mutator functions, grouped into
// modules. The registry is a closed set: every operation a pipeline may
// dispatch must be registered up front.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]map[string]MutatorFunc
}

// NewRegistry returns a registry with only the builtin module installed.
func NewRegistry() *Registry {
	r := &Registry{modules: make(map[string]map[string]MutatorFunc)}
	r.registerBuiltins()
	return r
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the shared registry used when middleware is constructed
// without an explicit one.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Register adds a mutator under module.function. Re-registering a name
// replaces the previous mutator.
func (r *Registry) Register(module, function string, fn MutatorFunc) {
	if module == "" || function == "" || fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	fns, ok := r.modules[module]
	if !ok {
		fns = make(map[string]MutatorFunc)
		r.modules[module] = fns
	}
	fns[function] = fn
}

// Lookup resolves an operation name. A dotted name is split on its last dot
// into module and function; a bare name resolves against the builtin module.
func (r *Registry) Lookup(name string) (MutatorFunc, error) {
	module := BuiltinModule
	function := name
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		module, function = name[:idx], name[idx+1:]
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.modules[module][function]
	if !ok {
		return nil, &LookupError{Module: module, Function: function}
	}
	return fn, nil
}

// Apply dispatches the pending operations against the response headers in
// registration order. Each mutator sees the headers as left by the previous
// one. The first failure aborts the remaining operations and is returned;
// dispatch errors indicate programming or configuration mistakes and are
// never swallowed.
func (r *Registry) Apply(h http.Header, ops *Ops) error {
	if ops == nil {
		return nil
	}
	return ops.Each(func(name string, args any) error {
		fn, err := r.Lookup(name)
		if err != nil {
			return err
		}
		if err := fn(h, NewArgs(args)); err != nil {
			return fmt.Errorf("hxpipe: apply %q: %w", name, err)
		}
		return nil
	})
}

// registerBuiltins installs the mutators covering the htmx response-modifying
// headers. Keyword names follow the original response-modifying function
// signatures (select, target, method, url, to, after, events).
func (r *Registry) registerBuiltins() {
	r.Register(BuiltinModule, "reselect", func(h http.Header, args Args) error {
		selector, ok := args.StringField("select", 0)
		if !ok {
			return fmt.Errorf("reselect: missing selector argument")
		}
		htmx.Reselect(h, selector)
		return nil
	})

	r.Register(BuiltinModule, "retarget", func(h http.Header, args Args) error {
		target, ok := args.StringField("target", 0)
		if !ok {
			return fmt.Errorf("retarget: missing target argument")
		}
		htmx.Retarget(h, target)
		return nil
	})

	r.Register(BuiltinModule, "reswap", func(h http.Header, args Args) error {
		method, ok := args.StringField("method", 0)
		if !ok {
			return fmt.Errorf("reswap: missing method argument")
		}
		htmx.Reswap(h, htmx.SwapStrategy(method))
		return nil
	})

	r.Register(BuiltinModule, "retrigger", func(h http.Header, args Args) error {
		after, _ := args.StringField("after", 0)
		events, err := args.SpecField("events", 1)
		if err != nil {
			return err
		}
		return htmx.Retrigger(h, after, events)
	})

	r.Register(BuiltinModule, "push_url", func(h http.Header, args Args) error {
		url, ok := args.StringField("url", 0)
		if !ok {
			return fmt.Errorf("push_url: missing url argument")
		}
		htmx.PushURL(h, url)
		return nil
	})

	r.Register(BuiltinModule, "replace_url", func(h http.Header, args Args) error {
		url, ok := args.StringField("url", 0)
		if !ok {
			return fmt.Errorf("replace_url: missing url argument")
		}
		htmx.ReplaceURL(h, url)
		return nil
	})

	r.Register(BuiltinModule, "redirect", func(h http.Header, args Args) error {
		url, ok := args.StringField("to", 0)
		if !ok {
			return fmt.Errorf("redirect: missing destination argument")
		}
		htmx.ClientRedirect(h, url)
		return nil
	})

	r.Register(BuiltinModule, "refresh", func(h http.Header, _ Args) error {
		htmx.ClientRefresh(h)
		return nil
	})
}
