// Package vm implements the host-registration and protocol-dispatch layer
// sitting above internal/value: a permanent type/instance-function
// registry (Engine), a TypeBuilder for registering a host type's fields
// and methods in one shot, an LRU inline cache in front of the registry
// for repeated-call hot paths, and the reserved protocol hashes the
// evaluator calls through for user-overloadable operators (GET, SET,
// iteration, arithmetic, comparison, equality).
package vm

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/lattice-lang/lattice/internal/ident"
	"github.com/lattice-lang/lattice/internal/value"
	"github.com/lattice-lang/lattice/pkg/reflect"
)

// CallFn is a registered instance function: a host- or script-defined
// callable reachable by its (type, name) hash pair, or directly by a
// single composed hash.
type CallFn func(args []value.Value) (value.Value, error)

const defaultCacheSize = 256

// Engine is the permanent map of Hash -> CallFn, fronted by a bounded LRU
// inline cache, plus the RegisterType surface a host uses to give a Go
// type fields and instance methods callable from a script. The cache is
// purely an accelerator over repeated lookups of the same hash — evicting
// it, or disabling it entirely, never changes dispatch results, only its
// speed.
type Engine struct {
	fns    map[ident.Hash]CallFn
	cache  *lru.Cache[ident.Hash, CallFn]
	logger *zap.Logger
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithLogger attaches a zap logger for debug-level dispatch tracing.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithCacheSize overrides the inline cache's capacity.
func WithCacheSize(n int) Option {
	return func(e *Engine) {
		cache, err := lru.New[ident.Hash, CallFn](n)
		if err != nil {
			// Only non-positive sizes make New fail; a caller passing
			// one gets the default instead of an engine with no cache.
			cache, _ = lru.New[ident.Hash, CallFn](defaultCacheSize)
		}
		e.cache = cache
	}
}

// New builds an empty Engine with no types registered.
func New(opts ...Option) *Engine {
	cache, _ := lru.New[ident.Hash, CallFn](defaultCacheSize)
	e := &Engine{
		fns:    make(map[ident.Hash]CallFn),
		cache:  cache,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// RegisterCallable registers fn directly under hash, with no (type, name)
// composition. RegisterType and RegisterInstFn are both built on this.
// Any cached entry for hash is dropped, so a re-registration takes effect
// on the next lookup.
func (e *Engine) RegisterCallable(hash ident.Hash, fn CallFn) {
	e.fns[hash] = fn
	e.cache.Remove(hash)
}

// RegisterInstFn registers fn as the instance function named by nameHash
// on the type named by typeHash — e.g. registering under (typeHash,
// ProtocolEq) gives that type an overloaded eq protocol implementation.
func (e *Engine) RegisterInstFn(typeHash, nameHash ident.Hash, fn CallFn) {
	e.RegisterCallable(ident.InstanceFunction(typeHash, nameHash), fn)
}

// RegisterType declares a host type under name and runs install against a
// fresh TypeBuilder so the caller can attach field getters (FieldFn) and
// instance methods (InstFn) in one shot. It returns the type's hash, the
// same value a *value.Variant's Rtti carries for a script-defined type, so
// a host type and a script-defined ADT share one dispatch mechanism.
func (e *Engine) RegisterType(name string, install func(*TypeBuilder)) ident.Hash {
	typeHash := ident.OfType([]string{name})
	b := newTypeBuilder(e, typeHash)
	install(b)
	b.flush()

	return typeHash
}

// lookup resolves a composed hash without calling it, checking the inline
// cache before the permanent map.
func (e *Engine) lookup(hash ident.Hash) (CallFn, bool) {
	if fn, ok := e.cache.Get(hash); ok {
		return fn, true
	}

	fn, ok := e.fns[hash]
	if ok {
		e.cache.Add(hash, fn)
	}

	return fn, ok
}

// LookupInstFn resolves an instance function by (type, name) hash, the
// form Caller dispatches protocol overrides through.
func (e *Engine) LookupInstFn(typeHash, nameHash ident.Hash) (CallFn, bool) {
	return e.lookup(ident.InstanceFunction(typeHash, nameHash))
}

// CallInstFn resolves and invokes the instance function named by nameHash
// on typeHash, returning a *value.VmError-wrapped Panic if nothing is
// registered for that pair.
func (e *Engine) CallInstFn(typeHash, nameHash ident.Hash, args []value.Value) (value.Value, error) {
	fn, ok := e.LookupInstFn(typeHash, nameHash)
	if !ok {
		e.logger.Debug("vm: no instance function registered",
			zap.Uint64("type_hash", uint64(typeHash)),
			zap.Uint64("name_hash", uint64(nameHash)),
		)

		return nil, value.NewPanic("no instance function registered for this (type, name) pair")
	}

	return fn(args)
}

// Call resolves hash directly (no (type, name) composition) and invokes
// it with args packed through reflect.Args's IntoVec — the host-callable
// entry point a collaborator compiler or embedder uses to invoke into the
// registry by a single known hash, e.g. a free function's Function hash.
func (e *Engine) Call(hash ident.Hash, args reflect.Args) (value.Value, error) {
	vals, err := args.IntoVec()
	if err != nil {
		return nil, err
	}

	fn, ok := e.lookup(hash)
	if !ok {
		e.logger.Debug("vm: no callable registered for hash", zap.Uint64("hash", uint64(hash)))

		return nil, value.NewPanic("no callable registered for this hash")
	}

	return fn(vals)
}
