package eval

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/lattice-lang/lattice/internal/ast"
	"github.com/lattice-lang/lattice/internal/value"
	"github.com/lattice-lang/lattice/pkg/vm"
)

// Evaluator implements Lattice's semantic evaluation engine. It tree-walks
// an AST and computes its runtime Value, routing every user-overloadable
// operation (equality, field access, arithmetic on a Variant) through a
// vm.Caller so a script-defined type's own instance functions take
// priority over the runtime's built-in structural behavior.
type Evaluator struct {
	engine *vm.Engine
	caller *vm.Caller
	logger *zap.Logger
}

// Option configures an Evaluator at construction.
type Option func(*Evaluator)

// WithLogger attaches a zap logger to the Evaluator. No evaluation step
// writes to it.
func WithLogger(l *zap.Logger) Option {
	return func(e *Evaluator) { e.logger = l }
}

// WithEngine supplies a pre-populated protocol engine, letting a host
// register its own types' fields and instance functions before any script
// runs. The built-in Range/Iterator registration is not repeated on a
// supplied engine — a host replacing the default engine is responsible for
// calling vm.RegisterBuiltinTypes itself if it still wants range support.
func WithEngine(eng *vm.Engine) Option {
	return func(e *Evaluator) {
		e.engine = eng
		e.caller = vm.NewCaller(eng)
	}
}

// New creates an evaluator with a protocol engine pre-populated with the
// built-in Range/Iterator type registrations, plus the standard builtin
// library.
func New(opts ...Option) *Evaluator {
	eng := vm.New()
	vm.RegisterBuiltinTypes(eng)
	e := &Evaluator{engine: eng, caller: vm.NewCaller(eng), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Engine exposes the evaluator's protocol engine so a host can register
// fields and instance functions for its own types before evaluating a
// script.
func (e *Evaluator) Engine() *vm.Engine { return e.engine }

// NewGlobalEnv builds a fresh environment pre-populated with the standard
// builtins.
func (e *Evaluator) NewGlobalEnv() value.Environment {
	env := value.NewEnv()
	for name, v := range e.builtins() {
		env.Set(name, v)
	}

	return env
}

// Eval evaluates expr in a fresh global environment.
func (e *Evaluator) Eval(expr ast.Expr) (value.Value, error) {
	return e.evalExpr(expr, e.NewGlobalEnv())
}

// EvalWithEnv evaluates expr against a caller-supplied environment, letting
// a host pre-bind its own variables before running a script.
func (e *Evaluator) EvalWithEnv(expr ast.Expr, env value.Environment) (value.Value, error) {
	return e.evalExpr(expr, env)
}

// evalExpr is the central evaluation dispatcher: a type switch over every
// AST node generalized from the teacher's Nix-expression dispatcher to
// Lattice's fuller Value case list.
func (e *Evaluator) evalExpr(expr ast.Expr, env value.Environment) (value.Value, error) {
	switch n := expr.(type) {
	case *ast.IntExpr:
		return value.Integer(n.Value), nil
	case *ast.FloatExpr:
		return value.Float(n.Value), nil
	case *ast.StringExpr:
		return value.Intern(n.Value), nil
	case *ast.ByteExpr:
		return value.Byte(n.Value), nil
	case *ast.CharExpr:
		return value.Char(n.Value), nil
	case *ast.BoolExpr:
		return value.Bool(n.Value), nil
	case *ast.UnitExpr:
		return value.Unit{}, nil
	case *ast.IdentExpr:
		return e.evalIdent(n, env)
	case *ast.VecExpr:
		return e.evalVec(n, env)
	case *ast.TupleExpr:
		return e.evalTuple(n, env)
	case *ast.ObjectExpr:
		return e.evalObject(n, env)
	case *ast.RangeExpr:
		return e.evalRange(n, env)
	case *ast.BinaryExpr:
		return e.evalBinary(n, env)
	case *ast.UnaryExpr:
		return e.evalUnary(n, env)
	case *ast.IfExpr:
		return e.evalIf(n, env)
	case *ast.LetExpr:
		return e.evalLet(n, env)
	case *ast.WithExpr:
		return e.evalWith(n, env)
	case *ast.AssertExpr:
		return e.evalAssert(n, env)
	case *ast.MatchExpr:
		return e.evalMatch(n, env)
	case *ast.FunctionExpr:
		return e.evalFunction(n, env)
	case *ast.ClosureExpr:
		return e.evalClosure(n, env)
	case *ast.ApplyExpr:
		return e.evalApply(n, env)
	case *ast.SelectExpr:
		return e.evalSelect(n, env)
	case *ast.HasAttrExpr:
		return e.evalHasAttr(n, env)
	case *ast.IndexExpr:
		return e.evalIndex(n, env)
	default:
		return nil, errors.Errorf("eval: unsupported expression node %T", expr)
	}
}

// evalIdent resolves a variable reference via lexical scoping, following
// the chain established by let bindings, function parameters, and with
// expressions.
func (e *Evaluator) evalIdent(expr *ast.IdentExpr, env value.Environment) (value.Value, error) {
	if v, ok := env.Get(expr.Name); ok {
		return v, nil
	}

	return nil, errors.Errorf("eval: undefined variable %q", expr.Name)
}

// evalVec evaluates a vec literal, eagerly evaluating every element.
func (e *Evaluator) evalVec(expr *ast.VecExpr, env value.Environment) (value.Value, error) {
	elems := make([]value.Value, len(expr.Elements))
	for i, elem := range expr.Elements {
		v, err := e.evalExpr(elem, env)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}

	return value.NewVec(elems...), nil
}

// evalTuple evaluates a fixed-arity tuple literal.
func (e *Evaluator) evalTuple(expr *ast.TupleExpr, env value.Environment) (value.Value, error) {
	elems := make([]value.Value, len(expr.Elements))
	for i, elem := range expr.Elements {
		v, err := e.evalExpr(elem, env)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}

	return value.NewTuple(elems...), nil
}

// evalRange evaluates a range literal into the matching value.Range
// constructor. The spec narrows ranges to i64 endpoints only.
func (e *Evaluator) evalRange(expr *ast.RangeExpr, env value.Environment) (value.Value, error) {
	startVal, err := e.evalExpr(expr.Start, env)
	if err != nil {
		return nil, err
	}
	start, ok := startVal.(value.Integer)
	if !ok {
		return nil, value.NewExpectedType("integer", startVal.Type())
	}

	if expr.End == nil {
		return value.NewUnboundedFrom(int64(start)), nil
	}

	endVal, err := e.evalExpr(expr.End, env)
	if err != nil {
		return nil, err
	}
	end, ok := endVal.(value.Integer)
	if !ok {
		return nil, value.NewExpectedType("integer", endVal.Type())
	}

	if expr.Inclusive {
		return value.NewClosed(int64(start), int64(end)), nil
	}

	return value.NewHalfOpen(int64(start), int64(end)), nil
}

// evalObject evaluates an object literal, handling inherit clauses and the
// two-pass dependency resolution a recursive (rec { ... }) literal needs:
// literal bindings are bound first so later bindings may reference them,
// mirroring the teacher's isSimpleExpr pre-pass for attribute sets.
func (e *Evaluator) evalObject(expr *ast.ObjectExpr, env value.Environment) (value.Value, error) {
	obj := value.NewObject()

	bindEnv := env
	if expr.Recursive {
		bindEnv = env.Extend()
	}

	for _, inh := range expr.Inherits {
		if err := e.evalInherit(inh, obj, bindEnv, env); err != nil {
			return nil, err
		}
	}

	if !expr.Recursive {
		for _, b := range expr.Bindings {
			if err := e.setObjectPath(obj, b.Path, b.Value, bindEnv); err != nil {
				return nil, err
			}
		}

		return obj, nil
	}

	for _, b := range expr.Bindings {
		if len(b.Path) == 1 && isSimpleExpr(b.Value) {
			v, err := e.evalExpr(b.Value, bindEnv)
			if err != nil {
				return nil, err
			}
			if err := obj.Set(b.Path[0], v); err != nil {
				return nil, err
			}
			bindEnv.Set(b.Path[0], v)
		}
	}

	for _, b := range expr.Bindings {
		if len(b.Path) == 1 && isSimpleExpr(b.Value) {
			continue
		}
		if err := e.setObjectPath(obj, b.Path, b.Value, bindEnv); err != nil {
			return nil, err
		}
	}

	return obj, nil
}

// setObjectPath evaluates expr and assigns it at path within obj, creating
// intermediate nested objects for a multi-segment path like a.b.c.
func (e *Evaluator) setObjectPath(
	obj *value.Object,
	path []string,
	expr ast.Expr,
	env value.Environment,
) error {
	val, err := e.evalExpr(expr, env)
	if err != nil {
		return err
	}

	if len(path) == 1 {
		return obj.Set(path[0], val)
	}

	current := obj
	for _, key := range path[:len(path)-1] {
		existing, ok, err := current.Get(key)
		if err != nil {
			return err
		}
		if ok {
			nested, ok := existing.(*value.Object)
			if !ok {
				return errors.Errorf("eval: attribute path conflict at %q", key)
			}
			current = nested

			continue
		}

		nested := value.NewObject()
		if err := current.Set(key, nested); err != nil {
			return err
		}
		current = nested
	}

	return current.Set(path[len(path)-1], val)
}

// evalInherit resolves a single inherit clause. A plain "inherit a b;"
// pulls names from the enclosing lexical scope; "inherit (expr) a b;" pulls
// them from expr's own fields instead.
func (e *Evaluator) evalInherit(
	inh ast.InheritClause,
	obj *value.Object,
	scopeEnv, lexicalEnv value.Environment,
) error {
	if inh.From == nil {
		for _, name := range inh.Attrs {
			v, ok := lexicalEnv.Get(name)
			if !ok {
				return errors.Errorf("eval: inherit: undefined variable %q", name)
			}
			if err := obj.Set(name, v); err != nil {
				return err
			}
		}

		return nil
	}

	src, err := e.evalExpr(inh.From, scopeEnv)
	if err != nil {
		return err
	}
	srcObj, ok := src.(*value.Object)
	if !ok {
		return value.NewExpectedType("object", src.Type())
	}

	for _, name := range inh.Attrs {
		v, ok, err := srcObj.Get(name)
		if err != nil {
			return err
		}
		if !ok {
			return errors.Errorf("eval: inherit: object has no field %q", name)
		}
		if err := obj.Set(name, v); err != nil {
			return err
		}
	}

	return nil
}

// isSimpleExpr reports whether expr is a literal with no variable
// references, safe to evaluate in a recursive object's first pass.
func isSimpleExpr(expr ast.Expr) bool {
	switch expr.(type) {
	case *ast.IntExpr, *ast.FloatExpr, *ast.StringExpr, *ast.ByteExpr,
		*ast.CharExpr, *ast.BoolExpr, *ast.UnitExpr:
		return true
	default:
		return false
	}
}
