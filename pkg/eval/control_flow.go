package eval

import (
	"github.com/lattice-lang/lattice/internal/ast"
	"github.com/lattice-lang/lattice/internal/value"
)

// evalIf evaluates a conditional expression.
func (e *Evaluator) evalIf(expr *ast.IfExpr, env value.Environment) (value.Value, error) {
	cond, err := e.evalExpr(expr.Cond, env)
	if err != nil {
		return nil, err
	}

	b, ok := cond.(value.Bool)
	if !ok {
		return nil, value.NewExpectedType("bool", cond.Type())
	}

	if bool(b) {
		return e.evalExpr(expr.Then, env)
	}

	return e.evalExpr(expr.Else, env)
}

// evalLet evaluates a sequential, non-recursive series of let bindings
// followed by a body, extending env once and binding each name in order so
// later bindings may reference earlier ones.
func (e *Evaluator) evalLet(expr *ast.LetExpr, env value.Environment) (value.Value, error) {
	letEnv := env.Extend()

	for _, b := range expr.Bindings {
		v, err := e.evalExpr(b.Value, letEnv)
		if err != nil {
			return nil, err
		}
		letEnv.Set(b.Name, v)
	}

	return e.evalExpr(expr.Body, letEnv)
}

// evalWith evaluates expr to an *value.Object and extends env with all of
// its fields in scope for body.
func (e *Evaluator) evalWith(expr *ast.WithExpr, env value.Environment) (value.Value, error) {
	src, err := e.evalExpr(expr.Expr, env)
	if err != nil {
		return nil, err
	}

	obj, ok := src.(*value.Object)
	if !ok {
		return nil, value.NewExpectedType("object", src.Type())
	}

	withEnv := env.Extend()
	for _, key := range obj.Keys() {
		v, _, err := obj.Get(key)
		if err != nil {
			return nil, err
		}
		withEnv.Set(key, v)
	}

	return e.evalExpr(expr.Body, withEnv)
}

// evalAssert fails evaluation with a panic if cond is false, otherwise
// evaluates body.
func (e *Evaluator) evalAssert(expr *ast.AssertExpr, env value.Environment) (value.Value, error) {
	cond, err := e.evalExpr(expr.Cond, env)
	if err != nil {
		return nil, err
	}

	b, ok := cond.(value.Bool)
	if !ok {
		return nil, value.NewExpectedType("bool", cond.Type())
	}
	if !bool(b) {
		return nil, value.NewPanic("assertion failed")
	}

	return e.evalExpr(expr.Body, env)
}

// evalMatch evaluates the subject to a *value.Variant and dispatches to the
// first arm whose case name matches, destructuring tuple or struct payload
// fields into a fresh environment scoped to the arm's body.
func (e *Evaluator) evalMatch(expr *ast.MatchExpr, env value.Environment) (value.Value, error) {
	subject, err := e.evalExpr(expr.Subject, env)
	if err != nil {
		return nil, err
	}

	variant, ok := subject.(*value.Variant)
	if !ok {
		return nil, value.NewExpectedType("variant", subject.Type())
	}

	for _, arm := range expr.Arms {
		if arm.Pattern.CaseName != variant.Rtti().Name {
			continue
		}

		armEnv := env.Extend()

		switch variant.Kind() {
		case value.PayloadTuple:
			fields := variant.TupleFields()
			for i, name := range arm.Pattern.Bindings {
				if i < len(fields) {
					armEnv.Set(name, fields[i])
				}
			}
		case value.PayloadStruct:
			obj := variant.StructFields()
			for _, name := range arm.Pattern.Bindings {
				v, ok, err := obj.Get(name)
				if err != nil {
					return nil, err
				}
				if ok {
					armEnv.Set(name, v)
				}
			}
		}

		return e.evalExpr(arm.Body, armEnv)
	}

	return nil, value.NewPanic("no match arm for variant case " + variant.Rtti().Name)
}
