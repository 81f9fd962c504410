package eval

import (
	"github.com/lattice-lang/lattice/internal/ast"
	"github.com/lattice-lang/lattice/internal/value"
)

// evalFunction evaluates a single-argument arrow function literal into a
// closure over the defining environment. Pattern-destructuring parameters
// (attr-set patterns) are not represented on value.Function: the parser
// never sets FunctionExpr.Pattern, and a Pattern on the node is ignored
// here, so its fields are never bound.
func (e *Evaluator) evalFunction(expr *ast.FunctionExpr, env value.Environment) (value.Value, error) {
	return value.NewFunction([]string{expr.Param}, false, expr.Body, env), nil
}

// evalClosure evaluates a pipe-delimited, possibly multi-parameter closure
// literal.
func (e *Evaluator) evalClosure(expr *ast.ClosureExpr, env value.Environment) (value.Value, error) {
	return value.NewFunction(expr.Params, expr.Async, expr.Body, env), nil
}

// evalApply evaluates a function application. Because the grammar parses
// both f(a, b) and f((a, b)) as ApplyExpr{Func: f, Arg: TupleExpr{a, b}},
// the dispatch between "call with positional args" and "call with one
// tuple argument" happens in apply, based on the runtime arity of fnVal,
// not on the shape of the AST.
func (e *Evaluator) evalApply(expr *ast.ApplyExpr, env value.Environment) (value.Value, error) {
	fnVal, err := e.evalExpr(expr.Func, env)
	if err != nil {
		return nil, err
	}
	argVal, err := e.evalExpr(expr.Arg, env)
	if err != nil {
		return nil, err
	}

	return e.apply(fnVal, argVal)
}

// apply applies a single argument value to a callable value, handling
// currying and positional tuple destructuring for multi-parameter
// functions.
func (e *Evaluator) apply(fnVal, argVal value.Value) (value.Value, error) {
	switch fn := fnVal.(type) {
	case *value.Function:
		params := fn.Params()
		if len(params) == 0 {
			return nil, value.NewPanic("cannot apply an argument to a zero-parameter closure")
		}

		if len(params) > 1 {
			if tuple, ok := argVal.(*value.Tuple); ok && tuple.Len() == len(params) {
				bindings := make(map[string]value.Value, len(params))
				for i, p := range params {
					v, err := tuple.Get(i)
					if err != nil {
						return nil, err
					}
					bindings[p] = v
				}

				base, ok := fn.Env().(*value.Env)
				if !ok {
					return nil, value.NewPanic("closure environment is not a *value.Env")
				}

				return e.evalBody(fn, base.WithBindings(bindings))
			}

			fnEnv := fn.Env().Extend()
			fnEnv.Set(params[0], argVal)

			return value.NewFunction(params[1:], fn.Async(), fn.Body(), fnEnv), nil
		}

		fnEnv := fn.Env().Extend()
		fnEnv.Set(params[0], argVal)

		return e.evalBody(fn, fnEnv)
	case *value.Builtin:
		// A builtin has no declared parameter count, so a tuple argument
		// (f(a, b), parsed as f applied to one TupleExpr) is unpacked and
		// applied positionally, one element at a time, the same way a
		// multi-parameter closure curries — arity2/arity3 builtins return a
		// fresh curried *value.Builtin awaiting the next element.
		if tuple, ok := argVal.(*value.Tuple); ok {
			var result value.Value = fn
			for i := 0; i < tuple.Len(); i++ {
				elem, err := tuple.Get(i)
				if err != nil {
					return nil, err
				}
				result, err = e.apply(result, elem)
				if err != nil {
					return nil, err
				}
			}

			return result, nil
		}

		return fn.Apply([]value.Value{argVal})
	default:
		return nil, value.NewExpectedType("function", fnVal.Type())
	}
}

// evalBody type-asserts a Function's opaque body back to an ast.Expr and
// evaluates it in the given environment. An async closure's call frame is
// cloned first: the frame was built for this one call, but an async body
// may be driven independently of the caller's continued evaluation, so it
// gets its own snapshot instead of aliasing a frame the caller might still
// mutate (e.g. a loop that reuses fnEnv across iterations).
func (e *Evaluator) evalBody(fn *value.Function, env value.Environment) (value.Value, error) {
	body, ok := fn.Body().(ast.Expr)
	if !ok {
		return nil, value.NewPanic("function body is not an expression")
	}

	if fn.Async() {
		if snapshot, ok := env.(*value.Env); ok {
			env = snapshot.Clone()
		}
	}

	return e.evalExpr(body, env)
}

// evalSelect evaluates field access, falling back to expr.Default when the
// field is absent or the target doesn't support selection.
func (e *Evaluator) evalSelect(expr *ast.SelectExpr, env value.Environment) (value.Value, error) {
	v, err := e.evalExpr(expr.Expr, env)
	if err != nil {
		return nil, err
	}

	result, err := e.selectPath(v, expr.AttrPath)
	if err != nil {
		if expr.Default != nil {
			return e.evalExpr(expr.Default, env)
		}

		return nil, err
	}

	return result, nil
}

// selectPath walks a dotted attribute path over v, routing each hop through
// the protocol caller's Get so a Variant's registered GET instance function
// can override the built-in field lookup.
func (e *Evaluator) selectPath(v value.Value, path []string) (value.Value, error) {
	current := v
	for _, key := range path {
		field, err := e.caller.Get(current, value.Intern(key), func() (value.Value, error) {
			return getField(current, key)
		})
		if err != nil {
			return nil, err
		}
		current = field
	}

	return current, nil
}

// getField implements the built-in field-access fallback for Object and
// struct-payload Variant. Range carries no structural fallback: its
// "start"/"end" fields are entirely host-registered (pkg/vm's
// RegisterBuiltinTypes), so a caller.Get miss on a Range means no engine
// has registered it, not that a structural lookup should be attempted.
func getField(v value.Value, key string) (value.Value, error) {
	switch o := v.(type) {
	case *value.Object:
		field, ok, err := o.Get(key)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, value.NewPanic("object has no field " + key)
		}

		return field, nil
	case *value.Variant:
		if o.Kind() != value.PayloadStruct {
			return nil, value.NewPanic("variant case has no named fields")
		}
		field, ok, err := o.StructFields().Get(key)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, value.NewPanic("variant has no field " + key)
		}

		return field, nil
	case *value.Range:
		return nil, value.NewPanic("range has no field " + key + " (no Range type registered)")
	default:
		return nil, value.NewExpectedType("object, variant, or range", v.Type())
	}
}

// evalHasAttr evaluates an existence test, converting any lookup error into
// a false result rather than propagating it.
func (e *Evaluator) evalHasAttr(expr *ast.HasAttrExpr, env value.Environment) (value.Value, error) {
	v, err := e.evalExpr(expr.Expr, env)
	if err != nil {
		return nil, err
	}

	_, err = e.selectPath(v, expr.AttrPath)

	return value.Bool(err == nil), nil
}

// evalIndex evaluates positional vec/tuple indexing, or slicing a vec by a
// range index.
func (e *Evaluator) evalIndex(expr *ast.IndexExpr, env value.Environment) (value.Value, error) {
	target, err := e.evalExpr(expr.Expr, env)
	if err != nil {
		return nil, err
	}
	idx, err := e.evalExpr(expr.Index, env)
	if err != nil {
		return nil, err
	}

	if r, ok := idx.(*value.Range); ok {
		vec, ok := target.(*value.Vec)
		if !ok {
			return nil, value.NewExpectedType("vec", target.Type())
		}

		return e.sliceVec(vec, r)
	}

	n, ok := idx.(value.Integer)
	if !ok {
		return nil, value.NewExpectedType("integer or range", idx.Type())
	}

	switch t := target.(type) {
	case *value.Vec:
		return t.Get(int(n))
	case *value.Tuple:
		return t.Get(int(n))
	default:
		return nil, value.NewExpectedType("vec or tuple", target.Type())
	}
}

// sliceVec builds a new vec containing the elements of vec at the indices
// yielded by r's iterator, obtained through the INTO_ITER/NEXT protocol
// dispatch rather than calling r.IntoIterator directly, so a host-
// registered override of either protocol is honored here too.
func (e *Evaluator) sliceVec(vec *value.Vec, r *value.Range) (value.Value, error) {
	itVal, err := e.caller.IntoIter(r, func() (value.Value, error) {
		it, err := r.IntoIterator()
		if err != nil {
			return nil, err
		}

		return value.NewIteratorValue(it), nil
	})
	if err != nil {
		return nil, err
	}

	var out []value.Value
	for {
		next, err := e.caller.Next(itVal, func() (value.Value, error) {
			return nil, value.NewExpectedType("iterator", itVal.Type())
		})
		if err != nil {
			return nil, err
		}
		opt, ok := next.(*value.Option)
		if !ok {
			return nil, value.NewExpectedType("option", next.Type())
		}
		if !opt.IsSome() {
			break
		}
		n, err := opt.Unwrap()
		if err != nil {
			return nil, err
		}
		i, ok := n.(value.Integer)
		if !ok {
			return nil, value.NewExpectedType("integer", n.Type())
		}

		elem, err := vec.Get(int(i))
		if err != nil {
			return nil, err
		}
		out = append(out, elem)
	}

	return value.NewVec(out...), nil
}
