package eval

import (
	"github.com/lattice-lang/lattice/internal/ast"
	"github.com/lattice-lang/lattice/internal/ident"
	"github.com/lattice-lang/lattice/internal/value"
	"github.com/lattice-lang/lattice/pkg/vm"
)

// evalBinary dispatches a binary expression, short-circuiting the logical
// operators before evaluating both operands for everything else. Arithmetic,
// equality, and comparison on a *value.Variant are routed through the
// protocol caller so a script-defined instance function overrides the
// built-in structural behavior; every other Value case always falls back.
func (e *Evaluator) evalBinary(expr *ast.BinaryExpr, env value.Environment) (value.Value, error) {
	switch expr.Op {
	case ast.OpAnd:
		return e.evalLogicalAnd(expr, env)
	case ast.OpOr:
		return e.evalLogicalOr(expr, env)
	case ast.OpImpl:
		return e.evalLogicalImpl(expr, env)
	}

	left, err := e.evalExpr(expr.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(expr.Right, env)
	if err != nil {
		return nil, err
	}

	switch expr.Op {
	case ast.OpAdd:
		return e.arith(vm.ProtocolAdd, left, right, func() (value.Value, error) { return evalAdd(left, right) })
	case ast.OpSub:
		return e.arith(vm.ProtocolSub, left, right, func() (value.Value, error) { return evalSub(left, right) })
	case ast.OpMul:
		return e.arith(vm.ProtocolMul, left, right, func() (value.Value, error) { return evalMul(left, right) })
	case ast.OpDiv:
		return e.arith(vm.ProtocolDiv, left, right, func() (value.Value, error) { return evalDiv(left, right) })
	case ast.OpConcat:
		return evalConcat(left, right)
	case ast.OpEq:
		ok, err := e.caller.Eq(left, right)
		if err != nil {
			return nil, err
		}

		return value.Bool(ok), nil
	case ast.OpNEq:
		ok, err := e.caller.Eq(left, right)
		if err != nil {
			return nil, err
		}

		return value.Bool(!ok), nil
	case ast.OpLT:
		return e.evalCompare(left, right, func(c int) bool { return c < 0 })
	case ast.OpGT:
		return e.evalCompare(left, right, func(c int) bool { return c > 0 })
	case ast.OpLTE:
		return e.evalCompare(left, right, func(c int) bool { return c <= 0 })
	case ast.OpGTE:
		return e.evalCompare(left, right, func(c int) bool { return c >= 0 })
	case ast.OpUpdate:
		return evalUpdate(left, right)
	default:
		return nil, value.NewPanic("unsupported binary operator")
	}
}

func (e *Evaluator) evalLogicalAnd(expr *ast.BinaryExpr, env value.Environment) (value.Value, error) {
	left, err := e.evalExpr(expr.Left, env)
	if err != nil {
		return nil, err
	}
	lb, ok := left.(value.Bool)
	if !ok {
		return nil, value.NewExpectedType("bool", left.Type())
	}
	if !bool(lb) {
		return value.Bool(false), nil
	}

	right, err := e.evalExpr(expr.Right, env)
	if err != nil {
		return nil, err
	}
	rb, ok := right.(value.Bool)
	if !ok {
		return nil, value.NewExpectedType("bool", right.Type())
	}

	return value.Bool(bool(rb)), nil
}

func (e *Evaluator) evalLogicalOr(expr *ast.BinaryExpr, env value.Environment) (value.Value, error) {
	left, err := e.evalExpr(expr.Left, env)
	if err != nil {
		return nil, err
	}
	lb, ok := left.(value.Bool)
	if !ok {
		return nil, value.NewExpectedType("bool", left.Type())
	}
	if bool(lb) {
		return value.Bool(true), nil
	}

	right, err := e.evalExpr(expr.Right, env)
	if err != nil {
		return nil, err
	}
	rb, ok := right.(value.Bool)
	if !ok {
		return nil, value.NewExpectedType("bool", right.Type())
	}

	return value.Bool(bool(rb)), nil
}

func (e *Evaluator) evalLogicalImpl(expr *ast.BinaryExpr, env value.Environment) (value.Value, error) {
	left, err := e.evalExpr(expr.Left, env)
	if err != nil {
		return nil, err
	}
	lb, ok := left.(value.Bool)
	if !ok {
		return nil, value.NewExpectedType("bool", left.Type())
	}
	if !bool(lb) {
		return value.Bool(true), nil
	}

	right, err := e.evalExpr(expr.Right, env)
	if err != nil {
		return nil, err
	}
	rb, ok := right.(value.Bool)
	if !ok {
		return nil, value.NewExpectedType("bool", right.Type())
	}

	return value.Bool(bool(rb)), nil
}

// arith routes an arithmetic protocol through the caller: a *value.Variant
// with a registered instance function for protocol takes priority, else
// fallback runs the built-in numeric behavior.
func (e *Evaluator) arith(
	protocol ident.Hash,
	left, right value.Value,
	fallback func() (value.Value, error),
) (value.Value, error) {
	return e.caller.Arith(protocol, left, right, fallback)
}

// evalAdd performs numeric addition with float promotion when either
// operand is a Float.
func evalAdd(left, right value.Value) (value.Value, error) {
	switch l := left.(type) {
	case value.Integer:
		switch r := right.(type) {
		case value.Integer:
			return l + r, nil
		case value.Float:
			return value.Float(float64(l)) + r, nil
		}
	case value.Float:
		switch r := right.(type) {
		case value.Integer:
			return l + value.Float(float64(r)), nil
		case value.Float:
			return l + r, nil
		}
	}

	return nil, value.NewExpectedType("integer or float", left.Type())
}

// evalSub performs numeric subtraction with float promotion.
func evalSub(left, right value.Value) (value.Value, error) {
	switch l := left.(type) {
	case value.Integer:
		switch r := right.(type) {
		case value.Integer:
			return l - r, nil
		case value.Float:
			return value.Float(float64(l)) - r, nil
		}
	case value.Float:
		switch r := right.(type) {
		case value.Integer:
			return l - value.Float(float64(r)), nil
		case value.Float:
			return l - r, nil
		}
	}

	return nil, value.NewExpectedType("integer or float", left.Type())
}

// evalMul performs numeric multiplication with float promotion.
func evalMul(left, right value.Value) (value.Value, error) {
	switch l := left.(type) {
	case value.Integer:
		switch r := right.(type) {
		case value.Integer:
			return l * r, nil
		case value.Float:
			return value.Float(float64(l)) * r, nil
		}
	case value.Float:
		switch r := right.(type) {
		case value.Integer:
			return l * value.Float(float64(r)), nil
		case value.Float:
			return l * r, nil
		}
	}

	return nil, value.NewExpectedType("integer or float", left.Type())
}

// evalDiv performs floating-point division; the division result is always
// a Float even for two Integer operands, matching the teacher's behavior.
func evalDiv(left, right value.Value) (value.Value, error) {
	lf, ok := toFloat(left)
	if !ok {
		return nil, value.NewExpectedType("integer or float", left.Type())
	}
	rf, ok := toFloat(right)
	if !ok {
		return nil, value.NewExpectedType("integer or float", right.Type())
	}
	if rf == 0 {
		return nil, value.NewPanic("division by zero")
	}

	return value.Float(lf / rf), nil
}

func toFloat(v value.Value) (float64, bool) {
	switch n := v.(type) {
	case value.Integer:
		return float64(n), true
	case value.Float:
		return float64(n), true
	default:
		return 0, false
	}
}

// evalConcat concatenates two vecs with the ++ operator.
func evalConcat(left, right value.Value) (value.Value, error) {
	lv, ok := left.(*value.Vec)
	if !ok {
		return nil, value.NewExpectedType("vec", left.Type())
	}
	rv, ok := right.(*value.Vec)
	if !ok {
		return nil, value.NewExpectedType("vec", right.Type())
	}

	elems := append(append([]value.Value{}, lv.Elements()...), rv.Elements()...)

	return value.NewVec(elems...), nil
}

// evalCompare handles the four ordering operators. A *value.Variant with a
// registered three-way-compare instance function takes priority over the
// built-in ordering; with no override registered, a Variant still orders
// structurally through value.Cmp's hash-ordering-then-payload contract
// rather than falling into the non-Variant numeric/string comparison.
func (e *Evaluator) evalCompare(left, right value.Value, test func(int) bool) (value.Value, error) {
	if _, ok := left.(*value.Variant); ok {
		result, err := e.caller.Arith(vm.ProtocolCmp, left, right, func() (value.Value, error) {
			c, err := value.Cmp(left, right)
			if err != nil {
				return nil, err
			}

			return value.Integer(c), nil
		})
		if err != nil {
			return nil, err
		}
		c, ok := result.(value.Integer)
		if !ok {
			return nil, value.NewExpectedType("integer", result.Type())
		}

		return value.Bool(test(int(c))), nil
	}

	c, err := value.Cmp(left, right)
	if err != nil {
		return nil, err
	}

	return value.Bool(test(c)), nil
}

// evalUpdate merges two objects with the // operator: right's fields
// override left's on key collision, and key order follows left then any
// new keys from right.
func evalUpdate(left, right value.Value) (value.Value, error) {
	lo, ok := left.(*value.Object)
	if !ok {
		return nil, value.NewExpectedType("object", left.Type())
	}
	ro, ok := right.(*value.Object)
	if !ok {
		return nil, value.NewExpectedType("object", right.Type())
	}

	result := value.NewObject()
	for _, k := range lo.Keys() {
		v, _, err := lo.Get(k)
		if err != nil {
			return nil, err
		}
		if err := result.Set(k, v); err != nil {
			return nil, err
		}
	}
	for _, k := range ro.Keys() {
		v, _, err := ro.Get(k)
		if err != nil {
			return nil, err
		}
		if err := result.Set(k, v); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// evalUnary dispatches the two unary operators.
func (e *Evaluator) evalUnary(expr *ast.UnaryExpr, env value.Environment) (value.Value, error) {
	v, err := e.evalExpr(expr.Expr, env)
	if err != nil {
		return nil, err
	}

	switch expr.Op {
	case ast.OpNot:
		b, ok := v.(value.Bool)
		if !ok {
			return nil, value.NewExpectedType("bool", v.Type())
		}

		return value.Bool(!bool(b)), nil
	case ast.OpNeg:
		switch n := v.(type) {
		case value.Integer:
			return -n, nil
		case value.Float:
			return -n, nil
		default:
			return nil, value.NewExpectedType("integer or float", v.Type())
		}
	default:
		return nil, value.NewPanic("unsupported unary operator")
	}
}
