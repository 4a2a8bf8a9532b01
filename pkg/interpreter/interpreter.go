// Package interpreter implements tern's tree-walking evaluator.
//
// Interpreter walks the AST directly rather than compiling it: a type
// switch over the node, one case per AST variant, and a RuntimeError
// convention that carries the offending token for line reporting, sourced
// from pkg/environment.RuntimeError since undefined-variable errors and
// type-mismatch errors share the same shape.
//
// Control flow uses three distinct non-local signals, each caught at a
// different boundary:
//   - a parse error, caught inside pkg/parser at the declaration boundary
//   - a runtime error (environment.RuntimeError), returned as an
//     ordinary Go error and caught at Interpret, the outermost call
//   - break, returned as the breakSignal sentinel error and caught by
//     the innermost enclosing WhileStmt
package interpreter

import (
	"fmt"
	"strconv"

	"github.com/kristofer/tern/pkg/ast"
	"github.com/kristofer/tern/pkg/diagnostics"
	"github.com/kristofer/tern/pkg/environment"
	"github.com/kristofer/tern/pkg/lexer"
)

// breakSignal unwinds statement execution up to the innermost enclosing
// WhileStmt. It carries no data; reaching it at all is the signal.
type breakSignal struct{}

func (breakSignal) Error() string { return "break outside of a loop" }

// Interpreter walks a statement list against a mutable environment chain,
// starting from (and for the REPL, persisting) a single global scope.
type Interpreter struct {
	globals  *environment.Environment
	env      *environment.Environment
	reporter *diagnostics.Reporter
}

// New creates an Interpreter with a fresh global environment.
func New(r *diagnostics.Reporter) *Interpreter {
	globals := environment.New()
	return &Interpreter{globals: globals, env: globals, reporter: r}
}

// Interpret executes statements against the interpreter's current
// environment. A runtime error aborts this call (and so the current
// top-level run) after being reported through the diagnostics.Reporter,
// but leaves the Interpreter itself — and its global environment — intact
// for the next call, which is what lets a REPL keep going after a bad
// line.
func (i *Interpreter) Interpret(statements []ast.Stmt) {
	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			if rtErr, ok := err.(*environment.RuntimeError); ok {
				i.reporter.RuntimeError(rtErr.Token.Line, rtErr.Message)
				return
			}
			// A breakSignal escaping every loop means the parser's
			// break-outside-loop check was bypassed; that's a bug in
			// the parser, not a user-facing runtime error.
			panic(err)
		}
	}
}

func (i *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := i.evaluate(s.Expression)
		return err
	case *ast.PrintStmt:
		value, err := i.evaluate(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.reporter.Out, stringify(value))
		return nil
	case *ast.VarStmt:
		var value environment.Value
		if s.Initializer != nil {
			v, err := i.evaluate(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		i.env.Define(s.Name.Lexeme, value)
		return nil
	case *ast.BlockStmt:
		return i.executeBlock(s.Statements, environment.NewEnclosedBy(i.env))
	case *ast.IfStmt:
		return i.executeIf(s)
	case *ast.WhileStmt:
		return i.executeWhile(s)
	case *ast.BreakStmt:
		return breakSignal{}
	default:
		panic(fmt.Sprintf("interpreter: unhandled statement type %T", stmt))
	}
}

// executeBlock runs statements in a fresh child environment and restores
// the previous environment on every exit path — normal completion, a
// runtime error, or a break signal unwinding through it — via defer, so a
// failure deep in nested blocks can never leak the wrong environment into
// sibling statements.
func (i *Interpreter) executeBlock(statements []ast.Stmt, blockEnv *environment.Environment) error {
	previous := i.env
	i.env = blockEnv
	defer func() { i.env = previous }()

	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) executeIf(s *ast.IfStmt) error {
	condition, err := i.evaluate(s.Condition)
	if err != nil {
		return err
	}
	if isTruthy(condition) {
		return i.execute(s.Then)
	}
	if s.Else != nil {
		return i.execute(s.Else)
	}
	return nil
}

func (i *Interpreter) executeWhile(s *ast.WhileStmt) error {
	for {
		condition, err := i.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if !isTruthy(condition) {
			return nil
		}
		if err := i.execute(s.Body); err != nil {
			if _, ok := err.(breakSignal); ok {
				return nil
			}
			return err
		}
	}
}

// --- expressions ---------------------------------------------------

func (i *Interpreter) evaluate(expr ast.Expr) (environment.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil
	case *ast.Grouping:
		return i.evaluate(e.Inner)
	case *ast.Unary:
		return i.evaluateUnary(e)
	case *ast.Binary:
		return i.evaluateBinary(e)
	case *ast.Logical:
		return i.evaluateLogical(e)
	case *ast.Comma:
		if _, err := i.evaluate(e.Left); err != nil {
			return nil, err
		}
		return i.evaluate(e.Right)
	case *ast.Conditional:
		return i.evaluateConditional(e)
	case *ast.Variable:
		return i.env.Get(e.Name)
	case *ast.Assign:
		value, err := i.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if err := i.env.Assign(e.Name, value); err != nil {
			return nil, err
		}
		return value, nil
	default:
		panic(fmt.Sprintf("interpreter: unhandled expression type %T", expr))
	}
}

func (i *Interpreter) evaluateUnary(e *ast.Unary) (environment.Value, error) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.TokenMinus:
		n, ok := right.(float64)
		if !ok {
			return nil, runtimeErr(e.Operator, "Operand must be a number.")
		}
		return -n, nil
	case lexer.TokenBang:
		return !isTruthy(right), nil
	default:
		panic(fmt.Sprintf("interpreter: unhandled unary operator %v", e.Operator.Type))
	}
}

func (i *Interpreter) evaluateBinary(e *ast.Binary) (environment.Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.TokenPlus:
		if ln, lok := left.(float64); lok {
			if rn, rok := right.(float64); rok {
				return ln + rn, nil
			}
		}
		if ls, lok := left.(string); lok {
			if rs, rok := right.(string); rok {
				return ls + rs, nil
			}
		}
		return nil, runtimeErr(e.Operator, "Operands must be two numbers or two strings.")
	case lexer.TokenMinus:
		ln, rn, err := bothNumbers(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln - rn, nil
	case lexer.TokenStar:
		ln, rn, err := bothNumbers(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln * rn, nil
	case lexer.TokenSlash:
		ln, rn, err := bothNumbers(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln / rn, nil
	case lexer.TokenGreater:
		ln, rn, err := bothNumbers(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln > rn, nil
	case lexer.TokenGreaterEqual:
		ln, rn, err := bothNumbers(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln >= rn, nil
	case lexer.TokenLess:
		ln, rn, err := bothNumbers(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln < rn, nil
	case lexer.TokenLessEqual:
		ln, rn, err := bothNumbers(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln <= rn, nil
	case lexer.TokenEqualEqual:
		return isEqual(left, right), nil
	case lexer.TokenBangEqual:
		return !isEqual(left, right), nil
	default:
		panic(fmt.Sprintf("interpreter: unhandled binary operator %v", e.Operator.Type))
	}
}

func (i *Interpreter) evaluateLogical(e *ast.Logical) (environment.Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.TokenOr:
		if isTruthy(left) {
			return left, nil
		}
	case lexer.TokenAnd:
		if !isTruthy(left) {
			return left, nil
		}
	default:
		panic(fmt.Sprintf("interpreter: unhandled logical operator %v", e.Operator.Type))
	}
	return i.evaluate(e.Right)
}

func (i *Interpreter) evaluateConditional(e *ast.Conditional) (environment.Value, error) {
	condition, err := i.evaluate(e.Condition)
	if err != nil {
		return nil, err
	}
	if isTruthy(condition) {
		return i.evaluate(e.Then)
	}
	return i.evaluate(e.Else)
}

func bothNumbers(operator lexer.Token, left, right environment.Value) (float64, float64, error) {
	ln, lok := left.(float64)
	rn, rok := right.(float64)
	if !lok || !rok {
		return 0, 0, runtimeErr(operator, "Operands must be numbers.")
	}
	return ln, rn, nil
}

func runtimeErr(tok lexer.Token, message string) error {
	return &environment.RuntimeError{Token: tok, Message: message}
}

// isTruthy implements tern's two-valued coercion: nil and false are
// falsy, everything else (including 0, "", NaN) is truthy.
func isTruthy(v environment.Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// isEqual follows tern's equality rules: nil equals only nil, numbers
// compare with IEEE `==` (so NaN != NaN), strings by content, booleans by
// identity, and any cross-type comparison is false.
func isEqual(a, b environment.Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return false
	}
}

// stringify renders a Value the way `print` writes it: nil as "nil",
// booleans as "true"/"false", numbers as decimal with a trailing ".0"
// stripped when the value is an exact integer, and strings verbatim.
func stringify(v environment.Value) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		// 'f' with -1 precision already yields the shortest exact decimal
		// representation, so an exact integer like 1.0 renders as "1"
		// with no trailing ".0" to strip.
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
