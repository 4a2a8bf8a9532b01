// Package ast defines the abstract syntax tree nodes for tern.
//
// Nodes are a tagged sum type: every node implements a marker method
// (exprNode/stmtNode) and the interpreter dispatches with a type switch
// rather than a visitor interface per role. Adding a new variant still
// means updating every switch that handles Expr or Stmt. The Go compiler
// does not check these switches for exhaustiveness: a variant a switch
// does not handle reaches its default arm at run time (a panic in the
// interpreter, an "(unknown-...)" placeholder in the printer).
package ast

import "github.com/kristofer/tern/pkg/lexer"

// Node is implemented by every AST node.
type Node interface {
	node()
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Program is the root of a parsed source: an ordered list of statements.
type Program struct {
	Statements []Stmt
}

// --- Expressions -----------------------------------------------------

// Literal is a constant value baked into the source: nil, a bool, a
// number, or a string.
type Literal struct {
	Value interface{}
}

func (*Literal) node()     {}
func (*Literal) exprNode() {}

// Grouping is a parenthesized expression, kept distinct from its inner
// expression so a pretty-printer can reproduce the parentheses.
type Grouping struct {
	Inner Expr
}

func (*Grouping) node()     {}
func (*Grouping) exprNode() {}

// Unary is a prefix operator applied to a single operand: `-x`, `!x`.
type Unary struct {
	Operator lexer.Token
	Right    Expr
}

func (*Unary) node()     {}
func (*Unary) exprNode() {}

// Binary is an infix arithmetic, comparison, or equality expression.
type Binary struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (*Binary) node()     {}
func (*Binary) exprNode() {}

// Logical is `and`/`or`, kept distinct from Binary because its right
// operand is short-circuited rather than unconditionally evaluated.
type Logical struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (*Logical) node()     {}
func (*Logical) exprNode() {}

// Comma is the comma operator: evaluate Left and discard it, then
// evaluate and return Right.
type Comma struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (*Comma) node()     {}
func (*Comma) exprNode() {}

// Conditional is the ternary `cond ? then : else`.
type Conditional struct {
	Condition Expr
	Then      Expr
	Else      Expr
}

func (*Conditional) node()     {}
func (*Conditional) exprNode() {}

// Variable is a reference to a bound name.
type Variable struct {
	Name lexer.Token
}

func (*Variable) node()     {}
func (*Variable) exprNode() {}

// Assign rebinds an existing name to a new value and evaluates to that
// value. Name is always an identifier token; the grammar never builds an
// Assign whose target is a general expression.
type Assign struct {
	Name  lexer.Token
	Value Expr
}

func (*Assign) node()     {}
func (*Assign) exprNode() {}

// --- Statements --------------------------------------------------------

// ExpressionStmt evaluates an expression and discards the result.
type ExpressionStmt struct {
	Expression Expr
}

func (*ExpressionStmt) node()     {}
func (*ExpressionStmt) stmtNode() {}

// PrintStmt evaluates an expression and writes its stringified value.
type PrintStmt struct {
	Expression Expr
}

func (*PrintStmt) node()     {}
func (*PrintStmt) stmtNode() {}

// VarStmt declares a name in the current environment, optionally
// initialized. Initializer is nil when the declaration has no `= expr`.
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr
}

func (*VarStmt) node()     {}
func (*VarStmt) stmtNode() {}

// BlockStmt introduces a new lexical scope around its statements.
type BlockStmt struct {
	Statements []Stmt
}

func (*BlockStmt) node()     {}
func (*BlockStmt) stmtNode() {}

// IfStmt is a conditional. Else is nil when there is no `else` clause.
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

func (*IfStmt) node()     {}
func (*IfStmt) stmtNode() {}

// WhileStmt is also the desugaring target of `for`.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (*WhileStmt) node()     {}
func (*WhileStmt) stmtNode() {}

// BreakStmt exits the innermost enclosing WhileStmt. Keyword is the
// `break` token. The parser rejects a break outside a loop at parse time;
// the interpreter does not read Keyword, and a break that escapes every
// loop makes Interpret panic.
type BreakStmt struct {
	Keyword lexer.Token
}

func (*BreakStmt) node()     {}
func (*BreakStmt) stmtNode() {}
