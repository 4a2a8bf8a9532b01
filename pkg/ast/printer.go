package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders a statement as an unambiguous, fully-parenthesized
// s-expression. The output is not tern source syntax, so the parser cannot
// read it back; tern's parser tests instead compare two parses of the same
// source with cmp.Diff and compare their printed forms.
func Print(s Stmt) string {
	switch s := s.(type) {
	case *ExpressionStmt:
		return parenthesize(";", PrintExpr(s.Expression))
	case *PrintStmt:
		return parenthesize("print", PrintExpr(s.Expression))
	case *VarStmt:
		if s.Initializer == nil {
			return parenthesize("var", s.Name.Lexeme)
		}
		return parenthesize("var", s.Name.Lexeme, PrintExpr(s.Initializer))
	case *BlockStmt:
		parts := make([]string, len(s.Statements))
		for i, stmt := range s.Statements {
			parts[i] = Print(stmt)
		}
		return "(block " + strings.Join(parts, " ") + ")"
	case *IfStmt:
		if s.Else == nil {
			return parenthesize("if", PrintExpr(s.Condition), Print(s.Then))
		}
		return parenthesize("if", PrintExpr(s.Condition), Print(s.Then), Print(s.Else))
	case *WhileStmt:
		return parenthesize("while", PrintExpr(s.Condition), Print(s.Body))
	case *BreakStmt:
		return "(break)"
	default:
		return fmt.Sprintf("(unknown-stmt %T)", s)
	}
}

// PrintExpr renders an expression the same way Print renders a statement.
func PrintExpr(e Expr) string {
	switch e := e.(type) {
	case *Literal:
		return stringifyLiteral(e.Value)
	case *Grouping:
		return parenthesize("group", PrintExpr(e.Inner))
	case *Unary:
		return parenthesize(e.Operator.Lexeme, PrintExpr(e.Right))
	case *Binary:
		return parenthesize(e.Operator.Lexeme, PrintExpr(e.Left), PrintExpr(e.Right))
	case *Logical:
		return parenthesize(e.Operator.Lexeme, PrintExpr(e.Left), PrintExpr(e.Right))
	case *Comma:
		return parenthesize(",", PrintExpr(e.Left), PrintExpr(e.Right))
	case *Conditional:
		return parenthesize("?:", PrintExpr(e.Condition), PrintExpr(e.Then), PrintExpr(e.Else))
	case *Variable:
		return e.Name.Lexeme
	case *Assign:
		return parenthesize("=", e.Name.Lexeme, PrintExpr(e.Value))
	default:
		return fmt.Sprintf("(unknown-expr %T)", e)
	}
}

func parenthesize(name string, parts ...string) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, p := range parts {
		b.WriteByte(' ')
		b.WriteString(p)
	}
	b.WriteByte(')')
	return b.String()
}

func stringifyLiteral(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
