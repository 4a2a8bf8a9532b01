package lexer

import (
	"bytes"
	"testing"

	"github.com/kristofer/tern/pkg/diagnostics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scan(t *testing.T, source string) ([]Token, *diagnostics.Reporter) {
	t.Helper()
	var out, errBuf bytes.Buffer
	reporter := diagnostics.New(&out, &errBuf)
	return New(source, reporter).ScanTokens(), reporter
}

func TestScanTokens_BasicPunctuation(t *testing.T) {
	tokens, reporter := scan(t, "(){},.-+;*/?:")
	require.False(t, reporter.HadCompileError())

	expectedTypes := []TokenType{
		TokenLeftParen, TokenRightParen, TokenLeftBrace, TokenRightBrace,
		TokenComma, TokenDot, TokenMinus, TokenPlus, TokenSemicolon,
		TokenStar, TokenSlash, TokenQuestion, TokenColon, TokenEOF,
	}
	require.Len(t, tokens, len(expectedTypes))
	for i, want := range expectedTypes {
		assert.Equal(t, want, tokens[i].Type, "token %d", i)
	}
}

func TestScanTokens_TwoCharacterOperators(t *testing.T) {
	tests := []struct {
		input string
		want  TokenType
	}{
		{"!", TokenBang},
		{"!=", TokenBangEqual},
		{"=", TokenEqual},
		{"==", TokenEqualEqual},
		{">", TokenGreater},
		{">=", TokenGreaterEqual},
		{"<", TokenLess},
		{"<=", TokenLessEqual},
	}
	for _, tt := range tests {
		tokens, reporter := scan(t, tt.input)
		require.False(t, reporter.HadCompileError(), tt.input)
		require.Len(t, tokens, 2, tt.input)
		assert.Equal(t, tt.want, tokens[0].Type, tt.input)
	}
}

func TestScanTokens_LineComment(t *testing.T) {
	tokens, reporter := scan(t, "1 // comment\n2")
	require.False(t, reporter.HadCompileError())
	require.Len(t, tokens, 3)
	assert.Equal(t, TokenNumber, tokens[0].Type)
	assert.Equal(t, TokenNumber, tokens[1].Type)
	assert.Equal(t, 2, tokens[1].Line)
}

func TestScanTokens_NumberLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"123", 123},
		{"123.456", 123.456},
	}
	for _, tt := range tests {
		tokens, reporter := scan(t, tt.input)
		require.False(t, reporter.HadCompileError(), tt.input)
		require.Equal(t, TokenNumber, tokens[0].Type, tt.input)
		assert.Equal(t, tt.want, tokens[0].Literal, tt.input)
	}
}

func TestScanTokens_TrailingDotIsNotPartOfNumber(t *testing.T) {
	tokens, reporter := scan(t, "123.")
	require.False(t, reporter.HadCompileError())
	require.Len(t, tokens, 3)
	assert.Equal(t, TokenNumber, tokens[0].Type)
	assert.Equal(t, float64(123), tokens[0].Literal)
	assert.Equal(t, TokenDot, tokens[1].Type)
}

func TestScanTokens_StringLiteral(t *testing.T) {
	tokens, reporter := scan(t, `"hello there"`)
	require.False(t, reporter.HadCompileError())
	require.Equal(t, TokenString, tokens[0].Type)
	assert.Equal(t, "hello there", tokens[0].Literal)
}

func TestScanTokens_UnterminatedStringReportsCompileError(t *testing.T) {
	_, reporter := scan(t, `"unterminated`)
	assert.True(t, reporter.HadCompileError())
}

func TestScanTokens_MultilineString(t *testing.T) {
	tokens, reporter := scan(t, "\"a\nb\" 1")
	require.False(t, reporter.HadCompileError())
	require.Equal(t, TokenString, tokens[0].Type)
	assert.Equal(t, "a\nb", tokens[0].Literal)
	assert.Equal(t, 2, tokens[1].Line)
}

func TestScanTokens_IdentifiersAndKeywords(t *testing.T) {
	tokens, reporter := scan(t, "foo_bar and or true false nil var while for if else print break")
	require.False(t, reporter.HadCompileError())

	want := []TokenType{
		TokenIdentifier, TokenAnd, TokenOr, TokenTrue, TokenFalse, TokenNil,
		TokenVar, TokenWhile, TokenFor, TokenIf, TokenElse, TokenPrint, TokenBreak, TokenEOF,
	}
	require.Len(t, tokens, len(want))
	for i, w := range want {
		assert.Equal(t, w, tokens[i].Type, "token %d", i)
	}
}

func TestScanTokens_UnexpectedCharacterReportsAndContinues(t *testing.T) {
	tokens, reporter := scan(t, "1 @ 2")
	assert.True(t, reporter.HadCompileError())
	// scanning continues past the bad character
	require.Len(t, tokens, 3)
	assert.Equal(t, TokenNumber, tokens[0].Type)
	assert.Equal(t, TokenNumber, tokens[1].Type)
}

func TestScanTokens_AlwaysEndsWithEOF(t *testing.T) {
	tokens, _ := scan(t, "")
	require.Len(t, tokens, 1)
	assert.Equal(t, TokenEOF, tokens[0].Type)
}
