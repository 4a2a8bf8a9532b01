package environment

import (
	"testing"

	"github.com/kristofer/tern/pkg/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tok(name string) lexer.Token {
	return lexer.Token{Type: lexer.TokenIdentifier, Lexeme: name, Line: 1}
}

func TestDefineAndGet(t *testing.T) {
	env := New()
	env.Define("x", 1.0)

	v, err := env.Get(tok("x"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestGetUndefinedVariableIsRuntimeError(t *testing.T) {
	env := New()

	_, err := env.Get(tok("missing"))
	require.Error(t, err)

	rtErr, ok := err.(*RuntimeError)
	require.True(t, ok)
	assert.Equal(t, "Undefined variable 'missing'.", rtErr.Message)
}

func TestDefineAllowsRedeclarationInSameScope(t *testing.T) {
	env := New()
	env.Define("x", 1.0)
	env.Define("x", 2.0)

	v, err := env.Get(tok("x"))
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestAssignUpdatesExistingBinding(t *testing.T) {
	env := New()
	env.Define("x", 1.0)

	require.NoError(t, env.Assign(tok("x"), 2.0))

	v, err := env.Get(tok("x"))
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestAssignToUndefinedVariableIsRuntimeError(t *testing.T) {
	env := New()
	err := env.Assign(tok("missing"), 1.0)
	require.Error(t, err)
	assert.IsType(t, &RuntimeError{}, err)
}

func TestChildEnvironmentSeesParentBindings(t *testing.T) {
	parent := New()
	parent.Define("x", 1.0)
	child := NewEnclosedBy(parent)

	v, err := child.Get(tok("x"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestChildShadowsParentBindingWithoutMutatingIt(t *testing.T) {
	parent := New()
	parent.Define("x", 1.0)
	child := NewEnclosedBy(parent)
	child.Define("x", 2.0)

	childVal, err := child.Get(tok("x"))
	require.NoError(t, err)
	assert.Equal(t, 2.0, childVal)

	parentVal, err := parent.Get(tok("x"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, parentVal)
}

func TestAssignInChildUpdatesParentBindingWhenNotShadowed(t *testing.T) {
	parent := New()
	parent.Define("x", 1.0)
	child := NewEnclosedBy(parent)

	require.NoError(t, child.Assign(tok("x"), 9.0))

	v, err := parent.Get(tok("x"))
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)
}
