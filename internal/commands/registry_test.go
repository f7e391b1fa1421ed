package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/termfolio/pkg/termfolio"
)

func TestDispatch_EmptyLine(t *testing.T) {
	r := newTestRegistry(t)

	for _, line := range []string{"", "   ", "\t\n"} {
		ctx := &fakeContext{}
		res := r.Dispatch(line, ctx)
		assert.True(t, res.Success)
		assert.Empty(t, ctx.emitted)
	}
}

func TestDispatch_UnknownCommand(t *testing.T) {
	r := newTestRegistry(t)
	ctx := &fakeContext{}

	res := r.Dispatch("frobnicate now", ctx)

	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err, termfolio.ErrUnknownCommand)
	require.Len(t, ctx.emitted, 1)
	assert.Contains(t, ctx.emitted[0], "Command not found: frobnicate")
	assert.Contains(t, ctx.emitted[0], "help")
}

func TestDispatch_UnknownCommandIsEscaped(t *testing.T) {
	r := newTestRegistry(t)
	ctx := &fakeContext{}

	r.Dispatch("<img>", ctx)

	require.Len(t, ctx.emitted, 1)
	assert.Contains(t, ctx.emitted[0], "&lt;img&gt;")
	assert.NotContains(t, ctx.emitted[0], "<img>")
}

func TestDispatch_CaseInsensitiveName(t *testing.T) {
	r := newTestRegistry(t)
	ctx := &fakeContext{}

	res := r.Dispatch("  WHOAMI  ", ctx)

	assert.True(t, res.Success)
	assert.Equal(t, []string{termfolio.User}, ctx.emitted)
}

func TestDispatch_SplitsWhitespaceRuns(t *testing.T) {
	var got []string
	r := NewRegistry([]Command{{Name: "probe", Handler: func(args []string, _ Context) Result {
		got = args
		return succeed()
	}}})

	r.Dispatch("probe   a \t b", &fakeContext{})

	assert.Equal(t, []string{"a", "b"}, got)
}

func TestNewRegistry_OrderAndDuplicates(t *testing.T) {
	noop := func([]string, Context) Result { return succeed() }
	r := NewRegistry([]Command{
		{Name: "Zed", Handler: noop},
		{Name: "alpha", Handler: noop},
		{Name: "zed", Handler: noop},
	})

	assert.Equal(t, []string{"zed", "alpha"}, r.Names())
	assert.True(t, r.Has("ZED"))
	assert.False(t, r.Has("beta"))
}

func TestNew_RegistersBuiltinsInOrder(t *testing.T) {
	r := newTestRegistry(t)

	assert.Equal(t, []string{
		"ls", "cat", "cd", "pwd", "clear", "help",
		"whoami", "neofetch", "sudo", "echo", "date", "history",
	}, r.Names())
	assert.Equal(t, "testhost", r.Host())
}

func TestNames_ReturnsCopy(t *testing.T) {
	r := newTestRegistry(t)
	names := r.Names()
	names[0] = "mutated"

	assert.Equal(t, "ls", r.Names()[0])
}
