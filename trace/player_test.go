package trace_test

import (
	"testing"

	"github.com/katalvlaran/dacviz/trace"
	"github.com/stretchr/testify/assert"
)

func isResult(s string) bool { return s == "result" }

// TestPlayer_Navigation walks forward and back across the trace bounds.
func TestPlayer_Navigation(t *testing.T) {
	p := trace.NewPlayer(trace.Of("a", "b", "c"), nil)

	assert.Equal(t, 0, p.Step())
	assert.False(t, p.Prev(), "cannot step before 0")

	assert.True(t, p.Next())
	assert.True(t, p.Next())
	assert.True(t, p.AtEnd())
	assert.False(t, p.Next(), "cannot step past the end")

	e, ok := p.Current()
	assert.True(t, ok)
	assert.Equal(t, "c", e)

	assert.True(t, p.Prev())
	assert.Equal(t, 1, p.Step())

	p.Reset()
	assert.Equal(t, 0, p.Step())
}

// TestPlayer_Seek accepts in-range steps only.
func TestPlayer_Seek(t *testing.T) {
	p := trace.NewPlayer(trace.Of(1, 2, 3, 4), nil)

	assert.NoError(t, p.Seek(3))
	assert.Equal(t, 3, p.Step())

	assert.ErrorIs(t, p.Seek(4), trace.ErrStepOutOfRange)
	assert.Equal(t, 3, p.Step(), "failed seek keeps the cursor")
}

// TestPlayer_JumpToFinal locates the unique answer event.
func TestPlayer_JumpToFinal(t *testing.T) {
	p := trace.NewPlayer(trace.Of("divide", "compare", "result"), isResult)
	assert.Equal(t, 2, p.FinalStep())
	assert.True(t, p.JumpToFinal())
	e, _ := p.Current()
	assert.Equal(t, "result", e)

	noAnswer := trace.NewPlayer(trace.Of("error"), isResult)
	assert.Equal(t, -1, noAnswer.FinalStep())
	assert.False(t, noAnswer.JumpToFinal())
	assert.Equal(t, 0, noAnswer.Step())
}

// TestPlayer_Empty makes sure an empty trace is inert.
func TestPlayer_Empty(t *testing.T) {
	p := trace.NewPlayer(trace.Trace[string]{}, nil)

	assert.Equal(t, -1, p.Step())
	assert.Equal(t, 0, p.Len())
	_, ok := p.Current()
	assert.False(t, ok)
	assert.False(t, p.Next())
	assert.False(t, p.Prev())
	assert.False(t, p.JumpToFinal())
	assert.ErrorIs(t, p.Seek(0), trace.ErrEmptyTrace)
}
