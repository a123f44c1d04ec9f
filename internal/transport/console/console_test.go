package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestConsole_ReadLine(t *testing.T) {
	t.Run("Returns lines in order", func(t *testing.T) {
		// Given: two lines of input, the last one without a newline
		cons := New(strings.NewReader("A1\r\nb2"), &bytes.Buffer{})
		ctx := context.Background()

		// When: reading them
		first, err := cons.ReadLine(ctx)
		require.NoError(t, err)
		second, err := cons.ReadLine(ctx)
		require.NoError(t, err)

		// Then: the line endings are stripped
		assert.Equal(t, "A1", first)
		assert.Equal(t, "b2", second)
	})

	t.Run("End of input is exhaustion", func(t *testing.T) {
		// Given: one line of input
		cons := New(strings.NewReader("A1\n"), &bytes.Buffer{})
		ctx := context.Background()
		_, err := cons.ReadLine(ctx)
		require.NoError(t, err)

		// When: reading past the end
		_, err = cons.ReadLine(ctx)

		// Then: ErrInputExhausted is returned
		require.ErrorIs(t, err, apperror.ErrInputExhausted)
	})

	t.Run("Very long lines are read whole", func(t *testing.T) {
		// Given: a line far longer than any default buffer, followed by a normal one
		long := strings.Repeat("Z", 70000)
		cons := New(strings.NewReader(long+"\nA1\n"), &bytes.Buffer{})
		ctx := context.Background()

		// When: reading both lines
		first, err := cons.ReadLine(ctx)
		require.NoError(t, err)
		second, err := cons.ReadLine(ctx)
		require.NoError(t, err)

		// Then: the long line comes back intact and the next line is not lost
		assert.Equal(t, long, first)
		assert.Equal(t, "A1", second)
	})

	t.Run("Empty lines are answers, not the end", func(t *testing.T) {
		cons := New(strings.NewReader("\n\n"), &bytes.Buffer{})
		ctx := context.Background()

		first, err := cons.ReadLine(ctx)
		require.NoError(t, err)
		second, err := cons.ReadLine(ctx)
		require.NoError(t, err)
		_, err = cons.ReadLine(ctx)

		assert.Empty(t, first)
		assert.Empty(t, second)
		require.ErrorIs(t, err, apperror.ErrInputExhausted)
	})

	t.Run("Canceled context stops reading", func(t *testing.T) {
		// Given: a canceled context
		cons := New(strings.NewReader("A1\n"), &bytes.Buffer{})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// When: reading
		_, err := cons.ReadLine(ctx)

		// Then: the context error is returned
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestConsole_Ask(t *testing.T) {
	// Given: a console with an answer waiting
	var out bytes.Buffer
	cons := New(strings.NewReader("Ada\n"), &out)

	// When: a question is asked
	answer, err := cons.Ask(context.Background(), "Player 1, what's your name?")

	// Then: the prompt is written and the answer returned
	require.NoError(t, err)
	assert.Equal(t, "Ada", answer)
	assert.Equal(t, "Player 1, what's your name?\n", out.String())
}

func TestConsole_PrintlnError(t *testing.T) {
	// Given: a console whose output is broken
	cons := New(strings.NewReader(""), failingWriter{})

	// When: writing a message
	err := cons.Println("hello")

	// Then: the write error is reported
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}
