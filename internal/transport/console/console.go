package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Console reads one line per prompt and writes plain text back.
type Console struct {
	reader *bufio.Reader
	writer io.Writer
}

func New(reader io.Reader, writer io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

// Println - writes the message followed by a newline.
func (that *Console) Println(message string) error {
	if _, err := fmt.Fprintln(that.writer, message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

// ReadLine - blocks until the next line is available. Lines have no length limit and the line ending is dropped.
// End of input is reported as apperror.ErrInputExhausted.
func (that *Console) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	line, err := that.reader.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		// a last line without a newline still counts
		if line == "" {
			return "", apperror.ErrInputExhausted
		}
	default:
		return "", fmt.Errorf("failed to read line: %w", err)
	}

	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), nil
}

// Ask - prints the prompt and returns the answer.
func (that *Console) Ask(ctx context.Context, prompt string) (string, error) {
	if err := that.Println(prompt); err != nil {
		return "", err
	}

	return that.ReadLine(ctx)
}
