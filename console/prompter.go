// Package console implements busroutes.Prompter over a reader and writer,
// typically the process's stdin and stdout.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/busroutes"
)

// Ensure Prompter implements busroutes.Prompter at compile time.
var _ busroutes.Prompter = (*Prompter)(nil)

// Prompter writes prompts to w and reads whitespace-delimited tokens from r.
// Tokens left over on a line are returned by later prompts.
type Prompter struct {
	scanner *bufio.Scanner
	w       io.Writer
}

// NewPrompter creates a Prompter reading from r and writing to w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &Prompter{scanner: scanner, w: w}
}

// Prompt writes message on its own line and returns the next token.
// Returns io.EOF when the input is exhausted.
func (p *Prompter) Prompt(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprintln(p.w, message); err != nil {
		return "", err
	}
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}
