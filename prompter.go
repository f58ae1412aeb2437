package busroutes

import "context"

// Prompter asks the user for input.
type Prompter interface {
	// Prompt shows message and returns the next whitespace-delimited token
	// typed by the user. Returns io.EOF when input is exhausted.
	Prompt(ctx context.Context, message string) (string, error)
}
