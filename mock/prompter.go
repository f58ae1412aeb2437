package mock

import (
	"context"

	"github.com/fwojciec/busroutes"
)

var _ busroutes.Prompter = (*Prompter)(nil)

// Prompter is a mock implementation of busroutes.Prompter.
type Prompter struct {
	PromptFn func(ctx context.Context, message string) (string, error)
}

func (p *Prompter) Prompt(ctx context.Context, message string) (string, error) {
	return p.PromptFn(ctx, message)
}
