package ports

import "context"

// TextGenerator sends a prompt to a generative text service
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	ModelName() string
}
