package translator

import "context"

// Provider translates text between languages. Implementations must honor
// context cancellation; translation calls block the editing flow and run
// under a request timeout.
type Provider interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// Func adapts a plain function to the Provider interface.
type Func func(ctx context.Context, text, sourceLang, targetLang string) (string, error)

// Translate implements Provider.
func (f Func) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	return f(ctx, text, sourceLang, targetLang)
}
