// Package translator defines the machine-translation provider abstraction
// used to auto-fill missing dictionary entries.
//
// A Provider takes source text with a language pair and returns translated
// text. Provider failures are deliberately soft: callers treat any error
// wrapping ErrUnavailable as "fall back to manual entry", never as a fatal
// condition.
//
//	var p translator.Provider = deepl.New(cfg)
//
//	text, err := p.Translate(ctx, "Cześć", "pl", "en-GB")
//	if errors.Is(err, translator.ErrUnavailable) {
//		// leave the target value empty, let the user fill it in
//	}
//
// The Func adapter turns an ordinary function into a Provider, which keeps
// tests free of mock scaffolding.
package translator
