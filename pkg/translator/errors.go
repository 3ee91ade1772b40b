package translator

import "errors"

// ErrUnavailable is returned when the provider cannot serve a translation:
// missing credentials, network failure, timeout, or a malformed response.
// Callers recover by degrading to manual entry.
var ErrUnavailable = errors.New("translator: provider unavailable")
