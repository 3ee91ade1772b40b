package server

import "sync"

// WarningRecorder captures non-fatal session warnings (translation
// unavailability) so handlers can attach them to responses. Wire its Record
// method into the session via editor.WithWarningHandler.
type WarningRecorder struct {
	mu   sync.Mutex
	last error
}

// NewWarningRecorder creates an empty recorder.
func NewWarningRecorder() *WarningRecorder {
	return &WarningRecorder{}
}

// Record stores the warning, replacing any previous one.
func (r *WarningRecorder) Record(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = err
}

// Take returns the stored warning and clears it.
func (r *WarningRecorder) Take() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	err := r.last
	r.last = nil
	return err
}
