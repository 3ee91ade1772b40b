package editor

// Entry is the display view of a translation key across both languages.
// It is derived by joining the two dictionaries on key and is never
// persisted directly; a blank value means the language lacks the key.
type Entry struct {
	Key    string `json:"key"`
	Source string `json:"source"`
	Target string `json:"target"`
}
