package registry

// Args is the argument mapping handed to a handler. JSON decoding produces
// float64 for numbers and []any for arrays, so the getters normalize those
// shapes and supply defaults for omitted optional parameters. Presence of
// required parameters has already been checked by the dispatcher.
type Args map[string]any

// Has reports whether the argument is present, regardless of its value.
func (a Args) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// String returns the argument as a string, or "" when absent or not a string.
func (a Args) String(name string) string {
	return a.StringOr(name, "")
}

// StringOr returns the argument as a string, or fallback when absent, empty,
// or not a string.
func (a Args) StringOr(name, fallback string) string {
	if v, ok := a[name].(string); ok && v != "" {
		return v
	}
	return fallback
}

// Int returns the argument as an int, or fallback when absent or not numeric.
func (a Args) Int(name string, fallback int) int {
	switch v := a[name].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return fallback
}

// Bool returns the argument as a bool, or fallback when absent or not a bool.
func (a Args) Bool(name string, fallback bool) bool {
	if v, ok := a[name].(bool); ok {
		return v
	}
	return fallback
}

// Strings returns the argument as a string slice. Non-string elements are
// skipped; absent or non-array values yield nil.
func (a Args) Strings(name string) []string {
	raw, ok := a[name].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, el := range raw {
		if s, ok := el.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
