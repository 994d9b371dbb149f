package env

// Accessor reads environment variables from its lookup on every call so
// values evaluated late (inside lazy credentials) reflect the current state.
type Accessor struct {
	lookup Lookup
}

// NewAccessor returns an accessor over lookup, or over the process environment when lookup is nil.
func NewAccessor(lookup Lookup) *Accessor {
	if lookup == nil {
		lookup = OS()
	}
	return &Accessor{lookup: lookup}
}

// Get returns the value of name or a *MissingVariableError if it is unset or empty.
func (a *Accessor) Get(name string) (string, error) {
	v, ok := a.lookup(name)
	if !ok || v == "" {
		return "", &MissingVariableError{Name: name}
	}
	return v, nil
}

// GetOr returns the value of name, or def when it is unset or empty.
func (a *Accessor) GetOr(name, def string) string {
	v, err := a.Get(name)
	if err != nil {
		return def
	}
	return v
}

// Flag reports whether name is set to exactly "1".
func (a *Accessor) Flag(name string) bool {
	v, ok := a.lookup(name)
	return ok && v == "1"
}
