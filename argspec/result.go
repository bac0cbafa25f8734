package argspec

// Result is the outcome of a successful parse: coerced option values
// keyed by option ID, bound positionals keyed by positional ID, any
// tolerated leftover tokens, and the matched subcommand chain.
type Result struct {
	// Argv0 is the program-name token preceding StartIndex, when the
	// caller parsed a full argv slice. Empty otherwise.
	Argv0 string

	Values      map[string]any
	Positionals map[string]any

	// Rest holds tokens tolerated under AllowUnknown, in input order.
	// Unknown short options reappear as synthesized "-x" tokens.
	Rest []string

	// Cmd is non-nil when a subcommand matched; it carries the nested
	// result for the deepest matched command.
	Cmd *CommandResult
}

// CommandResult wraps the parse result of a matched subcommand. Path is
// the chain of canonical command names from the root, so an alias on
// the command line still yields the canonical path.
type CommandResult struct {
	Name string
	Path []string
	Result
}

// Has reports whether an option value is present, whether supplied or
// defaulted.
func (r *Result) Has(id string) bool {
	_, ok := r.Values[id]
	return ok
}

// GetString returns the string value of an option and whether it was
// present with that type.
func (r *Result) GetString(id string) (string, bool) {
	v, ok := r.Values[id].(string)
	return v, ok
}

// MustGetString returns the string value of an option, or fallback when
// absent or of another type.
func (r *Result) MustGetString(id, fallback string) string {
	if v, ok := r.GetString(id); ok {
		return v
	}
	return fallback
}

// GetBool returns the boolean value of a flag.
func (r *Result) GetBool(id string) (bool, bool) {
	v, ok := r.Values[id].(bool)
	return v, ok
}

// MustGetBool returns the boolean value of a flag, or fallback.
func (r *Result) MustGetBool(id string, fallback bool) bool {
	if v, ok := r.GetBool(id); ok {
		return v
	}
	return fallback
}

// GetInt returns the int value of an integer option or the occurrence
// total of a count option.
func (r *Result) GetInt(id string) (int, bool) {
	v, ok := r.Values[id].(int)
	return v, ok
}

// MustGetInt returns the int value of an option, or fallback.
func (r *Result) MustGetInt(id string, fallback int) int {
	if v, ok := r.GetInt(id); ok {
		return v
	}
	return fallback
}

// GetFloat returns the float64 value of a number option.
func (r *Result) GetFloat(id string) (float64, bool) {
	v, ok := r.Values[id].(float64)
	return v, ok
}

// MustGetFloat returns the float64 value of a number option, or
// fallback.
func (r *Result) MustGetFloat(id string, fallback float64) float64 {
	if v, ok := r.GetFloat(id); ok {
		return v
	}
	return fallback
}

// GetStrings returns the accumulated values of a repeatable string or
// enum option.
func (r *Result) GetStrings(id string) ([]string, bool) {
	v, ok := r.Values[id].([]string)
	return v, ok
}

// GetInts returns the accumulated values of a repeatable integer
// option.
func (r *Result) GetInts(id string) ([]int, bool) {
	v, ok := r.Values[id].([]int)
	return v, ok
}

// GetFloats returns the accumulated values of a repeatable number
// option.
func (r *Result) GetFloats(id string) ([]float64, bool) {
	v, ok := r.Values[id].([]float64)
	return v, ok
}

// HasArg reports whether a positional bound at least one value.
func (r *Result) HasArg(id string) bool {
	_, ok := r.Positionals[id]
	return ok
}

// ArgString returns a single-value positional as a string.
func (r *Result) ArgString(id string) (string, bool) {
	v, ok := r.Positionals[id].(string)
	return v, ok
}

// MustArgString returns a single-value positional, or fallback.
func (r *Result) MustArgString(id, fallback string) string {
	if v, ok := r.ArgString(id); ok {
		return v
	}
	return fallback
}

// ArgInt returns a single-value integer positional.
func (r *Result) ArgInt(id string) (int, bool) {
	v, ok := r.Positionals[id].(int)
	return v, ok
}

// ArgFloat returns a single-value number positional.
func (r *Result) ArgFloat(id string) (float64, bool) {
	v, ok := r.Positionals[id].(float64)
	return v, ok
}

// ArgStrings returns the accumulated values of a collecting string
// positional.
func (r *Result) ArgStrings(id string) ([]string, bool) {
	v, ok := r.Positionals[id].([]string)
	return v, ok
}

// ArgInts returns the accumulated values of a collecting integer
// positional.
func (r *Result) ArgInts(id string) ([]int, bool) {
	v, ok := r.Positionals[id].([]int)
	return v, ok
}

// ArgFloats returns the accumulated values of a collecting number
// positional.
func (r *Result) ArgFloats(id string) ([]float64, bool) {
	v, ok := r.Positionals[id].([]float64)
	return v, ok
}

// Command walks to the deepest matched subcommand result, returning the
// receiver when no command matched.
func (r *Result) Command() (*Result, []string) {
	cur := r
	var path []string
	for cur.Cmd != nil {
		path = cur.Cmd.Path
		cur = &cur.Cmd.Result
	}
	return cur, path
}
