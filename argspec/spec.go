// Package argspec turns a declarative command-line specification into an
// immutable, reusable parser. A Spec describes options, positional
// arguments, nested subcommands and co-occurrence constraints; Compile
// validates it once, and each Parse call is a pure function from the
// compiled spec and a token sequence to a Result or a *ParseError.
package argspec

// OptionKind selects how an option consumes and accumulates input.
type OptionKind int

const (
	// KindFlag is a boolean option, true when present.
	KindFlag OptionKind = iota
	// KindCount is an option whose value is its number of occurrences.
	KindCount
	// KindValue consumes one token per occurrence, last occurrence wins.
	KindValue
	// KindValues consumes one token per occurrence and accumulates all of them.
	KindValues
)

func (k OptionKind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindCount:
		return "count"
	case KindValue:
		return "value"
	case KindValues:
		return "values"
	default:
		return "unknown"
	}
}

// ValueType selects the coercion applied to a raw token value.
type ValueType int

const (
	// TypeString passes the raw token through unchanged.
	TypeString ValueType = iota
	// TypeNumber parses the token as a float64.
	TypeNumber
	// TypeInteger parses the token as an int, rejecting fractional input.
	TypeInteger
	// TypeEnum requires membership in the option's Choices set.
	TypeEnum
)

func (t ValueType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeNumber:
		return "number"
	case TypeInteger:
		return "integer"
	case TypeEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// OptionSpec declares one flag or value option.
//
// ID must be unique within its Spec and is the key under which the
// coerced value appears in Result.Values. At least one of Short/Long
// must be set for the option to be reachable from input.
type OptionSpec struct {
	ID    string
	Short rune   // single letter, 0 for none
	Long  string // multi-character name without leading dashes

	Kind    OptionKind
	Type    ValueType // Value/Values kinds only
	Choices []string  // TypeEnum only

	Default  any
	Required bool

	// Negatable flags additionally accept --no-<Long>, binding false.
	Negatable bool

	// Once forbids supplying the option more than once. The default
	// (zero value) allows repetition, matching conventional CLIs.
	Once bool

	// MaxCount caps a Count option's occurrences; 0 means unlimited.
	MaxCount int

	// Group is the help section label; empty means "Options".
	Group string

	// Validate runs after coercion. A non-nil return rejects the value;
	// a panic inside the callback is demoted to the same rejection.
	Validate func(value any) error

	Help string
}

// label returns the option's human-readable token form for messages.
func (o *OptionSpec) label() string {
	if o.Long != "" {
		return "--" + o.Long
	}
	return "-" + string(o.Short)
}

// takesValue reports whether the option consumes a value token.
func (o *OptionSpec) takesValue() bool {
	return o.Kind == KindValue || o.Kind == KindValues
}

// PositionalKind selects how a positional slot accumulates input.
type PositionalKind int

const (
	// PositionalValue binds a single token.
	PositionalValue PositionalKind = iota
	// PositionalValues accumulates every token routed to the slot.
	PositionalValues
)

// PositionalSpec declares one positional argument slot. Slots fill in
// declaration order; a Variadic slot must be declared last and consumes
// all remaining positional tokens.
type PositionalSpec struct {
	ID       string
	Metavar  string // display name in usage; defaults to upper-cased ID
	Kind     PositionalKind
	Type     ValueType
	Choices  []string // TypeEnum only
	Required bool
	Variadic bool
	Validate func(value any) error
	Help     string
}

func (p *PositionalSpec) collects() bool {
	return p.Kind == PositionalValues || p.Variadic
}

// Constraints declares co-occurrence rules over option IDs within one
// Spec scope. Mutex groups allow at most one member to be present;
// OneOf groups require at least one.
type Constraints struct {
	Mutex [][]string
	OneOf [][]string
}

// Spec is one node of a command specification: the root command or any
// nested subcommand. Subcommands use the same shape with Name (and
// optionally Aliases) set; Version is only meaningful on the root.
type Spec struct {
	Name    string
	Aliases []string
	Version string

	Summary     string
	Description string

	Options     []*OptionSpec
	Positionals []*PositionalSpec
	Commands    []*Spec

	Constraints Constraints

	// Examples are inherited by subcommands that declare none of their
	// own; a subcommand's Examples always override inheritance.
	Examples []string
	Epilog   string
}

// IDs reserved for the implicitly injected options.
const (
	helpID    = "__help"
	versionID = "__version"
)
