package argspec

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dzonerzy/go-argspec/internal/fuzzy"
	"github.com/dzonerzy/go-argspec/internal/intern"
	"github.com/dzonerzy/go-argspec/internal/pool"
)

// suggestions are offered up to this edit distance.
const suggestDistance = 2

// EventKind identifies a parse observation delivered through OnEvent.
type EventKind string

const (
	EventOption     EventKind = "option"
	EventPositional EventKind = "positional"
	EventCommand    EventKind = "command"
	EventUnknown    EventKind = "unknown"
	EventRest       EventKind = "rest"
	EventHelp       EventKind = "help"
	EventVersion    EventKind = "version"
)

// Event is one parse observation: which spec entry matched, the input
// token that triggered it, and the coerced value when there is one.
type Event struct {
	Kind  EventKind
	ID    string
	Token string
	Value any
}

// ParseOptions configures a single Parse call.
type ParseOptions struct {
	// StartIndex skips leading tokens; the token just before it, when
	// present, is recorded as Result.Argv0 (the program-name slot).
	StartIndex int

	// AllowUnknown collects unrecognized tokens into Result.Rest
	// instead of failing.
	AllowUnknown bool

	// StopAtFirstPositional switches to positional state as soon as a
	// token binds as a positional, so option-shaped tokens after it are
	// taken literally.
	StopAtFirstPositional bool

	// OnEvent, when set, is invoked synchronously for every parse
	// observation. Purely informational; it cannot alter the parse.
	OnEvent func(Event)
}

// Parser is an immutable compiled specification. It is safe to reuse
// across any number of Parse calls: all per-call bookkeeping is
// allocated fresh (or recycled through an opaque pool) per call.
type Parser struct {
	arena []*node
}

// Compile normalizes and indexes a specification. A malformed spec is
// a programmer error, reported here once; it can never surface from
// Parse.
func Compile(spec *Spec) (p *Parser, err error) {
	defer func() {
		if r := recover(); r != nil {
			se, ok := r.(*SpecError)
			if !ok {
				panic(r)
			}
			p, err = nil, se
		}
	}()
	return MustCompile(spec), nil
}

// MustCompile is Compile for specs known good at build time; it panics
// with a *SpecError on any invariant violation.
func MustCompile(spec *Spec) *Parser {
	return &Parser{arena: normalize(spec)}
}

// scratch is the per-node transient state of one parse pass.
type scratch struct {
	seen map[string]int
}

var scratchPool = pool.NewWithReset(
	func() *scratch { return &scratch{seen: make(map[string]int, 8)} },
	func(s *scratch) { clear(s.seen) },
)

// Parse consumes tokens against the compiled specification and returns
// a Result, or a *ParseError describing the first failure. CodeHelp and
// CodeVersion short-circuits also arrive as the error value; check
// IsHelp/IsVersion before treating them as failures.
func (p *Parser) Parse(tokens []string, opts *ParseOptions) (*Result, error) {
	var o ParseOptions
	if opts != nil {
		o = *opts
	}

	start := o.StartIndex
	if start < 0 {
		start = 0
	}
	if start > len(tokens) {
		start = len(tokens)
	}

	res, perr := p.parseNode(0, tokens[start:], &o)
	if perr != nil {
		return nil, perr
	}
	if start > 0 {
		res.Argv0 = tokens[start-1]
	}
	return res, nil
}

// parseNode runs the token state machine for one command node,
// recursing into child nodes on subcommand descent.
//
//nolint:gocognit,gocyclo,cyclop // the classification order of the state machine reads best as one loop
func (p *Parser) parseNode(ni int, tokens []string, opts *ParseOptions) (*Result, *ParseError) {
	n := p.arena[ni]
	spec := n.spec

	res := &Result{
		Values:      make(map[string]any, len(spec.Options)),
		Positionals: make(map[string]any, len(spec.Positionals)),
	}
	sc := scratchPool.Get()
	defer scratchPool.Put(sc)

	posIdx := 0
	positional := false // one-way switch for this node's tokens

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if positional {
			if perr := p.bindPositional(n, res, tok, &posIdx, opts); perr != nil {
				return nil, perr
			}
			continue
		}

		switch {
		case tok == "--":
			positional = true

		case strings.HasPrefix(tok, "--"):
			advance, perr := p.applyLong(n, res, sc, tok, tokens[i+1:], opts)
			if perr != nil {
				return nil, perr
			}
			i += advance

		case len(tok) > 1 && tok[0] == '-':
			advance, perr := p.applyBundle(n, res, sc, tok, tokens[i+1:], opts)
			if perr != nil {
				return nil, perr
			}
			i += advance

		default:
			if len(n.idx.commandMap) > 0 {
				if ci, ok := n.idx.commandMap[tok]; ok {
					child, perr := p.parseNode(ci, tokens[i+1:], opts)
					if perr != nil {
						return nil, perr
					}
					cn := p.arena[ci]
					res.Cmd = &CommandResult{Name: cn.spec.Name, Path: cn.path, Result: *child}
					emit(opts, Event{Kind: EventCommand, ID: cn.spec.Name, Token: tok})
					i = len(tokens) // child consumed everything after the command token
					continue
				}
				if i == 0 && len(spec.Positionals) == 0 {
					return nil, p.unknownCommand(n, tok)
				}
			}
			if perr := p.bindPositional(n, res, tok, &posIdx, opts); perr != nil {
				return nil, perr
			}
			if opts.StopAtFirstPositional {
				positional = true
			}
		}
	}

	if perr := p.validateRequired(n, res, sc); perr != nil {
		return nil, perr
	}
	if perr := p.validateConstraints(n, sc); perr != nil {
		return nil, perr
	}
	applyDefaults(spec, res, sc)
	return res, nil
}

// applyLong handles a --token: separator aside, long options split on
// the first '=', with no-<long> negation for negatable flags. Returns
// how many following tokens were consumed as a value.
func (p *Parser) applyLong(n *node, res *Result, sc *scratch, tok string, rest []string, opts *ParseOptions) (int, *ParseError) {
	name, inline, hasInline := strings.Cut(tok[2:], "=")

	opt := n.idx.longMap[name]
	negated := false
	if opt == nil {
		if base, ok := strings.CutPrefix(name, "no-"); ok {
			if cand := n.idx.longMap[base]; cand != nil && cand.Negatable {
				opt, negated = cand, true
			}
		}
	}
	if opt == nil {
		if opts.AllowUnknown {
			res.Rest = append(res.Rest, tok)
			emit(opts, Event{Kind: EventUnknown, Token: tok})
			return 0, nil
		}
		return 0, p.unknownOption(n, tok, name)
	}

	if perr := p.intercept(n, opt, opts); perr != nil {
		return 0, perr
	}

	if negated {
		if hasInline {
			return 0, newParseError(CodeInvalidValue, p.usageOf(n), tok, "option --%s takes no value", name)
		}
		return 0, p.applyOption(n, res, sc, opt, tok, "false", opts)
	}

	if opt.takesValue() {
		if hasInline {
			return 0, p.applyOption(n, res, sc, opt, tok, inline, opts)
		}
		if len(rest) == 0 {
			return 0, newParseError(CodeMissingValue, p.usageOf(n), tok, "option --%s requires a value", name)
		}
		return 1, p.applyOption(n, res, sc, opt, tok, rest[0], opts)
	}

	// Flag or Count. An inline value is only meaningful for flags.
	if hasInline {
		if opt.Kind != KindFlag {
			return 0, newParseError(CodeInvalidValue, p.usageOf(n), tok, "option --%s takes no value", name)
		}
		return 0, p.applyOption(n, res, sc, opt, tok, inline, opts)
	}
	return 0, p.applyOption(n, res, sc, opt, tok, "true", opts)
}

// applyBundle disassembles a short bundle left to right. A value-taking
// option is value-hungry: any untouched remainder of the bundle becomes
// its raw value and scanning stops. Returns how many following tokens
// were consumed as a value.
func (p *Parser) applyBundle(n *node, res *Result, sc *scratch, tok string, rest []string, opts *ParseOptions) (int, *ParseError) {
	body := tok[1:]
	for bi, r := range body {
		opt := n.idx.shortMap[r]
		if opt == nil {
			if opts.AllowUnknown {
				synth := intern.DashChar(r)
				res.Rest = append(res.Rest, synth)
				emit(opts, Event{Kind: EventUnknown, Token: synth})
				continue
			}
			// No fuzzy guessing over single letters.
			return 0, newParseError(CodeUnknownOption, p.usageOf(n), tok, "unknown option: -%s", intern.Char(r))
		}

		if perr := p.intercept(n, opt, opts); perr != nil {
			return 0, perr
		}

		if opt.takesValue() {
			if remainder := body[bi+utf8.RuneLen(r):]; remainder != "" {
				return 0, p.applyOption(n, res, sc, opt, tok, remainder, opts)
			}
			if len(rest) == 0 {
				return 0, newParseError(CodeMissingValue, p.usageOf(n), tok, "option -%s requires a value", intern.Char(r))
			}
			return 1, p.applyOption(n, res, sc, opt, tok, rest[0], opts)
		}

		if perr := p.applyOption(n, res, sc, opt, tok, "true", opts); perr != nil {
			return 0, perr
		}
	}
	return 0, nil
}

// intercept short-circuits the parse the moment the implicit help or
// version option is recognized, before generic option application.
func (p *Parser) intercept(n *node, opt *OptionSpec, opts *ParseOptions) *ParseError {
	switch opt.ID {
	case helpID:
		emit(opts, Event{Kind: EventHelp, ID: helpID})
		return &ParseError{Code: CodeHelp, Message: "help requested", Text: p.helpOf(n, defaultHelpWidth)}
	case versionID:
		emit(opts, Event{Kind: EventVersion, ID: versionID})
		root := p.arena[0].spec
		return &ParseError{Code: CodeVersion, Message: "version requested", Text: root.Name + " " + root.Version}
	default:
		return nil
	}
}

// applyOption records one occurrence of an option, coercing and
// validating the raw value according to the option's kind.
func (p *Parser) applyOption(n *node, res *Result, sc *scratch, opt *OptionSpec, tok, raw string, opts *ParseOptions) *ParseError {
	sc.seen[opt.ID]++
	if opt.Once && sc.seen[opt.ID] > 1 {
		return newParseError(CodeOptionRepeated, p.usageOf(n), tok, "option %s may only be given once", opt.label())
	}

	var value any
	switch opt.Kind {
	case KindFlag:
		b, ok := parseBool(raw)
		if !ok {
			return newParseError(CodeInvalidValue, p.usageOf(n), tok, "invalid value %q for %s: not a boolean", raw, opt.label())
		}
		value = b
		res.Values[opt.ID] = b

	case KindCount:
		count, _ := res.Values[opt.ID].(int)
		count++
		if opt.MaxCount > 0 && count > opt.MaxCount {
			return newParseError(CodeTooManyOccurrences, p.usageOf(n), tok,
				"option %s given %d times, at most %d allowed", opt.label(), count, opt.MaxCount)
		}
		value = count
		res.Values[opt.ID] = count

	case KindValue, KindValues:
		v, reason := coerce(opt.Type, opt.Choices, raw)
		if reason == "" && opt.Validate != nil {
			reason = runValidator(opt.Validate, v)
		}
		if reason != "" {
			return newParseError(CodeInvalidValue, p.usageOf(n), tok, "invalid value %q for %s: %s", raw, opt.label(), reason)
		}
		value = v
		if opt.Kind == KindValue {
			res.Values[opt.ID] = v
		} else {
			res.Values[opt.ID] = appendTyped(res.Values[opt.ID], opt.Type, v)
		}
	}

	emit(opts, Event{Kind: EventOption, ID: opt.ID, Token: tok, Value: value})
	return nil
}

// bindPositional routes a token to the next open positional slot.
func (p *Parser) bindPositional(n *node, res *Result, tok string, posIdx *int, opts *ParseOptions) *ParseError {
	positionals := n.spec.Positionals
	if *posIdx >= len(positionals) {
		if opts.AllowUnknown {
			res.Rest = append(res.Rest, tok)
			emit(opts, Event{Kind: EventRest, Token: tok})
			return nil
		}
		return newParseError(CodeTooManyPositionals, p.usageOf(n), tok, "unexpected argument: %s", tok)
	}

	pos := positionals[*posIdx]
	v, reason := coerce(pos.Type, pos.Choices, tok)
	if reason == "" && pos.Validate != nil {
		reason = runValidator(pos.Validate, v)
	}
	if reason != "" {
		return newParseError(CodeInvalidValue, p.usageOf(n), tok, "invalid value %q for %s: %s", tok, pos.Metavar, reason)
	}

	if pos.collects() {
		res.Positionals[pos.ID] = appendTyped(res.Positionals[pos.ID], pos.Type, v)
	} else {
		res.Positionals[pos.ID] = v
		*posIdx++
	}
	emit(opts, Event{Kind: EventPositional, ID: pos.ID, Token: tok, Value: v})
	return nil
}

// validateRequired runs after the token loop: required options first,
// then required positionals, in declaration order.
func (p *Parser) validateRequired(n *node, res *Result, sc *scratch) *ParseError {
	for _, opt := range n.spec.Options {
		if opt.Required && sc.seen[opt.ID] == 0 {
			return newParseError(CodeMissingRequired, p.usageOf(n), "", "missing required option: %s", opt.label())
		}
	}
	for _, pos := range n.spec.Positionals {
		if !pos.Required {
			continue
		}
		if _, ok := res.Positionals[pos.ID]; !ok {
			return newParseError(CodeMissingRequired, p.usageOf(n), "", "missing required argument: %s", pos.Metavar)
		}
	}
	return nil
}

// validateConstraints enforces mutex and one_of groups over the set of
// options actually supplied.
func (p *Parser) validateConstraints(n *node, sc *scratch) *ParseError {
	for _, group := range n.spec.Constraints.Mutex {
		var present []string
		for _, id := range group {
			if sc.seen[id] > 0 {
				present = append(present, n.idx.byID[id].label())
			}
		}
		if len(present) > 1 {
			return newParseError(CodeMutuallyExclusive, p.usageOf(n), "",
				"options %s cannot be used together", strings.Join(present, ", "))
		}
	}
	for _, group := range n.spec.Constraints.OneOf {
		found := false
		labels := make([]string, 0, len(group))
		for _, id := range group {
			labels = append(labels, n.idx.byID[id].label())
			if sc.seen[id] > 0 {
				found = true
			}
		}
		if !found {
			return newParseError(CodeMissingOneOf, p.usageOf(n), "",
				"at least one of %s is required", strings.Join(labels, ", "))
		}
	}
	return nil
}

// applyDefaults fills kind-appropriate defaults for options that were
// never supplied: false for Flag, 0 for Count, an empty typed slice for
// Values, the declared default (when any) otherwise.
func applyDefaults(spec *Spec, res *Result, sc *scratch) {
	for _, opt := range spec.Options {
		if sc.seen[opt.ID] > 0 {
			continue
		}
		if opt.ID == helpID || opt.ID == versionID {
			continue
		}
		switch opt.Kind {
		case KindFlag:
			if opt.Default != nil {
				res.Values[opt.ID] = opt.Default
			} else {
				res.Values[opt.ID] = false
			}
		case KindCount:
			if opt.Default != nil {
				res.Values[opt.ID] = opt.Default
			} else {
				res.Values[opt.ID] = 0
			}
		case KindValues:
			if opt.Default != nil {
				res.Values[opt.ID] = opt.Default
			} else {
				res.Values[opt.ID] = emptyTyped(opt.Type)
			}
		case KindValue:
			if opt.Default != nil {
				res.Values[opt.ID] = opt.Default
			}
		}
	}
}

// unknownOption builds the unknown_option failure, with a fuzzy
// suggestion over the known long names plus synthesized no- forms.
func (p *Parser) unknownOption(n *node, tok, name string) *ParseError {
	msg := "unknown option: --" + name
	if best := fuzzy.Best(name, n.idx.longCandidates(n.spec), suggestDistance); best != "" {
		msg += fmt.Sprintf(" (did you mean '--%s'?)", best)
	}
	return newParseError(CodeUnknownOption, p.usageOf(n), tok, "%s", msg)
}

// unknownCommand builds the unknown_command failure, suggesting over
// canonical command names only, never aliases.
func (p *Parser) unknownCommand(n *node, tok string) *ParseError {
	msg := "unknown command: " + tok
	if best := fuzzy.Best(tok, n.idx.commandNames, suggestDistance); best != "" {
		msg += fmt.Sprintf(" (did you mean '%s'?)", best)
	}
	return newParseError(CodeUnknownCommand, p.usageOf(n), tok, "%s", msg)
}

func emit(opts *ParseOptions, ev Event) {
	if opts.OnEvent != nil {
		opts.OnEvent(ev)
	}
}

// coerce converts a raw token according to the value type, returning a
// reason string on rejection.
func coerce(t ValueType, choices []string, raw string) (any, string) {
	switch t {
	case TypeString:
		return raw, ""
	case TypeNumber:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, "not a number"
		}
		return f, ""
	case TypeInteger:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, "not a number"
		}
		if f != math.Trunc(f) || f < math.MinInt || f > math.MaxInt {
			return nil, "not an integer"
		}
		return int(f), ""
	case TypeEnum:
		for _, choice := range choices {
			if raw == choice {
				return raw, ""
			}
		}
		return nil, "must be one of: " + strings.Join(choices, ", ")
	default:
		return nil, "unsupported value type"
	}
}

// runValidator invokes a user validation callback, demoting both error
// returns and panics to a plain rejection reason so a buggy validator
// cannot crash the parse.
func runValidator(fn func(any) error, v any) (reason string) {
	defer func() {
		if r := recover(); r != nil {
			reason = fmt.Sprintf("validator panicked: %v", r)
		}
	}()
	if err := fn(v); err != nil {
		return err.Error()
	}
	return ""
}

func parseBool(raw string) (bool, bool) {
	switch raw {
	case "true", "1":
		return true, true
	case "false", "0":
		return false, true
	default:
		return false, false
	}
}

// appendTyped accumulates a coerced value into the typed slice for a
// Values option or collecting positional.
func appendTyped(current any, t ValueType, v any) any {
	switch t {
	case TypeString, TypeEnum:
		s, _ := current.([]string)
		return append(s, v.(string))
	case TypeNumber:
		s, _ := current.([]float64)
		return append(s, v.(float64))
	case TypeInteger:
		s, _ := current.([]int)
		return append(s, v.(int))
	default:
		return current
	}
}

func emptyTyped(t ValueType) any {
	switch t {
	case TypeNumber:
		return []float64{}
	case TypeInteger:
		return []int{}
	default:
		return []string{}
	}
}
