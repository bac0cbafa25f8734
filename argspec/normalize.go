package argspec

import (
	"strings"
	"unicode"
)

// node is one normalized command in the compiled arena. Parent links
// are arena indices rather than pointers so that upward walks (display
// names, example inheritance) never touch a live caller-owned graph.
type node struct {
	spec    *Spec
	parent  int // arena index, -1 for the root
	path    []string
	display string
	idx     *index
}

// normalize validates and canonicalizes a raw specification into an
// arena of independent nodes. Any invariant violation aborts with a
// *SpecError panic; Compile recovers it at the library boundary.
func normalize(raw *Spec) []*node {
	if raw == nil {
		specPanic("nil spec")
	}
	if raw.Name == "" {
		specPanic("spec has no name")
	}

	arena := make([]*node, 0, 1+len(raw.Commands))
	normalizeNode(raw, -1, true, &arena)
	return arena
}

// normalizeNode canonicalizes one command and recurses into its
// subcommands, appending fully independent nodes to the arena.
//
//nolint:gocognit // single pass over every invariant of one spec node
func normalizeNode(raw *Spec, parent int, root bool, arena *[]*node) int {
	spec := copySpec(raw)

	seenIDs := make(map[string]bool, len(spec.Options)+len(spec.Positionals))
	longs := make(map[string]bool, len(spec.Options)+2)
	shorts := make(map[rune]bool, len(spec.Options)+2)

	for _, opt := range spec.Options {
		checkOption(spec, opt, seenIDs, longs, shorts)
	}
	checkPositionals(spec, seenIDs)
	checkConstraints(spec)

	injectBuiltins(spec, root, longs, shorts)

	n := &node{spec: spec, parent: parent}
	if parent < 0 {
		n.display = spec.Name
	} else {
		p := (*arena)[parent]
		n.display = p.display + " " + spec.Name
		n.path = append(append([]string(nil), p.path...), spec.Name)
	}
	self := len(*arena)
	*arena = append(*arena, n)

	n.idx = buildIndex(spec)

	// Children after the parent so that parent indices always point
	// backwards in the arena.
	cmdTokens := make(map[string]bool, len(spec.Commands))
	for _, sub := range spec.Commands {
		if sub == nil || sub.Name == "" {
			specPanic("%s: subcommand without a name", spec.Name)
		}
		if strings.HasPrefix(sub.Name, "-") {
			specPanic("%s: subcommand name %q starts with '-'", spec.Name, sub.Name)
		}
		if cmdTokens[sub.Name] {
			specPanic("%s: duplicate command token %q", spec.Name, sub.Name)
		}
		cmdTokens[sub.Name] = true
		for _, alias := range sub.Aliases {
			if alias == "" || cmdTokens[alias] {
				specPanic("%s: duplicate or empty command token %q", spec.Name, alias)
			}
			cmdTokens[alias] = true
		}
		n.idx.addCommand(sub.Name, sub.Aliases, normalizeNode(sub, self, false, arena))
	}

	n.spec.Commands = nil // children live in the arena, not the node
	return self
}

// checkOption enforces every per-option invariant and fills defaults.
//
//nolint:gocyclo // one branch per invariant keeps the rule list auditable
func checkOption(spec *Spec, opt *OptionSpec, ids map[string]bool, longs map[string]bool, shorts map[rune]bool) {
	if opt == nil || opt.ID == "" {
		specPanic("%s: option without an id", spec.Name)
	}
	if ids[opt.ID] {
		specPanic("%s: duplicate id %q", spec.Name, opt.ID)
	}
	ids[opt.ID] = true

	if opt.Long == "" && opt.Short == 0 {
		specPanic("%s: option %q binds neither a long nor a short token", spec.Name, opt.ID)
	}
	if opt.Long != "" {
		if len(opt.Long) < 2 || strings.HasPrefix(opt.Long, "-") || strings.ContainsFunc(opt.Long, unicode.IsSpace) {
			specPanic("%s: option %q has invalid long name %q", spec.Name, opt.ID, opt.Long)
		}
		if longs[opt.Long] {
			specPanic("%s: duplicate long name %q", spec.Name, opt.Long)
		}
		longs[opt.Long] = true
	}
	if opt.Short != 0 {
		if shorts[opt.Short] {
			specPanic("%s: duplicate short letter %q", spec.Name, opt.Short)
		}
		shorts[opt.Short] = true
	}

	if opt.Negatable && (opt.Kind != KindFlag || opt.Long == "") {
		specPanic("%s: option %q: Negatable requires a Flag with a long name", spec.Name, opt.ID)
	}
	if opt.MaxCount != 0 && opt.Kind != KindCount {
		specPanic("%s: option %q: MaxCount is only valid on Count options", spec.Name, opt.ID)
	}
	if opt.MaxCount < 0 {
		specPanic("%s: option %q: negative MaxCount", spec.Name, opt.ID)
	}
	if !opt.takesValue() && opt.Type != TypeString {
		specPanic("%s: option %q: value type on a %s option", spec.Name, opt.ID, opt.Kind)
	}
	if opt.Type == TypeEnum && len(opt.Choices) == 0 {
		specPanic("%s: option %q: enum with no choices", spec.Name, opt.ID)
	}
	if opt.Type != TypeEnum && len(opt.Choices) > 0 {
		specPanic("%s: option %q: choices on a non-enum option", spec.Name, opt.ID)
	}
	checkDefault(spec, opt)
}

// checkDefault type-checks a declared default against the option shape.
func checkDefault(spec *Spec, opt *OptionSpec) {
	if opt.Default == nil {
		return
	}
	ok := false
	switch opt.Kind {
	case KindFlag:
		_, ok = opt.Default.(bool)
	case KindCount:
		_, ok = opt.Default.(int)
	case KindValue:
		ok = defaultMatches(opt.Type, opt.Default)
	case KindValues:
		switch opt.Type {
		case TypeString, TypeEnum:
			_, ok = opt.Default.([]string)
		case TypeNumber:
			_, ok = opt.Default.([]float64)
		case TypeInteger:
			_, ok = opt.Default.([]int)
		}
	}
	if !ok {
		specPanic("%s: option %q: default %T does not match %s/%s", spec.Name, opt.ID, opt.Default, opt.Kind, opt.Type)
	}
}

func defaultMatches(t ValueType, v any) bool {
	switch t {
	case TypeString, TypeEnum:
		_, ok := v.(string)
		return ok
	case TypeNumber:
		_, ok := v.(float64)
		return ok
	case TypeInteger:
		_, ok := v.(int)
		return ok
	default:
		return false
	}
}

func checkPositionals(spec *Spec, ids map[string]bool) {
	for i, pos := range spec.Positionals {
		if pos == nil || pos.ID == "" {
			specPanic("%s: positional without an id", spec.Name)
		}
		if ids[pos.ID] {
			specPanic("%s: duplicate id %q", spec.Name, pos.ID)
		}
		ids[pos.ID] = true
		if pos.Variadic && i != len(spec.Positionals)-1 {
			specPanic("%s: variadic positional %q is not last", spec.Name, pos.ID)
		}
		if pos.Type == TypeEnum && len(pos.Choices) == 0 {
			specPanic("%s: positional %q: enum with no choices", spec.Name, pos.ID)
		}
		if pos.Metavar == "" {
			pos.Metavar = strings.ToUpper(pos.ID)
		}
	}
}

func checkConstraints(spec *Spec) {
	for _, group := range spec.Constraints.Mutex {
		if len(group) < 2 {
			specPanic("%s: mutex group needs at least two ids", spec.Name)
		}
		checkGroupIDs(spec, group)
	}
	for _, group := range spec.Constraints.OneOf {
		if len(group) == 0 {
			specPanic("%s: empty one_of group", spec.Name)
		}
		checkGroupIDs(spec, group)
	}
}

func checkGroupIDs(spec *Spec, group []string) {
	for _, id := range group {
		if findOption(spec, id) == nil {
			specPanic("%s: constraint references unknown option %q", spec.Name, id)
		}
	}
}

func findOption(spec *Spec, id string) *OptionSpec {
	for _, opt := range spec.Options {
		if opt.ID == id {
			return opt
		}
	}
	return nil
}

// injectBuiltins adds the implicit help and version options when their
// tokens are not already claimed. Help is injected at every level;
// version only at the root, and only when a version string exists.
func injectBuiltins(spec *Spec, root bool, longs map[string]bool, shorts map[rune]bool) {
	if !longs["help"] && !shorts['h'] {
		spec.Options = append(spec.Options, &OptionSpec{
			ID:    helpID,
			Short: 'h',
			Long:  "help",
			Kind:  KindFlag,
			Help:  "Show this help and exit",
		})
	}
	if root && spec.Version != "" && !longs["version"] && !shorts['V'] {
		spec.Options = append(spec.Options, &OptionSpec{
			ID:    versionID,
			Short: 'V',
			Long:  "version",
			Kind:  KindFlag,
			Help:  "Show version and exit",
		})
	}
}

// copySpec deep-copies the caller-owned specification so the compiled
// parser never aliases mutable caller state.
func copySpec(raw *Spec) *Spec {
	spec := *raw
	spec.Aliases = append([]string(nil), raw.Aliases...)
	spec.Examples = append([]string(nil), raw.Examples...)
	spec.Options = make([]*OptionSpec, len(raw.Options))
	for i, opt := range raw.Options {
		if opt == nil {
			specPanic("%s: nil option", raw.Name)
		}
		o := *opt
		o.Choices = append([]string(nil), opt.Choices...)
		spec.Options[i] = &o
	}
	spec.Positionals = make([]*PositionalSpec, len(raw.Positionals))
	for i, pos := range raw.Positionals {
		if pos == nil {
			specPanic("%s: nil positional", raw.Name)
		}
		p := *pos
		p.Choices = append([]string(nil), pos.Choices...)
		spec.Positionals[i] = &p
	}
	spec.Constraints.Mutex = copyGroups(raw.Constraints.Mutex)
	spec.Constraints.OneOf = copyGroups(raw.Constraints.OneOf)
	return &spec
}

func copyGroups(groups [][]string) [][]string {
	if groups == nil {
		return nil
	}
	out := make([][]string, len(groups))
	for i, g := range groups {
		out[i] = append([]string(nil), g...)
	}
	return out
}
