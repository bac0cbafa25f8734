package argspec

// index holds the O(1) lookup structures for one normalized spec node.
// Construction cannot fail: the normalizer has already rejected every
// duplicate token before an index is built.
type index struct {
	byID     map[string]*OptionSpec
	longMap  map[string]*OptionSpec
	shortMap map[rune]*OptionSpec

	// commandMap resolves every declared name and alias to the arena
	// index of the same canonical child node.
	commandMap map[string]int
	// commandNames keeps the canonical names in declaration order for
	// suggestions and help listings.
	commandNames []string
	aliases      map[string][]string
}

func buildIndex(spec *Spec) *index {
	idx := &index{
		byID:       make(map[string]*OptionSpec, len(spec.Options)),
		longMap:    make(map[string]*OptionSpec, len(spec.Options)),
		shortMap:   make(map[rune]*OptionSpec, len(spec.Options)),
		commandMap: make(map[string]int),
		aliases:    make(map[string][]string),
	}
	for _, opt := range spec.Options {
		idx.byID[opt.ID] = opt
		if opt.Long != "" {
			idx.longMap[opt.Long] = opt
		}
		if opt.Short != 0 {
			idx.shortMap[opt.Short] = opt
		}
	}
	return idx
}

// addCommand registers one canonical child plus its alias tokens.
func (idx *index) addCommand(name string, aliases []string, arenaIndex int) {
	idx.commandMap[name] = arenaIndex
	idx.commandNames = append(idx.commandNames, name)
	idx.aliases[name] = append([]string(nil), aliases...)
	for _, alias := range aliases {
		idx.commandMap[alias] = arenaIndex
	}
}

// longCandidates lists every long-option token a suggestion may target,
// including synthesized no- forms for negatable flags.
func (idx *index) longCandidates(spec *Spec) []string {
	out := make([]string, 0, len(spec.Options)+2)
	for _, opt := range spec.Options {
		if opt.Long == "" {
			continue
		}
		out = append(out, opt.Long)
		if opt.Negatable {
			out = append(out, "no-"+opt.Long)
		}
	}
	return out
}
