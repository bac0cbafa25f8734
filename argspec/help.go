package argspec

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

const (
	defaultHelpWidth = 100
	maxLabelWidth    = 32
	defaultGroup     = "Options"
	commonGroup      = "Common options"
)

// Usage returns the one-line usage summary for the root command.
func (p *Parser) Usage() string {
	return p.usageOf(p.arena[0])
}

// Help renders the full help text for the root command at the default
// width of 100 columns.
func (p *Parser) Help() string {
	return p.helpOf(p.arena[0], defaultHelpWidth)
}

// HelpWidth renders the full help text wrapped to the given width.
func (p *Parser) HelpWidth(width int) string {
	if width <= 0 {
		width = defaultHelpWidth
	}
	return p.helpOf(p.arena[0], width)
}

func (p *Parser) usageOf(n *node) string {
	var b strings.Builder
	b.WriteString("Usage: ")
	b.WriteString(n.display)
	if len(n.spec.Options) > 0 {
		b.WriteString(" [OPTIONS]")
	}
	if len(n.idx.commandNames) > 0 {
		b.WriteString(" <COMMAND>")
	}
	for _, pos := range n.spec.Positionals {
		b.WriteByte(' ')
		if pos.Required {
			b.WriteString(pos.Metavar)
		} else {
			b.WriteString("[" + pos.Metavar + "]")
		}
		if pos.Variadic {
			b.WriteString("...")
		}
	}
	return b.String()
}

// helpOf renders the sectioned help text for one command node.
//
//nolint:gocognit // one section per block, top to bottom like the output itself
func (p *Parser) helpOf(n *node, width int) string {
	spec := n.spec
	var b strings.Builder

	if spec.Summary != "" {
		b.WriteString(n.display + " - " + spec.Summary + "\n")
	} else {
		b.WriteString(n.display + "\n")
	}
	b.WriteString("\n" + p.usageOf(n) + "\n")

	if spec.Description != "" {
		b.WriteString("\n" + wordwrap.WrapString(spec.Description, uint(width)) + "\n")
	}

	for _, g := range groupOptions(spec) {
		rows := make([]labeledRow, 0, len(g.options))
		for _, opt := range g.options {
			rows = append(rows, labeledRow{optionLabel(opt), optionHelp(opt)})
		}
		writeSection(&b, g.name+":", rows, width)
	}

	if len(spec.Positionals) > 0 {
		rows := make([]labeledRow, 0, len(spec.Positionals))
		for _, pos := range spec.Positionals {
			label := pos.Metavar
			if pos.Variadic {
				label += "..."
			}
			rows = append(rows, labeledRow{label, positionalHelp(pos)})
		}
		writeSection(&b, "Arguments:", rows, width)
	}

	if len(n.idx.commandNames) > 0 {
		rows := make([]labeledRow, 0, len(n.idx.commandNames))
		for _, name := range n.idx.commandNames {
			label := name
			if aliases := n.idx.aliases[name]; len(aliases) > 0 {
				label += " (aliases: " + strings.Join(aliases, ", ") + ")"
			}
			child := p.arena[n.idx.commandMap[name]]
			rows = append(rows, labeledRow{label, child.spec.Summary})
		}
		writeSection(&b, "Commands:", rows, width)
		b.WriteString("\nRun '" + n.display + " <command> --help' for more information.\n")
	}

	if examples := p.examplesFor(n); len(examples) > 0 {
		b.WriteString("\nExamples:\n")
		for _, ex := range examples {
			b.WriteString("  " + ex + "\n")
		}
	}

	if spec.Epilog != "" {
		b.WriteString("\n" + wordwrap.WrapString(spec.Epilog, uint(width)) + "\n")
	}

	return b.String()
}

// examplesFor walks up the arena to the nearest node that declares
// examples; a command's own examples always win over inherited ones.
func (p *Parser) examplesFor(n *node) []string {
	for cur := n; ; cur = p.arena[cur.parent] {
		if len(cur.spec.Examples) > 0 {
			return cur.spec.Examples
		}
		if cur.parent < 0 {
			return nil
		}
	}
}

type labeledRow struct {
	label string
	text  string
}

type optionGroup struct {
	name    string
	options []*OptionSpec
}

// groupOptions buckets options by their group label in first-appearance
// order. The implicit help/version pair moves to its own trailing
// "Common options" section only when the Spec declares at least one
// explicit group of its own.
func groupOptions(spec *Spec) []optionGroup {
	explicit := false
	for _, opt := range spec.Options {
		if opt.Group != "" {
			explicit = true
			break
		}
	}

	var groups []optionGroup
	byName := map[string]int{}
	add := func(name string, opt *OptionSpec) {
		gi, ok := byName[name]
		if !ok {
			gi = len(groups)
			byName[name] = gi
			groups = append(groups, optionGroup{name: name})
		}
		groups[gi].options = append(groups[gi].options, opt)
	}

	for _, opt := range spec.Options {
		name := opt.Group
		if name == "" {
			name = defaultGroup
			if explicit && (opt.ID == helpID || opt.ID == versionID) {
				name = commonGroup
			}
		}
		add(name, opt)
	}
	return groups
}

func optionLabel(opt *OptionSpec) string {
	var b strings.Builder
	switch {
	case opt.Short != 0 && opt.Long != "":
		b.WriteString("-" + string(opt.Short) + ", --" + opt.Long)
	case opt.Short != 0:
		b.WriteString("-" + string(opt.Short))
	default:
		b.WriteString("    --" + opt.Long)
	}
	if opt.takesValue() {
		b.WriteString(" <" + strings.ToUpper(opt.ID) + ">")
	}
	return b.String()
}

func optionHelp(opt *OptionSpec) string {
	text := opt.Help
	if opt.Type == TypeEnum && len(opt.Choices) > 0 {
		text = appendNote(text, "one of: "+strings.Join(opt.Choices, ", "))
	}
	if opt.Default != nil {
		text = appendNote(text, sprintDefault(opt.Default))
	}
	if opt.Required {
		text = appendNote(text, "required")
	}
	return text
}

func positionalHelp(pos *PositionalSpec) string {
	text := pos.Help
	if pos.Type == TypeEnum && len(pos.Choices) > 0 {
		text = appendNote(text, "one of: "+strings.Join(pos.Choices, ", "))
	}
	if pos.Required {
		text = appendNote(text, "required")
	}
	return text
}

func appendNote(text, note string) string {
	if text == "" {
		return "(" + note + ")"
	}
	return text + " (" + note + ")"
}

func sprintDefault(v any) string {
	return fmt.Sprintf("default: %v", v)
}

// writeSection renders one aligned two-column section. Labels pad to
// the longest label capped at 32 columns; overlong labels get a line of
// their own with the text starting on the next line. Wrapped right-hand
// continuation lines align under the text column.
func writeSection(b *strings.Builder, title string, rows []labeledRow, width int) {
	b.WriteString("\n" + title + "\n")

	labelWidth := 0
	for _, r := range rows {
		if l := len(r.label); l > labelWidth {
			labelWidth = l
		}
	}
	if labelWidth > maxLabelWidth {
		labelWidth = maxLabelWidth
	}

	textCol := 2 + labelWidth + 2
	textWidth := width - textCol
	if textWidth < 16 {
		textWidth = 16
	}
	indent := strings.Repeat(" ", textCol)

	for _, r := range rows {
		if r.text == "" {
			b.WriteString("  " + r.label + "\n")
			continue
		}
		lines := strings.Split(wordwrap.WrapString(r.text, uint(textWidth)), "\n")
		if len(r.label) > labelWidth {
			b.WriteString("  " + r.label + "\n")
			for _, line := range lines {
				b.WriteString(indent + line + "\n")
			}
			continue
		}
		b.WriteString("  " + r.label + strings.Repeat(" ", labelWidth-len(r.label)+2) + lines[0] + "\n")
		for _, line := range lines[1:] {
			b.WriteString(indent + line + "\n")
		}
	}
}
