package argspec

import "fmt"

// Code categorizes parse outcomes. Every failure Parse can return
// carries exactly one of these; CodeHelp and CodeVersion are not
// failures semantically but share the same short-circuit channel.
type Code string

const (
	CodeUnknownOption      Code = "unknown_option"
	CodeMissingValue       Code = "missing_value"
	CodeInvalidValue       Code = "invalid_value"
	CodeMissingRequired    Code = "missing_required"
	CodeUnknownCommand     Code = "unknown_command"
	CodeOptionRepeated     Code = "option_repeated"
	CodeTooManyOccurrences Code = "too_many_occurrences"
	CodeMutuallyExclusive  Code = "mutually_exclusive"
	CodeMissingOneOf       Code = "missing_one_of"
	CodeTooManyPositionals Code = "too_many_positionals"
	CodeHelp               Code = "help"
	CodeVersion            Code = "version"
)

// ParseError is the single runtime error type returned by Parse. Text
// is a fully rendered message a minimal caller can print directly: for
// CodeHelp/CodeVersion it is the help or version output itself, for
// everything else it is the message followed by the usage line and a
// --help hint.
type ParseError struct {
	Code    Code
	Message string
	Token   string // offending token, when there is one
	Text    string
}

func (e *ParseError) Error() string {
	return e.Message
}

// IsHelp reports whether the error is the help short-circuit.
func (e *ParseError) IsHelp() bool { return e.Code == CodeHelp }

// IsVersion reports whether the error is the version short-circuit.
func (e *ParseError) IsVersion() bool { return e.Code == CodeVersion }

// newParseError renders the standard Text layout for a failure.
func newParseError(code Code, usage, token, format string, args ...any) *ParseError {
	msg := fmt.Sprintf(format, args...)
	return &ParseError{
		Code:    code,
		Message: msg,
		Token:   token,
		Text:    msg + "\n\n" + usage + "\n\nRun with --help for more information.",
	}
}

// SpecError reports a malformed specification. It is a programmer
// error: Compile recovers it into an ordinary error return, MustCompile
// and the internal normalizer panic with it.
type SpecError struct {
	Message string
}

func (e *SpecError) Error() string {
	return "argspec: " + e.Message
}

// specPanic aborts specification construction.
func specPanic(format string, args ...any) {
	panic(&SpecError{Message: fmt.Sprintf(format, args...)})
}
