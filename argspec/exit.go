package argspec

import "errors"

// ExitError is a sentinel a caller can return from its own command
// handling to request a specific process exit code.
type ExitError struct {
	ExitCode int
	Err      error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit"
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCodeDefaults holds the fallback codes used when no per-code
// mapping matches.
type ExitCodeDefaults struct {
	Success         int // default: 0
	GeneralError    int // default: 1
	MisusageError   int // default: 2
	ValidationError int // default: 3
}

func defaultExitDefaults() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, GeneralError: 1, MisusageError: 2, ValidationError: 3}
}

// ExitCodeManager maps parse outcomes to process exit codes so a thin
// main function can end with os.Exit(m.Resolve(err)).
type ExitCodeManager struct {
	byCode   map[Code]int
	defaults ExitCodeDefaults
}

// NewExitCodeManager builds a manager with conventional CLI mappings:
// help and version exit 0, token-level misuse exits 2, value and
// constraint failures exit 3.
func NewExitCodeManager() *ExitCodeManager {
	m := &ExitCodeManager{
		byCode:   make(map[Code]int, 12),
		defaults: defaultExitDefaults(),
	}
	m.byCode[CodeHelp] = m.defaults.Success
	m.byCode[CodeVersion] = m.defaults.Success

	m.byCode[CodeUnknownOption] = m.defaults.MisusageError
	m.byCode[CodeUnknownCommand] = m.defaults.MisusageError
	m.byCode[CodeMissingValue] = m.defaults.MisusageError
	m.byCode[CodeTooManyPositionals] = m.defaults.MisusageError
	m.byCode[CodeOptionRepeated] = m.defaults.MisusageError
	m.byCode[CodeTooManyOccurrences] = m.defaults.MisusageError

	m.byCode[CodeInvalidValue] = m.defaults.ValidationError
	m.byCode[CodeMissingRequired] = m.defaults.ValidationError
	m.byCode[CodeMutuallyExclusive] = m.defaults.ValidationError
	m.byCode[CodeMissingOneOf] = m.defaults.ValidationError
	return m
}

// Define overrides the exit code for one parse error code.
func (m *ExitCodeManager) Define(code Code, exitCode int) *ExitCodeManager {
	m.byCode[code] = exitCode
	return m
}

// Default replaces the fallback codes. Existing per-code mappings are
// untouched.
func (m *ExitCodeManager) Default(d ExitCodeDefaults) *ExitCodeManager {
	m.defaults = d
	return m
}

// Resolve converts an error to an exit code. Precedence:
//
//  1. nil (success)
//  2. ExitError (caller-requested code)
//  3. ParseError code mapping
//  4. general-error default
func (m *ExitCodeManager) Resolve(err error) int {
	if err == nil {
		return m.defaults.Success
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode
	}

	var perr *ParseError
	if errors.As(err, &perr) {
		if code, ok := m.byCode[perr.Code]; ok {
			return code
		}
		return m.defaults.GeneralError
	}

	return m.defaults.GeneralError
}
