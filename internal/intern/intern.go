// Package intern provides cheap canonical strings for the parser's
// short-option handling: single-letter names and synthesized "-x"
// tokens come from precomputed tables instead of fresh allocations.
package intern

// a-z (0-25), A-Z (26-51), 0-9 (52-61)
var singleChar = [62]string{
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
	"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
}

var dashChar = [62]string{
	"-a", "-b", "-c", "-d", "-e", "-f", "-g", "-h", "-i", "-j", "-k", "-l", "-m",
	"-n", "-o", "-p", "-q", "-r", "-s", "-t", "-u", "-v", "-w", "-x", "-y", "-z",
	"-A", "-B", "-C", "-D", "-E", "-F", "-G", "-H", "-I", "-J", "-K", "-L", "-M",
	"-N", "-O", "-P", "-Q", "-R", "-S", "-T", "-U", "-V", "-W", "-X", "-Y", "-Z",
	"-0", "-1", "-2", "-3", "-4", "-5", "-6", "-7", "-8", "-9",
}

func slot(r rune) int {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r - 'a')
	case r >= 'A' && r <= 'Z':
		return 26 + int(r-'A')
	case r >= '0' && r <= '9':
		return 52 + int(r-'0')
	default:
		return -1
	}
}

// Char returns the canonical one-character string for r.
func Char(r rune) string {
	if i := slot(r); i >= 0 {
		return singleChar[i]
	}
	return string(r)
}

// DashChar returns the canonical "-x" token for r, as re-synthesized
// when an unknown short option is routed to a tolerant parse's rest.
func DashChar(r rune) string {
	if i := slot(r); i >= 0 {
		return dashChar[i]
	}
	return "-" + string(r)
}
