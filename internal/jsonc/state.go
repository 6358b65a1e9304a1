package jsonc

// state is the lexer position relative to string literals.
type state int

const (
	stateNormal   state = iota // outside any string
	stateInString              // inside "..."
	stateInEscape              // just after a backslash inside a string
)

func (s state) String() string {
	switch s {
	case stateInString:
		return "InString"
	case stateInEscape:
		return "InEscape"
	default:
		return "Normal"
	}
}

// next returns the state after consuming c.
func (s state) next(c byte) state {
	switch s {
	case stateInString:
		switch c {
		case '\\':
			return stateInEscape
		case '"':
			return stateNormal
		}
		return stateInString
	case stateInEscape:
		return stateInString
	default:
		if c == '"' {
			return stateInString
		}
		return stateNormal
	}
}
