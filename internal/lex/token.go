package lex

import "strings"

// TokenKind discriminates lexical tokens. The zero value is Invalid so that a
// zero Token reads as "no token".
type TokenKind int

const (
	Invalid TokenKind = iota
	Error
	Name
	Punctuator
	IntValue
	FloatValue
	StringValue
)

func (k TokenKind) String() string {
	switch k {
	case Error:
		return "error"
	case Name:
		return "name"
	case Punctuator:
		return "punctuator"
	case IntValue:
		return "int value"
	case FloatValue:
		return "float value"
	case StringValue:
		return "string value"
	default:
		return "invalid"
	}
}

// Token is one lexical token with its exact source text.
type Token struct {
	Kind TokenKind
	Text string
	Span Span
}

// IsValid reports whether t is a real token rather than the zero value.
func (t Token) IsValid() bool {
	return t.Kind != Invalid
}

// StringContent returns the decoded contents of a StringValue token: quotes
// stripped, escapes resolved and block strings dedented. For other kinds it
// returns the raw text.
func (t Token) StringContent() string {
	if t.Kind != StringValue {
		return t.Text
	}
	if strings.HasPrefix(t.Text, `"""`) {
		body := strings.TrimPrefix(t.Text, `"""`)
		body = strings.TrimSuffix(body, `"""`)
		body = strings.ReplaceAll(body, `\"""`, `"""`)
		return dedentBlock(body)
	}
	body := strings.TrimPrefix(t.Text, `"`)
	body = strings.TrimSuffix(body, `"`)
	return decodeEscapes(body)
}

func decodeEscapes(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			if i+4 < len(s) {
				var r rune
				ok := true
				for _, h := range s[i+1 : i+5] {
					d := hexDigit(byte(h))
					if d < 0 {
						ok = false
						break
					}
					r = r<<4 | rune(d)
				}
				if ok {
					b.WriteRune(r)
					i += 4
					continue
				}
			}
			b.WriteByte('u')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func hexDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}

// dedentBlock strips the common indentation of a block string and trims
// leading and trailing blank lines, per the BlockStringValue algorithm.
func dedentBlock(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	indent := -1
	for _, line := range lines[1:] {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		if n := len(line) - len(trimmed); indent < 0 || n < indent {
			indent = n
		}
	}
	if indent > 0 {
		for i, line := range lines[1:] {
			if len(line) >= indent {
				lines[i+1] = line[indent:]
			} else {
				lines[i+1] = strings.TrimLeft(line, " \t")
			}
		}
	}
	for len(lines) > 0 && strings.TrimLeft(lines[0], " \t") == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimLeft(lines[len(lines)-1], " \t") == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
