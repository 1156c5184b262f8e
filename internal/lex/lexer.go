package lex

import (
	"strings"
	"unicode/utf8"
)

// Lex tokenizes text into the exact token buffer used by the parser. It is
// total: any input produces a token slice, with unrecognized or malformed
// runs lexed as Error tokens rather than aborting. Whitespace, line
// terminators, commas, comments and the byte order mark are skipped.
func Lex(source SourceID, text string) []Token {
	l := &lexer{source: source, text: text}
	var tokens []Token
	for {
		tok, ok := l.next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

type lexer struct {
	source SourceID
	text   string
	pos    int
}

func (l *lexer) next() (Token, bool) {
	l.skipIgnored()
	if l.pos >= len(l.text) {
		return Token{}, false
	}
	start := l.pos
	c := l.text[l.pos]
	switch {
	case isNameStart(c):
		l.pos++
		for l.pos < len(l.text) && isNameContinue(l.text[l.pos]) {
			l.pos++
		}
		return l.emit(Name, start), true
	case c == '"':
		return l.lexString(start), true
	case c == '-' || isDigit(c):
		return l.lexNumber(start), true
	case c == '.':
		l.pos++
		for l.pos < len(l.text) && l.text[l.pos] == '.' {
			l.pos++
		}
		if l.pos-start == 3 {
			return l.emit(Punctuator, start), true
		}
		return l.emit(Error, start), true
	case strings.IndexByte("!$&():=@[]{|}", c) >= 0:
		l.pos++
		return l.emit(Punctuator, start), true
	default:
		_, size := utf8.DecodeRuneInString(l.text[l.pos:])
		l.pos += size
		return l.emit(Error, start), true
	}
}

func (l *lexer) skipIgnored() {
	for l.pos < len(l.text) {
		switch c := l.text[l.pos]; c {
		case ' ', '\t', '\n', '\r', ',':
			l.pos++
		case '#':
			for l.pos < len(l.text) && l.text[l.pos] != '\n' && l.text[l.pos] != '\r' {
				l.pos++
			}
		case 0xEF:
			if strings.HasPrefix(l.text[l.pos:], "\uFEFF") {
				l.pos += len("\uFEFF")
				continue
			}
			return
		default:
			return
		}
	}
}

func (l *lexer) lexString(start int) Token {
	if strings.HasPrefix(l.text[l.pos:], `"""`) {
		l.pos += 3
		for l.pos < len(l.text) {
			if l.text[l.pos] == '\\' && strings.HasPrefix(l.text[l.pos:], `\"""`) {
				l.pos += 4
				continue
			}
			if strings.HasPrefix(l.text[l.pos:], `"""`) {
				l.pos += 3
				return l.emit(StringValue, start)
			}
			l.pos++
		}
		// Unterminated block string runs to end of input.
		return l.emit(Error, start)
	}
	l.pos++
	for l.pos < len(l.text) {
		switch l.text[l.pos] {
		case '"':
			l.pos++
			return l.emit(StringValue, start)
		case '\\':
			l.pos++
			if l.pos < len(l.text) {
				l.pos++
			}
		case '\n', '\r':
			// Unterminated string stops at the line terminator.
			return l.emit(Error, start)
		default:
			l.pos++
		}
	}
	return l.emit(Error, start)
}

// lexNumber lexes IntValue/FloatValue per the October 2021 draft, demoting
// malformed numerics ("01", "1.", "1e", "1.2.3", "10x") to a single Error
// token covering the whole run.
func (l *lexer) lexNumber(start int) Token {
	if l.text[l.pos] == '-' {
		l.pos++
	}
	if l.pos >= len(l.text) || !isDigit(l.text[l.pos]) {
		return l.errorRun(start)
	}
	if l.text[l.pos] == '0' {
		l.pos++
		if l.pos < len(l.text) && isDigit(l.text[l.pos]) {
			return l.errorRun(start)
		}
	} else {
		for l.pos < len(l.text) && isDigit(l.text[l.pos]) {
			l.pos++
		}
	}
	kind := IntValue
	if l.pos < len(l.text) && l.text[l.pos] == '.' {
		l.pos++
		if l.pos >= len(l.text) || !isDigit(l.text[l.pos]) {
			return l.errorRun(start)
		}
		for l.pos < len(l.text) && isDigit(l.text[l.pos]) {
			l.pos++
		}
		kind = FloatValue
	}
	if l.pos < len(l.text) && (l.text[l.pos] == 'e' || l.text[l.pos] == 'E') {
		l.pos++
		if l.pos < len(l.text) && (l.text[l.pos] == '+' || l.text[l.pos] == '-') {
			l.pos++
		}
		if l.pos >= len(l.text) || !isDigit(l.text[l.pos]) {
			return l.errorRun(start)
		}
		for l.pos < len(l.text) && isDigit(l.text[l.pos]) {
			l.pos++
		}
		kind = FloatValue
	}
	if l.pos < len(l.text) && (isNameStart(l.text[l.pos]) || l.text[l.pos] == '.') {
		return l.errorRun(start)
	}
	return l.emit(kind, start)
}

// errorRun extends a malformed numeric over any trailing digits, name
// characters, dots and signs, so the run lexes as one Error token.
func (l *lexer) errorRun(start int) Token {
	for l.pos < len(l.text) {
		c := l.text[l.pos]
		if isNameContinue(c) || c == '.' {
			l.pos++
			continue
		}
		break
	}
	return l.emit(Error, start)
}

func (l *lexer) emit(kind TokenKind, start int) Token {
	return Token{
		Kind: kind,
		Text: l.text[start:l.pos],
		Span: Span{SourceID: l.source, Start: start, End: l.pos},
	}
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameContinue(c byte) bool {
	return isNameStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
