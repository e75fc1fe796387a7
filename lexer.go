package main

import (
	"io"
	"unicode"

	"github.com/jcorbin/specky/internal/fileinput"
)

// Lexer scans Specky source into tokens. It is a single pass over an
// *fileinput.Input (which normalizes "\r\n" itself), with a small rune
// lookahead queue so that the handful of multi-character operators
// ("<=>", ">-<", "|<", ...) can be maximal-munch matched.
//
// The lexer is deliberately context free for everything except text
// literals: `/…/` and the `/` Divide operator share the same leading rune,
// resolved only by grammatical position (a bare `/` at statement-head
// position is Divide; `/` where the parser expects a value starts a Text
// literal). So Next returns a plain tokSlash token for a lone '/', and the
// parser calls ScanTextBody immediately afterward when it was expecting a
// value.
type Lexer struct {
	in    *fileinput.Input
	queue []queuedRune
}

type queuedRune struct {
	r   rune
	loc fileinput.Location
	err error
}

// NewLexer returns a Lexer reading named source text from r.
func NewLexer(name string, r io.Reader) *Lexer {
	return &Lexer{in: fileinput.New(name, r)}
}

func (lx *Lexer) fill(n int) {
	for len(lx.queue) < n {
		r, err := lx.in.ReadRune()
		if err != nil {
			lx.queue = append(lx.queue, queuedRune{0, lx.in.Loc(), err})
			return
		}
		lx.queue = append(lx.queue, queuedRune{r, lx.in.Loc(), nil})
	}
}

func (lx *Lexer) peekAt(i int) queuedRune {
	lx.fill(i + 1)
	if i < len(lx.queue) {
		return lx.queue[i]
	}
	return lx.queue[len(lx.queue)-1]
}

func (lx *Lexer) consume() queuedRune {
	lx.fill(1)
	qr := lx.queue[0]
	lx.queue = lx.queue[1:]
	return qr
}

func (lx *Lexer) consumeN(n int) (last queuedRune) {
	for i := 0; i < n; i++ {
		last = lx.consume()
	}
	return last
}

func isIdentStart(r rune) bool { return unicode.IsLetter(r) || r == '_' }
func isIdentCont(r rune) bool  { return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' }

func (lx *Lexer) skipTrivia() error {
	for {
		qr := lx.peekAt(0)
		if qr.err != nil {
			if qr.err == io.EOF {
				return nil
			}
			return qr.err
		}
		switch {
		case unicode.IsSpace(qr.r) || unicode.IsControl(qr.r):
			lx.consume()
		case qr.r == '#':
			for {
				c := lx.peekAt(0)
				if c.err != nil || c.r == '\n' {
					break
				}
				lx.consume()
			}
		default:
			return nil
		}
	}
}

// Next returns the next token, or a tokEOF token at end of input.
func (lx *Lexer) Next() (token, error) {
	if err := lx.skipTrivia(); err != nil {
		return token{}, err
	}

	start := lx.peekAt(0)
	if start.err != nil {
		if start.err == io.EOF {
			return token{kind: tokEOF, span: span{start.loc}}, nil
		}
		return token{}, start.err
	}
	startSpan := span{start.loc}

	switch {
	case start.r == 'µ':
		// Checked before isIdentStart: µ (U+00B5) is a Unicode letter.
		lx.consume()
		return token{kind: tokMu, span: startSpan}, nil
	case isIdentStart(start.r):
		return lx.scanWord(startSpan)
	case unicode.IsDigit(start.r):
		return lx.scanNumber(startSpan)
	default:
		return lx.scanPunct(startSpan)
	}
}

func (lx *Lexer) scanWord(startSpan span) (token, error) {
	var runes []rune
	for {
		qr := lx.peekAt(0)
		if qr.err != nil || !isIdentCont(qr.r) {
			break
		}
		runes = append(runes, qr.r)
		lx.consume()
	}
	return token{kind: tokWord, text: string(runes), span: startSpan}, nil
}

func (lx *Lexer) scanNumber(startSpan span) (token, error) {
	var runes []rune
	for {
		qr := lx.peekAt(0)
		if qr.err != nil || !unicode.IsDigit(qr.r) {
			break
		}
		runes = append(runes, qr.r)
		lx.consume()
	}

	// Maximal-munch priority tweak: an Integer literal must not absorb the
	// '.' of a following Float literal, so peek for a digit past the dot
	// before committing to Float.
	if dot := lx.peekAt(0); dot.err == nil && dot.r == '.' {
		if frac := lx.peekAt(1); frac.err == nil && unicode.IsDigit(frac.r) {
			lx.consume() // '.'
			runes = append(runes, '.')
			for {
				qr := lx.peekAt(0)
				if qr.err != nil || !unicode.IsDigit(qr.r) {
					break
				}
				runes = append(runes, qr.r)
				lx.consume()
			}
			return token{kind: tokFloat, text: string(runes), span: startSpan}, nil
		}
	}

	return token{kind: tokInt, text: string(runes), span: startSpan}, nil
}

// ScanTextBody consumes a Text literal body starting immediately after the
// opening '/' (already consumed as a tokSlash by Next), up to and including
// the closing unescaped '/'. Escapes \n \r \t \0 \\ are unescaped; a
// trailing backslash with nothing valid to escape is a CustomError.
func (lx *Lexer) ScanTextBody(startSpan span) (token, error) {
	var sb []rune
	for {
		qr := lx.peekAt(0)
		if qr.err != nil {
			if qr.err == io.EOF {
				return token{}, unexpectedEOF(span{qr.loc})
			}
			return token{}, qr.err
		}
		lx.consume()
		switch qr.r {
		case '/':
			return token{kind: tokText, text: string(sb), span: startSpan}, nil
		case '\\':
			esc := lx.peekAt(0)
			if esc.err != nil {
				if esc.err == io.EOF {
					return token{}, customError(span{esc.loc}, "trailing backslash in text literal")
				}
				return token{}, esc.err
			}
			lx.consume()
			switch esc.r {
			case 'n':
				sb = append(sb, '\n')
			case 'r':
				sb = append(sb, '\r')
			case 't':
				sb = append(sb, '\t')
			case '0':
				sb = append(sb, 0)
			case '\\':
				sb = append(sb, '\\')
			default:
				sb = append(sb, '\\', esc.r)
			}
		default:
			sb = append(sb, qr.r)
		}
	}
}

func (lx *Lexer) scanPunct(startSpan span) (token, error) {
	for {
		r0 := lx.peekAt(0)
		if r0.err != nil {
			if r0.err == io.EOF {
				return token{kind: tokEOF, span: startSpan}, nil
			}
			return token{}, r0.err
		}

		switch r0.r {
		case '{':
			lx.consume()
			return token{kind: tokLBrace, span: startSpan}, nil
		case '}':
			lx.consume()
			return token{kind: tokRBrace, span: startSpan}, nil
		case '[':
			lx.consume()
			return token{kind: tokLBracket, span: startSpan}, nil
		case ']':
			lx.consume()
			return token{kind: tokRBracket, span: startSpan}, nil
		case '?':
			lx.consume()
			return token{kind: tokQuestion, span: startSpan}, nil
		case '!':
			lx.consume()
			return token{kind: tokBang, span: startSpan}, nil
		case '$':
			lx.consume()
			return token{kind: tokDollar, span: startSpan}, nil
		case '°':
			lx.consume()
			return token{kind: tokDegree, span: startSpan}, nil
		case '@':
			lx.consume()
			return token{kind: tokAt, span: startSpan}, nil
		case '§':
			lx.consume()
			return token{kind: tokSection, span: startSpan}, nil
		case '\\':
			lx.consume()
			return token{kind: tokBackslash, span: startSpan}, nil
		case '~':
			lx.consume()
			return token{kind: tokTilde, span: startSpan}, nil
		case '+':
			lx.consume()
			return token{kind: tokPlus, span: startSpan}, nil
		case '-':
			lx.consume()
			return token{kind: tokMinus, span: startSpan}, nil
		case '*':
			lx.consume()
			return token{kind: tokStar, span: startSpan}, nil
		case '%':
			lx.consume()
			return token{kind: tokPercent, span: startSpan}, nil
		case '^':
			lx.consume()
			return token{kind: tokCaret, span: startSpan}, nil
		case '/':
			lx.consume()
			return token{kind: tokSlash, span: startSpan}, nil
		case '&':
			lx.consume()
			return token{kind: tokAnd, span: startSpan}, nil
		case '|':
			if lx.peekAt(1).r == '<' && lx.peekAt(1).err == nil {
				lx.consumeN(2)
				return token{kind: tokLoad, span: startSpan}, nil
			}
			lx.consume()
			return token{kind: tokOr, span: startSpan}, nil
		case '<':
			if lx.peekAt(1).err == nil && lx.peekAt(1).r == '=' {
				if lx.peekAt(2).err == nil && lx.peekAt(2).r == '>' {
					lx.consumeN(3)
					return token{kind: tokSwap, span: startSpan}, nil
				}
				lx.consumeN(2)
				return token{kind: tokAssign, span: startSpan}, nil
			}
			lx.consume()
			return token{kind: tokLess, span: startSpan}, nil
		case '>':
			if lx.peekAt(1).err == nil && lx.peekAt(1).r == '-' &&
				lx.peekAt(2).err == nil && lx.peekAt(2).r == '<' {
				lx.consumeN(3)
				return token{kind: tokXor, span: startSpan}, nil
			}
			if lx.peekAt(1).err == nil && lx.peekAt(1).r == '<' {
				lx.consumeN(2)
				return token{kind: tokUnequal, span: startSpan}, nil
			}
			if lx.peekAt(1).err == nil && lx.peekAt(1).r == '=' {
				lx.consumeN(2)
				return token{kind: tokGreaterEq, span: startSpan}, nil
			}
			lx.consume()
			return token{kind: tokGreater, span: startSpan}, nil
		case '=':
			if lx.peekAt(1).err == nil && lx.peekAt(1).r == '>' {
				lx.consumeN(2)
				return token{kind: tokOverwrite, span: startSpan}, nil
			}
			if lx.peekAt(1).err == nil && lx.peekAt(1).r == '<' {
				lx.consumeN(2)
				return token{kind: tokLessEq, span: startSpan}, nil
			}
			lx.consume()
			return token{kind: tokEqual, span: startSpan}, nil
		default:
			// Unrecognised runs are skipped.
			lx.consume()
			if err := lx.skipTrivia(); err != nil {
				return token{}, err
			}
			startSpan = span{lx.peekAt(0).loc}
			continue
		}
	}
}
