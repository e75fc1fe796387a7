package main

import (
	"math/big"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// FormatLog resolves the value a Log statement names, stringifies it, then
// applies the print-option pipeline in order. It mutates mem when
// opts.assign is set, since that step writes the final rendered string back
// to memory[cursor].
func FormatLog(mem *Memory, cursor Value, opts printOptions) string {
	var s string
	switch opts.kind {
	case printValue:
		start := mem.Load(cursor)
		s = stringifyValue(readerResolve(mem, opts.readerBump, start), opts.special)
	case printPointer:
		s = stringifyValue(readerResolve(mem, opts.readerBump, cursor), opts.special)
	case printType:
		s = mem.Load(cursor).Kind().String()
	case printNone:
		s = ""
	}

	if opts.reverse {
		s = reverseString(s)
	}
	if opts.spaceCount > 0 {
		s += strings.Repeat(" ", int(opts.spaceCount))
	}
	if opts.newline {
		s += "\n"
	}
	if opts.vertical {
		s = transposeLines(s)
	}
	if opts.assign {
		mem.Store(cursor, classifyInputLine(strings.TrimSpace(s)))
	}
	return s
}

func reverseString(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// transposeLines turns rows into columns, padding short rows with spaces,
// preserving a trailing newline if one was present.
func transposeLines(s string) string {
	trailingNL := strings.HasSuffix(s, "\n")
	body := s
	if trailingNL {
		body = body[:len(body)-1]
	}
	rows := strings.Split(body, "\n")

	maxLen := 0
	runeRows := make([][]rune, len(rows))
	for i, row := range rows {
		runeRows[i] = []rune(row)
		if n := len(runeRows[i]); n > maxLen {
			maxLen = n
		}
	}

	outRows := make([]string, maxLen)
	for j := 0; j < maxLen; j++ {
		col := make([]rune, len(runeRows))
		for i, rr := range runeRows {
			if j < len(rr) {
				col[i] = rr[j]
			} else {
				col[i] = ' '
			}
		}
		outRows[j] = string(col)
	}

	out := strings.Join(outRows, "\n")
	if trailingNL {
		out += "\n"
	}
	return out
}

// stringifyValue renders v according to the Log statement's special/plain
// stringification rules for each Kind.
func stringifyValue(v Value, special bool) string {
	switch v.Kind() {
	case KindNull:
		if special {
			return "\x00"
		}
		return "null"
	case KindBoolean:
		b, _ := v.Bool()
		if special {
			if b {
				return "1"
			}
			return "0"
		}
		if b {
			return "true"
		}
		return "false"
	case KindSmallInt, KindInteger:
		n, _ := v.Int()
		if special {
			if n.IsInt64() && utf8.ValidRune(rune(n.Int64())) {
				return string(rune(n.Int64()))
			}
			return string(utf8.RuneError)
		}
		return n.String()
	case KindFloat:
		f, _ := v.Float()
		if special {
			f64, _ := f.Float64()
			return strconv.FormatFloat(f64, 'g', -1, 64)
		}
		return f.Text('g', -1)
	case KindText:
		s, _ := v.Text()
		if special {
			return s
		}
		return "/" + strings.ReplaceAll(s, "/", `\/`) + "/"
	case KindSymbol:
		s, _ := v.Text()
		if special {
			return new(big.Int).SetBytes([]byte(s)).String()
		}
		return s
	case KindTime:
		d := timeElapsed(v)
		if special {
			return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
		}
		return d.String()
	case KindJumpAddress:
		pc, _ := v.JumpAddr()
		if special {
			return strconv.FormatUint(uint64(pc), 2)
		}
		return strconv.FormatUint(uint64(pc), 10)
	}
	return ""
}

func timeElapsed(v Value) time.Duration {
	if !v.tSet {
		return 0
	}
	return time.Since(v.t)
}

// classifyInputLine implements the shared classification the Input
// statement uses, which Log's "assign" option also reuses to re-parse its
// own rendered output.
func classifyInputLine(line string) Value {
	switch {
	case line == "":
		return Null()
	case isAllDigits(line):
		n, _ := new(big.Int).SetString(line, 10)
		return IntValue(n)
	case isFloatLike(line):
		if v, err := NewFloat(line); err == nil {
			return v
		}
	}

	switch line {
	case "true", "on", "yes":
		return Bool(true)
	case "false", "off", "no":
		return Bool(false)
	case "null":
		return Null()
	case "µ":
		return TimeNow()
	}

	if isIdentifierLine(line) {
		return SymbolValue(line)
	}
	return TextValue(line)
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// isFloatLike recognizes a run of digits containing exactly two '.'
// characters. This looks unusual next to the lexer's own single-dot Float
// literal grammar, but it is the deliberate rule for classifying
// Input/assign text, not a mistake.
func isFloatLike(s string) bool {
	if s == "" {
		return false
	}
	dots := 0
	hasDigit := false
	for _, r := range s {
		switch {
		case r == '.':
			dots++
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			return false
		}
	}
	return dots == 2 && hasDigit
}

func isIdentifierLine(s string) bool {
	if s == "" {
		return false
	}
	runes := []rune(s)
	if !isIdentStart(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !isIdentCont(r) {
			return false
		}
	}
	return true
}
