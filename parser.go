package main

import (
	"io"
	"math/big"
)

// Parser is a token cursor with one-token lookahead over a Lexer. It
// produces a flat []Statement with no nested AST beyond each statement's
// own Expression operand and print-option block.
type Parser struct {
	lx  *Lexer
	tok token
}

// NewParser primes p with the first token of lx.
func NewParser(lx *Lexer) (*Parser, error) {
	p := &Parser{lx: lx}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// ParseProgram lexes and parses a named source into a flat statement
// sequence.
func ParseProgram(name string, r io.Reader) ([]Statement, error) {
	p, err := NewParser(NewLexer(name, r))
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

func (p *Parser) advance() error {
	tok, err := p.lx.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// Parse consumes tokens to end-of-input, emitting one Statement per
// top-level token.
func (p *Parser) Parse() ([]Statement, error) {
	var stmts []Statement
	for p.tok.kind != tokEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (p *Parser) parseStatement() (Statement, error) {
	tok := p.tok
	switch tok.kind {
	case tokLoad:
		return p.parseBinaryStatement(OpLoad)
	case tokAssign:
		return p.parseBinaryStatement(OpAssign)
	case tokOverwrite:
		return p.parseBinaryStatement(OpOverwrite)
	case tokSwap:
		return p.parseBinaryStatement(OpSwap)
	case tokAnd:
		return p.parseBinaryStatement(OpAnd)
	case tokOr:
		return p.parseBinaryStatement(OpOr)
	case tokXor:
		return p.parseBinaryStatement(OpXor)
	case tokPlus:
		return p.parseBinaryStatement(OpAdd)
	case tokMinus:
		return p.parseBinaryStatement(OpSub)
	case tokStar:
		return p.parseBinaryStatement(OpMul)
	case tokSlash:
		return p.parseBinaryStatement(OpDiv)
	case tokPercent:
		return p.parseBinaryStatement(OpMod)
	case tokCaret:
		return p.parseBinaryStatement(OpPow)
	case tokUnequal:
		return p.parseBinaryStatement(OpUnequal)
	case tokEqual:
		return p.parseBinaryStatement(OpEqual)
	case tokLess:
		return p.parseBinaryStatement(OpLess)
	case tokGreater:
		return p.parseBinaryStatement(OpGreater)
	case tokLessEq:
		return p.parseBinaryStatement(OpLessEq)
	case tokGreaterEq:
		return p.parseBinaryStatement(OpGreaterEq)
	case tokTilde:
		return p.parseBinaryStatement(OpIndex)
	case tokQuestion:
		return p.parseConditional(OpTruthy)
	case tokBang:
		return p.parseConditional(OpFalsy)
	case tokDollar:
		return p.parseConditional(OpExists)
	case tokDegree:
		return p.parseConditional(OpEmpty)
	case tokLBracket:
		return p.parseJumpGroup(tok.span)
	case tokLBrace:
		return p.parsePrintGroup(tok.span)
	case tokBackslash:
		return p.parseInput()
	case tokEOF:
		return Statement{}, unexpectedEOF(tok.span)
	default:
		return Statement{}, syntaxError(tok.span, "statement", tok)
	}
}

func (p *Parser) parseBinaryStatement(op Op) (Statement, error) {
	startSpan := p.tok.span
	if err := p.advance(); err != nil {
		return Statement{}, err
	}
	operand, err := p.parseExpression()
	if err != nil {
		return Statement{}, err
	}
	return Statement{Op: op, Operand: operand, Span: startSpan}, nil
}

func (p *Parser) parseInput() (Statement, error) {
	startSpan := p.tok.span
	if err := p.advance(); err != nil {
		return Statement{}, err
	}
	return Statement{Op: OpInput, Span: startSpan}, nil
}

// parseConditional parses a run of sequential conditional marker tokens:
// the statement's skip quantity is the count of consecutive identical
// marker tokens, a plain `?` counting 1.
func (p *Parser) parseConditional(op Op) (Statement, error) {
	startSpan := p.tok.span
	kind := p.tok.kind
	var qty uint
	for p.tok.kind == kind {
		qty++
		if err := p.advance(); err != nil {
			return Statement{}, err
		}
	}
	return Statement{Op: op, SkipQty: qty, Span: startSpan}, nil
}

// parseJumpGroup parses a `[ < ]`/`[ > ]` label group followed by the
// Expression naming the label.
func (p *Parser) parseJumpGroup(startSpan span) (Statement, error) {
	if err := p.advance(); err != nil { // consume '['
		return Statement{}, err
	}
	var op Op
	switch p.tok.kind {
	case tokLess:
		op = OpDefine
	case tokGreater:
		op = OpJump
	case tokEOF:
		return Statement{}, unexpectedEOF(p.tok.span)
	default:
		return Statement{}, syntaxError(p.tok.span, "'<' or '>'", p.tok)
	}
	if err := p.advance(); err != nil {
		return Statement{}, err
	}
	if p.tok.kind == tokEOF {
		return Statement{}, unexpectedEOF(p.tok.span)
	}
	if p.tok.kind != tokRBracket {
		return Statement{}, syntaxError(p.tok.span, "']'", p.tok)
	}
	if err := p.advance(); err != nil { // consume ']'
		return Statement{}, err
	}
	operand, err := p.parseExpression()
	if err != nil {
		return Statement{}, err
	}
	return Statement{Op: op, Operand: operand, Span: startSpan}, nil
}

// parsePrintGroup parses a `{ ... }` options block into a Log statement.
// Since print options need a Type variant alongside Value/Pointer, and
// every other token in this language is reused by grammatical position,
// $ (Exists at statement head) is reused here to select it: the same
// token-reuse pattern the lexer already applies everywhere else, rather
// than inventing a new lexeme.
func (p *Parser) parsePrintGroup(startSpan span) (Statement, error) {
	if err := p.advance(); err != nil { // consume '{'
		return Statement{}, err
	}
	opts := defaultPrintOptions()
	for p.tok.kind != tokRBrace {
		switch p.tok.kind {
		case tokPercent:
			opts.kind = printValue
		case tokAt:
			opts.kind = printPointer
		case tokDollar:
			opts.kind = printType
		case tokSection:
			opts.readerBump++
		case tokQuestion, tokBang:
			opts.special = true
		case tokTilde:
			opts.reverse = true
		case tokBackslash:
			opts.newline = !opts.newline
		case tokDegree:
			opts.spaceCount++
		case tokCaret:
			opts.vertical = true
		case tokLess:
			opts.assign = true
		case tokEOF:
			return Statement{}, unexpectedEOF(p.tok.span)
		default:
			return Statement{}, syntaxError(p.tok.span, "print option or '}'", p.tok)
		}
		if err := p.advance(); err != nil {
			return Statement{}, err
		}
	}
	if err := p.advance(); err != nil { // consume '}'
		return Statement{}, err
	}
	return Statement{Op: OpLog, Print: opts, Span: startSpan}, nil
}

// parseExpression consumes the leading run of '§' reader-bump tokens, then
// exactly one value.
func (p *Parser) parseExpression() (Expression, error) {
	var readerCount uint
	for p.tok.kind == tokSection {
		readerCount++
		if err := p.advance(); err != nil {
			return Expression{}, err
		}
	}
	val, err := p.parseValue()
	if err != nil {
		return Expression{}, err
	}
	return Expression{Reader: readerCount, Value: val}, nil
}

func (p *Parser) parseValue() (Value, error) {
	switch p.tok.kind {
	case tokWord:
		text := p.tok.text
		if err := p.advance(); err != nil {
			return Value{}, err
		}
		switch text {
		case "true":
			return Bool(true), nil
		case "false":
			return Bool(false), nil
		case "null":
			return Null(), nil
		default:
			return SymbolValue(text), nil
		}
	case tokMu:
		if err := p.advance(); err != nil {
			return Value{}, err
		}
		return TimePlaceholder(), nil
	case tokSlash:
		startSpan := p.tok.span
		textTok, err := p.lx.ScanTextBody(startSpan)
		if err != nil {
			return Value{}, err
		}
		if err := p.advance(); err != nil {
			return Value{}, err
		}
		return TextValue(textTok.text), nil
	case tokPlus, tokMinus:
		neg := false
		for p.tok.kind == tokPlus || p.tok.kind == tokMinus {
			if p.tok.kind == tokMinus {
				neg = !neg
			}
			if err := p.advance(); err != nil {
				return Value{}, err
			}
		}
		return p.parseSignedNumber(neg)
	case tokInt, tokFloat:
		return p.parseSignedNumber(false)
	default:
		return Value{}, syntaxError(p.tok.span, "value", p.tok)
	}
}

func (p *Parser) parseSignedNumber(neg bool) (Value, error) {
	tok := p.tok
	switch tok.kind {
	case tokInt:
		n, ok := new(big.Int).SetString(tok.text, 10)
		if !ok {
			return Value{}, customError(tok.span, "malformed integer literal")
		}
		if neg {
			n.Neg(n)
		}
		if err := p.advance(); err != nil {
			return Value{}, err
		}
		return IntValue(n), nil
	case tokFloat:
		text := tok.text
		if neg {
			text = "-" + text
		}
		v, err := NewFloat(text)
		if err != nil {
			return Value{}, customError(tok.span, "malformed float literal")
		}
		if err := p.advance(); err != nil {
			return Value{}, err
		}
		return v, nil
	default:
		return Value{}, syntaxError(tok.span, "integer or float literal", tok)
	}
}
