package mython

import (
	"fmt"
	"io"
	"strings"
)

// ParseError reports a single malformed construct encountered while turning
// tokens into an AST.
type ParseError struct {
	Pos Position
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Pos.Line, e.Msg)
}

// ParseErrors aggregates every ParseError a parse run produced; Parse keeps
// going after one by skipping to the next line, so a single pass can report
// more than one mistake. A lexer error, by contrast, stops the parse.
type ParseErrors []*ParseError

func (es ParseErrors) Error() string {
	lines := make([]string, len(es))
	for i, e := range es {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}

const (
	lowestPrec = iota
	precOr
	precAnd
	precEquality
	precComparison
	precSum
	precProduct
	precCall
)

// precedenceOf reports the binding power of tok when it appears as an infix
// or postfix operator. Single-character operators are disambiguated by
// Literal since the lexer folds them all into tokenChar.
func precedenceOf(tok Token) int {
	switch tok.Type {
	case tokenOr:
		return precOr
	case tokenAnd:
		return precAnd
	case tokenEq, tokenNotEq, tokenLessOrEq, tokenGreaterOrEq:
		return precEquality
	case tokenChar:
		switch tok.Literal {
		case "<", ">":
			return precComparison
		case "+", "-":
			return precSum
		case "*", "/":
			return precProduct
		case ".", "(":
			return precCall
		}
	}
	return lowestPrec
}

// parser turns the token stream produced by a Lexer into the AST in ast.go.
// Expressions are parsed by precedence climbing (parseExpression), the same
// Pratt-parser shape used for tokens keyed by type; statements are parsed by
// straight recursive descent keyed on the leading keyword.
type parser struct {
	lex *Lexer

	curToken  Token
	peekToken Token

	errors ParseErrors
}

// Parse reads a complete mython source program from r and returns its AST as
// a single Node (a Compound of top-level statements). A malformed program
// returns a non-nil ParseErrors; a malformed token stream (for example, a
// bad indentation width) returns the *LexerError unwrapped.
func Parse(r io.Reader) (Node, error) {
	lex, err := NewLexer(r)
	if err != nil {
		return nil, err
	}
	p := &parser{lex: lex}

	p.curToken = lex.Current()
	if err := p.refillPeek(); err != nil {
		return nil, err
	}

	stmts, err := p.parseStatements(tokenEof)
	if err != nil {
		return nil, err
	}
	if len(p.errors) > 0 {
		return nil, p.errors
	}
	return &Compound{Stmts: stmts}, nil
}

func (p *parser) advance() error {
	p.curToken = p.peekToken
	return p.refillPeek()
}

// refillPeek pulls the lexer's next token into peekToken. Parse calls it once
// to prime peekToken after the first token, and advance calls it on every step.
func (p *parser) refillPeek() error {
	tok, err := p.lex.Advance()
	if err != nil {
		return err
	}
	p.peekToken = tok
	return nil
}

func (p *parser) pos() Position { return p.curToken.Pos }

func (p *parser) addError(pos Position, format string, args ...any) {
	p.errors = append(p.errors, &ParseError{Pos: pos, Msg: fmt.Sprintf(format, args...)})
}

func (p *parser) expect(tt TokenType) error {
	if p.curToken.Type != tt {
		return &ParseError{Pos: p.pos(), Msg: fmt.Sprintf("expected %s, got %s", tt, p.curToken.Type)}
	}
	return p.advance()
}

func (p *parser) expectChar(lit string) error {
	if p.curToken.Type != tokenChar || p.curToken.Literal != lit {
		return &ParseError{Pos: p.pos(), Msg: fmt.Sprintf("expected %q, got %s", lit, p.curToken.Dump())}
	}
	return p.advance()
}

func (p *parser) curIsChar(lit string) bool {
	return p.curToken.Type == tokenChar && p.curToken.Literal == lit
}

func (p *parser) skipNewlines() error {
	for p.curToken.Type == tokenNewline {
		if err := p.advance(); err != nil {
			return err
		}
	}
	return nil
}

// parseStatements consumes statements until terminator, a Dedent, or Eof is
// seen; it is used both for the top level (terminator tokenEof) and for a
// method or if/else block body opened by parseBlock (terminator "").
func (p *parser) parseStatements(terminator TokenType) ([]Node, error) {
	var stmts []Node
	for {
		if err := p.skipNewlines(); err != nil {
			return nil, err
		}
		if p.curToken.Type == terminator || p.curToken.Type == tokenDedent || p.curToken.Type == tokenEof {
			return stmts, nil
		}
		stmt, err := p.parseStatement()
		if err != nil {
			pe, ok := err.(*ParseError)
			if !ok {
				return nil, err
			}
			p.errors = append(p.errors, pe)
			if err := p.recover(); err != nil {
				return nil, err
			}
			continue
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		// ClassDefinition and IfElse already consumed through their own
		// closing Dedent(s), so the next token is the start of whatever
		// follows, not necessarily a Newline; only simple statements need
		// to be followed by one.
		switch stmt.(type) {
		case *ClassDefinition, *IfElse:
		default:
			if p.curToken.Type != tokenNewline && p.curToken.Type != tokenEof && p.curToken.Type != tokenDedent {
				p.addError(p.pos(), "expected end of line, got %s", p.curToken.Type)
				if err := p.recover(); err != nil {
					return nil, err
				}
			}
		}
	}
}

// recover skips to just past the next NEWLINE so parsing can resume at the
// next statement after a malformed one.
func (p *parser) recover() error {
	for p.curToken.Type != tokenNewline && p.curToken.Type != tokenEof {
		if err := p.advance(); err != nil {
			return err
		}
	}
	if p.curToken.Type == tokenNewline {
		return p.advance()
	}
	return nil
}

func (p *parser) parseBlock() ([]Node, error) {
	if err := p.expect(tokenIndent); err != nil {
		return nil, err
	}
	stmts, err := p.parseStatements("")
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokenDedent); err != nil {
		return nil, err
	}
	return stmts, nil
}
