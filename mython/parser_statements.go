package mython

import "fmt"

func (p *parser) parseStatement() (Node, error) {
	switch p.curToken.Type {
	case tokenClass:
		return p.parseClassDefinition()
	case tokenPrint:
		return p.parsePrintStatement()
	case tokenIf:
		return p.parseIfStatement()
	case tokenReturn:
		return p.parseReturnStatement()
	case tokenId:
		return p.parseIdentifierStatement()
	}
	return nil, &ParseError{Pos: p.pos(), Msg: fmt.Sprintf("unexpected token %s at start of statement", p.curToken.Dump())}
}

// parsePrintStatement parses `print` followed by zero or more
// comma-separated expressions.
func (p *parser) parsePrintStatement() (Node, error) {
	pos := p.pos()
	if err := p.advance(); err != nil {
		return nil, err
	}
	var args []Node
	if p.curToken.Type == tokenNewline || p.curToken.Type == tokenEof || p.curToken.Type == tokenDedent {
		return &Print{basePos: basePos{pos}}, nil
	}
	for {
		arg, err := p.parseExpression(lowestPrec)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.curIsChar(",") {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	return &Print{basePos: basePos{pos}, Args: args}, nil
}

// parseIfStatement parses `if COND: THEN` with an optional `else: ELSE`.
// THEN and ELSE each use parseSuite, which accepts either a single inline
// statement on the same line or a Newline followed by an indented block.
func (p *parser) parseIfStatement() (Node, error) {
	pos := p.pos()
	if err := p.advance(); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(lowestPrec)
	if err != nil {
		return nil, err
	}
	if err := p.expectChar(":"); err != nil {
		return nil, err
	}
	then, err := p.parseSuite()
	if err != nil {
		return nil, err
	}

	ifElse := &IfElse{basePos: basePos{pos}, Cond: cond, Then: then}

	if err := p.skipNewlines(); err != nil {
		return nil, err
	}
	if p.curToken.Type == tokenElse {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectChar(":"); err != nil {
			return nil, err
		}
		elseNode, err := p.parseSuite()
		if err != nil {
			return nil, err
		}
		ifElse.Else = elseNode
	}
	return ifElse, nil
}

// parseSuite parses the body of an if/else branch: a Newline starts the
// indented-block form, anything else is a single inline statement on the
// same line (e.g. `if 0: print 'a'`).
func (p *parser) parseSuite() (Node, error) {
	if p.curToken.Type == tokenNewline {
		if err := p.advance(); err != nil {
			return nil, err
		}
		stmts, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return &Compound{Stmts: stmts}, nil
	}
	return p.parseStatement()
}

// parseReturnStatement parses `return` with an optional trailing expression.
func (p *parser) parseReturnStatement() (Node, error) {
	pos := p.pos()
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.curToken.Type == tokenNewline || p.curToken.Type == tokenEof || p.curToken.Type == tokenDedent {
		return &Return{basePos: basePos{pos}}, nil
	}
	arg, err := p.parseExpression(lowestPrec)
	if err != nil {
		return nil, err
	}
	return &Return{basePos: basePos{pos}, Arg: arg}, nil
}

// parseIdentifierStatement disambiguates the three statement forms that can
// start with a bare name: a plain assignment (`name = expr`), a field
// assignment (`obj.field = expr`), and a bare expression statement (a
// method call made for its side effects, such as `account.deposit(10)`).
func (p *parser) parseIdentifierStatement() (Node, error) {
	pos := p.pos()
	expr, err := p.parseExpression(lowestPrec)
	if err != nil {
		return nil, err
	}
	if !p.curIsChar("=") {
		return expr, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	rhs, err := p.parseExpression(lowestPrec)
	if err != nil {
		return nil, err
	}
	switch target := expr.(type) {
	case *VariableValue:
		return &Assignment{basePos: basePos{pos}, Name: target.Name, RHS: rhs}, nil
	case *FieldAccess:
		return &FieldAssignment{basePos: basePos{pos}, Object: target.Object, Field: target.Field, RHS: rhs}, nil
	default:
		return nil, &ParseError{Pos: pos, Msg: "invalid assignment target"}
	}
}
