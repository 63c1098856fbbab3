package mython

// parseClassDefinition parses `class Name:` or `class Name(Parent):`
// followed by an indented block of `def` method declarations.
func (p *parser) parseClassDefinition() (Node, error) {
	pos := p.pos()
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.curToken.Type != tokenId {
		return nil, &ParseError{Pos: p.pos(), Msg: "expected class name"}
	}
	name := p.curToken.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}

	var parentExpr Node
	if p.curIsChar("(") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.curToken.Type != tokenId {
			return nil, &ParseError{Pos: p.pos(), Msg: "expected parent class name"}
		}
		parentExpr = &VariableValue{basePos: basePos{p.pos()}, Name: p.curToken.Literal}
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectChar(")"); err != nil {
			return nil, err
		}
	}

	if err := p.expectChar(":"); err != nil {
		return nil, err
	}
	if err := p.expect(tokenNewline); err != nil {
		return nil, err
	}
	if err := p.expect(tokenIndent); err != nil {
		return nil, err
	}

	var methods []*Method
	for {
		if err := p.skipNewlines(); err != nil {
			return nil, err
		}
		if p.curToken.Type == tokenDedent || p.curToken.Type == tokenEof {
			break
		}
		if p.curToken.Type != tokenDef {
			pe := &ParseError{Pos: p.pos(), Msg: "expected method definition inside class body"}
			p.errors = append(p.errors, pe)
			if err := p.recover(); err != nil {
				return nil, err
			}
			continue
		}
		method, err := p.parseMethodDefinition()
		if err != nil {
			if pe, ok := err.(*ParseError); ok {
				p.errors = append(p.errors, pe)
				if err := p.recover(); err != nil {
					return nil, err
				}
				continue
			}
			return nil, err
		}
		methods = append(methods, method)
	}
	if err := p.expect(tokenDedent); err != nil {
		return nil, err
	}

	return &ClassDefinition{basePos: basePos{pos}, Name: name, ParentExpr: parentExpr, Methods: methods}, nil
}

// parseMethodDefinition parses `def name(params):` followed by an indented
// statement block, wrapped in a MethodBody so a Return anywhere inside
// unwinds exactly to here.
func (p *parser) parseMethodDefinition() (*Method, error) {
	pos := p.pos()
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.curToken.Type != tokenId {
		return nil, &ParseError{Pos: p.pos(), Msg: "expected method name"}
	}
	name := p.curToken.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}

	if err := p.expectChar("("); err != nil {
		return nil, err
	}
	// Declared parameters never include "self": Instance.Call binds it
	// separately to the receiver before the formal parameters are bound.
	var params []string
	if !p.curIsChar(")") {
		for {
			if p.curToken.Type != tokenId {
				return nil, &ParseError{Pos: p.pos(), Msg: "expected parameter name"}
			}
			params = append(params, p.curToken.Literal)
			if err := p.advance(); err != nil {
				return nil, err
			}
			if p.curIsChar(",") {
				if err := p.advance(); err != nil {
					return nil, err
				}
				continue
			}
			break
		}
	}
	if err := p.expectChar(")"); err != nil {
		return nil, err
	}
	if err := p.expectChar(":"); err != nil {
		return nil, err
	}
	if err := p.expect(tokenNewline); err != nil {
		return nil, err
	}

	bodyStmts, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	body := &MethodBody{basePos: basePos{pos}, Body: &Compound{Stmts: bodyStmts}}
	return &Method{Name: name, Params: params, Body: body}, nil
}
