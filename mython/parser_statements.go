package mython

func (p *parser) parseStatement() Statement {
	switch p.cur().Type {
	case tokenClass:
		return p.parseClassStatement()
	case tokenPrint:
		return p.parsePrintStatement()
	case tokenIf:
		return p.parseIfStatement()
	case tokenReturn:
		return p.parseReturnStatement()
	default:
		return p.parseAssignmentOrExpressionStatement()
	}
}

func (p *parser) atBlockEnd() bool {
	switch p.cur().Type {
	case tokenNewline, tokenDedent, tokenEOF:
		return true
	}
	return false
}

func (p *parser) parseAssignmentOrExpressionStatement() Statement {
	expr := p.parseExpression()
	if !p.curIsChar('=') {
		return expr
	}
	p.advance()
	value := p.parseExpression()

	variable, ok := expr.(*VariableValue)
	if !ok {
		p.addError(p.cur().Pos, "invalid assignment target")
		return value
	}
	if len(variable.Names) == 1 {
		return &Assignment{Name: variable.Names[0], Value: value}
	}
	target := &VariableValue{Names: variable.Names[:len(variable.Names)-1], Pos: variable.Pos}
	field := variable.Names[len(variable.Names)-1]
	return &FieldAssignment{Target: target, Field: field, Value: value, Pos: variable.Pos}
}

func (p *parser) parsePrintStatement() Statement {
	p.advance() // consume 'print'
	args := []Statement{}
	if p.atBlockEnd() {
		return &Print{Args: args}
	}
	args = append(args, p.parseExpression())
	for p.curIsChar(',') {
		p.advance()
		args = append(args, p.parseExpression())
	}
	return &Print{Args: args}
}

func (p *parser) parseIfStatement() Statement {
	p.advance() // consume 'if'
	cond := p.parseExpression()
	p.expectChar(':')
	then := p.parseBlock()

	var elseStmt Statement
	if p.cur().Type == tokenElse {
		p.advance()
		p.expectChar(':')
		elseStmt = p.parseBlock()
	}
	return &IfElse{Cond: cond, Then: then, Else: elseStmt}
}

func (p *parser) parseReturnStatement() Statement {
	p.advance() // consume 'return'
	if p.atBlockEnd() {
		return &Return{Expr: &NoneLiteral{}}
	}
	return &Return{Expr: p.parseExpression()}
}

// parseBlock consumes the Newline/Indent pair that opens a block body,
// the statements within it, and the closing Dedent.
func (p *parser) parseBlock() Statement {
	if p.cur().Type == tokenNewline {
		p.advance()
	} else {
		p.errorExpected(p.cur(), "newline")
	}
	if !p.expect(tokenIndent) {
		return &Compound{}
	}

	body := &Compound{}
	for p.cur().Type != tokenDedent && p.cur().Type != tokenEOF {
		if p.cur().Type == tokenNewline {
			p.advance()
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			body.AddStatement(stmt)
		}
		p.consumeTerminator()
	}
	if p.cur().Type == tokenDedent {
		p.advance()
	} else {
		p.errorExpected(p.cur(), "dedent")
	}
	return body
}

// parseClassStatement parses `class Name:` or `class Name(Parent):`
// followed by an indented block of method definitions. The class is
// registered in p.classes before its body is parsed, so methods may
// reference it (and sibling classes declared earlier) by name.
func (p *parser) parseClassStatement() Statement {
	p.advance() // consume 'class'
	if p.cur().Type != tokenID {
		p.errorExpected(p.cur(), "class name")
		return nil
	}
	name := p.cur().Text
	p.advance()

	var parent *Class
	if p.curIsChar('(') {
		p.advance()
		if p.cur().Type != tokenID {
			p.errorExpected(p.cur(), "parent class name")
		} else {
			parentName := p.cur().Text
			p.advance()
			if cls, ok := p.classes[parentName]; ok {
				parent = cls
			} else {
				p.addError(p.cur().Pos, "unknown class: "+parentName)
			}
		}
		p.expectChar(')')
	}

	cls := &Class{Name: name, Parent: parent}
	p.classes[name] = cls

	p.expectChar(':')
	if p.cur().Type == tokenNewline {
		p.advance()
	} else {
		p.errorExpected(p.cur(), "newline")
	}
	if !p.expect(tokenIndent) {
		return &ClassDefinition{Class: cls}
	}

	for p.cur().Type != tokenDedent && p.cur().Type != tokenEOF {
		if p.cur().Type == tokenNewline {
			p.advance()
			continue
		}
		if p.cur().Type != tokenDef {
			p.errorExpected(p.cur(), "'def'")
			p.advance()
			continue
		}
		cls.Methods = append(cls.Methods, p.parseMethodDefinition())
	}
	if p.cur().Type == tokenDedent {
		p.advance()
	} else {
		p.errorExpected(p.cur(), "dedent")
	}

	return &ClassDefinition{Class: cls}
}

func (p *parser) parseMethodDefinition() Method {
	p.advance() // consume 'def'
	name := ""
	if p.cur().Type == tokenID {
		name = p.cur().Text
		p.advance()
	} else {
		p.errorExpected(p.cur(), "method name")
	}

	p.expectChar('(')
	params := []string{}
	if !p.curIsChar(')') {
		if p.cur().Type == tokenID {
			params = append(params, p.cur().Text)
			p.advance()
		} else {
			p.errorExpected(p.cur(), "parameter name")
		}
		for p.curIsChar(',') {
			p.advance()
			if p.cur().Type == tokenID {
				params = append(params, p.cur().Text)
				p.advance()
			} else {
				p.errorExpected(p.cur(), "parameter name")
			}
		}
	}
	p.expectChar(')')
	p.expectChar(':')

	if len(params) > 0 && params[0] == "self" {
		params = params[1:]
	}

	body := p.parseBlock()
	return Method{Name: name, FormalParams: params, Body: &MethodBody{Body: body}}
}
