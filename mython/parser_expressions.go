package mython

// Expression parsing follows the precedence table from lowest to
// highest: or, and, not, comparison, additive, multiplicative, unary,
// postfix, primary. Each tier is its own method, recursing into the
// next-tighter tier, per a conventional recursive-descent grammar.

func (p *parser) parseExpression() Statement {
	return p.parseOr()
}

func (p *parser) parseOr() Statement {
	left := p.parseAnd()
	for p.cur().Type == tokenOr {
		p.advance()
		right := p.parseAnd()
		left = &Or{Lhs: left, Rhs: right}
	}
	return left
}

func (p *parser) parseAnd() Statement {
	left := p.parseNot()
	for p.cur().Type == tokenAnd {
		p.advance()
		right := p.parseNot()
		left = &And{Lhs: left, Rhs: right}
	}
	return left
}

func (p *parser) parseNot() Statement {
	if p.cur().Type == tokenNot {
		p.advance()
		return &Not{Arg: p.parseNot()}
	}
	return p.parseComparison()
}

func (p *parser) parseComparison() Statement {
	left := p.parseAdditive()
	if op, ok := comparisonOpFor(p.cur()); ok {
		p.advance()
		right := p.parseAdditive()
		return &Comparison{Op: op, Lhs: left, Rhs: right}
	}
	return left
}

func comparisonOpFor(tok Token) (ComparisonOp, bool) {
	switch {
	case tok.Type == tokenEq:
		return OpEqual, true
	case tok.Type == tokenNotEq:
		return OpNotEqual, true
	case tok.Type == tokenLessOrEq:
		return OpLessOrEqual, true
	case tok.Type == tokenGreaterOrEq:
		return OpGreaterOrEqual, true
	case tok.Type == tokenChar && tok.Char == '<':
		return OpLess, true
	case tok.Type == tokenChar && tok.Char == '>':
		return OpGreater, true
	}
	return 0, false
}

func (p *parser) parseAdditive() Statement {
	left := p.parseMultiplicative()
	for p.curIsChar('+') || p.curIsChar('-') {
		op := p.cur().Char
		pos := p.cur().Pos
		p.advance()
		right := p.parseMultiplicative()
		if op == '+' {
			left = &Add{Lhs: left, Rhs: right, Pos: pos}
		} else {
			left = &Sub{Lhs: left, Rhs: right, Pos: pos}
		}
	}
	return left
}

func (p *parser) parseMultiplicative() Statement {
	left := p.parseUnary()
	for p.curIsChar('*') || p.curIsChar('/') {
		op := p.cur().Char
		pos := p.cur().Pos
		p.advance()
		right := p.parseUnary()
		if op == '*' {
			left = &Mult{Lhs: left, Rhs: right, Pos: pos}
		} else {
			left = &Div{Lhs: left, Rhs: right, Pos: pos}
		}
	}
	return left
}

// parseUnary has no operator of its own in this grammar (the language
// has no unary minus); it exists as its own tier to match the stated
// precedence table and simply defers to postfix.
func (p *parser) parseUnary() Statement {
	return p.parsePostfix()
}

// parsePostfix parses an identifier-rooted chain: a bare variable, a
// dotted field path, a class instantiation (`Name(args)`), the
// `Stringify(expr)` builtin when no class of that name is declared, or a
// method call (`path.method(args)`, the last dotted segment immediately
// followed by `(`). Non-identifier leading tokens fall through to
// parsePrimary.
func (p *parser) parsePostfix() Statement {
	if p.cur().Type != tokenID {
		return p.parsePrimary()
	}

	pos := p.cur().Pos
	first := p.cur().Text
	p.advance()

	if p.curIsChar('(') {
		args := p.parseArgList()
		cls, ok := p.classes[first]
		if !ok {
			if first == "Stringify" && len(args) == 1 {
				return &Stringify{Expr: args[0]}
			}
			p.addError(pos, "unknown class: "+first)
			return &NoneLiteral{}
		}
		return &NewInstance{Class: cls, Args: args}
	}

	names := []string{first}
	for p.curIsChar('.') {
		p.advance()
		if p.cur().Type != tokenID {
			p.errorExpected(p.cur(), "identifier after '.'")
			break
		}
		segment := p.cur().Text
		p.advance()
		if p.curIsChar('(') {
			args := p.parseArgList()
			object := Statement(&VariableValue{Names: names, Pos: pos})
			return &MethodCall{Object: object, Method: segment, Args: args, Pos: pos}
		}
		names = append(names, segment)
	}
	return &VariableValue{Names: names, Pos: pos}
}

func (p *parser) parsePrimary() Statement {
	tok := p.cur()
	switch {
	case tok.Type == tokenNumber:
		p.advance()
		return &NumberLiteral{Value: tok.Number}
	case tok.Type == tokenString:
		p.advance()
		return &StringLiteral{Value: tok.Text}
	case tok.Type == tokenTrue:
		p.advance()
		return &BoolLiteral{Value: true}
	case tok.Type == tokenFalse:
		p.advance()
		return &BoolLiteral{Value: false}
	case tok.Type == tokenNone:
		p.advance()
		return &NoneLiteral{}
	case tok.Type == tokenID:
		return p.parsePostfix()
	case tok.Type == tokenChar && tok.Char == '(':
		p.advance()
		expr := p.parseExpression()
		p.expectChar(')')
		return expr
	default:
		p.errorUnexpected(tok)
		p.advance()
		return &NoneLiteral{}
	}
}

// parseArgList expects the current token to be the opening '(' of a
// call or instantiation and consumes through the matching ')'.
func (p *parser) parseArgList() []Statement {
	p.advance() // consume '('
	args := []Statement{}
	if p.curIsChar(')') {
		p.advance()
		return args
	}
	args = append(args, p.parseExpression())
	for p.curIsChar(',') {
		p.advance()
		args = append(args, p.parseExpression())
	}
	p.expectChar(')')
	return args
}
