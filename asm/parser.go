// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package asm

import (
	"io"
	"sort"
	"strconv"
	"text/scanner"
	"unicode"

	"github.com/db47h/intcode/vm"
)

const maxErrors = 10

// parser states
const (
	stateAny     = iota // accept anything
	stateOperand        // need an instruction operand
	stateOrg            // need integer or const (.org)
	stateEqu            // need integer or const (.equ value)
	stateDat            // need integer, const or label (.dat)
)

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type label struct {
	labelSite
	uses []labelSite
}

type parser struct {
	i       []vm.Cell
	pc      int
	end     int
	s       scanner.Scanner
	labels  map[string]*label
	consts  map[string]labelSite
	cstName string
	cstPos  scanner.Position
	errs    ErrAsm

	// instruction being assembled
	ins    vm.Instruction
	insPos scanner.Position
	argc   int
}

func newParser() *parser {
	p := new(parser)
	p.labels = make(map[string]*label)
	p.consts = make(map[string]labelSite)
	return p
}

func (p *parser) error(pos scanner.Position, msg string) {
	if !pos.IsValid() {
		pos = p.s.Pos()
	}
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, struct {
			Pos scanner.Position
			Msg string
		}{pos, msg})
	}
}

func (p *parser) write(v vm.Cell) {
	for p.pc >= len(p.i) {
		p.i = append(p.i, make([]vm.Cell, 1024)...)
	}
	p.i[p.pc] = v
	p.pc++
	if p.pc > p.end {
		p.end = p.pc
	}
}

// useLabel records a reference to label name, to be resolved at address.
func (p *parser) useLabel(name string, address int) {
	lbl := p.labels[name]
	if lbl == nil {
		lbl = &label{
			// use current position as valid temp position
			labelSite{p.s.Position, -1},
			nil,
		}
		p.labels[name] = lbl
	}
	lbl.uses = append(lbl.uses, labelSite{p.s.Position, address})
}

// value converts s to an integer. s can be an integer literal, a character
// literal or the name of a constant.
func (p *parser) value(s string) (vm.Cell, bool) {
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return vm.Cell(n), true
	}
	if len(s) > 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		r, _, tail, err := strconv.UnquoteChar(s[1:len(s)-1], '\'')
		if err != nil || tail != "" {
			p.error(p.s.Position, "invalid character literal "+s)
			return 0, true
		}
		return vm.Cell(r), true
	}
	if c, ok := p.consts[s]; ok {
		return vm.Cell(c.address), true
	}
	return 0, false
}

func (p *parser) isLabelName(s string) bool {
	switch s[0] {
	case ':', '.', '@', '(', ')':
		p.error(p.s.Position, "invalid label name "+s)
		return false
	}
	return true
}

func (p *parser) operand(s string) {
	k := p.argc
	p.argc++
	a := &p.ins.Args[k]
	a.Mode = vm.Immediate
	if len(s) > 1 && s[0] == '@' {
		a.Mode = vm.Absolute
		s = s[1:]
	}
	if k == target(p.ins.Op) && a.Mode != vm.Absolute {
		p.error(p.s.Position, "immediate write target for "+p.ins.Op.String()+": "+s)
	}
	if v, ok := p.value(s); ok {
		a.Value = v
		return
	}
	if p.isLabelName(s) {
		p.useLabel(s, p.pc+1+k)
	}
}

func (p *parser) emit() {
	for _, c := range p.ins.Encode() {
		p.write(c)
	}
}

func (p *parser) defineLabel(n string) {
	if len(n) == 0 {
		p.error(p.s.Position, "empty label name")
		return
	}
	if cst, ok := p.consts[n]; ok {
		p.error(p.s.Position, "label redefinition: "+n+", previously defined as a constant here: "+cst.pos.String())
		return
	}
	if l, ok := p.labels[n]; ok {
		if l.address != -1 {
			p.error(p.s.Position, "label redefinition: "+n+", previous definition here: "+l.pos.String())
			return
		}
		l.address = p.pc
		l.pos = p.s.Position
		return
	}
	p.labels[n] = &label{labelSite{p.s.Position, p.pc}, nil}
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) error {
	var state int

	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.error(s.Position, msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for tok := p.s.Scan(); tok != scanner.EOF && len(p.errs) < maxErrors; tok = p.s.Scan() {
		if tok != scanner.Ident {
			p.error(p.s.Position, "unexpected character "+strconv.QuoteRune(tok))
			continue
		}
		s := p.s.TokenText()

		if s == "(" {
			// skip comments
			for ; tok != scanner.EOF && (tok != scanner.Ident || p.s.TokenText() != ")"); tok = p.s.Scan() {
			}
			continue
		}

		switch state {
		case stateOperand:
			p.operand(s)
			if p.argc == p.ins.Op.Operands() {
				p.emit()
				state = stateAny
			}
		case stateOrg:
			if v, ok := p.value(s); !ok || v < 0 {
				p.error(p.s.Position, ".org: expected address, got "+s)
			} else {
				p.pc = int(v)
			}
			state = stateAny
		case stateEqu:
			if v, ok := p.value(s); ok {
				p.consts[p.cstName] = labelSite{p.cstPos, int(v)}
			} else {
				p.error(p.s.Position, ".equ: expected integer value, got "+s)
			}
			state = stateAny
		case stateDat:
			if v, ok := p.value(s); ok {
				p.write(v)
			} else {
				if p.isLabelName(s) {
					p.useLabel(s, p.pc)
				}
				p.write(0)
			}
			state = stateAny
		default:
			switch s[0] {
			case ':':
				p.defineLabel(s[1:])
			case '.':
				switch s {
				case ".org":
					state = stateOrg
				case ".dat":
					state = stateDat
				case ".equ":
					if t := p.s.Scan(); t != scanner.Ident {
						p.error(p.s.Position, ".equ: expected identifier, got "+p.s.TokenText())
						continue
					}
					p.cstName = p.s.TokenText()
					if l, ok := p.labels[p.cstName]; ok {
						p.error(p.s.Position, ".equ: redefinition of "+p.cstName+", previously defined/used as a label here: "+l.pos.String())
						continue
					}
					p.cstPos = p.s.Position
					state = stateEqu
				default:
					p.error(p.s.Position, "unknown dot directive: "+s)
				}
			default:
				op, ok := opcodeIndex[s]
				if !ok {
					p.error(p.s.Position, "unknown mnemonic: "+s)
					continue
				}
				p.ins = vm.Instruction{Op: op}
				p.insPos = p.s.Position
				p.argc = 0
				if op.Operands() == 0 {
					p.emit()
				} else {
					state = stateOperand
				}
			}
		}
	}

	switch state {
	case stateOperand:
		p.error(p.insPos, "missing operand for "+p.ins.Op.String())
	case stateOrg, stateEqu, stateDat:
		p.error(p.s.Position, "missing directive argument")
	}

	// write labels
	names := make([]string, 0, len(p.labels))
	for n := range p.labels {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		l := p.labels[n]
		if l.address == -1 {
			p.error(l.uses[0].pos, "undefined label "+n)
			continue
		}
		for _, u := range l.uses {
			if u.address < len(p.i) {
				p.i[u.address] = vm.Cell(l.address)
			}
		}
	}

	if len(p.errs) > 0 {
		return p.errs
	}
	return nil
}
