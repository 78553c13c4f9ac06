// SPDX-License-Identifier: MIT
// Package: lvalign/tree
//
// newick.go: Newick parsing and formatting.

package tree

import (
	"fmt"
	"strconv"
	"strings"
)

// Newick punctuation.
const (
	nwOpen    = '('
	nwClose   = ')'
	nwSep     = ','
	nwLen     = ':'
	nwEnd     = ';'
	nwQuote   = '\''
	nwComment = '['
)

// needsQuote lists characters that force a label to be single-quoted on output.
const needsQuote = "()[]':;, \t\r\n"

// Parse reads a single Newick tree such as "(((a,b)f,c),d)r;".
//
// Supported: nested parentheses, unquoted and single-quoted labels (a doubled quote is an
// escaped quote), branch lengths after ':', [comments], and arbitrary
// whitespace between tokens. The trailing ';' is optional; anything other
// than whitespace after it is an error.
//
// Complexity: O(len(s)); iterative, so nesting depth is unbounded.
func Parse(s string) (*Node, error) {
	p := &parser{src: s}
	return p.run()
}

// MustParse is Parse that panics on error. Intended for tests and fixtures.
func MustParse(s string) *Node {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return n
}

// parser holds the cursor over the Newick source.
type parser struct {
	src string
	pos int
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("Parse at %d: %s: %w", p.pos, fmt.Sprintf(format, args...), ErrParse)
}

func (p *parser) run() (*Node, error) {
	if strings.TrimSpace(p.src) == "" {
		return nil, p.errorf("empty input")
	}

	root := &Node{}
	cur := root
	named := map[*Node]bool{}    // label already read for node
	lengthed := map[*Node]bool{} // length already read for node
	ended := false

	for p.pos < len(p.src) {
		ch := p.src[p.pos]
		if ended {
			if !isSpace(ch) {
				return nil, p.errorf("unexpected %q after ';'", ch)
			}
			p.pos++
			continue
		}

		switch {
		case isSpace(ch):
			p.pos++
		case ch == nwComment:
			if err := p.skipComment(); err != nil {
				return nil, err
			}
		case ch == nwOpen:
			if len(cur.children) > 0 || named[cur] || lengthed[cur] {
				return nil, p.errorf("unexpected '('")
			}
			child := &Node{}
			cur.adopt(child)
			cur = child
			p.pos++
		case ch == nwSep:
			if cur.parent == nil {
				return nil, p.errorf("',' outside of parentheses")
			}
			sib := &Node{}
			cur.parent.adopt(sib)
			cur = sib
			p.pos++
		case ch == nwClose:
			if cur.parent == nil {
				return nil, p.errorf("unbalanced ')'")
			}
			cur = cur.parent
			p.pos++
		case ch == nwLen:
			if lengthed[cur] {
				return nil, p.errorf("duplicate branch length")
			}
			p.pos++
			l, err := p.readLength()
			if err != nil {
				return nil, err
			}
			cur.SetLength(l)
			lengthed[cur] = true
		case ch == nwEnd:
			if cur != root {
				return nil, p.errorf("unbalanced '(' before ';'")
			}
			ended = true
			p.pos++
		default:
			if named[cur] || lengthed[cur] {
				return nil, p.errorf("unexpected label")
			}
			label, err := p.readLabel()
			if err != nil {
				return nil, err
			}
			cur.name = label
			named[cur] = true
		}
	}

	if cur != root {
		return nil, p.errorf("unbalanced '('")
	}

	return root, nil
}

// readLabel consumes a quoted or unquoted label.
func (p *parser) readLabel() (string, error) {
	if p.src[p.pos] == nwQuote {
		var b strings.Builder
		p.pos++
		for p.pos < len(p.src) {
			ch := p.src[p.pos]
			if ch == nwQuote {
				if p.pos+1 < len(p.src) && p.src[p.pos+1] == nwQuote {
					b.WriteByte(nwQuote)
					p.pos += 2
					continue
				}
				p.pos++
				return b.String(), nil
			}
			b.WriteByte(ch)
			p.pos++
		}
		return "", p.errorf("unterminated quoted label")
	}

	start := p.pos
	for p.pos < len(p.src) && !isDelimiter(p.src[p.pos]) {
		p.pos++
	}

	return p.src[start:p.pos], nil
}

// readLength consumes the number after ':'.
func (p *parser) readLength() (float64, error) {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
	}
	start := p.pos
	for p.pos < len(p.src) && !isDelimiter(p.src[p.pos]) {
		p.pos++
	}
	tok := p.src[start:p.pos]
	l, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, p.errorf("bad branch length %q", tok)
	}

	return l, nil
}

// skipComment consumes a [bracketed] comment.
func (p *parser) skipComment() error {
	end := strings.IndexByte(p.src[p.pos:], ']')
	if end < 0 {
		return p.errorf("unterminated comment")
	}
	p.pos += end + 1

	return nil
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDelimiter(ch byte) bool {
	switch ch {
	case nwOpen, nwClose, nwSep, nwLen, nwEnd, nwComment:
		return true
	}

	return isSpace(ch)
}

// String renders the subtree rooted at n as Newick, terminated by ';'.
// Labels containing Newick punctuation or whitespace are single-quoted.
// Lengths use the shortest float representation that round-trips.
// Complexity: O(N); iterative.
func (n *Node) String() string {
	var b strings.Builder
	stack := []postFrame{{node: n}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		node := top.node
		if top.next < len(node.children) {
			if top.next == 0 {
				b.WriteByte(nwOpen)
			} else {
				b.WriteByte(nwSep)
			}
			child := node.children[top.next]
			top.next++
			stack = append(stack, postFrame{node: child})
			continue
		}
		if len(node.children) > 0 {
			b.WriteByte(nwClose)
		}
		writeLabel(&b, node)
		stack = stack[:len(stack)-1]
	}
	b.WriteByte(nwEnd)

	return b.String()
}

// writeLabel emits "name[:length]" for one node.
func writeLabel(b *strings.Builder, n *Node) {
	if n.name != "" {
		if strings.ContainsAny(n.name, needsQuote) {
			b.WriteByte(nwQuote)
			b.WriteString(strings.ReplaceAll(n.name, "'", "''"))
			b.WriteByte(nwQuote)
		} else {
			b.WriteString(n.name)
		}
	}
	if n.hasLength {
		b.WriteByte(nwLen)
		b.WriteString(strconv.FormatFloat(n.length, 'g', -1, 64))
	}
}
