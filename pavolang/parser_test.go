package pavolang

import (
	"errors"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{"print 1;", "(print 1)"},
		{"let x := 5;", "(let x 5)"},
		{"x = x + 1;", "(set x (+ x 1))"},
		{"print 1 + 2 - 3;", "(print (- (+ 1 2) 3))"},
		{"print a - b + c;", "(print (+ (- a b) c))"},
		{"print !x + 1;", "(print (! (+ x 1)))"},
		{"print !!x;", "(print (! (! x)))"},
		{"print a & b | c & d;", "(print (| (& a b) (& c d)))"},
		{"print a | b | c;", "(print (| (| a b) c))"},
		{"print !a & b;", "(print (& (! a) b))"},
		{"print a + 1 == b | c;", "(print (== (+ a 1) (| b c)))"},
		{"print a < b; print a > b; print a != b;", "(print (< a b))\n(print (> a b))\n(print (!= a b))"},
		{"if x { print 1; }", "(if x [(print 1)])"},
		{"if x == 1 { }", "(if (== x 1) [])"},
		{"if 1 { return 2; }", "(if 1 [(return 2)])"},
		{"loop { break; }", "(loop [break])"},
		{"loop i < 3 { i = i + 1; }", "(loop (< i 3) [(set i (+ i 1))])"},
		{"let y := { print 1; return 5; };", "(let y {(print 1) (return 5)})"},
		{"let y := {};", "(let y {})"},
		{"print { x = 1; } & { x = 2; };", "(print (& {(set x 1)} {(set x 2)}))"},
		{"if 1 { if 2 { loop { break; } } let z := 3; }", "(if 1 [(if 2 [(loop [break])]) (let z 3)])"},
		{"# nothing\n", ""},
		{"", ""},
	}

	for _, test := range tests {
		t.Run(test.src, func(t *testing.T) {
			nodes, err := Parse(test.src)
			if err != nil {
				t.Fatal(err)
			}
			var lines []string
			for _, node := range nodes {
				lines = append(lines, Dump(node))
			}
			if got := strings.Join(lines, "\n"); got != test.expected {
				t.Fatalf("got %s, expected %s", got, test.expected)
			}
		})
	}
}

func TestParsePositions(t *testing.T) {
	nodes, err := Parse("print 1;\n  let x := 2 + 3;")
	if err != nil {
		t.Fatal(err)
	}
	if pos := nodes[0].Position(); pos != (Pos{1, 1}) {
		t.Fatalf("got %v", pos)
	}
	assign := nodes[1].(*Assign)
	if assign.At != (Pos{2, 3}) {
		t.Fatalf("got %v", assign.At)
	}
	if pos := assign.Value.Position(); pos != (Pos{2, 14}) {
		t.Fatalf("got %v", pos)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src   string
		pos   Pos
		msg   string
		atEOF bool
	}{
		{"let x = 1;", Pos{1, 7}, "must use := when initializing", false},
		{"x := 1;", Pos{1, 3}, "must use = for reassignment", false},
		{"let 1 := 1;", Pos{1, 5}, "expected identifier, got integer", false},
		{"print 1", Pos{1, 8}, "expected ';', got end of input", true},
		{"return 1;", Pos{1, 1}, "unexpected 'return' at start of statement", false},
		{"1;", Pos{1, 1}, "unexpected integer at start of statement", false},
		{"{ print 1; }", Pos{1, 1}, "unexpected '{' at start of statement", false},
		{"print ;", Pos{1, 7}, "expected expression, got ';'", false},
		{"print 1 < 2 < 3;", Pos{1, 13}, "expected ';', got '<'", false},
		{"if 1 { return 1; print 2; }", Pos{1, 18}, "expected '}', got 'print'", false},
		{"if 1 { print 1;", Pos{1, 16}, "unterminated block opened at line 1, column 6", true},
		{"loop {\n  if 1 {\n    break;\n", Pos{4, 1}, "unterminated block opened at line 2, column 8", true},
		{"if 1 print 1;", Pos{1, 6}, "expected '{', got 'print'", false},
		{"break", Pos{1, 6}, "expected ';', got end of input", true},
		{"print 1 + ;", Pos{1, 11}, "expected expression, got ';'", false},
		{"print - 1;", Pos{1, 7}, "expected expression, got '-'", false},
	}

	for _, test := range tests {
		t.Run(test.src, func(t *testing.T) {
			_, err := Parse(test.src)
			var synErr *SyntaxError
			if !errors.As(err, &synErr) {
				t.Fatalf("got %v", err)
			}
			if synErr.Pos != test.pos {
				t.Fatalf("got %v, expected %v", synErr.Pos, test.pos)
			}
			if synErr.Msg != test.msg {
				t.Fatalf("got %q", synErr.Msg)
			}
			if synErr.AtEOF != test.atEOF {
				t.Fatalf("got %v", synErr.AtEOF)
			}
			if !strings.HasPrefix(err.Error(), "Syntax error at line ") {
				t.Fatalf("got %v", err)
			}
		})
	}
}

func TestParseLexicalError(t *testing.T) {
	_, err := Parse("print 1 @ 2;")
	var lexErr *LexicalError
	if !errors.As(err, &lexErr) {
		t.Fatalf("got %v", err)
	}
	if lexErr.Pos != (Pos{1, 9}) {
		t.Fatalf("got %v", lexErr.Pos)
	}
}

func TestParserNext(t *testing.T) {
	parser, err := NewParser(NewLexer("print 1; print 2;"))
	if err != nil {
		t.Fatal(err)
	}
	for _, expected := range []string{"(print 1)", "(print 2)"} {
		node, err := parser.Next()
		if err != nil {
			t.Fatal(err)
		}
		if got := Dump(node); got != expected {
			t.Fatalf("got %s", got)
		}
	}
	for range 2 {
		node, err := parser.Next()
		if err != nil {
			t.Fatal(err)
		}
		if node != nil {
			t.Fatalf("got %v", Dump(node))
		}
	}
}

func TestParseNestingLimit(t *testing.T) {
	nestedIfs := func(n int) string {
		return strings.Repeat("if 1 { ", n) + "print 1; " + strings.Repeat("} ", n)
	}
	nots := func(n int) string {
		return "print " + strings.Repeat("!", n) + "1;"
	}

	for _, src := range []string{
		nestedIfs(MaxNesting),
		nots(MaxNesting),
	} {
		if _, err := Parse(src); err != nil {
			t.Fatalf("got %v", err)
		}
	}

	for _, src := range []string{
		nestedIfs(MaxNesting + 1),
		nots(MaxNesting + 1),
		nots(1_000_000),
		"print " + strings.Repeat("{ let x := ", 5000) + "1;",
	} {
		_, err := Parse(src)
		var synErr *SyntaxError
		if !errors.As(err, &synErr) {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(synErr.Msg, "nesting too deep (limit 1000)") {
			t.Fatalf("got %v", synErr.Msg)
		}
	}

	// the depth is released when a block closes
	if _, err := Parse(nestedIfs(MaxNesting) + nestedIfs(MaxNesting)); err != nil {
		t.Fatalf("got %v", err)
	}
}
