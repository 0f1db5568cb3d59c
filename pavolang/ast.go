package pavolang

type Node interface {
	Position() Pos
	node()
}

type Operator string

const (
	OpAdd     Operator = "+"
	OpSub     Operator = "-"
	OpEq      Operator = "=="
	OpLess    Operator = "<"
	OpGreater Operator = ">"
	OpNotEq   Operator = "!="
	OpNot     Operator = "!"
	OpAnd     Operator = "&"
	OpOr      Operator = "|"
)

type Number struct {
	At   Pos
	Text string
}

type Variable struct {
	At   Pos
	Name string
}

// Assign is a `let` declaration.
type Assign struct {
	At    Pos
	Name  string
	Value Node
}

type Reassign struct {
	At    Pos
	Name  string
	Value Node
}

type Print struct {
	At    Pos
	Value Node
}

type BinaryOp struct {
	At          Pos
	Op          Operator
	Left, Right Node
}

type Compare struct {
	At          Pos
	Op          Operator
	Left, Right Node
}

// Logic holds `!`, `&` and `|`. Left is nil for `!`.
type Logic struct {
	At          Pos
	Op          Operator
	Left, Right Node
}

type If struct {
	At   Pos
	Cond Node
	Body []Node
}

type Block struct {
	At   Pos
	Body []Node
}

type Return struct {
	At    Pos
	Value Node
}

// Loop repeats Body while Cond is non-zero, or forever when Cond is nil.
type Loop struct {
	At   Pos
	Cond Node
	Body []Node
}

type Break struct {
	At Pos
}

func (n *Number) Position() Pos   { return n.At }
func (n *Variable) Position() Pos { return n.At }
func (n *Assign) Position() Pos   { return n.At }
func (n *Reassign) Position() Pos { return n.At }
func (n *Print) Position() Pos    { return n.At }
func (n *BinaryOp) Position() Pos { return n.At }
func (n *Compare) Position() Pos  { return n.At }
func (n *Logic) Position() Pos    { return n.At }
func (n *If) Position() Pos       { return n.At }
func (n *Block) Position() Pos    { return n.At }
func (n *Return) Position() Pos   { return n.At }
func (n *Loop) Position() Pos     { return n.At }
func (n *Break) Position() Pos    { return n.At }

func (*Number) node()   {}
func (*Variable) node() {}
func (*Assign) node()   {}
func (*Reassign) node() {}
func (*Print) node()    {}
func (*BinaryOp) node() {}
func (*Compare) node()  {}
func (*Logic) node()    {}
func (*If) node()       {}
func (*Block) node()    {}
func (*Return) node()   {}
func (*Loop) node()     {}
func (*Break) node()    {}
