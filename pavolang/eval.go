package pavolang

import (
	"fmt"
	"math"
	"strconv"
)

func (i *Interpreter) eval(node Node) (Result, error) {
	switch node := node.(type) {

	case *Number:
		return normal(literalValue(node.Text)), nil

	case *Variable:
		value, err := i.env.Get(node.Name)
		if err != nil {
			return Result{}, withPos(err, node.At)
		}
		return normal(value), nil

	case *Assign:
		if i.env.Has(node.Name) {
			return Result{}, &SemanticError{
				Err:     ErrRedeclared,
				Subject: node.Name,
				Pos:     node.At,
			}
		}
		return i.store(node.Name, node.Value, node.At)

	case *Reassign:
		if !i.env.Has(node.Name) {
			return Result{}, &SemanticError{
				Err:     ErrUndeclaredReassign,
				Subject: node.Name,
				Pos:     node.At,
			}
		}
		return i.store(node.Name, node.Value, node.At)

	case *Print:
		res, err := i.eval(node.Value)
		if err != nil || res.Flow != FlowNormal {
			return res, err
		}
		if _, err := fmt.Fprintf(i.stdout, "%d\n", res.Value); err != nil {
			return Result{}, fmt.Errorf("print: %w", err)
		}
		return res, nil

	case *BinaryOp:
		// left spines are folded in a loop, so long chains do not recurse
		spine := []*BinaryOp{node}
		for {
			left, ok := spine[len(spine)-1].Left.(*BinaryOp)
			if !ok {
				break
			}
			spine = append(spine, left)
		}
		res, err := i.eval(spine[len(spine)-1].Left)
		if err != nil || res.Flow != FlowNormal {
			return res, err
		}
		acc := res.Value
		for k := len(spine) - 1; k >= 0; k-- {
			op := spine[k]
			res, err := i.eval(op.Right)
			if err != nil || res.Flow != FlowNormal {
				return res, err
			}
			acc, err = i.arithmetic(op.Op, acc, res.Value, op.At)
			if err != nil {
				return Result{}, err
			}
		}
		return normal(acc), nil

	case *Compare:
		left, right, res, err := i.operands(node.Left, node.Right)
		if err != nil || res.Flow != FlowNormal {
			return res, err
		}
		var ok bool
		switch node.Op {
		case OpEq:
			ok = left == right
		case OpLess:
			ok = left < right
		case OpGreater:
			ok = left > right
		case OpNotEq:
			ok = left != right
		default:
			return Result{}, unknownOperator(node.Op, node.At)
		}
		return normal(boolValue(ok)), nil

	case *Logic:
		if node.Op == OpNot {
			res, err := i.eval(node.Right)
			if err != nil || res.Flow != FlowNormal {
				return res, err
			}
			return normal(boolValue(res.Value == 0)), nil
		}
		// no short-circuit: every operand runs, left to right
		spine := []*Logic{node}
		for {
			left, ok := spine[len(spine)-1].Left.(*Logic)
			if !ok || left.Op == OpNot {
				break
			}
			spine = append(spine, left)
		}
		res, err := i.eval(spine[len(spine)-1].Left)
		if err != nil || res.Flow != FlowNormal {
			return res, err
		}
		acc := res.Value
		for k := len(spine) - 1; k >= 0; k-- {
			op := spine[k]
			res, err := i.eval(op.Right)
			if err != nil || res.Flow != FlowNormal {
				return res, err
			}
			switch op.Op {
			case OpAnd:
				acc = boolValue(acc != 0 && res.Value != 0)
			case OpOr:
				acc = boolValue(acc != 0 || res.Value != 0)
			default:
				return Result{}, unknownOperator(op.Op, op.At)
			}
		}
		return normal(acc), nil

	case *If:
		cond, err := i.eval(node.Cond)
		if err != nil || cond.Flow != FlowNormal {
			return cond, err
		}
		if cond.Value != 0 {
			for _, stmt := range node.Body {
				res, err := i.eval(stmt)
				if err != nil || res.Flow != FlowNormal {
					return res, err
				}
			}
		}
		return normal(0), nil

	case *Block:
		last := 0
		for _, stmt := range node.Body {
			res, err := i.eval(stmt)
			if err != nil {
				return Result{}, err
			}
			switch res.Flow {
			case FlowReturn:
				return normal(res.Value), nil
			case FlowBreak:
				return res, nil
			}
			last = res.Value
		}
		return normal(last), nil

	case *Return:
		res, err := i.eval(node.Value)
		if err != nil || res.Flow != FlowNormal {
			return res, err
		}
		return Result{Flow: FlowReturn, Value: res.Value}, nil

	case *Loop:
		for {
			if node.Cond != nil {
				cond, err := i.eval(node.Cond)
				if err != nil {
					return Result{}, err
				}
				switch cond.Flow {
				case FlowBreak:
					return normal(0), nil
				case FlowReturn:
					return cond, nil
				}
				if cond.Value == 0 {
					return normal(0), nil
				}
			}
			for _, stmt := range node.Body {
				res, err := i.eval(stmt)
				if err != nil {
					return Result{}, err
				}
				switch res.Flow {
				case FlowBreak:
					return normal(0), nil
				case FlowReturn:
					return res, nil
				}
			}
		}

	case *Break:
		return Result{Flow: FlowBreak}, nil

	}

	return Result{}, fmt.Errorf("unknown node type %T", node)
}

func (i *Interpreter) store(name string, expr Node, pos Pos) (Result, error) {
	res, err := i.eval(expr)
	if err != nil || res.Flow != FlowNormal {
		return res, err
	}
	if err := i.env.Set(name, res.Value); err != nil {
		return Result{}, withPos(err, pos)
	}
	return res, nil
}

// operands evaluates left then right. A non-normal flow from either side
// is returned in res and cuts the evaluation short.
func (i *Interpreter) operands(leftNode, rightNode Node) (left, right int, res Result, err error) {
	res, err = i.eval(leftNode)
	if err != nil || res.Flow != FlowNormal {
		return
	}
	left = res.Value
	res, err = i.eval(rightNode)
	if err != nil || res.Flow != FlowNormal {
		return
	}
	right = res.Value
	return
}

func (i *Interpreter) arithmetic(op Operator, a, b int, pos Pos) (int, error) {
	var ret int
	var overflow bool
	switch op {
	case OpAdd:
		ret = a + b
		overflow = (b > 0 && ret < a) || (b < 0 && ret > a)
	case OpSub:
		ret = a - b
		overflow = (b > 0 && ret > a) || (b < 0 && ret < a)
	default:
		return 0, unknownOperator(op, pos)
	}
	if overflow && i.overflow == OverflowError {
		return 0, &SemanticError{
			Err:     ErrIntegerOverflow,
			Subject: fmt.Sprintf("%d %s %d", a, op, b),
			Pos:     pos,
		}
	}
	return ret, nil
}

func unknownOperator(op Operator, pos Pos) error {
	return &SemanticError{
		Err:     ErrUnknownOperator,
		Subject: string(op),
		Pos:     pos,
	}
}

// literalValue converts a digit string, clamping to math.MaxInt.
func literalValue(text string) int {
	v, err := strconv.Atoi(text)
	if err != nil {
		// the lexer only emits digits, so this is a range error
		return math.MaxInt
	}
	return v
}

func boolValue(b bool) int {
	if b {
		return 1
	}
	return 0
}
