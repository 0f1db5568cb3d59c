package pavolang

// Flow tells how a statement finished.
type Flow uint8

const (
	FlowNormal Flow = iota
	// FlowReturn travels up to the nearest enclosing block.
	FlowReturn
	// FlowBreak travels up to the nearest enclosing loop.
	FlowBreak
)

func (f Flow) String() string {
	switch f {
	case FlowNormal:
		return "normal"
	case FlowReturn:
		return "return"
	case FlowBreak:
		return "break"
	}
	return "unknown"
}

type Result struct {
	Flow  Flow
	Value int
}

func normal(value int) Result {
	return Result{
		Flow:  FlowNormal,
		Value: value,
	}
}
