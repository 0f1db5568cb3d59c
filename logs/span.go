package logs

// Span identifies one program run, or one REPL session and its inputs.
type Span string

type spanKey struct{}

var SpanKey = spanKey{}
