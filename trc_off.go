//go:build !civil_debug

package civil

type DefaultTracer struct{}
type labeledItem struct{}

func debugPath(_ ...any) func(_ ...any)    { return func(_ ...any) {} }
func debugInfo(_ ...any)                   {}
func debugCalendar(_ ...any)               {}
func debugClock(_ ...any)                  {}
func debugArith(_ ...any)                  {}
func debugParse(_ ...any)                  {}
func debugCodec(_ ...any)                  {}
func debugConstraint(_ ...any)             {}
func newLItem(_ any, _ string) labeledItem { return labeledItem{} }
func (_ labeledItem) String() string       { return `` }
