//go:build civil_debug

package civil

/*
trc_on.go implements the opt-in debug tracer. It is compiled only
when this package is built with "-tags civil_debug".
*/

import (
	"io"
	"os"
	"runtime"
	"sync"
	"time"
)

/*
EnvDebugVar defines the environment variable name which can
be leveraged to invoke or disable use of the [DefaultTracer]
[Tracer] qualifier.

The value is a comma-delimited list of event names (e.g.:
"enter,exit,arith") or integer masks. A negative integer
enables all events.
*/
const EnvDebugVar = "CIVIL_DEBUG"

const coreTracerMask = EventEnter | EventInfo | EventExit

var tnow func() time.Time = time.Now

/*
DefaultTracer is the package-level [Tracer] implementation.
*/
type DefaultTracer struct {
	mu sync.Mutex
	w  io.Writer
	ll loglevels
}

/*
NewDefaultTracer returns an instance of *[DefaultTracer]. The
input [io.Writer] value represents the writer interface type
to which debug data shall be written.
*/
func NewDefaultTracer(writer io.Writer) *DefaultTracer {
	return &DefaultTracer{
		w:  writer,
		ll: newLoglevels(),
	}
}

/*
EnableLevel adds [EventType] ev to the collection of loglevels
to be used during debugging.
*/
func (r *DefaultTracer) EnableLevel(ev EventType) { r.ll.Shift(int(ev)) }

/*
DisableLevel removes [EventType] ev from the collection of loglevels
to be used during debugging.
*/
func (r *DefaultTracer) DisableLevel(ev EventType) { r.ll.Unshift(int(ev)) }

/*
Enabled returns a Boolean value indicative of the specified
[EventType] being enabled within the receiver instance.
*/
func (r *DefaultTracer) Enabled(e EventType) bool { return r.ll.Positive(int(e)) }

/*
Trace writes [TraceRecord] rec to the [io.Writer] handled by the
receiver instance. This method need not be executed by the end
user directly.
*/
func (r *DefaultTracer) Trace(rec TraceRecord) {
	if !r.ll.Positive(int(rec.Type)) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ts := rec.Time.Format("15:04:05.000")
	fn := trimFuncName(rec.Func)

	switch rec.Type & coreTracerMask {
	case EventEnter:
		r.write(ts+" → "+fn+"(", rec.Args, ")\n")
	case EventExit:
		r.write(ts+" ← "+fn+" => ", rec.Ret, "\n")
	default:
		r.write(ts+"     • "+fn+": ", rec.Args, "\n")
	}
}

func (r *DefaultTracer) write(head string, vals []any, tail string) {
	b := newStrBuilder()
	b.WriteString(head)
	for i, a := range vals {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmtArg(a))
	}
	b.WriteString(tail)
	r.w.Write([]byte(b.String()))
}

func trimFuncName(full string) string {
	if i := lidx(full, "/"); i >= 0 {
		full = full[i+1:]
	}
	return replace(full, "go-civil.", "", 1)
}

/*
TraceRecord encapsulates metadata pertaining to a particular event
observed by a [Tracer]. This includes a [time.Time] timestamp, an
[EventType] as well as in/out arguments.
*/
type TraceRecord struct {
	Time time.Time // timestamp, i.e.: time.Now()
	Type EventType // Enter, Info, Exit or a subsystem event
	Func string    // FuncName -or- TypeName.MethodName
	Args []any     // On Enter/Info: parameters
	Ret  []any     // On Exit: return values
}

/*
Tracer implements an interface tracer type, which is implemented
by [DefaultTracer].
*/
type Tracer interface {
	Trace(TraceRecord)
}

type levelTracer interface {
	Tracer
	Enabled(EventType) bool
}

/*
EnableDebug registers and activates [Tracer] for debugging.

This function need not be called if an environment variable of
[EnvDebugVar] was read and successfully parsed at runtime.
*/
func EnableDebug(t Tracer) {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = t
}

/*
DisableDebug disables [Tracer] debugging.
*/
func DisableDebug() {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = &discardTracer{}
}

var (
	tmu    sync.RWMutex
	tracer Tracer = &discardTracer{}
)

type discardTracer struct{}

func (*discardTracer) Trace(_ TraceRecord)      {}
func (*discardTracer) Enabled(_ EventType) bool { return false }

func debugEvent(level EventType, args ...any) {
	tmu.RLock()
	t := tracer
	tmu.RUnlock()

	lt, ok := t.(levelTracer)
	if ok && !(lt.Enabled(level) || lt.Enabled(EventAll)) {
		return
	}

	fn := "unknown"
	if pc, _, _, found := runtime.Caller(2); found {
		fn = runtime.FuncForPC(pc).Name()
	}
	if cntns(fn, ".func") {
		fn = fn[:lidx(fn, ".func")]
	}

	rec := TraceRecord{
		Time: tnow(),
		Type: level,
		Func: fn,
	}
	if ok && lt.Enabled(EventIO) {
		if level == EventExit {
			rec.Ret = args
		} else {
			rec.Args = args
		}
	}
	t.Trace(rec)
}

func debugPath(args ...any) func(rets ...any) {
	debugEvent(EventEnter, args...)
	return func(rets ...any) {
		debugEvent(EventExit, rets...)
	}
}

func debugInfo(args ...any)       { debugEvent(EventInfo, args...) }
func debugCalendar(args ...any)   { debugEvent(EventCalendar, args...) }
func debugClock(args ...any)      { debugEvent(EventClock, args...) }
func debugArith(args ...any)      { debugEvent(EventArith, args...) }
func debugParse(args ...any)      { debugEvent(EventParse, args...) }
func debugCodec(args ...any)      { debugEvent(EventCodec, args...) }
func debugConstraint(args ...any) { debugEvent(EventConstraint, args...) }

// strictly for debugging.
type labeledItem struct {
	L string
	V any
}

func newLItem(value any, label string) labeledItem {
	return labeledItem{L: label, V: value}
}

func (r labeledItem) String() string {
	l := "<No label>"
	if r.L != "" {
		l = r.L
	}
	return l + ":" + fmtArg(r.V)
}

func fmtArg(x any) (s string) {
	switch v := x.(type) {
	case nil:
		s = "<nil>"
	case string:
		s = v
	case bool:
		s = bool2str(v)
	case int:
		s = itoa(v)
	case int64:
		s = fmtInt(v, 10)
	case uint32:
		s = fmtUint(uint64(v), 10)
	case error:
		s = "error:" + v.Error()
	case labeledItem:
		s = v.String()
	case interface{ String() string }:
		s = v.String()
	default:
		s = "<Unidentified>"
	}
	return
}

func init() {
	evar := os.Getenv(EnvDebugVar)
	if evar == "" {
		return
	}

	var vars []any
	for _, tok := range split(evar, ",") {
		tok = trimS(tok)
		if n, err := atoi(tok); err != nil {
			vars = append(vars, lc(tok))
		} else if n < 0 {
			vars = []any{int(EventAll)}
			break
		} else if n <= 65535 {
			vars = append(vars, n)
		}
	}

	ll := newLoglevels()
	ll.SetNamesMap(map[int]string{
		int(EventAll):        "all",
		int(EventNone):       "none",
		int(EventEnter):      "enter",
		int(EventInfo):       "info",
		int(EventExit):       "exit",
		int(EventIO):         "io",
		int(EventCalendar):   "calendar",
		int(EventClock):      "clock",
		int(EventArith):      "arith",
		int(EventParse):      "parse",
		int(EventCodec):      "codec",
		int(EventConstraint): "constraint",
	})
	ll.Shift(vars...)

	dt := NewDefaultTracer(os.Stderr)
	dt.ll = ll
	EnableDebug(dt)
	debugInfo(newLItem(join(ll.enabled(), `,`), "loglevels"))
}
