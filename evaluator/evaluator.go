// Package evaluator implements the elaboration engine: memoized dispatch
// over the expression grammar, worklist driven fixpoint completion, and the
// finalize pass that hands back a value graph free of reference indirection.
package evaluator

import (
	"strconv"
	"strings"

	"github.com/lyraproj/issue/issue"

	"github.com/lyraproj/om-evaluator/ir"
	"github.com/lyraproj/om-evaluator/om"
	"github.com/lyraproj/om-evaluator/values"
)

// Evaluator computes concrete value graphs for requested instantiations. An
// Evaluator memoizes across calls, so repeated instantiation of a class with
// equal actual parameters reuses prior work. An Evaluator must only be used
// from one goroutine at a time; callers needing parallelism use independent
// instances (see InstantiateAll).
type Evaluator interface {
	// Instantiate computes the instance of the named class for the given
	// actual parameters. The returned value is finalized; it contains no
	// reference indirection. The first failure aborts the call and no
	// partial result is returned; the engine then discards its cache so the
	// failure cannot leak into later calls.
	Instantiate(className string, actualParams []om.Value) (om.Value, error)
}

// key identifies one computation: an expression node and the identity of the
// actual parameter list it is evaluated against.
type key struct {
	node  ir.NodeID
	frame int
}

// frame is an interned actual parameter list. Interning is by content, so
// equal parameter vectors share one frame and therefore one set of keys.
type frame struct {
	id     int
	values []om.Value
}

type workItem struct {
	key   key
	expr  ir.Expr
	frame *frame
}

type evaluator struct {
	loader     ir.Loader
	logger     Logger
	arena      *values.Arena
	memo       map[key]values.Handle
	inProgress map[key]bool
	pending    map[values.Handle]workItem
	frames     map[string]*frame
	worklist   []workItem
}

// Option configures an Evaluator created by New
type Option func(*evaluator)

// WithLogger directs the engine's diagnostics to the given logger
func WithLogger(logger Logger) Option {
	return func(e *evaluator) {
		e.logger = logger
	}
}

// New creates an Evaluator that resolves class names through the given
// loader
func New(loader ir.Loader, options ...Option) Evaluator {
	e := &evaluator{
		loader:     loader,
		logger:     NoopLogger(),
		arena:      values.NewArena(),
		memo:       make(map[key]values.Handle, 32),
		inProgress: make(map[key]bool, 8),
		pending:    make(map[values.Handle]workItem, 16),
		frames:     make(map[string]*frame, 8),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *evaluator) Instantiate(className string, actualParams []om.Value) (result om.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			if reported, ok := r.(issue.Reported); ok {
				e.logger.LogIssue(reported)
				e.reset()
				result = nil
				err = reported
				return
			}
			panic(r)
		}
	}()
	root := e.allocateObjectInstance(className, e.internFrame(actualParams), nil)
	e.drain()
	if fe := values.Finalize(e.arena, root); fe != nil {
		if reported, ok := fe.(issue.Reported); ok {
			e.logger.LogIssue(reported)
		}
		e.reset()
		return nil, fe
	}
	return root, nil
}

// reset discards all evaluation state. A failed call leaves queued work,
// in-progress marks and memoized cells that never grounded; any of those
// would make the next call answer for the previous program, so the whole
// cache goes. Memoization persists across successful calls only.
func (e *evaluator) reset() {
	e.arena = values.NewArena()
	e.memo = make(map[key]values.Handle, 32)
	e.inProgress = make(map[key]bool, 8)
	e.pending = make(map[values.Handle]workItem, 16)
	e.frames = make(map[string]*frame, 8)
	e.worklist = nil
}

// internFrame returns the frame for the given parameter vector, creating it
// on first use. Attributes contribute their content hash, composites their
// arena identity, so two calls with equal constants land in the same frame.
func (e *evaluator) internFrame(params []om.Value) *frame {
	b := strings.Builder{}
	for _, p := range params {
		if a, ok := p.(*values.AttributeValue); ok {
			b.WriteString(a.Attr().HashKey())
		} else if r, ok := p.(*values.ReferenceValue); ok {
			b.WriteString(`r:`)
			b.WriteString(strconv.Itoa(int(r.Target())))
		} else {
			b.WriteString(`h:`)
			b.WriteString(strconv.Itoa(int(e.arena.Identify(p))))
		}
		b.WriteByte(0)
	}
	fk := b.String()
	if f, ok := e.frames[fk]; ok {
		return f
	}
	// the frame outlives the call; it must not alias a slice the caller may
	// mutate afterwards
	f := &frame{id: len(e.frames), values: append([]om.Value(nil), params...)}
	e.frames[fk] = f
	return f
}

// allocateObjectInstance creates an instance of the named class and
// memoizes it before evaluating any field. That order is what lets a field
// expression refer back to the object under construction, or to a sibling
// still under construction, without recursing forever.
func (e *evaluator) allocateObjectInstance(className string, f *frame, loc issue.Location) om.Value {
	class, ok := e.loader.LoadClass(className)
	if !ok {
		panic(evalError(om.UnknownClass, loc, issue.H{`name`: className}))
	}
	if len(f.values) != len(class.Parameters()) {
		panic(evalError(om.IllegalArgumentCount, loc, issue.H{
			`class`: className, `expected`: len(class.Parameters()), `actual`: len(f.values)}))
	}

	k := key{class.ID(), f.id}
	h, ok := e.memo[k]
	if ok {
		if v := e.arena.Load(h); v != nil {
			return v
		}
	} else {
		h = e.arena.NewCell()
		e.memo[k] = h
	}
	obj := values.NewObject(class)
	e.arena.Ground(h, obj)
	e.logger.Logf(DEBUG, `allocated instance of '%s' in frame %d`, className, f.id)

	for _, fld := range class.Fields() {
		fk := key{fld.Expr().ID(), f.id}
		if fh, ok := e.memo[fk]; ok {
			if v := e.arena.Load(fh); v != nil {
				obj.SetField(fld.Name(), v)
			} else {
				obj.SetField(fld.Name(), e.arena.NewReference(fh))
			}
		} else {
			fh := e.arena.NewCell()
			e.memo[fk] = fh
			obj.SetField(fld.Name(), e.arena.NewReference(fh))
			wi := workItem{fk, fld.Expr(), f}
			e.pending[fh] = wi
			e.worklist = append(e.worklist, wi)
		}
	}
	obj.MarkFullyEvaluated()
	return obj
}

// drain evaluates pending keys in FIFO order until no work remains. A key
// completed by another path while queued is skipped.
func (e *evaluator) drain() {
	for len(e.worklist) > 0 {
		wi := e.worklist[0]
		e.worklist = e.worklist[1:]
		if e.arena.Load(e.memo[wi.key]) != nil {
			continue
		}
		e.logger.Logf(DEBUG, `evaluating %T in frame %d`, wi.expr, wi.frame.id)
		e.evaluateValue(wi.expr, wi.frame)
	}
}

// evaluateValue computes the value of one key, memoizing the result. A
// re-entrant request for a key that is currently being computed observes a
// reference to its cell instead of recursing.
func (e *evaluator) evaluateValue(expr ir.Expr, f *frame) om.Value {
	k := key{expr.ID(), f.id}
	h, ok := e.memo[k]
	if ok {
		if v := e.arena.Load(h); v != nil {
			return v
		}
		if e.inProgress[k] {
			return e.arena.NewReference(h)
		}
	} else {
		h = e.arena.NewCell()
		e.memo[k] = h
	}
	e.inProgress[k] = true
	v := e.dispatch(expr, f)
	e.arena.Ground(h, v)
	delete(e.inProgress, k)
	delete(e.pending, h)
	return v
}

// groundValue follows a reference chain, forcing computations that are
// queued but not yet evaluated, until a non reference value is reached.
// When the chain runs into a computation that is in progress the reference
// is returned as is; only an illegal cycle produces that, and the finalize
// pass reports it.
func (e *evaluator) groundValue(v om.Value) om.Value {
	seen := make(map[values.Handle]bool, 4)
	for {
		r, ok := v.(*values.ReferenceValue)
		if !ok {
			return v
		}
		h := r.Target()
		if seen[h] {
			return r
		}
		seen[h] = true
		if next := e.arena.Load(h); next != nil {
			v = next
			continue
		}
		if wi, ok := e.pending[h]; ok && !e.inProgress[wi.key] {
			v = e.evaluateValue(wi.expr, wi.frame)
			continue
		}
		return r
	}
}
