package interpreter

type ScopeKind int

const (
	ProgramScope ScopeKind = iota
	BlockScope
	LoopScope
)

// Frame records the names one block execution introduced.
type Frame struct {
	Names []string
	Kind  ScopeKind
}

// Namespace is a single flat mapping from name to element. Scoping is
// emulated with a stack of frames: popping a frame deletes exactly the
// names that frame introduced.
type Namespace[T any] struct {
	Elems  map[string]T
	Frames []Frame
}

func NewNamespace[T any]() *Namespace[T] {
	return &Namespace[T]{
		Elems: make(map[string]T),
	}
}

func (ns *Namespace[T]) PushFrame(sk ScopeKind) {
	ns.Frames = append(ns.Frames, Frame{Kind: sk})
}

// PopFrame removes the innermost frame and its names, returning them.
func (ns *Namespace[T]) PopFrame() []string {
	if len(ns.Frames) == 0 {
		panic("cannot pop from an empty frame stack")
	}
	top := ns.Frames[len(ns.Frames)-1]
	ns.Frames = ns.Frames[:len(ns.Frames)-1]
	for _, name := range top.Names {
		delete(ns.Elems, name)
	}
	return top.Names
}

// Put binds a new name and records it in the innermost frame.
// It reports false, changing nothing, if the name is already bound.
func (ns *Namespace[T]) Put(name string, elem T) bool {
	if _, ok := ns.Elems[name]; ok {
		return false
	}
	if len(ns.Frames) == 0 {
		panic("cannot put without a frame")
	}
	ns.Elems[name] = elem
	top := &ns.Frames[len(ns.Frames)-1]
	top.Names = append(top.Names, name)
	return true
}

// Set overwrites an existing binding in place.
func (ns *Namespace[T]) Set(name string, elem T) {
	if _, ok := ns.Elems[name]; !ok {
		panic("cannot set unbound name " + name)
	}
	ns.Elems[name] = elem
}

func (ns *Namespace[T]) Get(name string) (T, bool) {
	e, ok := ns.Elems[name]
	return e, ok
}

func (ns *Namespace[T]) Has(name string) bool {
	_, ok := ns.Elems[name]
	return ok
}

func (ns *Namespace[T]) Depth() int {
	return len(ns.Frames)
}
