package loop

// System is one stage of a frame. Systems run in registration order, so
// input systems are registered before the tick and renderers after it.
// State a system needs between frames lives in its own fields.
type System interface {
	Execute(frame *UpdateFrame)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(frame *UpdateFrame)

func (f SystemFunc) Execute(frame *UpdateFrame) {
	f(frame)
}

// Named lets a system report its own name in scheduler stats.
type Named interface {
	Name() string
}

type namedSystem struct {
	System
	name string
}

func (n namedSystem) Name() string { return n.name }

// WithName wraps system so it shows up as name in scheduler stats.
func WithName(name string, system System) System {
	return namedSystem{System: system, name: name}
}
