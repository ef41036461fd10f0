package loop

import "github.com/plus3/blockfall/engine"

// Commands buffers operations that must not happen while systems are
// running, such as replacing the game. They are applied at the end of the
// frame.
type Commands struct {
	restart *engine.Config
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run after every system has executed.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Restart queues a fresh game built from cfg. When several restarts are
// queued in one frame the last one wins.
func (c *Commands) Restart(cfg engine.Config) {
	c.restart = &cfg
}

// Pending reports whether anything is queued.
func (c *Commands) Pending() bool {
	return c.restart != nil || len(c.defers) > 0
}

// Flush applies the queued commands to scheduler and resets the buffer.
// A restart is applied before deferred functions so they observe the new game.
func (c *Commands) Flush(scheduler *Scheduler) {
	if c.restart != nil {
		scheduler.game = engine.NewGame(*c.restart)
		scheduler.restarts++
	}

	for _, fn := range c.defers {
		fn()
	}

	c.restart = nil
	c.defers = c.defers[:0]
}
