package telemetry

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// TimingCollector records timers in a tree so nested operations report as a
// nested view.
type TimingCollector struct {
	root    *timerNode
	current *timerNode
	mu      sync.Mutex
}

type timerNode struct {
	name     string
	start    time.Time
	end      time.Time
	children []*timerNode
	parent   *timerNode
}

// NewTimingCollector creates an empty timing collector.
func NewTimingCollector() *TimingCollector {
	return &TimingCollector{}
}

// Start begins timing an operation. The first timer becomes the tree root;
// subsequent timers nest under whichever timer is currently running.
func (c *TimingCollector) Start(name string) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	node := &timerNode{name: name, start: time.Now()}

	if c.root == nil {
		c.root = node
	} else {
		node.parent = c.current
		c.current.children = append(c.current.children, node)
	}
	c.current = node

	return &timingTimer{collector: c, node: node}
}

// Report writes the timing tree to w.
//
// Example output:
//
//	generate demo: 12ms
//	├─ synthesize: 1ms
//	├─ converge: 10ms
//	└─ render: 1ms
func (c *TimingCollector) Report(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.root == nil {
		return
	}

	_, _ = fmt.Fprintf(w, "%s: %s\n", c.root.name, formatDuration(c.root.duration()))
	for i, child := range c.root.children {
		writeNode(w, child, "", i == len(c.root.children)-1)
	}
}

func writeNode(w io.Writer, node *timerNode, prefix string, isLast bool) {
	branch, extension := "├─ ", "│  "
	if isLast {
		branch, extension = "└─ ", "   "
	}

	_, _ = fmt.Fprintf(w, "%s%s%s: %s\n", prefix, branch, node.name, formatDuration(node.duration()))

	childPrefix := prefix + extension
	for i, child := range node.children {
		writeNode(w, child, childPrefix, i == len(node.children)-1)
	}
}

func (n *timerNode) duration() time.Duration {
	if n.end.IsZero() {
		return time.Since(n.start)
	}
	return n.end.Sub(n.start)
}

// formatDuration shows milliseconds below one second, seconds above.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.2fs", float64(d)/float64(time.Second))
}

type timingTimer struct {
	collector *TimingCollector
	node      *timerNode
}

// End stops the timer and moves the collector's cursor back to the parent.
func (t *timingTimer) End() {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	t.node.end = time.Now()
	if t.node.parent != nil {
		t.collector.current = t.node.parent
	}
}

// Child creates a timer nested under this one regardless of the collector's
// current cursor.
func (t *timingTimer) Child(name string) Timer {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	node := &timerNode{name: name, start: time.Now(), parent: t.node}
	t.node.children = append(t.node.children, node)
	t.collector.current = node

	return &timingTimer{collector: t.collector, node: node}
}
