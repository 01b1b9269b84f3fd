package surface

import (
	"fmt"
	"strings"

	"github.com/BrandonKowalski/trail/pkg/trail/transition"
)

// Tree is an in-memory surface hierarchy with tab, stack and plain containers.
//
// It stands in for a real toolkit in tests and in the trail command. It does
// what a toolkit binding has to do for the navigation engine: report active
// children, hold open transactions while animations run, and release units
// from the Registry when it destroys them.
//
// Animations are simulated. An animated mutation takes effect immediately but
// its completion is queued until Flush, the way a run loop would deliver it on
// a later frame.
type Tree struct {
	root    Surface
	units   *Registry
	holder  transition.Holder
	pending []func()
}

// NewTree creates an empty tree. units receives releases for destroyed
// surfaces and may be nil. holder, when set, is held for the duration of
// every simulated animation so enclosing transactions wait for it.
func NewTree(units *Registry, holder transition.Holder) *Tree {
	return &Tree{units: units, holder: holder}
}

func (t *Tree) Root() Surface {
	return t.root
}

// SetRoot installs root and destroys the previous hierarchy.
func (t *Tree) SetRoot(root Surface) {
	old := t.root
	t.root = root
	if b := baseOf(root); b != nil {
		b.presenter = nil
		b.stack = nil
	}
	if old != nil && old != root {
		t.release(old)
	}
}

// NewLeaf creates a plain surface.
func (t *Tree) NewLeaf(name string) *Leaf {
	l := &Leaf{}
	l.node = node{tree: t, self: l, name: name}
	return l
}

// NewStack creates a stack container holding children, bottom first.
func (t *Tree) NewStack(name string, children ...Surface) *Stack {
	s := &Stack{}
	s.node = node{tree: t, self: s, name: name}
	for _, c := range children {
		s.adopt(c)
	}
	return s
}

// NewTabs creates a tab container with the first tab selected.
func (t *Tree) NewTabs(name string, tabs ...Surface) *Tabs {
	tb := &Tabs{tabs: tabs}
	tb.node = node{tree: t, self: tb, name: name}
	return tb
}

// Wrap embeds root in a new stack container. It matches the factory the
// router uses for in-navigation presentations.
func (t *Tree) Wrap(root Surface) Surface {
	return t.NewStack("nav("+nameOf(root)+")", root)
}

// Destroy removes s from its container and releases it together with
// everything it presents. It simulates a unit torn down behind the
// navigation engine's back.
func (t *Tree) Destroy(s Surface) {
	if b := baseOf(s); b != nil {
		switch {
		case b.presenter != nil:
			b.presenter.presented = nil
			b.presenter = nil
		case b.stack != nil:
			b.stack.drop(s)
			b.stack = nil
		}
	}
	if t.root == s {
		t.root = nil
	}
	t.release(s)
}

// Find returns the first surface named name, searching depth first from the
// root, or nil.
func (t *Tree) Find(name string) Surface {
	if t.root == nil {
		return nil
	}
	return find(t.root, name)
}

func find(s Surface, name string) Surface {
	if nameOf(s) == name {
		return s
	}
	for _, c := range childrenOf(s) {
		if found := find(c, name); found != nil {
			return found
		}
	}
	return nil
}

// Flush delivers queued animation completions, including any queued while
// flushing, and returns how many ran.
func (t *Tree) Flush() int {
	n := 0
	for len(t.pending) > 0 {
		fn := t.pending[0]
		t.pending = t.pending[1:]
		fn()
		n++
	}
	return n
}

// Pending returns the number of animations still running.
func (t *Tree) Pending() int {
	return len(t.pending)
}

// Dump renders the hierarchy one surface per line, children indented.
// Active children are marked with '*', modal presentations with '^'.
func (t *Tree) Dump() []string {
	var lines []string
	if t.root != nil {
		dump(&lines, t.root, 0, "")
	}
	return lines
}

func dump(lines *[]string, s Surface, depth int, mark string) {
	indent := strings.Repeat("  ", depth)
	active := s.Next()

	switch v := s.(type) {
	case *Tabs:
		*lines = append(*lines, fmt.Sprintf("%s%stabs %s", indent, mark, v.name))
		for i, tab := range v.tabs {
			m := "  "
			if i == v.selected {
				m = "* "
			}
			dump(lines, tab, depth+1, m)
		}
	case *Stack:
		*lines = append(*lines, fmt.Sprintf("%s%sstack %s", indent, mark, v.name))
		for _, c := range v.children {
			m := "  "
			if c == active {
				m = "* "
			}
			dump(lines, c, depth+1, m)
		}
	default:
		*lines = append(*lines, fmt.Sprintf("%s%s%s", indent, mark, nameOf(s)))
	}

	if b := baseOf(s); b != nil && b.presented != nil {
		dump(lines, b.presented, depth+1, "^ ")
	}
}

func (t *Tree) animate(animated bool, done func()) {
	if !animated {
		if done != nil {
			done()
		}
		return
	}

	release := func() {}
	if t.holder != nil {
		release = t.holder.Hold()
	}
	t.pending = append(t.pending, func() {
		if done != nil {
			done()
		}
		release()
	})
}

func (t *Tree) release(s Surface) {
	if s == nil {
		return
	}
	for _, c := range childrenOf(s) {
		t.release(c)
	}
	if t.units != nil {
		t.units.Release(s)
	}
}

// node carries the state shared by every surface kind in a Tree.
type node struct {
	tree      *Tree
	self      Surface
	name      string
	presented Surface
	presenter *node
	stack     *Stack
}

func (n *node) base() *node { return n }

// Name returns the surface's display name.
func (n *node) Name() string { return n.name }

func (n *node) String() string { return n.name }

// Presented returns the modal this surface presents, if any.
func (n *node) Presented() Surface { return n.presented }

func (n *node) EnclosingStack() Stacker {
	if n.stack == nil {
		return nil
	}
	return n.stack
}

// Present overlays unit modally. A surface presents one modal at a time; a
// second request completes without effect.
func (n *node) Present(unit Surface, animated bool, done func()) {
	done = transition.Once(done)
	if n.presented != nil || unit == nil {
		done()
		return
	}

	n.presented = unit
	if b := baseOf(unit); b != nil {
		b.presenter = n
		b.stack = nil
	}
	n.tree.animate(animated, done)
}

// Show pushes onto the enclosing stack when there is one and presents
// modally otherwise.
func (n *node) Show(unit Surface) {
	if n.stack != nil {
		n.stack.Push(unit, true)
		return
	}
	n.Present(unit, true, nil)
}

// ShowDetail presents unit modally. Trees have no split container, so the
// detail position falls back to a modal overlay.
func (n *node) ShowDetail(unit Surface) {
	n.Present(unit, true, nil)
}

// Dismiss removes the surface from its presenter, or pops it (and everything
// above it) off its stack.
func (n *node) Dismiss(animated bool, done func()) {
	done = transition.Once(done)

	switch {
	case n.presenter != nil:
		n.presenter.presented = nil
		n.presenter = nil
		n.tree.release(n.self)
	case n.stack != nil:
		n.stack.remove(n.self)
	default:
		done()
		return
	}
	n.tree.animate(animated, done)
}

// Leaf is a plain surface. Its only possible child is a modal.
type Leaf struct {
	node
}

func (l *Leaf) Next() Surface {
	return l.presented
}

// Stack is a stacked (navigation) container.
type Stack struct {
	node
	children []Surface
}

func (s *Stack) Next() Surface {
	if s.presented != nil {
		return s.presented
	}
	if len(s.children) == 0 {
		return nil
	}
	return s.children[len(s.children)-1]
}

// Children returns the stacked surfaces, bottom first.
func (s *Stack) Children() []Surface {
	out := make([]Surface, len(s.children))
	copy(out, s.children)
	return out
}

// Show pushes unit.
func (s *Stack) Show(unit Surface) {
	s.Push(unit, true)
}

func (s *Stack) Push(unit Surface, animated bool) {
	if unit == nil {
		return
	}
	s.adopt(unit)
	s.tree.animate(animated, nil)
}

// Pop removes the top surface. The bottom surface is never popped.
func (s *Stack) Pop(animated bool) Surface {
	if len(s.children) < 2 {
		return nil
	}
	top := s.children[len(s.children)-1]
	s.remove(top)
	s.tree.animate(animated, nil)
	return top
}

// PopTo pops every surface above unit and returns them, top first.
func (s *Stack) PopTo(unit Surface, animated bool) []Surface {
	i := s.indexOf(unit)
	if i < 0 || i == len(s.children)-1 {
		return nil
	}

	popped := make([]Surface, 0, len(s.children)-i-1)
	for j := len(s.children) - 1; j > i; j-- {
		popped = append(popped, s.children[j])
	}
	s.remove(s.children[i+1])
	s.tree.animate(animated, nil)
	return popped
}

func (s *Stack) adopt(unit Surface) {
	s.children = append(s.children, unit)
	if b := baseOf(unit); b != nil {
		b.stack = s
		b.presenter = nil
	}
}

// remove pops unit and everything above it, releasing them.
func (s *Stack) remove(unit Surface) {
	i := s.indexOf(unit)
	if i < 0 {
		return
	}
	removed := s.children[i:]
	s.children = append([]Surface(nil), s.children[:i]...)
	for _, r := range removed {
		if b := baseOf(r); b != nil {
			b.stack = nil
		}
		s.tree.release(r)
	}
}

// drop removes unit alone, leaving the surfaces above it in place.
func (s *Stack) drop(unit Surface) {
	i := s.indexOf(unit)
	if i < 0 {
		return
	}
	s.children = append(s.children[:i:i], s.children[i+1:]...)
}

func (s *Stack) indexOf(unit Surface) int {
	for i, c := range s.children {
		if c == unit {
			return i
		}
	}
	return -1
}

// Tabs is a tab container.
type Tabs struct {
	node
	tabs     []Surface
	selected int
}

func (t *Tabs) Next() Surface {
	if t.presented != nil {
		return t.presented
	}
	if t.selected < 0 || t.selected >= len(t.tabs) {
		return nil
	}
	return t.tabs[t.selected]
}

// Select activates tab i and reports whether i was in range.
func (t *Tabs) Select(i int) bool {
	if i < 0 || i >= len(t.tabs) {
		return false
	}
	t.selected = i
	return true
}

// Selected returns the active tab.
func (t *Tabs) Selected() Surface {
	if t.selected < 0 || t.selected >= len(t.tabs) {
		return nil
	}
	return t.tabs[t.selected]
}

type based interface {
	base() *node
}

func baseOf(s Surface) *node {
	if b, ok := s.(based); ok {
		return b.base()
	}
	return nil
}

func childrenOf(s Surface) []Surface {
	var out []Surface
	switch v := s.(type) {
	case *Stack:
		out = append(out, v.children...)
	case *Tabs:
		out = append(out, v.tabs...)
	}
	if b := baseOf(s); b != nil && b.presented != nil {
		out = append(out, b.presented)
	}
	return out
}

func nameOf(s Surface) string {
	if s == nil {
		return "<nil>"
	}
	if b := baseOf(s); b != nil {
		return b.name
	}
	return fmt.Sprint(s)
}
