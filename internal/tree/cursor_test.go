package tree

import "testing"

func buildSample() *Tree[int] {
	tr := New(1)
	tr.AddChild(tr.Root, 12)
	tr.AddChild(tr.Root, 32)
	return tr
}

func TestCursorValueAtRoot(t *testing.T) {
	tr := buildSample()
	c := NewCursorAtRoot(tr)
	if c.Value() != 1 {
		t.Fatalf("value = %d, want 1", c.Value())
	}
}

func TestCursorGoUp(t *testing.T) {
	tr := New(42)
	tr.AddChild(tr.Root, 2)
	tr.AddChild(tr.Root, 3)

	c, err := NewCursor(tr, 1)
	if err != nil {
		t.Fatal(err)
	}
	if c.Value() != 2 {
		t.Fatalf("value = %d, want 2", c.Value())
	}
	c.GoUp()
	if c.Value() != 42 {
		t.Fatalf("value after go up = %d, want 42", c.Value())
	}
}

func TestCursorChildren(t *testing.T) {
	tr := buildSample()
	c := NewCursorAtRoot(tr)
	children := c.Children()
	if len(children) != 2 {
		t.Fatalf("len(children) = %d, want 2", len(children))
	}
}

func TestCursorIsOnRoot(t *testing.T) {
	tr := buildSample()
	c := NewCursorAtRoot(tr)
	if !c.IsOnRoot() {
		t.Fatal("expected cursor to start on root")
	}
	c.AddChildAndGoDown(23)
	if c.IsOnRoot() {
		t.Fatal("expected cursor to have moved off root")
	}
	c.AddChildAndGoDown(8)
	if c.IsOnRoot() {
		t.Fatal("expected cursor to have moved off root")
	}
	c.GoUp()
	if c.IsOnRoot() {
		t.Fatal("expected cursor still off root after one go-up")
	}
	c.GoUp()
	if !c.IsOnRoot() {
		t.Fatal("expected cursor back on root")
	}
}

func TestCursorChangeValue(t *testing.T) {
	tr := buildSample()
	c := NewCursorAtRoot(tr)
	c.ChangeValue(8)
	c.AddChildAndGoDown(2)
	c.ChangeValue(3)
	if c.Value() != 3 {
		t.Fatalf("value = %d, want 3", c.Value())
	}
	c.GoUp()
	if c.Value() != 8 {
		t.Fatalf("value after go up = %d, want 8", c.Value())
	}
}
