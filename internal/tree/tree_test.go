package tree

import "testing"

func TestBasicTraversal(t *testing.T) {
	tr := New(0)
	n1, _ := tr.AddChild(tr.Root, 1)
	n2, _ := tr.AddChild(n1, 2)
	n3, _ := tr.AddChild(n1, 3)
	n4, _ := tr.AddChild(tr.Root, 4)
	n5, _ := tr.AddChild(n4, 5)
	n6, _ := tr.AddChild(n4, 6)

	got := tr.Traverse()
	want := []int{tr.Root, n1, n2, n3, n4, n5, n6}
	if len(got) != len(want) {
		t.Fatalf("traverse length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("traverse[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestAddChildren(t *testing.T) {
	tr := New(111)
	if v, _ := tr.GetValue(tr.GetRoot()); v != 111 {
		t.Fatalf("root value = %d, want 111", v)
	}
	child1, err := tr.AddChild(0, 12)
	if err != nil {
		t.Fatal(err)
	}
	child2, err := tr.AddChild(0, 32)
	if err != nil {
		t.Fatal(err)
	}
	children, err := tr.GetChildren(tr.GetRoot())
	if err != nil {
		t.Fatal(err)
	}
	if len(children) != 2 {
		t.Fatalf("len(children) = %d, want 2", len(children))
	}
	if p, _ := tr.GetParent(child1); p != tr.GetRoot() {
		t.Fatalf("parent of child1 = %d, want root", p)
	}
	if p, _ := tr.GetParent(child2); p != tr.GetRoot() {
		t.Fatalf("parent of child2 = %d, want root", p)
	}
}

func TestRemoveChild(t *testing.T) {
	tr := New(111)
	child1, _ := tr.AddChild(tr.GetRoot(), 12)
	child2, _ := tr.AddChild(tr.GetRoot(), 32)
	if err := tr.RemoveEntry(child1); err != nil {
		t.Fatal(err)
	}
	children, _ := tr.GetChildren(tr.GetRoot())
	if len(children) != 1 || children[0] != child2 {
		t.Fatalf("children = %v, want [%d]", children, child2)
	}
}

func TestMutateValue(t *testing.T) {
	type thing struct{ Num int }
	tr := New(thing{Num: 111})
	tr.AddChild(0, thing{Num: 12})
	tr.AddChild(0, thing{Num: -9})

	v1, _ := tr.GetValue(1)
	if v1.Num != 12 {
		t.Fatalf("value(1) = %d, want 12", v1.Num)
	}
	v2, _ := tr.GetValue(2)
	if v2.Num != -9 {
		t.Fatalf("value(2) = %d, want -9", v2.Num)
	}

	p1, _ := tr.ValueMut(1)
	p1.Num /= 4
	p2, _ := tr.ValueMut(2)
	p2.Num = 8

	v1, _ = tr.GetValue(1)
	if v1.Num != 3 {
		t.Fatalf("value(1) after mutate = %d, want 3", v1.Num)
	}
	v2, _ = tr.GetValue(2)
	if v2.Num != 8 {
		t.Fatalf("value(2) after mutate = %d, want 8", v2.Num)
	}
}

func TestMoveNodeToRoot(t *testing.T) {
	tr := New(0)
	g1, _ := tr.AddChild(tr.Root, 1)
	tr.AddChild(g1, 2)
	n3, _ := tr.AddChild(tr.Root, 3)

	if err := tr.MoveNode(n3, 0); err != nil {
		t.Fatal(err)
	}
	children, _ := tr.GetChildren(tr.Root)
	if len(children) != 2 {
		t.Fatalf("root children = %v, want 2 entries", children)
	}
}

func TestMoveNodeIntoGroup(t *testing.T) {
	tr := New(0)
	group, _ := tr.AddChild(tr.Root, 10)
	leaf, _ := tr.AddChild(tr.Root, 20)

	if err := tr.MoveNode(leaf, -group); err != nil {
		t.Fatal(err)
	}
	parent, err := tr.GetParent(leaf)
	if err != nil {
		t.Fatal(err)
	}
	if parent != group {
		t.Fatalf("parent of leaf = %d, want %d", parent, group)
	}
}

func TestMoveNodeBeforeSibling(t *testing.T) {
	tr := New(0)
	a, _ := tr.AddChild(tr.Root, 1)
	b, _ := tr.AddChild(tr.Root, 2)
	c, _ := tr.AddChild(tr.Root, 3)

	if err := tr.MoveNode(c, b); err != nil {
		t.Fatal(err)
	}
	children, _ := tr.GetChildren(tr.Root)
	want := []int{a, c, b}
	if len(children) != len(want) {
		t.Fatalf("children = %v, want %v", children, want)
	}
	for i := range want {
		if children[i] != want[i] {
			t.Fatalf("children = %v, want %v", children, want)
		}
	}
}

func TestAddTreeAsChild(t *testing.T) {
	host := New("root")
	other := New("sub-root")
	other.AddChild(other.Root, "sub-child")

	if err := host.AddTreeAsChild(other, host.Root); err != nil {
		t.Fatal(err)
	}
	children, _ := host.GetChildren(host.Root)
	if len(children) != 1 {
		t.Fatalf("host root children = %v, want 1", children)
	}
	grafted := children[0]
	v, _ := host.GetValue(grafted)
	if v != "sub-root" {
		t.Fatalf("grafted root value = %q, want sub-root", v)
	}
	grandChildren, _ := host.GetChildren(grafted)
	if len(grandChildren) != 1 {
		t.Fatalf("grafted children = %v, want 1", grandChildren)
	}
	gv, _ := host.GetValue(grandChildren[0])
	if gv != "sub-child" {
		t.Fatalf("grafted child value = %q, want sub-child", gv)
	}
}
