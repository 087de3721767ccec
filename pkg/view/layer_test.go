package view

import (
	"testing"

	"github.com/matzehuels/displaypicture/pkg/geom"
)

func TestLayerChildren(t *testing.T) {
	root := NewLayer("root", geom.R(0, 0, 200, 200))
	a := NewLayer("a", geom.R(0, 0, 10, 10))
	b := NewLayer("b", geom.R(0, 0, 10, 10))

	root.AddChild(a)
	root.AddChild(b)

	kids := root.Children()
	if len(kids) != 2 || kids[0] != a || kids[1] != b {
		t.Fatalf("Children() = %v, want [a b]", kids)
	}
	if a.Parent() != root {
		t.Error("a.Parent() should be root")
	}

	if got, ok := root.Child("b"); !ok || got != b {
		t.Errorf("Child(b) = %v, %v", got, ok)
	}
	if _, ok := root.Child("missing"); ok {
		t.Error("Child(missing) should not be found")
	}

	b.RemoveFromParent()
	if len(root.Children()) != 1 || b.Parent() != nil {
		t.Errorf("after RemoveFromParent: children = %d, parent = %v", len(root.Children()), b.Parent())
	}

	if root.RemoveChild(b) {
		t.Error("RemoveChild of a detached layer should report false")
	}
}

func TestLayerReparent(t *testing.T) {
	first := NewLayer("first", geom.Rect{})
	second := NewLayer("second", geom.Rect{})
	child := NewLayer("child", geom.Rect{})

	first.AddChild(child)
	second.AddChild(child)

	if len(first.Children()) != 0 {
		t.Error("AddChild should detach the child from its previous parent")
	}
	if child.Parent() != second {
		t.Error("child.Parent() should be second")
	}
}

func TestLayerRemoveAllChildren(t *testing.T) {
	root := NewLayer("root", geom.Rect{})
	a := NewLayer("a", geom.Rect{})
	root.AddChild(a)
	root.AddChild(NewLayer("b", geom.Rect{}))

	root.RemoveAllChildren()
	if len(root.Children()) != 0 {
		t.Errorf("len(Children()) = %d, want 0", len(root.Children()))
	}
	if a.Parent() != nil {
		t.Error("removed child should have no parent")
	}
}

func TestLayerWalk(t *testing.T) {
	root := NewLayer("root", geom.Rect{})
	a := NewLayer("a", geom.Rect{})
	a.AddChild(NewLayer("a1", geom.Rect{}))
	root.AddChild(a)
	root.AddChild(NewLayer("b", geom.Rect{}))

	var names []string
	root.Walk(func(l *Layer) bool {
		names = append(names, l.Name)
		return true
	})
	want := []string{"root", "a", "a1", "b"}
	if len(names) != len(want) {
		t.Fatalf("Walk visited %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Walk[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	names = nil
	root.Walk(func(l *Layer) bool {
		names = append(names, l.Name)
		return l.Name != "a"
	})
	if len(names) != 3 {
		t.Errorf("Walk with pruning visited %v, want [root a b]", names)
	}
}
