package render

import (
	"strconv"
	"testing"
)

type node struct{ label string }

func buildEven(n int) *node {
	if n%2 != 0 {
		return nil
	}
	return &node{label: strconv.Itoa(n)}
}

func labels(c *Container[node]) []string {
	var out []string
	for _, n := range c.Nodes() {
		out = append(out, n.label)
	}
	return out
}

func TestList_SkipsNilInOrder(t *testing.T) {
	var c Container[node]
	List(&c, []int{4, 1, 2, 3, 8}, buildEven)

	got := labels(&c)
	want := []string{"4", "2", "8"}
	if len(got) != len(want) {
		t.Fatalf("labels = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("labels = %v, want %v", got, want)
		}
	}
	if _, shown := c.EmptyMessage(); shown {
		t.Fatalf("empty message shown for non-empty list")
	}
}

func TestList_EmptyShowsMessage(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		opts  []Option
		want  string
	}{
		{"nil default", nil, nil, DefaultEmptyMessage},
		{"empty default", []int{}, nil, DefaultEmptyMessage},
		{"custom", nil, []Option{WithEmptyMessage("Nothing trending.")}, "Nothing trending."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Container[node]
			List(&c, tt.items, buildEven, tt.opts...)
			msg, shown := c.EmptyMessage()
			if !shown || msg != tt.want {
				t.Fatalf("EmptyMessage = %q,%v want %q", msg, shown, tt.want)
			}
			if c.Len() != 0 {
				t.Fatalf("Len = %d, want 0", c.Len())
			}
			if !c.HasContent() {
				t.Fatalf("empty-state message should count as content")
			}
		})
	}
}

func TestList_RepaintReplaces(t *testing.T) {
	var c Container[node]
	List(&c, nil, buildEven)
	List(&c, []int{2, 4}, buildEven)
	if _, shown := c.EmptyMessage(); shown {
		t.Fatalf("stale empty message survived repaint")
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}

	List(&c, []int{6}, buildEven)
	if got := labels(&c); len(got) != 1 || got[0] != "6" {
		t.Fatalf("labels = %v after repaint", got)
	}
}

func TestList_AllSkippedIsNotEmptyState(t *testing.T) {
	var c Container[node]
	List(&c, []int{1, 3}, buildEven)
	if c.Len() != 0 {
		t.Fatalf("Len = %d", c.Len())
	}
	if _, shown := c.EmptyMessage(); shown {
		t.Fatalf("all-nil builders should not paint the empty message")
	}
}

func TestList_NilContainer(t *testing.T) {
	var c *Container[node]
	List(c, []int{2}, buildEven)
	if c.Len() != 0 || c.HasContent() || c.At(0) != nil {
		t.Fatalf("nil container should stay empty")
	}
	c.Clear()
}

func TestContainer_ClearAndAt(t *testing.T) {
	var c Container[node]
	List(&c, []int{2, 4}, buildEven)
	if n := c.At(1); n == nil || n.label != "4" {
		t.Fatalf("At(1) = %v", n)
	}
	if c.At(2) != nil || c.At(-1) != nil {
		t.Fatalf("out of range At should be nil")
	}
	c.Clear()
	if c.HasContent() {
		t.Fatalf("HasContent after Clear")
	}
}
