package pagegrid

import (
	"errors"
	"testing"

	"github.com/nao1215/pagegrid/content"
)

func TestSetVivifiesMissingLevels(t *testing.T) {
	t.Parallel()

	page := NewPage("Doc")
	if err := page.Set("Intro", "Hello"); err != nil {
		t.Fatal(err)
	}

	if page.Len() != 1 {
		t.Fatalf("page.Len() = %d, want 1", page.Len())
	}
	section := mustNodeAt(t, page, 0)
	if section.Kind() != KindSection || section.Title() != "Intro" {
		t.Errorf("child = %v %q, want Section Intro", section.Kind(), section.Title())
	}

	row := mustNodeAt(t, section, 0)
	if row.Kind() != KindRow || section.Len() != 1 {
		t.Errorf("section child = %v (of %d), want one Row", row.Kind(), section.Len())
	}

	column := mustNodeAt(t, row, 0)
	if column.Kind() != KindColumn || row.Len() != 1 {
		t.Errorf("row child = %v (of %d), want one Column", column.Kind(), row.Len())
	}

	leaf, err := column.At(0)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := leaf.(*content.Markdown); !ok {
		t.Errorf("column child = %T, want *content.Markdown", leaf)
	}
}

func TestSetSequenceMakesSiblingColumns(t *testing.T) {
	t.Parallel()

	page := NewPage("Doc")
	section, err := page.Ensure("S")
	if err != nil {
		t.Fatal(err)
	}
	if err := section.Set("R", []any{"left", "right"}); err != nil {
		t.Fatal(err)
	}

	row := mustNodeAt(t, section, 0)
	if row.Title() != "R" {
		t.Errorf("row title = %q, want R", row.Title())
	}
	if row.Len() != 2 {
		t.Fatalf("row.Len() = %d, want 2 columns", row.Len())
	}
	for i := 0; i < row.Len(); i++ {
		col := mustNodeAt(t, row, i)
		if col.Kind() != KindColumn {
			t.Errorf("row child %d = %v, want Column", i, col.Kind())
		}
	}
}

func TestSetReplacesInPlace(t *testing.T) {
	t.Parallel()

	t.Run("by title", func(t *testing.T) {
		t.Parallel()

		page := NewPage("Doc")
		if err := page.Set("A", "first"); err != nil {
			t.Fatal(err)
		}
		if err := page.Set("B", "second"); err != nil {
			t.Fatal(err)
		}
		if err := page.Set("A", "replaced"); err != nil {
			t.Fatal(err)
		}

		if page.Len() != 2 {
			t.Fatalf("page.Len() = %d, want 2 after replacement", page.Len())
		}
		if got := mustNodeAt(t, page, 0).Title(); got != "A" {
			t.Errorf("first child title = %q, want A to keep its position", got)
		}
	})

	t.Run("by index keeps title", func(t *testing.T) {
		t.Parallel()

		page := NewPage("Doc")
		if err := page.Set("A", "first"); err != nil {
			t.Fatal(err)
		}
		if err := page.Set(0, "replaced"); err != nil {
			t.Fatal(err)
		}

		if got := mustNodeAt(t, page, 0).Title(); got != "A" {
			t.Errorf("title after positional replace = %q, want A preserved", got)
		}
	})

	t.Run("index equal to len appends", func(t *testing.T) {
		t.Parallel()

		page := NewPage("Doc")
		if err := page.Set(0, "appended"); err != nil {
			t.Fatal(err)
		}
		if page.Len() != 1 {
			t.Errorf("page.Len() = %d, want 1", page.Len())
		}
	})

	t.Run("index past len fails", func(t *testing.T) {
		t.Parallel()

		page := NewPage("Doc")
		if err := page.Set(3, "x"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Set(3) error = %v, want ErrNotFound", err)
		}
	})
}

func TestGetNeverVivifies(t *testing.T) {
	t.Parallel()

	page := NewPage("Doc")

	if _, err := page.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
	if page.Len() != 0 {
		t.Errorf("page.Len() = %d after failed read, want 0", page.Len())
	}

	if _, err := page.Get(0); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(0) error = %v, want ErrNotFound", err)
	}
	if _, err := page.Get(3.5); !errors.Is(err, ErrKeyType) {
		t.Errorf("Get(3.5) error = %v, want ErrKeyType", err)
	}
}

func TestLookupNormalizesTitles(t *testing.T) {
	t.Parallel()

	page := NewPage("Doc")
	if err := page.Set("My First Section", "content"); err != nil {
		t.Fatal(err)
	}

	for _, key := range []string{"My First Section", "my first section", "my_first_section", "MY_FIRST_SECTION"} {
		if _, err := page.Lookup(key); err != nil {
			t.Errorf("Lookup(%q) error = %v, want match", key, err)
		}
	}
}

func TestLookupAmbiguousTitle(t *testing.T) {
	t.Parallel()

	page := NewPage("Doc")
	if err := page.Append(NewSection("Dup"), NewSection("dup")); err != nil {
		t.Fatal(err)
	}

	if _, err := page.Lookup("Dup"); !errors.Is(err, ErrAmbiguousTitle) {
		t.Errorf("Lookup() error = %v, want ErrAmbiguousTitle", err)
	}
	if err := page.Set("dup", "x"); !errors.Is(err, ErrAmbiguousTitle) {
		t.Errorf("Set() error = %v, want ErrAmbiguousTitle", err)
	}
	if err := page.Delete("DUP"); !errors.Is(err, ErrAmbiguousTitle) {
		t.Errorf("Delete() error = %v, want ErrAmbiguousTitle", err)
	}
}

func TestAt(t *testing.T) {
	t.Parallel()

	page := NewPage("Doc")
	if err := page.Append(NewSection("A"), NewSection("B"), NewSection("C")); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		index   int
		want    string
		wantErr bool
	}{
		{name: "first", index: 0, want: "A"},
		{name: "last via negative", index: -1, want: "C"},
		{name: "middle via negative", index: -2, want: "B"},
		{name: "past end", index: 3, wantErr: true},
		{name: "before start", index: -4, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			child, err := page.At(tt.index)
			if tt.wantErr {
				if !errors.Is(err, ErrNotFound) {
					t.Errorf("At(%d) error = %v, want ErrNotFound", tt.index, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got := child.(*Node).Title(); got != tt.want {
				t.Errorf("At(%d) = %q, want %q", tt.index, got, tt.want)
			}
		})
	}
}

func TestEnsure(t *testing.T) {
	t.Parallel()

	t.Run("creates then finds", func(t *testing.T) {
		t.Parallel()

		page := NewPage("Doc")
		first, err := page.Ensure("Results")
		if err != nil {
			t.Fatal(err)
		}
		if first.Kind() != KindSection || first.Title() != "Results" {
			t.Errorf("Ensure() = %v %q, want Section Results", first.Kind(), first.Title())
		}

		second, err := page.Ensure("results")
		if err != nil {
			t.Fatal(err)
		}
		if first != second {
			t.Error("Ensure() created a second child for a matching title")
		}
		if page.Len() != 1 {
			t.Errorf("page.Len() = %d, want 1", page.Len())
		}
	})

	t.Run("index at len appends", func(t *testing.T) {
		t.Parallel()

		page := NewPage("Doc")
		child, err := page.Ensure(0)
		if err != nil {
			t.Fatal(err)
		}
		if child.Kind() != KindSection || child.Title() != "" {
			t.Errorf("Ensure(0) = %v %q, want untitled Section", child.Kind(), child.Title())
		}
	})

	t.Run("index past len fails", func(t *testing.T) {
		t.Parallel()

		page := NewPage("Doc")
		if _, err := page.Ensure(2); !errors.Is(err, ErrNotFound) {
			t.Errorf("Ensure(2) error = %v, want ErrNotFound", err)
		}
	})

	t.Run("content holder refuses", func(t *testing.T) {
		t.Parallel()

		col := NewColumn("", 0)
		if _, err := col.Ensure("x"); !errors.Is(err, ErrSchema) {
			t.Errorf("Ensure() on Column error = %v, want ErrSchema", err)
		}
	})

	t.Run("chained vivification", func(t *testing.T) {
		t.Parallel()

		page := NewPage("Doc")
		section, err := page.Ensure("S")
		if err != nil {
			t.Fatal(err)
		}
		row, err := section.Ensure("R")
		if err != nil {
			t.Fatal(err)
		}
		if row.Kind() != KindRow {
			t.Errorf("nested Ensure() = %v, want Row", row.Kind())
		}
	})
}

func TestDelete(t *testing.T) {
	t.Parallel()

	build := func(t *testing.T) *Node {
		t.Helper()
		page := NewPage("Doc")
		section, err := page.Ensure("S")
		if err != nil {
			t.Fatal(err)
		}
		if err := section.Set("R", []any{"left", "right"}); err != nil {
			t.Fatal(err)
		}
		return page
	}

	t.Run("negative index removes last column", func(t *testing.T) {
		t.Parallel()

		page := build(t)
		row := mustNodeAt(t, mustNodeAt(t, page, 0), 0)
		if err := row.Delete(-1); err != nil {
			t.Fatal(err)
		}
		if row.Len() != 1 {
			t.Fatalf("row.Len() = %d after delete, want 1", row.Len())
		}
	})

	t.Run("by title", func(t *testing.T) {
		t.Parallel()

		page := build(t)
		if err := page.Delete("s"); err != nil {
			t.Fatal(err)
		}
		if page.Len() != 0 {
			t.Errorf("page.Len() = %d, want 0", page.Len())
		}
	})

	t.Run("closes the gap", func(t *testing.T) {
		t.Parallel()

		page := NewPage("Doc")
		if err := page.Append(NewSection("A"), NewSection("B"), NewSection("C")); err != nil {
			t.Fatal(err)
		}
		if err := page.Delete(1); err != nil {
			t.Fatal(err)
		}
		if page.Len() != 2 {
			t.Fatalf("page.Len() = %d, want 2", page.Len())
		}
		if got := mustNodeAt(t, page, 1).Title(); got != "C" {
			t.Errorf("child 1 after delete = %q, want C shifted down", got)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()

		page := NewPage("Doc")
		if err := page.Delete("nope"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Delete() error = %v, want ErrNotFound", err)
		}
		if err := page.Delete(0); !errors.Is(err, ErrNotFound) {
			t.Errorf("Delete(0) error = %v, want ErrNotFound", err)
		}
	})
}

func TestFailedSetLeavesTreeUnchanged(t *testing.T) {
	t.Parallel()

	page := NewPage("Doc")
	if err := page.Set("Intro", "Hello"); err != nil {
		t.Fatal(err)
	}
	before := page.Tree()

	err := page.Set("Bad", struct{ X int }{})
	if !errors.Is(err, content.ErrUnsupportedContent) {
		t.Fatalf("Set() error = %v, want ErrUnsupportedContent", err)
	}

	if page.Len() != 1 {
		t.Errorf("page.Len() = %d after failed assignment, want 1", page.Len())
	}
	if page.Tree() != before {
		t.Errorf("tree changed after failed assignment:\n%s\nwant\n%s", page.Tree(), before)
	}
}

func TestAppendMixedValues(t *testing.T) {
	t.Parallel()

	section := NewSection("S")
	if err := section.Append("first", NewRow("r2"), "last"); err != nil {
		t.Fatal(err)
	}

	if section.Len() != 3 {
		t.Fatalf("section.Len() = %d, want 3 rows", section.Len())
	}
	if got := mustNodeAt(t, section, 1).Title(); got != "r2" {
		t.Errorf("middle row title = %q, want r2", got)
	}
	for i := 0; i < section.Len(); i++ {
		if got := mustNodeAt(t, section, i).Kind(); got != KindRow {
			t.Errorf("child %d = %v, want Row", i, got)
		}
	}
}

func TestAppendAccumulatesLooseValues(t *testing.T) {
	t.Parallel()

	// Loose values between wrapped children gather into a single child
	// of the next level down.
	section := NewSection("S")
	if err := section.Append("a", "b"); err != nil {
		t.Fatal(err)
	}

	if section.Len() != 1 {
		t.Fatalf("section.Len() = %d, want 1 row holding both values", section.Len())
	}
	row := mustNodeAt(t, section, 0)
	if row.Len() != 2 {
		t.Errorf("row.Len() = %d, want 2 columns", row.Len())
	}
}

func TestTitledValues(t *testing.T) {
	t.Parallel()

	t.Run("titled pair", func(t *testing.T) {
		t.Parallel()

		row := NewRow("R")
		if err := row.Append(Titled{Title: "A", Value: "left"}, Titled{Title: "B", Value: "right"}); err != nil {
			t.Fatal(err)
		}
		if row.Len() != 2 {
			t.Fatalf("row.Len() = %d, want 2", row.Len())
		}
		if got := mustNodeAt(t, row, 0).Title(); got != "A" {
			t.Errorf("column 0 title = %q, want A", got)
		}
		if got := mustNodeAt(t, row, 1).Title(); got != "B" {
			t.Errorf("column 1 title = %q, want B", got)
		}
	})

	t.Run("single entry map", func(t *testing.T) {
		t.Parallel()

		row := NewRow("R")
		if err := row.Append(map[string]any{"Only": "value"}); err != nil {
			t.Fatal(err)
		}
		if got := mustNodeAt(t, row, 0).Title(); got != "Only" {
			t.Errorf("column title = %q, want Only", got)
		}
	})

	t.Run("multi entry map", func(t *testing.T) {
		t.Parallel()

		row := NewRow("R")
		err := row.Append(map[string]any{"A": 1, "B": 2})
		if !errors.Is(err, ErrSchema) {
			t.Errorf("Append() error = %v, want ErrSchema", err)
		}
	})

	t.Run("titled under column", func(t *testing.T) {
		t.Parallel()

		col := NewColumn("", 0)
		err := col.Append(Titled{Title: "A", Value: "x"})
		if !errors.Is(err, ErrSchema) {
			t.Errorf("Append() error = %v, want ErrSchema", err)
		}
	})
}

func TestSetChildren(t *testing.T) {
	t.Parallel()

	section := NewSection("S")
	if err := section.Append("old"); err != nil {
		t.Fatal(err)
	}
	if err := section.SetChildren("new one", "new two"); err != nil {
		t.Fatal(err)
	}

	if section.Len() != 1 {
		t.Fatalf("section.Len() = %d, want 1 replacement row", section.Len())
	}
	if got := mustNodeAt(t, section, 0).Len(); got != 2 {
		t.Errorf("row.Len() = %d, want 2", got)
	}

	// A failed replacement keeps the existing children.
	if err := section.SetChildren(struct{}{}); err == nil {
		t.Fatal("SetChildren() with unsupported value should fail")
	}
	if section.Len() != 1 {
		t.Errorf("section.Len() = %d after failed replacement, want 1", section.Len())
	}
}

func TestSetGrid(t *testing.T) {
	t.Parallel()

	t.Run("pads last row with spacers", func(t *testing.T) {
		t.Parallel()

		section := NewSection("S")
		if err := section.SetGrid(2, "a", "b", "c"); err != nil {
			t.Fatal(err)
		}

		if section.Len() != 2 {
			t.Fatalf("section.Len() = %d, want 2 rows", section.Len())
		}
		last := mustNodeAt(t, section, 1)
		if last.Len() != 2 {
			t.Fatalf("last row Len() = %d, want 2 cells", last.Len())
		}
		if got := mustNodeAt(t, last, 1).Kind(); got != KindSpacer {
			t.Errorf("padding cell = %v, want Spacer", got)
		}
	})

	t.Run("card section yields card rows", func(t *testing.T) {
		t.Parallel()

		section := NewCardSection("S")
		if err := section.SetGrid(2, "a", "b"); err != nil {
			t.Fatal(err)
		}
		row := mustNodeAt(t, section, 0)
		if row.Kind() != KindCardRow {
			t.Errorf("row kind = %v, want CardRow", row.Kind())
		}
		if got := mustNodeAt(t, row, 0).Kind(); got != KindCard {
			t.Errorf("cell kind = %v, want Card", got)
		}
	})

	t.Run("rejects non sections", func(t *testing.T) {
		t.Parallel()

		row := NewRow("R")
		if err := row.SetGrid(2, "a"); !errors.Is(err, ErrSchema) {
			t.Errorf("SetGrid() on Row error = %v, want ErrSchema", err)
		}
	})
}

// mustNodeAt returns the child at index i as a *Node, failing the test
// when it is absent or a content leaf.
func mustNodeAt(t *testing.T, n *Node, i int) *Node {
	t.Helper()

	child, err := n.At(i)
	if err != nil {
		t.Fatal(err)
	}
	node, ok := child.(*Node)
	if !ok {
		t.Fatalf("child %d = %T, want *Node", i, child)
	}
	return node
}
