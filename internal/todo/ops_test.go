package todo

import (
	"strings"
	"testing"
	"time"

	"pgregory.net/rapid"
)

var epoch = time.UnixMilli(1_700_000_000_000)

func TestAdd_InsertsAtHeadTrimmed(t *testing.T) {
	c, changed := Add(nil, "  Buy milk  ", "a", epoch)
	if !changed {
		t.Fatalf("Add changed = false, want true")
	}
	c, _ = Add(c, "Walk dog", "b", epoch.Add(time.Second))

	if len(c) != 2 {
		t.Fatalf("len = %d, want 2", len(c))
	}
	if c[0].Text != "Walk dog" || c[1].Text != "Buy milk" {
		t.Fatalf("order = [%q %q], want [Walk dog, Buy milk]", c[0].Text, c[1].Text)
	}
	if c[1].Completed {
		t.Fatalf("new item completed = true, want false")
	}
	if c[1].CreatedAt != epoch.UnixMilli() {
		t.Fatalf("CreatedAt = %d, want %d", c[1].CreatedAt, epoch.UnixMilli())
	}
}

func TestAdd_BlankIsNoop(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n"} {
		c, changed := Add(Collection{{ID: "x", Text: "keep"}}, raw, "y", epoch)
		if changed || len(c) != 1 {
			t.Fatalf("Add(%q) = len %d changed %v, want len 1 unchanged", raw, len(c), changed)
		}
	}
}

func TestAdd_CreatedAtNeverDecreases(t *testing.T) {
	c, _ := Add(nil, "first", "a", epoch)
	c, _ = Add(c, "second", "b", epoch.Add(-time.Minute))
	if c[0].CreatedAt < c[1].CreatedAt {
		t.Fatalf("CreatedAt went backwards: %d < %d", c[0].CreatedAt, c[1].CreatedAt)
	}
}

func TestEdit(t *testing.T) {
	base := Collection{{ID: "a", Text: "old"}}

	c, changed := Edit(base, "a", "")
	if changed || c[0].Text != "old" {
		t.Fatalf("Edit empty = %q changed %v, want old unchanged", c[0].Text, changed)
	}

	c, changed = Edit(base, "a", " new ")
	if !changed || c[0].Text != "new" {
		t.Fatalf("Edit = %q changed %v, want new", c[0].Text, changed)
	}
	if base[0].Text != "old" {
		t.Fatalf("Edit mutated input collection: %q", base[0].Text)
	}

	if _, changed := Edit(base, "missing", "x"); changed {
		t.Fatalf("Edit on missing id reported change")
	}
}

func TestDelete_MissingIDLeavesCollection(t *testing.T) {
	base := Collection{{ID: "a", Text: "one"}, {ID: "b", Text: "two"}}
	c, changed := Delete(base, "zzz")
	if changed || len(c) != 2 {
		t.Fatalf("Delete missing = len %d changed %v, want len 2 unchanged", len(c), changed)
	}
	c, changed = Delete(base, "a")
	if !changed || len(c) != 1 || c[0].ID != "b" {
		t.Fatalf("Delete a = %#v, want only b", c)
	}
}

func TestVisibleAndCounts(t *testing.T) {
	c := Collection{
		{ID: "1", Text: "Walk dog"},
		{ID: "2", Text: "Buy milk", Completed: true},
		{ID: "3", Text: "Call mom"},
	}
	cases := []struct {
		filter Filter
		want   []string
	}{
		{FilterAll, []string{"1", "2", "3"}},
		{FilterActive, []string{"1", "3"}},
		{FilterCompleted, []string{"2"}},
	}
	for _, tc := range cases {
		t.Run(string(tc.filter), func(t *testing.T) {
			got := ids(Visible(c, tc.filter))
			if strings.Join(got, ",") != strings.Join(tc.want, ",") {
				t.Fatalf("Visible(%s) = %v, want %v", tc.filter, got, tc.want)
			}
		})
	}
	if Remaining(c) != 2 {
		t.Fatalf("Remaining = %d, want 2", Remaining(c))
	}
	if !AnyCompleted(c) {
		t.Fatalf("AnyCompleted = false, want true")
	}
}

func TestRemainingLabel(t *testing.T) {
	cases := map[int]string{0: "0 items left", 1: "1 item left", 2: "2 items left", 11: "11 items left"}
	for n, want := range cases {
		if got := RemainingLabel(n); got != want {
			t.Fatalf("RemainingLabel(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestParseFilter(t *testing.T) {
	if f, ok := ParseFilter(" Active "); !ok || f != FilterActive {
		t.Fatalf("ParseFilter(Active) = %q %v, want active true", f, ok)
	}
	if _, ok := ParseFilter("done"); ok {
		t.Fatalf("ParseFilter(done) ok = true, want false")
	}
	if FilterCompleted.Next() != FilterAll {
		t.Fatalf("Next wraps to %q, want all", FilterCompleted.Next())
	}
}

func TestUUIDGenerator_Unique(t *testing.T) {
	var gen UUIDGenerator
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id, err := gen.NewID()
		if err != nil {
			t.Fatalf("NewID: %v", err)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q after %d draws", id, i)
		}
		seen[id] = struct{}{}
	}
}

func TestProperty_AddSequence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		texts := rapid.SliceOf(rapid.StringMatching(`[ a-z]{0,8}`)).Draw(t, "texts")

		var c Collection
		var want []string
		for i, raw := range texts {
			c, _ = Add(c, raw, string(rune('A'+i%26))+strings.Repeat("x", i), epoch)
			if trimmed := strings.TrimSpace(raw); trimmed != "" {
				want = append([]string{trimmed}, want...)
			}
		}
		if len(c) != len(want) {
			t.Fatalf("len = %d, want %d", len(c), len(want))
		}
		for i := range want {
			if c[i].Text != want[i] {
				t.Fatalf("c[%d] = %q, want %q", i, c[i].Text, want[i])
			}
		}
	})
}

func TestProperty_ToggleTwiceRestores(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := genCollection(t)
		if len(c) == 0 {
			return
		}
		idx := rapid.IntRange(0, len(c)-1).Draw(t, "idx")
		id := c[idx].ID

		once, _ := Toggle(c, id)
		twice, _ := Toggle(once, id)
		if once[idx].Completed == c[idx].Completed {
			t.Fatalf("single toggle did not flip")
		}
		if twice[idx].Completed != c[idx].Completed {
			t.Fatalf("double toggle = %v, want %v", twice[idx].Completed, c[idx].Completed)
		}
	})
}

func TestProperty_ClearCompletedKeepsActiveInOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := genCollection(t)
		out, _ := ClearCompleted(c)

		var want []string
		for _, item := range c {
			if !item.Completed {
				want = append(want, item.ID)
			}
		}
		if strings.Join(ids(out), ",") != strings.Join(want, ",") {
			t.Fatalf("ClearCompleted = %v, want %v", ids(out), want)
		}
	})
}

func TestProperty_DeleteMissingIsNoop(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := genCollection(t)
		out, changed := Delete(c, "not-an-id")
		if changed || len(out) != len(c) {
			t.Fatalf("Delete missing changed collection")
		}
	})
}

func genCollection(t *rapid.T) Collection {
	n := rapid.IntRange(0, 12).Draw(t, "n")
	c := make(Collection, n)
	for i := range c {
		c[i] = Item{
			ID:        "id-" + strings.Repeat("i", i+1),
			Text:      rapid.StringMatching(`[a-z]{1,6}`).Draw(t, "text"),
			Completed: rapid.Bool().Draw(t, "completed"),
		}
	}
	return c
}

func ids(c Collection) []string {
	out := make([]string, 0, len(c))
	for _, item := range c {
		out = append(out, item.ID)
	}
	return out
}
