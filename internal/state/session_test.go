package state

import (
	"context"
	"testing"
)

func TestEdit_CommitWritesTrimmedText(t *testing.T) {
	ctx := context.Background()
	p := &recordingPersister{}
	s := newTestStore(t, p)
	s.Add(ctx, "Walk dog")

	frame, started := s.BeginEdit("id-1")
	if !started {
		t.Fatalf("BeginEdit started = false, want true")
	}
	row, ok := frame.EditingRow()
	if !ok || row.EditText != "Walk dog" || row.Cursor != len("Walk dog") {
		t.Fatalf("editing row = %#v, want working text with cursor at end", row)
	}

	s.UpdateEditText("  Walk the dog  ", 99)
	frame = s.CommitEdit(ctx)
	if frame.Rows[0].Text != "Walk the dog" {
		t.Fatalf("text = %q, want %q", frame.Rows[0].Text, "Walk the dog")
	}
	if _, editing := frame.EditingRow(); editing {
		t.Fatalf("row still editing after commit")
	}
	if len(p.saves) != 2 {
		t.Fatalf("saves = %d, want 2", len(p.saves))
	}
}

func TestEdit_BlankCommitKeepsTextButPersists(t *testing.T) {
	ctx := context.Background()
	p := &recordingPersister{}
	s := newTestStore(t, p)
	s.Add(ctx, "keep me")

	s.BeginEdit("id-1")
	s.UpdateEditText("   ", 0)
	frame := s.CommitEdit(ctx)

	if frame.Rows[0].Text != "keep me" {
		t.Fatalf("text = %q, want %q", frame.Rows[0].Text, "keep me")
	}
	if len(p.saves) != 2 {
		t.Fatalf("saves = %d, want 2 (commit always persists)", len(p.saves))
	}
}

func TestEdit_CancelDoesNotPersist(t *testing.T) {
	ctx := context.Background()
	p := &recordingPersister{}
	s := newTestStore(t, p)
	s.Add(ctx, "original")

	s.BeginEdit("id-1")
	s.UpdateEditText("changed", 7)
	frame := s.CancelEdit()

	if frame.Rows[0].Text != "original" {
		t.Fatalf("text = %q, want original", frame.Rows[0].Text)
	}
	if _, editing := s.Editing(); editing {
		t.Fatalf("session still active after cancel")
	}
	if len(p.saves) != 1 {
		t.Fatalf("saves = %d, want 1", len(p.saves))
	}
}

func TestEdit_MutationCancelsSession(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, &recordingPersister{})
	s.Add(ctx, "a")
	s.Add(ctx, "b")

	s.BeginEdit("id-1")
	frame := s.Toggle(ctx, "id-2")
	if _, editing := frame.EditingRow(); editing {
		t.Fatalf("toggle should end the edit session")
	}

	s.ReleaseEditTrigger()
	s.BeginEdit("id-1")
	frame = s.SetFilter("active")
	if _, editing := s.Editing(); editing {
		t.Fatalf("filter change should end the edit session")
	}
	if frame.Filter != "active" {
		t.Fatalf("filter = %q, want active", frame.Filter)
	}
}

func TestEdit_TriggerLockedUntilReleased(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, &recordingPersister{})
	s.Add(ctx, "a")

	if _, started := s.BeginEdit("id-1"); !started {
		t.Fatalf("first BeginEdit should start")
	}
	if !s.EditTriggerLocked("id-1") {
		t.Fatalf("trigger not locked after BeginEdit")
	}
	s.CancelEdit()
	if _, started := s.BeginEdit("id-1"); started {
		t.Fatalf("BeginEdit while trigger locked should be ignored")
	}

	s.ReleaseEditTrigger()
	if _, started := s.BeginEdit("id-1"); !started {
		t.Fatalf("BeginEdit after release should start")
	}
}

func TestEdit_UnknownIDIsNoop(t *testing.T) {
	s := newTestStore(t, &recordingPersister{})
	if _, started := s.BeginEdit("ghost"); started {
		t.Fatalf("BeginEdit(ghost) started a session")
	}
	frame := s.CommitEdit(context.Background())
	if len(frame.Rows) != 0 {
		t.Fatalf("rows = %d, want 0", len(frame.Rows))
	}
}
