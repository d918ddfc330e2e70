package notify

import (
	"testing"
	"time"
)

func TestPushAndEntries(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	first := q.Push("Trip created successfully", KindSuccess)
	second := q.Push("Could not load bookings", KindError)

	entries := q.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != first.ID || entries[1].ID != second.ID {
		t.Error("entries should be ordered oldest first")
	}
	if first.ID == second.ID {
		t.Error("ids must be unique")
	}
	if entries[1].Kind != KindError {
		t.Errorf("expected kind %q, got %q", KindError, entries[1].Kind)
	}
}

func TestDismissRemovesEntry(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	keep := q.Push("keep me", KindInfo)
	drop := q.Push("drop me", KindInfo)

	q.Dismiss(drop.ID)

	entries := q.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry after dismiss, got %d", len(entries))
	}
	if entries[0].ID != keep.ID {
		t.Errorf("wrong entry survived: %q", entries[0].Message)
	}

	// Unknown ids are ignored.
	q.Dismiss("note-0")
	if len(q.Entries()) != 1 {
		t.Error("dismissing an unknown id must not change the queue")
	}
}

func TestEntriesExpireAfterTTL(t *testing.T) {
	q := NewQueueWithTTL(30 * time.Millisecond)
	defer q.Close()

	q.Push("short lived", KindInfo)
	if len(q.Entries()) != 1 {
		t.Fatal("entry should be visible right after push")
	}

	deadline := time.Now().Add(time.Second)
	for len(q.Entries()) != 0 {
		if time.Now().After(deadline) {
			t.Fatal("entry did not expire within deadline")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestChangeCallbackFires(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	var snapshots [][]Notification
	q.SetChangeCallback(func(entries []Notification) {
		snapshots = append(snapshots, entries)
	})

	n := q.Push("hello", KindInfo)
	q.Dismiss(n.ID)

	if len(snapshots) != 2 {
		t.Fatalf("expected 2 callback invocations, got %d", len(snapshots))
	}
	if len(snapshots[0]) != 1 {
		t.Errorf("first snapshot should hold the pushed entry, got %d", len(snapshots[0]))
	}
	if len(snapshots[1]) != 0 {
		t.Errorf("second snapshot should be empty, got %d", len(snapshots[1]))
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	q.Push("original", KindInfo)
	entries := q.Entries()
	entries[0].Message = "mutated"

	if q.Entries()[0].Message != "original" {
		t.Error("mutating a snapshot must not affect the queue")
	}
}
