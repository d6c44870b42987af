package model

import "testing"

func TestStoreHub(t *testing.T) {
	hub := NewStoreHub()

	if _, ok := hub.Active(); ok {
		t.Error("Empty hub should have no active recording")
	}

	if err := hub.Add(&Recording{ID: "b"}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if err := hub.Add(&Recording{ID: "a"}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if err := hub.Add(&Recording{ID: "a"}); err == nil {
		t.Error("Expected error for duplicate recording")
	}
	if err := hub.Add(&Recording{}); err == nil {
		t.Error("Expected error for recording without id")
	}

	active, ok := hub.Active()
	if !ok || active.ID != "b" {
		t.Errorf("First added recording should be active, got %+v", active)
	}

	if err := hub.SetActive("a"); err != nil {
		t.Fatalf("SetActive() failed: %v", err)
	}
	if err := hub.SetActive("missing"); err == nil {
		t.Error("Expected error for unknown recording")
	}

	recs := hub.Recordings()
	if len(recs) != 2 || recs[0].ID != "a" || recs[1].ID != "b" {
		t.Errorf("Recordings() should be ordered by id, got %d items", len(recs))
	}
}

func TestDisplayMode_IsExamples(t *testing.T) {
	if !RedapServerMode(ExamplesOrigin).IsExamples() {
		t.Error("Examples origin should be recognized")
	}
	if RedapServerMode("rec+http://localhost:9876").IsExamples() {
		t.Error("Other servers are not the examples origin")
	}
	if LocalRecordingsMode().IsExamples() {
		t.Error("Local recordings are not the examples origin")
	}
}
