package main

import (
	"testing"
)

// The stored bookmark counts spreads, not raw pages: a ten page document
// has five spreads, and that is the total the recents progress label
// reports against.
func TestToggleBookmarkStoresSpreadTotal(t *testing.T) {
	g := &Game{state: &ViewerState{}, store: openTestStore(t)}
	g.state.Open(makePages(10), FileIdentity{ID: "file_11", Name: "comic.zip", Type: DocTypeZIP})
	g.state.Navigate(4)

	g.ToggleBookmark()

	b, err := g.store.GetBookmark("file_11")
	if err != nil {
		t.Fatal(err)
	}
	if b == nil {
		t.Fatal("expected a bookmark after the toggle")
	}
	if b.TotalPages != 5 {
		t.Errorf("TotalPages = %d, want 5 spreads for 10 pages", b.TotalPages)
	}
	if b.CurrentPage != 4 {
		t.Errorf("CurrentPage = %d, want the raw page index 4", b.CurrentPage)
	}
	if !g.hasBookmark {
		t.Error("bookmark cache should reflect the new bookmark")
	}

	// Toggling again on the same spread removes it
	g.ToggleBookmark()
	if b, _ := g.store.GetBookmark("file_11"); b != nil {
		t.Error("second toggle should remove the bookmark")
	}
}
