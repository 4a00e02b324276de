package tests

import (
	"net/http"
	"testing"

	"github.com/ribgsilva/private-notes/business/v1/note"
	"github.com/ribgsilva/private-notes/platform/web/handler"
)

type NoteTests struct {
	app    *App
	cookie *http.Cookie
}

func TestNote(t *testing.T) {
	app := setup(t)

	tests := NoteTests{
		app:    app,
		cookie: app.signIn(t, "ana@example.com"),
	}

	// =======================================================================================================
	// Tun tests

	created := tests.createNote201(t)
	tests.getNote200(t, created)
	updated := tests.updateNote200(t, created)
	second := tests.createNote201(t)
	tests.listNotes200(t, second.ID, updated.ID)
	tests.createEmptyTitle400(t)
	tests.deleteNote204(t, created.ID)
	tests.getNote404(t, created.ID)
	tests.listNotes200(t, second.ID)
	tests.deleteNote204(t, created.ID)
	tests.otherUserNote404(t, second.ID)
	tests.malformedID404(t)
}

func TestNoteWithoutSession(t *testing.T) {
	app := setup(t)

	w := app.request(http.MethodPost, "/v1/notes", `{"title":"Groceries","content":"Milk, eggs"}`, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Test createNote401: Should receive a status code of 401 for the response : %v", w.Code)
	}
	var e handler.Error
	decode(t, w, &e)
	if e.Message != note.ErrNotAuthenticated.Error() {
		t.Fatalf("Test createNote401: Should have received %q as message: %v", note.ErrNotAuthenticated, e)
	}
	if calls := app.platform.Calls(http.MethodPost, "/rest/v1/notes"); calls != 0 {
		t.Fatalf("Test createNote401: Should not have called the platform: %d", calls)
	}

	for _, path := range []string{"/v1/notes", "/v1/notes/some-id"} {
		if w := app.request(http.MethodGet, path, "", nil); w.Code != http.StatusUnauthorized {
			t.Fatalf("Test getNote401: Should receive a status code of 401 for %s : %v", path, w.Code)
		}
	}

	stale := &http.Cookie{Name: "notes_session", Value: "unknown"}
	if w := app.request(http.MethodGet, "/v1/notes", "", stale); w.Code != http.StatusUnauthorized {
		t.Fatalf("Test listNotes401: Should receive a status code of 401 for an unknown session : %v", w.Code)
	}
}

func (nt *NoteTests) createNote201(t *testing.T) note.Note {
	w := nt.app.request(http.MethodPost, "/v1/notes", `{"title":"  Groceries ","content":"\tMilk, eggs\n"}`, nt.cookie)
	if w.Code != http.StatusCreated {
		t.Fatalf("Test createNote201: Should receive a status code of 201 for the response : %v %s", w.Code, w.Body)
	}

	var resp note.Note
	decode(t, w, &resp)

	if resp.ID == "" {
		t.Fatalf("Test createNote201: Should have received an id in the response: %v", resp)
	}
	if resp.Title != "Groceries" {
		t.Fatalf("Test createNote201: Should have received \"Groceries\" as title in the response: %v", resp)
	}
	if resp.Content != "Milk, eggs" {
		t.Fatalf("Test createNote201: Should have received \"Milk, eggs\" as content in the response: %v", resp)
	}
	if !resp.CreatedAt.Equal(resp.UpdatedAt) {
		t.Fatalf("Test createNote201: Should have created_at equal to updated_at: %v", resp)
	}
	return resp
}

func (nt *NoteTests) getNote200(t *testing.T, want note.Note) {
	w := nt.app.request(http.MethodGet, "/v1/notes/"+want.ID, "", nt.cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("Test getNote200: Should receive a status code of 200 for the response : %v", w.Code)
	}

	var resp note.Note
	decode(t, w, &resp)

	if resp.ID != want.ID || resp.Title != want.Title || resp.Content != want.Content {
		t.Fatalf("Test getNote200: Should have received %v in the response: %v", want, resp)
	}
}

func (nt *NoteTests) updateNote200(t *testing.T, before note.Note) note.Note {
	w := nt.app.request(http.MethodPut, "/v1/notes/"+before.ID, `{"title":"Groceries","content":"Milk, eggs, bread"}`, nt.cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("Test updateNote200: Should receive a status code of 200 for the response : %v %s", w.Code, w.Body)
	}

	var resp note.Note
	decode(t, w, &resp)

	if resp.Content != "Milk, eggs, bread" {
		t.Fatalf("Test updateNote200: Should have received the new content in the response: %v", resp)
	}
	if resp.ID != before.ID || resp.UserID != before.UserID || !resp.CreatedAt.Equal(before.CreatedAt) {
		t.Fatalf("Test updateNote200: Should only change title, content and updated_at: %v -> %v", before, resp)
	}
	if !resp.UpdatedAt.After(resp.CreatedAt) {
		t.Fatalf("Test updateNote200: Should have updated_at after created_at: %v", resp)
	}
	return resp
}

func (nt *NoteTests) listNotes200(t *testing.T, ids ...string) {
	w := nt.app.request(http.MethodGet, "/v1/notes", "", nt.cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("Test listNotes200: Should receive a status code of 200 for the response : %v", w.Code)
	}

	var resp []note.Note
	decode(t, w, &resp)

	if len(resp) != len(ids) {
		t.Fatalf("Test listNotes200: Should have received %d notes in the response: %v", len(ids), resp)
	}
	for i, id := range ids {
		if resp[i].ID != id {
			t.Fatalf("Test listNotes200: Should have received %s at position %d, newest first: %v", id, i, resp)
		}
	}
}

func (nt *NoteTests) createEmptyTitle400(t *testing.T) {
	before := nt.app.platform.Calls(http.MethodPost, "/rest/v1/notes")

	w := nt.app.request(http.MethodPost, "/v1/notes", `{"title":"   ","content":"orphan"}`, nt.cookie)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Test createEmptyTitle400: Should receive a status code of 400 for the response : %v", w.Code)
	}
	if after := nt.app.platform.Calls(http.MethodPost, "/rest/v1/notes"); after != before {
		t.Fatalf("Test createEmptyTitle400: Should not have called the platform")
	}
}

func (nt *NoteTests) deleteNote204(t *testing.T, id string) {
	w := nt.app.request(http.MethodDelete, "/v1/notes/"+id, "", nt.cookie)
	if w.Code != http.StatusNoContent {
		t.Fatalf("Test deleteNote204: Should receive a status code of 204 for the response : %v", w.Code)
	}
}

func (nt *NoteTests) getNote404(t *testing.T, id string) {
	w := nt.app.request(http.MethodGet, "/v1/notes/"+id, "", nt.cookie)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Test getNote404: Should receive a status code of 404 for the response : %v", w.Code)
	}
	var e handler.Error
	decode(t, w, &e)
	if e.Message != note.ErrNotFound.Error() {
		t.Fatalf("Test getNote404: Should have received %q as message: %v", note.ErrNotFound, e)
	}
}

func (nt *NoteTests) otherUserNote404(t *testing.T, id string) {
	other := nt.app.signIn(t, "bo@example.com")

	if w := nt.app.request(http.MethodGet, "/v1/notes/"+id, "", other); w.Code != http.StatusNotFound {
		t.Fatalf("Test otherUserNote404: Should receive a status code of 404 for the response : %v", w.Code)
	}
	w := nt.app.request(http.MethodPut, "/v1/notes/"+id, `{"title":"mine now"}`, other)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Test otherUserNote404: Should receive a status code of 404 on update : %v", w.Code)
	}

	w = nt.app.request(http.MethodGet, "/v1/notes", "", other)
	var resp []note.Note
	decode(t, w, &resp)
	if len(resp) != 0 {
		t.Fatalf("Test otherUserNote404: Should not list notes of another user: %v", resp)
	}

	for _, r := range nt.app.platform.Rows() {
		if r.ID == id && r.Title != "Groceries" {
			t.Fatalf("Test otherUserNote404: Should not have changed the note: %v", r)
		}
	}
}

func (nt *NoteTests) malformedID404(t *testing.T) {
	before := nt.app.platform.Calls(http.MethodGet, "/rest/v1/notes")

	if w := nt.app.request(http.MethodGet, "/v1/notes/not-a-uuid", "", nt.cookie); w.Code != http.StatusNotFound {
		t.Fatalf("Test malformedID404: Should receive a status code of 404 for the response : %v %s", w.Code, w.Body)
	}
	if w := nt.app.request(http.MethodPut, "/v1/notes/not-a-uuid", `{"title":"x"}`, nt.cookie); w.Code != http.StatusNotFound {
		t.Fatalf("Test malformedID404: Should receive a status code of 404 on update : %v %s", w.Code, w.Body)
	}
	if w := nt.app.request(http.MethodDelete, "/v1/notes/not-a-uuid", "", nt.cookie); w.Code != http.StatusNoContent {
		t.Fatalf("Test malformedID404: Should receive a status code of 204 on delete : %v %s", w.Code, w.Body)
	}
	if after := nt.app.platform.Calls(http.MethodGet, "/rest/v1/notes"); after != before {
		t.Fatalf("Test malformedID404: Should not have called the platform")
	}
}
