package tests

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
)

type PageTests struct {
	app    *App
	cookie *http.Cookie
}

func TestPages(t *testing.T) {
	app := setup(t)
	tests := PageTests{app: app}

	// =======================================================================================================
	// Tun tests

	tests.guarded303(t)
	tests.login303(t)
	tests.dashboardEmpty200(t)
	id := tests.createNoteFragment200(t)
	tests.createNoteBanner200(t)
	tests.notePage200(t, id)
	tests.updateNoteFragment200(t, id)
	tests.deleteNoteRedirect200(t, id)
	tests.notePage303(t, id)
	tests.deleteLastCard200(t)
	tests.signInAgain303(t)
	tests.logout303(t)
}

func TestSignupPages(t *testing.T) {
	app := setup(t)

	values := url.Values{"email": {"cy@example.com"}, "password": {"secret123"}, "confirm_password": {"nope"}}
	w := app.form(http.MethodPost, "/signup", values.Encode(), nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Test signupMismatch: Should receive a status code of 400 for the response : %v", w.Code)
	}
	if !strings.Contains(w.Body.String(), "passwords do not match") || !strings.Contains(w.Body.String(), `value="cy@example.com"`) {
		t.Fatalf("Test signupMismatch: Should show the error and keep the email: %s", w.Body)
	}

	values.Set("confirm_password", "secret123")
	w = app.form(http.MethodPost, "/signup", values.Encode(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Test signup200: Should receive a status code of 200 for the response : %v", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Check Your Email!") || !strings.Contains(w.Body.String(), "cy@example.com") {
		t.Fatalf("Test signup200: Should show the confirmation page: %s", w.Body)
	}
}

func TestProviderPages(t *testing.T) {
	app := setup(t)

	if w := app.request(http.MethodGet, "/auth/provider/myspace", "", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("Test providerUnknown: Should receive a status code of 400 for the response : %v", w.Code)
	}

	w := app.request(http.MethodGet, "/auth/provider/github", "", nil)
	if w.Code != http.StatusFound {
		t.Fatalf("Test provider302: Should receive a status code of 302 for the response : %v", w.Code)
	}
	authorize := w.Header().Get("Location")
	if !strings.HasPrefix(authorize, app.platform.URL+"/auth/v1/authorize?") {
		t.Fatalf("Test provider302: Should redirect to the platform: %s", authorize)
	}

	// the browser goes through the platform and comes back with a code
	noFollow := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }}
	resp, err := noFollow.Get(authorize)
	if err != nil {
		t.Fatalf("Test provider302: Should reach the platform: %s", err)
	}
	_ = resp.Body.Close()
	back := resp.Header.Get("Location")
	if !strings.HasPrefix(back, siteURL+"/auth/callback?") {
		t.Fatalf("Test provider302: Should come back to the callback: %s", back)
	}
	callback := strings.TrimPrefix(back, siteURL)

	w = app.request(http.MethodGet, callback, "", nil)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/dashboard" {
		t.Fatalf("Test callback303: Should be sent to the dashboard : %v %s", w.Code, w.Body)
	}
	cookie := sessionCookie(w)
	if cookie == nil {
		t.Fatalf("Test callback303: Should receive the session cookie")
	}
	w = app.request(http.MethodGet, "/dashboard", "", cookie)
	if !strings.Contains(w.Body.String(), app.platform.ProviderEmail) {
		t.Fatalf("Test callback303: Should be signed in as the provider identity: %s", w.Body)
	}

	// the state is single use
	if w := app.request(http.MethodGet, callback, "", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("Test callbackReplay: Should receive a status code of 400 for the response : %v", w.Code)
	}
}

func (pt *PageTests) guarded303(t *testing.T) {
	for _, path := range []string{"/dashboard", "/notes/some-id"} {
		w := pt.app.request(http.MethodGet, path, "", nil)
		if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/login" {
			t.Fatalf("Test guarded303: Should be sent to the login for %s : %v", path, w.Code)
		}
	}
	w := pt.app.form(http.MethodPost, "/notes", "title=x", nil, "HX-Request", "true")
	if w.Header().Get("HX-Redirect") != "/login" {
		t.Fatalf("Test guarded303: Should ask htmx to navigate to the login : %v", w.Header())
	}
	if calls := pt.app.platform.Calls(http.MethodPost, "/rest/v1/notes"); calls != 0 {
		t.Fatalf("Test guarded303: Should not have called the platform: %d", calls)
	}
}

func (pt *PageTests) login303(t *testing.T) {
	pt.app.platform.CreateUser("ana@example.com", "secret123")

	w := pt.app.form(http.MethodPost, "/login", "email=ana%40example.com&password=wrong", nil)
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "Invalid login credentials") {
		t.Fatalf("Test login400: Should show the platform error : %v %s", w.Code, w.Body)
	}

	w = pt.app.form(http.MethodPost, "/login", "email=ana%40example.com&password=secret123", nil)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/dashboard" {
		t.Fatalf("Test login303: Should be sent to the dashboard : %v", w.Code)
	}
	pt.cookie = sessionCookie(w)
	if pt.cookie == nil {
		t.Fatalf("Test login303: Should receive the session cookie")
	}

	w = pt.app.request(http.MethodGet, "/login", "", pt.cookie)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/dashboard" {
		t.Fatalf("Test login303: Should skip the login when signed in : %v", w.Code)
	}
}

func (pt *PageTests) dashboardEmpty200(t *testing.T) {
	w := pt.app.request(http.MethodGet, "/dashboard", "", pt.cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("Test dashboard200: Should receive a status code of 200 for the response : %v", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "No notes yet") || !strings.Contains(body, "ana@example.com") {
		t.Fatalf("Test dashboard200: Should show the empty dashboard of ana: %s", body)
	}
}

func (pt *PageTests) createNoteFragment200(t *testing.T) string {
	w := pt.app.form(http.MethodPost, "/notes", "title=+Groceries+&content=Milk%2C+eggs", pt.cookie, "HX-Request", "true")
	if w.Code != http.StatusOK {
		t.Fatalf("Test createNote200: Should receive a status code of 200 for the response : %v", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "<h3>Groceries</h3>") || !strings.Contains(body, `id="empty" hx-swap-oob="true"`) {
		t.Fatalf("Test createNote200: Should answer with the note card: %s", body)
	}

	rows := pt.app.platform.Rows()
	if len(rows) != 1 {
		t.Fatalf("Test createNote200: Should have stored one note: %v", rows)
	}
	if !strings.Contains(body, `id="note-`+rows[0].ID+`"`) {
		t.Fatalf("Test createNote200: Should have the card of the stored note: %s", body)
	}
	return rows[0].ID
}

func (pt *PageTests) createNoteBanner200(t *testing.T) {
	w := pt.app.form(http.MethodPost, "/notes", "title=+&content=x", pt.cookie, "HX-Request", "true")
	if w.Header().Get("HX-Retarget") != "#banner" {
		t.Fatalf("Test createNoteBanner: Should retarget the banner : %v", w.Header())
	}
	if !strings.Contains(w.Body.String(), "title is required") {
		t.Fatalf("Test createNoteBanner: Should show the error: %s", w.Body)
	}
}

func (pt *PageTests) notePage200(t *testing.T, id string) {
	w := pt.app.request(http.MethodGet, "/notes/"+id, "", pt.cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("Test notePage200: Should receive a status code of 200 for the response : %v", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Created:") || strings.Contains(body, "Updated:") {
		t.Fatalf("Test notePage200: Should show only the creation date: %s", body)
	}
	if !strings.Contains(body, "Milk, eggs") {
		t.Fatalf("Test notePage200: Should show the content: %s", body)
	}
}

func (pt *PageTests) updateNoteFragment200(t *testing.T, id string) {
	w := pt.app.form(http.MethodPut, "/notes/"+id, "title=Groceries&content=Milk%2C+eggs%2C+bread", pt.cookie, "HX-Request", "true")
	if w.Code != http.StatusOK {
		t.Fatalf("Test updateNote200: Should receive a status code of 200 for the response : %v", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Milk, eggs, bread") || !strings.Contains(body, "Updated:") {
		t.Fatalf("Test updateNote200: Should answer with the edited note: %s", body)
	}
}

func (pt *PageTests) deleteNoteRedirect200(t *testing.T, id string) {
	w := pt.app.request(http.MethodDelete, "/notes/"+id+"?back=1", "", pt.cookie, "HX-Request", "true")
	if w.Code != http.StatusOK || w.Header().Get("HX-Redirect") != "/dashboard" {
		t.Fatalf("Test deleteNote200: Should be sent back to the dashboard : %v %v", w.Code, w.Header())
	}
	if rows := pt.app.platform.Rows(); len(rows) != 0 {
		t.Fatalf("Test deleteNote200: Should have deleted the note: %v", rows)
	}
}

func (pt *PageTests) notePage303(t *testing.T, id string) {
	w := pt.app.request(http.MethodGet, "/notes/"+id, "", pt.cookie)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/dashboard" {
		t.Fatalf("Test notePage303: Should be sent back to the dashboard : %v", w.Code)
	}
}

func (pt *PageTests) logout303(t *testing.T) {
	w := pt.app.request(http.MethodPost, "/logout", "", pt.cookie)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/login" {
		t.Fatalf("Test logout303: Should be sent to the login : %v", w.Code)
	}
	if pt.app.cache.Exists("session." + pt.cookie.Value) {
		t.Fatalf("Test logout303: Should have dropped the persisted session")
	}
	w = pt.app.request(http.MethodGet, "/dashboard", "", pt.cookie)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("Test logout303: Should not reach the dashboard anymore : %v", w.Code)
	}
}

// deleteLastCard200 removes cards from the dashboard, the empty state shows once none is left
func (pt *PageTests) deleteLastCard200(t *testing.T) {
	for _, title := range []string{"one", "two"} {
		if w := pt.app.form(http.MethodPost, "/notes", "title="+title, pt.cookie, "HX-Request", "true"); w.Code != http.StatusOK {
			t.Fatalf("Test deleteLastCard200: Should create the note : %v", w.Code)
		}
	}
	rows := pt.app.platform.Rows()
	if len(rows) != 2 {
		t.Fatalf("Test deleteLastCard200: Should have stored two notes: %v", rows)
	}

	w := pt.app.request(http.MethodDelete, "/notes/"+rows[0].ID, "", pt.cookie, "HX-Request", "true")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `id="empty" hx-swap-oob="true" hidden`) {
		t.Fatalf("Test deleteLastCard200: Should keep the empty state hidden : %v %s", w.Code, w.Body)
	}

	w = pt.app.request(http.MethodDelete, "/notes/"+rows[1].ID, "", pt.cookie, "HX-Request", "true")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `id="empty" hx-swap-oob="true">No notes yet`) {
		t.Fatalf("Test deleteLastCard200: Should show the empty state after the last card : %v %s", w.Code, w.Body)
	}
}

// signInAgain303 signs in from a browser that still holds a session
func (pt *PageTests) signInAgain303(t *testing.T) {
	prev := pt.cookie

	w := pt.app.form(http.MethodPost, "/login", "email=ana%40example.com&password=secret123", prev)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("Test signInAgain303: Should sign in again : %v %s", w.Code, w.Body)
	}
	pt.cookie = sessionCookie(w)
	if pt.cookie == nil || pt.cookie.Value == prev.Value {
		t.Fatalf("Test signInAgain303: Should receive a new session cookie: %v", pt.cookie)
	}

	// the dashboard lists notes with the new tokens
	if w := pt.app.request(http.MethodGet, "/dashboard", "", pt.cookie); w.Code != http.StatusOK {
		t.Fatalf("Test signInAgain303: Should open the dashboard with the new session : %v %s", w.Code, w.Body)
	}
	if pt.app.cache.Exists("session." + prev.Value) {
		t.Fatalf("Test signInAgain303: Should have dropped the previous session")
	}
}
