// Package supabasetest runs an in-memory stand-in for the hosted platform:
// enough of the auth and data apis for the notes table, with row level
// security scoping every row to the user owning the access token.
package supabasetest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ribgsilva/private-notes/platform/supabase"
)

// APIKey is the public key the server accepts
const APIKey = "test-anon-key"

// Row is a stored note
type Row struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type user struct {
	supabase.User
	password string
}

type token struct {
	userID  string
	expires time.Time
}

type code struct {
	userID    string
	challenge string
}

// Server is the fake platform
type Server struct {
	*httptest.Server

	// AutoConfirm signs up users already confirmed
	AutoConfirm bool
	// TokenTTL is the access token lifetime
	TokenTTL time.Duration
	// ProviderEmail is the identity returned by every oauth provider
	ProviderEmail string

	mu      sync.Mutex
	users   map[string]*user
	access  map[string]token
	refresh map[string]string
	codes   map[string]code
	rows    []Row
	base    time.Time
	ticks   int
	calls   map[string]int
}

// New starts a Server closed when the test ends
func New(t testing.TB) *Server {
	s := &Server{
		TokenTTL:      time.Hour,
		ProviderEmail: "provider@example.com",
		users:         map[string]*user{},
		access:        map[string]token{},
		refresh:       map[string]string{},
		codes:         map[string]code{},
		base:          time.Now().UTC().Truncate(time.Second),
		calls:         map[string]int{},
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// CreateUser registers a confirmed user
func (s *Server) CreateUser(email, password string) supabase.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createUser(email, password, true).User
}

// Rows returns every stored note regardless of owner
func (s *Server) Rows() []Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Row(nil), s.rows...)
}

// Calls returns how many requests hit method and path
func (s *Server) Calls(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method+" "+path]
}

// Revoke invalidates every token of the user, as if the session was ended elsewhere
func (s *Server) Revoke(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok {
		return
	}
	s.revoke(u.ID)
}

func (s *Server) now() time.Time {
	s.ticks++
	return s.base.Add(time.Duration(s.ticks) * time.Millisecond)
}

func (s *Server) createUser(email, password string, confirmed bool) *user {
	u := &user{
		User: supabase.User{
			ID:        uuid.NewString(),
			Email:     email,
			CreatedAt: s.now(),
		},
		password: password,
	}
	if confirmed {
		at := u.CreatedAt
		u.EmailConfirmedAt = &at
	}
	s.users[email] = u
	return u
}

func (s *Server) revoke(userID string) {
	for k, v := range s.access {
		if v.userID == userID {
			delete(s.access, k)
		}
	}
	for k, v := range s.refresh {
		if v == userID {
			delete(s.refresh, k)
		}
	}
}

func (s *Server) userByID(id string) *user {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (s *Server) issue(u *user) supabase.Session {
	at, rt := uuid.NewString(), uuid.NewString()
	expires := time.Now().Add(s.TokenTTL)
	s.access[at] = token{userID: u.ID, expires: expires}
	s.refresh[rt] = u.ID
	return supabase.Session{
		AccessToken:  at,
		TokenType:    "bearer",
		ExpiresIn:    int64(s.TokenTTL / time.Second),
		ExpiresAt:    expires.Unix(),
		RefreshToken: rt,
		User:         u.User,
	}
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls[r.Method+" "+r.URL.Path]++

	// the authorize endpoint is reached by the browser, without the api key
	if r.URL.Path == "/auth/v1/authorize" {
		s.authorize(w, r)
		return
	}
	if r.Header.Get("apikey") != APIKey {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid API key"})
		return
	}

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/auth/v1/signup":
		s.signUp(w, r)
	case r.Method == http.MethodPost && r.URL.Path == "/auth/v1/token":
		s.token(w, r)
	case r.Method == http.MethodGet && r.URL.Path == "/auth/v1/user":
		s.getUser(w, r)
	case r.Method == http.MethodPost && r.URL.Path == "/auth/v1/logout":
		s.logout(w, r)
	case r.URL.Path == "/rest/v1/notes":
		s.notes(w, r)
	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "not found"})
	}
}

func (s *Server) signUp(w http.ResponseWriter, r *http.Request) {
	var c struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeAuthError(w, http.StatusBadRequest, "bad_json", "Could not parse request body as JSON")
		return
	}
	if _, ok := s.users[c.Email]; ok {
		writeAuthError(w, http.StatusUnprocessableEntity, "user_already_exists", "User already registered")
		return
	}
	if len(c.Password) < 6 {
		writeAuthError(w, http.StatusUnprocessableEntity, "weak_password", "Password should be at least 6 characters.")
		return
	}
	u := s.createUser(c.Email, c.Password, s.AutoConfirm)
	if s.AutoConfirm {
		writeJSON(w, http.StatusOK, s.issue(u))
		return
	}
	writeJSON(w, http.StatusOK, u.User)
}

func (s *Server) token(w http.ResponseWriter, r *http.Request) {
	var body map[string]string
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeAuthError(w, http.StatusBadRequest, "bad_json", "Could not parse request body as JSON")
		return
	}

	switch r.URL.Query().Get("grant_type") {
	case "password":
		u, ok := s.users[body["email"]]
		if !ok || u.password != body["password"] {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error":             "invalid_grant",
				"error_description": "Invalid login credentials",
			})
			return
		}
		if u.EmailConfirmedAt == nil {
			writeAuthError(w, http.StatusBadRequest, "email_not_confirmed", "Email not confirmed")
			return
		}
		writeJSON(w, http.StatusOK, s.issue(u))
	case "refresh_token":
		id, ok := s.refresh[body["refresh_token"]]
		if !ok {
			writeAuthError(w, http.StatusBadRequest, "refresh_token_not_found", "Invalid Refresh Token: Refresh Token Not Found")
			return
		}
		delete(s.refresh, body["refresh_token"])
		writeJSON(w, http.StatusOK, s.issue(s.userByID(id)))
	case "pkce":
		c, ok := s.codes[body["auth_code"]]
		if !ok || c.challenge != supabase.Challenge(body["code_verifier"]) {
			writeAuthError(w, http.StatusBadRequest, "bad_code_verifier", "code challenge does not match previously saved code verifier")
			return
		}
		delete(s.codes, body["auth_code"])
		writeJSON(w, http.StatusOK, s.issue(s.userByID(c.userID)))
	default:
		writeAuthError(w, http.StatusBadRequest, "unsupported_grant_type", "unsupported_grant_type")
	}
}

func (s *Server) authorize(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	redirect, err := url.Parse(q.Get("redirect_to"))
	if q.Get("provider") == "" || err != nil || redirect.String() == "" {
		writeAuthError(w, http.StatusBadRequest, "validation_failed", "Unsupported provider: missing provider or redirect")
		return
	}
	u, ok := s.users[s.ProviderEmail]
	if !ok {
		u = s.createUser(s.ProviderEmail, "", true)
	}
	c := uuid.NewString()
	s.codes[c] = code{userID: u.ID, challenge: q.Get("code_challenge")}

	rq := redirect.Query()
	rq.Set("code", c)
	redirect.RawQuery = rq.Encode()
	http.Redirect(w, r, redirect.String(), http.StatusFound)
}

// bearer resolves the user of the request, anon is the api key used as a token
func (s *Server) bearer(r *http.Request) (u *user, anon bool, expired bool) {
	t := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if t == APIKey {
		return nil, true, false
	}
	tk, ok := s.access[t]
	if !ok {
		return nil, false, false
	}
	if time.Now().After(tk.expires) {
		return nil, false, true
	}
	return s.userByID(tk.userID), false, false
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	u, _, _ := s.bearer(r)
	if u == nil {
		writeAuthError(w, http.StatusUnauthorized, "bad_jwt", "invalid JWT: unable to parse or verify signature")
		return
	}
	writeJSON(w, http.StatusOK, u.User)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	u, _, _ := s.bearer(r)
	if u == nil {
		writeAuthError(w, http.StatusUnauthorized, "bad_jwt", "invalid JWT: unable to parse or verify signature")
		return
	}
	s.revoke(u.ID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) notes(w http.ResponseWriter, r *http.Request) {
	u, anon, expired := s.bearer(r)
	if expired {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"code": "PGRST301", "message": "JWT expired", "details": nil, "hint": nil})
		return
	}
	if u == nil && !anon {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"code": "PGRST301", "message": "JWSError JWSInvalidSignature", "details": nil, "hint": nil})
		return
	}
	owner := ""
	if u != nil {
		owner = u.ID
	}

	q := r.URL.Query()
	single := r.Header.Get("Accept") == "application/vnd.pgrst.object+json"
	returning := strings.Contains(r.Header.Get("Prefer"), "return=representation")

	switch r.Method {
	case http.MethodGet:
		s.respond(w, http.StatusOK, s.match(owner, q), single)
	case http.MethodPost:
		var in Row
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"code": "PGRST102", "message": "Empty or invalid json"})
			return
		}
		if owner == "" || in.UserID != owner {
			writeJSON(w, http.StatusForbidden, map[string]any{"code": "42501", "message": `new row violates row-level security policy for table "notes"`})
			return
		}
		if strings.TrimSpace(in.Title) == "" {
			writeJSON(w, http.StatusBadRequest, map[string]any{"code": "23514", "message": `new row for relation "notes" violates check constraint "notes_title_check"`})
			return
		}
		at := s.now()
		row := Row{ID: uuid.NewString(), UserID: owner, Title: in.Title, Content: in.Content, CreatedAt: at, UpdatedAt: at}
		s.rows = append(s.rows, row)
		if !returning {
			w.WriteHeader(http.StatusCreated)
			return
		}
		s.respond(w, http.StatusCreated, []Row{row}, single)
	case http.MethodPatch:
		var patch map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"code": "PGRST102", "message": "Empty or invalid json"})
			return
		}
		matched := s.match(owner, q)
		var updated []Row
		for i := range s.rows {
			if !contains(matched, s.rows[i].ID) {
				continue
			}
			if v, ok := patch["title"]; ok {
				_ = json.Unmarshal(v, &s.rows[i].Title)
			}
			if v, ok := patch["content"]; ok {
				_ = json.Unmarshal(v, &s.rows[i].Content)
			}
			// updated_at is owned by the moddatetime trigger, any value sent is overwritten
			s.rows[i].UpdatedAt = s.now()
			updated = append(updated, s.rows[i])
		}
		if !returning {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		s.respond(w, http.StatusOK, updated, single)
	case http.MethodDelete:
		matched := s.match(owner, q)
		kept := s.rows[:0]
		for _, row := range s.rows {
			if !contains(matched, row.ID) {
				kept = append(kept, row)
			}
		}
		s.rows = kept
		w.WriteHeader(http.StatusNoContent)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"code": "PGRST117", "message": "Unsupported HTTP method"})
	}
}

// match applies row level security, eq filters and ordering
func (s *Server) match(owner string, q url.Values) []Row {
	var out []Row
	for _, row := range s.rows {
		if row.UserID != owner {
			continue
		}
		if !filter(q, "id", row.ID) || !filter(q, "user_id", row.UserID) || !filter(q, "title", row.Title) {
			continue
		}
		out = append(out, row)
	}

	if order := q.Get("order"); order != "" {
		desc := strings.HasSuffix(order, ".desc")
		column := strings.SplitN(order, ".", 2)[0]
		sort.SliceStable(out, func(i, j int) bool {
			a, b := orderKey(out[i], column), orderKey(out[j], column)
			if desc {
				return a > b
			}
			return a < b
		})
	}
	return out
}

func filter(q url.Values, column, value string) bool {
	for _, f := range q[column] {
		if strings.TrimPrefix(f, "eq.") != value {
			return false
		}
	}
	return true
}

func orderKey(r Row, column string) string {
	switch column {
	case "updated_at":
		return strconv.FormatInt(r.UpdatedAt.UnixNano(), 10)
	case "title":
		return r.Title
	default:
		return strconv.FormatInt(r.CreatedAt.UnixNano(), 10)
	}
}

func contains(rows []Row, id string) bool {
	for _, r := range rows {
		if r.ID == id {
			return true
		}
	}
	return false
}

func (s *Server) respond(w http.ResponseWriter, status int, rows []Row, single bool) {
	if !single {
		if rows == nil {
			rows = []Row{}
		}
		writeJSON(w, status, rows)
		return
	}
	if len(rows) != 1 {
		writeJSON(w, http.StatusNotAcceptable, map[string]any{
			"code":    supabase.CodeNoRows,
			"details": "The result contains " + strconv.Itoa(len(rows)) + " rows",
			"hint":    nil,
			"message": "JSON object requested, multiple (or no) rows returned",
		})
		return
	}
	writeJSON(w, status, rows[0])
}

func writeAuthError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, map[string]any{"code": status, "error_code": code, "msg": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
