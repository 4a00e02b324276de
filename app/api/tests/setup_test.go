package tests

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/private-notes/app/api/consumers/v1/session"
	"github.com/ribgsilva/private-notes/app/api/handlers"
	"github.com/ribgsilva/private-notes/app/api/views"
	"github.com/ribgsilva/private-notes/platform/env"
	"github.com/ribgsilva/private-notes/platform/logger"
	"github.com/ribgsilva/private-notes/platform/stream"
	"github.com/ribgsilva/private-notes/platform/supabase"
	"github.com/ribgsilva/private-notes/platform/supabase/supabasetest"
	"github.com/ribgsilva/private-notes/sys"
	"gocloud.dev/pubsub/mempubsub"
)

const siteURL = "http://notes.local"

type App struct {
	handler  http.Handler
	platform *supabasetest.Server
	cache    *miniredis.Miniredis
}

func setup(t *testing.T) *App {
	t.Helper()
	log, err := logger.New("Private-Notes-Tests")
	if err != nil {
		t.Fatal(err)
	}
	gin.SetMode(gin.TestMode)

	// =======================================================================================================
	// Mocks

	// miniredis
	s := miniredis.RunT(t)

	// platform
	platform := supabasetest.New(t)

	// =======================================================================================================
	// Setup configs
	sys.Configs.Cookie.Name = "notes_session"
	sys.Configs.Cookie.MaxAge = time.Hour
	sys.Configs.Supabase.URL = platform.URL
	sys.Configs.Supabase.AnonKey = supabasetest.APIKey
	sys.Configs.Supabase.RequestTimeout = env.DurationDefault(log, "SUPABASE_REQUEST_TIMEOUT", "5s")
	sys.Configs.Supabase.RefreshMargin = time.Minute
	sys.Configs.Supabase.SiteURL = siteURL
	sys.Configs.Supabase.Providers = []string{"github"}
	sys.Configs.Cache.ConnectionURL = s.Addr()
	sys.Configs.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	sys.Configs.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "10s")
	sys.Configs.Cache.SessionTTL = time.Hour
	sys.Configs.Cache.VerifierTTL = time.Minute
	sys.Configs.Events.KeepAlive = time.Second

	// =======================================================================================================
	// Setup resources

	// logger
	sys.R.Log = log

	// redis
	rdb := redis.NewClient(&redis.Options{Addr: sys.Configs.Cache.ConnectionURL})
	rdsCtx, rdsCancel := context.WithTimeout(context.Background(), sys.Configs.Cache.PingTimeout)
	defer rdsCancel()
	if err := rdb.Ping(rdsCtx).Err(); err != nil {
		t.Fatalf("could not connect to redis: %s", err)
	}
	sys.R.Cache = rdb

	// platform client
	client, err := supabase.New(supabase.Config{
		URL:     sys.Configs.Supabase.URL,
		APIKey:  sys.Configs.Supabase.AnonKey,
		Timeout: sys.Configs.Supabase.RequestTimeout,
	})
	if err != nil {
		t.Fatalf("could not configure platform client: %s", err)
	}
	sys.R.Platform = client

	// session events
	topic := mempubsub.NewTopic()
	subscription := mempubsub.NewSubscription(topic, time.Minute)
	sys.R.Events = topic
	sys.R.Broker = stream.New(8)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- session.Consume(ctx, subscription, 2)
	}()

	t.Cleanup(func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("consumer stopped with error: %s", err)
		}
		sys.R.Broker.Close()
		_ = subscription.Shutdown(context.Background())
		_ = topic.Shutdown(context.Background())
		_ = rdb.Close()
	})

	// =======================================================================================================
	// Setup router
	engine := gin.New()
	if err := views.Install(engine); err != nil {
		t.Fatalf("could not parse templates: %s", err)
	}
	handlers.MapDefaults(engine)
	handlers.MapApi(engine)
	handlers.MapPages(engine)

	return &App{
		handler:  engine,
		platform: platform,
		cache:    s,
	}
}

// request serves one request, body is sent as json unless it is url.Values encoded by the caller
func (a *App) request(method, target, body string, cookie *http.Cookie, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	r := httptest.NewRequest(method, target, reader)
	if body != "" {
		r.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		r.Header.Set(headers[i], headers[i+1])
	}
	if cookie != nil {
		r.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	a.handler.ServeHTTP(w, r)
	return w
}

func (a *App) form(method, target, body string, cookie *http.Cookie, headers ...string) *httptest.ResponseRecorder {
	return a.request(method, target, body, cookie, append([]string{"Content-Type", "application/x-www-form-urlencoded"}, headers...)...)
}

// signIn registers a confirmed user and returns the session cookie of its sign in
func (a *App) signIn(t *testing.T, email string) *http.Cookie {
	t.Helper()
	a.platform.CreateUser(email, "secret123")

	w := a.request(http.MethodPost, "/v1/auth/signin", fmt.Sprintf(`{"email":%q,"password":"secret123"}`, email), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Test signIn: Should receive a status code of 200 for the response : %v %s", w.Code, w.Body)
	}
	c := sessionCookie(w)
	if c == nil || c.Value == "" {
		t.Fatalf("Test signIn: Should receive the session cookie")
	}
	return c
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == sys.Configs.Cookie.Name {
			return c
		}
	}
	return nil
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Should be able to unmarshal the response : %v", err)
	}
}
