package sys

import (
	"database/sql"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/private-notes/platform/stream"
	"github.com/ribgsilva/private-notes/platform/supabase"
	"go.uber.org/zap"
	"gocloud.dev/pubsub"
)

// Configs contains all the configs gathered from env vars
var Configs struct {
	Http struct {
		Port            string
		ShutdownTimeout time.Duration
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		IdleTimeout     time.Duration
	}
	Cookie struct {
		Name   string
		Secure bool
		MaxAge time.Duration
	}
	Swagger struct {
		Protocol string
		Host     string
	}
	Supabase struct {
		URL            string
		AnonKey        string
		RequestTimeout time.Duration
		RefreshMargin  time.Duration
		SiteURL        string
		Providers      []string
	}
	Cache struct {
		ConnectionURL    string
		User             string
		Pass             string
		PingTimeout      time.Duration
		OperationTimeout time.Duration
		SessionTTL       time.Duration
		VerifierTTL      time.Duration
	}
	Events struct {
		QueueURL        string
		MaxWorkers      int
		WaitTime        time.Duration
		AckDeadline     time.Duration
		ShutdownTimeout time.Duration
		StreamBuffer    int
		KeepAlive       time.Duration
	}
	NewRelic struct {
		AppName           string
		Licence           string
		Enabled           bool
		ConnectionTimeout time.Duration
		ShutdownTimeout   time.Duration
	}
	Schema struct {
		ConnectionURL    string
		PingTimeout      time.Duration
		OperationTimeout time.Duration
	}
}

// R holds static resources across the project
var R struct {
	Log      *zap.SugaredLogger
	Platform *supabase.Client
	Cache    *redis.Client
	Events   *pubsub.Topic
	Broker   *stream.Broker
	Database *sql.DB
}
