package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/ribgsilva/private-notes/app/api/consumers/v1/session"
	"github.com/ribgsilva/private-notes/app/api/docs"
	"github.com/ribgsilva/private-notes/app/api/handlers"
	"github.com/ribgsilva/private-notes/app/api/views"
	"github.com/ribgsilva/private-notes/platform/env"
	"github.com/ribgsilva/private-notes/platform/logger"
	"github.com/ribgsilva/private-notes/platform/stream"
	"github.com/ribgsilva/private-notes/platform/supabase"
	"github.com/ribgsilva/private-notes/sys"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/gin-swagger/swaggerFiles"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"gocloud.dev/pubsub"
	"gocloud.dev/pubsub/awssnssqs"
	"gocloud.dev/pubsub/mempubsub"
)

// @title Private Notes API
// @version 1.0
// @description Private notes of signed in users, stored on the hosted platform.
// @contact.name Gabriel Ribeiro Silva
func main() {
	log, err := logger.New("Private-Notes")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer func(log *zap.SugaredLogger) {
		_ = log.Sync()
	}(log)

	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =======================================================================================================
	// Setup max procs
	if _, err := maxprocs.Set(); err != nil {
		return fmt.Errorf("maxprocs: %w", err)
	}
	log.Infow("startup", "GOMAXPROCS", runtime.GOMAXPROCS(0))

	// =======================================================================================================
	// Setup configs
	sys.Configs.Http.Port = env.OrDefault(log, "HTTP_PORT", "8080")
	sys.Configs.Http.ReadTimeout = env.DurationDefault(log, "HTTP_READ_TIMEOUT", "5s")
	sys.Configs.Http.IdleTimeout = env.DurationDefault(log, "HTTP_IDLE_TIMEOUT", "120s")
	// zero keeps the auth event streams open
	sys.Configs.Http.WriteTimeout = env.DurationDefault(log, "HTTP_WRITE_TIMEOUT", "0s")
	sys.Configs.Http.ShutdownTimeout = env.DurationDefault(log, "HTTP_SHUTDOWN_TIMEOUT", "60s")
	sys.Configs.Cookie.Name = env.OrDefault(log, "COOKIE_NAME", "notes_session")
	sys.Configs.Cookie.Secure = env.BoolDefault(log, "COOKIE_SECURE", "f")
	sys.Configs.Swagger.Protocol = env.OrDefault(log, "SWAGGER_PROTOCOL", "http")
	sys.Configs.Swagger.Host = env.OrDefault(log, "SWAGGER_HOST", "localhost:"+sys.Configs.Http.Port)
	sys.Configs.Supabase.URL = env.Must(log, "SUPABASE_URL")
	sys.Configs.Supabase.AnonKey = env.Must(log, "SUPABASE_ANON_KEY")
	sys.Configs.Supabase.RequestTimeout = env.DurationDefault(log, "SUPABASE_REQUEST_TIMEOUT", "10s")
	sys.Configs.Supabase.RefreshMargin = env.DurationDefault(log, "SUPABASE_REFRESH_MARGIN", "60s")
	sys.Configs.Supabase.SiteURL = strings.TrimRight(env.OrDefault(log, "SITE_URL", "http://localhost:"+sys.Configs.Http.Port), "/")
	sys.Configs.Supabase.Providers = providers(env.OrDefault(log, "SUPABASE_PROVIDERS", ""))
	sys.Configs.Cache.ConnectionURL = env.OrDefault(log, "CACHE_CONNECTION_URL", "localhost:6379")
	sys.Configs.Cache.User = env.OrDefault(log, "CACHE_USER", "")
	sys.Configs.Cache.Pass = env.OrDefault(log, "CACHE_PASS", "")
	sys.Configs.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	sys.Configs.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "10s")
	sys.Configs.Cache.SessionTTL = env.DurationDefault(log, "CACHE_SESSION_TTL", "720h")
	sys.Configs.Cache.VerifierTTL = env.DurationDefault(log, "CACHE_VERIFIER_TTL", "10m")
	sys.Configs.Cookie.MaxAge = sys.Configs.Cache.SessionTTL
	sys.Configs.Events.QueueURL = env.OrDefault(log, "EVENTS_QUEUE_URL", "")
	sys.Configs.Events.MaxWorkers = env.IntDefault(log, "EVENTS_MAX_WORKERS", "4")
	sys.Configs.Events.WaitTime = env.DurationDefault(log, "EVENTS_WAIT_TIME", "10s")
	sys.Configs.Events.AckDeadline = env.DurationDefault(log, "EVENTS_ACK_DEADLINE", "30s")
	sys.Configs.Events.ShutdownTimeout = env.DurationDefault(log, "EVENTS_SHUTDOWN_TIMEOUT", "10s")
	sys.Configs.Events.StreamBuffer = env.IntDefault(log, "EVENTS_STREAM_BUFFER", "8")
	sys.Configs.Events.KeepAlive = env.DurationDefault(log, "EVENTS_KEEP_ALIVE", "15s")
	sys.Configs.NewRelic.AppName = env.OrDefault(log, "NEW_RELIC_APP_NAME", "private-notes")
	sys.Configs.NewRelic.Licence = env.OrDefault(log, "NEW_RELIC_LICENCE", "")
	sys.Configs.NewRelic.Enabled = env.BoolDefault(log, "NEW_RELIC_ENABLED", "f")
	sys.Configs.NewRelic.ConnectionTimeout = env.DurationDefault(log, "NEW_RELIC_CONNECTION_TIMEOUT", "10s")
	sys.Configs.NewRelic.ShutdownTimeout = env.DurationDefault(log, "NEW_RELIC_SHUTDOWN_TIMEOUT", "10s")

	// =======================================================================================================
	// Setup static resources

	// logger
	sys.R.Log = log

	// redis
	// doing in a func, so I can use defer to cancel the contexts
	var rdb *redis.Client
	if err := func() error {
		rdb = redis.NewClient(&redis.Options{
			Addr:     sys.Configs.Cache.ConnectionURL,
			Username: sys.Configs.Cache.User,
			Password: sys.Configs.Cache.Pass,
		})
		rdsCtx, rdsCancel := context.WithTimeout(context.Background(), sys.Configs.Cache.PingTimeout)
		defer rdsCancel()
		if err := rdb.Ping(rdsCtx).Err(); err != nil {
			return fmt.Errorf("could not connect to redis: %w", err)
		}
		return nil
	}(); err != nil {
		return err
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Errorf("could not close redis conn gracefully: %s", err)
		}
	}()

	sys.R.Cache = rdb

	// =======================================================================================================
	// NR

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(sys.Configs.NewRelic.AppName),
		newrelic.ConfigLicense(sys.Configs.NewRelic.Licence),
		newrelic.ConfigEnabled(sys.Configs.NewRelic.Enabled),
	)
	if err != nil {
		return err
	}
	if sys.Configs.NewRelic.Enabled {
		if err := nrApp.WaitForConnection(sys.Configs.NewRelic.ConnectionTimeout); err != nil {
			return err
		}
	}
	defer nrApp.Shutdown(sys.Configs.NewRelic.ShutdownTimeout)

	// =======================================================================================================
	// Platform

	platform, err := supabase.New(supabase.Config{
		URL:       sys.Configs.Supabase.URL,
		APIKey:    sys.Configs.Supabase.AnonKey,
		Timeout:   sys.Configs.Supabase.RequestTimeout,
		Transport: newrelic.NewRoundTripper(http.DefaultTransport),
	})
	if err != nil {
		return fmt.Errorf("could not configure platform client: %w", err)
	}
	sys.R.Platform = platform

	// =======================================================================================================
	// Session events

	topic, subscription, err := openEvents(context.Background())
	if err != nil {
		return err
	}
	defer func() {
		stdCtx, stdCancel := context.WithTimeout(context.Background(), sys.Configs.Events.ShutdownTimeout)
		defer stdCancel()

		if err := topic.Shutdown(stdCtx); err != nil {
			log.Errorf("could not stop topic gracefully: %s", err)
		}
		if err := subscription.Shutdown(stdCtx); err != nil {
			log.Errorf("could not stop subscription gracefully: %s", err)
		}
	}()
	sys.R.Events = topic

	broker := stream.New(sys.Configs.Events.StreamBuffer)
	defer broker.Close()
	sys.R.Broker = broker

	consumerCtx, consumerCancel := context.WithCancel(context.Background())
	defer consumerCancel()
	consumerDone := make(chan error, 1)
	go func() {
		consumerDone <- session.Consume(consumerCtx, subscription, sys.Configs.Events.MaxWorkers)
	}()

	// =======================================================================================================
	// Router configuration

	router := gin.New()
	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/v1/healthcheck"},
	}), gin.Recovery(), nrgin.Middleware(nrApp))

	if err := views.Install(router); err != nil {
		return fmt.Errorf("could not parse templates: %w", err)
	}

	handlers.MapDefaults(router)
	handlers.MapApi(router)
	handlers.MapPages(router)

	docs.SwaggerInfo.Host = sys.Configs.Swagger.Host
	url := ginSwagger.URL(fmt.Sprintf("%s://%s/swagger/doc.json", sys.Configs.Swagger.Protocol, sys.Configs.Swagger.Host))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, url))

	// =======================================================================================================
	// App start and shutdown

	svr := &http.Server{
		Addr:         fmt.Sprintf(":%s", sys.Configs.Http.Port),
		Handler:      router,
		ReadTimeout:  sys.Configs.Http.ReadTimeout,
		WriteTimeout: sys.Configs.Http.WriteTimeout,
		IdleTimeout:  sys.Configs.Http.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("started http server")
		serverErrors <- svr.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case err := <-consumerDone:
		return fmt.Errorf("session events listener error: %w", err)
	case sig := <-shutdown:
		log.Infow("shutdown", "status", "shutdown started", "signal", sig)
		defer log.Infow("shutdown", "status", "shutdown complete", "signal", sig)

		// ends the open event streams so the server can drain
		consumerCancel()
		broker.Close()

		ctx, cancel := context.WithTimeout(context.Background(), sys.Configs.Http.ShutdownTimeout)
		defer cancel()

		if err := svr.Shutdown(ctx); err != nil {
			_ = svr.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		if err := <-consumerDone; err != nil {
			log.Errorf("session events listener stopped with error: %s", err)
		}
	}
	return nil
}

// openEvents opens the session events topic and its subscription, on SQS when a queue is set
func openEvents(ctx context.Context) (*pubsub.Topic, *pubsub.Subscription, error) {
	if sys.Configs.Events.QueueURL == "" {
		t := mempubsub.NewTopic()
		return t, mempubsub.NewSubscription(t, sys.Configs.Events.AckDeadline), nil
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("could not load aws config: %w", err)
	}

	sqsCli := sqs.NewFromConfig(cfg)

	topic := awssnssqs.OpenSQSTopicV2(ctx, sqsCli, sys.Configs.Events.QueueURL, nil)
	subscription := awssnssqs.OpenSubscriptionV2(
		ctx,
		sqsCli,
		sys.Configs.Events.QueueURL,
		&awssnssqs.SubscriptionOptions{
			Raw:      true,
			WaitTime: sys.Configs.Events.WaitTime,
		})
	return topic, subscription, nil
}

func providers(list string) []string {
	var out []string
	for _, p := range strings.Split(list, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
