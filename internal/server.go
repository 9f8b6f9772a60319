package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/sorcerer/internal/config"
	"github.com/2beens/sorcerer/internal/middleware"
	"github.com/2beens/sorcerer/internal/telemetry/metrics"
	"github.com/2beens/sorcerer/internal/telemetry/tracing"
	"github.com/2beens/sorcerer/internal/tracker"
	"github.com/2beens/sorcerer/internal/workout"
	"github.com/2beens/sorcerer/pkg"
)

// page forms post no body, the API takes none either
const maxRequestBodyBytes = 4 * 1024

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config  *config.Config
	tracker *tracker.Tracker
	pages   *workout.Pages

	// redis is optional, nil when no redis host is configured
	redisClient *redis.Client
	rateLimiter middleware.RequestRateLimiter

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	if params.Config == nil {
		return nil, errors.New("config not set")
	}

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("sorcerer", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	pages, err := workout.NewPages()
	if err != nil {
		return nil, fmt.Errorf("load pages: %w", err)
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "sorcerer")
	if err != nil {
		return nil, fmt.Errorf("tracing setup: %w", err)
	}

	s := &Server{
		config:      params.Config,
		versionInfo: params.VersionInfo,
		tracker:     tracker.New(),
		pages:       pages,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	if params.Config.RedisEnabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
			Password: params.RedisPassword,
			DB:       0, // use default DB
		})
		if params.HoneycombTracingEnabled {
			rdb.AddHook(redisotel.NewTracingHook())
		}

		if err := pingRedis(ctx, rdb); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		}

		s.redisClient = rdb
		s.rateLimiter = redis_rate.NewLimiter(rdb)
	} else {
		log.Debugln("redis not configured, toggle rate limiting disabled")
	}

	return s, nil
}

func pingRedis(ctx context.Context, rdb *redis.Client) error {
	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	log.Debugf("redis ping: %s", rdbStatus.Val())
	return nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("sorcerer-router"))

	workoutHandler := workout.NewHandler(s.tracker, s.pages, s.metricsManager)
	workoutHandler.SetupRoutes(r, s.rateLimiter, s.config.ToggleRateLimitAllowedPerMin)

	r.HandleFunc("/version", s.handleVersion).Methods("GET").Name("version")

	// all the rest - unhandled paths
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(middleware.LimitAndDrainBody(maxRequestBodyBytes))

	return r
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	versionInfo := s.versionInfo
	if versionInfo == "" {
		versionInfo = "unknown"
	}
	pkg.WriteTextResponseOK(w, versionInfo)
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:              metricsAddr,
		Handler:           metricsRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
