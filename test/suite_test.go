package test

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/2beens/sorcerer/internal"
	"github.com/2beens/sorcerer/internal/config"

	"github.com/go-redis/redis/v8"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
)

const (
	serverPort        = 9000
	metricsServerPort = 9001
	serverHost        = "127.0.0.1"

	toggleAllowedPerMin = 30
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

// IntegrationTestSuite runs the whole service against a real redis in docker.
type IntegrationTestSuite struct {
	suite.Suite

	dockerPool  *dockertest.Pool
	redisClient *redis.Client
	server      *internal.Server
	httpClient  *http.Client
	teardown    []func()
}

func TestIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(IntegrationTestSuite))
}

func (s *IntegrationTestSuite) SetupSuite() {
	ctx := context.Background()
	fmt.Println("setting up test suite...")

	s.teardown = make([]func(), 0)
	s.httpClient = &http.Client{
		Timeout: 10 * time.Second,
		// keep redirects visible to the tests
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	var err error
	s.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		s.T().Skipf("could not create new dockertest pool: %s", err)
	}

	// uses pool to try to connect to Docker
	if err = s.dockerPool.Client.Ping(); err != nil {
		s.T().Skipf("could not ping dockertest pool: %s", err)
	}
	fmt.Println("dockertest pool ping successful")

	redisPort, err := s.redisSetup(ctx)
	if err != nil {
		s.cleanup()
		s.T().Fatalf("failed to setup redis: %s", err)
	}
	fmt.Println("redis setup successful")

	cfg := getTestConfig(redisPort)
	s.server, err = internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             "test-version-info",
			RedisPassword:           "",
			HoneycombTracingEnabled: false,
		},
	)
	if err != nil {
		s.cleanup()
		s.T().Fatalf("new server: %s", err)
	}

	s.server.Serve(cfg.Host, cfg.Port)
	if err := s.dockerPool.Retry(func() error {
		resp, err := s.httpClient.Get(serverEndpoint + "/version")
		if err != nil {
			return err
		}
		return resp.Body.Close()
	}); err != nil {
		s.cleanup()
		s.T().Fatalf("server not reachable: %s", err)
	}
	fmt.Println("server started")
}

func (s *IntegrationTestSuite) SetupTest() {
	// every test starts from a clean board and a fresh rate limit window
	s.Require().NoError(s.redisClient.FlushAll(context.Background()).Err())
	resp := s.post("/reset", nil)
	s.Require().NoError(resp.Body.Close())
	resp = s.post("/day/monday", nil)
	s.Require().NoError(resp.Body.Close())
}

func (s *IntegrationTestSuite) TearDownSuite() {
	s.cleanup()
}

func (s *IntegrationTestSuite) cleanup() {
	fmt.Println(" --> cleaning up test suite...")
	if s.server != nil {
		s.server.GracefulShutdown()
	}
	fmt.Println(" --> test suite server shut down")
	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			fmt.Printf(" --> test suite redis close error: %s\n", err)
		}
	}
	for _, teardown := range s.teardown {
		teardown()
	}
	fmt.Println(" --> test suite cleanup done")
}

func getTestConfig(redisPort string) *config.Config {
	return &config.Config{
		Environment:                  "development",
		Host:                         serverHost,
		Port:                         serverPort,
		LogLevel:                     "info",
		PrometheusMetricsHost:        serverHost,
		PrometheusMetricsPort:        strconv.Itoa(metricsServerPort),
		RedisHost:                    "localhost",
		RedisPort:                    redisPort,
		ToggleRateLimitAllowedPerMin: toggleAllowedPerMin,
	}
}

func (s *IntegrationTestSuite) redisSetup(ctx context.Context) (string, error) {
	redisResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %w", err)
	}

	s.teardown = append(s.teardown, func() {
		if err := redisResource.Close(); err != nil {
			fmt.Printf("redis teardown: %s\n", err)
		}
	})

	redisPort := redisResource.GetPort("6379/tcp")
	s.redisClient = redis.NewClient(&redis.Options{
		Addr: net.JoinHostPort("localhost", redisPort),
	})
	if err := s.dockerPool.Retry(func() error {
		return s.redisClient.Ping(ctx).Err()
	}); err != nil {
		return "", fmt.Errorf("connect to redis: %w", err)
	}

	return redisPort, nil
}
