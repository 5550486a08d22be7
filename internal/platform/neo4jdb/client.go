package neo4jdb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/yungbote/workforce-analytics-backend/internal/config"
	"github.com/yungbote/workforce-analytics-backend/internal/platform/logger"
)

type Client struct {
	Driver   neo4j.DriverWithContext
	Database string
	log      *logger.Logger
}

// New returns (nil, nil) when no URI is configured.
func New(log *logger.Logger, cfg config.Neo4jConfig) (*Client, error) {
	if log == nil {
		return nil, fmt.Errorf("neo4jdb: logger required")
	}

	uri := strings.TrimSpace(cfg.URI)
	if uri == "" {
		return nil, nil
	}

	user := strings.TrimSpace(cfg.User)
	if user == "" {
		user = "neo4j"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	maxPool := cfg.MaxPoolSize
	if maxPool <= 0 {
		maxPool = 50
	}

	auth := neo4j.BasicAuth(user, cfg.Password, "")
	driver, err := neo4j.NewDriverWithContext(uri, auth, func(c *neo4j.Config) {
		c.MaxConnectionPoolSize = maxPool
		c.SocketConnectTimeout = timeout
	})
	if err != nil {
		return nil, fmt.Errorf("neo4jdb: init driver: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("neo4jdb: verify connectivity: %w", err)
	}

	return &Client{
		Driver:   driver,
		Database: strings.TrimSpace(cfg.Database),
		log:      log.With("client", "Neo4jDB"),
	}, nil
}

func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.Driver == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := c.Driver.Close(ctx)
	c.Driver = nil
	return err
}
