package app

import (
	"github.com/yungbote/workforce-analytics-backend/internal/clients/redis"
	"github.com/yungbote/workforce-analytics-backend/internal/config"
	"github.com/yungbote/workforce-analytics-backend/internal/platform/logger"
	"github.com/yungbote/workforce-analytics-backend/internal/platform/neo4jdb"
)

type Clients struct {
	Cache redis.ResponseCache
	Neo4j *neo4jdb.Client
}

// wireClients connects the optional backends. Neither is required to serve
// requests, so a failed connection is logged and the feature disabled.
func wireClients(log *logger.Logger, cfg *config.Config) Clients {
	log.Info("Wiring clients...")

	cache, err := redis.NewResponseCache(log, cfg.Redis)
	if err != nil {
		log.Warn("Redis response cache unavailable, serving uncached", "error", err)
		cache = redis.NewNoopCache()
	}

	graph, err := neo4jdb.New(log, cfg.Neo4j)
	if err != nil {
		log.Warn("Neo4j unavailable, collaboration graph mirror disabled", "error", err)
		graph = nil
	}

	return Clients{Cache: cache, Neo4j: graph}
}
