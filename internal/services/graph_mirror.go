package services

import (
	"context"

	"github.com/yungbote/workforce-analytics-backend/internal/data/graph"
	types "github.com/yungbote/workforce-analytics-backend/internal/domain"
	"github.com/yungbote/workforce-analytics-backend/internal/platform/logger"
	"github.com/yungbote/workforce-analytics-backend/internal/platform/neo4jdb"
)

type neo4jGraphMirror struct {
	client *neo4jdb.Client
	log    *logger.Logger
}

// NewNeo4jGraphMirror returns nil when client is nil so callers can skip
// mirroring entirely.
func NewNeo4jGraphMirror(client *neo4jdb.Client, baseLog *logger.Logger) GraphMirror {
	if client == nil {
		return nil
	}
	return &neo4jGraphMirror{client: client, log: baseLog.With("service", "Neo4jGraphMirror")}
}

func (m *neo4jGraphMirror) ReplaceCollaborations(ctx context.Context, employees []*types.Employee, edges []*types.CollaborationEdge) error {
	return graph.ReplaceCollaborationGraph(ctx, m.client, m.log, employees, edges)
}
