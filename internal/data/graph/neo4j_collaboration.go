package graph

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	types "github.com/yungbote/workforce-analytics-backend/internal/domain"
	"github.com/yungbote/workforce-analytics-backend/internal/platform/logger"
	"github.com/yungbote/workforce-analytics-backend/internal/platform/neo4jdb"
)

// ReplaceCollaborationGraph drops the previous projection and writes one
// Employee node per employee and one COLLABORATES_WITH relationship per
// collaboration record. Records naming an unknown employee get a bare node.
func ReplaceCollaborationGraph(ctx context.Context, client *neo4jdb.Client, log *logger.Logger, employees []*types.Employee, edges []*types.CollaborationEdge) error {
	if client == nil || client.Driver == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	nodeRows, relRows := collaborationRows(employees, edges, now)

	session := client.Driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: client.Database,
	})
	defer session.Close(ctx)

	// Best-effort schema init.
	if res, err := session.Run(ctx, `CREATE CONSTRAINT employee_name_unique IF NOT EXISTS FOR (e:Employee) REQUIRE e.name IS UNIQUE`, nil); err != nil {
		if log != nil {
			log.Warn("neo4j schema init failed (continuing)", "error", err)
		}
	} else {
		_, _ = res.Consume(ctx)
	}

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		if res, err := tx.Run(ctx, `MATCH (e:Employee) DETACH DELETE e`, nil); err != nil {
			return nil, err
		} else if _, err := res.Consume(ctx); err != nil {
			return nil, err
		}

		if len(nodeRows) > 0 {
			res, err := tx.Run(ctx, `
UNWIND $rows AS r
MERGE (e:Employee {name: r.name})
SET e.id = r.id,
    e.department = r.department,
    e.role = r.role,
    e.performance_score = r.performance_score,
    e.collaboration_index = r.collaboration_index,
    e.synced_at = r.synced_at
`, map[string]any{"rows": nodeRows})
			if err != nil {
				return nil, err
			}
			if _, err := res.Consume(ctx); err != nil {
				return nil, err
			}
		}

		if len(relRows) == 0 {
			return nil, nil
		}
		res, err := tx.Run(ctx, `
UNWIND $rows AS r
MERGE (a:Employee {name: r.employee_a})
MERGE (b:Employee {name: r.employee_b})
CREATE (a)-[c:COLLABORATES_WITH {id: r.id}]->(b)
SET c.strength = r.strength,
    c.frequency = r.frequency,
    c.projects_shared = r.projects_shared,
    c.synced_at = r.synced_at
`, map[string]any{"rows": relRows})
		if err != nil {
			return nil, err
		}
		if _, err := res.Consume(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err == nil && log != nil {
		log.Debug("collaboration graph mirrored", "nodes", len(nodeRows), "relationships", len(relRows))
	}
	return err
}

func collaborationRows(employees []*types.Employee, edges []*types.CollaborationEdge, syncedAt string) ([]map[string]any, []map[string]any) {
	nodeRows := make([]map[string]any, 0, len(employees))
	for _, e := range employees {
		if e == nil || e.Name == "" {
			continue
		}
		nodeRows = append(nodeRows, map[string]any{
			"id":                  idString(e.ID),
			"name":                e.Name,
			"department":          e.Department,
			"role":                e.Role,
			"performance_score":   e.PerformanceScore,
			"collaboration_index": e.CollaborationIndex,
			"synced_at":           syncedAt,
		})
	}

	relRows := make([]map[string]any, 0, len(edges))
	for _, c := range edges {
		if c == nil || c.EmployeeA == "" || c.EmployeeB == "" {
			continue
		}
		relRows = append(relRows, map[string]any{
			"id":              idString(c.ID),
			"employee_a":      c.EmployeeA,
			"employee_b":      c.EmployeeB,
			"strength":        c.CollaborationStrength,
			"frequency":       c.InteractionFrequency,
			"projects_shared": int64(c.ProjectsShared),
			"synced_at":       syncedAt,
		})
	}
	return nodeRows, relRows
}

func idString(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}
