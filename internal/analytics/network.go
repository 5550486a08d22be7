package analytics

import (
	types "github.com/yungbote/workforce-analytics-backend/internal/domain"
)

type NetworkNode struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Department         string  `json:"department"`
	Role               string  `json:"role"`
	PerformanceScore   float64 `json:"performance_score"`
	CollaborationIndex float64 `json:"collaboration_index"`
}

type NetworkEdge struct {
	Source         string  `json:"source"`
	Target         string  `json:"target"`
	Strength       float64 `json:"strength"`
	Frequency      float64 `json:"frequency"`
	ProjectsShared int     `json:"projects_shared"`
}

type CollaborationNetwork struct {
	Nodes []NetworkNode `json:"nodes"`
	Edges []NetworkEdge `json:"edges"`
}

// Network projects employees to nodes and collaboration records to edges.
// Edges are emitted one per record: parallel edges and self loops are kept,
// and endpoints are not checked against the node set.
func Network(employees []*types.Employee, edges []*types.CollaborationEdge) CollaborationNetwork {
	out := CollaborationNetwork{
		Nodes: make([]NetworkNode, 0, len(employees)),
		Edges: make([]NetworkEdge, 0, len(edges)),
	}
	for _, e := range employees {
		out.Nodes = append(out.Nodes, NetworkNode{
			ID:                 e.Name,
			Name:               e.Name,
			Department:         e.Department,
			Role:               e.Role,
			PerformanceScore:   e.PerformanceScore,
			CollaborationIndex: e.CollaborationIndex,
		})
	}
	for _, c := range edges {
		out.Edges = append(out.Edges, NetworkEdge{
			Source:         c.EmployeeA,
			Target:         c.EmployeeB,
			Strength:       c.CollaborationStrength,
			Frequency:      c.InteractionFrequency,
			ProjectsShared: c.ProjectsShared,
		})
	}
	return out
}
