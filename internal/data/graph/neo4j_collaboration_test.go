package graph

import (
	"context"
	"testing"

	"github.com/google/uuid"

	types "github.com/yungbote/workforce-analytics-backend/internal/domain"
)

func TestCollaborationRows(t *testing.T) {
	id := uuid.New()
	employees := []*types.Employee{
		{ID: id, Name: "Employee 1", Department: "Sales", Role: "Lead", PerformanceScore: 0.9},
		nil,
		{Name: ""},
	}
	edges := []*types.CollaborationEdge{
		{EmployeeA: "Employee 1", EmployeeB: "Employee 2", CollaborationStrength: 0.4, ProjectsShared: 3},
		{EmployeeA: "Employee 1", EmployeeB: "Employee 2", CollaborationStrength: 0.7},
		{EmployeeA: "", EmployeeB: "Employee 2"},
	}

	nodes, rels := collaborationRows(employees, edges, "now")

	if len(nodes) != 1 || nodes[0]["id"] != id.String() || nodes[0]["department"] != "Sales" {
		t.Fatalf("nodes=%v", nodes)
	}
	if len(rels) != 2 {
		t.Fatalf("parallel edges must both be kept: %v", rels)
	}
	if rels[0]["projects_shared"] != int64(3) || rels[0]["id"] != "" {
		t.Fatalf("rel=%v", rels[0])
	}
}

func TestReplaceCollaborationGraphWithoutClient(t *testing.T) {
	if err := ReplaceCollaborationGraph(context.Background(), nil, nil, nil, nil); err != nil {
		t.Fatalf("nil client: %v", err)
	}
}
