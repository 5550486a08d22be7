package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yungbote/workforce-analytics-backend/internal/clients/redis"
	"github.com/yungbote/workforce-analytics-backend/internal/data/repos"
	"github.com/yungbote/workforce-analytics-backend/internal/data/repos/testutil"
	types "github.com/yungbote/workforce-analytics-backend/internal/domain"
	"github.com/yungbote/workforce-analytics-backend/internal/platform/apierr"
	"github.com/yungbote/workforce-analytics-backend/internal/sampledata"
)

type fakeCache struct {
	invalidations int
}

func (c *fakeCache) Get(context.Context, string) ([]byte, redis.Generation, bool, error) {
	return nil, 0, false, nil
}
func (c *fakeCache) Set(context.Context, string, redis.Generation, []byte) error { return nil }
func (c *fakeCache) Invalidate(context.Context) error {
	c.invalidations++
	return nil
}
func (c *fakeCache) Close() error { return nil }

type fakeMirror struct {
	nodes, edges int
	err          error
}

func (m *fakeMirror) ReplaceCollaborations(_ context.Context, employees []*types.Employee, edges []*types.CollaborationEdge) error {
	m.nodes, m.edges = len(employees), len(edges)
	return m.err
}

type fixture struct {
	db        *gorm.DB
	employees repos.EmployeeRepo
	projects  repos.ProjectRepo
	edges     repos.CollaborationRepo
	gaps      repos.SkillGapRepo
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	return fixture{
		db:        db,
		employees: repos.NewEmployeeRepo(db, log, 100),
		projects:  repos.NewProjectRepo(db, log, 100),
		edges:     repos.NewCollaborationRepo(db, log, 100),
		gaps:      repos.NewSkillGapRepo(db, log, 100),
	}
}

func (f fixture) dataset(t *testing.T, cache *fakeCache, mirror GraphMirror) DatasetService {
	gen := sampledata.NewSeeded(11, func() time.Time { return time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC) })
	return NewDatasetService(f.db, testutil.Logger(t), f.employees, f.projects, f.edges, f.gaps, gen, cache, mirror)
}

func (f fixture) analytics(t *testing.T) AnalyticsService {
	return NewAnalyticsService(f.db, testutil.Logger(t), f.employees, f.projects, f.edges, f.gaps)
}

func TestInitializeReplacesEverything(t *testing.T) {
	f := newFixture(t)
	cache := &fakeCache{}
	mirror := &fakeMirror{}
	svc := f.dataset(t, cache, mirror)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		res, err := svc.Initialize(ctx)
		require.NoError(t, err)
		assert.Equal(t, InitializedMessage, res.Message)
		assert.Equal(t, DatasetCounts{Employees: 50, Projects: 8, Collaborations: 100, SkillGaps: 18}, res.Counts)
	}

	n, err := f.employees.Count(ctx, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 50, n, "second init must not accumulate")
	n, err = f.edges.Count(ctx, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 100, n)

	assert.Equal(t, 2, cache.invalidations)
	assert.Equal(t, 50, mirror.nodes)
	assert.Equal(t, 100, mirror.edges)
}

func TestInitializeIgnoresMirrorFailure(t *testing.T) {
	f := newFixture(t)
	svc := f.dataset(t, &fakeCache{}, &fakeMirror{err: errors.New("neo4j down")})

	res, err := svc.Initialize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 50, res.Counts.Employees)
}

func TestAnalyticsAfterInitialize(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.dataset(t, &fakeCache{}, nil).Initialize(ctx)
	require.NoError(t, err)
	svc := f.analytics(t)

	dash, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, dash.Metrics.TotalEmployees)
	assert.Equal(t, 8, dash.Metrics.TotalProjects)
	assert.GreaterOrEqual(t, dash.Metrics.AvgPerformanceScore, 0.6)
	assert.LessOrEqual(t, dash.Metrics.AvgPerformanceScore, 1.0)

	network, err := svc.CollaborationNetwork(ctx)
	require.NoError(t, err)
	assert.Len(t, network.Nodes, 50)
	assert.Len(t, network.Edges, 100)
	assert.Equal(t, "Employee 1", network.Nodes[0].ID, "nodes follow insertion order")

	gaps, err := svc.SkillGaps(ctx)
	require.NoError(t, err)
	assert.Equal(t, 18, gaps.Summary.TotalGaps)
	assert.Equal(t, 6, gaps.Summary.DepartmentsAffected)
	assert.Equal(t, "Engineering", gaps.ByDepartment.Keys()[0])

	forecast, err := svc.ProjectForecast(ctx)
	require.NoError(t, err)
	total := 0
	for _, k := range forecast.SuccessDistribution.Keys() {
		v, _ := forecast.SuccessDistribution.Get(k)
		total += v
	}
	assert.Equal(t, 8, total)
	// every generated team resolves, so every project lands in some department
	assert.Positive(t, forecast.DepartmentSuccessRates.Len())

	trends, err := svc.PerformanceTrends(ctx)
	require.NoError(t, err)
	assert.Len(t, trends.TopPerformers, 10)
	assert.Len(t, trends.ExperienceCorrelation, 50)

	matching, err := svc.SkillMatching(ctx)
	require.NoError(t, err)
	assert.Len(t, matching.ProjectSkillMatching, 8)
	for _, pm := range matching.ProjectSkillMatching {
		assert.LessOrEqual(t, len(pm.RecommendedEmployees), 5)
	}
}

func TestAnalyticsOnEmptyStore(t *testing.T) {
	f := newFixture(t)
	svc := f.analytics(t)
	ctx := context.Background()

	dash, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Zero(t, dash.Metrics.TotalEmployees)
	assert.Zero(t, dash.Metrics.AvgProjectSuccessRate)

	forecast, err := svc.ProjectForecast(ctx)
	require.NoError(t, err)
	assert.Empty(t, forecast.RiskProjects)
}

func TestAnalyticsStoreFailureIsInternal(t *testing.T) {
	f := newFixture(t)
	sqlDB, err := f.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = f.analytics(t).SkillGaps(context.Background())
	require.Error(t, err)
	status, code := apierr.StatusOf(err, "x")
	assert.Equal(t, 500, status)
	assert.Equal(t, CodeAnalyticsFailed, code)
}
