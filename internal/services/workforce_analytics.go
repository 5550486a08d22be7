package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/workforce-analytics-backend/internal/analytics"
	"github.com/yungbote/workforce-analytics-backend/internal/data/repos"
	types "github.com/yungbote/workforce-analytics-backend/internal/domain"
	"github.com/yungbote/workforce-analytics-backend/internal/platform/apierr"
	"github.com/yungbote/workforce-analytics-backend/internal/platform/logger"
)

const CodeAnalyticsFailed = "analytics_failed"

type AnalyticsService interface {
	Dashboard(ctx context.Context) (*analytics.DashboardOverview, error)
	CollaborationNetwork(ctx context.Context) (*analytics.CollaborationNetwork, error)
	SkillGaps(ctx context.Context) (*analytics.SkillGapAnalysis, error)
	ProjectForecast(ctx context.Context) (*analytics.ProjectForecast, error)
	PerformanceTrends(ctx context.Context) (*analytics.PerformanceTrends, error)
	SkillMatching(ctx context.Context) (*analytics.SkillMatching, error)
}

type analyticsService struct {
	db                *gorm.DB
	log               *logger.Logger
	employeeRepo      repos.EmployeeRepo
	projectRepo       repos.ProjectRepo
	collaborationRepo repos.CollaborationRepo
	skillGapRepo      repos.SkillGapRepo
	now               func() time.Time
}

func NewAnalyticsService(
	db *gorm.DB,
	baseLog *logger.Logger,
	employeeRepo repos.EmployeeRepo,
	projectRepo repos.ProjectRepo,
	collaborationRepo repos.CollaborationRepo,
	skillGapRepo repos.SkillGapRepo,
) AnalyticsService {
	return &analyticsService{
		db:                db,
		log:               baseLog.With("service", "AnalyticsService"),
		employeeRepo:      employeeRepo,
		projectRepo:       projectRepo,
		collaborationRepo: collaborationRepo,
		skillGapRepo:      skillGapRepo,
		now:               time.Now,
	}
}

func (s *analyticsService) Dashboard(ctx context.Context) (*analytics.DashboardOverview, error) {
	employees, projects, err := loadBoth(ctx,
		func(ctx context.Context) ([]*types.Employee, error) { return s.employeeRepo.GetAll(ctx, s.db) },
		func(ctx context.Context) ([]*types.Project, error) { return s.projectRepo.GetAll(ctx, s.db) },
	)
	if err != nil {
		return nil, s.fail("dashboard", err)
	}
	out := analytics.Dashboard(employees, projects, s.now())
	return &out, nil
}

func (s *analyticsService) CollaborationNetwork(ctx context.Context) (*analytics.CollaborationNetwork, error) {
	employees, edges, err := loadBoth(ctx,
		func(ctx context.Context) ([]*types.Employee, error) { return s.employeeRepo.GetAll(ctx, s.db) },
		func(ctx context.Context) ([]*types.CollaborationEdge, error) { return s.collaborationRepo.GetAll(ctx, s.db) },
	)
	if err != nil {
		return nil, s.fail("collaboration network", err)
	}
	out := analytics.Network(employees, edges)
	return &out, nil
}

func (s *analyticsService) SkillGaps(ctx context.Context) (*analytics.SkillGapAnalysis, error) {
	gaps, err := s.skillGapRepo.GetAll(ctx, s.db)
	if err != nil {
		return nil, s.fail("skill gaps", err)
	}
	out := analytics.SkillGaps(gaps)
	return &out, nil
}

// ProjectForecast resolves team members with a single name-filtered query
// over the union of every project's team.
func (s *analyticsService) ProjectForecast(ctx context.Context) (*analytics.ProjectForecast, error) {
	projects, err := s.projectRepo.GetAll(ctx, s.db)
	if err != nil {
		return nil, s.fail("project forecast", err)
	}
	members, err := s.employeeRepo.GetByNames(ctx, s.db, analytics.TeamMemberNames(projects))
	if err != nil {
		return nil, s.fail("project forecast members", err)
	}
	out := analytics.Forecast(projects, members)
	return &out, nil
}

func (s *analyticsService) PerformanceTrends(ctx context.Context) (*analytics.PerformanceTrends, error) {
	employees, err := s.employeeRepo.GetAll(ctx, s.db)
	if err != nil {
		return nil, s.fail("performance trends", err)
	}
	out := analytics.Performance(employees)
	return &out, nil
}

func (s *analyticsService) SkillMatching(ctx context.Context) (*analytics.SkillMatching, error) {
	employees, projects, err := loadBoth(ctx,
		func(ctx context.Context) ([]*types.Employee, error) { return s.employeeRepo.GetAll(ctx, s.db) },
		func(ctx context.Context) ([]*types.Project, error) { return s.projectRepo.GetAll(ctx, s.db) },
	)
	if err != nil {
		return nil, s.fail("skill matching", err)
	}
	out := analytics.MatchSkills(employees, projects)
	return &out, nil
}

func (s *analyticsService) fail(op string, err error) error {
	s.log.Error("analytics load failed", "op", op, "error", err)
	return apierr.Internal(CodeAnalyticsFailed, fmt.Errorf("%s: %w", op, err))
}

// loadBoth runs two independent loads concurrently. The first failure
// cancels the other.
func loadBoth[A, B any](
	ctx context.Context,
	loadA func(context.Context) (A, error),
	loadB func(context.Context) (B, error),
) (A, B, error) {
	var (
		a A
		b B
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		a, err = loadA(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		b, err = loadB(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		var zeroA A
		var zeroB B
		return zeroA, zeroB, err
	}
	return a, b, nil
}
