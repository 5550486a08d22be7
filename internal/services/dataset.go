package services

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/yungbote/workforce-analytics-backend/internal/clients/redis"
	"github.com/yungbote/workforce-analytics-backend/internal/data/repos"
	types "github.com/yungbote/workforce-analytics-backend/internal/domain"
	"github.com/yungbote/workforce-analytics-backend/internal/platform/apierr"
	"github.com/yungbote/workforce-analytics-backend/internal/platform/logger"
	"github.com/yungbote/workforce-analytics-backend/internal/sampledata"
)

const (
	CodeInitializeFailed = "initialize_failed"

	InitializedMessage = "Sample data initialized successfully"
)

type DatasetCounts struct {
	Employees      int `json:"employees"`
	Projects       int `json:"projects"`
	Collaborations int `json:"collaborations"`
	SkillGaps      int `json:"skill_gaps"`
}

type InitializeResult struct {
	Message string        `json:"message"`
	Counts  DatasetCounts `json:"counts"`
}

// GraphMirror receives a copy of the collaboration network after each
// initialization.
type GraphMirror interface {
	ReplaceCollaborations(ctx context.Context, employees []*types.Employee, edges []*types.CollaborationEdge) error
}

type DatasetService interface {
	Initialize(ctx context.Context) (*InitializeResult, error)
}

type datasetService struct {
	db                *gorm.DB
	log               *logger.Logger
	employeeRepo      repos.EmployeeRepo
	projectRepo       repos.ProjectRepo
	collaborationRepo repos.CollaborationRepo
	skillGapRepo      repos.SkillGapRepo
	generator         *sampledata.Generator
	cache             redis.ResponseCache
	mirror            GraphMirror

	// generator draws are not safe for concurrent use
	mu sync.Mutex
}

func NewDatasetService(
	db *gorm.DB,
	baseLog *logger.Logger,
	employeeRepo repos.EmployeeRepo,
	projectRepo repos.ProjectRepo,
	collaborationRepo repos.CollaborationRepo,
	skillGapRepo repos.SkillGapRepo,
	generator *sampledata.Generator,
	cache redis.ResponseCache,
	mirror GraphMirror,
) DatasetService {
	if generator == nil {
		generator = sampledata.New(nil, nil)
	}
	if cache == nil {
		cache = redis.NewNoopCache()
	}
	return &datasetService{
		db:                db,
		log:               baseLog.With("service", "DatasetService"),
		employeeRepo:      employeeRepo,
		projectRepo:       projectRepo,
		collaborationRepo: collaborationRepo,
		skillGapRepo:      skillGapRepo,
		generator:         generator,
		cache:             cache,
		mirror:            mirror,
	}
}

// Initialize purges all four collections and repopulates them with a fresh
// sample dataset. It is not transactional: a failure part way leaves
// whatever was written so far.
func (s *datasetService) Initialize(ctx context.Context) (*InitializeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.purge(ctx); err != nil {
		return nil, s.fail("purge", err)
	}

	ds, err := s.generator.Generate()
	if err != nil {
		return nil, s.fail("generate", err)
	}

	if _, err := s.employeeRepo.Create(ctx, s.db, ds.Employees); err != nil {
		return nil, s.fail("insert employees", err)
	}
	if _, err := s.projectRepo.Create(ctx, s.db, ds.Projects); err != nil {
		return nil, s.fail("insert projects", err)
	}
	if _, err := s.collaborationRepo.Create(ctx, s.db, ds.Collaborations); err != nil {
		return nil, s.fail("insert collaborations", err)
	}
	if _, err := s.skillGapRepo.Create(ctx, s.db, ds.SkillGaps); err != nil {
		return nil, s.fail("insert skill gaps", err)
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn("response cache invalidate failed (continuing)", "error", err)
	}
	if s.mirror != nil {
		if err := s.mirror.ReplaceCollaborations(ctx, ds.Employees, ds.Collaborations); err != nil {
			s.log.Warn("collaboration graph mirror failed (continuing)", "error", err)
		}
	}

	counts := DatasetCounts{
		Employees:      len(ds.Employees),
		Projects:       len(ds.Projects),
		Collaborations: len(ds.Collaborations),
		SkillGaps:      len(ds.SkillGaps),
	}
	s.log.Info("sample data initialized",
		"employees", counts.Employees,
		"projects", counts.Projects,
		"collaborations", counts.Collaborations,
		"skill_gaps", counts.SkillGaps,
	)
	return &InitializeResult{Message: InitializedMessage, Counts: counts}, nil
}

func (s *datasetService) purge(ctx context.Context) error {
	if _, err := s.employeeRepo.DeleteAll(ctx, s.db); err != nil {
		return fmt.Errorf("employees: %w", err)
	}
	if _, err := s.projectRepo.DeleteAll(ctx, s.db); err != nil {
		return fmt.Errorf("projects: %w", err)
	}
	if _, err := s.collaborationRepo.DeleteAll(ctx, s.db); err != nil {
		return fmt.Errorf("collaborations: %w", err)
	}
	if _, err := s.skillGapRepo.DeleteAll(ctx, s.db); err != nil {
		return fmt.Errorf("skill gaps: %w", err)
	}
	return nil
}

func (s *datasetService) fail(step string, err error) error {
	s.log.Error("initialize failed", "step", step, "error", err)
	return apierr.Internal(CodeInitializeFailed, fmt.Errorf("%s: %w", step, err))
}
