package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/pompabon/internal/printjob/domain"
	"github.com/smallbiznis/pompabon/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("printjob.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Record(ctx context.Context, job domain.PrintJob) (domain.PrintJob, error) {
	if job.ID == 0 {
		job.ID = s.genID.Generate()
	}

	if err := s.repo.Insert(ctx, s.db, &job); err != nil {
		return domain.PrintJob{}, err
	}
	return job, nil
}

func (s *Service) GetByID(ctx context.Context, id snowflake.ID) (domain.PrintJob, error) {
	if id == 0 {
		return domain.PrintJob{}, domain.ErrInvalidID
	}

	job, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.PrintJob{}, err
	}
	if job == nil {
		return domain.PrintJob{}, domain.ErrNotFound
	}
	return *job, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) (domain.ListResponse, error) {
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	if pageSize > 250 {
		pageSize = 250
	}

	jobs, err := s.repo.List(ctx, s.db, domain.ListFilter{Status: req.Status}, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  int(pageSize),
	})
	if err != nil {
		return domain.ListResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(jobs, pageSize, func(job *domain.PrintJob) string {
		token, _ := pagination.EncodeCursor(pagination.Cursor{ID: job.ID.String()})
		return token
	})

	if len(jobs) > int(pageSize) {
		jobs = jobs[:pageSize]
	}

	out := make([]domain.PrintJob, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, *job)
	}

	return domain.ListResponse{
		PageInfo: *pageInfo,
		Jobs:     out,
	}, nil
}
