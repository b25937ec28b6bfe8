package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/pompabon/internal/printjob/domain"
	"github.com/smallbiznis/pompabon/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, job *domain.PrintJob) error {
	return db.WithContext(ctx).Create(job).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.PrintJob, error) {
	var job domain.PrintJob
	err := db.WithContext(ctx).Where("id = ?", id).First(&job).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListFilter, page pagination.Pagination) ([]*domain.PrintJob, error) {
	var jobs []*domain.PrintJob
	stmt := db.WithContext(ctx).Model(&domain.PrintJob{})

	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}
	if page.PageToken != "" {
		cursor, err := pagination.DecodeCursor(page.PageToken)
		if err != nil {
			return nil, err
		}
		if cursor.ID != "" {
			stmt = stmt.Where("id < ?", cursor.ID)
		}
	}

	limit := page.PageSize
	if limit <= 0 {
		limit = 10
	}

	// one extra row to detect a following page
	err := stmt.
		Order("id desc").
		Limit(limit + 1).
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}
