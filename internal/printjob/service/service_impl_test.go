package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/pompabon/internal/printjob/domain"
	"github.com/smallbiznis/pompabon/internal/printjob/repository"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var dbSeq int

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	dbSeq++
	dsn := fmt.Sprintf("file:printjob_test_%d?mode=memory&cache=shared", dbSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&domain.PrintJob{}))

	node, err := snowflake.NewNode(2)
	assert.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
}

func TestRecord_AssignsID(t *testing.T) {
	svc := newTestService(t)

	job, err := svc.Record(context.Background(), domain.PrintJob{
		TransactionNumber: "4011234",
		FuelType:          "Pertamax",
		TotalAmount:       122000,
		Status:            domain.StatusPrinted,
	})
	assert.NoError(t, err)
	assert.NotZero(t, job.ID)

	found, err := svc.GetByID(context.Background(), job.ID)
	assert.NoError(t, err)
	assert.Equal(t, "4011234", found.TransactionNumber)
	assert.Equal(t, domain.StatusPrinted, found.Status)
}

func TestGetByID_Errors(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetByID(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidID)

	_, err = svc.GetByID(context.Background(), 123456789)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_NewestFirstWithCursor(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Record(ctx, domain.PrintJob{
			TransactionNumber: fmt.Sprintf("401100%d", i),
			Status:            domain.StatusPrinted,
		})
		assert.NoError(t, err)
	}

	first, err := svc.List(ctx, domain.ListRequest{PageSize: 2})
	assert.NoError(t, err)
	assert.Len(t, first.Jobs, 2)
	assert.True(t, first.HasMore)
	assert.NotEmpty(t, first.NextPageToken)
	// snowflake IDs are time-ordered, so descending id is newest first
	assert.Equal(t, "4011004", first.Jobs[0].TransactionNumber)
	assert.Equal(t, "4011003", first.Jobs[1].TransactionNumber)

	second, err := svc.List(ctx, domain.ListRequest{PageSize: 2, PageToken: first.NextPageToken})
	assert.NoError(t, err)
	assert.Len(t, second.Jobs, 2)
	assert.Equal(t, "4011002", second.Jobs[0].TransactionNumber)
	assert.Equal(t, "4011001", second.Jobs[1].TransactionNumber)

	third, err := svc.List(ctx, domain.ListRequest{PageSize: 2, PageToken: second.NextPageToken})
	assert.NoError(t, err)
	assert.Len(t, third.Jobs, 1)
	assert.False(t, third.HasMore)
}

func TestList_StatusFilter(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Record(ctx, domain.PrintJob{TransactionNumber: "4012001", Status: domain.StatusPrinted})
	assert.NoError(t, err)
	_, err = svc.Record(ctx, domain.PrintJob{TransactionNumber: "4012002", Status: domain.StatusFailed, ErrorKind: "printer_busy"})
	assert.NoError(t, err)

	failed, err := svc.List(ctx, domain.ListRequest{Status: domain.StatusFailed})
	assert.NoError(t, err)
	assert.Len(t, failed.Jobs, 1)
	assert.Equal(t, "4012002", failed.Jobs[0].TransactionNumber)
	assert.Equal(t, "printer_busy", failed.Jobs[0].ErrorKind)
}

func TestList_BadPageToken(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.List(context.Background(), domain.ListRequest{PageToken: "!!not-base64!!"})
	assert.Error(t, err)
}
