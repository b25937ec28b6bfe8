package service

import (
	"context"

	"github.com/smallbiznis/pompabon/internal/bitmap"
	"github.com/smallbiznis/pompabon/internal/config"
	draftdomain "github.com/smallbiznis/pompabon/internal/draft/domain"
	obsmetrics "github.com/smallbiznis/pompabon/internal/observability/metrics"
	"github.com/smallbiznis/pompabon/internal/printer"
	printjobdomain "github.com/smallbiznis/pompabon/internal/printjob/domain"
	"github.com/smallbiznis/pompabon/internal/receipt/compose"
	"github.com/smallbiznis/pompabon/internal/receipt/domain"
	"github.com/smallbiznis/pompabon/internal/receipt/format"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Cfg        config.Config
	Log        *zap.Logger
	Composer   *compose.Composer
	Resolver   *bitmap.Resolver
	Dispatcher printer.Dispatcher
	Numbers    format.NumberGenerator
	Drafts     draftdomain.Service
	Jobs       printjobdomain.Service
	Metrics    *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	cfg        config.Config
	log        *zap.Logger
	composer   *compose.Composer
	resolver   *bitmap.Resolver
	dispatcher printer.Dispatcher
	numbers    format.NumberGenerator
	drafts     draftdomain.Service
	jobs       printjobdomain.Service
	metrics    *obsmetrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		cfg:        p.Cfg,
		log:        p.Log.Named("receipt.service"),
		composer:   p.Composer,
		resolver:   p.Resolver,
		dispatcher: p.Dispatcher,
		numbers:    p.Numbers,
		drafts:     p.Drafts,
		jobs:       p.Jobs,
		metrics:    p.Metrics,
	}
}

func (s *Service) Print(ctx context.Context, req domain.PrintRequest) (domain.PrintResponse, error) {
	tx := req.Transaction
	tx.Normalize()
	if err := tx.Validate(); err != nil {
		return domain.PrintResponse{}, err
	}

	// idempotent within one transaction: an existing number is kept
	if tx.TransactionNumber == "" {
		tx.TransactionNumber = s.numbers.Generate()
	}

	logo, ok := s.resolver.Resolve(ctx, s.cfg.LogoPath, s.cfg.LogoWidthDots)
	if !ok {
		s.metrics.BitmapFallback(ctx)
	}

	stream := s.composer.Compose(tx, logo)
	s.metrics.ReceiptComposed(ctx)

	dispatchErr := s.dispatcher.Dispatch(ctx, stream)

	job, recordErr := s.jobs.Record(ctx, buildJob(tx, dispatchErr))
	if recordErr != nil {
		s.log.Error("print job not recorded", zap.Error(recordErr))
	}

	if dispatchErr != nil {
		// draft stays intact so the operator can retry without
		// re-entering the sale
		kind, _ := printer.KindOf(dispatchErr)
		s.metrics.DispatchFailed(ctx, string(kind))
		return domain.PrintResponse{}, dispatchErr
	}

	s.metrics.ReceiptDispatched(ctx)

	if err := s.drafts.ClearTransactionScoped(ctx); err != nil {
		s.log.Error("draft not cleared after print", zap.Error(err))
	}

	return domain.PrintResponse{
		JobID:             job.ID,
		TransactionNumber: tx.TransactionNumber,
		VolumeLiters:      tx.VolumeLiters(),
	}, nil
}

func (s *Service) Preview(ctx context.Context, req domain.PrintRequest) (domain.PreviewResponse, error) {
	tx := req.Transaction
	tx.Normalize()
	if err := tx.Validate(); err != nil {
		return domain.PreviewResponse{}, err
	}

	if tx.TransactionNumber == "" {
		tx.TransactionNumber = s.numbers.Generate()
	}

	return domain.PreviewResponse{
		TransactionNumber: tx.TransactionNumber,
		Text:              s.composer.Text(tx),
	}, nil
}

func buildJob(tx domain.Transaction, dispatchErr error) printjobdomain.PrintJob {
	job := printjobdomain.PrintJob{
		TransactionNumber: tx.TransactionNumber,
		FuelType:          string(tx.FuelType),
		UnitPrice:         tx.UnitPrice,
		TotalAmount:       tx.TotalAmount,
		VolumeLiters:      tx.VolumeLiters(),
		PlateNumber:       tx.PlateNumber,
		OperatorName:      tx.OperatorName,
		Shift:             tx.Shift,
		PumpNumber:        tx.PumpNumber,
		Status:            printjobdomain.StatusPrinted,
	}

	if dispatchErr != nil {
		job.Status = printjobdomain.StatusFailed
		job.ErrorMessage = dispatchErr.Error()
		if kind, ok := printer.KindOf(dispatchErr); ok {
			job.ErrorKind = string(kind)
		} else {
			job.ErrorKind = string(printer.KindUnknown)
		}
	}

	return job
}
