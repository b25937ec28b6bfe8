package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/pompabon/pkg/db/pagination"
	"gorm.io/gorm"
)

const (
	StatusPrinted = "printed"
	StatusFailed  = "failed"
)

// PrintJob records one dispatch attempt, successful or not. The history
// is the audit trail behind the non-unique transaction numbers.
type PrintJob struct {
	ID                snowflake.ID `gorm:"primaryKey" json:"id,string"`
	TransactionNumber string       `gorm:"size:16;index" json:"transaction_number"`
	FuelType          string       `gorm:"size:32" json:"fuel_type"`
	UnitPrice         float64      `json:"unit_price"`
	TotalAmount       float64      `json:"total_amount"`
	VolumeLiters      float64      `json:"volume_liters"`
	PlateNumber       string       `gorm:"size:16" json:"plate_number"`
	OperatorName      string       `gorm:"size:64" json:"operator_name"`
	Shift             string       `gorm:"size:16" json:"shift"`
	PumpNumber        string       `gorm:"size:16" json:"pump_number"`
	Status            string       `gorm:"size:16;index" json:"status"`
	ErrorKind         string       `gorm:"size:32" json:"error_kind,omitempty"`
	ErrorMessage      string       `json:"error_message,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
}

func (PrintJob) TableName() string {
	return "print_jobs"
}

type ListRequest struct {
	PageToken string
	PageSize  int32
	Status    string
}

type ListResponse struct {
	pagination.PageInfo
	Jobs []PrintJob `json:"jobs"`
}

type ListFilter struct {
	Status string
}

var (
	ErrInvalidID = errors.New("invalid_id")
	ErrNotFound  = errors.New("not_found")
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, job *PrintJob) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*PrintJob, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter, page pagination.Pagination) ([]*PrintJob, error)
}

type Service interface {
	Record(ctx context.Context, job PrintJob) (PrintJob, error)
	GetByID(ctx context.Context, id snowflake.ID) (PrintJob, error)
	List(ctx context.Context, req ListRequest) (ListResponse, error)
}
