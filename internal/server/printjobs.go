package server

import (
	"io"
	"net/http"
	"strconv"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	printjobdomain "github.com/smallbiznis/pompabon/internal/printjob/domain"
	"github.com/smallbiznis/pompabon/internal/providers/pdf"
	"github.com/smallbiznis/pompabon/internal/receipt/format"
)

func (s *Server) ListPrintJobs(c *gin.Context) {
	pageSize := int32(10)
	if raw := c.Query("page_size"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 32); err == nil {
			pageSize = int32(parsed)
		}
	}

	resp, err := s.jobSvc.List(c.Request.Context(), printjobdomain.ListRequest{
		PageToken: c.Query("page_token"),
		PageSize:  pageSize,
		Status:    c.Query("status"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) PrintJobPDF(c *gin.Context) {
	id, err := snowflake.ParseString(c.Param("id"))
	if err != nil {
		AbortWithError(c, printjobdomain.ErrInvalidID)
		return
	}

	job, err := s.jobSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	reader, err := s.pdfSvc.GenerateReceipt(c.Request.Context(), pdf.ReceiptData{
		StationSiteCode:   s.cfg.StationSiteCode,
		StationName:       s.cfg.StationName,
		StationAddress:    s.cfg.StationAddress,
		TransactionNumber: job.TransactionNumber,
		PrintedAt:         job.CreatedAt.Format("02/01/2006 15:04:05"),
		FuelType:          job.FuelType,
		UnitPrice:         format.Rupiah(job.UnitPrice),
		VolumeLiters:      format.Volume(job.VolumeLiters),
		Total:             format.Rupiah(job.TotalAmount),
		PlateNumber:       job.PlateNumber,
		OperatorName:      job.OperatorName,
		Shift:             job.Shift,
		PumpNumber:        job.PumpNumber,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	doc, err := io.ReadAll(reader)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="receipt-`+job.TransactionNumber+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}
