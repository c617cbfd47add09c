package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"sales_analyzer/internal/excel"
	"sales_analyzer/internal/models"
	"sales_analyzer/internal/redis"
	"sales_analyzer/internal/report"
	"sales_analyzer/internal/services"
)

type ReportHandler struct {
	reportService services.ReportService
	maxUploadSize int64
}

func NewReportHandler(reportService services.ReportService, maxUploadSize int64) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		maxUploadSize: maxUploadSize,
	}
}

// GenerateReport accepts the order ledger and cost table as multipart
// files plus the filter/sort selections, runs the pipeline and returns
// the per-channel tables, summaries, warnings and download links.
func (h *ReportHandler) GenerateReport(c *gin.Context) {
	orders, ok := h.readUpload(c, "orders", report.OrderFileLabel)
	if !ok {
		return
	}
	costs, ok := h.readUpload(c, "costs", report.CostFileLabel)
	if !ok {
		return
	}

	req, ok := parseRequest(c)
	if !ok {
		return
	}

	resp, err := h.reportService.GenerateReport(c.Request.Context(), orders, costs, req)
	if err != nil {
		var schemaErr *report.SchemaError
		if errors.As(err, &schemaErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": schemaErr.Error()})
			return
		}
		logrus.WithError(err).Error("report generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "report generation failed"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListSources accepts the order ledger alone and returns its distinct
// normalized source labels for the explicit-subset selection.
func (h *ReportHandler) ListSources(c *gin.Context) {
	orders, ok := h.readUpload(c, "orders", report.OrderFileLabel)
	if !ok {
		return
	}

	sources, err := h.reportService.ListSources(orders)
	if err != nil {
		var schemaErr *report.SchemaError
		if errors.As(err, &schemaErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": schemaErr.Error()})
			return
		}
		logrus.WithError(err).Error("source listing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "source listing failed"})
		return
	}

	c.JSON(http.StatusOK, models.SourcesResponse{Sources: sources})
}

// DownloadReport streams a previously generated artifact by token. Links
// expire with the artifact TTL.
func (h *ReportHandler) DownloadReport(c *gin.Context) {
	token := c.Param("token")

	artifact, err := h.reportService.GetArtifact(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, redis.ErrArtifactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "download expired or not found"})
			return
		}
		logrus.WithError(err).Error("artifact fetch failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "download failed"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+artifact.FileName)
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

// readUpload pulls one multipart file and parses it into a table,
// writing the error response itself when anything fails.
func (h *ReportHandler) readUpload(c *gin.Context, field, label string) (models.Table, bool) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": label + " upload is required"})
		return models.Table{}, false
	}
	if fileHeader.Size > h.maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": label + " exceeds the upload size limit"})
		return models.Table{}, false
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open " + label})
		return models.Table{}, false
	}
	defer f.Close()

	table, err := excel.ReadTable(f, label)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse " + label})
		return models.Table{}, false
	}
	return table, true
}

func parseRequest(c *gin.Context) (report.Request, bool) {
	req := report.Request{
		Filter:  report.FilterPolicy(c.DefaultPostForm("filter", string(report.FilterAll))),
		Sources: c.PostFormArray("sources"),
		SortBy:  c.PostForm("sort_by"),
	}

	switch req.Filter {
	case report.FilterWebsite, report.FilterOffice, report.FilterSubset, report.FilterAll:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown filter policy"})
		return report.Request{}, false
	}

	switch dir := c.DefaultPostForm("sort_dir", "asc"); dir {
	case "asc":
	case "desc":
		req.SortDesc = true
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "sort_dir must be asc or desc"})
		return report.Request{}, false
	}

	return req, true
}
