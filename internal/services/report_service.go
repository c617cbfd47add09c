package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"sales_analyzer/internal/excel"
	"sales_analyzer/internal/models"
	"sales_analyzer/internal/report"
)

// ArtifactStore caches generated downloads until their TTL elapses.
// Implemented by the Redis client.
type ArtifactStore interface {
	SaveArtifact(ctx context.Context, token string, artifact *models.Artifact, ttl time.Duration) error
	GetArtifact(ctx context.Context, token string) (*models.Artifact, error)
}

type ReportService interface {
	GenerateReport(ctx context.Context, orders, costs models.Table, req report.Request) (*models.ReportResponse, error)
	GetArtifact(ctx context.Context, token string) (*models.Artifact, error)
	ListSources(orders models.Table) ([]string, error)
}

type reportService struct {
	store  ArtifactStore
	params report.Params
	ttl    time.Duration
}

func NewReportService(store ArtifactStore, params report.Params, ttl time.Duration) ReportService {
	return &reportService{store: store, params: params, ttl: ttl}
}

// GenerateReport runs the pipeline on the two uploaded tables and caches
// the xlsx/csv artifacts for download. Everything is recomputed from the
// uploads on every call; nothing survives past the artifact TTL.
func (s *reportService) GenerateReport(ctx context.Context, orders, costs models.Table, req report.Request) (*models.ReportResponse, error) {
	started := time.Now()

	result, err := report.Run(orders, costs, req, s.params)
	if err != nil {
		return nil, err
	}

	if result.Empty() {
		logrus.WithFields(logrus.Fields{
			"filter":     req.Filter,
			"order_rows": len(orders.Rows),
		}).Info("report matched no orders")
		return &models.ReportResponse{Status: models.StatusNoMatching}, nil
	}

	resp := &models.ReportResponse{Status: models.StatusOK}
	if warning := report.UnmatchedWarning(result.UnmatchedSKUs); warning != "" {
		resp.Warnings = append(resp.Warnings, warning)
	}

	var combined []excel.Sheet
	if result.Website != nil {
		resp.Website = &models.ChannelReport{
			Orders:  result.Website.Orders,
			Summary: result.Website.Summary,
		}
		sheets := []excel.Sheet{
			{Name: "Website Orders", Table: result.Website.Orders},
			{Name: "Website Summary", Table: result.Website.Summary},
		}
		combined = append(combined, sheets...)
		if err := s.addWorkbook(ctx, resp, "website_orders.xlsx", sheets); err != nil {
			return nil, err
		}
		if err := s.addCSV(ctx, resp, "website_orders.csv", result.Website.Orders); err != nil {
			return nil, err
		}
	}
	if result.Office != nil {
		resp.Office = &models.ChannelReport{
			Orders:  result.Office.Orders,
			Summary: result.Office.Summary,
		}
		sheets := []excel.Sheet{
			{Name: "Office Orders", Table: result.Office.Orders},
			{Name: "Office Summary", Table: result.Office.Summary},
		}
		combined = append(combined, sheets...)
		if err := s.addWorkbook(ctx, resp, "office_orders.xlsx", sheets); err != nil {
			return nil, err
		}
		if err := s.addCSV(ctx, resp, "office_orders.csv", result.Office.Orders); err != nil {
			return nil, err
		}
	}
	if err := s.addWorkbook(ctx, resp, "combined_orders.xlsx", combined); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"filter":         req.Filter,
		"order_rows":     len(orders.Rows),
		"website_rows":   channelRows(result.Website),
		"office_rows":    channelRows(result.Office),
		"unmatched_skus": len(result.UnmatchedSKUs),
		"duration":       time.Since(started).String(),
	}).Info("report generated")

	return resp, nil
}

func (s *reportService) GetArtifact(ctx context.Context, token string) (*models.Artifact, error) {
	return s.store.GetArtifact(ctx, token)
}

// ListSources returns the distinct normalized source labels of an order
// ledger, for the explicit-subset selection UI.
func (s *reportService) ListSources(orders models.Table) ([]string, error) {
	if err := report.ValidateSchema(orders, []string{models.ColOrderFrom}, report.OrderFileLabel); err != nil {
		return nil, err
	}
	return report.DistinctSources(orders), nil
}

func (s *reportService) addWorkbook(ctx context.Context, resp *models.ReportResponse, name string, sheets []excel.Sheet) error {
	data, err := excel.WriteWorkbook(sheets)
	if err != nil {
		return fmt.Errorf("failed to build %s: %w", name, err)
	}
	return s.addArtifact(ctx, resp, name, excel.ContentTypeXLSX, data)
}

func (s *reportService) addCSV(ctx context.Context, resp *models.ReportResponse, name string, table models.Table) error {
	data, err := excel.WriteCSV(table)
	if err != nil {
		return fmt.Errorf("failed to build %s: %w", name, err)
	}
	return s.addArtifact(ctx, resp, name, excel.ContentTypeCSV, data)
}

func (s *reportService) addArtifact(ctx context.Context, resp *models.ReportResponse, name, contentType string, data []byte) error {
	token := uuid.New().String()
	artifact := &models.Artifact{FileName: name, ContentType: contentType, Data: data}
	if err := s.store.SaveArtifact(ctx, token, artifact, s.ttl); err != nil {
		return fmt.Errorf("failed to store %s: %w", name, err)
	}
	resp.Downloads = append(resp.Downloads, models.DownloadLink{
		Name: name,
		URL:  "/api/reports/" + token + "/download",
	})
	return nil
}

func channelRows(c *report.ChannelResult) int {
	if c == nil {
		return 0
	}
	return len(c.Orders.Rows)
}
