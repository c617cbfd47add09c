package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"sales_analyzer/internal/config"
	"sales_analyzer/internal/handlers"
	"sales_analyzer/internal/redis"
	"sales_analyzer/internal/report"
	"sales_analyzer/internal/services"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		PadLevelText:    true,
		TimestampFormat: time.DateTime,
	})

	// Load configuration
	cfg := config.Load()

	params := report.Params{
		GSTMultiplier:       cfg.GSTMultiplier,
		WebsiteFeeRate:      cfg.WebsiteFeeRate,
		ShippingFlatRate:    cfg.ShippingFlatRate,
		ShippingPerKGRate:   cfg.ShippingPerKGRate,
		ShippingFlatLimitKG: cfg.ShippingFlatLimitKG,
		ProfitBase:          report.ProfitBase(cfg.ProfitBase),
	}
	switch params.ProfitBase {
	case report.ProfitBaseGST, report.ProfitBaseDiscounted:
	default:
		logrus.Fatalf("PROFIT_BASE must be %q or %q, got %q", report.ProfitBaseGST, report.ProfitBaseDiscounted, cfg.ProfitBase)
	}
	if params.GSTMultiplier == report.LegacyGSTMultiplier {
		logrus.Warnf("GST_MULTIPLIER %.2f looks like the pre-correction value; expected %.2f for 18%% GST", params.GSTMultiplier, report.DefaultGSTMultiplier)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		logrus.Fatal("Failed to connect to Redis: ", err)
	}
	defer redisClient.Close()

	// Initialize services
	reportService := services.NewReportService(redisClient, params, time.Duration(cfg.ReportTTL)*time.Second)

	// Initialize handlers
	reportHandler := handlers.NewReportHandler(reportService, cfg.MaxUploadSize)

	// Setup routes
	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.POST("/reports", reportHandler.GenerateReport)
		api.GET("/reports/:token/download", reportHandler.DownloadReport)
		api.POST("/sources", reportHandler.ListSources)
	}

	// Start server
	logrus.Infof("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		logrus.Fatal("Failed to start server: ", err)
	}
}
