package main

import (
	"BPJS_Monitoring_Service/internal/monitor/api/handler"
	"BPJS_Monitoring_Service/internal/monitor/api/routes"
	"BPJS_Monitoring_Service/internal/monitor/bootstrap"
	"BPJS_Monitoring_Service/internal/monitor/config"
	"BPJS_Monitoring_Service/internal/monitor/repository"
	"BPJS_Monitoring_Service/internal/monitor/scheduler"
	"BPJS_Monitoring_Service/internal/monitor/service"
	"BPJS_Monitoring_Service/pkg/infra"
	"BPJS_Monitoring_Service/pkg/mail"
	"BPJS_Monitoring_Service/pkg/middleware"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	zapLogger, err := bootstrap.NewLogger(appConfig.Server, "monitor-api")
	if err != nil {
		log.Fatal(fmt.Sprintf("set up logger error: %v", err))
	}
	defer zapLogger.Sync()

	if len(appConfig.Elasticsearch.Addresses) == 0 {
		zapLogger.Fatal("ELASTICSEARCH_ADDRESSES is required")
	}

	// set up database
	db, err := bootstrap.NewPostgres(appConfig.Postgres)
	if err != nil {
		zapLogger.Fatal("failed to connect to postgres", zap.Error(err))
	} else {
		zapLogger.Info("connected to postgres successfully")
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to get sql.DB from gorm:", zap.Error(err))
	}
	defer sqlDB.Close()

	// set up redis
	redisClient, err := bootstrap.NewRedis(appConfig.Redis)
	if err != nil {
		zapLogger.Fatal("failed to connect to redis", zap.Error(err))
	} else {
		zapLogger.Info("connected to redis successfully")
	}
	defer redisClient.Close()

	// set up elasticsearch
	esClient, err := infra.NewElasticSearchConnection(infra.ElasticsearchConfig{
		Addresses: appConfig.Elasticsearch.Addresses,
		Username:  appConfig.Elasticsearch.Username,
		Password:  appConfig.Elasticsearch.Password,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to elasticsearch", zap.Error(err))
	} else {
		zapLogger.Info("connected to elasticsearch successfully")
	}
	probeResultIndex := repository.NewProbeResultIndex(esClient)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = probeResultIndex.EnsureIndex(ctx)
	cancel()
	if err != nil {
		zapLogger.Fatal("failed to create probe result index", zap.Error(err))
	}

	// set up kafka
	var publisher infra.KafkaWriter
	if len(appConfig.Kafka.Brokers) > 0 {
		kafkaWriter := infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.ResultTopic)
		defer kafkaWriter.Close()
		publisher = kafkaWriter
	}

	// set up dependencies
	cooldownStore := repository.NewRedisCooldownRepository(redisClient, time.Now)
	policy := bootstrap.NewPolicy(appConfig, cooldownStore, zapLogger)
	mailSender := mail.NewMailSender(appConfig.Mail.Email, appConfig.Mail.Password, appConfig.Mail.Host, appConfig.Mail.Port)

	endpointService := service.NewEndpointService(bootstrap.NewEndpointRepository(appConfig, db, redisClient), repository.NewProbeResultRepository(db), probeResultIndex)
	cycleService := bootstrap.NewCycleService(appConfig, db, redisClient, publisher, policy, cooldownStore, zapLogger)
	probeService := bootstrap.NewProbeService(appConfig, policy)
	alertService := service.NewAlertService(repository.NewAlertRepository(db))
	deviceService := service.NewDeviceService(repository.NewSensorRepository(db), policy, appConfig.Sensor.Devices, appConfig.Sensor.OfflineMinutes, zapLogger)
	reportService := service.NewReportService(probeResultIndex, mailSender)

	endpointHandler := handler.NewEndpointHandler(zapLogger, endpointService)
	probeHandler := handler.NewProbeHandler(zapLogger, probeService, cycleService)
	alertHandler := handler.NewAlertHandler(zapLogger, alertService)
	deviceHandler := handler.NewDeviceHandler(zapLogger, deviceService)
	reportHandler := handler.NewReportHandler(zapLogger, reportService, appConfig.Mail.ReportRecipients)

	m := middleware.NewAuthMiddleware(appConfig.Server.APIKey)

	// daily report
	var reportScheduler scheduler.Scheduler
	if appConfig.Mail.Enabled() && len(appConfig.Mail.ReportRecipients) > 0 {
		reportScheduler, err = scheduler.NewScheduler(zapLogger, scheduler.Job{
			Name:    "daily-report",
			Spec:    appConfig.Monitor.ReportSchedule,
			Timeout: time.Minute,
			Run: func(ctx context.Context) error {
				now := time.Now()
				return reportService.SendReport(ctx, now.Add(-24*time.Hour), now, appConfig.Mail.ReportRecipients)
			},
		})
		if err != nil {
			zapLogger.Fatal("failed to create cron job for daily report", zap.Error(err))
		}
		reportScheduler.Start()
	} else {
		zapLogger.Warn("daily report disabled, smtp credentials or MAIL_REPORT_RECIPIENTS missing")
	}

	// Set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	routes.AddEndpointRoutes(r, endpointHandler, m)
	routes.AddProbeRoutes(r, probeHandler, m)
	routes.AddAlertRoutes(r, alertHandler, m)
	routes.AddDeviceRoutes(r, deviceHandler, m)
	routes.AddReportRoutes(r, reportHandler, m)

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins: appConfig.Server.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.HeaderAPIKey, middleware.HeaderUserScopes},
		MaxAge:         300,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: corsHandler(r),
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	if reportScheduler != nil {
		reportScheduler.Stop()
	}
	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}
