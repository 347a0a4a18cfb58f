package main

import (
	"BPJS_Monitoring_Service/internal/monitor/bootstrap"
	"BPJS_Monitoring_Service/internal/monitor/config"
	"BPJS_Monitoring_Service/internal/monitor/repository"
	"BPJS_Monitoring_Service/internal/monitor/scheduler"
	"BPJS_Monitoring_Service/internal/monitor/service"
	"BPJS_Monitoring_Service/pkg/infra"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	zapLogger, err := bootstrap.NewLogger(appConfig.Server, "monitor")
	if err != nil {
		log.Fatal(fmt.Sprintf("set up logger error: %v", err))
	}
	defer zapLogger.Sync()

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

	// set up kafka
	var publisher infra.KafkaWriter
	if len(appConfig.Kafka.Brokers) > 0 {
		kafkaWriter := infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.ResultTopic)
		defer kafkaWriter.Close()
		publisher = kafkaWriter
	} else {
		zapLogger.Warn("KAFKA_BROKERS is empty, probe results will not be published")
	}

	// set up dependencies
	cooldownStore := repository.NewRedisCooldownRepository(redisClient, time.Now)
	policy := bootstrap.NewPolicy(appConfig, cooldownStore, zapLogger)
	cycleService := bootstrap.NewCycleService(appConfig, db, redisClient, publisher, policy, cooldownStore, zapLogger)
	deviceService := service.NewDeviceService(repository.NewSensorRepository(db), policy, appConfig.Sensor.Devices, appConfig.Sensor.OfflineMinutes, zapLogger)

	jobs := []scheduler.Job{
		{
			Name:    "monitoring-cycle",
			Spec:    appConfig.Monitor.CycleSchedule,
			Timeout: appConfig.Monitor.CycleLockTTL,
			Run: func(ctx context.Context) error {
				_, e := cycleService.RunCycle(ctx)
				return e
			},
		},
		{
			Name:    "device-offline-sweep",
			Spec:    appConfig.Monitor.SweepSchedule,
			Timeout: time.Minute,
			Run: func(ctx context.Context) error {
				_, e := deviceService.SweepOfflineDevices(ctx)
				return e
			},
		},
	}
	s, err := scheduler.NewScheduler(zapLogger, jobs...)
	if err != nil {
		zapLogger.Fatal("failed to create scheduler", zap.Error(err))
	}
	s.Start()
	zapLogger.Info("monitor started", zap.String("cycle_schedule", appConfig.Monitor.CycleSchedule), zap.String("sweep_schedule", appConfig.Monitor.SweepSchedule))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down monitor...")
	s.Stop()
	zapLogger.Info("monitor exiting")
}
