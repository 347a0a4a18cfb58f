package main

import (
	"BPJS_Monitoring_Service/internal/monitor/bootstrap"
	"BPJS_Monitoring_Service/internal/monitor/config"
	"BPJS_Monitoring_Service/internal/monitor/consumer"
	"BPJS_Monitoring_Service/internal/monitor/repository"
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
	zapLogger, err := bootstrap.NewLogger(appConfig.Server, "result-indexer")
	if err != nil {
		log.Fatal(fmt.Sprintf("set up logger error: %v", err))
	}
	defer zapLogger.Sync()

	if len(appConfig.Kafka.Brokers) == 0 {
		zapLogger.Fatal("KAFKA_BROKERS is required")
	}
	if len(appConfig.Elasticsearch.Addresses) == 0 {
		zapLogger.Fatal("ELASTICSEARCH_ADDRESSES is required")
	}

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

	index := repository.NewProbeResultIndex(esClient)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = index.EnsureIndex(ctx)
	cancel()
	if err != nil {
		zapLogger.Fatal("failed to create probe result index", zap.Error(err))
	}

	reader := infra.NewKafkaReader(appConfig.Kafka.Brokers, appConfig.Kafka.ConsumerGroup, appConfig.Kafka.ResultTopic)
	resultConsumer := consumer.NewResultConsumer(reader, index, zapLogger)
	resultConsumer.Start()
	zapLogger.Info("result indexer started", zap.String("topic", appConfig.Kafka.ResultTopic))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
		zapLogger.Info("shutting down result indexer...")
		resultConsumer.Stop()
		<-resultConsumer.Done()
	case <-resultConsumer.Done():
		zapLogger.Warn("result consumer stopped")
	}
	zapLogger.Info("result indexer exiting")
}
