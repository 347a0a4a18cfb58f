package consumer

import (
	"BPJS_Monitoring_Service/internal/monitor/model"
	"BPJS_Monitoring_Service/internal/monitor/repository"
	"BPJS_Monitoring_Service/pkg/infra"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	indexTimeout  = 10 * time.Second
	commitTimeout = 5 * time.Second
)

// ResultConsumer copies probe results published by the cycle into the search index.
type ResultConsumer interface {
	Start()
	Stop()
	Done() <-chan struct{}
}

type resultConsumer struct {
	kafkaReader infra.KafkaReader
	index       repository.ProbeResultIndex
	logger      *zap.Logger
	done        chan struct{}
}

func (r *resultConsumer) Start() {
	go func() {
		defer close(r.done)
		for {
			m, err := r.kafkaReader.FetchMessage(context.Background())
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				r.logger.Error("failed to fetch message", zap.Error(fmt.Errorf("resultConsumer.Start: %w", err)))
				continue
			}
			r.handle(m)
		}
	}()
}

// handle commits poison messages so they are not redelivered. An index failure is not committed, but
// the commit of any later message on the partition moves the offset past it, so the document is
// dropped rather than retried. Only a restart before that commit redelivers it.
func (r *resultConsumer) handle(m kafka.Message) {
	if m.Value == nil {
		r.commit(m)
		return
	}
	var result model.ProbeResult
	if err := json.Unmarshal(m.Value, &result); err != nil {
		r.logger.Error("failed to unmarshal probe result", zap.Error(fmt.Errorf("resultConsumer.handle: %w", err)), zap.Int64("offset", m.Offset))
		r.commit(m)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), indexTimeout)
	err := r.index.IndexResult(ctx, result)
	cancel()
	if err != nil {
		r.logger.Error("failed to index probe result", zap.Error(fmt.Errorf("resultConsumer.handle: %w", err)), zap.String("endpoint", result.EndpointName))
		return
	}
	r.commit(m)
}

func (r *resultConsumer) commit(m kafka.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), commitTimeout)
	defer cancel()
	if err := r.kafkaReader.CommitMessages(ctx, m); err != nil {
		r.logger.Error("failed to commit message", zap.Error(fmt.Errorf("resultConsumer.commit: %w", err)))
	}
}

// Stop closes the reader, FetchMessage then returns io.EOF and the loop exits.
func (r *resultConsumer) Stop() {
	if err := r.kafkaReader.Close(); err != nil {
		r.logger.Error("failed to close kafka reader", zap.Error(err))
	}
}

func (r *resultConsumer) Done() <-chan struct{} {
	return r.done
}

func NewResultConsumer(reader infra.KafkaReader, index repository.ProbeResultIndex, logger *zap.Logger) ResultConsumer {
	return &resultConsumer{
		kafkaReader: reader,
		index:       index,
		logger:      logger,
		done:        make(chan struct{}),
	}
}
