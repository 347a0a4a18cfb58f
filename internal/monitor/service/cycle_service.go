package service

import (
	"BPJS_Monitoring_Service/internal/monitor/alert"
	"BPJS_Monitoring_Service/internal/monitor/classifier"
	apperrors "BPJS_Monitoring_Service/internal/monitor/errors"
	"BPJS_Monitoring_Service/internal/monitor/model"
	"BPJS_Monitoring_Service/internal/monitor/notification"
	"BPJS_Monitoring_Service/internal/monitor/prober"
	"BPJS_Monitoring_Service/internal/monitor/repository"
	"BPJS_Monitoring_Service/pkg/infra"
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const cycleLockKey = "cycle:full"

// Locker excludes concurrent cycles across processes.
type Locker interface {
	Lock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key string) error
}

type CycleOptions struct {
	EndpointDelay  time.Duration
	PersistTimeout time.Duration
	LockTTL        time.Duration
}

type CycleService interface {
	RunCycle(ctx context.Context) (model.CycleSummary, error)
}

type cycleService struct {
	endpoints repository.EndpointConfigRepository
	results   repository.ProbeResultRepository
	prober    prober.Prober
	engine    alert.Engine
	policy    notification.Policy
	publisher infra.KafkaWriter
	locker    Locker
	opts      CycleOptions
	running   atomic.Bool
	logger    *zap.Logger
	now       func() time.Time
}

func (c *cycleService) RunCycle(ctx context.Context) (model.CycleSummary, error) {
	if !c.running.CompareAndSwap(false, true) {
		return model.CycleSummary{}, fmt.Errorf("CycleService.RunCycle: %w", apperrors.ErrCycleInProgress)
	}
	defer c.running.Store(false)

	if c.locker != nil {
		locked, err := c.locker.Lock(ctx, cycleLockKey, c.opts.LockTTL)
		if err != nil {
			return model.CycleSummary{}, fmt.Errorf("CycleService.RunCycle: %w", err)
		}
		if !locked {
			return model.CycleSummary{}, fmt.Errorf("CycleService.RunCycle: %w", apperrors.ErrCycleInProgress)
		}
		defer func() {
			if err := c.locker.Unlock(context.WithoutCancel(ctx), cycleLockKey); err != nil {
				c.logger.Warn("failed to release cycle lock", zap.Error(err))
			}
		}()
	}

	cfgs, err := c.endpoints.GetActiveEndpoints(ctx)
	if err != nil {
		return model.CycleSummary{}, fmt.Errorf("CycleService.RunCycle: %w", err)
	}
	for i := range cfgs {
		if err = cfgs[i].Validate(); err != nil {
			return model.CycleSummary{}, fmt.Errorf("CycleService.RunCycle: %w: %w", apperrors.ErrInvalidEndpointConfig, err)
		}
		cfgs[i] = cfgs[i].WithDefaults()
	}

	startedAt := c.now()
	results := make([]model.ProbeResult, 0, len(cfgs))
	for i, cfg := range cfgs {
		if i > 0 && c.opts.EndpointDelay > 0 {
			timer := time.NewTimer(c.opts.EndpointDelay)
			select {
			case <-ctx.Done():
				timer.Stop()
			case <-timer.C:
			}
		}
		if ctx.Err() != nil {
			break
		}
		result, ok := c.checkEndpoint(ctx, cfg)
		if !ok {
			break
		}
		results = append(results, result)
	}

	summary := model.Summarize(results)
	summary.StartedAt = startedAt
	summary.FinishedAt = c.now()
	c.policy.OnCycle(context.WithoutCancel(ctx), summary)
	c.logger.Info("cycle finished",
		zap.Int("total", summary.Total),
		zap.Int("success", summary.Success),
		zap.Int("error", summary.Error),
		zap.Float64("avg_latency_ms", summary.AvgLatencyMs),
		zap.Float64("uptime_percentage", summary.UptimePercentage),
		zap.Duration("duration", summary.FinishedAt.Sub(summary.StartedAt)),
	)
	if ctx.Err() != nil {
		return summary, fmt.Errorf("CycleService.RunCycle: cycle interrupted after %d of %d endpoints: %w", len(results), len(cfgs), ctx.Err())
	}
	return summary, nil
}

// checkEndpoint logs side-effect errors and keeps the probe result. It reports false when the cycle
// was cancelled mid-request; that result describes the cancellation, not the endpoint, and is dropped.
func (c *cycleService) checkEndpoint(ctx context.Context, cfg model.EndpointConfig) (model.ProbeResult, bool) {
	raw := c.prober.Probe(ctx, cfg)
	if ctx.Err() != nil && raw.IsTransportFailure() {
		c.logger.Warn("probe interrupted by cycle cancellation, result dropped",
			zap.String("endpoint", cfg.Name),
			zap.String("error_details", raw.ErrorDetails),
		)
		return model.ProbeResult{}, false
	}
	result := classifier.Apply(raw, cfg)

	sideCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.opts.PersistTimeout)
	defer cancel()

	if err := c.results.CreateResult(sideCtx, result); err != nil {
		c.logger.Error("failed to persist probe result", zap.String("endpoint", cfg.Name), zap.Error(err))
	}
	if err := c.publish(sideCtx, result); err != nil {
		c.logger.Error("failed to publish probe result", zap.String("endpoint", cfg.Name), zap.Error(err))
	}
	events, err := c.engine.Evaluate(sideCtx, cfg, result)
	if err != nil {
		c.logger.Error("failed to evaluate alerts", zap.String("endpoint", cfg.Name), zap.Error(err))
	}
	c.policy.OnResult(sideCtx, cfg, result)
	c.policy.OnAlertEvents(sideCtx, events)

	c.logger.Info("endpoint checked",
		zap.String("endpoint", cfg.Name),
		zap.String("outcome", result.Outcome),
		zap.String("status_code", result.StatusCode),
		zap.Int64("latency_ms", result.LatencyMs),
		zap.String("severity", result.Severity),
	)
	return result, true
}

func (c *cycleService) publish(ctx context.Context, result model.ProbeResult) error {
	if c.publisher == nil {
		return nil
	}
	value, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("CycleService.publish: %w", err)
	}
	err = c.publisher.WriteMessages(ctx, kafka.Message{
		Key:   []byte(result.EndpointName),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("CycleService.publish: %w", err)
	}
	return nil
}

func NewCycleService(endpoints repository.EndpointConfigRepository, results repository.ProbeResultRepository, prober prober.Prober, engine alert.Engine, policy notification.Policy, publisher infra.KafkaWriter, locker Locker, opts CycleOptions, logger *zap.Logger) CycleService {
	if opts.PersistTimeout <= 0 {
		opts.PersistTimeout = 5 * time.Second
	}
	if opts.LockTTL <= 0 {
		opts.LockTTL = 10 * time.Minute
	}
	return &cycleService{
		endpoints: endpoints,
		results:   results,
		prober:    prober,
		engine:    engine,
		policy:    policy,
		publisher: publisher,
		locker:    locker,
		opts:      opts,
		logger:    logger,
		now:       time.Now,
	}
}
