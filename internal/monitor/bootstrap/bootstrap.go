// Package bootstrap wires the shared dependencies of the monitor binaries from AppConfig.
package bootstrap

import (
	"BPJS_Monitoring_Service/internal/monitor/alert"
	"BPJS_Monitoring_Service/internal/monitor/config"
	"BPJS_Monitoring_Service/internal/monitor/notification"
	"BPJS_Monitoring_Service/internal/monitor/prober"
	"BPJS_Monitoring_Service/internal/monitor/repository"
	"BPJS_Monitoring_Service/internal/monitor/service"
	"BPJS_Monitoring_Service/pkg/infra"
	"BPJS_Monitoring_Service/pkg/logger"
	"BPJS_Monitoring_Service/pkg/mail"
	"BPJS_Monitoring_Service/pkg/slack"
	"BPJS_Monitoring_Service/pkg/whatsapp"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	ChannelWhatsapp = "whatsapp"
	ChannelSlack    = "slack"
	ChannelMail     = "mail"
)

// NewLogger writes to <LOG_DIR>/<serviceName>.log and stderr. With external rotation the file is
// reopened on SIGHUP.
func NewLogger(cfg config.ServerConfig, serviceName string) (*zap.Logger, error) {
	file := filepath.Join(cfg.LogDir, serviceName+".log")
	fileSyncer, reload, err := logger.NewFileSyncer(file, cfg.LogRotation, logger.RotationConfig{
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})
	if err != nil {
		return nil, err
	}
	zapLogger := logger.NewLogger(cfg.LogLevel, fileSyncer).With(zap.String("service.name", serviceName))
	if reload != nil {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGHUP)
		go func() {
			for range c {
				zapLogger.Info("receive logrotate SIGHUP, reloading log file")
				if e := reload(); e != nil {
					zapLogger.Error("failed to reload log file", zap.Error(e))
				} else {
					zapLogger.Info("successfully reloaded log file")
				}
			}
		}()
	}
	return zapLogger, nil
}

func NewPostgres(cfg config.PostgresConfig) (*gorm.DB, error) {
	return infra.NewPostgresConnection(infra.PostgresConfig{
		Host:         cfg.Host,
		Port:         cfg.Port,
		User:         cfg.User,
		Password:     cfg.Password,
		DBName:       cfg.DBName,
		SSLMode:      cfg.SSLMode,
		MaxOpenConns: cfg.MaxOpenConns,
	})
}

func NewRedis(cfg config.RedisConfig) (*redis.Client, error) {
	return infra.NewRedisConnection(infra.RedisConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// NewDeliverer fans out to every configured channel. Channels without credentials are skipped,
// and with none left every send fails with ErrDeliveryDisabled.
func NewDeliverer(cfg config.AppConfig, logger *zap.Logger) notification.Deliverer {
	n := cfg.Notification
	var deliverers []notification.Deliverer
	for _, channel := range n.Channels {
		switch strings.ToLower(strings.TrimSpace(channel)) {
		case ChannelWhatsapp:
			if n.FonnteToken == "" || n.FonnteTarget == "" {
				logger.Warn("whatsapp channel disabled, FONNTE_TOKEN or FONNTE_TARGET is empty")
				continue
			}
			deliverers = append(deliverers, notification.NewWhatsappDeliverer(whatsapp.NewClient(n.FonnteBaseURL, n.FonnteToken, n.DeliveryTimeout)))
		case ChannelSlack:
			if n.SlackWebhookURL == "" {
				logger.Warn("slack channel disabled, SLACK_WEBHOOK_URL is empty")
				continue
			}
			deliverers = append(deliverers, notification.NewSlackDeliverer(slack.NewWebhook(n.SlackWebhookURL, n.DeliveryTimeout)))
		case ChannelMail:
			if !cfg.Mail.Enabled() || len(n.MailRecipients) == 0 {
				logger.Warn("mail channel disabled, smtp credentials or NOTIFY_MAIL_RECIPIENTS missing")
				continue
			}
			sender := mail.NewMailSender(cfg.Mail.Email, cfg.Mail.Password, cfg.Mail.Host, cfg.Mail.Port)
			deliverers = append(deliverers, notification.NewMailDeliverer(sender, n.MailRecipients))
		case "":
		default:
			logger.Warn("unknown notification channel", zap.String("channel", channel))
		}
	}
	return notification.NewFanOutDeliverer(logger, deliverers...)
}

func NewPolicy(cfg config.AppConfig, store notification.CooldownStore, logger *zap.Logger) notification.Policy {
	lockTTL := notification.LockTTL(cfg.Notification.DeliveryTimeout, len(cfg.Notification.Channels))
	gate := notification.NewGate(store, NewDeliverer(cfg, logger), cfg.Notification.FonnteTarget, lockTTL, logger)
	return notification.NewPolicy(gate, notification.PolicyConfig{
		NoteworthyCodes:     cfg.Monitor.NoteworthyCodes,
		EndpointCooldown:    cfg.Notification.EndpointCooldown,
		CriticalCooldown:    cfg.Notification.CriticalCooldown,
		SlowCooldown:        cfg.Notification.SlowCooldown,
		DiagnosisCooldown:   cfg.Notification.DiagnosisCooldown,
		ConsecutiveCooldown: cfg.Notification.ConsecutiveCooldown,
		OfflineCooldown:     cfg.Sensor.OfflineCooldown,
		OfflineMinutes:      cfg.Sensor.OfflineMinutes,
	}, logger, time.Now)
}

// NewProber signs requests only when the API credentials are configured.
func NewProber(cfg config.AppConfig) prober.Prober {
	var signer prober.Signer
	if cfg.Signature.Enabled() {
		signer = prober.NewSigner(cfg.Signature.ConsID, cfg.Signature.SecretKey, cfg.Signature.UserKey, time.Now)
	}
	return prober.NewProber(&http.Client{}, signer, cfg.Monitor.UserAgent)
}

func NewEndpointRepository(cfg config.AppConfig, db *gorm.DB, redisClient *redis.Client) repository.EndpointConfigRepository {
	return repository.NewCachedEndpointConfigRepository(redisClient, repository.NewEndpointConfigRepository(db), cfg.Redis.EndpointCacheTTL)
}

// NewCycleService wires the full cycle. publisher may be nil, which turns off result publishing.
func NewCycleService(cfg config.AppConfig, db *gorm.DB, redisClient *redis.Client, publisher infra.KafkaWriter, policy notification.Policy, locker service.Locker, logger *zap.Logger) service.CycleService {
	results := repository.NewProbeResultRepository(db)
	engine := alert.NewEngine(results, repository.NewAlertRepository(db), cfg.Monitor.DowntimeWindow, time.Now)
	return service.NewCycleService(
		NewEndpointRepository(cfg, db, redisClient),
		results,
		NewProber(cfg),
		engine,
		policy,
		publisher,
		locker,
		service.CycleOptions{
			EndpointDelay:  cfg.Monitor.EndpointDelay,
			PersistTimeout: cfg.Monitor.PersistTimeout,
			LockTTL:        cfg.Monitor.CycleLockTTL,
		},
		logger,
	)
}

func NewProbeService(cfg config.AppConfig, policy notification.Policy) service.ProbeService {
	return service.NewProbeService(NewProber(cfg), policy, service.ProbeOptions{
		SignedHostSuffix:  cfg.Signature.HostSuffix,
		BodyPreviewLength: cfg.Monitor.BodyPreviewLength,
	})
}
