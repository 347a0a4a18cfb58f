package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server        ServerConfig
	Postgres      PostgresConfig
	Redis         RedisConfig
	Kafka         KafkaConfig
	Elasticsearch ElasticsearchConfig
	Mail          MailConfig
	Monitor       MonitorConfig
	Signature     SignatureConfig
	Notification  NotificationConfig
	Sensor        SensorConfig
}

type ServerConfig struct {
	Port          string `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	LogDir        string `envconfig:"LOG_DIR" default:"./log"`
	LogRotation   string `envconfig:"LOG_ROTATION" default:"external"`
	LogMaxSizeMB  int    `envconfig:"LOG_MAX_SIZE_MB" default:"100"`
	LogMaxBackups int    `envconfig:"LOG_MAX_BACKUPS" default:"7"`
	LogMaxAgeDays int    `envconfig:"LOG_MAX_AGE_DAYS" default:"30"`

	APIKey             string   `envconfig:"API_KEY"`
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

type PostgresConfig struct {
	Host         string `envconfig:"POSTGRES_HOST" required:"true"`
	Port         int    `envconfig:"POSTGRES_PORT" required:"true"`
	User         string `envconfig:"POSTGRES_USER" required:"true"`
	Password     string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	DBName       string `envconfig:"POSTGRES_DB" required:"true"`
	SSLMode      string `envconfig:"POSTGRES_SSLMODE" default:"disable"`
	MaxOpenConns int    `envconfig:"POSTGRES_MAX_OPEN_CONNS" default:"10"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" required:"true"`
	Port     int    `envconfig:"REDIS_PORT" required:"true"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`

	EndpointCacheTTL time.Duration `envconfig:"REDIS_ENDPOINT_CACHE_TTL" default:"5m"`
}

// KafkaConfig with no brokers disables result publishing.
type KafkaConfig struct {
	Brokers       []string `envconfig:"KAFKA_BROKERS"`
	ResultTopic   string   `envconfig:"KAFKA_RESULT_TOPIC" default:"probe_results"`
	ConsumerGroup string   `envconfig:"KAFKA_CONSUMER_GROUP" default:"result-indexer"`
}

type ElasticsearchConfig struct {
	Addresses []string `envconfig:"ELASTICSEARCH_ADDRESSES"`
	Username  string   `envconfig:"ELASTICSEARCH_USERNAME"`
	Password  string   `envconfig:"ELASTICSEARCH_PASSWORD"`
}

type MailConfig struct {
	Email            string   `envconfig:"MAIL_EMAIL"`
	Password         string   `envconfig:"MAIL_PASSWORD"`
	Host             string   `envconfig:"MAIL_HOST"`
	Port             int      `envconfig:"MAIL_PORT" default:"587"`
	ReportRecipients []string `envconfig:"MAIL_REPORT_RECIPIENTS"`
}

// Enabled reports whether SMTP credentials were supplied.
func (m MailConfig) Enabled() bool {
	return m.Email != "" && m.Host != ""
}

type MonitorConfig struct {
	CycleSchedule     string        `envconfig:"MONITOR_CYCLE_SCHEDULE" default:"*/5 * * * *"`
	SweepSchedule     string        `envconfig:"MONITOR_SWEEP_SCHEDULE" default:"* * * * *"`
	ReportSchedule    string        `envconfig:"MONITOR_REPORT_SCHEDULE" default:"0 0 * * *"`
	EndpointDelay     time.Duration `envconfig:"MONITOR_ENDPOINT_DELAY" default:"100ms"`
	DowntimeWindow    time.Duration `envconfig:"MONITOR_DOWNTIME_WINDOW" default:"15m"`
	UserAgent         string        `envconfig:"MONITOR_USER_AGENT" default:"BPJS-Monitoring/1.0"`
	NoteworthyCodes   []string      `envconfig:"MONITOR_NOTEWORTHY_CODES" default:"201,404"`
	BodyPreviewLength int           `envconfig:"MONITOR_BODY_PREVIEW_LENGTH" default:"200"`
	PersistTimeout    time.Duration `envconfig:"MONITOR_PERSIST_TIMEOUT" default:"5s"`
	RegistryFile      string        `envconfig:"MONITOR_REGISTRY_FILE" default:"endpoints.yaml"`
	CycleLockTTL      time.Duration `envconfig:"MONITOR_CYCLE_LOCK_TTL" default:"10m"`
}

// SignatureConfig holds credentials of the authenticated API. Empty credentials disable signing.
type SignatureConfig struct {
	ConsID     string `envconfig:"BPJS_CONS_ID"`
	SecretKey  string `envconfig:"BPJS_SECRET_KEY"`
	UserKey    string `envconfig:"BPJS_USER_KEY"`
	HostSuffix string `envconfig:"BPJS_HOST_SUFFIX" default:"bpjs-kesehatan.go.id"`
}

func (s SignatureConfig) Enabled() bool {
	return s.ConsID != "" && s.SecretKey != ""
}

type NotificationConfig struct {
	Channels        []string      `envconfig:"NOTIFY_CHANNELS" default:"whatsapp"`
	FonnteBaseURL   string        `envconfig:"FONNTE_BASE_URL" default:"https://api.fonnte.com"`
	FonnteToken     string        `envconfig:"FONNTE_TOKEN"`
	FonnteTarget    string        `envconfig:"FONNTE_TARGET"`
	SlackWebhookURL string        `envconfig:"SLACK_WEBHOOK_URL"`
	MailRecipients  []string      `envconfig:"NOTIFY_MAIL_RECIPIENTS"`
	DeliveryTimeout time.Duration `envconfig:"NOTIFY_DELIVERY_TIMEOUT" default:"30s"`

	EndpointCooldown    time.Duration `envconfig:"NOTIFY_ENDPOINT_COOLDOWN" default:"30m"`
	CriticalCooldown    time.Duration `envconfig:"NOTIFY_CRITICAL_COOLDOWN" default:"60m"`
	SlowCooldown        time.Duration `envconfig:"NOTIFY_SLOW_COOLDOWN" default:"120m"`
	DiagnosisCooldown   time.Duration `envconfig:"NOTIFY_DIAGNOSIS_COOLDOWN" default:"90m"`
	ConsecutiveCooldown time.Duration `envconfig:"NOTIFY_CONSECUTIVE_COOLDOWN" default:"60m"`
}

type SensorConfig struct {
	Devices         []string      `envconfig:"SENSOR_DEVICES"`
	OfflineMinutes  int           `envconfig:"SENSOR_OFFLINE_MINUTES" default:"5"`
	OfflineCooldown time.Duration `envconfig:"SENSOR_OFFLINE_COOLDOWN" default:"15m"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
