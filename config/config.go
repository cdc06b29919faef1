package config

import (
	"log"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

var Cfg Config

type Config struct {
	// 服务配置
	ServerPort  string `env:"SERVER_PORT" envDefault:"8833"`
	ServerHost  string `env:"SERVER_HOST" envDefault:"127.0.0.1"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"` // development, staging, production
	ServiceName string `env:"SERVICE_NAME" envDefault:"moodflow"`

	// 存储配置：单用户本地 KV，默认落盘，可切换 redis
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"disk"` // disk, redis
	StoragePath    string `env:"STORAGE_PATH" envDefault:"./data/moodflow"`

	// Redis 配置（STORAGE_BACKEND=redis 时生效）
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPrefix   string `env:"REDIS_PREFIX" envDefault:"mf"`

	// 生成式 AI 配置
	GenAIProvider       string `env:"GENAI_PROVIDER" envDefault:"gemini"` // gemini, mock
	GenAIEndpoint       string `env:"GENAI_ENDPOINT" envDefault:"https://generativelanguage.googleapis.com/v1beta"`
	GenAIAPIKey         string `env:"GENAI_API_KEY"`
	GenAIModel          string `env:"GENAI_MODEL" envDefault:"gemini-2.5-flash"`
	GenAITimeoutSeconds int    `env:"GENAI_TIMEOUT_SECONDS" envDefault:"12"`

	// 提醒调度配置
	ReminderTickSeconds   int `env:"REMINDER_TICK_SECONDS" envDefault:"30"`
	ReminderSnoozeMinutes int `env:"REMINDER_SNOOZE_MINUTES" envDefault:"10"`

	// 提醒触达 webhook（可选，失败不影响应用内提醒）
	NotifyWebhookURL string `env:"NOTIFY_WEBHOOK_URL"`

	// Snowflake ID 生成器配置
	SnowflakeMachineID  int64 `env:"SNOWFLAKE_MACHINE_ID" envDefault:"1"`
	SnowflakeDataCenter int64 `env:"SNOWFLAKE_DATACENTER_ID" envDefault:"1"`

	// 日志配置
	LoggerLevel      string `env:"LOGGER_LEVEL" envDefault:"INFO"`
	LoggerFormat     string `env:"LOGGER_FORMAT" envDefault:"text"` // json, text
	LoggerOutputPath string `env:"LOGGER_OUTPUT_PATH" envDefault:"stdout"`

	// 链路追踪配置
	TracingEnabled bool    `env:"TRACING_ENABLED" envDefault:"false"`
	OTLPEndpoint   string  `env:"OTLP_ENDPOINT" envDefault:"localhost:4317"`
	TracingSampler float64 `env:"TRACING_SAMPLER" envDefault:"0.1"`

	// 洞察接口限流配置（AI 调用有成本，防止客户端重试风暴）
	InsightRateWindowSeconds int `env:"INSIGHT_RATE_WINDOW_SECONDS" envDefault:"60"`
	InsightRateMaxRequests   int `env:"INSIGHT_RATE_MAX_REQUESTS" envDefault:"10"`
}

func init() {

	if err := godotenv.Load(); err != nil {

		log.Printf("WARN: Cannot load .env file: %v, using environment variables", err)
	}

	Cfg = Config{}
	if err := env.Parse(&Cfg); err != nil {
		log.Fatalf("Failed to parse environment variables: %v", err)
	}

	validateConfig()
}

func validateConfig() {
	if Cfg.StorageBackend != "disk" && Cfg.StorageBackend != "redis" {
		log.Fatalf("STORAGE_BACKEND must be disk or redis, got %q", Cfg.StorageBackend)
	}

	if Cfg.GenAIProvider == "gemini" && Cfg.GenAIAPIKey == "" {
		log.Printf("WARN: GENAI_API_KEY is not set, insights will always use the fallback payload")
	}

	if Cfg.ReminderTickSeconds <= 0 {
		log.Printf("WARN: REMINDER_TICK_SECONDS must be positive, falling back to 30")
		Cfg.ReminderTickSeconds = 30
	}

	if Cfg.ReminderSnoozeMinutes <= 0 {
		log.Printf("WARN: REMINDER_SNOOZE_MINUTES must be positive, falling back to 10")
		Cfg.ReminderSnoozeMinutes = 10
	}
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
