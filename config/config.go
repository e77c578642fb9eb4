package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	Server      ServerConfig
	Logger      LoggerConfig

	// Storage & transport
	Postgres PostgresConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
	MinIO    MinIOConfig

	WebSocket    WebSocketConfig
	RateLimit    RateLimitConfig
	Notification NotificationConfig

	// Authentication & security
	JWT      JWTConfig
	Internal InternalConfig

	Discord DiscordConfig
}

type EnvironmentConfig struct {
	Name string
}

type ServerConfig struct {
	Host           string
	Port           int
	Mode           string
	AllowedOrigins []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	UseTLS   bool

	MaxRetries      int
	MinIdleConns    int
	PoolSize        int
	PoolTimeout     time.Duration
	ConnMaxIdleTime time.Duration
	ConnMaxLifetime time.Duration

	// NotificationChannelPrefix is the pub/sub prefix used to fan
	// notification pushes out to every instance.
	NotificationChannelPrefix string
}

// RabbitMQConfig configures the ticket assignment event consumer.
// An empty URL disables the consumer.
type RabbitMQConfig struct {
	URL            string
	Exchange       string
	Queue          string
	RoutingKey     string
	Prefetch       int
	Workers        int
	RetryAttempts  int
	RetryDelay     time.Duration
	HandlerTimeout time.Duration
}

// MinIOConfig configures attachment checks. An empty endpoint disables them.
type MinIOConfig struct {
	Endpoint          string
	AccessKey         string
	SecretKey         string
	Region            string
	Bucket            string
	UseSSL            bool
	VerifyAttachments bool
}

type WebSocketConfig struct {
	Path            string
	PingInterval    time.Duration
	PongWait        time.Duration
	WriteWait       time.Duration
	AuthTimeout     time.Duration
	MaxMessageSize  int64
	ReadBufferSize  int
	WriteBufferSize int
	SendBufferSize  int
	MaxConnections  int
}

// RateLimitConfig bounds inbound websocket frames per connection.
type RateLimitConfig struct {
	FramesPerSecond float64
	Burst           int
}

type NotificationConfig struct {
	SnippetLength int
	PushTimeout   time.Duration
}

type JWTConfig struct {
	SecretKey string
	Issuer    string
	TTL       time.Duration
}

// InternalConfig guards service-to-service routes.
type InternalConfig struct {
	Key string
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load reads helpdesk-config.yaml (optional) with environment overrides.
func Load() (*Config, error) {
	viper.SetConfigName("helpdesk-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/helpdesk/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")

	cfg.Server.Host = viper.GetString("server.host")
	cfg.Server.Port = viper.GetInt("server.port")
	cfg.Server.Mode = viper.GetString("server.mode")
	cfg.Server.AllowedOrigins = viper.GetStringSlice("server.allowed_origins")

	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.MaxOpenConns = viper.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = viper.GetInt("postgres.max_idle_conns")
	cfg.Postgres.ConnMaxLifetime = viper.GetDuration("postgres.conn_max_lifetime")
	cfg.Postgres.ConnMaxIdleTime = viper.GetDuration("postgres.conn_max_idle_time")

	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.UseTLS = viper.GetBool("redis.use_tls")
	cfg.Redis.MaxRetries = viper.GetInt("redis.max_retries")
	cfg.Redis.MinIdleConns = viper.GetInt("redis.min_idle_conns")
	cfg.Redis.PoolSize = viper.GetInt("redis.pool_size")
	cfg.Redis.PoolTimeout = viper.GetDuration("redis.pool_timeout")
	cfg.Redis.ConnMaxIdleTime = viper.GetDuration("redis.conn_max_idle_time")
	cfg.Redis.ConnMaxLifetime = viper.GetDuration("redis.conn_max_lifetime")
	cfg.Redis.NotificationChannelPrefix = viper.GetString("redis.notification_channel_prefix")

	cfg.RabbitMQ.URL = viper.GetString("rabbitmq.url")
	cfg.RabbitMQ.Exchange = viper.GetString("rabbitmq.exchange")
	cfg.RabbitMQ.Queue = viper.GetString("rabbitmq.queue")
	cfg.RabbitMQ.RoutingKey = viper.GetString("rabbitmq.routing_key")
	cfg.RabbitMQ.Prefetch = viper.GetInt("rabbitmq.prefetch")
	cfg.RabbitMQ.Workers = viper.GetInt("rabbitmq.workers")
	cfg.RabbitMQ.RetryAttempts = viper.GetInt("rabbitmq.retry_attempts")
	cfg.RabbitMQ.RetryDelay = viper.GetDuration("rabbitmq.retry_delay")
	cfg.RabbitMQ.HandlerTimeout = viper.GetDuration("rabbitmq.handler_timeout")

	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.Region = viper.GetString("minio.region")
	cfg.MinIO.Bucket = viper.GetString("minio.bucket")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.VerifyAttachments = viper.GetBool("minio.verify_attachments")

	cfg.WebSocket.Path = viper.GetString("websocket.path")
	cfg.WebSocket.PingInterval = viper.GetDuration("websocket.ping_interval")
	cfg.WebSocket.PongWait = viper.GetDuration("websocket.pong_wait")
	cfg.WebSocket.WriteWait = viper.GetDuration("websocket.write_wait")
	cfg.WebSocket.AuthTimeout = viper.GetDuration("websocket.auth_timeout")
	cfg.WebSocket.MaxMessageSize = viper.GetInt64("websocket.max_message_size")
	cfg.WebSocket.ReadBufferSize = viper.GetInt("websocket.read_buffer_size")
	cfg.WebSocket.WriteBufferSize = viper.GetInt("websocket.write_buffer_size")
	cfg.WebSocket.SendBufferSize = viper.GetInt("websocket.send_buffer_size")
	cfg.WebSocket.MaxConnections = viper.GetInt("websocket.max_connections")

	cfg.RateLimit.FramesPerSecond = viper.GetFloat64("ratelimit.frames_per_second")
	cfg.RateLimit.Burst = viper.GetInt("ratelimit.burst")

	cfg.Notification.SnippetLength = viper.GetInt("notification.snippet_length")
	cfg.Notification.PushTimeout = viper.GetDuration("notification.push_timeout")

	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.TTL = viper.GetDuration("jwt.ttl")

	cfg.Internal.Key = viper.GetString("internal.key")

	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "production")

	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "release")
	viper.SetDefault("server.allowed_origins", []string{"*"})

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("logger.color_enabled", false)

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.sslmode", "disable")
	viper.SetDefault("postgres.max_open_conns", 50)
	viper.SetDefault("postgres.max_idle_conns", 10)
	viper.SetDefault("postgres.conn_max_lifetime", 30*time.Minute)
	viper.SetDefault("postgres.conn_max_idle_time", 5*time.Minute)

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.use_tls", false)
	viper.SetDefault("redis.max_retries", 3)
	viper.SetDefault("redis.min_idle_conns", 5)
	viper.SetDefault("redis.pool_size", 50)
	viper.SetDefault("redis.pool_timeout", 4*time.Second)
	viper.SetDefault("redis.conn_max_idle_time", 5*time.Minute)
	viper.SetDefault("redis.conn_max_lifetime", 30*time.Minute)
	viper.SetDefault("redis.notification_channel_prefix", "notification:user:")

	viper.SetDefault("rabbitmq.exchange", "helpdesk.tickets")
	viper.SetDefault("rabbitmq.queue", "helpdesk.notifications.assignments")
	viper.SetDefault("rabbitmq.routing_key", "ticket.assigned")
	viper.SetDefault("rabbitmq.prefetch", 10)
	viper.SetDefault("rabbitmq.workers", 4)
	viper.SetDefault("rabbitmq.retry_attempts", 5)
	viper.SetDefault("rabbitmq.retry_delay", time.Second)
	viper.SetDefault("rabbitmq.handler_timeout", 10*time.Second)

	viper.SetDefault("minio.region", "us-east-1")
	viper.SetDefault("minio.bucket", "ticket-attachments")
	viper.SetDefault("minio.verify_attachments", false)

	viper.SetDefault("websocket.path", "/ws/tickets")
	viper.SetDefault("websocket.ping_interval", 25*time.Second)
	viper.SetDefault("websocket.pong_wait", 60*time.Second)
	viper.SetDefault("websocket.write_wait", 10*time.Second)
	viper.SetDefault("websocket.auth_timeout", 10*time.Second)
	viper.SetDefault("websocket.max_message_size", 64*1024)
	viper.SetDefault("websocket.read_buffer_size", 1024)
	viper.SetDefault("websocket.write_buffer_size", 1024)
	viper.SetDefault("websocket.send_buffer_size", 256)
	viper.SetDefault("websocket.max_connections", 10000)

	viper.SetDefault("ratelimit.frames_per_second", 10.0)
	viper.SetDefault("ratelimit.burst", 20)

	viper.SetDefault("notification.snippet_length", 140)
	viper.SetDefault("notification.push_timeout", 3*time.Second)

	viper.SetDefault("jwt.issuer", "helpdesk")
	viper.SetDefault("jwt.ttl", 2*time.Hour)
}

func validate(cfg *Config) error {
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 characters for security")
	}

	if cfg.Postgres.Host == "" || cfg.Postgres.DBName == "" {
		return fmt.Errorf("postgres.host and postgres.dbname are required")
	}

	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	if cfg.Notification.SnippetLength <= 0 {
		return fmt.Errorf("notification.snippet_length must be positive")
	}
	if cfg.WebSocket.PingInterval >= cfg.WebSocket.PongWait {
		return fmt.Errorf("websocket.ping_interval must be shorter than websocket.pong_wait")
	}

	if cfg.MinIO.VerifyAttachments && cfg.MinIO.Endpoint == "" {
		return fmt.Errorf("minio.endpoint is required when minio.verify_attachments is set")
	}

	return nil
}
