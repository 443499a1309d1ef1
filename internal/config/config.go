package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env      Env
	Server   ServerConfig
	Auth     AuthConfig
	Storage  StorageConfig
	Minio    MinioConfig
	S3       S3Config
	Upload   UploadConfig
	NATS     NATSConfig
	Orphan   OrphanConfig
	Database DatabaseConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"8080"`
}

type AuthConfig struct {
	JWTSecret string `envconfig:"AUTH_JWT_SECRET"`
}

// StorageConfig selects the object store backend: "minio" or "s3"
type StorageConfig struct {
	Backend       string   `envconfig:"STORAGE_BACKEND" default:"minio"`
	PublicBaseURL string   `envconfig:"STORAGE_PUBLIC_BASE_URL"`
	MaxObjectSize int64    `envconfig:"STORAGE_MAX_OBJECT_SIZE" default:"104857600"` // 100MB
	AllowedTypes  []string `envconfig:"STORAGE_ALLOWED_TYPES" default:"video/mp4,video/quicktime,video/webm,video/3gpp,video/x-m4v"`
}

type MinioConfig struct {
	Endpoint   string `envconfig:"MINIO_ENDPOINT"`
	BucketName string `envconfig:"MINIO_BUCKET_NAME" default:"videos"`
	AccessKey  string `envconfig:"MINIO_ACCESS_KEY"`
	SecretKey  string `envconfig:"MINIO_SECRET_KEY"`
	UseSSL     bool   `envconfig:"MINIO_USE_SSL" default:"false"`
}

type S3Config struct {
	Endpoint     string `envconfig:"S3_ENDPOINT"`
	Region       string `envconfig:"S3_REGION" default:"us-east-1"`
	Bucket       string `envconfig:"S3_BUCKET" default:"videos"`
	AccessKeyID  string `envconfig:"S3_ACCESS_KEY_ID"`
	SecretKey    string `envconfig:"S3_SECRET_ACCESS_KEY"`
	UsePathStyle bool   `envconfig:"S3_USE_PATH_STYLE" default:"true"`
}

type UploadConfig struct {
	Runtime            string        `envconfig:"UPLOAD_RUNTIME" default:"native"`
	MaxCaptureDuration time.Duration `envconfig:"UPLOAD_MAX_CAPTURE_DURATION" default:"60s"`
	FetchTimeout       time.Duration `envconfig:"UPLOAD_FETCH_TIMEOUT" default:"30s"`
	TempDir            string        `envconfig:"UPLOAD_TEMP_DIR"`
}

type NATSConfig struct {
	URL            string        `envconfig:"NATS_URL"`
	UploadStream   string        `envconfig:"NATS_UPLOAD_STREAM" default:"VIDEO_UPLOADS"`
	UploadSubject  string        `envconfig:"NATS_UPLOAD_SUBJECT" default:"videos.uploads"`
	StreamName     string        `envconfig:"NATS_STREAM_NAME" default:"BUCKET_EVENTS"`
	ConsumerName   string        `envconfig:"NATS_CONSUMER_NAME" default:"orphan-reconciler"`
	Subject        string        `envconfig:"NATS_SUBJECT" default:"minio.videos"`
	AckWait        time.Duration `envconfig:"NATS_ACK_WAIT" default:"30s"`
	MaxDeliver     int           `envconfig:"NATS_MAX_DELIVER" default:"-1"`
	RedeliverDelay time.Duration `envconfig:"NATS_REDELIVER_DELAY" default:"1m"`
}

// OrphanConfig controls the reconciliation of objects that never got a video record.
// Mode is "report" (log and count) or "delete".
type OrphanConfig struct {
	Mode        string        `envconfig:"ORPHAN_MODE" default:"report"`
	GracePeriod time.Duration `envconfig:"ORPHAN_GRACE_PERIOD" default:"15m"`
	SweepEvery  time.Duration `envconfig:"ORPHAN_SWEEP_EVERY" default:"1h"`
}

type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" required:"true"`
	Port           int           `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" required:"true"`
	Password       string        `envconfig:"DB_PASSWORD" required:"true"`
	Name           string        `envconfig:"DB_NAME" required:"true"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenCons    int           `envconfig:"DB_MAX_OPEN_CONS" default:"25"`
	MaxIdleCons    int           `envconfig:"DB_MAX_IDLE_CONS" default:"5"`
	ConMaxLifeTime time.Duration `envconfig:"DB_CONMAX_LIFE_TIME" default:"5m"`
}

// ClientConfig is read by the capture CLI on top of Config
type ClientConfig struct {
	SessionToken   string `envconfig:"CLIENT_SESSION_TOKEN"`
	SessionFile    string `envconfig:"CLIENT_SESSION_FILE" default:".challenge-session"`
	LibraryDir     string `envconfig:"CLIENT_LIBRARY_DIR" default:"."`
	CaptureCommand string `envconfig:"CLIENT_CAPTURE_COMMAND" default:"ffmpeg -y -f avfoundation -i 0 -t {duration} {output}"`
	AssumeYes      bool   `envconfig:"CLIENT_ASSUME_YES" default:"false"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadClient loads the capture CLI configuration
func LoadClient() (*Config, *ClientConfig, error) {
	cfg, err := Load()
	if err != nil {
		return nil, nil, err
	}

	var client ClientConfig
	if err := envconfig.Process("", &client); err != nil {
		return nil, nil, err
	}

	return cfg, &client, nil
}
