// Package config loads the job settings from the environment. A .env file,
// when present, is read first and never overrides variables that are
// already set.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/gabapcia/airdrop/internal/pkg/validator"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// DefaultEnvFile is loaded when no other file is given.
const DefaultEnvFile = ".env"

// Store backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// ErrConfig wraps every load or validation failure.
var ErrConfig = errors.New("invalid configuration")

// Config holds every setting of the job. It is read once at startup and
// passed by value afterwards.
type Config struct {
	RPCURL       string `envconfig:"RPC_URL" required:"true" validate:"url"`
	PrivateKey   string `envconfig:"PRIVATE_KEY" required:"true" validate:"required"`
	TokenAddress string `envconfig:"TOKEN_ADDRESS" required:"true" validate:"eth_addr"`
	ChainID      int64  `envconfig:"CHAIN_ID" default:"10218" validate:"gt=0"`

	TelegramBotToken string `envconfig:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   string `envconfig:"TELEGRAM_CHAT_ID"`
	TelegramAPIURL   string `envconfig:"TELEGRAM_API_URL" default:"https://api.telegram.org" validate:"url"`

	ExplorerTxURL string `envconfig:"EXPLORER_TX_URL" default:"https://sepolia.tea.xyz/tx/" validate:"omitempty,url"`
	AllowlistURL  string `envconfig:"ALLOWLIST_URL" default:"https://raw.githubusercontent.com/clwkevin/LayerOS/main/addressteasepoliakyc.txt" validate:"url"`

	AmountPerRecipient string `envconfig:"AMOUNT_PER_RECIPIENT" default:"1000" validate:"positive_decimal"`
	GasReserve         string `envconfig:"GAS_RESERVE" default:"0.01" validate:"decimal"`
	DailyCapMin        int    `envconfig:"DAILY_CAP_MIN" default:"101" validate:"gte=0"`
	DailyCapMax        int    `envconfig:"DAILY_CAP_MAX" default:"110" validate:"gtefield=DailyCapMin"`

	PreTransferDelayMin  time.Duration `envconfig:"PRE_TRANSFER_DELAY_MIN" default:"60s" validate:"gte=0"`
	PreTransferDelayMax  time.Duration `envconfig:"PRE_TRANSFER_DELAY_MAX" default:"300s" validate:"gtefield=PreTransferDelayMin"`
	PostTransferDelayMin time.Duration `envconfig:"POST_TRANSFER_DELAY_MIN" default:"20s" validate:"gte=0"`
	PostTransferDelayMax time.Duration `envconfig:"POST_TRANSFER_DELAY_MAX" default:"90s" validate:"gtefield=PostTransferDelayMin"`

	Confirmations       uint64        `envconfig:"CONFIRMATIONS" default:"3" validate:"gte=1"`
	ConfirmationTimeout time.Duration `envconfig:"CONFIRMATION_TIMEOUT" default:"10m" validate:"gte=0"`

	Schedule        string        `envconfig:"SCHEDULE" default:"0 0 * * *" validate:"cron"`
	StartJitterMax  time.Duration `envconfig:"START_JITTER_MAX" default:"3m" validate:"gte=0"`
	SkipIfDoneToday bool          `envconfig:"SKIP_IF_DONE_TODAY" default:"true"`

	StoreBackend   string `envconfig:"STORE_BACKEND" default:"file" validate:"oneof=file redis"`
	DataDir        string `envconfig:"DATA_DIR" default:"."`
	SentFile       string `envconfig:"SENT_FILE" default:"kyc_addresses_sent.txt"`
	PendingFile    string `envconfig:"PENDING_FILE" default:"kyc_addresses_pending.txt"`
	CheckpointFile string `envconfig:"CHECKPOINT_FILE" default:"last_cycle.txt"`
	LockFile       string `envconfig:"LOCK_FILE" default:"airdrop.lock"`

	RedisAddr     string        `envconfig:"REDIS_ADDR" validate:"required_if=StoreBackend redis"`
	RedisUsername string        `envconfig:"REDIS_USERNAME"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`
	RedisLockTTL  time.Duration `envconfig:"REDIS_LOCK_TTL" default:"1m" validate:"gt=0"`

	NotifyAttempts   uint          `envconfig:"NOTIFY_ATTEMPTS" default:"3" validate:"gte=1"`
	NotifyRetryDelay time.Duration `envconfig:"NOTIFY_RETRY_DELAY" default:"2s" validate:"gte=0"`
	NotifyRate       int           `envconfig:"NOTIFY_RATE" default:"1" validate:"gte=0"`

	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"15s" validate:"gt=0"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	LogDir   string `envconfig:"LOG_DIR" default:"."`

	RandomSeed uint64 `envconfig:"RANDOM_SEED" default:"0"`

	OtelEnabled bool   `envconfig:"OTEL_ENABLED" default:"false"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"airdrop" validate:"required"`
}

// Amount is the per-recipient amount in token units.
func (c Config) Amount() decimal.Decimal {
	return decimal.RequireFromString(c.AmountPerRecipient)
}

// GasReserveAmount is the minimum native balance in whole coins.
func (c Config) GasReserveAmount() decimal.Decimal {
	return decimal.RequireFromString(c.GasReserve)
}

// TelegramEnabled reports whether both Telegram settings are present.
func (c Config) TelegramEnabled() bool {
	return c.TelegramBotToken != "" && c.TelegramChatID != ""
}

// Load reads envFile (if it exists), then the process environment, and
// validates the result. An empty envFile selects DefaultEnvFile.
//
// Errors wrap ErrConfig.
func Load(envFile string) (Config, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}

	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: read %s: %w", ErrConfig, envFile, err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	return cfg, nil
}
