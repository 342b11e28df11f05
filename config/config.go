package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath          = "."
	defaultPPNRate       = 0.11
	defaultValidityDays  = 14
	defaultDueDays       = 14
	defaultInvoicePrefix = "INV"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		StorefrontPort int `json:"storefrontPort" yaml:"storefrontPort"`
		AdminPort      int `json:"adminPort" yaml:"adminPort"`
		Timeouts       struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Tax configuration for Indonesian PPN handling
	Tax *TaxConfig `json:"tax" yaml:"tax"`

	// Quotation configuration for offer validity
	Quotation *QuotationConfig `json:"quotation" yaml:"quotation"`

	// Invoice configuration for numbering, due dates and payment QR
	Invoice *InvoiceConfig `json:"invoice" yaml:"invoice"`

	// Notification configuration for WhatsApp and email delivery
	Notification *NotificationConfig `json:"notification" yaml:"notification"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// TaxConfig defines Indonesian tax (PPN) parameters.
type TaxConfig struct {
	PPNRate float64 `json:"ppnRate" yaml:"ppnRate"`
}

// QuotationConfig defines quotation lifecycle parameters.
type QuotationConfig struct {
	// Days a submitted quotation stays valid before it can be expired.
	ValidityDays int `json:"validityDays" yaml:"validityDays"`
}

// InvoiceConfig defines invoice numbering and payment parameters.
type InvoiceConfig struct {
	NumberPrefix string `json:"numberPrefix" yaml:"numberPrefix"`
	// Default days until due when the caller does not pass a due date.
	DueDays int `json:"dueDays" yaml:"dueDays"`
	// Merchant identifier embedded in the payment QR payload.
	QRMerchantID string `json:"qrMerchantId" yaml:"qrMerchantId"`
	QRSize       int    `json:"qrSize" yaml:"qrSize"`
}

// NotificationConfig defines outbound message delivery settings.
type NotificationConfig struct {
	WhatsApp *WhatsAppConfig `json:"whatsapp" yaml:"whatsapp"`
	Email    *EmailConfig    `json:"email" yaml:"email"`
	// Back-office number alerted when a customer submits a quotation.
	// Leave empty to disable the alert.
	AdminPhone string `json:"adminPhone" yaml:"adminPhone"`
}

// WhatsAppConfig defines the WhatsApp gateway endpoint.
type WhatsAppConfig struct {
	GatewayURL string        `json:"gatewayUrl" yaml:"gatewayUrl"`
	APIKey     string        `json:"apiKey" yaml:"apiKey"`
	Sender     string        `json:"sender" yaml:"sender"`
	Timeout    time.Duration `json:"timeout" yaml:"timeout"`
}

// EmailConfig defines the SMTP relay used for email notifications.
type EmailConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	From     string `json:"from" yaml:"from"`
}

// LoadWithEnv loads .yaml files through koanf, then overlays environment variables.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Tax == nil {
		cfg.Tax = &TaxConfig{}
	}
	if cfg.Tax.PPNRate <= 0 {
		cfg.Tax.PPNRate = defaultPPNRate
	}

	if cfg.Quotation == nil {
		cfg.Quotation = &QuotationConfig{}
	}
	if cfg.Quotation.ValidityDays <= 0 {
		cfg.Quotation.ValidityDays = defaultValidityDays
	}

	if cfg.Invoice == nil {
		cfg.Invoice = &InvoiceConfig{}
	}
	if strings.TrimSpace(cfg.Invoice.NumberPrefix) == "" {
		cfg.Invoice.NumberPrefix = defaultInvoicePrefix
	}
	if cfg.Invoice.DueDays <= 0 {
		cfg.Invoice.DueDays = defaultDueDays
	}
	if cfg.Invoice.QRSize <= 0 {
		cfg.Invoice.QRSize = 256
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
