package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/ads-reporter/internal/domain"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Meta        Meta        `mapstructure:",squash"`
	Telegram    Telegram    `mapstructure:",squash"`
	Report      Report      `mapstructure:",squash"`
	DailyReport DailyReport `mapstructure:",squash"`

	// Tabelas resolvidas na carga a partir dos defaults + overrides.
	// Valores desconhecidos nos overrides derrubam a inicialização.
	ObjectiveCategoryByRaw map[string]domain.ObjectiveCategory `mapstructure:"-"`
	ActionRoleByType       map[string]domain.ActionRole        `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	URL         string `mapstructure:"-"`
	Version     string `mapstructure:"meta_version"`
	AccessToken string `mapstructure:"meta_access_token"`
	PageSize    int    `mapstructure:"meta_page_size"`
}

type Telegram struct {
	BaseURL      string `mapstructure:"telegram_base_url"`
	BotToken     string `mapstructure:"telegram_bot_token"`
	ChatID       string `mapstructure:"telegram_chat_id"`
	MessageLimit int    `mapstructure:"telegram_message_limit"`
}

type Report struct {
	MaxConcurrentAccounts int    `mapstructure:"report_max_concurrent_accounts"`
	AccountTimeoutSeconds int    `mapstructure:"report_account_timeout_seconds"`
	GlobalTimeoutSeconds  int    `mapstructure:"report_global_timeout_seconds"`
	InsightsBatchLimit    int    `mapstructure:"report_insights_batch_limit"`
	SignificancePercent   int    `mapstructure:"report_significance_percent"`
	IncludeAds            bool   `mapstructure:"report_include_ads"`

	// Faixas de custo por resultado para o selo do grupo no relatório.
	// Zero desliga os selos.
	CheapCostLimit     float64 `mapstructure:"report_cost_cheap_limit"`
	ExpensiveCostLimit float64 `mapstructure:"report_cost_expensive_limit"`

	ObjectiveOverrides  string `mapstructure:"report_objective_overrides"`
	ActionRoleOverrides string `mapstructure:"report_action_role_overrides"`
}

type DailyReport struct {
	CronSchedule string `mapstructure:"daily_report_cron"`
	Enabled      bool   `mapstructure:"daily_report_enabled"`
	Preset       string `mapstructure:"daily_report_preset"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads_reporter")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("META_PAGE_SIZE", 100)

	viper.SetDefault("TELEGRAM_BASE_URL", "https://api.telegram.org")
	viper.SetDefault("TELEGRAM_BOT_TOKEN", "your_bot_token") // ONLY LOCAL
	viper.SetDefault("TELEGRAM_CHAT_ID", "")
	viper.SetDefault("TELEGRAM_MESSAGE_LIMIT", 4096) // Limite de uma mensagem do Telegram

	viper.SetDefault("REPORT_MAX_CONCURRENT_ACCOUNTS", 5) // Contas processadas em paralelo
	viper.SetDefault("REPORT_ACCOUNT_TIMEOUT_SECONDS", 60)
	viper.SetDefault("REPORT_GLOBAL_TIMEOUT_SECONDS", 180)
	viper.SetDefault("REPORT_INSIGHTS_BATCH_LIMIT", 500) // Máximo de IDs por filtro de insights
	viper.SetDefault("REPORT_SIGNIFICANCE_PERCENT", 5)   // Variação mínima para exibir indicador
	viper.SetDefault("REPORT_INCLUDE_ADS", false)
	viper.SetDefault("REPORT_COST_CHEAP_LIMIT", 3.0)      // Até aqui o grupo ganha selo verde
	viper.SetDefault("REPORT_COST_EXPENSIVE_LIMIT", 10.0) // Daqui em diante, selo vermelho
	viper.SetDefault("REPORT_OBJECTIVE_OVERRIDES", "")
	viper.SetDefault("REPORT_ACTION_ROLE_OVERRIDES", "")

	viper.SetDefault("DAILY_REPORT_CRON", "0 8 * * *") // Todos os dias às 8h da manhã
	viper.SetDefault("DAILY_REPORT_ENABLED", false)
	viper.SetDefault("DAILY_REPORT_PRESET", string(domain.PresetYesterday))

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	if err := godotenv.Load(); err != nil {
		logrus.Info("Arquivo .env não encontrado, usando variáveis de ambiente")
	}

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	config.ObjectiveCategoryByRaw, err = resolveObjectiveCategories(config.Report.ObjectiveOverrides)
	if err != nil {
		return nil, err
	}

	config.ActionRoleByType, err = resolveActionRoles(config.Report.ActionRoleOverrides)
	if err != nil {
		return nil, err
	}

	return config, nil
}

// resolveObjectiveCategories monta a tabela objective -> categoria a partir
// dos defaults e dos overrides "RAW=CATEGORIA,RAW=CATEGORIA". Categoria
// desconhecida é erro de configuração, nunca um default silencioso.
func resolveObjectiveCategories(overrides string) (map[string]domain.ObjectiveCategory, error) {
	resolved := make(map[string]domain.ObjectiveCategory, len(domain.DefaultObjectiveCategoryMap))
	for raw, category := range domain.DefaultObjectiveCategoryMap {
		resolved[raw] = category
	}

	pairs, err := parsePairs(overrides)
	if err != nil {
		return nil, fmt.Errorf("REPORT_OBJECTIVE_OVERRIDES inválido: %w", err)
	}

	for raw, value := range pairs {
		category := domain.ObjectiveCategory(value)
		if !knownObjectiveCategory(category) {
			return nil, fmt.Errorf("categoria de objetivo desconhecida %q para %q", value, raw)
		}
		resolved[raw] = category
	}

	return resolved, nil
}

// resolveActionRoles monta a tabela action_type -> papel (lead/click/ignored)
func resolveActionRoles(overrides string) (map[string]domain.ActionRole, error) {
	resolved := make(map[string]domain.ActionRole, len(domain.DefaultActionRoleMap))
	for actionType, role := range domain.DefaultActionRoleMap {
		resolved[actionType] = role
	}

	pairs, err := parsePairs(overrides)
	if err != nil {
		return nil, fmt.Errorf("REPORT_ACTION_ROLE_OVERRIDES inválido: %w", err)
	}

	for actionType, value := range pairs {
		role := domain.ActionRole(value)
		if !knownActionRole(role) {
			return nil, fmt.Errorf("papel de ação desconhecido %q para %q", value, actionType)
		}
		resolved[actionType] = role
	}

	return resolved, nil
}

func parsePairs(raw string) (map[string]string, error) {
	pairs := make(map[string]string)

	if strings.TrimSpace(raw) == "" {
		return pairs, nil
	}

	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("entrada %q não está no formato CHAVE=VALOR", entry)
		}

		pairs[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}

	return pairs, nil
}

func knownObjectiveCategory(category domain.ObjectiveCategory) bool {
	for _, known := range domain.KnownObjectiveCategories {
		if category == known {
			return true
		}
	}
	return false
}

func knownActionRole(role domain.ActionRole) bool {
	for _, known := range domain.KnownActionRoles {
		if role == known {
			return true
		}
	}
	return false
}
