package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the application-wide configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	Night    NightConfig    `mapstructure:"night"`
	Session  SessionConfig  `mapstructure:"session"`
	Links    LinksConfig    `mapstructure:"links"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port      int        `mapstructure:"port"`
	BaseURL   string     `mapstructure:"base_url"`
	CORS      CORSConfig `mapstructure:"cors"`
	RateLimit RateConfig `mapstructure:"rate_limit"`
}

// CORSConfig lists origins allowed to call the gateway with credentials.
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// RateConfig configures the per-client token bucket.
type RateConfig struct {
	PerSecond float64 `mapstructure:"per_second"`
	Burst     int     `mapstructure:"burst"`
}

// UpstreamConfig holds the base URLs of the facility REST services the
// gateway aggregates. Every field is required; the gateway owns no data of
// its own.
type UpstreamConfig struct {
	ScheduleAPI  string        `mapstructure:"schedule_api"`
	EmployeeAPI  string        `mapstructure:"employee_api"`
	ProposalsAPI string        `mapstructure:"proposals_api"`
	ObservingAPI string        `mapstructure:"observing_api"`
	MetricsAPI   string        `mapstructure:"metrics_api"`
	IdentityURL  string        `mapstructure:"identity_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// NightConfig defines the facility's operational-day rule and semester
// look-back depths. The UTC offset and cutover hour are deliberately held in
// one place: the "before 08:00 local" and "before 18:00 UTC" formulations
// are only interchangeable while the offset stays fixed.
type NightConfig struct {
	UTCOffsetHours  int `mapstructure:"utc_offset_hours"`
	CutoverHour     int `mapstructure:"cutover_hour"`
	LogSemesters    int `mapstructure:"log_semesters"`
	OptionSemesters int `mapstructure:"option_semesters"`
}

// SessionConfig configures the per-cookie observer cache.
type SessionConfig struct {
	CookieName string        `mapstructure:"cookie_name"`
	CacheTTL   time.Duration `mapstructure:"cache_ttl"`
}

// LinksConfig holds external link targets surfaced in the sidebar menu and
// per-view helpful links. These are presentation targets, not upstreams the
// gateway calls.
type LinksConfig struct {
	PILogin          string `mapstructure:"pi_login"`
	CoverSheet       string `mapstructure:"cover_sheet"`
	CoverSheetSubmit string `mapstructure:"cover_sheet_submit"`
	RemoteObsRequest string `mapstructure:"remote_obs_request"`
	KPFCommunity     string `mapstructure:"kpf_community"`
	KPFObsBlock      string `mapstructure:"kpf_obs_block"`
	PlanningTool     string `mapstructure:"planning_tool"`
	LRISConfig       string `mapstructure:"lris_config"`
	DEIMOSConfig     string `mapstructure:"deimos_config"`
	SlitMaskTool     string `mapstructure:"slit_mask_tool"`
	TooRequest       string `mapstructure:"too_request"`
	TooReport        string `mapstructure:"too_report"`
	TargetList       string `mapstructure:"target_list"`
	VSQReservations  string `mapstructure:"vsq_reservations"`
	SIAS             string `mapstructure:"sias"`
	DataAccessPortal string `mapstructure:"data_access_portal"`
	PostObsComments  string `mapstructure:"post_obs_comments"`
	FullTelSchedule  string `mapstructure:"full_tel_schedule"`
	ArchiveKOA       string `mapstructure:"archive_koa"`
	InstrumentInfo   string `mapstructure:"instrument_info"`
	InstrumentsHome  string `mapstructure:"instruments_home"`
	WeatherCenter    string `mapstructure:"weather_center"`
	Publications     string `mapstructure:"publications"`
	UpdateInfo       string `mapstructure:"update_info"`
	UpdateSSHKey     string `mapstructure:"update_ssh_key"`
	ObservingRequest string `mapstructure:"observing_request"`
	RequestEdit      string `mapstructure:"request_edit"`
	LogView          string `mapstructure:"log_view"`
	Logout           string `mapstructure:"logout"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment.
// Precedence: environment variables > config file > defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── defaults ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})
	v.SetDefault("server.rate_limit.per_second", 20.0)
	v.SetDefault("server.rate_limit.burst", 40)

	v.SetDefault("upstream.timeout", "15s")

	// Hawaii Standard Time, 8am morning cutover.
	v.SetDefault("night.utc_offset_hours", -10)
	v.SetDefault("night.cutover_hour", 8)
	v.SetDefault("night.log_semesters", 10)
	v.SetDefault("night.option_semesters", 15)

	v.SetDefault("session.cookie_name", "observer_session")
	v.SetDefault("session.cache_ttl", "5m")

	v.SetDefault("links.logout", "/logout")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// ── config file ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── environment ──
	v.SetEnvPrefix("PORTAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		// No config file: run on defaults and environment alone.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration the gateway cannot run without.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config validation: server.port must be between 1 and 65535")
	}
	required := map[string]string{
		"upstream.schedule_api":  c.Upstream.ScheduleAPI,
		"upstream.employee_api":  c.Upstream.EmployeeAPI,
		"upstream.proposals_api": c.Upstream.ProposalsAPI,
		"upstream.observing_api": c.Upstream.ObservingAPI,
		"upstream.metrics_api":   c.Upstream.MetricsAPI,
		"upstream.identity_url":  c.Upstream.IdentityURL,
	}
	for key, val := range required {
		if val == "" {
			return fmt.Errorf("config validation: %s must not be empty", key)
		}
	}
	if c.Night.CutoverHour < 0 || c.Night.CutoverHour > 23 {
		return fmt.Errorf("config validation: night.cutover_hour must be between 0 and 23")
	}
	if c.Night.LogSemesters < 0 || c.Night.OptionSemesters < 0 {
		return fmt.Errorf("config validation: semester look-back counts must not be negative")
	}
	return nil
}
