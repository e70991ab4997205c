package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig contains the identity-provider settings and the guard's
// behavior knobs.
type AuthConfig struct {
	// Provider selects the identity backend: "supabase" (remote) or "local"
	// (in-process, for development and tests).
	Provider string `mapstructure:"provider" validate:"required,oneof=supabase local"`

	// SupabaseURL is the base URL of the provider project, e.g.
	// https://xyzcompany.supabase.co. Required when Provider is "supabase".
	SupabaseURL string `mapstructure:"supabase_url" validate:"required_if=Provider supabase,omitempty,url"`

	// SupabaseKey is the project API key sent on every provider request.
	SupabaseKey string `mapstructure:"supabase_key" validate:"required_if=Provider supabase"`

	// LocalSecret signs tokens issued by the local provider.
	// Required when Provider is "local".
	LocalSecret string `mapstructure:"local_secret" validate:"required_if=Provider local,omitempty,min=32"`

	// ProviderTimeoutSeconds bounds each call the guard makes to the
	// provider and the profile store. Timeouts fail closed.
	ProviderTimeoutSeconds int `mapstructure:"provider_timeout_seconds" validate:"gte=1,lte=60"`

	// DefaultDisplayName is used when a valid account has no profile row.
	DefaultDisplayName string `mapstructure:"default_display_name" validate:"required"`
}
