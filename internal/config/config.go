package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server       ServerConfig       `mapstructure:"server" validate:"required"`
	Builder      BuilderConfig      `mapstructure:"builder" validate:"required"`
	Integrations IntegrationsConfig `mapstructure:"integrations"`
}

// ServerConfig contains all HTTP server related settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// BuilderConfig contains the curriculum pipeline settings: generator timeout
// bounds, worker count for background builds, and the optional external
// content providers.
type BuilderConfig struct {
	// GeneratorTimeoutSeconds bounds each single generator call within a week.
	GeneratorTimeoutSeconds int `mapstructure:"generator_timeout_seconds" validate:"required,gt=0,lte=300"`

	// BuildWorkers is the number of concurrent background build tasks.
	BuildWorkers int `mapstructure:"build_workers" validate:"required,gt=0,lte=64"`

	// VideoSource selects the video generator: "static" uses the built-in
	// catalog, "youtube" queries the YouTube Data API (requires an API key).
	VideoSource string `mapstructure:"video_source" validate:"required,oneof=static youtube"`

	// QuizSource selects the quiz generator: "static" uses the built-in
	// question banks, "gemini" generates questions with the Gemini API.
	QuizSource string `mapstructure:"quiz_source" validate:"required,oneof=static gemini"`

	YouTubeAPIKey string `mapstructure:"youtube_api_key" validate:"required_if=VideoSource youtube"`
	GeminiAPIKey  string `mapstructure:"gemini_api_key" validate:"required_if=QuizSource gemini"`

	// GeminiModelName is the model used for quiz generation.
	GeminiModelName string `mapstructure:"gemini_model_name"`
}

// IntegrationsConfig contains credentials for the outbound push targets.
// All integrations are optional; push requests fail with a configuration
// error when the matching credentials are absent.
type IntegrationsConfig struct {
	Notion NotionConfig `mapstructure:"notion"`
	Trello TrelloConfig `mapstructure:"trello"`
	GitHub GitHubConfig `mapstructure:"github"`
}

// NotionConfig holds Notion API credentials.
type NotionConfig struct {
	Token    string `mapstructure:"token"`
	ParentID string `mapstructure:"parent_id"`
}

// TrelloConfig holds Trello API credentials.
type TrelloConfig struct {
	APIKey string `mapstructure:"api_key"`
	Token  string `mapstructure:"token"`
}

// GitHubConfig holds GitHub API credentials for repository scaffolding.
type GitHubConfig struct {
	Token string `mapstructure:"token"`
}

// NotionEnabled reports whether Notion push is configured.
func (c *IntegrationsConfig) NotionEnabled() bool {
	return c.Notion.Token != "" && c.Notion.ParentID != ""
}

// TrelloEnabled reports whether Trello push is configured.
func (c *IntegrationsConfig) TrelloEnabled() bool {
	return c.Trello.APIKey != "" && c.Trello.Token != ""
}

// GitHubEnabled reports whether GitHub scaffolding is configured.
func (c *IntegrationsConfig) GitHubEnabled() bool {
	return c.GitHub.Token != ""
}
