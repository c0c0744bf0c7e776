package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err, "Load() with defaults should succeed")

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 15, cfg.Builder.GeneratorTimeoutSeconds)
	assert.Equal(t, 4, cfg.Builder.BuildWorkers)
	assert.Equal(t, "static", cfg.Builder.VideoSource)
	assert.Equal(t, "static", cfg.Builder.QuizSource)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SYLLABUS_SERVER_PORT", "9090")
	t.Setenv("SYLLABUS_SERVER_LOG_LEVEL", "debug")
	t.Setenv("SYLLABUS_BUILDER_GENERATOR_TIMEOUT_SECONDS", "30")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 30, cfg.Builder.GeneratorTimeoutSeconds)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
		want   string
	}{
		{
			name:   "invalid log level",
			envKey: "SYLLABUS_SERVER_LOG_LEVEL",
			envVal: "verbose",
			want:   "validation failed",
		},
		{
			name:   "invalid port",
			envKey: "SYLLABUS_SERVER_PORT",
			envVal: "0",
			want:   "validation failed",
		},
		{
			name:   "invalid video source",
			envKey: "SYLLABUS_BUILDER_VIDEO_SOURCE",
			envVal: "vimeo",
			want:   "validation failed",
		},
		{
			name:   "youtube source without key",
			envKey: "SYLLABUS_BUILDER_VIDEO_SOURCE",
			envVal: "youtube",
			want:   "validation failed",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.envKey, tc.envVal)

			_, err := Load()
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tc.want),
				"error %q should contain %q", err.Error(), tc.want)
		})
	}
}

func TestIntegrationsEnabled(t *testing.T) {
	var integrations IntegrationsConfig

	assert.False(t, integrations.NotionEnabled())
	assert.False(t, integrations.TrelloEnabled())
	assert.False(t, integrations.GitHubEnabled())

	integrations.Notion = NotionConfig{Token: "secret", ParentID: "page"}
	integrations.Trello = TrelloConfig{APIKey: "key", Token: "token"}
	integrations.GitHub = GitHubConfig{Token: "token"}

	assert.True(t, integrations.NotionEnabled())
	assert.True(t, integrations.TrelloEnabled())
	assert.True(t, integrations.GitHubEnabled())
}
