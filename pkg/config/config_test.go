//go:build unit

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/pr-origin/configs"
	"github.com/lerenn/pr-origin/pkg/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

func validConfig() *Config {
	return &Config{
		URL:            "https://github.com/google/example",
		IntegrateLabel: DefaultIntegrateLabel,
		TokenEnv:       DefaultTokenEnv,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr error
	}{
		{
			name:   "valid config",
			modify: func(_ *Config) {},
		},
		{
			name: "valid config with labels and state",
			modify: func(c *Config) {
				c.RequiredLabels = []string{"foo: yes", "bar: yes"}
				c.RequiredState = StateOpen
				c.UseMerge = true
			},
		},
		{
			name:    "empty url",
			modify:  func(c *Config) { c.URL = "" },
			wantErr: ErrURLEmpty,
		},
		{
			name:    "url without repository",
			modify:  func(c *Config) { c.URL = "https://github.com/google" },
			wantErr: ErrInvalidURL,
		},
		{
			name:    "empty required label",
			modify:  func(c *Config) { c.RequiredLabels = []string{"foo", " "} },
			wantErr: ErrEmptyLabel,
		},
		{
			name:    "unknown state",
			modify:  func(c *Config) { c.RequiredState = "merged" },
			wantErr: ErrInvalidState,
		},
		{
			name:    "empty integrate label",
			modify:  func(c *Config) { c.IntegrateLabel = "" },
			wantErr: ErrIntegrateLabelKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.modify(config)

			err := config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	config := &Config{URL: "https://github.com/google/example"}
	assert.ErrorIs(t, config.Validate(), ErrIntegrateLabelKey)

	config.ApplyDefaults()
	assert.Equal(t, DefaultIntegrateLabel, config.IntegrateLabel)
	assert.Equal(t, DefaultTokenEnv, config.TokenEnv)
	assert.NoError(t, config.Validate())

	config.IntegrateLabel = "CUSTOM"
	config.ApplyDefaults()
	assert.Equal(t, "CUSTOM", config.IntegrateLabel)
}

func TestConfig_RemoteURL(t *testing.T) {
	config := validConfig()
	assert.Equal(t, "https://github.com/google/example", config.RemoteURL())

	config.FetchURL = "/tmp/hub/google/example"
	assert.Equal(t, "/tmp/hub/google/example", config.RemoteURL())
}

func TestConfig_Token(t *testing.T) {
	t.Setenv("PRORIGIN_TEST_TOKEN", "secret")

	config := validConfig()
	config.TokenEnv = "PRORIGIN_TEST_TOKEN"
	assert.Equal(t, "secret", config.Token())

	config.TokenEnv = ""
	assert.Empty(t, config.Token())
}

func TestRealManager_DefaultConfig(t *testing.T) {
	config := NewManager().DefaultConfig()

	require.NotNil(t, config)
	assert.Empty(t, config.URL)
	assert.Equal(t, DefaultIntegrateLabel, config.IntegrateLabel)
	assert.Equal(t, DefaultTokenEnv, config.TokenEnv)
	assert.False(t, config.UseMerge)
	assert.Empty(t, config.RequiredLabels)
}

func TestRealManager_LoadConfig(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	validYAML := `url: https://github.com/google/example
required_labels:
  - "foo: yes"
  - "bar: yes"
use_merge: true
mirror_dir: ` + filepath.Join(tempDir, "mirrors") + `
`
	require.NoError(t, os.WriteFile(configPath, []byte(validYAML), 0644))

	config, err := NewManager().LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/google/example", config.URL)
	assert.Equal(t, []string{"foo: yes", "bar: yes"}, config.RequiredLabels)
	assert.True(t, config.UseMerge)
	assert.Equal(t, filepath.Join(tempDir, "mirrors"), config.MirrorDir)
	assert.Equal(t, DefaultIntegrateLabel, config.IntegrateLabel)
}

func TestRealManager_LoadConfig_ExpandsTilde(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, os.WriteFile(configPath, []byte("url: https://github.com/google/example\nmirror_dir: ~/mirrors\n"), 0644))

	config, err := NewManager().LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(homeDir, "mirrors"), config.MirrorDir)
}

func TestRealManager_LoadConfig_FileNotFound(t *testing.T) {
	config, err := NewManager().LoadConfig("/nonexistent/path/config.yaml")

	assert.Nil(t, config)
	assert.ErrorIs(t, err, ErrConfigFileNotFound)
}

func TestRealManager_LoadConfig_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid-config.yaml")
	invalidYAML := `url: https://github.com/google/example
invalid: yaml: structure: here`
	require.NoError(t, os.WriteFile(configPath, []byte(invalidYAML), 0644))

	config, err := NewManager().LoadConfig(configPath)

	assert.Nil(t, config)
	assert.ErrorIs(t, err, ErrConfigFileParse)
}

func TestRealManager_LoadConfig_Invalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("required_labels: [foo]\n"), 0644))

	config, err := NewManager().LoadConfig(configPath)

	assert.Nil(t, config)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, ErrURLEmpty)
}

func TestRealManager_SaveConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.yaml")
	manager := NewManager()

	config := validConfig()
	config.RequiredLabels = []string{"foo: yes"}
	require.NoError(t, manager.SaveConfig(configPath, config))

	loaded, err := manager.LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}

func TestLoadConfigWithFallback_WithValidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("url: https://github.com/google/example\n"), 0644))

	config, err := LoadConfigWithFallback(configPath)

	require.NoError(t, err)
	assert.Equal(t, "https://github.com/google/example", config.URL)
}

func TestLoadConfigWithFallback_WithMissingFile(t *testing.T) {
	config, err := LoadConfigWithFallback("/nonexistent/path/config.yaml")

	assert.NoError(t, err)
	require.NotNil(t, config)
	assert.Equal(t, DefaultIntegrateLabel, config.IntegrateLabel)
}

func TestLoadConfigWithFallback_WithInvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("url: [unterminated\n"), 0644))

	_, err := LoadConfigWithFallback(configPath)
	assert.ErrorIs(t, err, ErrConfigFileParse)
}

func TestManager_WithMockFS(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fs.NewMockFS(ctrl)
	manager := &realManager{fs: mockFS}

	t.Run("stat failure", func(t *testing.T) {
		mockFS.EXPECT().Exists("/etc/prorigin.yaml").Return(false, errors.New("permission denied"))

		_, err := manager.LoadConfig("/etc/prorigin.yaml")
		assert.ErrorContains(t, err, "permission denied")
		assert.NotErrorIs(t, err, ErrConfigFileNotFound)
	})

	t.Run("read from fs", func(t *testing.T) {
		mockFS.EXPECT().Exists("/etc/prorigin.yaml").Return(true, nil)
		mockFS.EXPECT().ReadFile("/etc/prorigin.yaml").Return([]byte("url: https://github.com/google/example\nuse_merge: true\n"), nil)

		config, err := manager.LoadConfig("/etc/prorigin.yaml")
		require.NoError(t, err)
		assert.True(t, config.UseMerge)
	})

	t.Run("atomic save", func(t *testing.T) {
		mockFS.EXPECT().WriteFileAtomic("/etc/prorigin.yaml", gomock.Any(), os.FileMode(0644)).Return(errors.New("disk full"))

		err := manager.SaveConfig("/etc/prorigin.yaml", validConfig())
		assert.ErrorIs(t, err, ErrConfigFileWrite)
	})
}

func TestEmbeddedDefaultConfig(t *testing.T) {
	var config Config
	require.NoError(t, yaml.Unmarshal(configs.DefaultConfigYAML, &config))

	assert.NoError(t, config.Validate())
	assert.Empty(t, config.RequiredLabels)
	assert.False(t, config.UseMerge)
	assert.Equal(t, DefaultIntegrateLabel, config.IntegrateLabel)
	assert.Equal(t, DefaultTokenEnv, config.TokenEnv)
}
