package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// TrainingConfig holds the GloVe hyperparameters. The seed is part of the
// config so runs are reproducible without ambient global state.
type TrainingConfig struct {
	WindowSize           int     `yaml:"window_size"`
	Rank                 int     `yaml:"rank"`
	LearningRate         float64 `yaml:"learning_rate"`
	MaxIterations        int     `yaml:"max_iterations"`
	ConvergenceTolerance float64 `yaml:"convergence_tolerance"`
	XMax                 float64 `yaml:"x_max"`
	Alpha                float64 `yaml:"alpha"`
	Seed                 int64   `yaml:"seed"`
}

// EmbeddingsConfig selects where the embedding space comes from.
type EmbeddingsConfig struct {
	Source         string `yaml:"source"` // "train" or "pretrained"
	PretrainedPath string `yaml:"pretrained_path,omitempty"`
}

// QdrantConfig contains connection details for a Qdrant vector store.
type QdrantConfig struct {
	URL         string `yaml:"url"`
	APIKeyEnv   string `yaml:"api_key_env"`
	Collection  string `yaml:"collection"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// StoreConfig selects and configures the word-vector store used for
// nearest-neighbour exploration.
type StoreConfig struct {
	Type   string        `yaml:"type"`
	Qdrant *QdrantConfig `yaml:"qdrant,omitempty"`
}

// QueryConfig holds query-surface defaults.
type QueryConfig struct {
	TopK int `yaml:"top_k"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Embeddings EmbeddingsConfig `yaml:"embeddings"`
	Training   TrainingConfig   `yaml:"training"`
	Store      StoreConfig      `yaml:"store"`
	Query      QueryConfig      `yaml:"query"`
}

// Load reads a config from a specified path. If the file does not exist,
// returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/weat/config.yaml.
// If neither exists, it writes defaults to ~/.config/weat/config.yaml and
// returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "weat", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Embeddings: EmbeddingsConfig{Source: "train"},
		Training: TrainingConfig{
			WindowSize:           10,
			Rank:                 50,
			LearningRate:         0.05,
			MaxIterations:        100,
			ConvergenceTolerance: 1e-4,
			XMax:                 100,
			Alpha:                0.75,
			Seed:                 42,
		},
		Store: StoreConfig{Type: "memory"},
		Query: QueryConfig{TopK: 10},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	def := defaultConfig()
	if cfg.Embeddings.Source == "" {
		cfg.Embeddings.Source = def.Embeddings.Source
	}
	t := &cfg.Training
	if t.WindowSize == 0 {
		t.WindowSize = def.Training.WindowSize
	}
	if t.Rank == 0 {
		t.Rank = def.Training.Rank
	}
	if t.LearningRate == 0 {
		t.LearningRate = def.Training.LearningRate
	}
	if t.MaxIterations == 0 {
		t.MaxIterations = def.Training.MaxIterations
	}
	if t.ConvergenceTolerance == 0 {
		t.ConvergenceTolerance = def.Training.ConvergenceTolerance
	}
	if t.XMax == 0 {
		t.XMax = def.Training.XMax
	}
	if t.Alpha == 0 {
		t.Alpha = def.Training.Alpha
	}
	if cfg.Store.Type == "" {
		cfg.Store.Type = def.Store.Type
	}
	if cfg.Store.Type == "qdrant" && cfg.Store.Qdrant != nil {
		if cfg.Store.Qdrant.APIKeyEnv == "" {
			cfg.Store.Qdrant.APIKeyEnv = "QDRANT_API_KEY"
		}
		if cfg.Store.Qdrant.TimeoutSecs == 0 {
			cfg.Store.Qdrant.TimeoutSecs = 15
		}
	}
	if cfg.Query.TopK == 0 {
		cfg.Query.TopK = def.Query.TopK
	}
}

func validate(cfg *AppConfig) error {
	switch cfg.Embeddings.Source {
	case "train", "pretrained":
	default:
		return fmt.Errorf("unknown embeddings source %q", cfg.Embeddings.Source)
	}
	t := cfg.Training
	if t.WindowSize < 0 || t.Rank < 0 || t.LearningRate < 0 || t.MaxIterations < 0 ||
		t.ConvergenceTolerance < 0 {
		return errors.New("training parameters must be positive")
	}
	return nil
}
