package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Benchmark BenchmarkConfig `yaml:"benchmark"`
	Storage   StorageConfig   `yaml:"storage"`
	Server    ServerConfig    `yaml:"server"`
	Report    ReportConfig    `yaml:"report"`
	Log       LogConfig       `yaml:"log"`
}

type BenchmarkConfig struct {
	Sizes      []int  `yaml:"sizes"`
	SingleSize int    `yaml:"single_size"`
	Seed       uint64 `yaml:"seed"` // 0 = unseeded
}

type StorageConfig struct {
	Backend     string `yaml:"backend"` // btree | sqlite
	BTreeDegree int   `yaml:"btree_degree"`
}

type ServerConfig struct {
	Addr          string `yaml:"addr"`           // HTTP Listen Address (e.g. :8080)
	CollectorAddr string `yaml:"collector_addr"` // TCP Listen Address, empty disables the collector
}

type ReportConfig struct {
	ChartWidth int    `yaml:"chart_width"`
	Collector  string `yaml:"collector"` // stream results to this collector, empty disables
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func defaults() *Config {
	return &Config{
		Benchmark: BenchmarkConfig{
			Sizes:      []int{1000, 5000, 10000, 50000, 100000, 500000, 1000000, 2000000},
			SingleSize: 100000,
		},
		Storage: StorageConfig{
			Backend:     "btree",
			BTreeDegree: 32,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Report: ReportConfig{
			ChartWidth: 50,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func Load(configPath string) (*Config, error) {
	cfg := defaults()

	if configPath == "" {
		for _, p := range []string{"configs/sortbench.yaml", "sortbench.yaml"} {
			data, err := os.ReadFile(p)
			if err == nil {
				if err := yaml.Unmarshal(data, cfg); err != nil {
					return cfg, err
				}
				applyDefaults(cfg)
				return cfg, nil
			}
		}
		applyDefaults(cfg)
		return cfg, nil // no file found: use defaults
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if len(cfg.Benchmark.Sizes) == 0 {
		cfg.Benchmark.Sizes = defaults().Benchmark.Sizes
	}
	if cfg.Benchmark.SingleSize <= 0 {
		cfg.Benchmark.SingleSize = 100000
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = "btree"
	}
	if cfg.Storage.BTreeDegree < 2 {
		cfg.Storage.BTreeDegree = 32
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Report.ChartWidth <= 0 {
		cfg.Report.ChartWidth = 50
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}
