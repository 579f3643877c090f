package config

import (
	"os"

	"gopkg.in/yaml.v3"

	dm "github.com/iWorld-y/report_forge/app/composer/pkg/model"
)

const (
	DefaultBaseURL     = "https://api.groq.com/openai/v1"
	DefaultModel       = "llama-3.3-70b-versatile"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 2000
)

// Config 报告生成任务配置（命令行模式使用）
type Config struct {
	LLM         LLMConfig         `yaml:"llm"`
	Log         LogConfig         `yaml:"log"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
	Event       dm.Event          `yaml:"event"`
	Photos      []string          `yaml:"photos"`
}

// LLMConfig LLM 相关配置
type LLMConfig struct {
	BaseURL     string  `yaml:"base_url"`
	APIKey      string  `yaml:"api_key"`
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ConcurrencyConfig LLM 调用限流配置，RPM 为 0 时不限流
type ConcurrencyConfig struct {
	QPS int `yaml:"qps"`
	RPM int `yaml:"rpm"`
}

// OutputConfig 输出文件配置
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"` // pdf 或 docx
}

// ApplyDefaults 为未填写的 LLM 参数补充默认值
func (c *LLMConfig) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Temperature == 0 {
		c.Temperature = DefaultTemperature
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = DefaultMaxTokens
	}
}

// LoadConfig 从指定路径加载配置，文件中的 ${VAR} 会被环境变量替换
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, err
	}
	cfg.LLM.ApplyDefaults()
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "."
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "pdf"
	}

	return &cfg, nil
}
