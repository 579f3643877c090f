package conf

import (
	"os"
	"path/filepath"
	"time"
)

type Bootstrap struct {
	Server *Server `json:"server"`
	Llm    *LLM    `json:"llm"`
	Upload *Upload `json:"upload"`
	Log    *Log    `json:"log"`
}

type Server struct {
	Http *HTTP `json:"http"`
	// Env 为 development 时错误响应会带上 details
	Env string `json:"env"`
}

type HTTP struct {
	Addr string `json:"addr"`
	// Timeout 为空或 0 时请求不设超时，LLM 调用不会被中途取消
	Timeout string `json:"timeout"`
}

// RequestTimeout 解析 Timeout，无法解析时按不设超时处理
func (h *HTTP) RequestTimeout() time.Duration {
	if h == nil || h.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(h.Timeout)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

type LLM struct {
	BaseUrl     string  `json:"base_url"`
	ApiKey      string  `json:"api_key"`
	Model       string  `json:"model"`
	Temperature float32 `json:"temperature"`
	MaxTokens   int32   `json:"max_tokens"`
	Qps         int32   `json:"qps"`
	Rpm         int32   `json:"rpm"`
}

type Upload struct {
	Dir         string `json:"dir"`
	MaxFileSize int64  `json:"max_file_size"`
	MaxFiles    int32  `json:"max_files"`
}

type Log struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

// Normalize 补全缺省配置
func (b *Bootstrap) Normalize() {
	if b.Server == nil {
		b.Server = &Server{}
	}
	if b.Server.Http == nil {
		b.Server.Http = &HTTP{}
	}
	if b.Server.Http.Addr == "" {
		b.Server.Http.Addr = "0.0.0.0:3000"
	}
	if b.Llm == nil {
		b.Llm = &LLM{}
	}
	if b.Upload == nil {
		b.Upload = &Upload{}
	}
	if b.Upload.Dir == "" {
		b.Upload.Dir = filepath.Join(os.TempDir(), "report_forge", "uploads")
	}
	if b.Upload.MaxFileSize <= 0 {
		b.Upload.MaxFileSize = 10 << 20
	}
	if b.Upload.MaxFiles <= 0 {
		b.Upload.MaxFiles = 3
	}
	if b.Log == nil {
		b.Log = &Log{Level: "info"}
	}
}

// Development 是否为开发环境
func (s *Server) Development() bool {
	return s != nil && s.Env == "development"
}
