package server

import (
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/report_forge/app/composer/pkg/config"
	"github.com/iWorld-y/report_forge/app/composer/pkg/engine"
	"github.com/iWorld-y/report_forge/app/composer/pkg/render/factory"
	"github.com/iWorld-y/report_forge/app/report/internal/conf"
	"github.com/iWorld-y/report_forge/app/report/internal/usecase"
)

// NewReportEngine 初始化报告正文生成引擎
func NewReportEngine(c *conf.LLM, logger log.Logger) (*engine.Engine, error) {
	h := log.NewHelper(logger)

	// 将 internal/conf.LLM 转换为 pkg/config.Config
	cfg := &config.Config{
		LLM: config.LLMConfig{
			BaseURL:     c.BaseUrl,
			APIKey:      c.ApiKey,
			Model:       c.Model,
			Temperature: c.Temperature,
			MaxTokens:   int(c.MaxTokens),
		},
		Concurrency: config.ConcurrencyConfig{
			QPS: int(c.Qps),
			RPM: int(c.Rpm),
		},
	}
	if cfg.LLM.APIKey == "" {
		h.Warn("LLM api key is not set, set GROQ_API_KEY before generating reports")
	}

	eng, err := engine.NewEngine(cfg)
	if err != nil {
		h.Errorf("Failed to init engine: %v", err)
		return nil, err
	}
	return eng, nil
}

// NewRendererFactory 按格式创建 PDF / DOCX 渲染器
func NewRendererFactory() usecase.RendererFactory {
	return factory.NewRenderer
}
