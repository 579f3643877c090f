package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"golang.org/x/time/rate"

	"github.com/iWorld-y/report_forge/app/composer/pkg/config"
	"github.com/iWorld-y/report_forge/app/composer/pkg/logger"
	dm "github.com/iWorld-y/report_forge/app/composer/pkg/model"
)

// ErrInvalidAPIKey LLM 凭证缺失或无效，属于配置错误，不会回退
var ErrInvalidAPIKey = errors.New("invalid llm api key")

// Engine 报告正文生成引擎
type Engine struct {
	chatModel   model.BaseChatModel
	limiter     *rate.Limiter
	hasKey      bool
	temperature float32
	maxTokens   int
}

// NewEngine 根据配置创建引擎实例
func NewEngine(cfg *config.Config) (*Engine, error) {
	ctx := context.Background()
	cfg.LLM.ApplyDefaults()

	// 初始化 LLM
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: cfg.LLM.BaseURL,
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM 初始化失败: %w", err)
	}

	e := NewEngineWithModel(chatModel, newLimiter(cfg.Concurrency))
	e.hasKey = cfg.LLM.APIKey != ""
	e.temperature = cfg.LLM.Temperature
	e.maxTokens = cfg.LLM.MaxTokens
	return e, nil
}

// NewEngineWithModel 使用已有的 ChatModel 创建引擎，limiter 可以为 nil
func NewEngineWithModel(cm model.BaseChatModel, limiter *rate.Limiter) *Engine {
	return &Engine{
		chatModel:   cm,
		limiter:     limiter,
		hasKey:      true,
		temperature: config.DefaultTemperature,
		maxTokens:   config.DefaultMaxTokens,
	}
}

func newLimiter(c config.ConcurrencyConfig) *rate.Limiter {
	if c.RPM <= 0 {
		return nil
	}
	burst := c.QPS
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(float64(c.RPM)/60.0), burst)
	logger.Log.Infof("限流器已配置: Limit=%.2f req/s, Burst=%d", limiter.Limit(), burst)
	return limiter
}

// Generate 调用 LLM 生成报告正文
//
// 凭证错误返回 ErrInvalidAPIKey，其余任何失败都降级为 Fallback 的结果。
func (e *Engine) Generate(ctx context.Context, ev dm.Event) (*dm.ReportContent, error) {
	if !e.hasKey {
		return nil, ErrInvalidAPIKey
	}

	text, err := e.complete(ctx, ev)
	if err != nil {
		if isAuthError(err) {
			logger.Log.Errorf("LLM 凭证无效: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidAPIKey, err)
		}
		logger.Log.Warnf("LLM 生成失败，使用兜底报告 [%s]: %v", ev.Title, err)
		return Fallback(ev), nil
	}

	return &dm.ReportContent{
		FullText: text,
		Sections: ParseSections(text),
	}, nil
}

func (e *Engine) complete(ctx context.Context, ev dm.Event) (string, error) {
	if e.limiter != nil {
		if err := e.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	messages := []*schema.Message{
		{Role: schema.System, Content: systemPrompt},
		{Role: schema.User, Content: buildPrompt(ev)},
	}

	resp, err := e.chatModel.Generate(ctx, messages,
		model.WithTemperature(e.temperature),
		model.WithMaxTokens(e.maxTokens),
	)
	if err != nil {
		return "", err
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return "", errors.New("empty completion")
	}
	logger.Log.Debugf("LLM 生成完成 [%s]: %d 字符", ev.Title, len(resp.Content))
	return resp.Content, nil
}

// authMarkers 凭证错误的特征文本，状态码按 go-openai APIError 的
// "status code: 401" 格式匹配，不匹配裸数字
var authMarkers = []string{
	"status code: 401",
	"401 unauthorized",
	"invalid_api_key",
	"invalid api key",
	"incorrect api key",
	"api key",
}

func isAuthError(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, s := range authMarkers {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
