package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/iWorld-y/report_forge/app/composer/pkg/config"
	"github.com/iWorld-y/report_forge/app/composer/pkg/engine"
	"github.com/iWorld-y/report_forge/app/composer/pkg/logger"
	dm "github.com/iWorld-y/report_forge/app/composer/pkg/model"
	"github.com/iWorld-y/report_forge/app/composer/pkg/render"
	"github.com/iWorld-y/report_forge/app/composer/pkg/render/factory"
)

var flagconf string

func init() {
	flag.StringVar(&flagconf, "conf", "app/composer/configs/job.yaml", "job config path, eg: -conf job.yaml")
}

func main() {
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.LoadConfig(flagconf)
	if err != nil {
		log.Fatalf("无法加载配置文件: %v", err)
	}

	// 2. 初始化日志
	if err = logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		log.Fatalf("无法初始化日志: %v", err)
	}

	// 验证配置
	if !cfg.Event.Complete() {
		logger.Log.Fatal("配置错误: event 缺少必填字段")
	}
	if cfg.LLM.APIKey == "" {
		logger.Log.Warn("未设置 llm.api_key，生成将以配置错误结束")
	}
	logger.Log.Infof("开始生成报告: %s", cfg.Event.Title)

	ctx := context.Background()

	// 3. 初始化引擎
	eng, err := engine.NewEngine(cfg)
	if err != nil {
		logger.Log.Fatalf("引擎初始化失败: %v", err)
	}

	// 4. 生成正文，所有格式共用同一份内容
	content, err := eng.Generate(ctx, cfg.Event)
	if err != nil {
		logger.Log.Fatalf("生成报告正文失败: %v", err)
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		logger.Log.Fatalf("无法创建输出目录: %v", err)
	}

	// 5. 并发渲染各格式；命令行模式下图片归调用方所有，不做删除
	doc := &dm.Document{Event: cfg.Event, Content: content, Photos: cfg.Photos}
	stamp := time.Now().UnixMilli()

	var wg sync.WaitGroup
	var mu sync.Mutex
	var failed []string

	for _, f := range formats(cfg.Output.Format) {
		wg.Add(1)
		go func(format render.Format) {
			defer wg.Done()

			path, err := write(ctx, factory.NewRenderer(format), doc, cfg.Output.Dir, stamp)
			if err != nil {
				logger.Log.Errorf("渲染失败 [%s]: %v", format, err)
				mu.Lock()
				failed = append(failed, string(format))
				mu.Unlock()
				return
			}
			logger.Log.Infof("✅ 报告已生成: %s", path)
		}(f)
	}

	wg.Wait()

	if len(failed) > 0 {
		logger.Log.Fatalf("部分格式渲染失败: %s", strings.Join(failed, ", "))
	}
}

// formats 解析逗号分隔的格式列表，例如 "pdf,docx"
func formats(s string) []render.Format {
	seen := make(map[render.Format]bool)
	var out []render.Format
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f := render.ParseFormat(part)
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		out = append(out, render.FormatPDF)
	}
	return out
}

func write(ctx context.Context, r render.Renderer, doc *dm.Document, dir string, stamp int64) (string, error) {
	body, err := r.Render(ctx, doc)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("report_%d.%s", stamp, r.Extension()))
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
