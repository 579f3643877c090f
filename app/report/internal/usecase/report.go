package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/report_forge/app/composer/pkg/engine"
	dm "github.com/iWorld-y/report_forge/app/composer/pkg/model"
	"github.com/iWorld-y/report_forge/app/composer/pkg/render"
	"github.com/iWorld-y/report_forge/app/report/internal/domain"
	"github.com/iWorld-y/report_forge/app/report/internal/repo"
)

// RendererFactory 按格式选择渲染器
type RendererFactory func(render.Format) render.Renderer

// ReportUseCase 报告生成流程：校验 → 生成正文 → 渲染 → 清理上传文件
type ReportUseCase struct {
	gen       repo.ContentGenerator
	photos    repo.PhotoRepo
	renderers RendererFactory
	log       *log.Helper
	now       func() time.Time
}

// NewReportUseCase 创建报告生成业务逻辑实例
func NewReportUseCase(gen repo.ContentGenerator, photos repo.PhotoRepo, renderers RendererFactory, logger log.Logger) *ReportUseCase {
	return &ReportUseCase{
		gen:       gen,
		photos:    photos,
		renderers: renderers,
		log:       log.NewHelper(logger),
		now:       time.Now,
	}
}

// Generate 生成完整文档。无论成功与否，req.Photos 中的文件都会被删除
func (uc *ReportUseCase) Generate(ctx context.Context, req *domain.ReportRequest) (*domain.Result, error) {
	defer uc.photos.Remove(ctx, req.Photos)

	if !req.Event.Complete() {
		return nil, domain.ErrMissingFields()
	}

	l := uc.log.WithContext(ctx)
	l.Infof("Generating report for: %s, format: %s, photos: %d", req.Event.Title, req.Format, len(req.Photos))

	content, err := uc.gen.Generate(ctx, req.Event)
	if err != nil {
		if stderrors.Is(err, engine.ErrInvalidAPIKey) {
			return nil, domain.ErrInvalidAPIKey(err)
		}
		return nil, domain.ErrGeneration(err)
	}

	r := uc.renderers(req.Format)
	body, err := r.Render(ctx, &dm.Document{
		Event:   req.Event,
		Content: content,
		Photos:  req.Photos,
	})
	if err != nil {
		l.Errorf("render %s failed: %v", r.Extension(), err)
		return nil, domain.ErrRender(renderFailure(req.Format), err)
	}

	l.Infof("Report generated: %d bytes", len(body))
	return &domain.Result{
		Body:        body,
		ContentType: r.ContentType(),
		Filename:    fmt.Sprintf("report_%d.%s", uc.now().UnixMilli(), r.Extension()),
	}, nil
}

func renderFailure(f render.Format) string {
	if f == render.FormatDOCX {
		return "Failed to generate Word document"
	}
	return "Failed to generate PDF document"
}
