package repo

import (
	"context"

	dm "github.com/iWorld-y/report_forge/app/composer/pkg/model"
)

// ContentGenerator 报告正文生成接口
type ContentGenerator interface {
	// Generate 生成报告正文，凭证错误以外的失败由实现自行降级
	Generate(ctx context.Context, ev dm.Event) (*dm.ReportContent, error)
}

// PhotoRepo 上传图片的临时存储
type PhotoRepo interface {
	// Remove 删除给定的临时文件，单个文件删除失败只记录日志
	Remove(ctx context.Context, paths []string)
}
