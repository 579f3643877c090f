package domain

import (
	"context"

	dm "github.com/iWorld-y/report_forge/app/composer/pkg/model"
	"github.com/iWorld-y/report_forge/app/composer/pkg/render"
)

// ReportRequest 单次报告生成请求
type ReportRequest struct {
	Event  dm.Event
	Photos []string // 已落盘的临时图片路径，最多 3 张
	Format render.Format
}

// Result 渲染完成的文档
type Result struct {
	Body        []byte
	ContentType string
	Filename    string
}

type photosKey struct{}

// WithPhotos 把上传中间件保存的图片路径放入请求上下文
func WithPhotos(ctx context.Context, paths []string) context.Context {
	return context.WithValue(ctx, photosKey{}, paths)
}

// PhotosFromContext 取出上传的图片路径
func PhotosFromContext(ctx context.Context) []string {
	paths, _ := ctx.Value(photosKey{}).([]string)
	return paths
}
