package server

import (
	"github.com/google/wire"

	"github.com/iWorld-y/report_forge/app/composer/pkg/engine"
	"github.com/iWorld-y/report_forge/app/report/internal/data"
	"github.com/iWorld-y/report_forge/app/report/internal/repo"
	"github.com/iWorld-y/report_forge/app/report/internal/service"
	"github.com/iWorld-y/report_forge/app/report/internal/usecase"
)

// ProviderSet 是报告服务的依赖注入 Provider 集合
var ProviderSet = wire.NewSet(
	// Server providers
	NewHTTPServer,

	// Data providers
	data.NewData,
	data.NewPhotoRepo,
	wire.Bind(new(repo.PhotoRepo), new(*data.PhotoRepo)),

	// Engine providers
	NewReportEngine,
	NewRendererFactory,
	wire.Bind(new(repo.ContentGenerator), new(*engine.Engine)),

	// UseCase providers
	usecase.NewReportUseCase,

	// Service providers
	service.NewReportService,
)
