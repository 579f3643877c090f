package server

import (
	"embed"
	nethttp "net/http"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/report_forge/app/report/internal/conf"
	"github.com/iWorld-y/report_forge/app/report/internal/data"
	"github.com/iWorld-y/report_forge/app/report/internal/service"
)

//go:embed assets/*
var assets embed.FS

func NewHTTPServer(c *conf.Server, u *conf.Upload, s *service.ReportService, photos *data.PhotoRepo, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
		),
	}
	if c.Http.Addr != "" {
		opts = append(opts, http.Address(c.Http.Addr))
	}
	// kratos 默认 1s 超时，这里总是显式设置，0 表示不设超时
	opts = append(opts, http.Timeout(c.Http.RequestTimeout()))

	srv := http.NewServer(opts...)

	upload := UploadFilter(u, photos, s)
	srv.Handle("/api/generate-report", upload(nethttp.HandlerFunc(s.GenerateReport)))
	srv.HandleFunc("/api/health", s.Health)

	srv.HandleFunc("/", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		content, err := assets.ReadFile("assets/index.html")
		if err != nil {
			log.NewHelper(logger).Errorf("read index.html: %v", err)
			nethttp.Error(w, "index not found", nethttp.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(content)
	})

	return srv
}
