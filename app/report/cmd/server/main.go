package main

import (
	"flag"
	"os"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/env"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/report_forge/app/composer/pkg/logger"
	"github.com/iWorld-y/report_forge/app/report/internal/conf"
)

// go build -ldflags "-X main.Version=x.y.z"
var (
	// Name 是服务的名称
	Name string = "report"
	// Version 是服务的版本号
	Version string
	// flagconf 是配置文件的路径命令行参数
	flagconf string

	id, _ = os.Hostname()
)

func init() {
	flag.StringVar(&flagconf, "conf", "app/report/configs/config.yaml", "config path, eg: -conf config.yaml")
}

func newApp(logger log.Logger, hs *http.Server) *kratos.App {
	return kratos.New(
		kratos.ID(id),
		kratos.Name(Name),
		kratos.Version(Version),
		kratos.Metadata(map[string]string{}),
		kratos.Logger(logger),
		kratos.Server(hs),
	)
}

func main() {
	flag.Parse()

	// 环境变量用于解析配置文件中的 ${GROQ_API_KEY}
	c := config.New(
		config.WithSource(
			env.NewSource(),
			file.NewSource(flagconf),
		),
	)
	defer c.Close()

	if err := c.Load(); err != nil {
		panic(err)
	}

	var bc conf.Bootstrap
	if err := c.Scan(&bc); err != nil {
		panic(err)
	}
	bc.Normalize()

	if err := logger.InitLogger(bc.Log.Level, bc.Log.File); err != nil {
		panic(err)
	}
	kl := log.With(logger.NewKratosLogger(logger.Log),
		logger.CallerKey, log.DefaultCaller,
		"service.id", id,
		"service.name", Name,
		"service.version", Version,
	)

	app, cleanup, err := initApp(bc.Server, bc.Llm, bc.Upload, kl)
	if err != nil {
		panic(err)
	}
	defer cleanup()

	if err := app.Run(); err != nil {
		panic(err)
	}
}
