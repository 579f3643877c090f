package data

import (
	"fmt"
	"os"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/report_forge/app/report/internal/conf"
)

// Data 持有上传目录等进程级资源
type Data struct {
	uploadDir string
}

func NewData(c *conf.Upload, logger log.Logger) (*Data, func(), error) {
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to init upload dir: %w", err)
	}

	cleanup := func() {
		log.NewHelper(logger).Info("closing the data resources")
	}
	return &Data{uploadDir: c.Dir}, cleanup, nil
}
