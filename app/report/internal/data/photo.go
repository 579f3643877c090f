package data

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"

	"github.com/iWorld-y/report_forge/app/report/internal/repo"
)

// PhotoRepo 把上传的图片写入临时目录，并在请求结束后删除
type PhotoRepo struct {
	data *Data
	log  *log.Helper
}

var _ repo.PhotoRepo = (*PhotoRepo)(nil)

func NewPhotoRepo(data *Data, logger log.Logger) *PhotoRepo {
	return &PhotoRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

// Save 把 src 写入上传目录，文件名为 <毫秒时间戳>-<随机串><扩展名>。
// 写入失败时删除半成品文件并原样返回 src 的读取错误
func (r *PhotoRepo) Save(filename string, src io.Reader) (string, error) {
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(),
		strings.ReplaceAll(uuid.NewString(), "-", "")[:12],
		strings.ToLower(filepath.Ext(filename)))
	path := filepath.Join(r.data.uploadDir, name)

	dst, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

// Remove 逐个删除文件，已不存在的文件视为删除成功
func (r *PhotoRepo) Remove(ctx context.Context, paths []string) {
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			r.log.WithContext(ctx).Errorf("Error deleting file %s: %v", p, err)
		}
	}
}
