package server

import (
	"errors"
	"io"
	"mime"
	"mime/multipart"
	nethttp "net/http"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/report_forge/app/report/internal/conf"
	"github.com/iWorld-y/report_forge/app/report/internal/data"
	"github.com/iWorld-y/report_forge/app/report/internal/domain"
	"github.com/iWorld-y/report_forge/app/report/internal/service"
)

const (
	photoField     = "photos"
	formFieldsSize = 1 << 20
)

var (
	allowedTypes = regexp.MustCompile(`jpeg|jpg|png|gif`)

	errFileTooLarge = errors.New("file too large")
)

// UploadFilter 按顺序流式读取 multipart 表单，把 photos 字段的图片落盘。
// 文件个数在读取文件内容之前检查，类型、大小或数量不合规时直接拒绝
func UploadFilter(c *conf.Upload, photos *data.PhotoRepo, s *service.ReportService) http.FilterFunc {
	return func(next nethttp.Handler) nethttp.Handler {
		return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			if r.Method != nethttp.MethodPost || !isMultipart(r) {
				next.ServeHTTP(w, r)
				return
			}

			r.Body = nethttp.MaxBytesReader(w, r.Body, int64(c.MaxFiles)*c.MaxFileSize+formFieldsSize)
			mr, err := r.MultipartReader()
			if err != nil {
				s.Error(w, domain.ErrUploadRejected(uploadFailure(err)))
				return
			}

			values, paths, err := readForm(c, photos, mr)
			if err != nil {
				photos.Remove(r.Context(), paths)
				s.Error(w, err)
				return
			}

			r.Form = values
			r.PostForm = values
			r.MultipartForm = &multipart.Form{Value: values}
			next.ServeHTTP(w, r.WithContext(domain.WithPhotos(r.Context(), paths)))
		})
	}
}

func isMultipart(r *nethttp.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "multipart/form-data"
}

// readForm 返回普通字段和已保存的图片路径，出错时 paths 为已经落盘的部分
func readForm(c *conf.Upload, photos *data.PhotoRepo, mr *multipart.Reader) (url.Values, []string, error) {
	values := make(url.Values)
	var paths []string
	var fieldBytes int64

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return values, paths, nil
		}
		if err != nil {
			return values, paths, domain.ErrUploadRejected(uploadFailure(err))
		}

		name := part.FormName()
		if part.FileName() == "" {
			if name == "" {
				continue
			}
			b, err := io.ReadAll(io.LimitReader(part, formFieldsSize-fieldBytes+1))
			if err != nil {
				return values, paths, domain.ErrUploadRejected(uploadFailure(err))
			}
			fieldBytes += int64(len(b))
			if fieldBytes > formFieldsSize {
				return values, paths, domain.ErrUploadRejected("Form fields too large")
			}
			values.Add(name, string(b))
			continue
		}

		if name != photoField {
			return values, paths, domain.ErrUploadRejected("Unexpected field")
		}
		if len(paths) >= int(c.MaxFiles) {
			return values, paths, domain.ErrUploadRejected("Too many files")
		}
		if !allowedImage(part.FileName(), part.Header.Get("Content-Type")) {
			return values, paths, domain.ErrUploadRejected("Only image files are allowed!")
		}

		p, err := photos.Save(part.FileName(), &sizeCap{r: part, left: c.MaxFileSize})
		if err != nil {
			if msg := uploadFailure(err); msg == "File too large" {
				return values, paths, domain.ErrUploadRejected(msg)
			}
			return values, paths, domain.ErrUploadRejected("Failed to store uploaded file").WithCause(err)
		}
		paths = append(paths, p)
	}
}

// sizeCap 读取超过 left 字节时返回 errFileTooLarge
type sizeCap struct {
	r    io.Reader
	left int64
}

func (s *sizeCap) Read(b []byte) (int, error) {
	n, err := s.r.Read(b)
	s.left -= int64(n)
	if s.left < 0 {
		return n, errFileTooLarge
	}
	return n, err
}

// allowedImage 扩展名和 Content-Type 都必须是 jpeg/jpg/png/gif
func allowedImage(filename, contentType string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return allowedTypes.MatchString(ext) && allowedTypes.MatchString(contentType)
}

func uploadFailure(err error) string {
	var tooLarge *nethttp.MaxBytesError
	if errors.As(err, &tooLarge) || errors.Is(err, errFileTooLarge) {
		return "File too large"
	}
	return "Malformed upload: " + err.Error()
}
