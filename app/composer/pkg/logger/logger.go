package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log 全局日志实例，InitLogger 之前使用 logrus 默认配置
var Log = logrus.New()

// CallerKey 字段中携带的调用位置，例如 kratos log.DefaultCaller 的值，
// 存在时优先于 logrus 自身记录的调用位置
const CallerKey = "caller"

// CustomFormatter 自定义日志格式
type CustomFormatter struct{}

// Format 实现 logrus.Formatter 接口
func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var fileLine string
	if c, ok := entry.Data[CallerKey]; ok {
		fileLine = fmt.Sprint(c)
	} else if entry.HasCaller() {
		fileName := filepath.Base(entry.Caller.File)
		fileLine = fmt.Sprintf("%s:%d", fileName, entry.Caller.Line)
	}

	// 对齐级别长度，例如 INFO, WARN, ERRO
	level := strings.ToUpper(entry.Level.String())
	if len(level) > 4 {
		level = level[:4]
	}

	timeStr := entry.Time.Format("2006-01-02 15:04:05")

	// 组装日志信息: [TIME] [LEVEL] [FILE:LINE] MSG key=value...
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] [%s] [%s] %s", timeStr, level, fileLine, entry.Message)
	for _, k := range sortedKeys(entry.Data) {
		if k == CallerKey {
			continue
		}
		fmt.Fprintf(&sb, " %s=%v", k, entry.Data[k])
	}
	sb.WriteByte('\n')

	return []byte(sb.String()), nil
}

// InitLogger 初始化日志
func InitLogger(levelStr string, filePath string) error {
	Log = logrus.New()

	// 开启 ReportCaller 以获取文件名和行号
	Log.SetReportCaller(true)
	Log.SetFormatter(&CustomFormatter{})

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// 同时输出到控制台和文件
	writers := []io.Writer{os.Stdout}
	if filePath != "" {
		logDir := filepath.Dir(filePath)
		if logDir != "." {
			if err := os.MkdirAll(logDir, 0o755); err != nil {
				return fmt.Errorf("failed to create log directory: %w", err)
			}
		}

		file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return err
		}
		writers = append(writers, file)
	}
	Log.SetOutput(io.MultiWriter(writers...))

	return nil
}
