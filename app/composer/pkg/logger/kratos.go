package logger

import (
	"fmt"
	"sort"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/sirupsen/logrus"
)

var _ log.Logger = (*kratosLogger)(nil)

type kratosLogger struct {
	log *logrus.Logger
}

// NewKratosLogger 把 logrus 包装成 kratos 的 log.Logger，服务层与引擎共用同一输出
func NewKratosLogger(l *logrus.Logger) log.Logger {
	if l == nil {
		l = Log
	}
	return &kratosLogger{log: l}
}

// Log 实现 log.Logger 接口
func (k *kratosLogger) Log(level log.Level, keyvals ...interface{}) error {
	if len(keyvals) == 0 {
		return nil
	}
	if len(keyvals)%2 != 0 {
		keyvals = append(keyvals, "KEYVALS UNPAIRED")
	}

	var msg string
	fields := make(logrus.Fields, len(keyvals)/2)
	for i := 0; i < len(keyvals); i += 2 {
		key := fmt.Sprint(keyvals[i])
		if key == log.DefaultMessageKey {
			msg = fmt.Sprint(keyvals[i+1])
			continue
		}
		fields[key] = keyvals[i+1]
	}

	entry := k.log.WithFields(fields)
	switch level {
	case log.LevelDebug:
		entry.Debug(msg)
	case log.LevelWarn:
		entry.Warn(msg)
	case log.LevelError:
		entry.Error(msg)
	case log.LevelFatal:
		entry.Fatal(msg)
	default:
		entry.Info(msg)
	}
	return nil
}

func sortedKeys(data logrus.Fields) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
