package logger

import (
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"
	"go.uber.org/zap"
)

// logxWriter 把 go-zero logx 的输出转接到 zap，使框架日志与业务日志共用同一个 sink
type logxWriter struct {
	l *zap.Logger
}

// NewLogxWriter 返回实现 logx.Writer 的适配器
func NewLogxWriter(l *zap.Logger) logx.Writer {
	return &logxWriter{l: l.WithOptions(zap.AddCallerSkip(3))}
}

// SetupLogx 让 logx 输出到 Init 创建的全局 logger（与业务日志共用同一个滚动文件）
func SetupLogx() {
	logx.SetWriter(NewLogxWriter(base))
}

func (w *logxWriter) Alert(v any) {
	w.l.Error(fmt.Sprint(v))
}

func (w *logxWriter) Close() error {
	return w.l.Sync()
}

func (w *logxWriter) Debug(v any, fields ...logx.LogField) {
	w.l.Debug(fmt.Sprint(v), toZapFields(fields...)...)
}

func (w *logxWriter) Error(v any, fields ...logx.LogField) {
	w.l.Error(fmt.Sprint(v), toZapFields(fields...)...)
}

func (w *logxWriter) Info(v any, fields ...logx.LogField) {
	w.l.Info(fmt.Sprint(v), toZapFields(fields...)...)
}

func (w *logxWriter) Severe(v any) {
	w.l.Error(fmt.Sprint(v), zap.String("severity", "severe"))
}

func (w *logxWriter) Slow(v any, fields ...logx.LogField) {
	w.l.Warn(fmt.Sprint(v), toZapFields(fields...)...)
}

func (w *logxWriter) Stack(v any) {
	w.l.Error(fmt.Sprint(v), zap.Stack("stack"))
}

func (w *logxWriter) Stat(v any, fields ...logx.LogField) {
	w.l.Info(fmt.Sprint(v), toZapFields(fields...)...)
}

func toZapFields(fields ...logx.LogField) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		zapFields = append(zapFields, zap.Any(f.Key, f.Value))
	}
	return zapFields
}
