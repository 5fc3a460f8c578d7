// Package logger 提供基于 zap 的日志工具
//
// 与命令行 -verbose 开关联动：
//   - verbose: 开发模式控制台输出，Debug 级别
//   - 非 verbose: 生产模式 JSON 输出，只记录 Warn 及以上
//
// 各系统通过 Named 获取带标签的子日志器（如 "Render"、"App"），
// 输出中以 logger 字段区分来源。
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New 根据 verbose 创建日志器
func New(verbose bool) (*zap.Logger, error) {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		cfg.DisableCaller = true
		cfg.Sampling = &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		}
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return l, nil
}

// OrNop 返回非 nil 的日志器，nil 时返回空日志器
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

// Named 返回带标签的子日志器，l 为 nil 时返回空日志器
func Named(l *zap.Logger, tag string) *zap.Logger {
	return OrNop(l).Named(tag)
}
