package log

import "go.uber.org/zap"

// ZapConfig holds configuration for the Zap logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool

	// File sink. Disabled when FilePath is empty.
	FilePath   string
	FileLevel  string
	MaxSizeMB  int
	MaxBackups int
}

// zapLogger implements Logger.
type zapLogger struct {
	sugarLogger *zap.SugaredLogger
	cfg         *ZapConfig
}
