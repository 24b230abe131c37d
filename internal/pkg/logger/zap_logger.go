package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kevin997/csl-payments/internal/pkg/models"
)

// ZapLogger is our custom Zap logger that supports multiple outputs and
// optional New Relic log forwarding
type ZapLogger struct {
	*zap.Logger
	sugar    *zap.SugaredLogger
	nrApp    *newrelic.Application
	filePath string
	file     *os.File
}

// Config holds logger configuration
type Config struct {
	Level    string `json:"level"`
	FilePath string `json:"file_path"`
	Service  string `json:"service"`
}

// newRelicCore is a zapcore.Core that forwards log entries to New Relic
type newRelicCore struct {
	level   zapcore.Level
	service string
	nrApp   *newrelic.Application
}

func (c *newRelicCore) Enabled(level zapcore.Level) bool {
	return c.level.Enabled(level)
}

func (c *newRelicCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	return &clone
}

func (c *newRelicCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

func (c *newRelicCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	if c.nrApp == nil {
		return nil
	}

	encoder := zapcore.NewMapObjectEncoder()
	for _, field := range fields {
		field.AddTo(encoder)
	}

	logData := newrelic.LogData{
		Timestamp:  entry.Time.UnixMilli(),
		Message:    entry.Message,
		Severity:   entry.Level.String(),
		Attributes: encoder.Fields,
	}
	if logData.Attributes == nil {
		logData.Attributes = make(map[string]any)
	}
	logData.Attributes["service"] = c.service
	logData.Attributes["caller"] = entry.Caller.TrimmedPath()

	c.nrApp.RecordLog(logData)
	return nil
}

func (c *newRelicCore) Sync() error {
	return nil
}

// NewZapLogger creates a logger writing JSON to stdout (and a file when
// configured), forwarding entries to New Relic when an application is given
func NewZapLogger(config Config, nrApp *newrelic.Application) (*ZapLogger, error) {
	level := zapcore.InfoLevel
	if config.Level != "" {
		if err := level.Set(config.Level); err != nil {
			level = zapcore.InfoLevel
		}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.MessageKey = "message"
	encoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	zl := &ZapLogger{nrApp: nrApp}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level),
	}

	if config.FilePath != "" {
		file, err := openLogFile(config.FilePath)
		if err != nil {
			return nil, err
		}
		zl.filePath = config.FilePath
		zl.file = file
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(file), level))
	}

	if nrApp != nil {
		cores = append(cores, &newRelicCore{level: level, service: config.Service, nrApp: nrApp})
	}

	zapLogger := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	zl.Logger = zapLogger
	zl.sugar = zapLogger.Sugar()

	return zl, nil
}

// InitZapLoggerFromConfig builds the service logger from application config
func InitZapLoggerFromConfig(cfg *models.Config, nrApp *newrelic.Application) (*ZapLogger, error) {
	level := "info"
	if cfg.App.Debug {
		level = "debug"
	}

	zl, err := NewZapLogger(Config{
		Level:   level,
		Service: cfg.App.Name,
	}, nrApp)
	if err != nil {
		return nil, err
	}

	SetGlobalLogger(zl)
	return zl, nil
}

func openLogFile(filePath string) (*os.File, error) {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// Sugar returns the sugared logger
func (zl *ZapLogger) Sugar() *zap.SugaredLogger {
	return zl.sugar
}

// Close flushes buffered entries and closes the log file
func (zl *ZapLogger) Close() error {
	_ = zl.Logger.Sync()
	if zl.file != nil {
		return zl.file.Close()
	}
	return nil
}
