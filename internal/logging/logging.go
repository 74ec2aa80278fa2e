package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	encoderConfig = zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	output  = &switchSyncer{ws: zapcore.Lock(os.Stdout)}
	leveler = &levelSetter{
		levelers:     make(map[string]zap.AtomicLevel),
		defaultLevel: zap.InfoLevel,
	}
)

// Config selects the level every named logger starts at and where output
// goes. An empty File logs to stdout.
type Config struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Configure applies c to all loggers, including ones already created.
func Configure(c Config) error {
	level := zap.InfoLevel
	if c.Level != "" {
		var err error
		level, err = zapcore.ParseLevel(c.Level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", c.Level, err)
		}
	}
	leveler.setDefault(level)

	if c.File == "" {
		output.swap(zapcore.Lock(os.Stdout), nil)
		return nil
	}

	rotator := &lumberjack.Logger{
		Filename:   c.File,
		MaxSize:    c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAgeDays,
		Compress:   true,
	}
	output.swap(zapcore.AddSync(rotator), rotator)
	return nil
}

type Leveler interface {
	SetLevel(name string, level zapcore.Level)
	GetLevel(name string) zapcore.Level
}

type levelSetter struct {
	levelers     map[string]zap.AtomicLevel
	defaultLevel zapcore.Level
	mu           sync.RWMutex
}

var _ Leveler = (*levelSetter)(nil)

func GetLeveler() Leveler {
	return leveler
}

func (lw *levelSetter) SetLevel(name string, level zapcore.Level) {
	_ = lw.setLevel(name, level)
}

func (lw *levelSetter) GetLevel(name string) zapcore.Level {
	lw.mu.RLock()
	defer lw.mu.RUnlock()

	if l, ok := lw.levelers[name]; ok {
		return l.Level()
	}

	return lw.defaultLevel
}

func (lw *levelSetter) setLevel(name string, level zapcore.Level) zap.AtomicLevel {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	if _, ok := lw.levelers[name]; !ok {
		lw.levelers[name] = zap.NewAtomicLevelAt(level)
	}

	lw.levelers[name].SetLevel(level)

	return lw.levelers[name]
}

func (lw *levelSetter) register(name string) zap.AtomicLevel {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	if l, ok := lw.levelers[name]; ok {
		return l
	}
	l := zap.NewAtomicLevelAt(lw.defaultLevel)
	lw.levelers[name] = l
	return l
}

func (lw *levelSetter) setDefault(level zapcore.Level) {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	lw.defaultLevel = level
	for _, l := range lw.levelers {
		l.SetLevel(level)
	}
}

// switchSyncer lets Configure redirect loggers that were built at package
// init time.
type switchSyncer struct {
	mu     sync.RWMutex
	ws     zapcore.WriteSyncer
	closer io.Closer
}

func (s *switchSyncer) Write(p []byte) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ws.Write(p)
}

func (s *switchSyncer) Sync() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ws.Sync()
}

func (s *switchSyncer) swap(ws zapcore.WriteSyncer, closer io.Closer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closer != nil {
		_ = s.closer.Close()
	}
	s.ws = ws
	s.closer = closer
}

func New(name string) *zap.SugaredLogger {
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), output, leveler.register(name))
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.PanicLevel)).Named(name).Sugar()
}
