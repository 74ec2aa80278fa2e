package daemon

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/caarlos0/env"
	sd "github.com/coreos/go-systemd/v22/daemon"
	"go.uber.org/zap"

	"github.com/scheerer/lightsd/internal/api"
	"github.com/scheerer/lightsd/internal/config"
	"github.com/scheerer/lightsd/internal/events"
	"github.com/scheerer/lightsd/internal/led"
	"github.com/scheerer/lightsd/internal/lifx"
	"github.com/scheerer/lightsd/internal/logging"
	"github.com/scheerer/lightsd/internal/metrics"
	"github.com/scheerer/lightsd/internal/sysfs"
	"github.com/scheerer/lightsd/lights"
)

// Version is set at build time.
var Version = "dev"

var logger = logging.New("daemon")

type Config struct {
	LightsRoot        string        `env:"LIGHTS_ROOT"`
	BoardFile         string        `env:"LIGHTS_BOARD_FILE"`
	HTTPAddr          string        `env:"HTTP_ADDR" envDefault:"127.0.0.1:8090"`
	MetricsEnabled    bool          `env:"METRICS_ENABLED" envDefault:"true"`
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFile           string        `env:"LOG_FILE"`
	LogMaxSizeMB      int           `env:"LOG_MAX_SIZE_MB" envDefault:"10"`
	LogMaxBackups     int           `env:"LOG_MAX_BACKUPS" envDefault:"3"`
	LogMaxAgeDays     int           `env:"LOG_MAX_AGE_DAYS" envDefault:"28"`
	LifxGroup         string        `env:"LIFX_GROUP"`
	LifxMinBrightness float64       `env:"LIFX_MIN_BRIGHTNESS" envDefault:"0"`
	LifxMaxBrightness float64       `env:"LIFX_MAX_BRIGHTNESS" envDefault:"0.65"`
	LifxTransition    time.Duration `env:"LIFX_TRANSITION" envDefault:"50ms"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

func LoadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("failed to parse environment variables: %w", err)
	}
	return c, nil
}

func (c Config) Logging() logging.Config {
	return logging.Config{
		Level:      c.LogLevel,
		File:       c.LogFile,
		MaxSizeMB:  c.LogMaxSizeMB,
		MaxBackups: c.LogMaxBackups,
		MaxAgeDays: c.LogMaxAgeDays,
	}
}

// Service is the single process-wide owner of the indicator hardware.
type Service struct {
	dispatcher *led.Dispatcher
	bus        *events.Bus
}

var _ api.Service = (*Service)(nil)

func NewService(sink led.Sink) (*Service, error) {
	registry, err := led.NewRegistry(led.DefaultPriorityOrder())
	if err != nil {
		return nil, err
	}

	bus := events.New()
	dispatcher := led.NewDispatcher(registry, sink,
		led.WithObserver(metrics.ObserveRendered),
		led.WithObserver(func(r led.Rendered) {
			bus.Publish(events.FromRendered(r))
		}))

	return &Service{dispatcher: dispatcher, bus: bus}, nil
}

func (s *Service) SetLight(t lights.ChannelType, state lights.LightState) lights.Status {
	status := s.dispatcher.SetLight(t, state)
	metrics.ObserveSetLight(t, status)
	return status
}

func (s *Service) SupportedTypes() []lights.ChannelType {
	return s.dispatcher.SupportedTypes()
}

func (s *Service) State(t lights.ChannelType) (lights.LightState, bool) {
	return s.dispatcher.State(t)
}

func (s *Service) Bus() *events.Bus {
	return s.bus
}

// NewSysfsSink builds the hardware sink from the board file and LIGHTS_ROOT.
// LIGHTS_ROOT wins over the board file root.
func NewSysfsSink(c Config) (*sysfs.Sink, error) {
	board, err := config.LoadBoard(c.BoardFile)
	if err != nil {
		return nil, err
	}

	root := c.LightsRoot
	if root == "" {
		root = board.Root
	}

	return sysfs.New(root, board.Channels, sysfs.WithFaultHandler(func(op, channel, _ string, _ error) {
		metrics.ObserveSinkFault(op, channel)
	})), nil
}

// Run serves the API until ctx is cancelled.
func Run(ctx context.Context, c Config) error {
	sink, err := NewSysfsSink(c)
	if err != nil {
		return err
	}

	service, err := NewService(sink)
	if err != nil {
		return err
	}

	if c.LifxGroup != "" {
		mirror, err := lifx.NewMirror(ctx, lifx.Config{
			GroupName:     c.LifxGroup,
			MinBrightness: c.LifxMinBrightness,
			MaxBrightness: c.LifxMaxBrightness,
			Transition:    c.LifxTransition,
		})
		if err != nil {
			logger.With(zap.Error(err)).Warn("Failed to create LIFX mirror, continuing without it")
		} else {
			unsubscribe := service.Bus().Subscribe(mirror.HandleRendered)
			defer unsubscribe()
		}
	}

	var metricsHandler http.Handler
	if c.MetricsEnabled {
		metricsHandler = metrics.Handler()
	}
	server := api.NewServer(api.Options{
		Service:        service,
		MetricsHandler: metricsHandler,
		Version:        Version,
	})

	listener, err := server.Listen(c.HTTPAddr)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()

	notify(sd.SdNotifyReady)

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("api server failed: %w", err)
		}
		return nil
	}

	logger.Info("Shutting down")
	notify(sd.SdNotifyStopping)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), c.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func notify(state string) {
	sent, err := sd.SdNotify(false, state)
	if err != nil {
		logger.With(zap.String("state", state), zap.Error(err)).Warn("Failed to notify systemd")
		return
	}
	if sent {
		logger.With(zap.String("state", state)).Debug("Notified systemd")
	}
}
