package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"go.uber.org/zap"

	"github.com/scheerer/lightsd/internal/logging"
	"github.com/scheerer/lightsd/lights"
)

var logger = logging.New("api")

// Service is what the API drives.
type Service interface {
	lights.LightService
	State(t lights.ChannelType) (lights.LightState, bool)
}

type Options struct {
	Service        Service
	MetricsHandler http.Handler // optional, served at /metrics
	Version        string
}

type Server struct {
	api        huma.API
	mux        *http.ServeMux
	httpServer *http.Server
	service    Service
}

func NewServer(opts Options) *Server {
	mux := http.NewServeMux()

	version := opts.Version
	if version == "" {
		version = "dev"
	}
	config := huma.DefaultConfig("lightsd API", version)
	config.Info.Description = "Indicator LED arbitration"

	s := &Server{
		api: humago.New(mux, config),
		mux: mux,
		httpServer: &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		service: opts.Service,
	}
	s.registerRoutes()

	if opts.MetricsHandler != nil {
		mux.Handle("GET /metrics", opts.MetricsHandler)
	}
	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

// Listen binds addr without serving it yet.
func (s *Server) Listen(addr string) (net.Listener, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return listener, nil
}

// Serve handles requests on listener until Shutdown is called.
func (s *Server) Serve(listener net.Listener) error {
	logger.With(zap.Stringer("addr", listener.Addr())).Info("API listening")
	if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) registerRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "get-supported-types",
		Method:      http.MethodGet,
		Path:        "/api/lights/types",
		Summary:     "List supported light types",
		Description: "Configured channel types in arbitration order, highest priority first.",
		Tags:        []string{"lights"},
	}, func(ctx context.Context, input *struct{}) (*SupportedTypesResponse, error) {
		resp := &SupportedTypesResponse{}
		for _, t := range s.service.SupportedTypes() {
			resp.Body.Types = append(resp.Body.Types, t.String())
		}
		return resp, nil
	})

	huma.Register(s.api, huma.Operation{
		OperationID: "set-light",
		Method:      http.MethodPost,
		Path:        "/api/lights/{type}",
		Summary:     "Set light state",
		Description: "Caches the state for the channel and renders whichever channel sharing its hardware has priority.",
		Tags:        []string{"lights"},
		Errors:      []int{400, 404},
	}, func(ctx context.Context, input *SetLightRequest) (*SetLightResponse, error) {
		t, err := lights.ParseChannelType(input.Type)
		if err != nil {
			return nil, huma.Error404NotFound("Light type not supported", err)
		}
		state, err := input.Body.ToLightState()
		if err != nil {
			return nil, huma.Error400BadRequest("Invalid light state", err)
		}

		if status := s.service.SetLight(t, state); status == lights.NotSupported {
			return nil, huma.Error404NotFound("Light type not supported")
		}

		resp := &SetLightResponse{}
		resp.Body.Type = t.String()
		resp.Body.Status = lights.Success.String()
		return resp, nil
	})

	huma.Register(s.api, huma.Operation{
		OperationID: "get-light",
		Method:      http.MethodGet,
		Path:        "/api/lights/{type}",
		Summary:     "Get light state",
		Description: "Returns the last state requested for the channel, which may not be the one currently shown.",
		Tags:        []string{"lights"},
		Errors:      []int{404},
	}, func(ctx context.Context, input *GetLightRequest) (*GetLightResponse, error) {
		t, err := lights.ParseChannelType(input.Type)
		if err != nil {
			return nil, huma.Error404NotFound("Light type not supported", err)
		}
		state, ok := s.service.State(t)
		if !ok {
			return nil, huma.Error404NotFound("Light type not supported")
		}

		resp := &GetLightResponse{}
		resp.Body.Type = t.String()
		resp.Body.State = NewLightStateBody(state)
		return resp, nil
	})
}
