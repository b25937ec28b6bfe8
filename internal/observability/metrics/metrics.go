package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Config configures the metrics provider.
type Config struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	ServiceName      string
	Environment      string
}

// Metrics exposes the print-path instruments. A nil *Metrics is a valid
// no-op receiver so optional wiring stays cheap.
type Metrics struct {
	receiptsComposed   metric.Int64Counter
	receiptsDispatched metric.Int64Counter
	bitmapFallbacks    metric.Int64Counter
	dispatchFailures   metric.Int64Counter
}

// NewProvider configures and registers the meter provider.
func NewProvider(lc fx.Lifecycle, cfg Config, log *zap.Logger) (metric.MeterProvider, error) {
	if !cfg.Enabled {
		provider := noop.NewMeterProvider()
		otel.SetMeterProvider(provider)
		return provider, nil
	}

	exporter, err := newExporter(cfg.ExporterProtocol, cfg.ExporterEndpoint)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(10*time.Second))
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				if log != nil {
					log.Info("shutting down meter provider")
				}
				return provider.Shutdown(ctx)
			},
		})
	}

	return provider, nil
}

// New configures the domain metrics instruments.
func New(cfg Config, provider metric.MeterProvider) (*Metrics, error) {
	name := strings.TrimSpace(cfg.ServiceName)
	if name == "" {
		name = "pompabon"
	}
	meter := provider.Meter(name)

	receiptsComposed, err := meter.Int64Counter("pompabon_receipts_composed_total")
	if err != nil {
		return nil, err
	}
	receiptsDispatched, err := meter.Int64Counter("pompabon_receipts_dispatched_total")
	if err != nil {
		return nil, err
	}
	bitmapFallbacks, err := meter.Int64Counter("pompabon_bitmap_fallbacks_total")
	if err != nil {
		return nil, err
	}
	dispatchFailures, err := meter.Int64Counter("pompabon_dispatch_failures_total")
	if err != nil {
		return nil, err
	}

	return &Metrics{
		receiptsComposed:   receiptsComposed,
		receiptsDispatched: receiptsDispatched,
		bitmapFallbacks:    bitmapFallbacks,
		dispatchFailures:   dispatchFailures,
	}, nil
}

func (m *Metrics) ReceiptComposed(ctx context.Context) {
	if m == nil {
		return
	}
	m.receiptsComposed.Add(ctx, 1)
}

func (m *Metrics) ReceiptDispatched(ctx context.Context) {
	if m == nil {
		return
	}
	m.receiptsDispatched.Add(ctx, 1)
}

func (m *Metrics) BitmapFallback(ctx context.Context) {
	if m == nil {
		return
	}
	m.bitmapFallbacks.Add(ctx, 1)
}

func (m *Metrics) DispatchFailed(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.dispatchFailures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
	))
}

func newExporter(protocol, endpoint string) (sdkmetric.Exporter, error) {
	switch strings.ToLower(strings.TrimSpace(protocol)) {
	case "http", "http/protobuf":
		return otlpmetrichttp.New(context.Background(),
			otlpmetrichttp.WithEndpoint(endpoint),
			otlpmetrichttp.WithInsecure(),
		)
	case "", "grpc":
		return otlpmetricgrpc.New(context.Background(),
			otlpmetricgrpc.WithEndpoint(endpoint),
			otlpmetricgrpc.WithInsecure(),
		)
	default:
		return nil, fmt.Errorf("unsupported otlp metrics protocol %q", protocol)
	}
}
