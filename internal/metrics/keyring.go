package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// KeyringState reports which master key versions are loaded in memory.
type KeyringState interface {
	ActiveVersion() uint
	Versions() []uint
}

// RegisterKeyringMetrics exposes the active master key version and the number of loaded
// versions as observable gauges. Both read 0 once the keyring is closed. Call
// Unregister on the returned registration before the keyring is discarded.
func RegisterKeyringMetrics(
	meterProvider metric.MeterProvider,
	namespace string,
	state KeyringState,
) (metric.Registration, error) {
	meter := meterProvider.Meter(namespace)

	activeVersion, err := meter.Int64ObservableGauge(
		fmt.Sprintf("%s_master_key_active_version", namespace),
		metric.WithDescription("Master key version used for new encryptions"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create active version gauge: %w", err)
	}

	loadedVersions, err := meter.Int64ObservableGauge(
		fmt.Sprintf("%s_master_key_loaded_versions", namespace),
		metric.WithDescription("Number of master key versions unwrapped in memory"),
		metric.WithUnit("{version}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create loaded versions gauge: %w", err)
	}

	registration, err := meter.RegisterCallback(
		func(ctx context.Context, o metric.Observer) error {
			o.ObserveInt64(activeVersion, int64(state.ActiveVersion()))
			o.ObserveInt64(loadedVersions, int64(len(state.Versions())))
			return nil
		},
		activeVersion,
		loadedVersions,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register keyring callback: %w", err)
	}

	return registration, nil
}
