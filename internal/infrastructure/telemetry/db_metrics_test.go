package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func sumValue(t *testing.T, m metricdata.Metrics) int64 {
	t.Helper()
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "metric %s is not an int64 sum", m.Name)
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	return total
}

func TestDBMetrics_RecordQuery(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := NewMeterProviderWithReader(reader, zap.NewNop())
	metrics, err := NewDBMetrics(mp.Meter("db.client"), DBMetricsConfig{SlowQueryThreshold: 100 * time.Millisecond})
	require.NoError(t, err)

	ctx := context.Background()
	metrics.RecordQuery(ctx, "select", "customers", 10*time.Millisecond, nil)
	metrics.RecordQuery(ctx, "select", "customers", 10*time.Millisecond, gorm.ErrRecordNotFound)
	metrics.RecordQuery(ctx, "delete", "products", 150*time.Millisecond, errors.New("locked"))

	collected := collect(t, reader)
	assert.Equal(t, int64(3), sumValue(t, collected["db_query_total"]))
	assert.Equal(t, int64(1), sumValue(t, collected["db_query_errors_total"]))
	assert.Equal(t, int64(1), sumValue(t, collected["db_slow_query_total"]))
}

func TestRegisterDBMetrics(t *testing.T) {
	t.Run("disabled provider is a no-op", func(t *testing.T) {
		db := setupTestDB(t)
		mp, err := NewMeterProvider(context.Background(), MetricsConfig{}, zap.NewNop())
		require.NoError(t, err)

		assert.NoError(t, RegisterDBMetrics(db, mp, DefaultDBMetricsConfig(), zap.NewNop()))
	})

	t.Run("records queries and pool gauges", func(t *testing.T) {
		db := setupTestDB(t)
		reader := sdkmetric.NewManualReader()
		mp := NewMeterProviderWithReader(reader, zap.NewNop())

		require.NoError(t, RegisterDBMetrics(db, mp, DefaultDBMetricsConfig(), zap.NewNop()))

		require.NoError(t, db.Create(&testCustomer{Title: "Acme"}).Error)
		var found []testCustomer
		require.NoError(t, db.Find(&found).Error)

		collected := collect(t, reader)
		assert.GreaterOrEqual(t, sumValue(t, collected["db_query_total"]), int64(2))

		pool, ok := collected["db_pool_connections"].Data.(metricdata.Gauge[int64])
		require.True(t, ok)
		assert.Len(t, pool.DataPoints, 3)
	})

	t.Run("times queries without tracing registered", func(t *testing.T) {
		db := setupTestDB(t)
		reader := sdkmetric.NewManualReader()
		mp := NewMeterProviderWithReader(reader, zap.NewNop())

		require.NoError(t, RegisterDBMetrics(db, mp, DBMetricsConfig{
			Enabled:            true,
			SlowQueryThreshold: time.Nanosecond,
		}, zap.NewNop()))

		require.NoError(t, db.Create(&testCustomer{Title: "Acme"}).Error)
		var found []testCustomer
		require.NoError(t, db.Find(&found).Error)

		collected := collect(t, reader)
		assert.Equal(t, sumValue(t, collected["db_query_total"]), sumValue(t, collected["db_slow_query_total"]))
	})
}
