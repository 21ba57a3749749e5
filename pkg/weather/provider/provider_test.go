package provider

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticIsStablePerLocation(t *testing.T) {
	now := func() time.Time { return time.Date(2025, 1, 14, 8, 0, 0, 0, time.UTC) }
	p := NewStatic(5, now)

	a, err := p.Fetch(context.Background(), "Ludhiana")
	require.NoError(t, err)
	b, err := p.Fetch(context.Background(), " ludhiana ")
	require.NoError(t, err)
	assert.Equal(t, a.Forecast, b.Forecast)
	assert.Equal(t, a.Current, b.Current)

	require.Len(t, a.Forecast, 5)
	assert.Equal(t, "2025-01-14", a.Forecast[0].Date)
	assert.Equal(t, "2025-01-18", a.Forecast[4].Date)
	for _, d := range a.Forecast {
		assert.GreaterOrEqual(t, d.MaxTemp, 28.0)
		assert.LessOrEqual(t, d.MaxTemp, 38.0)
		assert.Less(t, d.MinTemp, d.MaxTemp)
		assert.GreaterOrEqual(t, d.Rainfall, 0.0)
		assert.NotEmpty(t, d.Description)
	}
}

func TestStaticDefaultsAndCancel(t *testing.T) {
	p := NewStatic(0, nil)
	r, err := p.Fetch(context.Background(), "Indore")
	require.NoError(t, err)
	assert.Len(t, r.Forecast, 5)
	assert.Equal(t, "static", r.Source)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Fetch(ctx, "Indore")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "Rain", describe(30, 80, 12))
	assert.Equal(t, "Light Rain", describe(30, 80, 2))
	assert.Equal(t, "Hot and Sunny", describe(36, 40, 0))
	assert.Equal(t, "Humid", describe(29, 70, 0))
	assert.Equal(t, "Partly Cloudy", describe(25, 50, 0))
}
