package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropadvisor/pkg/agronomy"
)

func TestSampleRequest(t *testing.T) {
	var r SampleRequest
	require.NoError(t, json.Unmarshal([]byte(`{"ph":6.8,"nitrogen":0,"phosphorus":10,"potassium":300,"organicMatter":2.5}`), &r))
	s, err := r.Sample()
	require.NoError(t, err)
	assert.Equal(t, agronomy.SoilSample{PH: 6.8, Nitrogen: 0, Phosphorus: 10, Potassium: 300, OrganicMatter: 2.5}, s)
}

func TestSampleRequestMissing(t *testing.T) {
	var r SampleRequest
	require.NoError(t, json.Unmarshal([]byte(`{"ph":6.8,"potassium":300}`), &r))
	_, err := r.Sample()
	require.Error(t, err)
	assert.True(t, agronomy.IsInvalidInput(err))
	assert.Contains(t, err.Error(), "nitrogen, phosphorus, organicMatter")
}
