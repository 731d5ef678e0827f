package chart

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/footprint/internal/footprint"
)

func sampleRecords() []footprint.ClientRecord {
	return []footprint.ClientRecord{
		footprint.NewClientRecord("Zeta Ltd", 120, 40, 8),
		footprint.NewClientRecord("Acme", 10, 5, 2),
		footprint.NewClientRecord("Zeta Ltd", 60, 0, 1),
		footprint.NewClientRecord("", 0, 0, 0),
	}
}

func TestBuildSeries_KeepsOrderAndDuplicates(t *testing.T) {
	records := sampleRecords()
	s := BuildSeries(records)

	require.Equal(t, len(records), s.Len())
	assert.Equal(t, []string{"Zeta Ltd", "Acme", "Zeta Ltd", ""}, s.Labels)
	for i, r := range records {
		assert.InDelta(t, r.TotalFootprint, s.Footprint[i], 0, "footprint %d", i)
		assert.InDelta(t, r.EnergyKWh, s.Energy[i], 0, "energy %d", i)
		assert.InDelta(t, r.TransportKM, s.Transport[i], 0, "transport %d", i)
		assert.InDelta(t, r.WasteKG, s.Waste[i], 0, "waste %d", i)
	}
}

func TestBuildSeries_Empty(t *testing.T) {
	s := BuildSeries(nil)
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Footprint)
}

func TestRender_PNGAt300DPI(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, BuildSeries(sampleRecords())))

	cfg, err := png.DecodeConfig(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 10*DPI, cfg.Width)
	assert.Equal(t, 6*DPI, cfg.Height)
}

func TestRender_SingleClient(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, BuildSeries([]footprint.ClientRecord{
		footprint.NewClientRecord("Solo", 1, 1, 1),
	})))
	assert.NotZero(t, buf.Len())
}

func TestRender_NegativeValues(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, BuildSeries([]footprint.ClientRecord{
		footprint.NewClientRecord("Credit", -50, -10, 0),
		footprint.NewClientRecord("Debit", 50, 10, 4),
	})))
	assert.NotZero(t, buf.Len())
}

func TestRender_EmptySeries(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, Series{})
	require.ErrorIs(t, err, ErrNoData)
	assert.Zero(t, buf.Len())
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carbon_trends.png")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o600))

	written, err := WriteFile(context.Background(), path, sampleRecords())
	require.NoError(t, err)
	assert.True(t, written)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = png.DecodeConfig(f)
	require.NoError(t, err, "stale file should be overwritten with a PNG")
}

func TestWriteFile_EmptySkips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carbon_trends.png")

	written, err := WriteFile(context.Background(), path, nil)
	require.NoError(t, err)
	assert.False(t, written)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no chart file for an empty session")
}

func TestWriteFile_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "carbon_trends.png")

	written, err := WriteFile(context.Background(), path, sampleRecords())
	require.Error(t, err)
	assert.False(t, written)
	assert.Contains(t, err.Error(), "writing chart")
}
