package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0:00:00.00", FormatDuration(0))
	assert.Equal(t, "0:00:01.50", FormatDuration(1.5))
	assert.Equal(t, "0:01:00.00", FormatDuration(59.999))
	assert.Equal(t, "1:02:03.45", FormatDuration(3723.45))
	assert.Equal(t, "2:46:40.00", FormatDuration(10000))
}

func TestNewFormatter(t *testing.T) {
	for _, format := range []string{"", "text", "json", "yaml"} {
		f, err := NewFormatter(format)
		require.NoError(t, err, format)
		require.NotNil(t, f)
	}

	_, err := NewFormatter("xml")
	assert.Error(t, err)
}

func TestCalcResultText(t *testing.T) {
	f := &TextFormatter{}

	out, err := f.Format(&CalcResult{
		File:        "a.wav",
		Duration:    12.345,
		Fingerprint: "AQAAA",
	})
	require.NoError(t, err)
	assert.Equal(t, "DURATION=12.35\nFINGERPRINT=AQAAA\n", string(out))

	out, err = f.Format(&CalcResult{
		File:     "a.wav",
		Duration: 1.0,
		Raw:      []uint32{17, 4294967295},
	})
	require.NoError(t, err)
	assert.Contains(t, string(out), "FINGERPRINT=17,4294967295\n")
}

func TestCompareResultText(t *testing.T) {
	f := &TextFormatter{}

	out, err := f.Format(&CompareResult{FileA: "a.wav", FileB: "b.wav"})
	require.NoError(t, err)
	assert.Equal(t, "no matching segments\n", string(out))

	out, err = f.Format(&CompareResult{
		FileA: "a.wav",
		FileB: "b.wav",
		Segments: []MatchedSegment{
			{StartA: 0, EndA: 10.5, StartB: 62, EndB: 72.5, Duration: 10.5, Score: 0.987},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "0:00:00.00 -- 0:00:10.50 | 0:01:02.00 -- 0:01:12.50 -> 0.987\n", string(out))
}

func TestJSONFormatter(t *testing.T) {
	f := &JSONFormatter{}
	out, err := f.Format(&CalcResult{File: "a.wav", Duration: 2, Fingerprint: "xyz"})
	require.NoError(t, err)

	var decoded CalcResult
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "a.wav", decoded.File)
	assert.Equal(t, "xyz", decoded.Fingerprint)
	assert.Empty(t, decoded.Raw)
}

func TestYAMLFormatter(t *testing.T) {
	f := &YAMLFormatter{}
	out, err := f.Format(&CompareResult{
		FileA:    "a.wav",
		FileB:    "b.wav",
		Segments: []MatchedSegment{{StartA: 1, EndA: 2, StartB: 3, EndB: 4, Duration: 1, Score: 0.5}},
	})
	require.NoError(t, err)

	var decoded CompareResult
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, "b.wav", decoded.FileB)
	require.Len(t, decoded.Segments, 1)
	assert.InDelta(t, 0.5, decoded.Segments[0].Score, 1e-9)
}

func TestTextFormatterUnknownType(t *testing.T) {
	f := &TextFormatter{}
	_, err := f.Format(42)
	assert.Error(t, err)
}
