package xdom

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{"seconds", "PT5S", 5 * time.Second},
		{"fractional seconds", "PT0.5S", 500 * time.Millisecond},
		{"minutes seconds", "PT1M30S", 90 * time.Second},
		{"hours", "PT3H", 3 * time.Hour},
		{"days", "P2D", 48 * time.Hour},
		{"full", "P1DT2H3M4S", 24*time.Hour + 2*time.Hour + 3*time.Minute + 4*time.Second},
		{"negative", "-PT90S", -90 * time.Second},
		{"whitespace", "  PT5S ", 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDurationInvalid(t *testing.T) {
	for _, input := range []string{
		"",
		"   ",
		"P",
		"PT",
		"5S",
		"PT5",
		"PTS",
		"P1Y",     // 年分量长度不定
		"P1M",     // T 之前的 M 是月分量
		"P1Y2M",
		"P1.5D",   // 小数只允许出现在秒分量
		"PT1.5H",
		"PT1.5M",
		"PT5X",
		"-",
		"garbage",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDuration(input)
			assert.ErrorIs(t, err, ErrInvalidDuration)
		})
	}
}

func TestParseDurationMinuteContext(t *testing.T) {
	// M 的含义取决于位置：T 之后是分钟，可以解析
	d, err := ParseDuration("PT1M")
	require.NoError(t, err)
	assert.Equal(t, time.Minute, d)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name  string
		input time.Duration
		want  string
	}{
		{"zero", 0, "PT0S"},
		{"seconds", 5 * time.Second, "PT5S"},
		{"fractional", 1500 * time.Millisecond, "PT1.500S"},
		{"minutes", 90 * time.Second, "PT1M30S"},
		{"hours", 3 * time.Hour, "PT3H"},
		{"days", 26 * time.Hour, "P1DT2H"},
		{"negative", -90 * time.Second, "-PT1M30S"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.input))
		})
	}
}

func TestDurationRoundTrip(t *testing.T) {
	for _, d := range []time.Duration{
		0,
		time.Millisecond,
		90 * time.Second,
		26*time.Hour + 3*time.Minute + 4500*time.Millisecond,
		-5 * time.Minute,
	} {
		parsed, err := ParseDuration(FormatDuration(d))
		require.NoError(t, err)
		assert.Equal(t, d, parsed, "round trip of %v", d)
	}
}
