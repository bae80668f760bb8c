package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("RP_TEST_STRING", "value")
	assert.Equal(t, "value", GetEnvString("RP_TEST_STRING", "default"))
	assert.Equal(t, "default", GetEnvString("RP_TEST_STRING_UNSET", "default"))
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"unset", "", 7},
		{"valid", "42", 42},
		{"negative", "-3", -3},
		{"padded", " 9 ", 9},
		{"invalid", "abc", 7},
		{"trailing garbage", "12abc", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("RP_TEST_INT", tt.value)
			assert.Equal(t, tt.want, GetEnvInt("RP_TEST_INT", 7))
		})
	}
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("RP_TEST_FLOAT", "2.5")
	assert.Equal(t, 2.5, GetEnvFloat("RP_TEST_FLOAT", 1))

	t.Setenv("RP_TEST_FLOAT", "fast")
	assert.Equal(t, 1.0, GetEnvFloat("RP_TEST_FLOAT", 1))
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", true},
		{"1", true},
		{"false", false},
		{"F", false},
		{"maybe", true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("RP_TEST_BOOL", tt.value)
			assert.Equal(t, tt.want, GetEnvBool("RP_TEST_BOOL", true))
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("RP_TEST_DURATION", "90m")
	assert.Equal(t, 90*time.Minute, GetEnvDuration("RP_TEST_DURATION", time.Hour))

	t.Setenv("RP_TEST_DURATION", "soon")
	assert.Equal(t, time.Hour, GetEnvDuration("RP_TEST_DURATION", time.Hour))
}

func TestValidateDurations(t *testing.T) {
	assert.NoError(t, ValidatePositiveDuration(time.Second))
	assert.Error(t, ValidatePositiveDuration(0))

	assert.NoError(t, ValidateDurationRange(time.Hour, time.Minute, 24*time.Hour))
	assert.Error(t, ValidateDurationRange(time.Second, time.Minute, time.Hour))
	assert.Error(t, ValidateDurationRange(2*time.Hour, time.Minute, time.Hour))
	assert.Error(t, ValidateDurationRange(time.Minute, time.Hour, time.Minute))
}

func TestLoadAJAXRateLimit(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("AJAX_RATE_LIMIT_ENABLED", "")
		t.Setenv("AJAX_RATE_LIMIT", "")
		t.Setenv("AJAX_RATE_BURST", "")
		assert.Equal(t, DefaultAJAXRateLimit(), LoadAJAXRateLimit())
	})

	t.Run("custom", func(t *testing.T) {
		t.Setenv("AJAX_RATE_LIMIT_ENABLED", "false")
		t.Setenv("AJAX_RATE_LIMIT", "0.5")
		t.Setenv("AJAX_RATE_BURST", "3")
		assert.Equal(t, RateLimit{Enabled: false, RequestsPerSecond: 0.5, Burst: 3}, LoadAJAXRateLimit())
	})

	t.Run("non-positive replaced", func(t *testing.T) {
		t.Setenv("AJAX_RATE_LIMIT_ENABLED", "")
		t.Setenv("AJAX_RATE_LIMIT", "-1")
		t.Setenv("AJAX_RATE_BURST", "0")
		assert.Equal(t, DefaultAJAXRateLimit(), LoadAJAXRateLimit())
	})
}
