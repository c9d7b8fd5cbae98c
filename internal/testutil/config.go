package testutil

import (
	"testing"
	"time"

	"github.com/lepinkainen/bookaura/internal/config"
	"github.com/spf13/viper"
)

// ConfigState holds the state of the config package variables.
type ConfigState struct {
	APIURL            string
	Timeout           time.Duration
	RequestsPerSecond float64
	DefaultCategory   string
}

// SaveConfigState captures the current state of config package variables.
func SaveConfigState() ConfigState {
	return ConfigState{
		APIURL:            config.APIURL,
		Timeout:           config.Timeout,
		RequestsPerSecond: config.RequestsPerSecond,
		DefaultCategory:   config.DefaultCategory,
	}
}

// RestoreConfigState restores the config package variables to a saved state.
func RestoreConfigState(state ConfigState) {
	config.APIURL = state.APIURL
	config.Timeout = state.Timeout
	config.RequestsPerSecond = state.RequestsPerSecond
	config.DefaultCategory = state.DefaultCategory
}

// ResetConfig saves the current config state and schedules restoration
// when the test completes. It also resets viper.
func ResetConfig(t *testing.T) {
	t.Helper()

	state := SaveConfigState()
	viper.Reset()

	t.Cleanup(func() {
		RestoreConfigState(state)
		viper.Reset()
	})
}

// SetTestConfig points the client configuration at apiURL with the request
// guard disabled, restoring the previous state when the test completes.
func SetTestConfig(t *testing.T, apiURL string) {
	t.Helper()

	ResetConfig(t)
	config.InitConfig()
	config.SetAPIURL(apiURL)
	config.SetRequestsPerSecond(0)
}
