package config

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearTestEnvVars(t *testing.T) {
	t.Helper()
	for _, env := range os.Environ() {
		key := strings.SplitN(env, "=", 2)[0]
		if strings.HasPrefix(key, "BCE_") {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}
	}
}

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, ",", config.CSV.Delimiter)
	assert.Equal(t, "", config.Importer.IBAN)
	assert.Equal(t, "Assets:CaisseEpargne", config.Importer.Account)
	assert.Equal(t, "", config.Importer.ExpenseCategory)
	assert.Equal(t, "", config.Importer.CreditCategory)
	assert.False(t, config.Importer.ShowOperationTypes)
	assert.Equal(t, "", config.RulesFile)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)

	testEnvVars := map[string]string{
		"BCE_LOG_LEVEL":        "debug",
		"BCE_LOG_FORMAT":       "json",
		"BCE_CSV_DELIMITER":    ";",
		"BCE_IMPORTER_IBAN":    "FR76 0412 3456 789",
		"BCE_IMPORTER_ACCOUNT": "Assets:FR:CdE:CompteCourant",
		"BCE_IMPORTER_SHOW_OPERATION_TYPES": "true",
	}
	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, ";", config.CSV.Delimiter)
	assert.Equal(t, "FR76 0412 3456 789", config.Importer.IBAN)
	assert.Equal(t, "Assets:FR:CdE:CompteCourant", config.Importer.Account)
	assert.True(t, config.Importer.ShowOperationTypes)
}

func TestInitializeConfig_Validation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"invalid log level", "BCE_LOG_LEVEL", "loud"},
		{"invalid log format", "BCE_LOG_FORMAT", "xml"},
		{"multi-character delimiter", "BCE_CSV_DELIMITER", ";;"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearTestEnvVars(t)
			t.Setenv(tc.key, tc.value)

			_, err := InitializeConfig()
			assert.Error(t, err)
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	config := &Config{}
	config.Log.Level = "debug"
	config.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(config)
	assert.Equal(t, "debug", logger.GetLevel().String())
}

func TestGetEnv(t *testing.T) {
	t.Setenv("BCE_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("BCE_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("BCE_TEST_MISSING", "fallback"))
}
