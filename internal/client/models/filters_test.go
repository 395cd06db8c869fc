package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/salesdesk/internal/common"
)

func TestParseReportPeriod(t *testing.T) {
	cases := map[string]ReportPeriod{
		"":        ReportDaily,
		"daily":   ReportDaily,
		"diario":  ReportDaily,
		"Weekly":  ReportWeekly,
		"semanal": ReportWeekly,
		"monthly": ReportMonthly,
		" mensal": ReportMonthly,
	}
	for in, want := range cases {
		got, err := ParseReportPeriod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseReportPeriod("yearly")
	require.ErrorIs(t, err, common.ErrorInvalidInput)
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"":        LogAny,
		"todos":   LogAny,
		"all":     LogAny,
		"INFO":    LogInfo,
		"warn":    LogWarning,
		"warning": LogWarning,
		"error":   LogError,
	}
	for in, want := range cases {
		got, err := ParseLogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLogLevel("debug")
	require.ErrorIs(t, err, common.ErrorInvalidInput)
}

func TestBackupFileName(t *testing.T) {
	assert.Equal(t, "backup-42.sql", BackupFileName(42))
}
