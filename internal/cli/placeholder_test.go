package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSubstitutePlaceholdersUsesEnvNowOverride(t *testing.T) {
	env := map[string]any{"now": "2024-03-04T05:06:07Z"}
	out := SubstitutePlaceholders("today is @TODAY@ at @TIME@", env)
	require.Contains(t, out, "2024-03-04")
}

func TestSubstitutePlaceholdersDateFieldsUseUTCDate(t *testing.T) {
	// 02:00 UTC is still the previous day in zones west of UTC; the
	// date-granularity placeholders follow the UTC date regardless of
	// the host zone.
	env := map[string]any{"now": "2026-08-02T02:00:00Z"}
	out := SubstitutePlaceholders("@TODAY@ @YESTERDAY@ @TOMORROW@", env)
	require.Equal(t, "2026-08-02 2026-08-01 2026-08-03", out)
}

func TestSubstitutePlaceholdersLeavesUnknownTokens(t *testing.T) {
	out := SubstitutePlaceholders("value is @NOT_A_PLACEHOLDER@", nil)
	require.Equal(t, "value is @NOT_A_PLACEHOLDER@", out)
}

func TestSubstitutePlaceholdersIsNoOpOnPlainText(t *testing.T) {
	first := SubstitutePlaceholders("search is(volume)", nil)
	second := SubstitutePlaceholders(first, nil)
	require.Equal(t, first, second)
	require.Equal(t, "search is(volume)", first)
}

func TestNextWeekdayResolvesCurrentDayToToday(t *testing.T) {
	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC) // a Monday
	require.Equal(t, monday, nextWeekday(monday, time.Monday))
	require.Equal(t, monday.AddDate(0, 0, 6), nextWeekday(monday, time.Sunday))
}
