package textscan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	require.Equal(t, "Team Alpha", Normalize("  Team\t\tAlpha  "))
	require.Equal(t, "", Normalize("   \t "))
	require.Equal(t, "a b c", Normalize("a  b\nc"))
}

func TestIsEmail(t *testing.T) {
	require.True(t, IsEmail("player@example.com"))
	require.True(t, IsEmail("a.b+c@sub.domain.io"))
	require.False(t, IsEmail("not an email"))
	require.False(t, IsEmail("missing@tld"))
	require.False(t, IsEmail("@example.com"))
	require.False(t, IsEmail("two@at@example.com "))
}

func TestIsTimestamp(t *testing.T) {
	require.True(t, IsTimestamp("2024/3/15 10:05:33 AM GMT+6"))
	require.True(t, IsTimestamp("15/03/2024 10:05:33"))
	require.True(t, IsTimestamp("2024-03-15 10:05:33"))
	require.True(t, IsTimestamp("15-3-2024"))
	require.False(t, IsTimestamp("Team 2024"))
	require.False(t, IsTimestamp("10:05"))
}

func TestIsConfirmation(t *testing.T) {
	for _, word := range []string{"yes", "No", "TRUE", "false", "Confirmed", "pending"} {
		require.True(t, IsConfirmation(word), word)
	}
	require.False(t, IsConfirmation("maybe"))
	require.False(t, IsConfirmation(""))
}

func TestIsListMarker(t *testing.T) {
	for _, marker := range []string{"1.", "12. ", "*", "-", "•", ">", "Group A", "group z", "Team 42", "Round 3"} {
		require.True(t, IsListMarker(marker), marker)
	}
	require.False(t, IsListMarker("1. Team Alpha"))
	require.False(t, IsListMarker("Group AB"))
	require.False(t, IsListMarker("Teamwork"))
}

func TestRemoveListMarkers(t *testing.T) {
	require.Equal(t, "Team Alpha", RemoveListMarkers("1. Team Alpha"))
	require.Equal(t, "Team Beta", RemoveListMarkers("- Team Beta"))
	require.Equal(t, "Team Gamma", RemoveListMarkers("• Team Gamma"))
	require.Equal(t, "Plain", RemoveListMarkers("Plain"))
}
