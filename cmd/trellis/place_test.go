package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlaceCommand_TextOutput(t *testing.T) {
	stdout, _, err := executeCommand(t, "place",
		"--top", "10", "--left", "20", "--width", "30", "--height", "2",
		"--placement", "bottom", "--gap", "1")
	require.NoError(t, err)
	require.Contains(t, stdout, "placement: bottom\n")
	require.Contains(t, stdout, "offset:    top=10 left=20\n")
	require.Contains(t, stdout, "transform: translate(calc(-50% + 15px), 3px)\n")
	require.Contains(t, stdout, "top edge")
}

func TestPlaceCommand_ResolvesPanel(t *testing.T) {
	stdout, _, err := executeCommand(t, "place",
		"--top", "10", "--left", "20", "--width", "30", "--height", "2",
		"--placement", "bottom", "--gap", "1",
		"--panel-width", "10", "--panel-height", "3")
	require.NoError(t, err)
	require.Contains(t, stdout, "panel:     top=13 left=30\n")
	require.Contains(t, stdout, "top edge at 5\n")
}

func TestPlaceCommand_UnknownPlacementFallsBack(t *testing.T) {
	stdout, stderr, err := executeCommand(t, "place", "--width", "4", "--height", "1", "--placement", "diagonal")
	require.NoError(t, err)
	require.Contains(t, stdout, "placement: top\n")
	require.Contains(t, stdout, "transform: translate(calc(-50% + 2px), calc(-100% - 1px))\n")
	require.Contains(t, stderr, "unknown placement")
}

func TestPlaceCommand_ConfiguredFallback(t *testing.T) {
	path := writeConfig(t, "overlay:\n  gap: 0\n  tooltip_placement: left\n")

	stdout, _, err := executeCommand(t, "--config", path, "place", "--width", "4", "--height", "2")
	require.NoError(t, err)
	require.Contains(t, stdout, "placement: left\n")
	require.Contains(t, stdout, "transform: translate(-100%, calc(-50% + 1px))\n")
}

func TestPlaceCommand_JSONOutput(t *testing.T) {
	stdout, _, err := executeCommand(t, "place",
		"--top", "5", "--left", "5", "--width", "10", "--height", "4",
		"--placement", "right-top", "--gap", "2",
		"--panel-width", "6", "--panel-height", "20", "--json")
	require.NoError(t, err)

	var payload placementJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, "right-top", payload.Placement)
	require.Equal(t, pointJSON{Top: 5, Left: 5}, payload.Offset)
	require.Equal(t, "translate(12px, 0px)", payload.Transform)
	require.Equal(t, "left", payload.Arrow.Edge)
	require.NotNil(t, payload.Panel)
	require.Equal(t, pointJSON{Top: 5, Left: 17}, *payload.Panel)
	require.NotNil(t, payload.Arrow.Offset)
	require.Equal(t, 12.0, *payload.Arrow.Offset)
}

func TestPlaceCommand_RejectsNegativeAnchor(t *testing.T) {
	_, _, err := executeCommand(t, "place", "--width=-1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "non-negative")
}
