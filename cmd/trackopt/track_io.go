package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-anim/anim/keyframe"
)

// readTrack decodes the JSON track named by args[0], or stdin when no file
// (or "-") is given. Numbers are kept as json.Number.
func readTrack(cmd *cobra.Command, args []string) ([]any, error) {
	var r io.Reader = cmd.InOrStdin()
	name := "stdin"
	if len(args) > 0 && args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("open track: %w", err)
		}
		defer file.Close()
		r = file
		name = args[0]
	}

	decoder := json.NewDecoder(r)
	decoder.UseNumber()
	var v any
	if err := decoder.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}

	switch raw := v.(type) {
	case []any:
		return raw, nil
	case string:
		return nil, fmt.Errorf("%s: %w: %q", name, keyframe.ErrPointDefinition, raw)
	default:
		return nil, fmt.Errorf("%s: track must be a JSON array, got %T", name, v)
	}
}

// readSortedTrack decodes a track and sorts it by time, warning when the
// input was out of order.
func readSortedTrack(ctx *commandContext, cmd *cobra.Command, args []string) (keyframe.Track, error) {
	raw, err := readTrack(cmd, args)
	if err != nil {
		return nil, err
	}
	track, err := keyframe.DecodeTrack(raw)
	if err != nil {
		return nil, err
	}
	if !track.IsSorted() {
		ctx.logger(cmd).Warn("track not sorted by time; sorting", "keyframes", len(track))
		track = track.Sorted()
	}
	return track, nil
}

func writeJSON(w io.Writer, v any) error {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatValues(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'g', 6, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func countKeyframes(raw []any) int {
	track, err := keyframe.DecodeTrack(raw)
	if err != nil {
		return 0
	}
	return len(track)
}
