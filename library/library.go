// Copyright 2026 The Praxis Authors
// SPDX-License-Identifier: Apache-2.0

// Package library is the static manifest of external libraries: which
// library names exist and which external symbols (exposed functions) each
// one provides. Pure data, consulted by the offline backend and by anything
// that needs the allowlist for a question's library descriptor.
package library

import "slices"

// Library names as they appear in normalized assessment payloads.
const (
	None        = "NONE"
	Runes       = "RUNES"
	Curves      = "CURVES"
	Sounds      = "SOUNDS"
	BinaryTrees = "BINARYTREES"
	All         = "ALL"
)

var runesLibrary = []string{
	"show",
	"color",
	"random_color",
	"red",
	"pink",
	"purple",
	"indigo",
	"blue",
	"green",
	"yellow",
	"orange",
	"brown",
	"black",
	"white",
	"scale_independent",
	"scale",
	"translate",
	"rotate",
	"stack_frac",
	"stack",
	"stackn",
	"quarter_turn_right",
	"quarter_turn_left",
	"turn_upside_down",
	"beside_frac",
	"beside",
	"flip_vert",
	"flip_horiz",
	"make_cross",
	"repeat_pattern",
	"square",
	"blank",
	"rcross",
	"sail",
	"corner",
	"nova",
	"circle",
	"heart",
	"pentagram",
	"ribbon",
	"anaglyph",
	"overlay_frac",
	"overlay",
	"hollusion",
}

var curvesLibrary = []string{
	"make_point",
	"draw_points_on",
	"draw_connected",
	"draw_points_squeezed_to_window",
	"draw_connected_squeezed_to_window",
	"draw_connected_full_view",
	"draw_connected_full_view_proportional",
	"x_of",
	"y_of",
	"unit_line",
	"unit_line_at",
	"unit_circle",
	"connect_rigidly",
	"connect_ends",
	"put_in_standard_position",
	"translate",
	"scale",
	"rotate_pi_over_2",
	"scale_x_y",
	"gosperize",
	"gosper_curve",
	"show_connected_gosper",
	"repeated",
	"param_gosper",
	"param_gosperize",
	"rotate_around_origin",
	"arc",
	"invert",
	"alternative_unit_circle",
	"full_view_proportional",
	"squeeze_full_view",
	"squeeze_rectangular_portion",
}

var soundsLibrary = []string{
	"make_sound",
	"get_wave",
	"get_duration",
	"play",
	"stop",
	"consecutively",
	"simultaneously",
	"noise_sound",
	"sine_sound",
	"silence_sound",
	"letter_name_to_midi_note",
	"letter_name_to_frequency",
	"midi_note_to_frequency",
	"square_sound",
	"triangle_sound",
	"sawtooth_sound",
	"play_unsafe",
	"init_record",
	"record",
	"record_for",
	"adsr",
	"stacking_adsr",
	"trombone",
	"piano",
	"bell",
	"violin",
	"cello",
}

var binaryTreesLibrary = []string{
	"make_empty_tree",
	"is_tree",
	"make_tree",
	"is_empty_tree",
	"entry",
	"left_branch",
	"right_branch",
}

// manifest maps each library name to its symbol allowlist. ALL is the
// concatenation of every concrete library.
var manifest = map[string][]string{
	None:        {},
	Runes:       runesLibrary,
	Curves:      curvesLibrary,
	Sounds:      soundsLibrary,
	BinaryTrees: binaryTreesLibrary,
	All: concatSymbols(
		runesLibrary,
		curvesLibrary,
		soundsLibrary,
		binaryTreesLibrary,
	),
}

// concatSymbols is slices.Concat restricted to []string; the generic
// version is unavailable before Go 1.22.
func concatSymbols(lists ...[]string) []string {
	size := 0
	for _, list := range lists {
		size += len(list)
	}
	out := make([]string, 0, size)
	for _, list := range lists {
		out = append(out, list...)
	}
	return out
}

// Symbols returns the external symbol allowlist for the named library.
// The returned slice is a copy; callers may modify it freely.
func Symbols(name string) ([]string, bool) {
	symbols, ok := manifest[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(symbols), true
}

// Names returns all known library names in a stable order.
func Names() []string {
	return []string{None, Runes, Curves, Sounds, BinaryTrees, All}
}
