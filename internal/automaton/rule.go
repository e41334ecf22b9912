// Package automaton implements a one-dimensional, two-state, radius-one
// cellular automaton driven by a Wolfram rule table.
package automaton

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnknownPreset is returned for rule preset names that are not known.
	ErrUnknownPreset = errors.New("unknown rule preset")
	// ErrInvalidRule is returned when a rule table is not eight binary states.
	ErrInvalidRule = errors.New("invalid rule table")
)

// RuleTable maps a three-cell neighborhood to the next state of the middle
// cell. Entry i holds the result for the neighborhood whose bits, read
// left-self-right as a base-2 number, equal i.
type RuleTable [8]uint8

// NewRuleTable validates states and copies them into a table.
func NewRuleTable(states []uint8) (RuleTable, error) {
	var t RuleTable
	if len(states) != len(t) {
		return t, fmt.Errorf("%w: %d states, want 8", ErrInvalidRule, len(states))
	}
	for i, s := range states {
		if s > 1 {
			return RuleTable{}, fmt.Errorf("%w: state %d at index %d", ErrInvalidRule, s, i)
		}
		t[i] = s
	}
	return t, nil
}

// FromCode expands a Wolfram code: bit i of code becomes entry i.
func FromCode(code uint8) RuleTable {
	var t RuleTable
	for i := range t {
		t[i] = (code >> i) & 1
	}
	return t
}

// Code folds the table back into its Wolfram code.
func (t RuleTable) Code() uint8 {
	var code uint8
	for i, s := range t {
		code |= s << i
	}
	return code
}

// Index returns the table position for a neighborhood. It panics if any state
// is not 0 or 1.
func Index(left, self, right uint8) int {
	if left > 1 || self > 1 || right > 1 {
		panic(fmt.Sprintf("automaton: neighborhood (%d,%d,%d) is not binary", left, self, right))
	}
	return int(left<<2 | self<<1 | right)
}

// Lookup returns the next state for the neighborhood (left, self, right).
func (t RuleTable) Lookup(left, self, right uint8) uint8 {
	return t[Index(left, self, right)]
}

// presetOrder lists the presets in the order of their numeric selectors.
var presetOrder = []uint8{222, 190, 30, 110, 90}

// Presets returns the names of the built-in presets in selector order.
func Presets() []string {
	names := make([]string, len(presetOrder))
	for i, code := range presetOrder {
		names[i] = presetName(code)
	}
	return names
}

func presetName(code uint8) string { return "rule " + strconv.Itoa(int(code)) }

// Preset returns the table for a named preset such as "rule 90". The match is
// case-insensitive and tolerates "rule90" and a bare "90". A bare selector
// 1..5 picks the preset at that position.
func Preset(name string) (RuleTable, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimSpace(strings.TrimPrefix(key, "rule"))
	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(presetOrder) {
		return PresetBySelector(n)
	}
	for _, code := range presetOrder {
		if key == strconv.Itoa(int(code)) {
			return FromCode(code), nil
		}
	}
	return RuleTable{}, fmt.Errorf("%w %q", ErrUnknownPreset, name)
}

// PresetBySelector maps the numeric selectors 1..5 onto the built-in presets.
func PresetBySelector(n int) (RuleTable, error) {
	if n < 1 || n > len(presetOrder) {
		return RuleTable{}, fmt.Errorf("%w: selector %d", ErrUnknownPreset, n)
	}
	return FromCode(presetOrder[n-1]), nil
}
