package automaton

import (
	"errors"
	"testing"
)

func TestRule90Preset(t *testing.T) {
	rule, err := Preset("rule 90")
	if err != nil {
		t.Fatalf("Preset: %v", err)
	}
	want := RuleTable{0, 1, 0, 1, 1, 0, 1, 0}
	if rule != want {
		t.Fatalf("rule 90 = %v, want %v", rule, want)
	}
	if idx := Index(1, 1, 1); idx != 7 {
		t.Fatalf("Index(1,1,1) = %d, want 7", idx)
	}
	if got := rule.Lookup(1, 1, 1); got != 0 {
		t.Fatalf("Lookup(1,1,1) = %d, want 0", got)
	}
}

func TestPresetTablesMatchWolframCodes(t *testing.T) {
	cases := map[string]RuleTable{
		"rule 222": {0, 1, 1, 1, 1, 0, 1, 1},
		"rule 190": {0, 1, 1, 1, 1, 1, 0, 1},
		"rule 30":  {0, 1, 1, 1, 1, 0, 0, 0},
		"rule 110": {0, 1, 1, 1, 0, 1, 1, 0},
		"Rule90":   {0, 1, 0, 1, 1, 0, 1, 0},
		"90":       {0, 1, 0, 1, 1, 0, 1, 0},
	}
	for name, want := range cases {
		got, err := Preset(name)
		if err != nil {
			t.Fatalf("Preset(%q): %v", name, err)
		}
		if got != want {
			t.Fatalf("Preset(%q) = %v, want %v", name, got, want)
		}
	}
	for i, name := range Presets() {
		byName, _ := Preset(name)
		bySel, err := PresetBySelector(i + 1)
		if err != nil || byName != bySel {
			t.Fatalf("selector %d disagrees with %q", i+1, name)
		}
	}
}

func TestUnknownPresetFails(t *testing.T) {
	if _, err := Preset("rule 91"); !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("err = %v, want ErrUnknownPreset", err)
	}
	if _, err := PresetBySelector(0); !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("selector 0 err = %v", err)
	}
	if _, err := PresetBySelector(6); !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("selector 6 err = %v", err)
	}
}

func TestLookupIsPureAndIndexed(t *testing.T) {
	rule := FromCode(110)
	for a := uint8(0); a <= 1; a++ {
		for b := uint8(0); b <= 1; b++ {
			for c := uint8(0); c <= 1; c++ {
				idx := Index(a, b, c)
				if idx != int(4*a+2*b+c) || idx < 0 || idx > 7 {
					t.Fatalf("Index(%d,%d,%d) = %d", a, b, c, idx)
				}
				first := rule.Lookup(a, b, c)
				if second := rule.Lookup(a, b, c); first != second {
					t.Fatalf("Lookup(%d,%d,%d) not stable", a, b, c)
				}
				if first != rule[idx] {
					t.Fatalf("Lookup(%d,%d,%d) = %d, table[%d] = %d", a, b, c, first, idx, rule[idx])
				}
			}
		}
	}
	if rule.Code() != 110 {
		t.Fatalf("Code() = %d, want 110", rule.Code())
	}
}

func TestLookupPanicsOnNonBinary(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for neighborhood state 2")
		}
	}()
	FromCode(90).Lookup(0, 2, 1)
}

func TestNewRuleTableValidates(t *testing.T) {
	if _, err := NewRuleTable([]uint8{0, 1, 0}); !errors.Is(err, ErrInvalidRule) {
		t.Fatalf("short table err = %v", err)
	}
	if _, err := NewRuleTable([]uint8{0, 1, 0, 1, 1, 0, 1, 2}); !errors.Is(err, ErrInvalidRule) {
		t.Fatalf("non-binary table err = %v", err)
	}
	rule, err := NewRuleTable([]uint8{0, 1, 0, 1, 1, 0, 1, 0})
	if err != nil || rule.Code() != 90 {
		t.Fatalf("valid table: rule=%v err=%v", rule, err)
	}
}

func TestPresetAcceptsSelectors(t *testing.T) {
	for n, code := range map[string]uint8{"1": 222, "3": 30, "rule 5": 90, " 4 ": 110} {
		got, err := Preset(n)
		if err != nil {
			t.Fatalf("Preset(%q): %v", n, err)
		}
		if got != FromCode(code) {
			t.Fatalf("Preset(%q) = rule %d, want rule %d", n, got.Code(), code)
		}
	}
	if _, err := Preset("6"); !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("selector 6 err = %v", err)
	}
}
