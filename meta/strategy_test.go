package meta

import (
	"errors"
	"reflect"
	"testing"

	"github.com/coregx/hashchain/verify"
)

func TestStrategyString(t *testing.T) {
	tests := []struct {
		s    Strategy
		want string
	}{
		{StrategyAuto, "auto"},
		{StrategyNaive, "naive"},
		{StrategyQVerify, "qverify"},
		{StrategyWeak, "weak"},
		{StrategyLinear, "linear"},
		{Strategy(99), "Strategy(99)"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		name string
		want Strategy
	}{
		{"", StrategyAuto},
		{"auto", StrategyAuto},
		{"naive", StrategyNaive},
		{"QVerify", StrategyQVerify},
		{"q-verify", StrategyQVerify},
		{"weak", StrategyWeak},
		{"linear", StrategyLinear},
		{"kmp", StrategyLinear},
	}
	for _, tt := range tests {
		got, err := ParseStrategy(tt.name)
		if err != nil || got != tt.want {
			t.Errorf("ParseStrategy(%q) = %v, %v; want %v", tt.name, got, err, tt.want)
		}
	}

	_, err := ParseStrategy("bogus")
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "Strategy" {
		t.Errorf("ParseStrategy(bogus) error = %v, want *ConfigError on Strategy", err)
	}
}

func TestStrategyKind(t *testing.T) {
	tests := []struct {
		s    Strategy
		want verify.Kind
	}{
		{StrategyAuto, verify.KindLinear},
		{StrategyNaive, verify.KindNaive},
		{StrategyQVerify, verify.KindQVerify},
		{StrategyWeak, verify.KindWeak},
		{StrategyLinear, verify.KindLinear},
	}
	for _, tt := range tests {
		if got := tt.s.kind(); got != tt.want {
			t.Errorf("%v.kind() = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestPresets(t *testing.T) {
	want := []string{"fhc1", "hc3", "hc4-qverify", "hc6", "lhc4", "shc6", "whc3"}
	if got := PresetNames(); !reflect.DeepEqual(got, want) {
		t.Fatalf("PresetNames() = %v, want %v", got, want)
	}

	for _, name := range want {
		c, err := Preset(name)
		if err != nil {
			t.Fatalf("Preset(%q): %v", name, err)
		}
		if err := c.Validate(); err != nil {
			t.Errorf("Preset(%q) does not validate: %v", name, err)
		}
		if !c.EnableMemchr {
			t.Errorf("Preset(%q).EnableMemchr = false", name)
		}
		e := mustCompile([]byte("GCATGCAT"), c)
		if got := e.Count([]byte("xxGCATGCATGCATxx")); got != 2 {
			t.Errorf("Preset(%q): Count = %d, want 2", name, got)
		}
	}

	hc3, _ := Preset("HC3")
	if hc3.Q != 3 || hc3.RollShift != 4 || hc3.Strategy != StrategyNaive {
		t.Errorf("Preset(HC3) = %+v", hc3)
	}
	if lhc4, _ := Preset("lhc4"); lhc4.Strategy != StrategyLinear || lhc4.Q != 4 {
		t.Errorf("Preset(lhc4) = %+v", lhc4)
	}

	var cfgErr *ConfigError
	if _, err := Preset("nope"); !errors.As(err, &cfgErr) {
		t.Errorf("Preset(nope) error = %v, want *ConfigError", err)
	}
}
