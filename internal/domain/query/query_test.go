package query

import "testing"

func TestParse_AllTriggers(t *testing.T) {
	for _, trigger := range negativeTriggers {
		t.Run(trigger, func(t *testing.T) {
			p := Parse("modern bathroom " + trigger + " marble counters")
			if p.Positive() != "modern bathroom" {
				t.Errorf("Positive = %q, want %q", p.Positive(), "modern bathroom")
			}
			if p.Negative() != "marble counters" {
				t.Errorf("Negative = %q, want %q", p.Negative(), "marble counters")
			}
		})
	}
}

func TestParse_CaseInsensitive(t *testing.T) {
	p := Parse("scandinavian style BUT NOT white tones")
	if p.Positive() != "scandinavian style" {
		t.Errorf("Positive = %q", p.Positive())
	}
	if p.Negative() != "white tones" {
		t.Errorf("Negative = %q", p.Negative())
	}
}

func TestParse_NoTrigger(t *testing.T) {
	p := Parse("  industrial loft with exposed brick  ")
	if p.Positive() != "industrial loft with exposed brick" {
		t.Errorf("Positive = %q", p.Positive())
	}
	if p.HasNegative() {
		t.Errorf("Negative = %q, want empty", p.Negative())
	}
}

func TestParse_LeftMostTriggerWins(t *testing.T) {
	// "without" appears first; the later "excluding" stays in the negative clause.
	p := Parse("boho bedroom without plants excluding macrame")
	if p.Positive() != "boho bedroom" {
		t.Errorf("Positive = %q, want %q", p.Positive(), "boho bedroom")
	}
	if p.Negative() != "plants excluding macrame" {
		t.Errorf("Negative = %q, want %q", p.Negative(), "plants excluding macrame")
	}
}

func TestParse_TriggerInsideWordIgnored(t *testing.T) {
	// "except" embedded in "exceptional" must not split the query.
	p := Parse("an exceptionally bright room")
	if p.Positive() != "an exceptionally bright room" {
		t.Errorf("Positive = %q", p.Positive())
	}
	if p.HasNegative() {
		t.Errorf("Negative = %q, want empty", p.Negative())
	}
}

func TestParse_TriggerOnlyQuery(t *testing.T) {
	// Negative-only query: empty positive clause, negative carries the
	// constraint. Validated requests arrive trimmed, so the trigger must
	// also match at the very start of the query.
	for _, raw := range []string{"without marble", " without marble"} {
		p := Parse(raw)
		if p.Positive() != "" {
			t.Errorf("Parse(%q): Positive = %q, want empty", raw, p.Positive())
		}
		if p.Negative() != "marble" {
			t.Errorf("Parse(%q): Negative = %q, want %q", raw, p.Negative(), "marble")
		}
	}
}

func TestParse_Deterministic(t *testing.T) {
	const raw = "minimalist kitchen but not steel appliances"
	first := Parse(raw)
	for i := 0; i < 5; i++ {
		p := Parse(raw)
		if p.Positive() != first.Positive() || p.Negative() != first.Negative() {
			t.Fatalf("parse %d differs: (%q, %q) vs (%q, %q)",
				i, p.Positive(), p.Negative(), first.Positive(), first.Negative())
		}
	}
}
