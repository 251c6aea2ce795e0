package vocab

import "testing"

func TestPriceLevel(t *testing.T) {
	tests := []struct {
		token string
		level int
		ok    bool
	}{
		{"cheap", 1, true},
		{"budget", 1, true},
		{"inexpensive", 1, true},
		{"mid", 2, true},
		{"moderate", 2, true},
		{"affordable", 2, true},
		{"fancy", 4, true},
		{"premium", 4, true},
		{"expensive", 4, true},
		{"free", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		level, ok := PriceLevel(tt.token)
		if ok != tt.ok || level != tt.level {
			t.Errorf("PriceLevel(%q) = %d, %v; want %d, %v", tt.token, level, ok, tt.level, tt.ok)
		}
	}
}

func TestTakeaway(t *testing.T) {
	tests := []struct {
		token string
		pref  bool
		ok    bool
	}{
		{"takeaway", true, true},
		{"takeout", true, true},
		{"to-go", true, true},
		{"dine-in", false, true},
		{"eat-in", false, true},
		{"delivery", false, false},
	}

	for _, tt := range tests {
		pref, ok := Takeaway(tt.token)
		if ok != tt.ok || pref != tt.pref {
			t.Errorf("Takeaway(%q) = %v, %v; want %v, %v", tt.token, pref, ok, tt.pref, tt.ok)
		}
	}
}

func TestIsTag(t *testing.T) {
	for _, tag := range []string{"spicy", "late-night", "cozy", "colourful", "family"} {
		if !IsTag(tag) {
			t.Errorf("IsTag(%q) = false, want true", tag)
		}
	}
	if IsTag("romantic") {
		t.Error("IsTag(\"romantic\") = true, want false")
	}
}

func TestCuisine_TacoNormalizesToMexican(t *testing.T) {
	for _, w := range []string{"taco", "tacos"} {
		label, ok := Cuisine(w)
		if !ok || label != "mexican" {
			t.Errorf("Cuisine(%q) = %q, %v; want \"mexican\", true", w, label, ok)
		}
	}
}

func TestCuisine_SelfMapping(t *testing.T) {
	for _, w := range []string{"thai", "japanese", "ramen", "pizza", "chinese"} {
		label, ok := Cuisine(w)
		if !ok || label != w {
			t.Errorf("Cuisine(%q) = %q, %v; want %q, true", w, label, ok, w)
		}
	}
	if _, ok := Cuisine("french"); ok {
		t.Error("Cuisine(\"french\") matched, want no match")
	}
}

func TestDish_EmptyByDefault(t *testing.T) {
	for _, w := range []string{"ramen", "elote", "pad thai", ""} {
		if _, ok := Dish(w); ok {
			t.Errorf("Dish(%q) matched, want empty dish vocabulary", w)
		}
	}
}

// Tables are disjoint by construction; a token matching two categories would
// make interpretation order-dependent. Locks the invariant down.
func TestVocabularies_Disjoint(t *testing.T) {
	categories := map[string]map[string]struct{}{
		"price":    keys(priceWords),
		"takeaway": keys(takeawayWords),
		"tag":      tagWords,
		"cuisine":  keys(cuisineWords),
		"dish":     keys(dishWords),
	}

	seen := make(map[string]string)
	for name, set := range categories {
		for token := range set {
			if prev, dup := seen[token]; dup {
				t.Errorf("token %q appears in both %s and %s", token, prev, name)
			}
			seen[token] = name
		}
	}
}

func keys[V any](m map[string]V) map[string]struct{} {
	out := make(map[string]struct{}, len(m))
	for k := range m {
		out[k] = struct{}{}
	}
	return out
}
