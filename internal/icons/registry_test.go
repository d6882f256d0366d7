package icons

import (
	"fmt"
	"image"
	"path/filepath"
	"testing"
)

func TestRegistry_RegisterBlankNamePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for blank provider name")
		}
	}()

	NewRegistry().Register("  ", New(Options{Scales: ScaleSet{1.0}, Dir: "/icons"}))
}

func TestRegistry_Resource(t *testing.T) {
	p, base := newTestProvider(t, 1.0)
	writeIcon(t, filepath.Join(base, "z1"), "gear", newGradientIcon())

	r := NewRegistry()
	r.Register(DefaultName, p)

	if got, ok := r.Provider(DefaultName); !ok || got != p {
		t.Fatal("Expected registered provider to be returned")
	}

	res := r.Resource(URL(DefaultName, "gear?red"), image.Point{})
	if res == nil {
		t.Fatal("Expected resource, got nil")
	}
	again := r.Resource(URL(DefaultName, "gear?red"), image.Point{})
	if again != res {
		t.Error("Expected cached resource on second lookup")
	}

	if r.Resource(URL("other", "gear"), image.Point{}) != nil {
		t.Error("Expected nil for unknown provider")
	}
	if r.Resource(URL(DefaultName, "missing-icon"), image.Point{}) != nil {
		t.Error("Expected nil for missing icon")
	}
	if r.Resource("file:///gear.png", image.Point{}) != nil {
		t.Error("Expected nil for foreign scheme")
	}
}

func TestRegistry_ReRegisterDropsCache(t *testing.T) {
	first, firstBase := newTestProvider(t, 1.0)
	writeIcon(t, filepath.Join(firstBase, "z1"), "gear", image.NewNRGBA(image.Rect(0, 0, 2, 2)))
	second, secondBase := newTestProvider(t, 1.0)
	writeIcon(t, filepath.Join(secondBase, "z1"), "gear", image.NewNRGBA(image.Rect(0, 0, 3, 3)))

	r := NewRegistry()
	r.Register("app", first)
	old := r.Resource(URL("app", "gear"), image.Point{})

	r.Register("app", second)
	fresh := r.Resource(URL("app", "gear"), image.Point{})

	if old == nil || fresh == nil {
		t.Fatal("Expected both lookups to succeed")
	}
	if string(old.Content()) == string(fresh.Content()) {
		t.Error("Expected lookup after re-registration to use the new provider")
	}
}

func TestRegistry_CacheIsBounded(t *testing.T) {
	p, base := newTestProvider(t, 1.0)
	writeIcon(t, filepath.Join(base, "z1"), "gear", newGradientIcon())

	r := NewRegistry()
	r.CacheSize = 4
	r.Register("app", p)

	for i := 0; i < 10; i++ {
		if r.Resource(URL("app", fmt.Sprintf("missing%d", i)), image.Point{}) != nil {
			t.Fatalf("Expected nil for missing icon %d", i)
		}
		if len(r.cache) > r.CacheSize {
			t.Fatalf("Cache grew to %d entries, limit is %d", len(r.cache), r.CacheSize)
		}
	}

	if r.Resource(URL("app", "gear"), image.Point{}) == nil {
		t.Error("Expected existing icon after the cache was emptied")
	}
}

func TestParseURL(t *testing.T) {
	tests := []struct {
		url      string
		provider string
		id       string
		ok       bool
	}{
		{"image://hbnsc/gear", "hbnsc", "gear", true},
		{"image://hbnsc/gear?#ff0000", "hbnsc", "gear?#ff0000", true},
		{"image://hbnsc/actions/gear", "hbnsc", "actions/gear", true},
		{"image://hbnsc/", "", "", false},
		{"image:///gear", "", "", false},
		{"image://hbnsc", "", "", false},
		{"http://hbnsc/gear", "", "", false},
	}

	for _, test := range tests {
		provider, id, ok := ParseURL(test.url)
		if provider != test.provider || id != test.id || ok != test.ok {
			t.Errorf("ParseURL(%q) = (%q, %q, %v), expected (%q, %q, %v)",
				test.url, provider, id, ok, test.provider, test.id, test.ok)
		}
	}
}
