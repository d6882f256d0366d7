package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"

	"github.com/huessenbergnetz/hbnsc/internal/icons"
	"github.com/huessenbergnetz/hbnsc/internal/platform"
)

func TestIconSetup_Apply(t *testing.T) {
	registry := icons.NewRegistry()
	setup := NewIconSetup(registry, icons.DefaultName, icons.Options{
		Scales:         icons.DefaultScales,
		Dir:            "/icons",
		LargeAvailable: true,
	})

	initial := platform.Environment{PixelRatio: 1.0, SizeCategory: platform.SizeMedium}
	if !setup.Apply(initial) {
		t.Fatal("Expected first Apply to register a provider")
	}
	p, ok := registry.Provider(icons.DefaultName)
	if !ok || p.Dir() != "/icons/z1/" {
		t.Fatalf("Expected provider for /icons/z1/, got %v", p)
	}

	if setup.Apply(initial) {
		t.Error("Expected unchanged environment to keep the provider")
	}

	shown := platform.Environment{PixelRatio: 2.0, SizeCategory: platform.SizeLarge}
	if !setup.Apply(shown) {
		t.Fatal("Expected changed environment to register a new provider")
	}
	p, _ = registry.Provider(icons.DefaultName)
	if p.Dir() != "/icons/z2-large/" {
		t.Errorf("Expected /icons/z2-large/, got %q", p.Dir())
	}
	if setup.Environment() != shown {
		t.Errorf("Expected environment %v, got %v", shown, setup.Environment())
	}
}

func TestRootUI_ReloadIcons(t *testing.T) {
	app := test.NewApp()
	w := test.NewWindow(nil)
	defer w.Close()
	registry := icons.NewRegistry()
	ui := NewRootUI(w, app, registry, newTestCatalog(t), zerolog.Nop())
	if ui.dirLabel.Text != DashPlaceholder {
		t.Fatalf("Expected placeholder before a provider exists, got %q", ui.dirLabel.Text)
	}

	setup := NewIconSetup(registry, icons.DefaultName, icons.Options{Dir: "/icons", Scales: icons.ScaleSet{1.0}})
	setup.Apply(platform.Environment{PixelRatio: 1.0})
	ui.ReloadIcons()

	if ui.dirLabel.Text == DashPlaceholder {
		t.Error("Expected icon directory after reload")
	}
}
