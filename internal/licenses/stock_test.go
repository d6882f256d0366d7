package licenses

import (
	"runtime/debug"
	"testing"
)

func TestStockEntries(t *testing.T) {
	b := NewBuilder()
	if err := AddSQLite(b, "3.45.1"); err != nil {
		t.Fatal(err)
	}
	if err := AddOpenSSL(b, "3.0.13"); err != nil {
		t.Fatal(err)
	}
	if err := AddNemoNotifications(b, "1.2.3"); err != nil {
		t.Fatal(err)
	}
	c := b.Seal()

	expected := []string{"OpenSSL", "SQLite", "nemo-qml-plugin-notifications"}
	for row, name := range expected {
		if got, _ := c.Get(row, FieldName); got != name {
			t.Errorf("Row %d: expected %q, got %q", row, name, got)
		}
	}

	if license, _ := c.Get(1, FieldLicense); license != LicensePublicDom {
		t.Errorf("Expected SQLite to be public domain, got %q", license)
	}
	if version, _ := c.Get(0, FieldVersion); version != "3.0.13" {
		t.Errorf("Expected OpenSSL version 3.0.13, got %q", version)
	}
}

func TestAddModules(t *testing.T) {
	info := &debug.BuildInfo{
		Deps: []*debug.Module{
			{Path: "github.com/spf13/cobra", Version: "v1.10.1"},
			{Path: "fyne.io/fyne/v2", Version: "v2.6.2"},
			{
				Path:    "example.com/old",
				Version: "v0.1.0",
				Replace: &debug.Module{Path: "example.com/fork", Version: "v0.2.0"},
			},
		},
	}

	b := NewBuilder()
	if err := AddModules(b, info); err != nil {
		t.Fatalf("AddModules failed: %v", err)
	}
	c := b.Seal()

	if c.Count() != 3 {
		t.Fatalf("Expected 3 entries, got %d", c.Count())
	}

	first, _ := c.Entry(0)
	if first.Name != "example.com/fork" || first.Version != "v0.2.0" {
		t.Errorf("Expected replacement module first, got %+v", first)
	}
	if first.License != "" {
		t.Errorf("Unknown module should have no license, got %q", first.License)
	}

	fyne, _ := c.Entry(1)
	if fyne.License != LicenseBSD3 {
		t.Errorf("Expected fyne to be %s, got %q", LicenseBSD3, fyne.License)
	}
	if fyne.Website != GoModuleWebsite+"fyne.io/fyne/v2" {
		t.Errorf("Unexpected website %q", fyne.Website)
	}

	cobra, _ := c.Entry(2)
	if cobra.License != LicenseApache2 {
		t.Errorf("Expected cobra to be %s, got %q", LicenseApache2, cobra.License)
	}
}

func TestAddModules_NilInfo(t *testing.T) {
	b := NewBuilder()
	if err := AddModules(b, nil); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("Expected no entries, got %d", b.Len())
	}
}

func TestAddModules_SealedBuilder(t *testing.T) {
	b := NewBuilder()
	b.Seal()

	info := &debug.BuildInfo{Deps: []*debug.Module{{Path: "example.com/a", Version: "v1.0.0"}}}
	if err := AddModules(b, info); err == nil {
		t.Error("Expected error when adding to a sealed builder")
	}
}

func TestNewDefaultCatalog(t *testing.T) {
	c := NewDefaultCatalog()
	for row := 1; row < c.Count(); row++ {
		prev, _ := c.Get(row-1, FieldName)
		cur, _ := c.Get(row, FieldName)
		if prev > cur {
			t.Errorf("Default catalog not sorted at row %d: %q before %q", row, prev, cur)
		}
	}
}
