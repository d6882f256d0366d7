package licenses

import (
	"runtime/debug"
	"strings"
)

// License identifiers and texts used by the stock entries.
const (
	LicenseBSD3       = "BSD-3-Clause"
	LicenseMIT        = "MIT"
	LicenseApache2    = "Apache-2.0"
	LicensePublicDom  = "Public Domain"
	LicenseWebBSD3    = "https://opensource.org/licenses/BSD-3-Clause"
	LicenseWebMIT     = "https://opensource.org/licenses/MIT"
	LicenseWebApache2 = "https://www.apache.org/licenses/LICENSE-2.0"
)

// GoModuleWebsite is prefixed to module paths to link their documentation.
const GoModuleWebsite = "https://pkg.go.dev/"

// AddSQLite adds the SQLite database engine.
func AddSQLite(b *Builder, version string) error {
	return b.Add(
		"SQLite",
		"D. Richard Hipp",
		version,
		"https://www.sqlite.org",
		"SQLite is a self-contained, high-reliability, embedded, full-featured, public-domain, SQL database engine.",
		LicensePublicDom,
		"",
		"https://www.sqlite.org/copyright.html",
		"",
	)
}

// AddNemoNotifications adds the Nemo notifications plugin.
func AddNemoNotifications(b *Builder, version string) error {
	return b.Add(
		"nemo-qml-plugin-notifications",
		"Jolla Ltd.",
		version,
		"https://github.com/sailfishos/nemo-qml-plugin-notifications",
		"Plugin and library to handle notifications using the freedesktop.org notification specification.",
		LicenseBSD3,
		"",
		LicenseWebBSD3,
		"",
	)
}

// AddOpenSSL adds the OpenSSL toolkit.
func AddOpenSSL(b *Builder, version string) error {
	return b.Add(
		"OpenSSL",
		"The OpenSSL Project",
		version,
		"https://www.openssl.org",
		"OpenSSL is a robust, commercial-grade, and full-featured toolkit for the Transport Layer Security (TLS) and Secure Sockets Layer (SSL) protocols.",
		LicenseApache2,
		"",
		"https://www.openssl.org/source/license.html",
		"",
	)
}

type moduleLicense struct {
	author  string
	license string
	website string
}

// knownModules maps module path prefixes to license data the build info does not carry.
var knownModules = map[string]moduleLicense{
	"fyne.io/":                 {"Fyne.io developers", LicenseBSD3, LicenseWebBSD3},
	"golang.org/x/":            {"The Go Authors", LicenseBSD3, LicenseWebBSD3},
	"github.com/rs/zerolog":    {"Olivier Poitrey", LicenseMIT, LicenseWebMIT},
	"github.com/spf13/cobra":   {"Steve Francia", LicenseApache2, LicenseWebApache2},
	"github.com/spf13/pflag":   {"Alex Ogier, The Go Authors", LicenseBSD3, LicenseWebBSD3},
	"github.com/mattn/":        {"Yasuhiro Matsumoto", LicenseMIT, LicenseWebMIT},
	"github.com/BurntSushi/":   {"Andrew Gallant", LicenseMIT, LicenseWebMIT},
	"github.com/fsnotify/":     {"The fsnotify Authors", LicenseBSD3, LicenseWebBSD3},
	"github.com/go-text/":      {"The go-text Authors", LicenseBSD3, LicenseWebBSD3},
	"github.com/yuin/goldmark": {"Yusuke Inuzuka", LicenseMIT, LicenseWebMIT},
}

func lookupModule(path string) (moduleLicense, bool) {
	var best string
	for prefix := range knownModules {
		if strings.HasPrefix(path, prefix) && len(prefix) > len(best) {
			best = prefix
		}
	}
	if best == "" {
		return moduleLicense{}, false
	}
	return knownModules[best], true
}

// AddModules adds one entry per dependency module of a Go binary.
// Replaced modules are listed with their replacement.
func AddModules(b *Builder, info *debug.BuildInfo) error {
	if info == nil {
		return nil
	}

	for _, dep := range info.Deps {
		mod := dep
		if dep.Replace != nil {
			mod = dep.Replace
		}

		known, _ := lookupModule(mod.Path)
		if err := b.Add(
			mod.Path,
			known.author,
			mod.Version,
			GoModuleWebsite+mod.Path,
			"Go module",
			known.license,
			"",
			known.website,
			"",
		); err != nil {
			return err
		}
	}
	return nil
}

// NewDefaultCatalog lists the modules compiled into the running binary.
func NewDefaultCatalog() *Catalog {
	b := NewBuilder()
	if info, ok := debug.ReadBuildInfo(); ok {
		// a fresh builder is never sealed
		_ = AddModules(b, info)
	}
	return b.Seal()
}
