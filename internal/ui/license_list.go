package ui

import (
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/huessenbergnetz/hbnsc/internal/licenses"
)

// LicenseList shows a license catalog in a widget.List.
type LicenseList struct {
	catalog      *licenses.Catalog
	localization *Localization
	list         *widget.List
	openURL      func(*url.URL) error
	onError      func(error)
}

// NewLicenseList binds catalog to a list. openURL is called with the website
// of a tapped row; a nil func disables opening.
func NewLicenseList(catalog *licenses.Catalog, localization *Localization, openURL func(*url.URL) error) *LicenseList {
	ll := &LicenseList{
		catalog:      catalog,
		localization: localization,
		openURL:      openURL,
	}

	ll.list = widget.NewList(
		ll.catalog.Count,
		ll.createRow,
		ll.updateRow,
	)
	ll.list.OnSelected = ll.onSelected
	return ll
}

// SetErrorHandler sets the callback for failures while opening a website.
func (ll *LicenseList) SetErrorHandler(handler func(error)) {
	ll.onError = handler
}

// Widget returns the list widget
func (ll *LicenseList) Widget() *widget.List {
	return ll.list
}

// Length returns the number of rows
func (ll *LicenseList) Length() int {
	return ll.catalog.Count()
}

// RowText returns the title, author and license lines of a row.
// Rows outside the catalog are empty.
func (ll *LicenseList) RowText(row int) (title, author, license string) {
	name, ok := ll.catalog.Get(row, licenses.FieldName)
	if !ok {
		return "", "", ""
	}
	version, _ := ll.catalog.Get(row, licenses.FieldVersion)
	title = name
	if version != "" {
		title = name + " " + version
	}

	if value, _ := ll.catalog.Get(row, licenses.FieldAuthor); value != "" {
		author = ll.localization.GetText(KeyAuthor) + ": " + value
	}

	licenseID, _ := ll.catalog.Get(row, licenses.FieldLicense)
	if licenseID == "" {
		licenseID = DashPlaceholder
	}
	license = ll.localization.GetText(KeyLicense) + ": " + licenseID
	return title, author, license
}

// Website returns the URL opened for a row, preferring the component website
// over the license website.
func (ll *LicenseList) Website(row int) (*url.URL, bool) {
	for _, field := range []licenses.Field{licenses.FieldWebsite, licenses.FieldLicenseWebsite, licenses.FieldCustomLicenseFile} {
		raw, ok := ll.catalog.Get(row, field)
		if !ok {
			return nil, false
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" {
			continue
		}
		return u, true
	}
	return nil, false
}

func (ll *LicenseList) createRow() fyne.CanvasObject {
	title := widget.NewLabel("")
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Truncation = fyne.TextTruncateEllipsis

	author := widget.NewLabel("")
	author.Truncation = fyne.TextTruncateEllipsis

	license := widget.NewLabel("")
	license.Truncation = fyne.TextTruncateEllipsis

	return container.NewVBox(title, author, license)
}

func (ll *LicenseList) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	row, ok := obj.(*fyne.Container)
	if !ok || len(row.Objects) < 3 {
		return
	}

	title, author, license := ll.RowText(id)
	row.Objects[0].(*widget.Label).SetText(title)
	row.Objects[1].(*widget.Label).SetText(author)
	row.Objects[2].(*widget.Label).SetText(license)
}

func (ll *LicenseList) onSelected(id widget.ListItemID) {
	defer ll.list.Unselect(id)

	if ll.openURL == nil {
		return
	}
	u, ok := ll.Website(id)
	if !ok {
		return
	}
	if err := ll.openURL(u); err != nil && ll.onError != nil {
		ll.onError(err)
	}
}
