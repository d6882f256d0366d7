package licenses

// Package licenses holds the third-party license table shown on about pages.
// A Builder collects entries once, Seal sorts them by name and returns a
// read-only Catalog that list views query by row and field.
