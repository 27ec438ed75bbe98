// Package lookup turns (context, source, comment) triples into display strings.
// Lookups never fail: anything without a usable translation is shown in the
// source language.
package lookup

import (
	"github.com/jesseduffield/tscat/pkg/catalog"
)

// CatalogSource hands out the catalog lookups should read from. The provider
// implements it; tests can use Static.
type CatalogSource interface {
	Catalog() *catalog.Catalog
}

// Resolver resolves display strings.
type Resolver interface {
	Resolve(context, source, comment string) string
	ResolvePlural(context, source, comment string, n int) string
}

// Static is a CatalogSource that always returns the same catalog.
type Static struct {
	C *catalog.Catalog
}

// Catalog returns the wrapped catalog.
func (s Static) Catalog() *catalog.Catalog {
	return s.C
}

// Service resolves strings against whatever catalog its source currently
// holds, so a language switch is picked up by the next call.
type Service struct {
	source CatalogSource
}

var _ Resolver = &Service{}

// NewService returns a Service reading from source.
func NewService(source CatalogSource) *Service {
	return &Service{source: source}
}

// Resolve returns the translation of source, or source itself when there is
// no usable translation.
func (s *Service) Resolve(context, source, comment string) string {
	return Resolve(s.source.Catalog(), context, source, comment)
}

// ResolvePlural returns the numerus form for n, or source itself when there is
// no usable translation.
func (s *Service) ResolvePlural(context, source, comment string, n int) string {
	return ResolvePlural(s.source.Catalog(), context, source, comment, n)
}

// Resolve looks the triple up in c. Placeholders such as %1 are left alone.
func Resolve(c *catalog.Catalog, context, source, comment string) string {
	msg, ok := usable(c, context, source, comment)
	if !ok {
		return source
	}
	if !msg.Numerus {
		return msg.Translation
	}
	for _, form := range msg.NumerusForms {
		if form != "" {
			return form
		}
	}
	return source
}

// ResolvePlural picks the numerus form for n using the plural rules of the
// catalog language. Non-numerus messages resolve as in Resolve.
func ResolvePlural(c *catalog.Catalog, context, source, comment string, n int) string {
	msg, ok := usable(c, context, source, comment)
	if !ok {
		return source
	}
	if !msg.Numerus {
		return msg.Translation
	}

	forms := msg.NumerusForms
	index := catalog.PluralIndex(c.Tag(), n)
	if index >= len(forms) {
		index = len(forms) - 1
	}
	if forms[index] != "" {
		return forms[index]
	}
	return Resolve(c, context, source, comment)
}

func usable(c *catalog.Catalog, context, source, comment string) (*catalog.Message, bool) {
	msg, ok := c.Lookup(catalog.Key{Context: context, Source: source, Comment: comment})
	if !ok || !msg.Usable() {
		return nil, false
	}
	return msg, true
}
