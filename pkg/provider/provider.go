// Package provider owns the active catalog. Readers get the current catalog
// with a single atomic load; a new catalog is fully built before it replaces
// the old one, and a failed load leaves the old one in place.
package provider

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/cloudfoundry/jibber_jabber"
	"github.com/go-errors/errors"
	"github.com/jesseduffield/tscat/pkg/catalog"
	"github.com/samber/lo"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

// Extension is the file extension of catalog files.
const Extension = ".ts"

// ErrLanguageNotFound is returned by Load when no catalog file exists for the
// requested language.
var ErrLanguageNotFound = errors.New("no catalog for language")

// Options configures a Provider.
type Options struct {
	// Directory holds one <language>.ts file per language.
	Directory string
	// SourceLanguage is the language the source strings are written in. It
	// needs no catalog: loading it installs an empty one.
	SourceLanguage string
	Lenient        bool
}

// Provider holds the active catalog.
type Provider struct {
	Log *logrus.Entry

	options Options
	current atomic.Pointer[catalog.Catalog]

	// guards path
	mu   deadlock.Mutex
	path string

	detect func() (string, error)
}

// New returns a provider whose active catalog is the empty source-language
// catalog.
func New(log *logrus.Entry, options Options) *Provider {
	if options.SourceLanguage == "" {
		options.SourceLanguage = "en"
	}
	p := &Provider{
		Log:     log,
		options: options,
		detect:  jibber_jabber.DetectIETF,
	}
	p.current.Store(catalog.Empty(options.SourceLanguage))
	return p
}

// Catalog returns the active catalog. It is never nil.
func (p *Provider) Catalog() *catalog.Catalog {
	return p.current.Load()
}

// Language returns the language of the active catalog.
func (p *Provider) Language() string {
	return p.Catalog().Language
}

// Path returns the file the active catalog was loaded from, or "" for the
// source-language catalog.
func (p *Provider) Path() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.path
}

// Swap installs c as the active catalog and returns the previous one. The
// swapped-in catalog has no file, so watching stops reloading the old one.
func (p *Provider) Swap(c *catalog.Catalog) *catalog.Catalog {
	if c == nil {
		c = catalog.Empty(p.options.SourceLanguage)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.path = ""
	return p.current.Swap(c)
}

// Load switches to the catalog for lang. "" and "auto" pick the best match for
// the system locale. The source language needs no file; without one it gets
// the empty catalog.
func (p *Provider) Load(lang string) error {
	if lang == "" || lang == "auto" {
		lang = p.detectLanguage()
	}

	path := p.CatalogPath(lang)
	if _, err := os.Stat(path); err != nil {
		if p.IsSourceLanguage(lang) {
			p.install(catalog.Empty(lang), "")
			return nil
		}
		p.Log.WithField("language", lang).Warn(ErrLanguageNotFound.Error())
		return fmt.Errorf("%w: %s", ErrLanguageNotFound, lang)
	}
	return p.LoadFile(path)
}

// LoadFile loads the catalog at path and makes it active. On failure the
// active catalog is left untouched.
func (p *Provider) LoadFile(path string) error {
	c, err := p.read(path)
	if err != nil {
		return err
	}
	p.install(c, path)
	p.Log.WithField("path", path).Infof("loaded %d messages for %s", c.Len(), c.Language)
	return nil
}

// reload re-reads path and installs it only if path is still the active file.
func (p *Provider) reload(path string) error {
	c, err := p.read(path)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.path != path {
		p.Log.WithField("path", path).Debug("catalog replaced while reloading, dropping reload")
		return nil
	}
	p.current.Store(c)
	p.Log.WithField("path", path).Infof("reloaded %d messages for %s", c.Len(), c.Language)
	return nil
}

func (p *Provider) read(path string) (*catalog.Catalog, error) {
	c, err := catalog.LoadFile(path, catalog.WithLenient(p.options.Lenient))
	if err != nil {
		p.Log.WithField("path", path).Error(err.Error())
		return nil, err
	}
	for _, key := range c.Duplicates() {
		p.Log.WithField("path", path).Warnf("duplicate key ignored: %s", key)
	}
	return c, nil
}

func (p *Provider) install(c *catalog.Catalog, path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.path = path
	p.current.Store(c)
}

// CatalogPath returns where the catalog for lang would be loaded from.
func (p *Provider) CatalogPath(lang string) string {
	return filepath.Join(p.options.Directory, lang+Extension)
}

// Languages lists the languages with a catalog file in the directory, sorted.
func (p *Provider) Languages() ([]string, error) {
	entries, err := os.ReadDir(p.options.Directory)
	if err != nil {
		return nil, err
	}

	languages := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (string, bool) {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != Extension {
			return "", false
		}
		return strings.TrimSuffix(name, Extension), true
	})
	sort.Strings(languages)
	return languages, nil
}

// Match returns the available language that best fits the preferred ones, or
// the source language when none is close enough.
func (p *Provider) Match(preferred ...string) string {
	available, err := p.Languages()
	if err != nil {
		p.Log.Warn(err.Error())
	}
	available = lo.Reject(available, func(lang string, _ int) bool {
		return p.IsSourceLanguage(lang)
	})
	candidates := append([]string{p.options.SourceLanguage}, available...)

	tags := lo.Map(candidates, func(lang string, _ int) language.Tag {
		return catalog.ParseLanguage(lang)
	})
	wanted := lo.Map(preferred, func(lang string, _ int) language.Tag {
		return catalog.ParseLanguage(lang)
	})

	_, index, confidence := language.NewMatcher(tags).Match(wanted...)
	if confidence == language.No {
		return p.options.SourceLanguage
	}
	return candidates[index]
}

func (p *Provider) detectLanguage() string {
	locale, err := p.detect()
	if err != nil {
		p.Log.Warnf("could not detect system language: %v", err)
		return p.options.SourceLanguage
	}
	// POSIX locales look like "el_GR.UTF-8"
	locale = strings.SplitN(locale, ".", 2)[0]
	return p.Match(locale)
}

// IsSourceLanguage reports whether lang names the language the source strings
// are written in, e.g. "en", "EN" or "en_US" for an "en" source.
func (p *Provider) IsSourceLanguage(lang string) bool {
	if strings.EqualFold(lang, p.options.SourceLanguage) {
		return true
	}
	tag := catalog.ParseLanguage(lang)
	source := catalog.ParseLanguage(p.options.SourceLanguage)
	if tag == language.Und || source == language.Und {
		return false
	}
	if tag == source {
		return true
	}
	// a bare source language such as "en" also covers its regional variants
	tagBase, _ := tag.Base()
	sourceBase, _ := source.Base()
	_, confidence := source.Region()
	return tagBase == sourceBase && confidence != language.Exact
}
