// Package catalog models Qt Linguist translation catalogs (.ts files): an
// ordered list of contexts, each holding the messages of one UI component.
//
// A Catalog is built once by the loader and is read-only afterwards, so it can
// be shared between goroutines without locking. Switching language means
// loading a new Catalog and replacing the old one wholesale.
package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// DefaultVersion is the TS format version written when a catalog has none.
const DefaultVersion = "2.1"

// Key identifies a message within a catalog. Comment is Qt's disambiguation
// string and is empty for most messages.
type Key struct {
	Context string
	Source  string
	Comment string
}

func (k Key) String() string {
	if k.Comment == "" {
		return fmt.Sprintf("%s: %q", k.Context, k.Source)
	}
	return fmt.Sprintf("%s: %q (%s)", k.Context, k.Source, k.Comment)
}

// Context groups the messages of one UI component, e.g. "AboutDialog".
type Context struct {
	Name     string
	Messages []*Message
}

// Catalog holds every message for one target language.
type Catalog struct {
	Language       string
	SourceLanguage string
	Version        string
	Contexts       []*Context

	contexts   map[string]*Context
	index      map[Key]*Message
	duplicates []Key
}

// Empty returns a catalog with no messages. Every lookup against it falls back
// to the source text.
func Empty(lang string) *Catalog {
	return newCatalog(lang, "", DefaultVersion)
}

func newCatalog(lang, sourceLang, version string) *Catalog {
	return &Catalog{
		Language:       lang,
		SourceLanguage: sourceLang,
		Version:        version,
		contexts:       map[string]*Context{},
		index:          map[Key]*Message{},
	}
}

// New builds a catalog from already constructed contexts, enforcing the same
// uniqueness rules as the loader in strict mode.
func New(lang string, contexts ...*Context) (*Catalog, error) {
	c := newCatalog(lang, "", DefaultVersion)
	for _, ctx := range contexts {
		if _, ok := c.contexts[ctx.Name]; ok {
			return nil, newDuplicateKeyError("", Key{Context: ctx.Name})
		}
		target := c.addContext(ctx.Name)
		for _, msg := range ctx.Messages {
			if err := c.addMessage(target, msg); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

func (c *Catalog) addContext(name string) *Context {
	ctx := &Context{Name: name}
	c.Contexts = append(c.Contexts, ctx)
	c.contexts[name] = ctx
	return ctx
}

func (c *Catalog) addMessage(ctx *Context, msg *Message) error {
	key := msg.Key(ctx.Name)
	if _, ok := c.index[key]; ok {
		return newDuplicateKeyError("", key)
	}
	ctx.Messages = append(ctx.Messages, msg)
	c.index[key] = msg
	return nil
}

// Lookup returns the message stored under key.
func (c *Catalog) Lookup(key Key) (*Message, bool) {
	if c == nil {
		return nil, false
	}
	msg, ok := c.index[key]
	return msg, ok
}

// Context returns the context with the given name.
func (c *Catalog) Context(name string) (*Context, bool) {
	if c == nil {
		return nil, false
	}
	ctx, ok := c.contexts[name]
	return ctx, ok
}

// Len returns the number of messages in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.index)
}

// IsEmpty reports whether the catalog holds no messages.
func (c *Catalog) IsEmpty() bool {
	return c.Len() == 0
}

// Keys returns every message key in document order.
func (c *Catalog) Keys() []Key {
	if c == nil {
		return nil
	}
	keys := make([]Key, 0, len(c.index))
	for _, ctx := range c.Contexts {
		for _, msg := range ctx.Messages {
			keys = append(keys, msg.Key(ctx.Name))
		}
	}
	return keys
}

// Duplicates lists the keys that were seen more than once while loading in
// lenient mode. Only the first occurrence of each is kept.
func (c *Catalog) Duplicates() []Key {
	if c == nil {
		return nil
	}
	return c.duplicates
}

// Tag parses the catalog language. Qt writes locales with underscores
// ("zh_CN"), which are accepted here. Unparseable languages yield language.Und.
func (c *Catalog) Tag() language.Tag {
	if c == nil {
		return language.Und
	}
	return ParseLanguage(c.Language)
}

// ParseLanguage parses a Qt or BCP 47 locale name, returning language.Und when
// it is not valid.
func ParseLanguage(name string) language.Tag {
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return language.Und
	}
	return tag
}
