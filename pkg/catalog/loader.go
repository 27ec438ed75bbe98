package catalog

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spkg/bom"
	"golang.org/x/text/encoding/htmlindex"
)

// Option tweaks how a catalog is loaded.
type Option func(*options)

type options struct {
	lenient  bool
	path     string
	language string
}

// WithLenient makes duplicate keys non-fatal: the first occurrence wins,
// repeated contexts are merged and the duplicates are reported by
// Catalog.Duplicates.
func WithLenient(lenient bool) Option {
	return func(o *options) {
		o.lenient = lenient
	}
}

// WithPath names the document in error messages.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithLanguage sets the language used when the document has no language
// attribute.
func WithLanguage(lang string) Option {
	return func(o *options) {
		o.language = lang
	}
}

// LoadFile loads the catalog at path. When the document does not declare its
// language, the file name stem is used ("fr.ts" -> "fr").
func LoadFile(path string, opts ...Option) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Parse(file, append([]Option{WithPath(path), WithLanguage(stem)}, opts...)...)
}

// ParseBytes parses an in-memory catalog.
func ParseBytes(data []byte, opts ...Option) (*Catalog, error) {
	return Parse(bytes.NewReader(data), opts...)
}

// Parse reads a TS document and builds a catalog from it. Text is kept exactly
// as decoded from XML; rich text payloads such as "<html>..." are not touched.
func Parse(r io.Reader, opts ...Option) (*Catalog, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	var encodingErr error
	decoder := xml.NewDecoder(bom.NewReader(r))
	decoder.CharsetReader = func(label string, input io.Reader) (io.Reader, error) {
		enc, err := htmlindex.Get(label)
		if err != nil {
			encodingErr = newEncodingError(o.path, label, err)
			return nil, encodingErr
		}
		return enc.NewDecoder().Reader(input), nil
	}

	var doc tsDocument
	if err := decoder.Decode(&doc); err != nil {
		if encodingErr != nil {
			return nil, encodingErr
		}
		return nil, decodeError(o.path, err)
	}
	if err := checkTrailing(decoder, o.path); err != nil {
		return nil, err
	}

	c, err := build(doc, o)
	if err != nil {
		return nil, withPath(err, o.path)
	}
	return c, nil
}

func decodeError(path string, err error) error {
	if errors.Is(err, io.EOF) {
		return newParseError(path, 0, nil, "empty document")
	}
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		if strings.Contains(syntaxErr.Msg, "invalid UTF-8") {
			return newEncodingError(path, "", err)
		}
		return newParseError(path, syntaxErr.Line, err, "malformed document")
	}
	return newParseError(path, 0, err, "invalid document")
}

// checkTrailing reads past the root element. Only whitespace, comments and
// processing instructions may follow it.
func checkTrailing(decoder *xml.Decoder, path string) error {
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return decodeError(path, err)
		}
		line, _ := decoder.InputPos()
		switch t := token.(type) {
		case xml.StartElement:
			return newParseError(path, line, nil, "malformed document: unexpected <%s> after </TS>", t.Name.Local)
		case xml.Directive:
			return newParseError(path, line, nil, "malformed document: unexpected <!%s> after </TS>", t)
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return newParseError(path, line, nil, "malformed document: unexpected text after </TS>")
			}
		}
	}
}

func build(doc tsDocument, o options) (*Catalog, error) {
	lang := doc.Language
	if lang == "" {
		lang = o.language
	}
	version := doc.Version
	if version == "" {
		version = DefaultVersion
	}
	c := newCatalog(lang, doc.SourceLanguage, version)

	for i, tc := range doc.Contexts {
		if len(tc.Names) != 1 {
			return nil, newParseError("", 0, nil, "context #%d: expected one <name>, found %d", i+1, len(tc.Names))
		}
		name := tc.Names[0]

		ctx, seen := c.contexts[name]
		if seen {
			if !o.lenient {
				return nil, newDuplicateKeyError("", Key{Context: name})
			}
			c.duplicates = append(c.duplicates, Key{Context: name})
		} else {
			ctx = c.addContext(name)
		}

		for j, tm := range tc.Messages {
			msg, err := buildMessage(tm)
			if err != nil {
				return nil, newParseError("", 0, err, "context %q, message #%d", name, j+1)
			}
			if err := c.addMessage(ctx, msg); err != nil {
				if !o.lenient {
					return nil, err
				}
				c.duplicates = append(c.duplicates, msg.Key(name))
			}
		}
	}

	return c, nil
}

func buildMessage(tm tsMessage) (*Message, error) {
	if len(tm.Sources) != 1 {
		return nil, errors.New("expected one <source>, found " + strconv.Itoa(len(tm.Sources)))
	}
	if len(tm.Translations) > 1 {
		return nil, errors.New("expected one <translation>, found " + strconv.Itoa(len(tm.Translations)))
	}

	msg := &Message{
		Source:            tm.Sources[0],
		Comment:           tm.Comment,
		ExtraComment:      tm.ExtraComment,
		TranslatorComment: tm.TranslatorComment,
		Numerus:           tm.Numerus == "yes",
		Type:              Unfinished,
	}

	if len(tm.Translations) == 1 {
		tt := tm.Translations[0]
		kind, ok := parseTranslationType(tt.Type)
		if !ok {
			return nil, errors.New("unknown translation type " + strconv.Quote(tt.Type))
		}
		msg.Type = kind
		if msg.Numerus {
			msg.NumerusForms = tt.NumerusForms
		} else {
			msg.Translation = tt.Text
		}
	}

	for _, tl := range tm.Locations {
		loc, err := buildLocation(tl)
		if err != nil {
			return nil, err
		}
		msg.Locations = append(msg.Locations, loc)
	}

	return msg, nil
}

func buildLocation(tl tsLocation) (Location, error) {
	loc := Location{Filename: tl.Filename}
	if tl.Line == "" {
		return loc, nil
	}
	line, err := strconv.Atoi(tl.Line)
	if err != nil {
		return loc, errors.New("invalid location line " + strconv.Quote(tl.Line))
	}
	loc.Line = line
	loc.Relative = strings.HasPrefix(tl.Line, "+") || strings.HasPrefix(tl.Line, "-")
	return loc, nil
}
