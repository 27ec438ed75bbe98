package catalog

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"
)

const doctype = "<!DOCTYPE TS>\n"

// Marshal encodes the catalog in the TS format.
func Marshal(c *Catalog) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes the catalog in the TS format to w.
func Write(w io.Writer, c *Catalog) error {
	if _, err := io.WriteString(w, xml.Header+doctype); err != nil {
		return err
	}

	encoder := xml.NewEncoder(w)
	encoder.Indent("", "    ")
	if err := encoder.Encode(toDocument(c)); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func toDocument(c *Catalog) tsDocument {
	doc := tsDocument{
		Version:        c.Version,
		Language:       c.Language,
		SourceLanguage: c.SourceLanguage,
	}
	if doc.Version == "" {
		doc.Version = DefaultVersion
	}

	for _, ctx := range c.Contexts {
		tc := tsContext{Names: []string{ctx.Name}}
		for _, msg := range ctx.Messages {
			tc.Messages = append(tc.Messages, toMessage(msg))
		}
		doc.Contexts = append(doc.Contexts, tc)
	}
	return doc
}

func toMessage(msg *Message) tsMessage {
	tm := tsMessage{
		Sources:           []string{msg.Source},
		Comment:           msg.Comment,
		ExtraComment:      msg.ExtraComment,
		TranslatorComment: msg.TranslatorComment,
	}

	tt := tsTranslation{Type: msg.Type.String()}
	if msg.Numerus {
		tm.Numerus = "yes"
		tt.NumerusForms = msg.NumerusForms
	} else {
		tt.Text = msg.Translation
	}
	tm.Translations = []tsTranslation{tt}

	for _, loc := range msg.Locations {
		tl := tsLocation{Filename: loc.Filename}
		switch {
		case loc.Relative && loc.Line >= 0:
			tl.Line = "+" + strconv.Itoa(loc.Line)
		case loc.Relative || loc.Line != 0:
			tl.Line = strconv.Itoa(loc.Line)
		}
		tm.Locations = append(tm.Locations, tl)
	}
	return tm
}
