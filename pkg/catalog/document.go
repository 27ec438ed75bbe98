package catalog

import "encoding/xml"

// The ts* types mirror the TS document schema. Field order matters for
// encoding: it matches the element order lupdate writes.

type tsDocument struct {
	XMLName        xml.Name    `xml:"TS"`
	Version        string      `xml:"version,attr"`
	Language       string      `xml:"language,attr,omitempty"`
	SourceLanguage string      `xml:"sourcelanguage,attr,omitempty"`
	Contexts       []tsContext `xml:"context"`
}

type tsContext struct {
	Names    []string    `xml:"name"`
	Messages []tsMessage `xml:"message"`
}

type tsMessage struct {
	Numerus           string          `xml:"numerus,attr,omitempty"`
	Locations         []tsLocation    `xml:"location"`
	Sources           []string        `xml:"source"`
	Comment           string          `xml:"comment,omitempty"`
	ExtraComment      string          `xml:"extracomment,omitempty"`
	TranslatorComment string          `xml:"translatorcomment,omitempty"`
	Translations      []tsTranslation `xml:"translation"`
}

type tsLocation struct {
	Filename string `xml:"filename,attr,omitempty"`
	Line     string `xml:"line,attr,omitempty"`
}

type tsTranslation struct {
	Type         string   `xml:"type,attr,omitempty"`
	Text         string   `xml:",chardata"`
	NumerusForms []string `xml:"numerusform"`
}
