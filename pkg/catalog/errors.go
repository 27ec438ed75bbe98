package catalog

import (
	"fmt"

	"golang.org/x/xerrors"
)

// ParseError reports a document that is not well-formed XML or does not follow
// the TS schema. Line is zero when the position is not known.
type ParseError struct {
	Path string
	Line int
	Msg  string
	Err  error

	frame xerrors.Frame
}

func newParseError(path string, line int, err error, format string, args ...any) *ParseError {
	return &ParseError{
		Path:  path,
		Line:  line,
		Msg:   fmt.Sprintf(format, args...),
		Err:   err,
		frame: xerrors.Caller(1),
	}
}

// FormatError is a function
func (e *ParseError) FormatError(p xerrors.Printer) error {
	p.Print(location(e.Path, e.Line) + e.Msg)
	e.frame.Format(p)
	return e.Err
}

// Format is a function
func (e *ParseError) Format(f fmt.State, c rune) {
	xerrors.FormatError(e, f, c)
}

func (e *ParseError) Error() string {
	return fmt.Sprint(e)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// EncodingError reports text that cannot be decoded, either because the
// declared charset is unknown or because the bytes are not valid in it.
type EncodingError struct {
	Path    string
	Charset string
	Err     error

	frame xerrors.Frame
}

func newEncodingError(path, charset string, err error) *EncodingError {
	return &EncodingError{Path: path, Charset: charset, Err: err, frame: xerrors.Caller(1)}
}

// FormatError is a function
func (e *EncodingError) FormatError(p xerrors.Printer) error {
	if e.Charset == "" {
		p.Print(location(e.Path, 0) + "cannot decode catalog text")
	} else {
		p.Printf("%scannot decode catalog text as %q", location(e.Path, 0), e.Charset)
	}
	e.frame.Format(p)
	return e.Err
}

// Format is a function
func (e *EncodingError) Format(f fmt.State, c rune) {
	xerrors.FormatError(e, f, c)
}

func (e *EncodingError) Error() string {
	return fmt.Sprint(e)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// DuplicateKeyError reports a message key, or a context name when Key.Source
// is empty, that occurs more than once. It also matches *ParseError with
// errors.As.
type DuplicateKeyError struct {
	Path string
	Key  Key

	frame xerrors.Frame
}

func newDuplicateKeyError(path string, key Key) *DuplicateKeyError {
	return &DuplicateKeyError{Path: path, Key: key, frame: xerrors.Caller(1)}
}

func (e *DuplicateKeyError) message() string {
	if e.Key.Source == "" && e.Key.Comment == "" {
		return fmt.Sprintf("duplicate context %q", e.Key.Context)
	}
	return "duplicate message " + e.Key.String()
}

// FormatError is a function
func (e *DuplicateKeyError) FormatError(p xerrors.Printer) error {
	p.Print(location(e.Path, 0) + e.message())
	e.frame.Format(p)
	return nil
}

// Format is a function
func (e *DuplicateKeyError) Format(f fmt.State, c rune) {
	xerrors.FormatError(e, f, c)
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprint(e)
}

// As lets callers that only care about schema violations treat a duplicate
// key as a ParseError.
func (e *DuplicateKeyError) As(target any) bool {
	pe, ok := target.(**ParseError)
	if !ok {
		return false
	}
	*pe = &ParseError{Path: e.Path, Msg: e.message(), frame: e.frame}
	return true
}

func location(path string, line int) string {
	switch {
	case path == "":
		return ""
	case line > 0:
		return fmt.Sprintf("%s:%d: ", path, line)
	default:
		return path + ": "
	}
}

// withPath stamps the file name onto errors raised before it was known.
func withPath(err error, path string) error {
	if path == "" {
		return err
	}
	switch e := err.(type) {
	case *ParseError:
		if e.Path == "" {
			e.Path = path
		}
	case *EncodingError:
		if e.Path == "" {
			e.Path = path
		}
	case *DuplicateKeyError:
		if e.Path == "" {
			e.Path = path
		}
	}
	return err
}
