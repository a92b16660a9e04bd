package linenoise

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Charset is the text encoding that history entries, completion candidates
// and hints must be representable in.
//
// Strings handled by the editor are always UTF-8 in memory. A Charset other
// than UTF-8 additionally restricts them to its repertoire and is used to
// transcode history files on Save and Load.
type Charset struct {
	name string
	enc  encoding.Encoding
}

// UTF8 is the default charset.
var UTF8 = &Charset{name: "UTF-8", enc: unicode.UTF8}

// NewCharset looks up a charset by its IANA name or alias (e.g. "ISO-8859-1",
// "latin1", "Shift_JIS").
func NewCharset(name string) (*Charset, error) {
	if isUTF8Name(name) {
		return UTF8, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: unsupported charset %q", ErrInvalidArgument, name)
	}
	canonical, err := ianaindex.MIME.Name(enc)
	if err != nil {
		canonical = name
	}
	return &Charset{name: canonical, enc: enc}, nil
}

// LocaleCharset returns the charset named by the process locale.
//
// The codeset is taken from the first non-empty of LC_ALL, LC_CTYPE and LANG
// ("ja_JP.EUC-JP@x" -> "EUC-JP"). The C/POSIX locale, a missing codeset or an
// unknown one all resolve to UTF-8.
func LocaleCharset() *Charset {
	locale := ""
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := os.Getenv(key); v != "" {
			locale = v
			break
		}
	}
	codeset := localeCodeset(locale)
	if codeset == "" {
		return UTF8
	}
	cs, err := NewCharset(codeset)
	if err != nil {
		return UTF8
	}
	return cs
}

func localeCodeset(locale string) string {
	if i := strings.IndexByte(locale, '@'); i >= 0 {
		locale = locale[:i]
	}
	i := strings.IndexByte(locale, '.')
	if i < 0 {
		return ""
	}
	return locale[i+1:]
}

func isUTF8Name(name string) bool {
	n := strings.ReplaceAll(strings.ToLower(name), "-", "")
	return n == "utf8"
}

// Name returns the canonical name of the charset
func (c *Charset) Name() string {
	return c.name
}

// Valid reports whether s is well-formed and representable in c.
func (c *Charset) Valid(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	if c == UTF8 {
		return true
	}
	_, err := c.enc.NewEncoder().String(s)
	return err == nil
}

// validate returns ErrEncoding when s is not valid in c
func (c *Charset) validate(s string) error {
	if c.Valid(s) {
		return nil
	}
	return fmt.Errorf("%w: %q is not valid %s text", ErrEncoding, s, c.name)
}

// newReader decodes r from c into UTF-8.
func (c *Charset) newReader(r io.Reader) io.Reader {
	if c == UTF8 {
		return r
	}
	return transform.NewReader(r, c.enc.NewDecoder())
}

// newWriter encodes UTF-8 written to it into c. The returned writer must be
// closed to flush pending output.
func (c *Charset) newWriter(w io.Writer) io.WriteCloser {
	return transform.NewWriter(w, c.enc.NewEncoder())
}
