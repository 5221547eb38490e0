package utf8util

import (
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// localeCharset inspects the process locale environment variables, in the
// same precedence glibc uses (LC_ALL, then LC_CTYPE, then LANG), for a
// "language.charset" or "language.charset@modifier" value and returns the
// charset portion. An empty, C, or POSIX locale, or one with no charset
// suffix, is reported as UTF-8: nl_langinfo(CODESET) defaults to ASCII on
// such locales on real systems, and ASCII is a strict subset of UTF-8.
func localeCharset() (charset string, isUTF8 bool) {
	locale := firstNonEmpty(os.Getenv("LC_ALL"), os.Getenv("LC_CTYPE"), os.Getenv("LANG"))
	if locale == "" || locale == "C" || locale == "POSIX" {
		return "UTF-8", true
	}
	if at := strings.IndexByte(locale, '@'); at >= 0 {
		locale = locale[:at]
	}
	dot := strings.IndexByte(locale, '.')
	if dot < 0 {
		return "UTF-8", true
	}
	charset = locale[dot+1:]
	return charset, strings.EqualFold(charset, "UTF-8") || strings.EqualFold(charset, "UTF8")
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// LocaleToUTF8 converts b, assumed to be encoded in the process's current
// locale charset, to UTF-8. If the locale is already UTF-8, b is validated
// strictly and returned as a copy. bytesRead reports how many leading
// bytes of b were consumed; a trailing incomplete multi-byte sequence is
// left unread and reported as success with fewer bytes read, rather than
// as an error: a truncated tail just means the rest of the character is
// still in flight and will arrive with the next read.
func LocaleToUTF8(b []byte) (out []byte, bytesRead int, err error) {
	charset, isUTF8 := localeCharset()
	if isUTF8 {
		if ok, end := Validate(b, len(b)); !ok {
			if end < len(b) && b[end] != 0 && !utf8.FullRune(b[end:]) {
				// only an incomplete final character: keep what precedes it
				return append([]byte(nil), b[:end]...), end, nil
			}
			return nil, end, ErrEncoding
		}
		return append([]byte(nil), b...), len(b), nil
	}

	enc, lookupErr := ianaindex.IANA.Encoding(charset)
	if lookupErr != nil || enc == nil {
		return nil, 0, ErrEncoding
	}
	return convertWithEncoding(enc, b)
}

// convertWithEncoding decodes b from enc to UTF-8. An incomplete trailing
// sequence (transform.ErrShortSrc, even with all of b presented at once)
// is treated as success with a shorter bytesRead, not an error; any other
// decode failure is reported as ErrEncoding.
func convertWithEncoding(enc encoding.Encoding, b []byte) (out []byte, bytesRead int, err error) {
	result, n, terr := transform.Bytes(enc.NewDecoder(), b)
	switch terr {
	case nil:
		return result, len(b), nil
	case transform.ErrShortSrc:
		return result, n, nil
	default:
		return nil, n, ErrEncoding
	}
}
