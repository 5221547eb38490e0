package utf8util

import "errors"

// ErrEncoding is returned when input bytes are not valid UTF-8 (in
// contexts that require strict validation) or, from LocaleToUTF8, when the
// source bytes can't be converted from the detected locale charset.
var ErrEncoding = errors.New("utf8util: invalid or unconvertible byte sequence")
