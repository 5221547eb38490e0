// Package utf8util provides low-level UTF-8 helpers used by line-oriented
// terminal and log processing: finding character boundaries, validating a
// byte run strictly (including overlong, surrogate, and non-character
// rejection), converting locale-encoded text to UTF-8, and collapsing
// backspace bytes without ever splitting a multi-byte rune.
package utf8util
