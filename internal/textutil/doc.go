// Package textutil turns raw document text into the token and tuple sequences
// the overlap pipeline compares.
//
// The primary use cases are:
//   - Sanitizing text down to lowercase ASCII letters and spaces
//   - Splitting sanitized text into tokens
//   - Sliding a fixed-width window over tokens to build word tuples
//
// Sanitization deletes digits and punctuation without inserting a separator,
// so "end.The" becomes the single token "endthe". Any whitespace rune counts
// as a separator.
package textutil
