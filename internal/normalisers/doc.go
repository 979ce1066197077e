// Package normalisers holds the text normalisers that turn raw document
// text into canonical token sequences. Each normaliser owns its
// tokenisation and delegates filtering to a postprocessors pipeline.
package normalisers
