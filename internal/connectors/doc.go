// Package connectors provides implementations of the CorpusSource interface
// for labelled review corpora. Each connector knows how to enumerate
// categories and documents from a specific location.
package connectors
