// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the pipeline to run:
//
//   - CorpusSource: Enumerates labelled review categories and texts
//   - StopwordSource: Supplies the stopword set
//   - Lemmatizer: Reduces tokens to their base form
//   - TextNormaliser: Turns raw review text into canonical tokens
//   - TokenProcessor: One filtering or rewriting step of normalisation
//   - Vectorizer: Learns a vocabulary and produces count vectors
//   - Classifier: Trains and applies the linear model
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the pipeline degrades gracefully:
//
//   - RunStore: Run history persistence. Without it, reports are not recorded.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
