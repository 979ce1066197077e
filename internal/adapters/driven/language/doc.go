// Package language provides the English language resources the normaliser
// depends on: a stopword set and lemmatizers.
//
// Resources:
//   - English: The standard English stopword list
//   - DictionaryLemmatizer: Looks tokens up in an embedded English lemma dictionary
//   - IdentityLemmatizer: Returns tokens unchanged
//
// All resources are immutable after construction and safe for concurrent use.
package language
