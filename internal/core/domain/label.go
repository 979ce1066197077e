package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Label is the sentiment class of a review.
// It is a closed two-variant tag: only LabelNegative and LabelPositive exist.
type Label int

const (
	// LabelNegative marks a negative review.
	LabelNegative Label = iota

	// LabelPositive marks a positive review.
	LabelPositive
)

// ParseLabel maps a corpus category name to a Label.
// Accepts the short NLTK category names ("pos", "neg") and the long forms,
// case-insensitively.
func ParseLabel(s string) (Label, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pos", "positive":
		return LabelPositive, nil
	case "neg", "negative":
		return LabelNegative, nil
	default:
		return LabelNegative, fmt.Errorf("%w: %q", ErrUnknownLabel, s)
	}
}

// IsValid returns true if the label is one of the two known variants.
func (l Label) IsValid() bool {
	return l == LabelNegative || l == LabelPositive
}

// String returns the string representation.
func (l Label) String() string {
	switch l {
	case LabelNegative:
		return "negative"
	case LabelPositive:
		return "positive"
	default:
		return fmt.Sprintf("Label(%d)", int(l))
	}
}

// Sign returns +1 for positive and -1 for negative, the target encoding
// used by the logistic loss.
func (l Label) Sign() float64 {
	if l == LabelPositive {
		return 1
	}
	return -1
}

// MarshalJSON encodes the label as a JSON string.
func (l Label) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a JSON string into a Label.
func (l *Label) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseLabel(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// AllLabels returns both labels in index order.
func AllLabels() []Label {
	return []Label{LabelNegative, LabelPositive}
}
