package justext

import "strings"

// Classification is the class assigned to a block. After revision only
// ClassBad and ClassGood remain.
type Classification int

// Classification values.
const (
	// ClassBad marks boilerplate.
	ClassBad Classification = iota
	// ClassGood marks main content.
	ClassGood
	// ClassNearGood is somewhere in between ClassShort and ClassGood.
	ClassNearGood
	// ClassShort is too short to make a reliable decision.
	ClassShort
)

var classificationNames = [...]string{
	ClassBad:      "bad",
	ClassGood:     "good",
	ClassNearGood: "near-good",
	ClassShort:    "short",
}

// String returns the lower-case name of the classification.
func (c Classification) String() string {
	if c < 0 || int(c) >= len(classificationNames) {
		return "unknown"
	}
	return classificationNames[c]
}

// MarshalText encodes the classification by name.
func (c Classification) MarshalText() ([]byte, error) {
	if c < 0 || int(c) >= len(classificationNames) {
		return nil, Errorf(EINVALID, "unknown classification %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a classification name.
func (c *Classification) UnmarshalText(text []byte) error {
	v, err := ParseClassification(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseClassification returns the classification with the given name.
// Underscores are accepted in place of hyphens.
func ParseClassification(s string) (Classification, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for i, n := range classificationNames {
		if n == name {
			return Classification(i), nil
		}
	}
	return ClassBad, Errorf(EINVALID, "unknown classification %q", s)
}

// classSet is a set of classifications packed into a bitmask.
type classSet uint8

func setOf(cs ...Classification) classSet {
	var s classSet
	for _, c := range cs {
		s = s.with(c)
	}
	return s
}

func (s classSet) with(c Classification) classSet {
	return s | 1<<uint(c)
}

func (s classSet) without(c Classification) classSet {
	return s &^ (1 << uint(c))
}

func (s classSet) has(c Classification) bool {
	return s&(1<<uint(c)) != 0
}
