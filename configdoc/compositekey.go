package configdoc

import "strings"

// Exclusion values pack a two-level hierarchy into one flat identifier:
// "family" excludes a whole family, "family|subfamily" excludes one item.
// Family and sub-family ids must not themselves contain the delimiter; this
// is a precondition on upstream id generation, not validated here.

// PackFamilyKey builds the composite identifier for a family and optional
// sub-family. An empty subFamilyID yields the family id alone.
func PackFamilyKey(familyID, subFamilyID string) string {
	if subFamilyID == "" {
		return familyID
	}
	return familyID + "|" + subFamilyID
}

// UnpackFamilyKey splits a composite identifier on its first delimiter.
// A key without a delimiter is a family-level identifier.
func UnpackFamilyKey(key string) (familyID, subFamilyID string) {
	if i := strings.IndexByte(key, '|'); i >= 0 {
		return key[:i], key[i+1:]
	}
	return key, ""
}
