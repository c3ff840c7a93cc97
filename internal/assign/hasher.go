package assign

// Variations is the fixed set of experiment arms, ordered so that
// bucket index 0 maps to "A", 1 to "B", 2 to "C", 3 to "D".
var Variations = []string{"A", "B", "C", "D"}

// keySeparator joins visitor and project identifiers into a hash key.
// Both values are opaque generated tokens, so the separator appearing
// inside one of them is an accepted (and unlikely) collision source.
const keySeparator = ":"

// Hash implements the djb2 XOR variant: h = (h*33) ^ c per byte,
// starting from 5381. The uint32 wraparound on each multiply is part
// of the algorithm's distribution and must not be widened.
//
// Iterates bytes, while the generated client script iterates UTF-16
// units via charCodeAt. The two only agree on ASCII input; keys are
// built from validated project ids and generated visitor tokens, both
// ASCII, so the cross-runtime identity holds.
func Hash(s string) uint32 {
	var h uint32 = 5381
	for i := 0; i < len(s); i++ {
		h = (h * 33) ^ uint32(s[i])
	}
	return h
}

// Bucket maps a key to one of n buckets.
func Bucket(key string, n int) int {
	return int(Hash(key) % uint32(n))
}

// Assign returns the variation symbol for a visitor/project pair.
// Deterministic: the same pair always yields the same symbol, in this
// process and in the generated client script, which re-implements the
// same hash.
func Assign(visitorID, projectID string) string {
	return Variations[Bucket(visitorID+keySeparator+projectID, len(Variations))]
}

// IsValid reports whether label is one of the fixed variation symbols.
func IsValid(label string) bool {
	for _, v := range Variations {
		if v == label {
			return true
		}
	}
	return false
}
