package scramble

// Set holds the three permutations one scramble applies. Rows and columns
// are indexed by target: Rows[r] is the source row copied into target row
// r, Cols[c] the source column for target column c. Digits is a 0-based
// permutation from which the digit mapping derives.
//
// Sets are plain values; storing the set used at load time is enough to
// reproduce the exact same scramble later.
type Set struct {
	Rows   [9]int
	Cols   [9]int
	Digits [9]int
}

// IdentitySet returns the set that leaves a board unchanged.
func IdentitySet() Set {
	var s Set
	for i := range 9 {
		s.Rows[i], s.Cols[i], s.Digits[i] = i, i, i
	}
	return s
}

// Valid reports whether all three permutations are bijections over 0-8.
func (s Set) Valid() bool {
	return isPermutation(s.Rows) && isPermutation(s.Cols) && isPermutation(s.Digits)
}

func isPermutation(p [9]int) bool {
	var seen [9]bool
	for _, v := range p {
		if v < 0 || v > 8 || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// Mapping maps digits through a scramble. The index is the original digit;
// index 0 maps to itself so empty cells stay empty.
type Mapping [10]int

// MappingFromPerm builds the 1-based digit mapping over a 0-based
// permutation: mapping[d] = perm[d-1] + 1.
func MappingFromPerm(perm [9]int) Mapping {
	var m Mapping
	for d := 1; d <= 9; d++ {
		m[d] = perm[d-1] + 1
	}
	return m
}

// Apply maps a digit through m. EmptyCell and out-of-range digits map to
// EmptyCell.
func (m Mapping) Apply(d int) int {
	if d < 1 || d > 9 {
		return 0
	}
	return m[d]
}

// Inverse returns the mapping that undoes m. Applying m and then its
// inverse is the identity over 1-9.
func (m Mapping) Inverse() Mapping {
	var inv Mapping
	for d := 1; d <= 9; d++ {
		inv[m[d]] = d
	}
	return inv
}
