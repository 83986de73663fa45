package png

// TagFlags holds the four independent boolean flags a chunk name encodes in
// the letter casing of its four bytes. For every position, uppercase means
// the flag is clear and lowercase means it is set.
//
// The reserved flag must stay clear under the current format revision;
// decoding accepts a set reserved flag but logs it as suspect.
type TagFlags struct {
	Ancillary  bool // position 0: ancillary (set) vs critical (clear)
	Private    bool // position 1: private (set) vs public (clear)
	Reserved   bool // position 2: reserved, must stay clear
	SafeToCopy bool // position 3: safe to copy (set) vs unsafe (clear)
}

// FlagsOf reads the flags out of a chunk name. Names that are not 4 bytes
// yield the zero value.
func FlagsOf(name string) TagFlags {
	if len(name) != 4 {
		return TagFlags{}
	}
	return TagFlags{
		Ancillary:  isLower(name[0]),
		Private:    isLower(name[1]),
		Reserved:   isLower(name[2]),
		SafeToCopy: isLower(name[3]),
	}
}

// ApplyTo returns a new name with the letter casing set from the flags. The
// letters themselves are preserved, so applying a single changed flag leaves
// the other three positions untouched. Names that are not 4 bytes are
// returned unchanged.
func (f TagFlags) ApplyTo(name string) string {
	if len(name) != 4 {
		return name
	}
	b := []byte(name)
	b[0] = setCase(b[0], f.Ancillary)
	b[1] = setCase(b[1], f.Private)
	b[2] = setCase(b[2], f.Reserved)
	b[3] = setCase(b[3], f.SafeToCopy)
	return string(b)
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// setCase forces a letter lowercase when the flag is set, uppercase when
// clear. Non-letters pass through so malformed names survive a round trip.
func setCase(c byte, set bool) byte {
	switch {
	case set && c >= 'A' && c <= 'Z':
		return c + ('a' - 'A')
	case !set && c >= 'a' && c <= 'z':
		return c - ('a' - 'A')
	default:
		return c
	}
}
