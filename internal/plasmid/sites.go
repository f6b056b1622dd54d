package plasmid

import (
	"fmt"

	"github.com/agennttrex/BBL434-Universal-Plasmid-Maker/config"
)

// iupacMask holds a 4-bit mask per IUPAC nucleotide code. A pattern
// position matches a base when their masks share a bit.
var iupacMask = map[byte]uint8{
	'A': 1 << 0,
	'C': 1 << 1,
	'G': 1 << 2,
	'T': 1 << 3,
	'R': 1<<0 | 1<<2,
	'Y': 1<<1 | 1<<3,
	'S': 1<<1 | 1<<2,
	'W': 1<<0 | 1<<3,
	'K': 1<<2 | 1<<3,
	'M': 1<<0 | 1<<1,
	'B': 1<<1 | 1<<2 | 1<<3,
	'D': 1<<0 | 1<<2 | 1<<3,
	'H': 1<<0 | 1<<1 | 1<<3,
	'V': 1<<0 | 1<<1 | 1<<2,
	'N': 1<<0 | 1<<1 | 1<<2 | 1<<3,
}

// compilePattern converts an IUPAC recognition sequence to per-position
// bit masks for matching.
func compilePattern(recog string) ([]uint8, error) {
	if recog == "" {
		return nil, fmt.Errorf("empty recognition sequence")
	}

	masks := make([]uint8, len(recog))
	for i := 0; i < len(recog); i++ {
		c := recog[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		m, ok := iupacMask[c]
		if !ok {
			return nil, fmt.Errorf("invalid IUPAC base %q in recognition sequence %s", c, recog)
		}
		masks[i] = m
	}

	return masks, nil
}

// matchAt tests whether the pattern matches seq at pos.
func matchAt(seq []byte, masks []uint8, pos int) bool {
	if pos < 0 || pos+len(masks) > len(seq) {
		return false
	}

	for i, m := range masks {
		if m&iupacMask[seq[pos+i]] == 0 {
			return false
		}
	}

	return true
}

// scan returns every match start of the pattern in seq, ascending and
// without duplicates. Overlapping matches are all reported.
func scan(seq []byte, masks []uint8) (positions []int) {
	for i := 0; i+len(masks) <= len(seq); i++ {
		if matchAt(seq, masks, i) {
			positions = append(positions, i)
		}
	}

	return positions
}

// FindSites returns the ascending start positions of an enzyme's
// recognition sequence in seq. A markers database lookup miss is an
// ErrEnzymeNotFound error, distinct from an enzyme with zero sites.
func FindSites(seq, enzyme string, db *MarkerDB, c *config.Config) ([]int, error) {
	recog, ok := db.Recognition(enzyme, c.Fallback.Sites)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEnzymeNotFound, enzyme)
	}

	masks, err := compilePattern(recog)
	if err != nil {
		return nil, err
	}

	return scan([]byte(seq), masks), nil
}

// DeleteSites destroys every recognition site of the listed enzymes by
// mutating exactly the last base of each matched window to a base the
// pattern doesn't admit there. Sequence length and every base outside
// the matched windows are preserved. One mutation attempt per occurrence:
// a window that still matches afterwards (degenerate final position) is
// reported as a warning, never retried.
func DeleteSites(seq string, enzymes []string, db *MarkerDB, c *config.Config) (string, []Warning) {
	buf := []byte(seq)
	var warnings []Warning

	for _, enzyme := range enzymes {
		recog, ok := db.Recognition(enzyme, c.Fallback.Sites)
		if !ok {
			warnings = append(warnings, Warning{Kind: EnzymeLookupMiss, Name: enzyme})
			continue
		}

		masks, err := compilePattern(recog)
		if err != nil {
			warnings = append(warnings, Warning{Kind: EnzymeLookupMiss, Name: enzyme, Detail: err.Error()})
			continue
		}

		for _, pos := range scan(buf, masks) {
			// an earlier mutation in an overlapping window may have
			// already destroyed this occurrence
			if !matchAt(buf, masks, pos) {
				continue
			}

			last := pos + len(masks) - 1
			buf[last] = mutate(buf[last], masks[len(masks)-1])

			if matchAt(buf, masks, pos) {
				warnings = append(warnings, Warning{
					Kind:   MutationVerificationFailed,
					Name:   enzyme,
					Detail: fmt.Sprintf("site at position %d", pos),
				})
			}
		}
	}

	return string(buf), warnings
}

// mutate picks a replacement for base that the pattern mask doesn't
// admit. When the mask admits every base (ex 'N') no safe replacement
// exists and a plain substitution is made; the caller's re-scan catches it.
func mutate(base byte, mask uint8) byte {
	for _, candidate := range []byte{'A', 'C', 'G', 'T'} {
		if candidate != base && mask&iupacMask[candidate] == 0 {
			return candidate
		}
	}

	// fully degenerate position, substitution can't help
	switch base {
	case 'A':
		return 'G'
	case 'T':
		return 'C'
	case 'G':
		return 'A'
	default:
		return 'T'
	}
}
