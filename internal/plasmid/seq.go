package plasmid

import (
	"fmt"
	"strings"
)

// normalizeSeq uppercases a nucleotide sequence and validates it against
// the strict ACGT alphabet. Characters outside the alphabet are an error,
// never silently dropped.
func normalizeSeq(seq string) (string, error) {
	seq = strings.ToUpper(strings.TrimSpace(seq))
	if seq == "" {
		return "", ErrEmptySequence
	}

	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A', 'C', 'G', 'T':
		default:
			return "", fmt.Errorf("%w: %q at position %d", ErrInvalidAlphabet, seq[i], i)
		}
	}

	return seq, nil
}
