package plasmid

import (
	"errors"
	"fmt"
)

// fatal error kinds. each halts the pipeline before any further stage
// runs and no output file is written
var (
	// ErrEmptySequence is for a genomic sequence with no bases after normalization
	ErrEmptySequence = errors.New("empty nucleotide sequence")

	// ErrInvalidAlphabet is for characters outside A, C, G, T
	ErrInvalidAlphabet = errors.New("invalid nucleotide alphabet")

	// ErrEmptyDesign is for a design file without a single usable entry
	ErrEmptyDesign = errors.New("no entries in design file")

	// ErrEnzymeNotFound distinguishes a markers database lookup miss
	// from an enzyme with zero sites in the sequence
	ErrEnzymeNotFound = errors.New("enzyme not in markers database")
)

// WarningKind tags the recoverable conditions gathered during a run
type WarningKind int

const (
	// MarkerLookupMiss is for a design marker absent from the markers
	// database and the fallback table
	MarkerLookupMiss WarningKind = iota

	// EnzymeLookupMiss is for a design enzyme (or deletion-pass enzyme)
	// whose recognition sequence could not be resolved
	EnzymeLookupMiss

	// MutationVerificationFailed is for a restriction site that still
	// matched after its one mutation attempt
	MutationVerificationFailed

	// ReplicationEntrySkipped is for a design entry naming a replication
	// element; the ORI found in the genomic DNA is used instead
	ReplicationEntrySkipped
)

// Warning is a recoverable, skippable condition. Warnings are values
// returned alongside results so callers can inspect them; nothing in the
// pipeline logs from leaf code.
type Warning struct {
	Kind   WarningKind
	Name   string
	Detail string
}

func (w Warning) String() string {
	var msg string
	switch w.Kind {
	case MarkerLookupMiss:
		msg = fmt.Sprintf("marker %s not found, skipping", w.Name)
	case EnzymeLookupMiss:
		msg = fmt.Sprintf("restriction site for %s not found, skipping", w.Name)
	case MutationVerificationFailed:
		msg = fmt.Sprintf("could not verify deletion of a %s site", w.Name)
	case ReplicationEntrySkipped:
		msg = fmt.Sprintf("skipping %s, using the ORI from genomic DNA", w.Name)
	}

	if w.Detail != "" {
		return msg + ": " + w.Detail
	}
	return msg
}
