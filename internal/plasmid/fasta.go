package plasmid

import (
	"fmt"
	"log"
	"os"

	"github.com/bebop/poly/io/fasta"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// readFasta reads the first record of a FASTA file and returns its header
// and its normalized sequence.
func readFasta(path string) (header, seq string, err error) {
	records, err := fasta.Read(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(records) < 1 {
		return "", "", fmt.Errorf("failed to parse a record from %s: %w", path, ErrEmptySequence)
	}
	if len(records) > 1 {
		stderr.Printf(
			"warning: %d records were in %s. Only using the sequence of the first: %s\n",
			len(records),
			path,
			records[0].Name,
		)
	}

	seq, err = normalizeSeq(records[0].Sequence)
	if err != nil {
		return "", "", fmt.Errorf("failed to normalize the sequence in %s: %w", path, err)
	}

	return records[0].Name, seq, nil
}

// writeFasta writes a single record to the filesystem. Sequence lines are
// wrapped at a fixed 80 characters and the file ends with a newline, so
// readFasta sees the full record back.
func writeFasta(path, header, seq string) error {
	record := fasta.Fasta{
		Name:     header,
		Sequence: seq,
	}

	contents, err := fasta.Build([]fasta.Fasta{record})
	if err != nil {
		return fmt.Errorf("failed to build the output record for %s: %w", path, err)
	}
	if len(contents) > 0 && contents[len(contents)-1] != '\n' {
		contents = append(contents, '\n')
	}

	if err := os.WriteFile(path, contents, 0644); err != nil {
		return fmt.Errorf("failed to write the output to %s: %w", path, err)
	}

	return nil
}
