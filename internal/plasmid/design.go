package plasmid

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/agennttrex/BBL434-Universal-Plasmid-Maker/config"
)

// EntryKind is the resolved role of a design entry. Classification is by
// lookup against the markers database (and the fallback tables), not by
// the entry's position in the file, and is resolved once at parse time.
type EntryKind int

const (
	// EntryMCS entries contribute a cloning site to the MCS block
	EntryMCS EntryKind = iota

	// EntryMarker entries contribute a selectable marker gene
	EntryMarker

	// EntryReplication entries name a replication element; skipped in
	// favor of the ORI found in the genomic DNA
	EntryReplication

	// EntryUnknown entries resolve to nothing; skipped with a warning
	EntryUnknown
)

// DesignEntry is one line of the design file with its role resolved
type DesignEntry struct {
	// the user's label for the entry, ex "Multiple_Cloning_Site1"
	Label string

	// the enzyme or marker name the label maps to, ex "EcoRI"
	Target string

	// the entry's resolved role
	Kind EntryKind
}

// readDesign parses a design file into its resolved entries. The format
// is one "label, target" pair per line; blank lines and lines starting
// with # are skipped.
func readDesign(path string, db *MarkerDB, c *config.Config) ([]DesignEntry, error) {
	designFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open design file %s: %w", path, err)
	}
	defer designFile.Close()

	var entries []DesignEntry

	scanner := bufio.NewScanner(designFile)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, ",", 2)
		if len(parts) < 2 {
			continue
		}

		label := strings.TrimSpace(parts[0])
		target := strings.TrimSpace(parts[1])

		entries = append(entries, DesignEntry{
			Label:  label,
			Target: target,
			Kind:   resolveKind(target, db, c),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read design file %s: %w", path, err)
	}

	if len(entries) < 1 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDesign, path)
	}

	return entries, nil
}

// resolveKind classifies a design target against the markers database,
// then against the built-in fallback tables.
func resolveKind(target string, db *MarkerDB, c *config.Config) EntryKind {
	if record, ok := db.Lookup(target); ok {
		switch record.Kind {
		case RestrictionEnzyme:
			return EntryMCS
		case SelectableMarker:
			return EntryMarker
		case ReplicationElement:
			return EntryReplication
		}
	}

	if _, ok := db.Recognition(target, c.Fallback.Sites); ok {
		return EntryMCS
	}
	if _, ok := db.MarkerSeq(target, c.Fallback.Markers); ok {
		return EntryMarker
	}

	return EntryUnknown
}
