package plasmid

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/agennttrex/BBL434-Universal-Plasmid-Maker/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// MarkerKind classifies a markers database record
type MarkerKind int

const (
	// RestrictionEnzyme records hold a recognition sequence (IUPAC codes allowed)
	RestrictionEnzyme MarkerKind = iota

	// SelectableMarker records hold the marker gene's sequence
	SelectableMarker

	// ReplicationElement records describe origin/replication sequences
	ReplicationElement
)

func (k MarkerKind) String() string {
	switch k {
	case RestrictionEnzyme:
		return "enzyme"
	case SelectableMarker:
		return "marker"
	case ReplicationElement:
		return "ori"
	}
	return "unknown"
}

// MarkerRecord is a single markers database entry
type MarkerRecord struct {
	Name string
	Seq  string
	Kind MarkerKind
}

// MarkerDB is a read-only mapping from enzyme/marker names to their
// recognition or marker sequences. It's read once per run; callers must
// not mutate it while a build is in progress.
type MarkerDB struct {
	// records is a map between an entry's name and its record
	records map[string]MarkerRecord
}

// NewMarkerDB reads a tab separated markers database:
//
//	<name>	<kind>	<sequence>
//
// where kind is one of "enzyme", "marker" or "ori". The sequence
// column is optional for markers whose sequence comes from the
// fallback table. Blank lines and lines starting with # are skipped.
func NewMarkerDB(path string) (*MarkerDB, error) {
	markersFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open markers database %s: %w", path, err)
	}
	defer markersFile.Close()

	records := make(map[string]MarkerRecord)

	// https://golang.org/pkg/bufio/#example_Scanner_lines
	scanner := bufio.NewScanner(markersFile)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		// trailing columns may be empty (a marker without a bundled
		// sequence), so only strip the line ending itself
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// the sequence column may be missing entirely (a marker
		// without a bundled sequence)
		columns := strings.Split(line, "\t")
		if len(columns) < 2 {
			return nil, fmt.Errorf("failed to parse markers database %s: expected name, kind and sequence columns on line %d", path, lineNo)
		}

		name := strings.TrimSpace(columns[0])
		seq := ""
		if len(columns) > 2 {
			seq = strings.ToUpper(strings.TrimSpace(columns[2]))
		}

		var kind MarkerKind
		switch strings.ToLower(strings.TrimSpace(columns[1])) {
		case "enzyme":
			kind = RestrictionEnzyme
			if _, err := compilePattern(seq); err != nil {
				return nil, fmt.Errorf("failed to parse markers database %s, line %d: %w", path, lineNo, err)
			}
		case "marker":
			kind = SelectableMarker
			if seq != "" {
				if seq, err = normalizeSeq(seq); err != nil {
					return nil, fmt.Errorf("failed to parse markers database %s, line %d: %w", path, lineNo, err)
				}
			}
		case "ori":
			kind = ReplicationElement
		default:
			return nil, fmt.Errorf("failed to parse markers database %s: unknown kind %q on line %d", path, columns[1], lineNo)
		}

		records[name] = MarkerRecord{Name: name, Seq: seq, Kind: kind}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read markers database %s: %w", path, err)
	}

	return &MarkerDB{records: records}, nil
}

// Lookup finds a record by name, first exactly then case-insensitively.
func (db *MarkerDB) Lookup(name string) (MarkerRecord, bool) {
	if record, ok := db.records[name]; ok {
		return record, true
	}

	for key, record := range db.records {
		if strings.EqualFold(key, name) {
			return record, true
		}
	}

	return MarkerRecord{}, false
}

// Enzymes returns the sorted names of every restriction enzyme record.
func (db *MarkerDB) Enzymes() []string {
	var names []string
	for name, record := range db.records {
		if record.Kind == RestrictionEnzyme {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	return names
}

// Recognition resolves an enzyme name to its recognition sequence: first
// the database, then the built-in fallback table of common enzymes.
func (db *MarkerDB) Recognition(name string, fallback map[string]string) (string, bool) {
	if record, ok := db.Lookup(name); ok && record.Kind == RestrictionEnzyme && record.Seq != "" {
		return record.Seq, true
	}

	for key, seq := range fallback {
		if strings.EqualFold(key, name) {
			return strings.ToUpper(seq), true
		}
	}

	return "", false
}

// MarkerSeq resolves a marker name to its sequence: the database record
// first, then the built-in fallback table. Fallback matching tolerates
// underscores, dashes and partial names ("Amp" finds "AmpR").
func (db *MarkerDB) MarkerSeq(name string, fallback map[string]string) (string, bool) {
	if record, ok := db.Lookup(name); ok && record.Kind == SelectableMarker && record.Seq != "" {
		return record.Seq, true
	}

	squash := func(s string) string {
		s = strings.ToUpper(s)
		s = strings.ReplaceAll(s, "_", "")
		return strings.ReplaceAll(s, "-", "")
	}

	key := squash(name)
	for fbName, seq := range fallback {
		fbKey := squash(fbName)
		if fbKey == key || strings.Contains(fbKey, key) || strings.Contains(key, fbKey) {
			return strings.ToUpper(seq), true
		}
	}

	return "", false
}

// EnzymesCmd writes the markers database to stdout. Without args every
// entry is logged; with one, the exact entry or entries with a similar
// name are logged instead.
func EnzymesCmd(cmd *cobra.Command, args []string) {
	path := viper.GetString("markers")
	if path == "" {
		path = config.New().Markers
	}

	db, err := NewMarkerDB(path)
	if err != nil {
		stderr.Fatal(err)
	}

	// from https://golang.org/pkg/text/tabwriter/
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.TabIndent)

	if len(args) < 1 {
		names := make([]string, 0, len(db.records))
		for name := range db.records {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			record := db.records[name]
			fmt.Fprintf(w, "%s\t%s\t%s\n", record.Name, record.Kind, record.Seq)
		}
		w.Flush()
		return
	}

	name := args[0]

	// if there's an exact match, just log that one
	if record, ok := db.Lookup(name); ok {
		fmt.Fprintf(w, "%s\t%s\t%s\n", record.Name, record.Kind, record.Seq)
		w.Flush()
		return
	}

	containing := []string{}
	for dbName, record := range db.records {
		if strings.Contains(strings.ToUpper(dbName), strings.ToUpper(name)) {
			containing = append(containing, dbName+"\t"+record.Kind.String()+"\t"+record.Seq)
		}
	}
	sort.Strings(containing)

	if len(containing) > 0 {
		fmt.Fprintf(w, "%s\n", strings.Join(containing, "\n"))
	} else {
		fmt.Fprintf(w, "failed to find any entries for %s\n", name)
	}
	w.Flush()
}
