package plasmid

import (
	"fmt"
	"strings"

	"github.com/agennttrex/BBL434-Universal-Plasmid-Maker/config"
	"github.com/spf13/cobra"
)

// runState tracks the orchestrator through the pipeline. Each transition
// calls exactly one component; a fatal condition moves to stateFailed and
// nothing further runs.
type runState int

const (
	stateInit runState = iota
	stateLoaded
	stateOriIdentified
	stateBuilt
	stateCleaned
	stateWritten
	stateFailed
)

func (s runState) String() string {
	switch s {
	case stateInit:
		return "loading inputs"
	case stateLoaded:
		return "loaded"
	case stateOriIdentified:
		return "ori-identified"
	case stateBuilt:
		return "built"
	case stateCleaned:
		return "cleaned"
	case stateWritten:
		return "written"
	}
	return "failed"
}

// Result summarizes a finished run
type Result struct {
	// the input record's header
	Header string

	// the identified origin-of-replication region
	Ori OriRegion

	// the assembled plasmid, segment by segment
	Plasmid Plasmid

	// the final sequence, after the restriction site deletion pass
	Seq string

	// every recoverable condition hit along the way
	Warnings []Warning
}

// pipeline is the orchestrator's state between stages
type pipeline struct {
	state runState
}

func (p *pipeline) fail(err error) error {
	at := p.state
	p.state = stateFailed
	return fmt.Errorf("halted at %s: %w", at, err)
}

// Run executes the full pipeline: read inputs, find the ORI, build the
// plasmid, delete undesigned restriction sites, write the output.
// Warnings are gathered on the Result; any error is fatal and means no
// output file was written.
func Run(inputPath, designPath, outputPath, markersPath string, c *config.Config) (*Result, error) {
	p := &pipeline{}

	// Loaded: read and validate all three inputs
	header, genome, err := readFasta(inputPath)
	if err != nil {
		return nil, p.fail(err)
	}

	db, err := NewMarkerDB(markersPath)
	if err != nil {
		return nil, p.fail(err)
	}

	entries, err := readDesign(designPath, db, c)
	if err != nil {
		return nil, p.fail(err)
	}
	p.state = stateLoaded
	stderr.Printf("read %d bp of genomic DNA and %d design entries\n", len(genome), len(entries))

	// OriIdentified
	ori := FindOri(genome, c)
	p.state = stateOriIdentified
	stderr.Printf("ORI found at %d-%d via %s\n", ori.Start, ori.End, ori.Method)

	// Built
	plasmid, warnings := Build(ori, genome, entries, db, c)
	p.state = stateBuilt

	// Cleaned: delete every database enzyme's sites except those the
	// design explicitly asks for in the MCS
	kept := make(map[string]bool)
	for _, entry := range entries {
		if entry.Kind == EntryMCS {
			kept[strings.ToUpper(entry.Target)] = true
		}
	}

	var remove []string
	for _, enzyme := range db.Enzymes() {
		if !kept[strings.ToUpper(enzyme)] {
			remove = append(remove, enzyme)
		}
	}

	seq := plasmid.Sequence(c.Build.Spacer)
	seq, deleteWarnings := DeleteSites(seq, remove, db, c)
	warnings = append(warnings, deleteWarnings...)
	p.state = stateCleaned
	stderr.Printf("final plasmid length: %d bp\n", len(seq))

	// Written
	outHeader := fmt.Sprintf("plasmid constructed from %s (ori %d-%d via %s)", header, ori.Start, ori.End, ori.Method)
	if err := writeFasta(outputPath, outHeader, seq); err != nil {
		return nil, p.fail(err)
	}
	p.state = stateWritten

	return &Result{
		Header:   header,
		Ori:      ori,
		Plasmid:  plasmid,
		Seq:      seq,
		Warnings: warnings,
	}, nil
}

// RunCmd wraps Run for the cobra run command: args are the input FASTA,
// the design file, the output FASTA and optionally a markers database.
func RunCmd(cmd *cobra.Command, args []string) {
	c := config.New()

	markersPath := c.Markers
	if len(args) > 3 {
		markersPath = args[3]
	}

	result, err := Run(args[0], args[1], args[2], markersPath, c)
	if err != nil {
		stderr.Fatalf("failed to build a plasmid from %s: %v", args[0], err)
	}

	for _, warning := range result.Warnings {
		stderr.Printf("warning: %s\n", warning)
	}
	stderr.Printf("wrote %d bp to %s\n", len(result.Seq), args[2])
}
