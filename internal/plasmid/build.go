package plasmid

import (
	"strings"

	"github.com/agennttrex/BBL434-Universal-Plasmid-Maker/config"
)

// Segment is one named piece of the assembled plasmid
type Segment struct {
	// the segment's name, ex "repA" or the design entry's label
	Name string

	// the segment's sequence
	Seq string

	// the component group the segment came from: "ori", "replication",
	// "mcs" or "marker"
	Origin string
}

// Plasmid is an ordered concatenation of named segments. Segments are
// joined with the configured spacer; order is fixed: ORI, replication
// elements, MCS sites, markers.
type Plasmid struct {
	Segments []Segment
}

// Sequence joins the segments with spacer between each pair. Total
// length is the segment lengths plus one spacer per internal gap.
func (p *Plasmid) Sequence(spacer string) string {
	seqs := make([]string, len(p.Segments))
	for i, segment := range p.Segments {
		seqs[i] = segment.Seq
	}

	return strings.Join(seqs, spacer)
}

// Build assembles the plasmid from the ORI region, the genomic sequence
// it was found in, and the design entries. Missing markers and enzymes
// are skipped with warnings, never aborting the build: the result always
// carries at least the ORI and replication segments.
func Build(
	ori OriRegion,
	genome string,
	entries []DesignEntry,
	db *MarkerDB,
	c *config.Config,
) (Plasmid, []Warning) {
	var warnings []Warning

	plasmid := Plasmid{
		Segments: []Segment{
			{Name: "ori", Seq: genome[ori.Start:ori.End], Origin: "ori"},
		},
	}

	// minimal replication-maintenance genes bundled with the app
	for _, segment := range c.Build.Replication {
		plasmid.Segments = append(plasmid.Segments, Segment{
			Name:   segment.Name,
			Seq:    strings.ToUpper(segment.Seq),
			Origin: "replication",
		})
	}

	// MCS sites first, in the design file's listed order
	for _, entry := range entries {
		if entry.Kind != EntryMCS {
			continue
		}

		recog, ok := db.Recognition(entry.Target, c.Fallback.Sites)
		if !ok {
			warnings = append(warnings, Warning{Kind: EnzymeLookupMiss, Name: entry.Target})
			continue
		}
		if _, err := normalizeSeq(recog); err != nil {
			// a degenerate recognition sequence isn't concrete DNA
			warnings = append(warnings, Warning{
				Kind:   EnzymeLookupMiss,
				Name:   entry.Target,
				Detail: "ambiguous recognition sequence " + recog,
			})
			continue
		}

		plasmid.Segments = append(plasmid.Segments, Segment{
			Name:   entry.Label,
			Seq:    recog,
			Origin: "mcs",
		})
	}

	// then markers, same order
	for _, entry := range entries {
		switch entry.Kind {
		case EntryMCS:
			// already appended above
		case EntryMarker:
			seq, ok := db.MarkerSeq(entry.Target, c.Fallback.Markers)
			if !ok {
				warnings = append(warnings, Warning{Kind: MarkerLookupMiss, Name: entry.Target})
				continue
			}

			plasmid.Segments = append(plasmid.Segments, Segment{
				Name:   entry.Label,
				Seq:    seq,
				Origin: "marker",
			})
		case EntryReplication:
			warnings = append(warnings, Warning{Kind: ReplicationEntrySkipped, Name: entry.Target})
		case EntryUnknown:
			warnings = append(warnings, Warning{Kind: MarkerLookupMiss, Name: entry.Target})
		}
	}

	return plasmid, warnings
}
