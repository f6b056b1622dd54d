package plasmid

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agennttrex/BBL434-Universal-Plasmid-Maker/config"
)

const markersTab = "../../data/markers.tab"

// e2eGenome carries two non-overlapping EcoRI sites (at 120 and 246)
// inside the fallback ORI region [0, 300)
func e2eGenome() string {
	return strings.Repeat("CAGTGC", 20) +
		"GAATTC" +
		strings.Repeat("GCCTGA", 20) +
		"GAATTC" +
		strings.Repeat("TGCAGC", 60)
}

func Test_Run(t *testing.T) {
	c := config.New()

	dir := t.TempDir()
	input := filepath.Join(dir, "genome.fa")
	output := filepath.Join(dir, "plasmid.fa")

	if err := os.WriteFile(input, []byte(">pTest genomic\n"+e2eGenome()+"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	design := writeTemp(t, "design.txt", "Multiple_Cloning_Site1, BamHI\nAntibiotic_marker1, AmpR\n")

	result, err := Run(input, design, output, markersTab, c)
	if err != nil {
		t.Fatal(err)
	}

	db, err := NewMarkerDB(markersTab)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("no warnings for a clean build", func(t *testing.T) {
		if len(result.Warnings) > 0 {
			t.Errorf("Run() warnings = %v, want none", result.Warnings)
		}
	})

	t.Run("ori falls back to the sequence start", func(t *testing.T) {
		if result.Ori.Method != Fallback || result.Ori.Start != 0 || result.Ori.End != 300 {
			t.Errorf("Run() ori = %+v, want the fallback region [0, 300)", result.Ori)
		}
	})

	t.Run("undesigned EcoRI sites are gone", func(t *testing.T) {
		sites, err := FindSites(result.Seq, "EcoRI", db, c)
		if err != nil {
			t.Fatal(err)
		}
		if len(sites) != 0 {
			t.Errorf("FindSites(EcoRI) = %v, want none after the deletion pass", sites)
		}
	})

	t.Run("the designed BamHI site survives", func(t *testing.T) {
		sites, err := FindSites(result.Seq, "BamHI", db, c)
		if err != nil {
			t.Fatal(err)
		}
		if len(sites) < 1 {
			t.Errorf("FindSites(BamHI) = %v, the designed MCS site should survive", sites)
		}
	})

	t.Run("length is segments plus two spacer bases per gap", func(t *testing.T) {
		if len(result.Plasmid.Segments) != 4 {
			t.Fatalf("Run() segments = %d, want ori, replication, mcs, marker", len(result.Plasmid.Segments))
		}

		want := 0
		for _, segment := range result.Plasmid.Segments {
			want += len(segment.Seq)
		}
		want += (len(result.Plasmid.Segments) - 1) * len(c.Build.Spacer)

		if len(result.Seq) != want {
			t.Errorf("Run() sequence length = %d, want %d", len(result.Seq), want)
		}
	})

	t.Run("output file round-trips", func(t *testing.T) {
		header, seq, err := readFasta(output)
		if err != nil {
			t.Fatal(err)
		}
		if seq != result.Seq {
			t.Errorf("readFasta() sequence doesn't match the run result")
		}
		if !strings.Contains(header, "pTest") {
			t.Errorf("readFasta() header = %q, should name the source record", header)
		}
	})
}

func Test_Run_missingMarker(t *testing.T) {
	c := config.New()

	dir := t.TempDir()
	input := filepath.Join(dir, "genome.fa")
	output := filepath.Join(dir, "plasmid.fa")

	if err := os.WriteFile(input, []byte(">pTest\n"+e2eGenome()+"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	design := writeTemp(t, "design.txt", "MCS1, BamHI\nSelection1, mCherry\n")

	result, err := Run(input, design, output, markersTab, c)
	if err != nil {
		t.Fatalf("Run() error = %v, a missing marker shouldn't abort", err)
	}

	if len(result.Warnings) != 1 || result.Warnings[0].Kind != MarkerLookupMiss {
		t.Fatalf("Run() warnings = %v, want one marker lookup miss", result.Warnings)
	}
	if !strings.Contains(result.Warnings[0].String(), "mCherry") {
		t.Errorf("Run() warning %q should name mCherry", result.Warnings[0].String())
	}
	if len(result.Plasmid.Segments) != 3 {
		t.Errorf("Run() segments = %d, the missing marker shouldn't add one", len(result.Plasmid.Segments))
	}
}

func Test_Run_fatal(t *testing.T) {
	c := config.New()

	dir := t.TempDir()
	input := filepath.Join(dir, "genome.fa")
	output := filepath.Join(dir, "plasmid.fa")

	if err := os.WriteFile(input, []byte(">pTest\n"+e2eGenome()+"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Run("empty design file", func(t *testing.T) {
		design := writeTemp(t, "design.txt", "# nothing here\n")

		if _, err := Run(input, design, output, markersTab, c); !errors.Is(err, ErrEmptyDesign) {
			t.Errorf("Run() error = %v, want %v", err, ErrEmptyDesign)
		}
		if _, err := os.Stat(output); !os.IsNotExist(err) {
			t.Errorf("Run() wrote a partial output file on a fatal error")
		}
	})

	t.Run("invalid genomic alphabet", func(t *testing.T) {
		badInput := filepath.Join(dir, "bad.fa")
		if err := os.WriteFile(badInput, []byte(">bad\nACGTNNNNACGT\n"), 0644); err != nil {
			t.Fatal(err)
		}
		design := writeTemp(t, "design.txt", "MCS1, BamHI\n")

		if _, err := Run(badInput, design, output, markersTab, c); !errors.Is(err, ErrInvalidAlphabet) {
			t.Errorf("Run() error = %v, want %v", err, ErrInvalidAlphabet)
		}
		if _, err := os.Stat(output); !os.IsNotExist(err) {
			t.Errorf("Run() wrote a partial output file on a fatal error")
		}
	})

	t.Run("missing input file", func(t *testing.T) {
		design := writeTemp(t, "design.txt", "MCS1, BamHI\n")

		if _, err := Run(filepath.Join(dir, "nope.fa"), design, output, markersTab, c); err == nil {
			t.Errorf("Run() expected an error for a missing input")
		}
	})
}
