package plasmid

import (
	"reflect"
	"testing"
)

func Test_NewMarkerDB(t *testing.T) {
	path := writeTemp(t, "markers.tab", "# comment line\n"+
		"EcoRI\tenzyme\tGAATTC\n"+
		"EcoRII\tenzyme\tCCWGG\n"+
		"\n"+
		"lacZ_alpha\tmarker\tatgacc\n"+
		"AmpR\tmarker\t\n"+
		"KanR\tmarker\n"+
		"ori_pMB1\tori\tTTATCCACA\n")

	db, err := NewMarkerDB(path)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("records and kinds", func(t *testing.T) {
		record, ok := db.Lookup("EcoRI")
		if !ok || record.Kind != RestrictionEnzyme || record.Seq != "GAATTC" {
			t.Errorf("Lookup(EcoRI) = %+v, %t", record, ok)
		}

		record, ok = db.Lookup("lacZ_alpha")
		if !ok || record.Kind != SelectableMarker || record.Seq != "ATGACC" {
			t.Errorf("Lookup(lacZ_alpha) = %+v, %t", record, ok)
		}

		record, ok = db.Lookup("ori_pMB1")
		if !ok || record.Kind != ReplicationElement {
			t.Errorf("Lookup(ori_pMB1) = %+v, %t", record, ok)
		}
	})

	t.Run("markers without a sequence column", func(t *testing.T) {
		// two-column lines are legal, the sequence comes from the
		// fallback table instead
		record, ok := db.Lookup("KanR")
		if !ok || record.Kind != SelectableMarker || record.Seq != "" {
			t.Errorf("Lookup(KanR) = %+v, %t, want an empty sequence", record, ok)
		}
	})

	t.Run("case-insensitive lookup", func(t *testing.T) {
		if _, ok := db.Lookup("ecori"); !ok {
			t.Errorf("Lookup(ecori) failed, lookup should be case-insensitive")
		}
		if _, ok := db.Lookup("NoSuchI"); ok {
			t.Errorf("Lookup(NoSuchI) succeeded unexpectedly")
		}
	})

	t.Run("enzymes are sorted", func(t *testing.T) {
		if got := db.Enzymes(); !reflect.DeepEqual(got, []string{"EcoRI", "EcoRII"}) {
			t.Errorf("Enzymes() = %v", got)
		}
	})

	t.Run("recognition with fallback", func(t *testing.T) {
		fallback := map[string]string{"BamHI": "GGATCC"}

		if recog, ok := db.Recognition("EcoRII", fallback); !ok || recog != "CCWGG" {
			t.Errorf("Recognition(EcoRII) = %s, %t", recog, ok)
		}
		if recog, ok := db.Recognition("bamhi", fallback); !ok || recog != "GGATCC" {
			t.Errorf("Recognition(bamhi) = %s, %t, want the fallback table hit", recog, ok)
		}
		if _, ok := db.Recognition("NoSuchI", fallback); ok {
			t.Errorf("Recognition(NoSuchI) succeeded unexpectedly")
		}
	})

	t.Run("marker sequence with fallback", func(t *testing.T) {
		fallback := map[string]string{"AmpR": "ATGAGT"}

		if seq, ok := db.MarkerSeq("lacZ_alpha", fallback); !ok || seq != "ATGACC" {
			t.Errorf("MarkerSeq(lacZ_alpha) = %s, %t", seq, ok)
		}
		// AmpR is in the database without a sequence; the fallback fills it
		if seq, ok := db.MarkerSeq("AmpR", fallback); !ok || seq != "ATGAGT" {
			t.Errorf("MarkerSeq(AmpR) = %s, %t, want the fallback sequence", seq, ok)
		}
		// partial names still resolve
		if _, ok := db.MarkerSeq("Amp", fallback); !ok {
			t.Errorf("MarkerSeq(Amp) missed, partial names should resolve")
		}
		if _, ok := db.MarkerSeq("mCherry", fallback); ok {
			t.Errorf("MarkerSeq(mCherry) succeeded unexpectedly")
		}
	})
}

func Test_NewMarkerDB_errors(t *testing.T) {
	type args struct {
		contents string
	}
	tests := []struct {
		name string
		args args
	}{
		{
			"too few columns",
			args{contents: "EcoRI\n"},
		},
		{
			"enzyme without a recognition sequence",
			args{contents: "EcoRI\tenzyme\n"},
		},
		{
			"unknown kind",
			args{contents: "EcoRI\tprotein\tGAATTC\n"},
		},
		{
			"invalid recognition sequence",
			args{contents: "EcoRI\tenzyme\tGA^TTC\n"},
		},
		{
			"invalid marker sequence",
			args{contents: "KanR\tmarker\tATGNNN\n"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, "markers.tab", tt.args.contents)
			if _, err := NewMarkerDB(path); err == nil {
				t.Errorf("NewMarkerDB() expected an error")
			}
		})
	}

	if _, err := NewMarkerDB("no/such/markers.tab"); err == nil {
		t.Errorf("NewMarkerDB() expected an error for a missing file")
	}
}
