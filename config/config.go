// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// ampR is the bla open reading frame conferring ampicillin resistance.
// Used when a design asks for an Amp marker and the markers database
// doesn't carry its sequence.
const ampR = "ATGAGTATTCAACATTTCCGTGTCGCCCTTATTCCCTTTTTTGCGGCATTTTGCCTTCCTGTTTTTGCTCAC" +
	"CCAGAAACGCTGGTGAAAGTAAAAGATGCTGAAGATCAGTTGGGTGCACGAGTGGGTTACATCGAACTGGAT" +
	"CTCAACAGCGGTAAGATCCTTGAGAGTTTTCGCCCCGAAGAACGTTTTCCAATGATGAGCACTTTTAAAGTT" +
	"CTGCTATGTGGCGCGGTATTATCCCGTATTGACGCCGGGCAAGAGCAACTCGGTCGCCGCATACACTATTCT" +
	"CAGAATGACTTGGTTGAGTACTCACCAGTCACAGAAAAGCATCTTACGGATGGCATGACAGTAAGAGAATTA" +
	"TGCAGTGCTGCCATAACCATGAGTGATAACACTGCGGCCAACTTACTTCTGACAACGATCGGAGGACCGAAG" +
	"GAGCTAACCGCTTTTTTGCACAACATGGGGGATCATGTAACTCGCCTTGATCGTTGGGAACCGGAGCTGAAT" +
	"GAAGCCATACCAAACGACGAGCGTGACACCACGATGCCTGTAGCAATGGCAACAACGTTGCGCAAACTATTA" +
	"ACTGGCGAACTACTTACTCTAGCTTCCCGGCAACAATTAATAGACTGGATGGAGGCGGATAAAGTTGCAGGA" +
	"CCACTTCTGCGCTCGGCCCTTCCGGCTGGCTGGTTTATTGCTGATAAATCTGGAGCCGGTGAGCGTGGGTCT" +
	"CGCGGTATCATTGCAGCACTGGGGCCAGATGGTAAGCCCTCCCGTATCGTAGTTATCTACACGACGGGGAGT" +
	"CAGGCAACTATGGATGAACGAAATAGACAGATCGCTGAGATAGGTGCCTCACTGATTAAGCATTGGTAACTG" +
	"TCAGACCAAGTTTACTCATATATACTTTAGATTGATTTAAAACTTCATTTTTAATTTAAAAGGATCTAGGTG" +
	"AAGATCCTTTTTGATAATCTCATGACCAAAATCCCTTAACGTGAGTTTTCGTTCCACTGAGCGTCAGACCCC" +
	"GTAGAAAAGATCAAAGGATCTTCTTGAGATCCTTTTTTTCTGCGCGTAATCTGCTGCTTGCAAACAAAAAAA" +
	"CCACCGCTACCAGCGGTGGTTTGTTTGCCGGATCAAGAGCTACCAACTCTTTTTCCGAAGGTAACTGGCTTC" +
	"AGCAGAGCGCAGATACCAAATACTGTTCTTCTAGTGTAGCCGTAGTTAGGCCACCACTTCAAGAACTCTGTA" +
	"GCACCGCCTACATACCTCGCTCTGCTAATCCTGTTACCAGTGGCTGCTGCCAGTGGCGATAAGTCGTGTCTT" +
	"ACCGGGTTGGACTCAAGACGATAGTTACCGGATAAGGCGCAGCGGTCGGGCTGAACGGGGGGTTCGTGCACA" +
	"CAGCCCAGCTTGGAGCGAACGACCTACACCGAACTGAGATACCTACAGCGTGAGCTATGAGAAAGCGCCACG" +
	"CTTCCCGAAGGGAGAAAGGCGGACAGGTATCCGGTAAGCGGCAGGGTCGGAACAGGAGAGCGCACGAGGGAG" +
	"CTTCCAGGGGGAAACGCCTGGTATCTTTATAGTCCTGTCGGGTTTCGCCACCTCTGACTTGAGCGTCGATTT" +
	"TTGTGATGCTCGTCAGGGGGGCGGAGCCTATGGAAAAACGCCAGCAACGCGGCCTTTTTACGGTTCCTGGCC" +
	"TTTTGCTGGCCTTTTGCTCACATGTTCTTTCCTGCGTTATCCCCTGATTCTGTGGATAACCGTATTACCGCC" +
	"TTTGAGTGAGCTGATACCGCTCGCCGCAGCCGAACGACCGAGCGCAGCGAGTCAGTGAGCGAGGAAGCGGAAG"

// lacZAlpha is the lacZ alpha fragment with the pUC19 polylinker,
// the usual blue/white screening marker.
const lacZAlpha = "ATGACCATGATTACGCCAAGCTTGCATGCCTGCAGGTCGACTCTAGAGGATCCCCGGGTACCGAGCTCGAATTC"

// Segment is a named piece of DNA appended to the plasmid as one unit
type Segment struct {
	// the segment name (becomes part of the build report)
	Name string `mapstructure:"name"`

	// the segment sequence, strict ACGT
	Seq string `mapstructure:"seq"`
}

// OriConfig holds the heuristics for origin-of-replication identification
type OriConfig struct {
	// the minimum number of non-overlapping DnaA boxes for a qualifying cluster
	MinBoxes int `mapstructure:"min-boxes"`

	// the window (bp) a DnaA box cluster must fit inside
	ClusterWindow int `mapstructure:"cluster-window"`

	// the width (bp) a DnaA box region is padded out to
	TargetWidth int `mapstructure:"target-width"`

	// the sliding window (bp) for AT-fraction scoring
	ATWindow int `mapstructure:"at-window"`

	// the minimum AT fraction a window must exceed to count as an ORI
	ATThreshold float64 `mapstructure:"at-threshold"`

	// the width (bp) of the default region when no method qualifies
	FallbackWidth int `mapstructure:"fallback-width"`
}

// BuildConfig holds assembly settings
type BuildConfig struct {
	// the filler sequence inserted between plasmid segments
	Spacer string `mapstructure:"spacer"`

	// minimal replication-maintenance segments appended after the ORI
	Replication []Segment `mapstructure:"replication"`
}

// FallbackConfig holds the built-in tables consulted when the markers
// database misses an entry. Overridable from a settings file so the
// tables can change without recompiling.
type FallbackConfig struct {
	// recognition sequences of common restriction enzymes
	Sites map[string]string `mapstructure:"sites"`

	// sequences of common selectable markers
	Markers map[string]string `mapstructure:"markers"`
}

// Config is the root-level settings struct and is a mix of settings
// available in a settings file and those from the command line
type Config struct {
	// path to the markers database
	Markers string `mapstructure:"markers"`

	// ORI identification settings
	Ori OriConfig `mapstructure:"ori"`

	// plasmid assembly settings
	Build BuildConfig `mapstructure:"build"`

	// built-in fallback tables
	Fallback FallbackConfig `mapstructure:"fallback"`
}

// New returns a new Config struct populated by Viper settings (either
// from a settings file bound in /cmd and/or the defaults below)
func New() *Config {
	if settings := viper.GetString("settings"); settings != "" {
		viper.SetConfigFile(settings)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatalf("failed to read settings file %s: %v", settings, err)
		}
	}

	setDefaults()

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	if len(c.Build.Replication) == 0 {
		c.Build.Replication = []Segment{
			{
				Name: "repA",
				Seq:  "ATGAGCGAACTGATCGTTGAAGACAAACGCCTGAAAGTTCTGGAAGCTAACCGTTAA",
			},
		}
	}

	return c
}

// setDefaults writes every scalar and map setting into viper ahead of
// unmarshalling, so a settings file only needs the keys it changes
func setDefaults() {
	viper.SetDefault("markers", "data/markers.tab")

	viper.SetDefault("ori.min-boxes", 3)
	viper.SetDefault("ori.cluster-window", 500)
	viper.SetDefault("ori.target-width", 250)
	viper.SetDefault("ori.at-window", 200)
	viper.SetDefault("ori.at-threshold", 0.65)
	viper.SetDefault("ori.fallback-width", 300)

	viper.SetDefault("build.spacer", "AA")

	viper.SetDefault("fallback.sites", map[string]string{
		"EcoRI":   "GAATTC",
		"BamHI":   "GGATCC",
		"HindIII": "AAGCTT",
		"PstI":    "CTGCAG",
		"KpnI":    "GGTACC",
		"SacI":    "GAGCTC",
		"SalI":    "GTCGAC",
		"XbaI":    "TCTAGA",
		"NotI":    "GCGGCCGC",
		"SmaI":    "CCCGGG",
		"SphI":    "GCATGC",
	})
	viper.SetDefault("fallback.markers", map[string]string{
		"AmpR":       ampR,
		"lacZ_alpha": lacZAlpha,
	})
}
