package plasmid

import (
	"github.com/agennttrex/BBL434-Universal-Plasmid-Maker/config"
	"github.com/bebop/poly/checks"
)

// OriMethod is the method that produced an OriRegion
type OriMethod int

const (
	// DnaABox regions hold a cluster of DnaA initiator binding sites
	DnaABox OriMethod = iota

	// ATRich regions are the most AT-rich window of the sequence
	ATRich

	// Fallback regions are the start of the sequence, nothing qualified
	Fallback
)

func (m OriMethod) String() string {
	switch m {
	case DnaABox:
		return "dnaa-box"
	case ATRich:
		return "at-rich"
	}
	return "fallback"
}

// OriRegion is a best-effort origin-of-replication region. Start is
// inclusive, End exclusive, both within the genomic sequence's bounds.
type OriRegion struct {
	Start  int
	End    int
	Method OriMethod

	// Score is the AT fraction for ATRich regions and the box count for
	// DnaABox regions. Zero for Fallback.
	Score float64
}

// dnaaBoxes is the canonical 9 bp DnaA box plus known single-base
// variants seen near bacterial origins.
var dnaaBoxes = []string{
	"TTATCCACA", // consensus
	"TTATACACA",
	"TTATTCACA",
	"TTATGCACA",
	"TTATCCACC",
	"TTTTCCACA",
}

// FindOri locates a best-effort origin of replication. It never fails:
// methods degrade from DnaA box clusters, to the most AT-rich window,
// to a default region at the sequence start.
func FindOri(seq string, c *config.Config) OriRegion {
	if region, ok := findDnaaCluster(seq, c); ok {
		return region
	}

	if region, ok := findATRichWindow(seq, c); ok {
		return region
	}

	end := c.Ori.FallbackWidth
	if len(seq) < end {
		end = len(seq)
	}
	return OriRegion{Start: 0, End: end, Method: Fallback}
}

// findDnaaCluster looks for >= MinBoxes non-overlapping DnaA boxes within
// a ClusterWindow bp span. The earliest qualifying cluster wins and its
// span is padded symmetrically out to TargetWidth, clipped to bounds.
func findDnaaCluster(seq string, c *config.Config) (OriRegion, bool) {
	boxLen := len(dnaaBoxes[0])

	boxes := make(map[string]bool, len(dnaaBoxes))
	for _, box := range dnaaBoxes {
		boxes[box] = true
	}

	// non-overlapping match starts, ascending
	var matches []int
	for i := 0; i+boxLen <= len(seq); i++ {
		if boxes[seq[i:i+boxLen]] {
			matches = append(matches, i)
			i += boxLen - 1
		}
	}

	minBoxes := c.Ori.MinBoxes
	for i := 0; i+minBoxes <= len(matches); i++ {
		last := matches[i+minBoxes-1]
		if last-matches[i] >= c.Ori.ClusterWindow {
			continue
		}

		// extend the cluster with every further match still in the window
		count := minBoxes
		for i+count < len(matches) && matches[i+count]-matches[i] < c.Ori.ClusterWindow {
			last = matches[i+count]
			count++
		}

		start, end := pad(matches[i], last+boxLen, c.Ori.TargetWidth, len(seq))
		return OriRegion{
			Start:  start,
			End:    end,
			Method: DnaABox,
			Score:  float64(count),
		}, true
	}

	return OriRegion{}, false
}

// findATRichWindow slides an ATWindow bp window across the sequence and
// returns the window with the highest AT fraction, provided it exceeds
// ATThreshold. Ties go to the earliest window so output is deterministic.
func findATRichWindow(seq string, c *config.Config) (OriRegion, bool) {
	window := c.Ori.ATWindow
	if len(seq) < window {
		return OriRegion{}, false
	}

	bestStart := -1
	bestAT := c.Ori.ATThreshold
	for i := 0; i+window <= len(seq); i++ {
		atFraction := 1.0 - checks.GcContent(seq[i:i+window])
		if atFraction > bestAT {
			bestAT = atFraction
			bestStart = i
		}
	}

	if bestStart < 0 {
		return OriRegion{}, false
	}

	return OriRegion{
		Start:  bestStart,
		End:    bestStart + window,
		Method: ATRich,
		Score:  bestAT,
	}, true
}

// pad grows [start, end) symmetrically out to width, clipped to [0, max).
func pad(start, end, width, max int) (int, int) {
	if gap := width - (end - start); gap > 0 {
		start -= gap / 2
		end += gap - gap/2
	}

	if start < 0 {
		start = 0
	}
	if end > max {
		end = max
	}

	return start, end
}
