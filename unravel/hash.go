package unravel

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/nodemesh/router/section"
)

// candidateHash hashes only the (sorted) modification entries — cheap, and
// enough to catch exact duplicate search paths.
func candidateHash(mods Modifications) string {
	ids := make([]section.SegmentPointID, 0, len(mods))
	for id := range mods {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var b strings.Builder
	for _, id := range ids {
		m := mods[id]
		fmt.Fprintf(&b, "%s:%t,%g,%t,%g,%t,%d;", id, m.HasX, m.X, m.HasY, m.Y, m.HasZ, m.Z)
	}

	return sha256Hex(b.String())
}

// candidateFullHash hashes the fully-resolved state of every point in the
// section — catches semantically equivalent states reached by different
// operation histories, even when the modification maps differ.
func candidateFullHash(sec *section.UnravelSection, mods Modifications) string {
	ids := make([]section.SegmentPointID, 0, len(sec.SegmentPoints))
	for id := range sec.SegmentPoints {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var b strings.Builder
	for _, id := range ids {
		rp := resolvePoint(sec, mods, id)
		fmt.Fprintf(&b, "%s:%g,%g,%d;", id, rp.X, rp.Y, rp.Z)
	}

	return sha256Hex(b.String())
}

func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))

	return hex.EncodeToString(sum[:])
}
