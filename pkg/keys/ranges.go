// ABOUTME: Inclusive key ranges covering all descendants of an ancestor key
// ABOUTME: The database range-scans its sorted indexes with these bounds

package keys

// Logical maxima per digit-group width.
const (
	max1 = 9
	max2 = 99
	max3 = 999
	max4 = 9999
)

// RegierungsbezirkRange bounds all Regierungsbezirk keys under the Land.
func (k LandKey) RegierungsbezirkRange() (RegierungsbezirkKey, RegierungsbezirkKey) {
	return RegierungsbezirkKey{Land: k, Bezirk: 0},
		RegierungsbezirkKey{Land: k, Bezirk: max1}
}

// RegionRange bounds all Region keys under the Land.
func (k LandKey) RegionRange() (RegionKey, RegionKey) {
	lo, hi := k.RegierungsbezirkRange()
	return RegionKey{Regierungsbezirk: lo, Region: 0},
		RegionKey{Regierungsbezirk: hi, Region: max1}
}

// KreisRange bounds all Kreis keys under the Land.
func (k LandKey) KreisRange() (KreisKey, KreisKey) {
	lo, hi := k.RegierungsbezirkRange()
	return KreisKey{Regierungsbezirk: lo, Kreis: 0},
		KreisKey{Regierungsbezirk: hi, Kreis: max2}
}

// KreisRange bounds all Kreis keys under the Regierungsbezirk.
func (k RegierungsbezirkKey) KreisRange() (KreisKey, KreisKey) {
	return KreisKey{Regierungsbezirk: k, Kreis: 0},
		KreisKey{Regierungsbezirk: k, Kreis: max2}
}

// VerbandRange bounds all Verband keys scoped to the Land.
func (k LandKey) VerbandRange() (VerbandKey, VerbandKey) {
	lo, hi := k.KreisRange()
	return VerbandKey{Kreis: lo, Verband: 0},
		VerbandKey{Kreis: hi, Verband: max4}
}

// VerbandRange bounds all Verband keys within the Kreis.
func (k KreisKey) VerbandRange() (VerbandKey, VerbandKey) {
	return VerbandKey{Kreis: k, Verband: 0},
		VerbandKey{Kreis: k, Verband: max4}
}

// GemeindeRange bounds all Gemeinde keys under the Land.
func (k LandKey) GemeindeRange() (GemeindeKey, GemeindeKey) {
	lo, hi := k.KreisRange()
	return GemeindeKey{Kreis: lo, Gemeinde: 0},
		GemeindeKey{Kreis: hi, Gemeinde: max3}
}

// GemeindeRange bounds all Gemeinde keys under the Regierungsbezirk.
func (k RegierungsbezirkKey) GemeindeRange() (GemeindeKey, GemeindeKey) {
	lo, hi := k.KreisRange()
	return GemeindeKey{Kreis: lo, Gemeinde: 0},
		GemeindeKey{Kreis: hi, Gemeinde: max3}
}

// GemeindeRange bounds all Gemeinde keys within the Kreis.
func (k KreisKey) GemeindeRange() (GemeindeKey, GemeindeKey) {
	return GemeindeKey{Kreis: k, Gemeinde: 0},
		GemeindeKey{Kreis: k, Gemeinde: max3}
}
