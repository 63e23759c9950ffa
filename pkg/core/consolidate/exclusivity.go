package consolidate

// ExclusivePair names two canonical descriptions that represent mutually
// exclusive states of one underlying account: a fund is in surplus or in
// deficit for a given year, never both. Primary is the side retained when
// the signs are ambiguous.
type ExclusivePair struct {
	Primary   string `yaml:"primary" json:"primary"`
	Secondary string `yaml:"secondary" json:"secondary"`
}

// DefaultExclusivePairs returns the built-in pair list.
func DefaultExclusivePairs() []ExclusivePair {
	return []ExclusivePair{
		{Primary: "Accumulated surplus", Secondary: "Accumulated deficit"},
	}
}

// ResolveExclusivity enforces each pair's rule in place, independently per
// year:
//
//  1. When both slots hold a value, the strictly positive one wins (a
//     positive entry is read as the actively reported state) and the other
//     slot is cleared. When neither side is strictly positive, or both
//     are, the primary side is retained.
//  2. A lone negative value is the opposite state reported with a sign:
//     it moves to the other slot as its absolute value.
//
// Step 2 also applies to the survivor of step 1, which makes the pass a
// fixed point: running it again changes nothing.
func ResolveExclusivity(ledger Ledger, pairs []ExclusivePair) {
	for _, pair := range pairs {
		primary := ledger[pair.Primary]
		secondary := ledger[pair.Secondary]
		if len(primary) == 0 && len(secondary) == 0 {
			continue
		}

		years := make(map[int]struct{})
		for y := range primary {
			years[y] = struct{}{}
		}
		for y := range secondary {
			years[y] = struct{}{}
		}

		for year := range years {
			pVal, pOK := primary[year]
			sVal, sOK := secondary[year]

			if pOK && sOK {
				if sVal > 0 && pVal <= 0 {
					delete(primary, year)
					pOK = false
				} else {
					delete(secondary, year)
					sOK = false
				}
			}

			switch {
			case pOK && !sOK && pVal < 0:
				if secondary == nil {
					secondary = make(map[int]float64)
					ledger[pair.Secondary] = secondary
				}
				secondary[year] = -pVal
				delete(primary, year)
			case sOK && !pOK && sVal < 0:
				if primary == nil {
					primary = make(map[int]float64)
					ledger[pair.Primary] = primary
				}
				primary[year] = -sVal
				delete(secondary, year)
			}
		}
	}
}
