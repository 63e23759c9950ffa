package consolidate

import (
	"reflect"
	"testing"
)

const (
	surplus = "Accumulated surplus"
	deficit = "Accumulated deficit"
)

func ledgerWith(surplusYears, deficitYears map[int]float64) Ledger {
	l := make(Ledger)
	if surplusYears != nil {
		l[surplus] = surplusYears
	} else {
		l[surplus] = make(map[int]float64)
	}
	if deficitYears != nil {
		l[deficit] = deficitYears
	} else {
		l[deficit] = make(map[int]float64)
	}
	return l
}

func TestExclusivityPositiveSurplusWins(t *testing.T) {
	l := ledgerWith(map[int]float64{2021: 500}, map[int]float64{2021: -500})
	ResolveExclusivity(l, DefaultExclusivePairs())

	if v, ok := l.Value(surplus, 2021); !ok || v != 500 {
		t.Errorf("Surplus: expected 500, got %f (ok=%v)", v, ok)
	}
	if _, ok := l.Value(deficit, 2021); ok {
		t.Error("Deficit slot must be cleared for 2021")
	}
}

func TestExclusivityPositiveDeficitWins(t *testing.T) {
	l := ledgerWith(map[int]float64{2021: -300}, map[int]float64{2021: 300})
	ResolveExclusivity(l, DefaultExclusivePairs())

	if v, ok := l.Value(deficit, 2021); !ok || v != 300 {
		t.Errorf("Deficit: expected 300, got %f (ok=%v)", v, ok)
	}
	if _, ok := l.Value(surplus, 2021); ok {
		t.Error("Surplus slot must be cleared for 2021")
	}
}

func TestExclusivityAmbiguousSignsKeepPrimary(t *testing.T) {
	// Both positive: primary (surplus) retained.
	l := ledgerWith(map[int]float64{2021: 100}, map[int]float64{2021: 80})
	ResolveExclusivity(l, DefaultExclusivePairs())
	if v, ok := l.Value(surplus, 2021); !ok || v != 100 {
		t.Errorf("Both positive: expected surplus 100 retained, got %f (ok=%v)", v, ok)
	}
	if _, ok := l.Value(deficit, 2021); ok {
		t.Error("Both positive: deficit must be cleared")
	}

	// Both zero: primary retained.
	l = ledgerWith(map[int]float64{2021: 0}, map[int]float64{2021: 0})
	ResolveExclusivity(l, DefaultExclusivePairs())
	if v, ok := l.Value(surplus, 2021); !ok || v != 0 {
		t.Errorf("Both zero: expected surplus 0 retained, got %f (ok=%v)", v, ok)
	}
	if _, ok := l.Value(deficit, 2021); ok {
		t.Error("Both zero: deficit must be cleared")
	}
}

func TestExclusivityBothNegativeConvertsToSecondary(t *testing.T) {
	// Both negative: the primary side is retained, and its negative value
	// then converts to a positive entry on the secondary side.
	l := ledgerWith(map[int]float64{2021: -200}, map[int]float64{2021: -900})
	ResolveExclusivity(l, DefaultExclusivePairs())

	if v, ok := l.Value(deficit, 2021); !ok || v != 200 {
		t.Errorf("Expected deficit 200, got %f (ok=%v)", v, ok)
	}
	if _, ok := l.Value(surplus, 2021); ok {
		t.Error("Surplus slot must end cleared")
	}
}

func TestExclusivityLoneNegativeDeficitConverts(t *testing.T) {
	l := ledgerWith(nil, map[int]float64{2020: -750})
	ResolveExclusivity(l, DefaultExclusivePairs())

	if v, ok := l.Value(surplus, 2020); !ok || v != 750 {
		t.Errorf("Expected surplus 750, got %f (ok=%v)", v, ok)
	}
	if _, ok := l.Value(deficit, 2020); ok {
		t.Error("Deficit slot must be cleared after conversion")
	}
}

func TestExclusivityLoneNegativeSurplusConverts(t *testing.T) {
	l := ledgerWith(map[int]float64{2020: -400}, nil)
	ResolveExclusivity(l, DefaultExclusivePairs())

	if v, ok := l.Value(deficit, 2020); !ok || v != 400 {
		t.Errorf("Expected deficit 400, got %f (ok=%v)", v, ok)
	}
	if _, ok := l.Value(surplus, 2020); ok {
		t.Error("Surplus slot must be cleared after conversion")
	}
}

func TestExclusivityLonePositiveUntouched(t *testing.T) {
	l := ledgerWith(map[int]float64{2020: 900}, nil)
	ResolveExclusivity(l, DefaultExclusivePairs())
	if v, ok := l.Value(surplus, 2020); !ok || v != 900 {
		t.Errorf("Lone positive surplus must be untouched, got %f (ok=%v)", v, ok)
	}
}

func TestExclusivityYearsIndependent(t *testing.T) {
	l := ledgerWith(
		map[int]float64{2021: 500, 2020: -100},
		map[int]float64{2021: -500, 2019: 50},
	)
	ResolveExclusivity(l, DefaultExclusivePairs())

	if v, _ := l.Value(surplus, 2021); v != 500 {
		t.Errorf("2021 surplus: expected 500, got %f", v)
	}
	if v, _ := l.Value(deficit, 2020); v != 100 {
		t.Errorf("2020: lone negative surplus must convert to deficit 100, got %f", v)
	}
	if v, _ := l.Value(deficit, 2019); v != 50 {
		t.Errorf("2019 deficit: expected 50 untouched, got %f", v)
	}
}

func TestExclusivityIdempotent(t *testing.T) {
	l := ledgerWith(
		map[int]float64{2021: 500, 2020: -100, 2018: -3},
		map[int]float64{2021: -500, 2019: -50, 2018: -9},
	)
	ResolveExclusivity(l, DefaultExclusivePairs())

	snapshot := make(Ledger)
	for desc, years := range l {
		cp := make(map[int]float64, len(years))
		for y, v := range years {
			cp[y] = v
		}
		snapshot[desc] = cp
	}

	ResolveExclusivity(l, DefaultExclusivePairs())
	if !reflect.DeepEqual(l, snapshot) {
		t.Errorf("Second pass changed the ledger:\nfirst:  %v\nsecond: %v", snapshot, l)
	}
}

func TestExclusivityMissingSlotsNoPanic(t *testing.T) {
	// A custom taxonomy may omit one or both sides entirely.
	l := Ledger{deficit: {2021: -10}}
	ResolveExclusivity(l, DefaultExclusivePairs())
	if v, ok := l.Value(surplus, 2021); !ok || v != 10 {
		t.Errorf("Conversion must create the missing primary slot, got %f (ok=%v)", v, ok)
	}

	ResolveExclusivity(Ledger{}, DefaultExclusivePairs()) // no slots at all
}
