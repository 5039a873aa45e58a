package photometry

import "math"

// Conversion bounds. NELM saturates near 6.7 for even the best observers and
// SQM meters top out around 22 mag/arcsec² under a pristine sky.
const (
	maxNelm = 6.7
	maxSqm  = 22.0
	minNelm = 2.5
)

// bortleNelm and bortleSqm map each Bortle class (index 1–9) to the
// representative value for that bucket. Index 0 is unused.
var (
	bortleNelm = [10]float64{0, 6.6, 6.5, 6.4, 6.1, 5.4, 4.7, 4.2, 3.8, 3.6}
	bortleSqm  = [10]float64{0, 21.85, 21.6, 21.4, 20.85, 19.75, 18.8, 18.25, 17.75, 17.5}
)

// NelmToSqm estimates the sky brightness in mag/arcsec² from the naked-eye
// limiting magnitude. fstOffset is the personal offset between the observer's
// faintest star estimate and the reference NELM; pass 0 when unknown. The
// result is capped at 22.0. NELM must be between 0 and 6.7.
func NelmToSqm(nelm, fstOffset float64) (float64, error) {
	if nelm < 0 || nelm > maxNelm {
		return 0, errRange("nelm", 0, maxNelm)
	}
	base := math.Pow(10, 1.586-(nelm+fstOffset)/5.0) - 1.0
	if base <= 0 {
		return 0, &InvalidParameterError{Name: "fstOffset", Reason: "puts the limiting magnitude outside the model range"}
	}
	return math.Min(21.58-5*math.Log10(base), maxSqm), nil
}

// SqmToNelm estimates the naked-eye limiting magnitude from a sky brightness
// reading in mag/arcsec². The result is floored at 2.5 before the personal
// fstOffset is subtracted. SQM must be between 0 and 22.
func SqmToNelm(sqm, fstOffset float64) (float64, error) {
	if sqm < 0 || sqm > maxSqm {
		return 0, errRange("sqm", 0, maxSqm)
	}
	nelm := 7.93 - 5*math.Log10(1+math.Pow(10, 4.316-sqm/5.0))
	if nelm < minNelm {
		nelm = minNelm
	}
	return nelm - fstOffset, nil
}

// NelmToBortle classifies a naked-eye limiting magnitude on the Bortle scale
// (1 darkest, 9 brightest). The classification buckets a continuous value, so
// it cannot be inverted exactly. NELM must be between 0 and 6.7.
func NelmToBortle(nelm float64) (int, error) {
	if nelm < 0 || nelm > maxNelm {
		return 0, errRange("nelm", 0, maxNelm)
	}
	switch {
	case nelm < 3.6:
		return 9, nil
	case nelm < 3.9:
		return 8, nil
	case nelm < 4.4:
		return 7, nil
	case nelm < 4.9:
		return 6, nil
	case nelm < 5.8:
		return 5, nil
	case nelm < 6.3:
		return 4, nil
	case nelm < 6.4:
		return 3, nil
	case nelm < 6.5:
		return 2, nil
	default:
		return 1, nil
	}
}

// SqmToBortle classifies a sky brightness reading on the Bortle scale
// (1 darkest, 9 brightest). Like [NelmToBortle] this buckets a continuous
// value and is therefore lossy. SQM must be between 0 and 22.
func SqmToBortle(sqm float64) (int, error) {
	if sqm < 0 || sqm > maxSqm {
		return 0, errRange("sqm", 0, maxSqm)
	}
	switch {
	case sqm <= 17.5:
		return 9, nil
	case sqm <= 18.0:
		return 8, nil
	case sqm <= 18.5:
		return 7, nil
	case sqm <= 19.1:
		return 6, nil
	case sqm <= 20.4:
		return 5, nil
	case sqm <= 21.3:
		return 4, nil
	case sqm <= 21.5:
		return 3, nil
	case sqm <= 21.7:
		return 2, nil
	default:
		return 1, nil
	}
}

// BortleToNelm returns the representative naked-eye limiting magnitude for a
// Bortle class, adjusted by the observer's fstOffset. Bortle must be between
// 1 and 9.
func BortleToNelm(bortle int, fstOffset float64) (float64, error) {
	if bortle < 1 || bortle > 9 {
		return 0, errRange("bortle", 1, 9)
	}
	return bortleNelm[bortle] - fstOffset, nil
}

// BortleToSqm returns the representative sky brightness in mag/arcsec² for a
// Bortle class. Bortle must be between 1 and 9.
func BortleToSqm(bortle int) (float64, error) {
	if bortle < 1 || bortle > 9 {
		return 0, errRange("bortle", 1, 9)
	}
	return bortleSqm[bortle], nil
}
