package photometry

import "math"

// mmPerInch converts telescope aperture to inches, the unit the threshold
// model was calibrated in.
const mmPerInch = 25.4

// Target describes the object whose detectability is being evaluated.
//
// The object's surface brightness is taken from exactly one of two input
// modes:
//
//   - SurfaceBrightness nil: the surface brightness is derived from Magnitude
//     and both diameters, which must then be strictly positive.
//   - SurfaceBrightness set: the supplied value is authoritative, Magnitude is
//     ignored entirely, and the diameters only determine the apparent size.
//
// The modes are mutually exclusive; there is no precedence between partially
// supplied inputs. Note the unit difference: a supplied SurfaceBrightness is
// in magnitudes per square arcminute (the unit used by deep-sky catalogues),
// while the derived value is in magnitudes per square arcsecond.
type Target struct {
	// Magnitude is the integrated visual magnitude. Used only when
	// SurfaceBrightness is nil.
	Magnitude float64

	// Diameter1 and Diameter2 are the angular diameters along the major and
	// minor axes in arcseconds. A zero diameter (allowed only with
	// SurfaceBrightness set) degenerates to a point source.
	Diameter1 float64
	Diameter2 float64

	// SurfaceBrightness, when non-nil, is the catalogued surface brightness
	// in mag/arcmin².
	SurfaceBrightness *float64
}

// SurfaceBrightness computes an object's surface brightness in mag/arcsec²
// from its integrated magnitude and elliptical extent. Both diameters are in
// arcseconds and must be strictly positive.
func SurfaceBrightness(magnitude, diameter1, diameter2 float64) (float64, error) {
	if diameter1 <= 0 {
		return 0, errPositive("diameter1")
	}
	if diameter2 <= 0 {
		return 0, errPositive("diameter2")
	}
	return surfaceBrightness(magnitude, diameter1, diameter2), nil
}

func surfaceBrightness(magnitude, diameter1, diameter2 float64) float64 {
	return magnitude + 2.5*math.Log10(2827.0*(diameter1/60)*(diameter2/60))
}

// ContrastReserve computes the contrast reserve of a target observed through
// a telescope of the given aperture (mm) at the given magnification, under a
// sky of the given SQM brightness (mag/arcsec²). Positive values mean the
// object is detectable; see the package documentation for the conventional
// class boundaries.
//
// Aperture and magnification must be strictly positive. Diameter requirements
// depend on the target's input mode, see [Target].
func ContrastReserve(sqm, aperture, magnification float64, target Target) (float64, error) {
	if err := validateObservation(aperture, magnification, target); err != nil {
		return 0, err
	}
	return contrastReserve(sqm, aperture, magnification, target), nil
}

func validateObservation(aperture, magnification float64, target Target) error {
	if aperture <= 0 {
		return errPositive("aperture")
	}
	if magnification <= 0 {
		return errPositive("magnification")
	}
	if target.SurfaceBrightness == nil {
		// Derived mode needs a measurable extent.
		if target.Diameter1 <= 0 {
			return errPositive("diameter1")
		}
		if target.Diameter2 <= 0 {
			return errPositive("diameter2")
		}
		return nil
	}
	if target.Diameter1 < 0 {
		return &InvalidParameterError{Name: "diameter1", Reason: "must not be negative"}
	}
	if target.Diameter2 < 0 {
		return &InvalidParameterError{Name: "diameter2", Reason: "must not be negative"}
	}
	return nil
}

// contrastReserve assumes validated inputs.
func contrastReserve(sqm, aperture, magnification float64, target Target) float64 {
	apertureInches := aperture / mmPerInch

	// Sky background brightness at minimum useful magnification, then dimmed
	// by the actual magnification (exit pupil shrinks as magnification grows).
	sbb := sqm - 5*math.Log10(2.833*apertureInches) + 5*math.Log10(magnification)

	var logObjectContrast float64
	if target.SurfaceBrightness != nil {
		// 8.89 = 2.5*log10(3600) converts mag/arcmin² to mag/arcsec².
		logObjectContrast = -0.4 * (*target.SurfaceBrightness + 8.89 - sqm)
	} else {
		logObjectContrast = -0.4 * (surfaceBrightness(target.Magnitude, target.Diameter1, target.Diameter2) - sqm)
	}

	// Apparent size through the eyepiece, in arcminutes along the minor axis.
	minAxis := math.Min(target.Diameter1, target.Diameter2) / 60.0
	apparentSize := magnification * minAxis

	return logObjectContrast - logThresholdContrast(sbb, apparentSize)
}

// OptimalDetectionMagnification evaluates the contrast reserve at every
// candidate magnification and returns the candidate that maximizes it. When
// several candidates tie for the maximum, the earliest one in the slice wins;
// the selection is stable and order-preserving.
//
// The candidate slice must be non-empty and contain only positive values.
func OptimalDetectionMagnification(sqm, aperture float64, target Target, magnifications []float64) (float64, error) {
	if len(magnifications) == 0 {
		return 0, &InvalidParameterError{Name: "magnifications", Reason: "must not be empty"}
	}
	for _, m := range magnifications {
		if err := validateObservation(aperture, m, target); err != nil {
			return 0, err
		}
	}

	best := magnifications[0]
	bestContrast := math.Inf(-1)
	for _, m := range magnifications {
		if c := contrastReserve(sqm, aperture, m, target); c > bestContrast {
			bestContrast = c
			best = m
		}
	}
	return best, nil
}
