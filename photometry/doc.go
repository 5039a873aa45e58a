// Package photometry computes visual detectability of deep-sky objects.
//
// All functions are pure: they take scalar astronomical parameters, validate
// them up front, and return a derived value with no I/O or shared state.
//
// # Units
//
// Sky brightness is given as a Sky Quality Meter (SQM) reading in magnitudes
// per square arcsecond. Telescope aperture is in millimetres, object
// diameters in arcseconds, and magnification is the dimensionless ratio of
// telescope to eyepiece focal length. Integrated magnitudes follow the usual
// astronomical convention: larger values are fainter. All magnitude formulas
// use base-10 logarithms.
//
// A target's surface brightness can be supplied in two mutually exclusive
// ways, see [Target].
//
// # Contrast reserve
//
// Contrast reserve is the difference between the log contrast of an object
// against the sky background and the log threshold contrast at which the eye
// can just detect an object of that apparent size, both as seen through the
// eyepiece. Threshold contrast comes from Blackwell's laboratory data as
// tabulated by Clark in "Visual Astronomy of the Deep Sky"; the table and its
// interpolation are in ltc.go. The resulting value is conventionally read as:
//
//	< -0.2         not visible
//	-0.2 to 0.1    questionable
//	0.1 to 0.35    difficult
//	0.35 to 0.5    quite difficult
//	0.5 to 1.0     easy
//	> 1.0          very easy
//
// The class labels are a presentation concern and not part of this package.
//
// # Sky darkness scales
//
// Three scales describe the same quantity at different precision: the SQM
// reading (continuous, 0–22), the naked-eye limiting magnitude NELM
// (continuous, 0–6.7) and the Bortle class (discrete, 1 darkest to 9
// brightest). The conversions between them are monotonic, but the Bortle
// class is a bucketed classification: converting through Bortle and back is
// lossy and lands on the bucket's representative value, not the input.
package photometry
