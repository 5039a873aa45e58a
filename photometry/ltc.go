package photometry

import "math"

// maxLogThreshold clamps the interpolated threshold contrast; beyond this the
// table extrapolation is meaningless.
const maxLogThreshold = 37.0

// ltcAngles holds log10 of the apparent object size in arcminutes for each
// data column of the threshold table.
var ltcAngles = [...]float64{-0.2255, 0.5563, 0.9859, 1.2601, 1.7419, 2.0828, 2.5563}

// ltc is Clark's log threshold contrast table (Blackwell data). Column 0 is
// the sky background brightness in mag/arcsec²; columns 1..7 hold the log
// threshold contrast at the apparent sizes in ltcAngles. The values are fixed
// domain constants.
var ltc = [24][8]float64{
	{4, -0.3769, -1.8064, -2.3368, -2.4601, -2.5469, -2.5610, -2.5660},
	{5, -0.3315, -1.7747, -2.3337, -2.4608, -2.5465, -2.5607, -2.5658},
	{6, -0.2682, -1.7345, -2.3310, -2.4605, -2.5467, -2.5608, -2.5658},
	{7, -0.1982, -1.6851, -2.3140, -2.4572, -2.5481, -2.5615, -2.5665},
	{8, -0.1238, -1.6252, -2.2791, -2.4462, -2.5463, -2.5597, -2.5646},
	{9, -0.0424, -1.5529, -2.2297, -2.4214, -2.5343, -2.5501, -2.5552},
	{10, 0.0498, -1.4655, -2.1659, -2.3763, -2.5047, -2.5269, -2.5333},
	{11, 0.1596, -1.3581, -2.0810, -2.3036, -2.4499, -2.4823, -2.4937},
	{12, 0.2934, -1.2256, -1.9674, -2.1965, -2.3631, -2.4092, -2.4318},
	{13, 0.4557, -1.0673, -1.8186, -2.0531, -2.2445, -2.3083, -2.3491},
	{14, 0.6500, -0.8841, -1.6292, -1.8741, -2.0989, -2.1848, -2.2505},
	{15, 0.8808, -0.6687, -1.3967, -1.6611, -1.9284, -2.0411, -2.1375},
	{16, 1.1558, -0.3952, -1.1264, -1.4176, -1.7300, -1.8727, -2.0034},
	{17, 1.4822, -0.0419, -0.8243, -1.1475, -1.5021, -1.6768, -1.8420},
	{18, 1.8559, 0.3458, -0.4924, -0.8561, -1.2661, -1.4721, -1.6624},
	{19, 2.2669, 0.6960, -0.1315, -0.5510, -1.0562, -1.2892, -1.4827},
	{20, 2.6760, 1.0880, 0.2060, -0.3210, -0.8800, -1.1370, -1.3620},
	{21, 2.7766, 1.2065, 0.3467, -0.1377, -0.7361, -0.9964, -1.2439},
	{22, 2.9304, 1.3821, 0.5353, 0.0328, -0.5605, -0.8606, -1.1187},
	{23, 3.1634, 1.6107, 0.7708, 0.2531, -0.3895, -0.7030, -0.9681},
	{24, 3.4643, 1.9034, 1.0338, 0.4943, -0.2033, -0.5259, -0.8288},
	{25, 3.8211, 2.2564, 1.3265, 0.7605, 0.0172, -0.2992, -0.6394},
	{26, 4.2210, 2.6320, 1.6990, 1.1320, 0.2639, -0.0438, -0.4011},
	{27, 4.6100, 3.0660, 2.1320, 1.5850, 0.5221, 0.1498, -0.1182},
}

// logThresholdContrast interpolates the log threshold contrast for a sky
// background brightness sbb (mag/arcsec²) and an apparent object size ang
// (arcminutes). Interpolation is linear in both log angle and brightness;
// inputs outside the table clamp to the nearest tabulated row or column,
// except above the brightest row where the slope of the last two rows is
// extrapolated.
func logThresholdContrast(sbb, ang float64) float64 {
	logAng := math.Log10(ang)
	intSB := int(sbb)

	rowA := intSB - 4
	if rowA < 0 {
		rowA = 0
	}
	if rowA > len(ltc)-2 {
		rowA = len(ltc) - 2
	}
	rowB := rowA + 1

	i := 0
	for i < len(ltcAngles) && logAng > ltcAngles[i] {
		i++
	}
	i-- // back up to the last column whose angle is below logAng
	if i < 0 {
		i = 0
		logAng = ltcAngles[0]
	}
	if i == len(ltcAngles)-1 {
		i = len(ltcAngles) - 2
	}

	frac := (logAng - ltcAngles[i]) / (ltcAngles[i+1] - ltcAngles[i])
	// Column 0 of ltc is the brightness itself, so data columns are offset by one.
	interpA := ltc[rowA][i+1] + frac*(ltc[rowA][i+2]-ltc[rowA][i+1])
	interpB := ltc[rowB][i+1] + frac*(ltc[rowB][i+2]-ltc[rowB][i+1])

	if sbb < ltc[0][0] {
		sbb = ltc[0][0]
	}

	var threshold float64
	if float64(intSB) >= ltc[len(ltc)-1][0] {
		threshold = interpB + (sbb-ltc[len(ltc)-1][0])*(interpB-interpA)
	} else {
		threshold = interpA + (sbb-float64(intSB))*(interpB-interpA)
	}

	if threshold > maxLogThreshold {
		return maxLogThreshold
	}
	if threshold < -maxLogThreshold {
		return -maxLogThreshold
	}
	return threshold
}
