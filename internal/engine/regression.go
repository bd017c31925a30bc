package engine

// olsFit is an ordinary least squares fit of a series against its
// index. One utility serves both the moving-average trend and the raw
// score monthly trend so the two produce identical numerics.
type olsFit struct {
	Slope     float64
	Intercept float64
	RSquared  float64
}

func fitOLS(values []float64) olsFit {
	n := len(values)
	if n < 2 {
		return olsFit{}
	}

	var sumX, sumY, sumXY, sumX2 float64
	for i := range values {
		x := float64(i)
		y := values[i]
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}
	denom := (float64(n) * sumX2) - (sumX * sumX)
	if denom == 0 {
		return olsFit{}
	}

	fit := olsFit{}
	fit.Slope = ((float64(n) * sumXY) - (sumX * sumY)) / denom
	fit.Intercept = (sumY - fit.Slope*sumX) / float64(n)

	meanY := sumY / float64(n)
	var ssRes, ssTot float64
	for i := range values {
		predicted := fit.Intercept + fit.Slope*float64(i)
		ssRes += (values[i] - predicted) * (values[i] - predicted)
		ssTot += (values[i] - meanY) * (values[i] - meanY)
	}
	// A flat series leaves R² undefined; report zero confidence.
	if ssTot > 0 {
		fit.RSquared = 1 - ssRes/ssTot
	}
	return fit
}
