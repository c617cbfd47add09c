package report

// EstimateShipping maps a raw weight cell to a shipping cost. Unparseable
// weights cost nothing. At or below the flat limit the flat rate applies;
// above it the whole charge switches to weight times the per-kg rate, so
// the tariff is discontinuous at the limit.
func EstimateShipping(raw any, p Params) float64 {
	w, ok := toFloat(raw)
	if !ok {
		return 0
	}
	if w <= p.ShippingFlatLimitKG {
		return p.ShippingFlatRate
	}
	return w * p.ShippingPerKGRate
}
