package catalog

// NormalizeFulfillment returns the pickup flag adjusted to what the
// restaurant actually supports. When the selected mode is unavailable and
// the restaurant supports exactly the other one, the mode flips silently;
// a restaurant supporting both or neither leaves the selection alone.
func NormalizeFulfillment(pickup bool, r Restaurant) bool {
	if pickup && !r.Pickup && r.Delivery {
		return false
	}
	if !pickup && !r.Delivery && r.Pickup {
		return true
	}
	return pickup
}
