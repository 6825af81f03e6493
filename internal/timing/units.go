package timing

// SecToNs converts seconds to nanoseconds for display.
func SecToNs(seconds float64) float64 { return 1e9 * seconds }

// SecToMHz converts a period in seconds to a frequency in MHz.
func SecToMHz(seconds float64) float64 { return (1.0 / seconds) / 1e6 }
