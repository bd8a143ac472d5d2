package conv

// Ftoa writes f with the given number of decimal places into buf and returns
// the used slice. Intended for telemetry printing (temperatures, ohms), not
// for round-trippable formatting. NaN/Inf render as "?".
// No allocations; no fmt/strconv dependency.
func Ftoa(buf []byte, f float64, decimals int) []byte {
	if len(buf) == 0 {
		return buf[:0]
	}
	if f != f || f > 1e18 || f < -1e18 {
		buf[0] = '?'
		return buf[:1]
	}
	neg := f < 0
	if neg {
		f = -f
	}
	scale := int64(1)
	for i := 0; i < decimals; i++ {
		scale *= 10
	}
	// Round half away from zero at the last kept decimal.
	n := int64(f*float64(scale) + 0.5)
	ip := n / scale
	fp := n % scale

	var tmp [24]byte
	out := buf[:0]
	if neg {
		out = append(out, '-')
	}
	out = append(out, Itoa(tmp[:], ip)...)
	if decimals > 0 {
		out = append(out, '.')
		// Zero-pad the fractional part to the requested width.
		frac := Itoa(tmp[:], fp)
		for i := len(frac); i < decimals; i++ {
			out = append(out, '0')
		}
		out = append(out, frac...)
	}
	return out
}
