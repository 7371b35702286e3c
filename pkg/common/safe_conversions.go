package common

// Safe integer conversion functions to prevent overflow issues.
// The save format is full of narrow fixed-width counters, so conversions
// saturate at the target bounds instead of wrapping.

// SafeIntToUint8 converts int to uint8, clamping to [0, 255]
func SafeIntToUint8(value int) uint8 {
	if value < 0 {
		return 0
	}
	if value > 255 {
		return 255
	}
	return uint8(value)
}

// SafeIntToUint16 converts int to uint16, clamping to [0, 65535]
func SafeIntToUint16(value int) uint16 {
	if value < 0 {
		return 0
	}
	if value > 65535 {
		return 65535
	}
	return uint16(value)
}

// SafeIntToInt16 converts int to int16, clamping to [-32768, 32767]
func SafeIntToInt16(value int) int16 {
	if value < -32768 {
		return -32768
	}
	if value > 32767 {
		return 32767
	}
	return int16(value)
}

// SafeUint32ToUint8 converts uint32 to uint8, clamping to [0, 255]
func SafeUint32ToUint8(value uint32) uint8 {
	if value > 255 {
		return 255
	}
	return uint8(value)
}

// ClampUint8 clamps a uint8 to an upper bound
func ClampUint8(value, max uint8) uint8 {
	if value > max {
		return max
	}
	return value
}
