package gdi

import "fmt"

// Components splits a COLORREF (0x00BBGGRR) into its channels.
func Components(c uint32) (r, g, b uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16)
}

// RGBColor renders a COLORREF as the macro that builds it.
func RGBColor(c uint32) string {
	r, g, b := Components(c)
	switch c >> 24 {
	case 0x00:
		return fmt.Sprintf("RGB(%d, %d, %d)", r, g, b)
	case 0x01:
		return fmt.Sprintf("PALETTEINDEX(%d)", uint16(c))
	case 0x02:
		return fmt.Sprintf("PALETTERGB(%d, %d, %d)", r, g, b)
	}
	return decimal(c)
}
