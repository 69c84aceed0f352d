package render

import "image/color"

// fillBinaryRGBA converts boolean cell data into RGBA pixels in buf, one
// pixel per cell in row-major order. buf must hold 4*len(cells) bytes.
func fillBinaryRGBA(buf []byte, cells []bool, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, alive := range cells {
		base := i * 4
		if alive {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
