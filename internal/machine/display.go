package machine

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Display is the monochrome frame buffer, stored row major.
type Display struct {
	pixels [DisplayWidth * DisplayHeight]bool
}

// Pixel returns whether the pixel at the given position is set.
// Positions outside of the display are reported as unset.
func (d *Display) Pixel(x, y int) bool {
	if x < 0 || x >= DisplayWidth || y < 0 || y >= DisplayHeight {
		return false
	}
	return d.pixels[y*DisplayWidth+x]
}

// Pixels returns a copy of all pixels in row major order.
func (d *Display) Pixels() []bool {
	pixels := make([]bool, len(d.pixels))
	copy(pixels, d.pixels[:])
	return pixels
}

// Clear unsets all pixels.
func (d *Display) Clear() {
	d.pixels = [DisplayWidth * DisplayHeight]bool{}
}

// drawSprite XORs the sprite rows into the display starting at the given
// position. The start position wraps around the display, sprite columns wrap
// horizontally and rows below the bottom edge are clipped. It returns whether
// any set pixel got unset.
func (d *Display) drawSprite(x, y uint8, sprite []byte) bool {
	startX := int(x) % DisplayWidth
	startY := int(y) % DisplayHeight

	var collision bool
	for row, data := range sprite {
		py := startY + row
		if py >= DisplayHeight {
			break
		}

		for col := 0; col < 8; col++ {
			if data&(0x80>>col) == 0 {
				continue
			}

			px := (startX + col) % DisplayWidth
			idx := py*DisplayWidth + px
			if d.pixels[idx] {
				collision = true
			}
			d.pixels[idx] = !d.pixels[idx]
		}
	}
	return collision
}
