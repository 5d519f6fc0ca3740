package scene

import "image"

// uvDebugTextureSize is the side length of the debug texture in pixels.
const uvDebugTextureSize = 8

// UVDebugTexture builds the colorful 8x8 test pattern applied to turbine
// parts: one palette row per scanline, rotated right one color per row.
func UVDebugTexture() *image.RGBA {
	palette := []byte{
		255, 102, 159, 255, 255, 159, 102, 255, 236, 255, 102, 255, 121, 255, 102, 255,
		102, 255, 198, 255, 102, 198, 255, 255, 121, 102, 255, 255, 236, 102, 255, 255,
	}

	img := image.NewRGBA(image.Rect(0, 0, uvDebugTextureSize, uvDebugTextureSize))
	for y := 0; y < uvDebugTextureSize; y++ {
		copy(img.Pix[y*img.Stride:], palette)
		rotateRight(palette, 4)
	}
	return img
}

// rotateRight rotates b right by n bytes in place.
func rotateRight(b []byte, n int) {
	n %= len(b)
	if n == 0 {
		return
	}
	tmp := make([]byte, n)
	copy(tmp, b[len(b)-n:])
	copy(b[n:], b[:len(b)-n])
	copy(b, tmp)
}
