package anomaly

import "image"

// pixels is an 8-bit grayscale plane plus per-channel means of the source
// color image, extracted in one pass.
type pixels struct {
	gray  []uint8
	w, h  int
	meanR float64
	meanG float64
	meanB float64
}

func flatten(img image.Image) *pixels {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	p := &pixels{gray: make([]uint8, w*h), w: w, h: h}
	if w == 0 || h == 0 {
		return p
	}
	var sumR, sumG, sumB uint64
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r16, g16, b16, _ := img.At(x, y).RGBA()
			r, g, bl := r16>>8, g16>>8, b16>>8
			sumR += uint64(r)
			sumG += uint64(g)
			sumB += uint64(bl)
			// ITU-R BT.601 luma weights.
			p.gray[i] = uint8((299*r + 587*g + 114*bl) / 1000)
			i++
		}
	}
	n := float64(w * h)
	p.meanR = float64(sumR) / n
	p.meanG = float64(sumG) / n
	p.meanB = float64(sumB) / n
	return p
}

// redShare is the red channel mean over the sum of all channel means.
func (p *pixels) redShare() float64 {
	total := p.meanR + p.meanG + p.meanB
	if total == 0 {
		return 0
	}
	return p.meanR / total
}

// laplacianVariance measures sharpness: the variance of the 4-neighbor
// discrete Laplacian over interior pixels. Few sharp edges means a low
// response and a likely out-of-focus photo.
func laplacianVariance(p *pixels) float64 {
	if p.w < 3 || p.h < 3 {
		return 0
	}
	n := (p.w - 2) * (p.h - 2)
	var sum, sumSq float64
	for y := 1; y < p.h-1; y++ {
		row := y * p.w
		for x := 1; x < p.w-1; x++ {
			c := row + x
			lap := 4*int(p.gray[c]) -
				int(p.gray[c-1]) - int(p.gray[c+1]) -
				int(p.gray[c-p.w]) - int(p.gray[c+p.w])
			f := float64(lap)
			sum += f
			sumSq += f * f
		}
	}
	mean := sum / float64(n)
	return sumSq/float64(n) - mean*mean
}

// mask is a binary foreground plane over the same geometry as pixels.
type mask struct {
	fg   []bool
	w, h int
}

// darkMask thresholds the grayscale plane: pixels strictly below cutoff
// are foreground.
func (p *pixels) darkMask(cutoff uint8) *mask {
	m := &mask{fg: make([]bool, len(p.gray)), w: p.w, h: p.h}
	for i, g := range p.gray {
		m.fg[i] = g < cutoff
	}
	return m
}

func (m *mask) fraction() float64 {
	if len(m.fg) == 0 {
		return 0
	}
	count := 0
	for _, f := range m.fg {
		if f {
			count++
		}
	}
	return float64(count) / float64(len(m.fg))
}

// countLargeRegions counts 4-connected foreground regions whose pixel area
// exceeds minArea. Region pixel count stands in for contour area, which
// matches it for filled regions.
func (m *mask) countLargeRegions(minArea int) int {
	visited := make([]bool, len(m.fg))
	var stack []int
	count := 0
	for start, f := range m.fg {
		if !f || visited[start] {
			continue
		}
		area := 0
		stack = append(stack[:0], start)
		visited[start] = true
		for len(stack) > 0 {
			i := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			area++
			x, y := i%m.w, i/m.w
			if x > 0 && m.fg[i-1] && !visited[i-1] {
				visited[i-1] = true
				stack = append(stack, i-1)
			}
			if x < m.w-1 && m.fg[i+1] && !visited[i+1] {
				visited[i+1] = true
				stack = append(stack, i+1)
			}
			if y > 0 && m.fg[i-m.w] && !visited[i-m.w] {
				visited[i-m.w] = true
				stack = append(stack, i-m.w)
			}
			if y < m.h-1 && m.fg[i+m.w] && !visited[i+m.w] {
				visited[i+m.w] = true
				stack = append(stack, i+m.w)
			}
		}
		if area > minArea {
			count++
		}
	}
	return count
}
