package parallel

// rowsPerBand is the height of one unit of work.
const rowsPerBand = 16

// Bands splits [0, height) into half-open row ranges of at most rowsPerBand rows.
func Bands(height int) [][2]int {
	if height <= 0 {
		return nil
	}
	bands := make([][2]int, 0, (height+rowsPerBand-1)/rowsPerBand)
	for y0 := 0; y0 < height; y0 += rowsPerBand {
		bands = append(bands, [2]int{y0, min(y0+rowsPerBand, height)})
	}
	return bands
}

// ForEachRow calls fn(y) for every row in [0, height), spreading bands of rows
// across the pool. fn must only write state owned by row y.
func (p *WorkerPool) ForEachRow(height int, fn func(y int)) {
	bands := Bands(height)
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() {
			for y := b[0]; y < b[1]; y++ {
				fn(y)
			}
		}
	}
	p.ExecuteAll(work)
}
