package tetris

// DrawList replays fixed random draws, cycling when exhausted.
type DrawList struct {
	draws []float64
	next  int
}

func FixedDraws(draws ...float64) *DrawList {
	return &DrawList{draws: draws}
}

func (d *DrawList) Float64() float64 {
	v := d.draws[d.next%len(d.draws)]
	d.next++
	return v
}

// ResetDefault drops the process-wide session and its options.
func ResetDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultSession = nil
	defaultOptions = nil
}
