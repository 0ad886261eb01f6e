package movavg

// Smooth feeds samples through a fresh window of the given size and returns
// the running average after each sample.
func Smooth[T, A Number](size int, samples []T) ([]T, error) {
	m, err := New[T, A](size)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(samples))
	for i, s := range samples {
		avg, err := m.Feed(s)
		if err != nil {
			return nil, err
		}
		out[i] = avg
	}
	return out, nil
}
