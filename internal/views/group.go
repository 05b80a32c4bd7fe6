package views

// group accumulates the values under one key
type group[K comparable] struct {
	key   K
	count int
	sum   float64
}

func (g *group[K]) mean() float64 {
	return g.sum / float64(g.count)
}

// groupBy buckets values by key in first-seen order
func groupBy[T any, K comparable](items []T, key func(T) K, value func(T) float64) []*group[K] {
	index := make(map[K]*group[K])
	var groups []*group[K]
	for _, it := range items {
		k := key(it)
		g, ok := index[k]
		if !ok {
			g = &group[K]{key: k}
			index[k] = g
			groups = append(groups, g)
		}
		g.count++
		g.sum += value(it)
	}
	return groups
}
