package slicex

func Count[T any](s []T, f func(t T) bool) int {
	cnt := 0
	for _, v := range s {
		if f(v) {
			cnt += 1
		}
	}
	return cnt
}

func Map[S any, D any](ss []S, f func(S, int) D) []D {
	ret := make([]D, 0, len(ss))
	for k, v := range ss {
		ret = append(ret, f(v, k))
	}
	return ret
}

// Generate calls f n times and collects the results in call order.
func Generate[T any](n int, f func(int) T) []T {
	if n <= 0 {
		return nil
	}
	ret := make([]T, 0, n)
	for i := 0; i < n; i++ {
		ret = append(ret, f(i))
	}
	return ret
}
