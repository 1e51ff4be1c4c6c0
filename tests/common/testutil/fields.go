//go:build unit

package testutil

// Field sets key to value on a request map. A nil value removes the key.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}

// Fields applies several mutations in order.
func Fields(muts ...func(map[string]any)) func(m map[string]any) {
	return func(m map[string]any) {
		for _, f := range muts {
			f(m)
		}
	}
}
