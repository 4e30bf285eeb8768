package structural

// MapObject applies fn to every entry of record and collects the results
// under the same keys, in the same order. The input is never mutated. The
// first error returned by fn aborts the walk and is returned unchanged.
func MapObject[V, W any](record Record[V], fn func(value V, key string) (W, error)) (Record[W], error) {
	out := Record[W]{
		keys:   make([]string, 0, len(record.keys)),
		values: make(map[string]W, len(record.keys)),
	}
	for _, key := range record.keys {
		mapped, err := fn(record.values[key], key)
		if err != nil {
			return Record[W]{}, err
		}
		out.keys = append(out.keys, key)
		out.values[key] = mapped
	}
	return out, nil
}
