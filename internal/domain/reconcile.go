package domain

// Reconcile synchronizes current against the canonical id list:
//   - entries whose key is not canonical are dropped,
//   - surviving entries are kept untouched and in their original order,
//   - canonical ids missing from current are appended, in canonical order,
//     as fresh(id).
//
// Duplicate identities in current collapse to the first occurrence and
// duplicate canonical ids are added once, which makes the operation
// idempotent: Reconcile(Reconcile(L, C), C) == Reconcile(L, C).
func Reconcile[T any, K comparable](current []T, canonical []K, key func(T) K, fresh func(K) T) []T {
	wanted := make(map[K]struct{}, len(canonical))
	for _, id := range canonical {
		wanted[id] = struct{}{}
	}

	result := make([]T, 0, len(canonical))
	present := make(map[K]struct{}, len(current))
	for _, item := range current {
		k := key(item)
		if _, ok := wanted[k]; !ok {
			continue
		}
		if _, dup := present[k]; dup {
			continue
		}
		present[k] = struct{}{}
		result = append(result, item)
	}

	for _, id := range canonical {
		if _, ok := present[id]; ok {
			continue
		}
		present[id] = struct{}{}
		result = append(result, fresh(id))
	}

	return result
}
