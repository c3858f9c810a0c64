package domain

// List mutations mirror what the backend already applied, so they never
// fail: a missing ID is simply a no-op.

func Prepend(list []Activity, created Activity) []Activity {
	out := make([]Activity, 0, len(list)+1)
	out = append(out, created)
	return append(out, list...)
}

// ReplaceByID swaps the matching element in place, preserving order.
func ReplaceByID(list []Activity, updated Activity) []Activity {
	out := make([]Activity, len(list))
	copy(out, list)
	for i := range out {
		if out[i].ID == updated.ID {
			out[i] = updated
		}
	}
	return out
}

func RemoveByID(list []Activity, id string) []Activity {
	out := make([]Activity, 0, len(list))
	for _, a := range list {
		if a.ID != id {
			out = append(out, a)
		}
	}
	return out
}
