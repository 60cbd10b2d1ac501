package favorite

// Set is an ordered list of product ids without duplicates.
type Set []int64

func (s Set) Contains(id int64) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

// Add appends id unless it is already present.
func (s Set) Add(id int64) Set {
	if s.Contains(id) {
		return s
	}
	return append(s, id)
}

func (s Set) Remove(id int64) Set {
	out := make(Set, 0, len(s))
	for _, v := range s {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// Dedup drops repeated ids, keeping the first occurrence. Lists written by older
// clients may contain duplicates.
func (s Set) Dedup() Set {
	out := make(Set, 0, len(s))
	for _, v := range s {
		out = out.Add(v)
	}
	return out
}
