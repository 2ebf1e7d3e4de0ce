package bind

// ResolvePath walks a dot-split path member by member from root. Resolution
// short-circuits to absent as soon as the current value is nil, is not
// member-addressable, or lacks the named member; no error is raised for a
// missing intermediate. Pure: no side effects, no caching.
func ResolvePath(root Value, path []string) (Value, bool) {
	cur := root
	for _, segment := range path {
		if cur == nil {
			return nil, false
		}
		obj, ok := cur.(Object)
		if !ok {
			return nil, false
		}
		v, ok := obj.Get(segment)
		if !ok {
			return nil, false
		}
		cur = v
	}
	if cur == nil {
		return nil, false
	}
	return cur, true
}
