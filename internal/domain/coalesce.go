package domain

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// StringFromPtrWithDefault returns the first non-nil *string value, or the fallback.
// Unlike CoalesceStr, a non-nil pointer to "" wins over the fallback.
func StringFromPtrWithDefault(fallback string, ptrs ...*string) string {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}
