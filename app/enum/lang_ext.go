package enum

// IsTarget reports whether the language can be a translation target. Detection only applies to sources.
func (l Lang) IsTarget() bool {
	return l != LangAuto
}

// TargetLangs returns the languages allowed as a translation target.
func TargetLangs() []Lang {
	res := make([]Lang, 0, len(LangValues)-1)
	for _, l := range LangValues {
		if l.IsTarget() {
			res = append(res, l)
		}
	}
	return res
}
