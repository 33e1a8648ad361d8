package match

// Aliases maps a normalized boundary-side key to the normalized record-side
// key it should be treated as. Entries are curated, never inferred: each one
// covers a known, verified mismatch between the boundary dataset and the
// finance records. Lookups on absent keys fall through to the key itself.
type Aliases map[string]string

// DefaultAliases returns the curated entries shipped with the binary.
func DefaultAliases() Aliases {
	return Aliases{
		// Boundary tiles labeled by a principal town rather than the county
		// that administers it.
		"thika":      "kiambu",
		"hola":       "tanariver",
		"kapenguria": "westpokot",

		// Naming drift between boundary vintages and treasury records.
		"keiyomarakwet": "elgeyomarakwet",
		"tharaka":       "tharakanithi",
	}
}

// Apply returns the record-side key for a normalized boundary key, or the key
// unchanged when no alias exists. The no-entry path is the common case.
func (a Aliases) Apply(key string) string {
	if len(a) == 0 {
		return key
	}
	if mapped, ok := a[key]; ok && mapped != "" {
		return mapped
	}
	return key
}

// Merge returns a new table containing a's entries plus the overrides, with
// override pairs normalized first so operator-supplied files may use raw
// names ("Thika Town: Kiambu County"). Later entries win. The receiver is
// never modified.
func (a Aliases) Merge(overrides map[string]string) Aliases {
	merged := make(Aliases, len(a)+len(overrides))
	for k, v := range a {
		merged[k] = v
	}
	for k, v := range overrides {
		key := Normalize(k)
		val := Normalize(v)
		if key == "" || val == "" {
			continue
		}
		merged[key] = val
	}
	return merged
}
