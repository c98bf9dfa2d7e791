package engine

// Normalize produces the canonical asset table the classifier consumes.
// Rows without an asset_id are dropped (they cannot participate in any
// downstream join), duplicate IDs keep the first occurrence, and the
// optional findings table is left-joined on asset_id.
//
// A matched finding can only raise sensitive_found: the merge ORs the
// finding into the asset's prior value, so a stale "false" in the DLP
// export never clears a flag already set on the inventory. Assets with
// no matching finding keep their prior value.
func Normalize(assets []Asset, findings []SensitiveFinding) []Asset {
	byID := make(map[string]bool, len(findings))
	for _, f := range findings {
		if f.AssetID == "" {
			continue
		}
		byID[f.AssetID] = byID[f.AssetID] || f.SensitiveFound
	}

	out := make([]Asset, 0, len(assets))
	seen := make(map[string]struct{}, len(assets))
	for _, a := range assets {
		if a.AssetID == "" {
			continue
		}
		if _, dup := seen[a.AssetID]; dup {
			continue
		}
		seen[a.AssetID] = struct{}{}

		if v, ok := byID[a.AssetID]; ok {
			a.SensitiveFound = a.SensitiveFound || v
		}
		out = append(out, a)
	}
	return out
}
