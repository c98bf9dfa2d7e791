package engine

// Result bundles the four tables one pipeline run produces. Later
// tables are derived from earlier ones; none is mutated after its stage
// returns.
type Result struct {
	Inventory    []Asset
	Scoped       []ScopedAsset
	Evaluations  []Evaluation
	Remediations []Remediation
	Checklist    Checklist
}

// Run executes the full pipeline: normalize, classify, evaluate, plan.
// It is a pure function of its inputs; running it twice on identical
// inputs yields identical tables.
func Run(assets []Asset, findings []SensitiveFinding, checklist Checklist) Result {
	inv := Normalize(assets, findings)
	scoped := ClassifyScope(inv)
	evals := Evaluate(scoped, checklist)
	rem := PlanRemediation(scoped, evals, checklist)
	return Result{
		Inventory:    inv,
		Scoped:       scoped,
		Evaluations:  evals,
		Remediations: rem,
		Checklist:    checklist,
	}
}
