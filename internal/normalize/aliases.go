package normalize

// Alias maps an alternate field name onto its canonical name.
type Alias struct {
	From string
	To   string
}

// Aliases is applied in order. Earlier entries win when several aliases
// target the same canonical field.
var Aliases = []Alias{
	{From: "industry", To: "industry_name"},
	{From: "qualifications", To: "required_qualifications"},
	{From: "key_stakeholders", To: "stakeholder_interactions"},
	{From: "decision_making_authority", To: "decision_making"},
	{From: "certifications", To: "mandatory_certifications"},
	{From: "kpis", To: "performance_indicators"},
	{From: "key_metrics", To: "performance_indicators"},
	{From: "work_environment", To: "work_model"},
	{From: "career_development", To: "growth_opportunities"},
	{From: "compensation_framework", To: "base_salary"},

	{From: "summary", To: "role_summary"},
	{From: "duties", To: "responsibilities"},
	{From: "skills", To: "required_skills"},
	{From: "preferred", To: "preferred_qualifications"},
	{From: "technical_skills", To: "hard_skills"},
	{From: "interpersonal_skills", To: "soft_skills"},
	{From: "domain_knowledge", To: "domain_expertise"},
	{From: "experience", To: "min_work_experience"},
	{From: "compensation", To: "base_salary"},
	{From: "bonuses", To: "bonus_structure"},
	{From: "relocation", To: "relocation_assistance"},
	{From: "visa", To: "visa_sponsorship"},
	{From: "locations", To: "work_locations"},
	{From: "travel", To: "travel_requirements"},
	{From: "shifts", To: "shift_type"},
	{From: "training", To: "training_development"},
}

// ResolveAliases copies alias values onto absent canonical names.
// A canonical key that is already present is never overwritten.
func ResolveAliases(rec map[string]any) map[string]any {
	return resolveAliases(rec, Aliases)
}

func resolveAliases(rec map[string]any, table []Alias) map[string]any {
	out := clone(rec)
	for _, a := range table {
		v, ok := out[a.From]
		if !ok {
			continue
		}
		if _, exists := out[a.To]; exists {
			continue
		}
		out[a.To] = v
	}
	return out
}

func clone(rec map[string]any) map[string]any {
	out := make(map[string]any, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out
}
