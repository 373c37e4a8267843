package jobdescriptions

import (
	"fmt"

	"jd-backend/internal/normalize"
)

// MapToDestination renames enhanced fields to the destination form. It is
// total: absent or unexpected values map to "" and it never fails. List
// values are joined with newlines. CompanyID is left unset.
func MapToDestination(enhanced map[string]any) DestinationRecord {
	get := func(key string) string {
		return normalize.Text(enhanced[key])
	}

	d := DestinationRecord{
		Title:       get("job_title"),
		JobCode:     get("job_code"),
		JobLevel:    get("job_level"),
		Department:  get("department"),
		JobFunction: get("job_function"),

		ContractDuration: get("contract_duration"),
		TimeCommitment:   get("time_commitment"),

		JobSummary:              get("role_summary"),
		DayToDayTasks:           get("responsibilities"),
		PerformanceIndicators:   get("performance_indicators"),
		DecisionMaking:          get("decision_making"),
		StakeholderInteractions: get("stakeholder_interactions"),

		RequiredQualifications:  get("required_qualifications"),
		PreferredQualifications: get("preferred_qualifications"),
		MandatoryCertifications: get("mandatory_certifications"),
		LegalEligibility:        get("legal_eligibility"),
		BackgroundChecks:        get("background_checks"),
		ClearanceLevel:          get("clearance_level"),

		HardSkills:      get("hard_skills"),
		SoftSkills:      get("soft_skills"),
		DomainExpertise: get("domain_expertise"),
		Methodologies:   get("methodologies"),
		Languages:       get("languages"),
		SkillsPriority:  get("skills_priority"),

		BaseSalary:           get("base_salary"),
		BonusStructure:       get("bonus_structure"),
		EquityOptions:        get("equity_options"),
		Benefits:             get("benefits"),
		RelocationAssistance: get("relocation_assistance"),
		VisaSponsorship:      get("visa_sponsorship"),

		WorkModel:          get("work_model"),
		WorkLocations:      get("work_locations"),
		TravelRequirements: get("travel_requirements"),
		ShiftType:          get("shift_type"),

		GrowthOpportunities: get("growth_opportunities"),
		TrainingDevelopment: get("training_development"),
		Mentorship:          get("mentorship"),
		SuccessionPlanning:  get("succession_planning"),
		CulturePageLink:     get("culture_page_link"),
		CareersPageLink:     get("careers_page_link"),
	}

	if d.RequiredQualifications == "" {
		if years, ok := normalize.Int(enhanced["min_work_experience"]); ok && years > 0 {
			d.RequiredQualifications = fmt.Sprintf("Minimum %d years of relevant experience", years)
		}
	}
	return d
}
