package jobdescriptions

import "time"

// DestinationRecord is the flat job form persisted for a company. Field
// names follow the storage schema, not the enhancement schema.
type DestinationRecord struct {
	CompanyID *int64 `json:"company_id"`
	Title     string `json:"title"`

	JobCode     string `json:"job_code"`
	JobLevel    string `json:"job_level"`
	Department  string `json:"department"`
	JobFunction string `json:"job_function"`

	ContractDuration string `json:"contract_duration"`
	TimeCommitment   string `json:"time_commitment"`

	JobSummary              string `json:"job_summary"`
	DayToDayTasks           string `json:"day_to_day_tasks"`
	PerformanceIndicators   string `json:"performance_indicators"`
	DecisionMaking          string `json:"decision_making"`
	StakeholderInteractions string `json:"stakeholder_interactions"`

	RequiredQualifications  string `json:"required_qualifications"`
	PreferredQualifications string `json:"preferred_qualifications"`
	MandatoryCertifications string `json:"mandatory_certifications"`
	LegalEligibility        string `json:"legal_eligibility"`
	BackgroundChecks        string `json:"background_checks"`
	ClearanceLevel          string `json:"clearance_level"`

	HardSkills      string `json:"hard_skills"`
	SoftSkills      string `json:"soft_skills"`
	DomainExpertise string `json:"domain_expertise"`
	Methodologies   string `json:"methodologies"`
	Languages       string `json:"languages"`
	SkillsPriority  string `json:"skills_priority"`

	BaseSalary           string `json:"base_salary"`
	BonusStructure       string `json:"bonus_structure"`
	EquityOptions        string `json:"equity_options"`
	Benefits             string `json:"benefits"`
	RelocationAssistance string `json:"relocation_assistance"`
	VisaSponsorship      string `json:"visa_sponsorship"`

	WorkModel          string `json:"work_model"`
	WorkLocations      string `json:"work_locations"`
	TravelRequirements string `json:"travel_requirements"`
	ShiftType          string `json:"shift_type"`

	GrowthOpportunities string `json:"growth_opportunities"`
	TrainingDevelopment string `json:"training_development"`
	Mentorship          string `json:"mentorship"`
	SuccessionPlanning  string `json:"succession_planning"`
	CulturePageLink     string `json:"culture_page_link"`
	CareersPageLink     string `json:"careers_page_link"`
}

// EnhancementResult pairs the enhanced record with its destination form.
type EnhancementResult struct {
	EnhancedJD  map[string]any    `json:"enhanced_jd"`
	JobFormData DestinationRecord `json:"job_form_data"`
}

// JobDescription is a stored job form.
type JobDescription struct {
	ID          string
	CompanyID   int64
	Title       string
	Description string
	FormData    DestinationRecord
	CreatedAt   time.Time
}
