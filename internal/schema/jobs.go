package schema

// Extraction is the basic job record pulled from a document.
var Extraction = Spec{
	Name: "job_description",
	Fields: []Field{
		{Name: "job_title", Kind: String, Required: true, Description: "Job title for the position"},
		{Name: "job_description", Kind: String, Required: true, Description: "Full job description text without any contextual loss"},
		{Name: "industry_name", Kind: String, Required: true, Description: "Industry of the job, e.g. finance, technology, civil, healthcare"},
		{Name: "required_skills", Kind: StringList, Description: "List of required skills for the job"},
		{Name: "min_work_experience", Kind: Int, Description: "Minimum work experience required for the job in years"},
	},
}

// Enhancement is the enriched job record produced from a basic record.
var Enhancement = Spec{
	Name: "enhanced_job_description",
	Fields: []Field{
		{Name: "job_title", Kind: String, Required: true, Description: "Enhanced job title for better clarity"},
		{Name: "job_code", Kind: String, Description: "Job code or requisition ID"},
		{Name: "job_level", Kind: String, Description: "Job level or internal grading"},
		{Name: "department", Kind: String, Description: "Department or business unit"},
		{Name: "job_function", Kind: String, Description: "Function or job category"},

		{Name: "industry_name", Kind: String, Required: true, Description: "Job industry e.g. Technology, Healthcare, Finance"},

		{Name: "contract_duration", Kind: String, Description: "Duration of contract if applicable"},
		{Name: "time_commitment", Kind: String, Description: "Time commitment e.g. Full-time, Part-time"},

		{Name: "role_summary", Kind: String, Required: true, Description: "Expanded overview of the role including purpose and impact"},
		{Name: "responsibilities", Kind: StringList, Required: true, Description: "List of at least 10 responsibilities for the job"},
		{Name: "performance_indicators", Kind: StringList, Required: true, Description: "List of KPIs or performance measurement criteria"},
		{Name: "decision_making", Kind: String, Description: "Decision-making authority in the role"},
		{Name: "stakeholder_interactions", Kind: String, Description: "Key stakeholders the role interacts with"},

		{Name: "required_skills", Kind: StringList, Required: true, Description: "List of required skills for the job"},
		{Name: "required_qualifications", Kind: String, Description: "Required qualifications for the role"},
		{Name: "preferred_qualifications", Kind: String, Description: "Preferred qualifications for the role"},
		{Name: "mandatory_certifications", Kind: String, Description: "Mandatory certifications required"},
		{Name: "legal_eligibility", Kind: String, Description: "Legal requirements for eligibility"},
		{Name: "background_checks", Kind: String, Description: "Required background checks"},
		{Name: "clearance_level", Kind: String, Description: "Required security clearance level"},

		{Name: "hard_skills", Kind: StringList, Description: "Technical skills required"},
		{Name: "soft_skills", Kind: StringList, Description: "Interpersonal skills required"},
		{Name: "domain_expertise", Kind: StringList, Description: "Domain knowledge required"},
		{Name: "methodologies", Kind: StringList, Description: "Methodologies the candidate should know"},
		{Name: "languages", Kind: StringList, Description: "Programming or spoken languages required"},
		{Name: "skills_priority", Kind: StringList, Description: "Priority ranking of required skills"},

		{Name: "min_work_experience", Kind: Int, Description: "Minimum work experience required in years"},

		{Name: "base_salary", Kind: String, Description: "Base salary range"},
		{Name: "bonus_structure", Kind: String, Description: "Bonus or commission details"},
		{Name: "equity_options", Kind: String, Description: "Equity or stock options"},
		{Name: "benefits", Kind: String, Description: "Benefits package details"},
		{Name: "relocation_assistance", Kind: String, Description: "Relocation assistance available"},
		{Name: "visa_sponsorship", Kind: String, Description: "Visa sponsorship availability"},

		{Name: "work_model", Kind: String, Description: "Work model e.g. Remote, Hybrid, On-site"},
		{Name: "work_locations", Kind: String, Description: "Potential work locations"},
		{Name: "travel_requirements", Kind: String, Description: "Required travel percentage"},
		{Name: "shift_type", Kind: String, Description: "Type of shift e.g. Regular, Night shift"},

		{Name: "growth_opportunities", Kind: String, Description: "Career growth possibilities"},
		{Name: "training_development", Kind: String, Description: "Training and development programs"},
		{Name: "mentorship", Kind: String, Description: "Mentorship opportunities"},
		{Name: "succession_planning", Kind: String, Description: "Succession planning details"},
		{Name: "culture_page_link", Kind: String, Description: "Link to company culture page"},
		{Name: "careers_page_link", Kind: String, Description: "Link to company careers page"},
	},
}
