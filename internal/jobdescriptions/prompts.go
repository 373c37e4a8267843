package jobdescriptions

import (
	_ "embed"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var (
	//go:embed prompts/extract_system.txt
	extractSystemTemplate string
	//go:embed prompts/extract_user.txt
	extractUserTemplate string
	//go:embed prompts/enhance_system.txt
	enhanceSystemTemplate string
	//go:embed prompts/enhance_user.txt
	enhanceUserTemplate string
)

func buildExtractPrompts(now time.Time, text string) (string, string) {
	system := strings.NewReplacer("{{DATE}}", now.Format(dateLayout)).Replace(extractSystemTemplate)
	user := strings.NewReplacer("{{TEXT}}", text).Replace(extractUserTemplate)
	return system, user
}

func buildEnhancePrompts(now time.Time, in enhanceInput) (string, string) {
	system := strings.NewReplacer("{{DATE}}", now.Format(dateLayout)).Replace(enhanceSystemTemplate)

	skills := "Not specified"
	if len(in.RequiredSkills) > 0 {
		skills = strings.Join(in.RequiredSkills, ", ")
	}
	user := strings.NewReplacer(
		"{{TITLE}}", in.JobTitle,
		"{{INDUSTRY}}", in.IndustryName,
		"{{EXPERIENCE}}", strconv.Itoa(in.MinWorkExperience),
		"{{DESCRIPTION}}", in.JobDescription,
		"{{SKILLS}}", skills,
	).Replace(enhanceUserTemplate)
	return system, user
}
