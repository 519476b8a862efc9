package ingest

import (
	"fmt"
	"strings"
)

const resumePromptTemplate = `You are a smart and structured resume parser.
From the resume text provided below, extract the following information and return it as a valid JSON object:

- full_name: Candidate's full name
- email: Email address
- phone: Contact phone number
- location: City, state, or country
- education: A list of objects, each containing:
    - degree
    - institution
    - graduation_year (if available)
- work_experience: A list of objects, each containing:
    - role
    - company
    - duration (e.g., "Jan 2021 - Mar 2023")
- skills: A list of relevant skills (technical + soft)

Resume:
"%s"

Only return a valid, well-formatted JSON. Do not include any explanation or extra text.`

// BuildResumePrompt renders the structured-extraction prompt for one resume.
func BuildResumePrompt(resumeText string) string {
	return strings.TrimSpace(fmt.Sprintf(resumePromptTemplate, resumeText))
}
