package domain

// Resume is the structured document extracted from an uploaded resume file.
// Field names match the JSON object the inference service is instructed to
// return; the whole document is stored on the user record as one value.
type Resume struct {
	FullName       string           `json:"full_name"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	Location       string           `json:"location"`
	Education      []Education      `json:"education"`
	WorkExperience []WorkExperience `json:"work_experience"`
	Skills         []string         `json:"skills"`
}

// Education is a single degree entry.
type Education struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	GraduationYear string `json:"graduation_year,omitempty"`
}

// WorkExperience is a single employment entry.
type WorkExperience struct {
	Role     string `json:"role"`
	Company  string `json:"company"`
	Duration string `json:"duration"`
}
