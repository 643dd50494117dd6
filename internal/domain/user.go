package domain

import "time"

// User es el perfil persistido del estudiante, incluyendo los snapshots derivados del motor.
type User struct {
	ID                string          `json:"id"`
	FullName          string          `json:"full_name"`
	Email             string          `json:"email"`
	PasswordHash      string          `json:"-"`
	EducationStage    EducationStage  `json:"education_stage"`
	WeeklyStudyHours  StudyPace       `json:"weekly_study_hours"`
	Subjects          []Subject       `json:"subjects,omitempty"`
	Degree            string          `json:"degree,omitempty"`
	Major             string          `json:"major,omitempty"`
	CGPARange         string          `json:"cgpa_range,omitempty"`
	InterestProfile   InterestProfile `json:"interest_profile,omitempty"`
	SelectedCareerID  string          `json:"selected_career_id,omitempty"`
	SkillGap          *SkillGap       `json:"skill_gap,omitempty"`
	Roadmap           []RoadmapPhase  `json:"roadmap,omitempty"`
	EstimatedTimeline string          `json:"estimated_timeline,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// Subject es una materia cursada (solo etapas escolares).
type Subject struct {
	Name  string `json:"name"`
	Grade string `json:"grade"`
}

// Attributes extrae los atributos gruesos que consume el motor de scoring.
func (u User) Attributes() ProfileAttributes {
	return ProfileAttributes{
		EducationStage: u.EducationStage,
		Major:          u.Major,
	}
}
