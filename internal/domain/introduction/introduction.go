package introduction

import "context"

type Education struct {
	Degree         string `json:"degree"`
	University     string `json:"university"`
	GraduationYear string `json:"graduation_year"`
}

// Introduction is the single profile record shown in the "about" section.
// Pointer fields are optional; a nil field omits its fragment.
type Introduction struct {
	FullName        string    `json:"full_name"`
	Role            string    `json:"role"`
	Education       Education `json:"education"`
	Bio             string    `json:"bio"`
	ProfileImageURL *string   `json:"profile_image_url,omitempty"`
	LinkedInURL     *string   `json:"linkedin_url,omitempty"`
	GitHubURL       *string   `json:"github_url,omitempty"`
}

type Repository interface {
	Get(ctx context.Context) (*Introduction, error)
}
