package models

import (
	"gorm.io/gorm"
)

// Submission represents one registered community member.
type Submission struct {
	// gorm.Model gives us ID (uint), CreatedAt, UpdatedAt, DeletedAt
	gorm.Model

	// Personal information
	Name    string `json:"name"`
	Email   string `json:"email" gorm:"uniqueIndex"`
	Phone   string `json:"phone" gorm:"uniqueIndex"` // +91xxxxxxxxxx
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`

	// "business owner", "professional" or "other"
	EmploymentType string `json:"employment_type"`

	// Business details
	BusinessName        string `json:"business_name"`
	BusinessCategory    string `json:"business_category"`
	BusinessDescription string `json:"business_description"`
	BusinessWebsite     string `json:"business_website"`
	BusinessSocialMedia string `json:"business_social_media"`

	// Professional details
	ProfessionalWebsite     string `json:"professional_website"`
	ProfessionalSocialMedia string `json:"professional_social_media"`
	WorkExperience          string `json:"work_experience"`

	// Services & requirements
	ServicesOffered string `json:"services_offered"`
	LookingFor      string `json:"looking_for"`

	AgreeToRules bool `json:"agree_to_rules"`
}

// SubmissionForm is the POST /submit-form payload. The web form sends
// camelCase field names; ToSubmission maps them onto database columns.
type SubmissionForm struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,inphone"`

	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`

	EmploymentType string `json:"employmentType"`

	BusinessName        string `json:"businessName"`
	BusinessCategory    string `json:"businessCategory"`
	BusinessDescription string `json:"businessDescription"`
	BusinessWebsite     string `json:"businessWebsite"`
	BusinessSocialMedia string `json:"businessSocialMedia"`

	ProfessionalWebsite     string `json:"professionalWebsite"`
	ProfessionalSocialMedia string `json:"professionalSocialMedia"`
	WorkExperience          string `json:"workExperience"`

	ServicesOffered string `json:"servicesOffered"`
	LookingFor      string `json:"lookingFor"`

	AgreeToRules bool `json:"agreeToRules"`
}

// ToSubmission maps the externally named form fields to a Submission record.
func (f *SubmissionForm) ToSubmission() *Submission {
	return &Submission{
		Name:                    f.Name,
		Email:                   f.Email,
		Phone:                   f.Phone,
		Address:                 f.Address,
		City:                    f.City,
		State:                   f.State,
		EmploymentType:          f.EmploymentType,
		BusinessName:            f.BusinessName,
		BusinessCategory:        f.BusinessCategory,
		BusinessDescription:     f.BusinessDescription,
		BusinessWebsite:         f.BusinessWebsite,
		BusinessSocialMedia:     f.BusinessSocialMedia,
		ProfessionalWebsite:     f.ProfessionalWebsite,
		ProfessionalSocialMedia: f.ProfessionalSocialMedia,
		WorkExperience:          f.WorkExperience,
		ServicesOffered:         f.ServicesOffered,
		LookingFor:              f.LookingFor,
		AgreeToRules:            f.AgreeToRules,
	}
}

// SubmissionUpdate is the PUT /update-member payload. Email identifies the
// record; every other field is optional, and only the fields present in the
// request are written.
type SubmissionUpdate struct {
	Email string `json:"email" validate:"required,email"`

	Name                *string `json:"name"`
	Phone               *string `json:"phone" validate:"omitempty,inphone"`
	Address             *string `json:"address"`
	City                *string `json:"city"`
	State               *string `json:"state"`
	BusinessName        *string `json:"business_name"`
	BusinessCategory    *string `json:"business_category"`
	BusinessDescription *string `json:"business_description"`
	BusinessWebsite     *string `json:"business_website"`
	BusinessSocialMedia *string `json:"business_social_media"`
	ServicesOffered     *string `json:"services_offered"`
	LookingFor          *string `json:"looking_for"`
}

// Changes returns the column/value pairs actually present in the payload.
func (u *SubmissionUpdate) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	set := func(column string, v *string) {
		if v != nil {
			changes[column] = *v
		}
	}

	set("name", u.Name)
	set("phone", u.Phone)
	set("address", u.Address)
	set("city", u.City)
	set("state", u.State)
	set("business_name", u.BusinessName)
	set("business_category", u.BusinessCategory)
	set("business_description", u.BusinessDescription)
	set("business_website", u.BusinessWebsite)
	set("business_social_media", u.BusinessSocialMedia)
	set("services_offered", u.ServicesOffered)
	set("looking_for", u.LookingFor)

	return changes
}
