package vets

import "time"

// Veterinarian es un recurso de plataforma compartido, igual que las
// clínicas. El número de licencia es único.
type Veterinarian struct {
	ID              string
	FirstName       string
	LastName        string
	Specialty       string
	LicenseNumber   string
	Email           string
	YearsExperience *int
	ClinicID        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ListFilter struct {
	Specialty string
	ClinicID  string
	Limit     int
	Offset    int
}
