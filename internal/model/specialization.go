package model

// Specialization is a catalog entry describing a medical discipline.
type Specialization struct {
    ID            string `json:"id"`             // specializations.id
    GeneralTitle  string `json:"general_title"`  // specializations.general_title
    SpecificTitle string `json:"specific_title"` // specializations.specific_title
    IsActive      bool   `json:"is_active"`      // specializations.is_active
}

// DoctorSpecialization joins doctors to specializations.  Pairs are not
// unique at the application layer; assigning the same specialization twice
// yields two rows.
type DoctorSpecialization struct {
    ID               string `json:"id"`                // doctor_specializations.id
    DoctorID         string `json:"doctor_id"`         // doctor_specializations.doctor_id
    SpecializationID string `json:"specialization_id"` // doctor_specializations.specialization_id
}
