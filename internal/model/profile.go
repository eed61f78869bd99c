package model

// Patient is the role profile marking a user as a patient.  A user with a
// patient profile resolves to role "patient" at login.  IsActive starts
// false and flips to true when the confirmation link is redeemed.
//
// Fields:
//  ID            – primary key (UUID).
//  UserID        – identity pointer into users.
//  MaritalStatus – free-form marital status (optional).
//  IsActive      – account activation flag.
type Patient struct {
    ID            string `json:"id"`             // patients.id
    UserID        string `json:"user_id"`        // patients.user_id
    MaritalStatus string `json:"marital_status"` // patients.marital_status
    IsActive      bool   `json:"is_active"`      // patients.is_active
}

// Doctor is the role profile marking a user as a doctor.  Same activation
// lifecycle as Patient.
//
// Fields:
//  ID           – primary key (UUID).
//  UserID       – identity pointer into users.
//  OfficeNumber – office/room identifier (optional).
//  IsActive     – account activation flag.
type Doctor struct {
    ID           string `json:"id"`            // doctors.id
    UserID       string `json:"user_id"`       // doctors.user_id
    OfficeNumber string `json:"office_number"` // doctors.office_number
    IsActive     bool   `json:"is_active"`     // doctors.is_active
}
