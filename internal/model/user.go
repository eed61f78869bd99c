package model

import "time"

// User represents an identity record as stored in the `users` table.  One
// row exists per person regardless of role; the role is implied by the
// existence of a Patient or Doctor profile referencing the user.  The
// password hash is never serialized into API responses.
//
// Fields:
//  ID                 – primary key (UUID).
//  Name               – display name.
//  Email              – unique email address.
//  PhoneNumber        – contact phone number.
//  DateOfBirth        – date of birth.
//  Gender             – free-form gender string.
//  Address            – postal address (optional).
//  IdentityCardNumber – unique national ID (optional, nullable).
//  PasswordHash       – bcrypt hash of the password.
type User struct {
    ID                 string    `json:"id"`                             // users.id
    Name               string    `json:"name"`                           // users.name
    Email              string    `json:"email"`                          // users.email
    PhoneNumber        string    `json:"phone_number"`                   // users.phone_number
    DateOfBirth        time.Time `json:"date_of_birth"`                  // users.date_of_birth
    Gender             string    `json:"gender"`                         // users.gender
    Address            string    `json:"address,omitempty"`              // users.address
    IdentityCardNumber *string   `json:"identity_card_number,omitempty"` // users.identity_card_number (nullable)
    PasswordHash       string    `json:"-"`                              // users.password_hash, never exposed
}
