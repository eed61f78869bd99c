package model

// Staff records a non-clinical hospital employee linked to a user identity.
//
// Fields:
//  ID          – primary key (UUID).
//  UserID      – identity pointer into users.
//  Name        – employee name.
//  Title       – job title.
//  OfficeNum   – office identifier.
//  BuildingNum – building identifier.
//  IsActive    – employment flag.
type Staff struct {
    ID          string `json:"id"`           // staff.id
    UserID      string `json:"user_id"`      // staff.user_id
    Name        string `json:"name"`         // staff.name
    Title       string `json:"title"`        // staff.title
    OfficeNum   string `json:"office_num"`   // staff.office_num
    BuildingNum string `json:"building_num"` // staff.building_num
    IsActive    bool   `json:"is_active"`    // staff.is_active
}
