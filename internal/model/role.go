package model

// Role is a generic named role.  This table and user_roles form a second,
// explicit role-assignment mechanism that the access-control layer never
// consults: effective roles come from the Doctor/Patient profile probe at
// login.  The join CRUD is exposed for administrative bookkeeping.
type Role struct {
    ID       string `json:"id"`        // roles.id
    RoleName string `json:"role_name"` // roles.role_name
    IsActive bool   `json:"is_active"` // roles.is_active
}

// UserRole assigns a Role to a User.
type UserRole struct {
    ID     string `json:"id"`      // user_roles.id
    UserID string `json:"user_id"` // user_roles.user_id
    RoleID string `json:"role_id"` // user_roles.role_id
}
