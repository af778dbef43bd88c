package dto

// CreateUserRequest is used by admins to create accounts of any role
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=150"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,password"`
	Role     string `json:"role" binding:"required,oneof=admin coordinator graduate"`
}

// UpdateUserRequest changes account data. An empty password keeps the current one.
type UpdateUserRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=150"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"omitempty,password"`
	Role     string `json:"role" binding:"required,oneof=admin coordinator graduate"`
}

// UpdateUserStatusRequest activates or deactivates an account
type UpdateUserStatusRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// UserListQuery holds the filters of GET /users
type UserListQuery struct {
	Role     string `form:"role" binding:"omitempty,oneof=admin coordinator graduate"`
	Search   string `form:"search" binding:"omitempty,max=100"`
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
}
