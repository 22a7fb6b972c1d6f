package rbac

// CheckPermissionRequest asks about the caller's own permission.
type CheckPermissionRequest struct {
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}
