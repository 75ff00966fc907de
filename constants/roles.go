package constants

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleMember  = "member"
)

const (
	CapabilityStatusChangeMain   = "status_change_main"
	CapabilityStatusChangeNormal = "status_change_normal"
)

// RoleCapabilities maps each role to the capabilities it grants. Admins hold
// the main status-change capability and can move any task; everyone else only
// gets the normal progression on tasks they assign or are assigned.
var RoleCapabilities = map[string][]string{
	RoleAdmin:   {CapabilityStatusChangeMain, CapabilityStatusChangeNormal},
	RoleManager: {CapabilityStatusChangeNormal},
	RoleMember:  {CapabilityStatusChangeNormal},
}
