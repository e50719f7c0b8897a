package user

type Role string

const (
	RoleViewer  Role = "viewer"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleViewer, RoleManager, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Capability is one admin operation guarded at the API boundary.
type Capability string

const (
	CapViewBookings        Capability = "bookings:view"
	CapChangeBookingStatus Capability = "bookings:status"
	CapExportBookings      Capability = "bookings:export"
	CapViewDashboard       Capability = "dashboard:view"
	CapUpdatePricing       Capability = "pricing:update"
	CapManageMaintenance   Capability = "maintenance:manage"
	CapManagePromos        Capability = "promos:manage"
)

func (c Capability) String() string {
	return string(c)
}

var capabilities = map[Role]map[Capability]struct{}{
	RoleViewer: set(
		CapViewBookings,
		CapViewDashboard,
	),
	RoleManager: set(
		CapViewBookings,
		CapViewDashboard,
		CapChangeBookingStatus,
		CapExportBookings,
		CapManageMaintenance,
	),
	RoleAdmin: set(
		CapViewBookings,
		CapViewDashboard,
		CapChangeBookingStatus,
		CapExportBookings,
		CapManageMaintenance,
		CapUpdatePricing,
		CapManagePromos,
	),
}

func (r Role) Can(c Capability) bool {
	_, ok := capabilities[r][c]
	return ok
}

func set(caps ...Capability) map[Capability]struct{} {
	m := make(map[Capability]struct{}, len(caps))
	for _, c := range caps {
		m[c] = struct{}{}
	}
	return m
}
