package decision

import (
	"booking-ops-portal/internal/domain/user"
)

// CanDecide reports whether actor may transition rec. owner may be nil when
// the owning resource could not be resolved: unrestricted roles still pass,
// owner-restricted roles are denied because ownership cannot be verified.
func CanDecide(actor user.Actor, rec *Record, owner *Owner) error {
	if rec == nil {
		return ErrAccessDenied
	}
	if actor.Role.Can(user.CapDecideAny) {
		return nil
	}
	if !actor.Role.Can(user.CapDecideOwned) {
		return ErrAccessDenied
	}
	if owner == nil {
		return ErrAccessDenied
	}
	if owner.OrganizerID != actor.ID {
		return ErrAccessDenied
	}
	return nil
}

// OwnerFromRecord resolves the owner of records that carry it directly.
func OwnerFromRecord(rec *Record) *Owner {
	if rec.RequesterID == nil {
		return nil
	}
	return &Owner{
		ResourceID:  rec.ID,
		OrganizerID: *rec.RequesterID,
		Title:       rec.Title,
	}
}
