package models

// Authorization decisions are pure functions over ids and roles so they can
// be tested without a database.

// CanDelete reports whether the actor may delete something owned by ownerID.
// Owners can always delete their own resources; admins can delete anyone's.
// Applies to photos and to user accounts.
func CanDelete(actorID, ownerID uint64, role Role) bool {
	return actorID == ownerID || role == RoleAdmin
}

// CanDeleteComment allows only the comment's author. There is deliberately no
// admin or photo-owner override here.
func CanDeleteComment(actorID, authorID uint64) bool {
	return actorID == authorID
}
