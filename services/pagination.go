package services

import "item-notes/models"

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// normalizePage clamps skip/limit the same way for every listing
func normalizePage(skip, limit int) (int, int) {
	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}
	if skip < 0 {
		skip = 0
	}
	return skip, limit
}

// ownerScope returns the owner filter for a listing: superusers see everything.
func ownerScope(requester *models.User) string {
	if requester.IsSuperuser {
		return ""
	}
	return requester.ID
}

func canAccess(requester *models.User, ownerID string) bool {
	return requester.IsSuperuser || requester.ID == ownerID
}
