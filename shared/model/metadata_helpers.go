package model

import (
	"lodge/shared/timezone"
)

// NewMetadata returns metadata for a freshly created row.
func NewMetadata() Metadata {
	now := timezone.NowStamp()

	return Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
	}
}
