// Package dto holds the request and response shapes of the HTTP surface.
package dto

import (
	"github.com/takvimhub/event-calendar-service/internal/domain"

	"github.com/jinzhu/copier"
)

// Entry is the wire form of a calendar entry.
type Entry struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	IsNew       bool   `json:"isNew"`
}

// EntryFromDomain converts a domain entry for the wire.
func EntryFromDomain(e *domain.Entry) *Entry {
	out := &Entry{}
	_ = copier.Copy(out, e)
	out.Date = e.Date.String()
	return out
}

// EntriesFromDomain converts a sorted entry slice for the wire.
func EntriesFromDomain(entries []*domain.Entry) []*Entry {
	out := make([]*Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, EntryFromDomain(e))
	}
	return out
}

// InsertEntryRequest creates one entry in a category.
type InsertEntryRequest struct {
	Category    string `json:"category" form:"category" binding:"required"`
	Date        string `json:"date" form:"date" binding:"required,datekey"`
	Description string `json:"description" form:"description" binding:"required"`
}

// DeleteEntryRequest removes the entry for one date.
type DeleteEntryRequest struct {
	Category string `json:"category" form:"category" binding:"required"`
	Date     string `json:"date" form:"date" binding:"required,datekey"`
}

// MarkSeenRequest clears the new-entry highlight for one date.
type MarkSeenRequest struct {
	Category string `json:"category" form:"category" binding:"required"`
	Date     string `json:"date" form:"date" binding:"required,datekey"`
}

// ListEntriesRequest lists a category's entries in date order.
type ListEntriesRequest struct {
	Category string `json:"category" form:"category" binding:"required"`
}

// CategoryEntries is one category's listing.
type CategoryEntries struct {
	Category string   `json:"category"`
	Entries  []*Entry `json:"entries"`
}
