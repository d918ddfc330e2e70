package model

// Package model defines the domain records mirrored from the Ghumakkad
// backend: users, trips, bookings, place-search results, and status enums.
// Every value is a transient snapshot of server state; the client never owns
// or merges these records, it only re-fetches them.
