// Package models defines the core domain models for MeetNMeal.
//
// # Session Models
//
// A GroupSession is a short-lived decision session shared by its Members:
//   - GroupSession: identified by a short join code, moves forward through
//     OPEN, COMPUTING, RESULTS_READY, CLOSING and EXPIRED
//   - Member: a participant, identified by an opaque id assigned at join
//   - PreferenceSet: what a member submitted; aggregated, never interpreted
//     by the session layer
//
// # Catalog Models
//
//   - Restaurant: one branch from the restaurant catalog
//   - Recommendation: a Restaurant with its distance and final score
//   - SessionRecord: the archived summary of a finished session
//
// # Design Principles
//
// 1. **Server is the source of truth**: clients only reflect confirmed state
// 2. **Avoid circular references**: members are keyed by id strings
// 3. **Closed event set**: push events are a small typed union (see Event)
package models
