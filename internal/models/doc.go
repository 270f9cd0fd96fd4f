// Package models defines the core domain models for MoneyQuest.
//
// # Models
//
//   - Session: one bill-split workflow (participants plus the purchases they share)
//   - Purchase: a shared expense inside a session
//   - Expense: a personal expense logged in the expense tracker
//   - Preference: an opaque per-user value, the server-side home of what the
//     browser used to keep in local storage
//
// Users are identified by a plain display name. There are no accounts or
// credentials; the name only scopes which records a request sees.
//
// # Design Principles
//
//  1. Participants are names (strings), unique within one session
//  2. Relationships use ID strings instead of pointers
//  3. Derived values (settlements, budget summaries) are computed on demand and never stored
package models
