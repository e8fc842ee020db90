// Package models defines the records exchanged with the hotel backend:
// users, departments, staff members, salary records and the derived
// dashboard statistics.
//
// Backend references (a staff member's department, a salary's staff member)
// arrive either as a bare id or as the populated object; Ref decodes both.
package models
