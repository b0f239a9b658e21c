// Package workflow models the operator review gate in front of report export.
//
// The state machine is owned by the caller (CLI session, UI), never by the
// reconciliation core:
//
//	Unreviewed --Confirm--> Reviewed --Export--> Exported
//	    ^                      |
//	    +-------Edit-----------+
package workflow
