// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Comment is the predicate function for comment builders.
type Comment func(*sql.Selector)

// Department is the predicate function for department builders.
type Department func(*sql.Selector)

// Report is the predicate function for report builders.
type Report func(*sql.Selector)

// StatusUpdate is the predicate function for statusupdate builders.
type StatusUpdate func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// Vote is the predicate function for vote builders.
type Vote func(*sql.Selector)
