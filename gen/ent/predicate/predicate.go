// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExtractJob is the predicate function for extractjob builders.
type ExtractJob func(*sql.Selector)

// Paystub is the predicate function for paystub builders.
type Paystub func(*sql.Selector)

// PaystubFile is the predicate function for paystubfile builders.
type PaystubFile func(*sql.Selector)
