// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DeliveryRecord is the predicate function for deliveryrecord builders.
type DeliveryRecord func(*sql.Selector)

// Department is the predicate function for department builders.
type Department func(*sql.Selector)

// Group is the predicate function for group builders.
type Group func(*sql.Selector)

// Member is the predicate function for member builders.
type Member func(*sql.Selector)

// NotificationDefinition is the predicate function for notificationdefinition builders.
type NotificationDefinition func(*sql.Selector)

// NotificationInstance is the predicate function for notificationinstance builders.
type NotificationInstance func(*sql.Selector)
