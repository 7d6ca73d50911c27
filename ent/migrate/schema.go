// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DeliveryRecordsColumns holds the columns for the "delivery_records" table.
	DeliveryRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "recipient_id", Type: field.TypeString},
		{Name: "is_read", Type: field.TypeBool, Default: false},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
		{Name: "delivered_via", Type: field.TypeEnum, Enums: []string{"INITIAL_SYNC", "LIVE_PUSH"}},
		{Name: "instance_id", Type: field.TypeString},
	}
	// DeliveryRecordsTable holds the schema information for the "delivery_records" table.
	DeliveryRecordsTable = &schema.Table{
		Name:       "delivery_records",
		Columns:    DeliveryRecordsColumns,
		PrimaryKey: []*schema.Column{DeliveryRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "delivery_records_notification_instances_deliveries",
				Columns:    []*schema.Column{DeliveryRecordsColumns[6]},
				RefColumns: []*schema.Column{NotificationInstancesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "deliveryrecord_instance_id_recipient_id",
				Unique:  true,
				Columns: []*schema.Column{DeliveryRecordsColumns[6], DeliveryRecordsColumns[2]},
			},
			{
				Name:    "deliveryrecord_recipient_id_is_read",
				Unique:  false,
				Columns: []*schema.Column{DeliveryRecordsColumns[2], DeliveryRecordsColumns[3]},
			},
			{
				Name:    "deliveryrecord_recipient_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{DeliveryRecordsColumns[2], DeliveryRecordsColumns[1]},
			},
		},
	}
	// DepartmentsColumns holds the columns for the "departments" table.
	DepartmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
	}
	// DepartmentsTable holds the schema information for the "departments" table.
	DepartmentsTable = &schema.Table{
		Name:       "departments",
		Columns:    DepartmentsColumns,
		PrimaryKey: []*schema.Column{DepartmentsColumns[0]},
	}
	// GroupsColumns holds the columns for the "groups" table.
	GroupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
	}
	// GroupsTable holds the schema information for the "groups" table.
	GroupsTable = &schema.Table{
		Name:       "groups",
		Columns:    GroupsColumns,
		PrimaryKey: []*schema.Column{GroupsColumns[0]},
	}
	// MembersColumns holds the columns for the "members" table.
	MembersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "display_name", Type: field.TypeString, Size: 255},
		{Name: "member_type", Type: field.TypeString},
		{Name: "department_id", Type: field.TypeString, Nullable: true},
	}
	// MembersTable holds the schema information for the "members" table.
	MembersTable = &schema.Table{
		Name:       "members",
		Columns:    MembersColumns,
		PrimaryKey: []*schema.Column{MembersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "members_departments_members",
				Columns:    []*schema.Column{MembersColumns[5]},
				RefColumns: []*schema.Column{DepartmentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "member_member_type",
				Unique:  false,
				Columns: []*schema.Column{MembersColumns[4]},
			},
		},
	}
	// NotificationDefinitionsColumns holds the columns for the "notification_definitions" table.
	NotificationDefinitionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "message", Type: field.TypeString, Size: 2048},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"REMINDER", "ANNOUNCEMENT"}},
		{Name: "target_kind", Type: field.TypeEnum, Enums: []string{"GROUP", "DEPARTMENT", "MEMBER_TYPE", "ALL", "MEMBER"}},
		{Name: "target_value", Type: field.TypeString, Nullable: true},
		{Name: "scheduled_at", Type: field.TypeTime, Nullable: true},
		{Name: "recurrence", Type: field.TypeEnum, Enums: []string{"NONE", "DAILY", "WEEKLY", "MONTHLY"}},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"PENDING", "ACTIVE", "EXHAUSTED", "CANCELLED"}, Default: "PENDING"},
		{Name: "created_by", Type: field.TypeString},
	}
	// NotificationDefinitionsTable holds the schema information for the "notification_definitions" table.
	NotificationDefinitionsTable = &schema.Table{
		Name:       "notification_definitions",
		Columns:    NotificationDefinitionsColumns,
		PrimaryKey: []*schema.Column{NotificationDefinitionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notificationdefinition_state",
				Unique:  false,
				Columns: []*schema.Column{NotificationDefinitionsColumns[9]},
			},
			{
				Name:    "notificationdefinition_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationDefinitionsColumns[1]},
			},
		},
	}
	// NotificationInstancesColumns holds the columns for the "notification_instances" table.
	NotificationInstancesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "fired_at", Type: field.TypeTime},
		{Name: "recipient_snapshot", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"FIRED", "FAILED"}, Default: "FIRED"},
		{Name: "failure", Type: field.TypeString, Nullable: true, Size: 2048},
		{Name: "definition_id", Type: field.TypeString},
	}
	// NotificationInstancesTable holds the schema information for the "notification_instances" table.
	NotificationInstancesTable = &schema.Table{
		Name:       "notification_instances",
		Columns:    NotificationInstancesColumns,
		PrimaryKey: []*schema.Column{NotificationInstancesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "notification_instances_notification_definitions_instances",
				Columns:    []*schema.Column{NotificationInstancesColumns[6]},
				RefColumns: []*schema.Column{NotificationDefinitionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "notificationinstance_definition_id_fired_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationInstancesColumns[6], NotificationInstancesColumns[2]},
			},
		},
	}
	// GroupMembersColumns holds the columns for the "group_members" table.
	GroupMembersColumns = []*schema.Column{
		{Name: "group_id", Type: field.TypeString},
		{Name: "member_id", Type: field.TypeString},
	}
	// GroupMembersTable holds the schema information for the "group_members" table.
	GroupMembersTable = &schema.Table{
		Name:       "group_members",
		Columns:    GroupMembersColumns,
		PrimaryKey: []*schema.Column{GroupMembersColumns[0], GroupMembersColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "group_members_group_id",
				Columns:    []*schema.Column{GroupMembersColumns[0]},
				RefColumns: []*schema.Column{GroupsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "group_members_member_id",
				Columns:    []*schema.Column{GroupMembersColumns[1]},
				RefColumns: []*schema.Column{MembersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DeliveryRecordsTable,
		DepartmentsTable,
		GroupsTable,
		MembersTable,
		NotificationDefinitionsTable,
		NotificationInstancesTable,
		GroupMembersTable,
	}
)

func init() {
	DeliveryRecordsTable.ForeignKeys[0].RefTable = NotificationInstancesTable
	MembersTable.ForeignKeys[0].RefTable = DepartmentsTable
	NotificationInstancesTable.ForeignKeys[0].RefTable = NotificationDefinitionsTable
	GroupMembersTable.ForeignKeys[0].RefTable = GroupsTable
	GroupMembersTable.ForeignKeys[1].RefTable = MembersTable
}
