// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CommentsColumns holds the columns for the "comments" table.
	CommentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "updated_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "is_public", Type: field.TypeBool, Default: true},
		{Name: "report_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID, Nullable: true},
	}
	// CommentsTable holds the schema information for the "comments" table.
	CommentsTable = &schema.Table{
		Name:       "comments",
		Columns:    CommentsColumns,
		PrimaryKey: []*schema.Column{CommentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "comments_reports_comments",
				Columns:    []*schema.Column{CommentsColumns[5]},
				RefColumns: []*schema.Column{ReportsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "comments_users_comments",
				Columns:    []*schema.Column{CommentsColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "comment_report_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CommentsColumns[5], CommentsColumns[1]},
			},
		},
	}
	// DepartmentsColumns holds the columns for the "departments" table.
	DepartmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "updated_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "code", Type: field.TypeString, Unique: true, Size: 20},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "categories", Type: field.TypeJSON, Nullable: true},
		{Name: "response_hours", Type: field.TypeFloat64, Default: 24},
		{Name: "resolution_hours", Type: field.TypeFloat64, Default: 168},
		{Name: "escalation_threshold_hours", Type: field.TypeFloat64, Default: 72},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// DepartmentsTable holds the schema information for the "departments" table.
	DepartmentsTable = &schema.Table{
		Name:       "departments",
		Columns:    DepartmentsColumns,
		PrimaryKey: []*schema.Column{DepartmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "department_is_active",
				Unique:  false,
				Columns: []*schema.Column{DepartmentsColumns[10]},
			},
		},
	}
	// ReportsColumns holds the columns for the "reports" table.
	ReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "updated_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "report_number", Type: field.TypeString, Unique: true, Size: 32},
		{Name: "title", Type: field.TypeString, Size: 200},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"roads_transport", "water_sewage", "electricity", "waste_management", "public_safety", "parks_recreation", "street_lighting", "noise_pollution", "air_pollution", "building_violations", "other"}},
		{Name: "subcategory", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}, Default: "medium"},
		{Name: "ai_priority_score", Type: field.TypeFloat64, Default: 50},
		{Name: "longitude", Type: field.TypeFloat64},
		{Name: "latitude", Type: field.TypeFloat64},
		{Name: "street", Type: field.TypeString, Nullable: true, Size: 200},
		{Name: "city", Type: field.TypeString, Size: 100},
		{Name: "state", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "zip_code", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "country", Type: field.TypeString, Size: 100, Default: "USA"},
		{Name: "landmark", Type: field.TypeString, Nullable: true, Size: 200},
		{Name: "media", Type: field.TypeJSON, Nullable: true},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "is_anonymous", Type: field.TypeBool, Default: false},
		{Name: "is_public", Type: field.TypeBool, Default: true},
		{Name: "is_featured", Type: field.TypeBool, Default: false},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"submitted", "validated", "in_progress", "resolved", "rejected", "duplicate"}, Default: "submitted"},
		{Name: "status_changed_at", Type: field.TypeTime},
		{Name: "assigned_department_code", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "is_validated", Type: field.TypeBool, Default: false},
		{Name: "validated_by", Type: field.TypeUUID, Nullable: true},
		{Name: "validated_at", Type: field.TypeTime, Nullable: true},
		{Name: "validation_notes", Type: field.TypeString, Nullable: true},
		{Name: "upvotes", Type: field.TypeInt, Default: 0},
		{Name: "downvotes", Type: field.TypeInt, Default: 0},
		{Name: "total_votes", Type: field.TypeInt, Default: 0},
		{Name: "views", Type: field.TypeInt, Default: 0},
		{Name: "shares", Type: field.TypeInt, Default: 0},
		{Name: "expected_resolution_hours", Type: field.TypeFloat64, Nullable: true},
		{Name: "actual_resolution_hours", Type: field.TypeFloat64, Nullable: true},
		{Name: "is_overdue", Type: field.TypeBool, Default: false},
		{Name: "escalation_level", Type: field.TypeInt, Default: 0},
		{Name: "last_escalated_at", Type: field.TypeTime, Nullable: true},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "resolved_by", Type: field.TypeUUID, Nullable: true},
		{Name: "resolution_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "satisfaction_rating", Type: field.TypeInt, Nullable: true},
		{Name: "duplicate_of_id", Type: field.TypeUUID, Nullable: true},
		{Name: "reporter_id", Type: field.TypeUUID},
	}
	// ReportsTable holds the schema information for the "reports" table.
	ReportsTable = &schema.Table{
		Name:       "reports",
		Columns:    ReportsColumns,
		PrimaryKey: []*schema.Column{ReportsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reports_reports_duplicates",
				Columns:    []*schema.Column{ReportsColumns[44]},
				RefColumns: []*schema.Column{ReportsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "reports_users_reports",
				Columns:    []*schema.Column{ReportsColumns[45]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "report_category_status",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[6], ReportsColumns[23]},
			},
			{
				Name:    "report_status_priority",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[23], ReportsColumns[8]},
			},
			{
				Name:    "report_reporter_id",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[45]},
			},
			{
				Name:    "report_assigned_department_code",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[25]},
			},
			{
				Name:    "report_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[1]},
			},
			{
				Name:    "report_longitude_latitude",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[10], ReportsColumns[11]},
			},
		},
	}
	// StatusUpdatesColumns holds the columns for the "status_updates" table.
	StatusUpdatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"submitted", "validated", "in_progress", "resolved", "rejected", "duplicate"}},
		{Name: "message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "updated_by", Type: field.TypeUUID, Nullable: true},
		{Name: "is_public", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "report_id", Type: field.TypeUUID},
	}
	// StatusUpdatesTable holds the schema information for the "status_updates" table.
	StatusUpdatesTable = &schema.Table{
		Name:       "status_updates",
		Columns:    StatusUpdatesColumns,
		PrimaryKey: []*schema.Column{StatusUpdatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "status_updates_reports_status_updates",
				Columns:    []*schema.Column{StatusUpdatesColumns[6]},
				RefColumns: []*schema.Column{ReportsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "statusupdate_report_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{StatusUpdatesColumns[6], StatusUpdatesColumns[5]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "updated_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "full_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"citizen", "department_staff", "admin"}, Default: "citizen"},
		{Name: "department_code", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "trust_score", Type: field.TypeInt, Default: 100},
		{Name: "points", Type: field.TypeInt, Default: 0},
		{Name: "level", Type: field.TypeInt, Default: 1},
		{Name: "badges", Type: field.TypeJSON, Nullable: true},
		{Name: "streak", Type: field.TypeInt, Default: 0},
		{Name: "last_report_date", Type: field.TypeTime, Nullable: true},
		{Name: "reports_submitted", Type: field.TypeInt, Default: 0},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[5]},
			},
			{
				Name:    "user_department_code",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[6]},
			},
		},
	}
	// VotesColumns holds the columns for the "votes" table.
	VotesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "updated_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "vote_type", Type: field.TypeEnum, Enums: []string{"upvote", "downvote"}},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "report_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// VotesTable holds the schema information for the "votes" table.
	VotesTable = &schema.Table{
		Name:       "votes",
		Columns:    VotesColumns,
		PrimaryKey: []*schema.Column{VotesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "votes_reports_votes",
				Columns:    []*schema.Column{VotesColumns[5]},
				RefColumns: []*schema.Column{ReportsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "votes_users_votes",
				Columns:    []*schema.Column{VotesColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "vote_user_id_report_id",
				Unique:  true,
				Columns: []*schema.Column{VotesColumns[6], VotesColumns[5]},
			},
			{
				Name:    "vote_report_id",
				Unique:  false,
				Columns: []*schema.Column{VotesColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CommentsTable,
		DepartmentsTable,
		ReportsTable,
		StatusUpdatesTable,
		UsersTable,
		VotesTable,
	}
)

func init() {
	CommentsTable.ForeignKeys[0].RefTable = ReportsTable
	CommentsTable.ForeignKeys[1].RefTable = UsersTable
	ReportsTable.ForeignKeys[0].RefTable = ReportsTable
	ReportsTable.ForeignKeys[1].RefTable = UsersTable
	StatusUpdatesTable.ForeignKeys[0].RefTable = ReportsTable
	VotesTable.ForeignKeys[0].RefTable = ReportsTable
	VotesTable.ForeignKeys[1].RefTable = UsersTable
}
