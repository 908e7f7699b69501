// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "scheduled_at", Type: field.TypeTime},
		{Name: "duration_minutes", Type: field.TypeInt, Default: 30},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"SCHEDULED", "COMPLETED", "CANCELLED"}, Default: "SCHEDULED"},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "appointments_patients_appointments",
				Columns:    []*schema.Column{AppointmentsColumns[8]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_patient_id",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[8]},
			},
			{
				Name:    "appointment_patient_id_scheduled_at",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[8], AppointmentsColumns[3]},
			},
		},
	}
	// IntakesColumns holds the columns for the "intakes" table.
	IntakesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"COMPLETED", "FLAGGED"}, Default: "COMPLETED"},
		{Name: "responses", Type: field.TypeJSON},
		{Name: "schema_version", Type: field.TypeInt},
		{Name: "completed_at", Type: field.TypeTime},
		{Name: "intake_link_id", Type: field.TypeUUID, Unique: true},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// IntakesTable holds the schema information for the "intakes" table.
	IntakesTable = &schema.Table{
		Name:       "intakes",
		Columns:    IntakesColumns,
		PrimaryKey: []*schema.Column{IntakesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "intakes_intake_links_intake",
				Columns:    []*schema.Column{IntakesColumns[7]},
				RefColumns: []*schema.Column{IntakeLinksColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "intakes_patients_intakes",
				Columns:    []*schema.Column{IntakesColumns[8]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "intake_patient_id",
				Unique:  false,
				Columns: []*schema.Column{IntakesColumns[8]},
			},
			{
				Name:    "intake_patient_id_status",
				Unique:  false,
				Columns: []*schema.Column{IntakesColumns[8], IntakesColumns[3]},
			},
		},
	}
	// IntakeLinksColumns holds the columns for the "intake_links" table.
	IntakeLinksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "token", Type: field.TypeString, Unique: true, Size: 64},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "is_used", Type: field.TypeBool, Default: false},
		{Name: "used_at", Type: field.TypeTime, Nullable: true},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// IntakeLinksTable holds the schema information for the "intake_links" table.
	IntakeLinksTable = &schema.Table{
		Name:       "intake_links",
		Columns:    IntakeLinksColumns,
		PrimaryKey: []*schema.Column{IntakeLinksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "intake_links_patients_intake_links",
				Columns:    []*schema.Column{IntakeLinksColumns[6]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "intakelink_patient_id",
				Unique:  false,
				Columns: []*schema.Column{IntakeLinksColumns[6]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "date_of_birth", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "patients_users_patients",
				Columns:    []*schema.Column{PatientsColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patient_user_id",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[8]},
			},
		},
	}
	// RefreshTokensColumns holds the columns for the "refresh_tokens" table.
	RefreshTokensColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true, Size: 36},
		{Name: "token_hash", Type: field.TypeString, Size: 64},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// RefreshTokensTable holds the schema information for the "refresh_tokens" table.
	RefreshTokensTable = &schema.Table{
		Name:       "refresh_tokens",
		Columns:    RefreshTokensColumns,
		PrimaryKey: []*schema.Column{RefreshTokensColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "refresh_tokens_users_refresh_tokens",
				Columns:    []*schema.Column{RefreshTokensColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "refreshtoken_user_id",
				Unique:  false,
				Columns: []*schema.Column{RefreshTokensColumns[6]},
			},
		},
	}
	// SummariesColumns holds the columns for the "summaries" table.
	SummariesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "chief_complaint", Type: field.TypeString, Size: 2147483647},
		{Name: "medications", Type: field.TypeJSON},
		{Name: "systems_review", Type: field.TypeJSON},
		{Name: "relevant_history", Type: field.TypeString, Size: 2147483647},
		{Name: "lifestyle", Type: field.TypeString, Size: 2147483647},
		{Name: "red_flags", Type: field.TypeJSON},
		{Name: "has_red_flags", Type: field.TypeBool, Default: false},
		{Name: "red_flag_count", Type: field.TypeInt, Default: 0},
		{Name: "intake_id", Type: field.TypeUUID, Unique: true},
	}
	// SummariesTable holds the schema information for the "summaries" table.
	SummariesTable = &schema.Table{
		Name:       "summaries",
		Columns:    SummariesColumns,
		PrimaryKey: []*schema.Column{SummariesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "summaries_intakes_summary",
				Columns:    []*schema.Column{SummariesColumns[11]},
				RefColumns: []*schema.Column{IntakesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "practice_name", Type: field.TypeString, Size: 255},
		{Name: "title", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_login_attempts", Type: field.TypeInt, Default: 0},
		{Name: "locked_until", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		IntakesTable,
		IntakeLinksTable,
		PatientsTable,
		RefreshTokensTable,
		SummariesTable,
		UsersTable,
	}
)

func init() {
	AppointmentsTable.ForeignKeys[0].RefTable = PatientsTable
	IntakesTable.ForeignKeys[0].RefTable = IntakeLinksTable
	IntakesTable.ForeignKeys[1].RefTable = PatientsTable
	IntakeLinksTable.ForeignKeys[0].RefTable = PatientsTable
	PatientsTable.ForeignKeys[0].RefTable = UsersTable
	RefreshTokensTable.ForeignKeys[0].RefTable = UsersTable
	SummariesTable.ForeignKeys[0].RefTable = IntakesTable
}
