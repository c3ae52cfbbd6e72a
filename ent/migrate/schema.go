// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CommisJobsColumns holds the columns for the "commis_jobs" table.
	CommisJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "task", Type: field.TypeString, Size: 2147483647},
		{Name: "model", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "running", "success", "failed", "timeout"}, Default: "queued"},
		{Name: "tool_call_id", Type: field.TypeString, Nullable: true},
		{Name: "commis_id", Type: field.TypeString, Unique: true},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "concierge_course_id", Type: field.TypeInt, Nullable: true},
		{Name: "owner_id", Type: field.TypeInt},
	}
	// CommisJobsTable holds the schema information for the "commis_jobs" table.
	CommisJobsTable = &schema.Table{
		Name:       "commis_jobs",
		Columns:    CommisJobsColumns,
		PrimaryKey: []*schema.Column{CommisJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "commis_jobs_courses_commis_jobs",
				Columns:    []*schema.Column{CommisJobsColumns[12]},
				RefColumns: []*schema.Column{CoursesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "commis_jobs_users_commis_jobs",
				Columns:    []*schema.Column{CommisJobsColumns[13]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "commisjob_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{CommisJobsColumns[3], CommisJobsColumns[8]},
			},
			{
				Name:    "commisjob_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{CommisJobsColumns[3], CommisJobsColumns[11]},
			},
			{
				Name:    "commisjob_concierge_course_id",
				Unique:  false,
				Columns: []*schema.Column{CommisJobsColumns[12]},
			},
			{
				Name:    "commisjob_owner_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CommisJobsColumns[13], CommisJobsColumns[8]},
			},
		},
	}
	// CoursesColumns holds the columns for the "courses" table.
	CoursesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "thread_id", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "running", "success", "failed", "cancelled", "waiting", "deferred"}, Default: "queued"},
		{Name: "trigger", Type: field.TypeEnum, Enums: []string{"api", "manual", "schedule", "continuation"}, Default: "api"},
		{Name: "correlation_id", Type: field.TypeString},
		{Name: "continuation_of_course_id", Type: field.TypeInt, Nullable: true},
		{Name: "assistant_message_id", Type: field.TypeInt, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "fiche_id", Type: field.TypeInt},
		{Name: "owner_id", Type: field.TypeInt},
	}
	// CoursesTable holds the schema information for the "courses" table.
	CoursesTable = &schema.Table{
		Name:       "courses",
		Columns:    CoursesColumns,
		PrimaryKey: []*schema.Column{CoursesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "courses_fiches_courses",
				Columns:    []*schema.Column{CoursesColumns[12]},
				RefColumns: []*schema.Column{FichesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "courses_users_courses",
				Columns:    []*schema.Column{CoursesColumns[13]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "course_status",
				Unique:  false,
				Columns: []*schema.Column{CoursesColumns[2]},
			},
			{
				Name:    "course_owner_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CoursesColumns[13], CoursesColumns[9]},
			},
			{
				Name:    "course_owner_id_status",
				Unique:  false,
				Columns: []*schema.Column{CoursesColumns[13], CoursesColumns[2]},
			},
			{
				Name:    "course_fiche_id_status",
				Unique:  false,
				Columns: []*schema.Column{CoursesColumns[12], CoursesColumns[2]},
			},
			{
				Name:    "course_correlation_id",
				Unique:  false,
				Columns: []*schema.Column{CoursesColumns[4]},
			},
			{
				Name:    "course_continuation_of_course_id",
				Unique:  false,
				Columns: []*schema.Column{CoursesColumns[5]},
			},
		},
	}
	// CourseEventsColumns holds the columns for the "course_events" table.
	CourseEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "course_id", Type: field.TypeInt},
	}
	// CourseEventsTable holds the schema information for the "course_events" table.
	CourseEventsTable = &schema.Table{
		Name:       "course_events",
		Columns:    CourseEventsColumns,
		PrimaryKey: []*schema.Column{CourseEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "course_events_courses_events",
				Columns:    []*schema.Column{CourseEventsColumns[4]},
				RefColumns: []*schema.Column{CoursesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "courseevent_course_id_id",
				Unique:  false,
				Columns: []*schema.Column{CourseEventsColumns[4], CourseEventsColumns[0]},
			},
			{
				Name:    "courseevent_course_id_event_type",
				Unique:  false,
				Columns: []*schema.Column{CourseEventsColumns[4], CourseEventsColumns[1]},
			},
			{
				Name:    "courseevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{CourseEventsColumns[3]},
			},
		},
	}
	// DeploymentsColumns holds the columns for the "deployments" table.
	DeploymentsColumns = []*schema.Column{
		{Name: "deploy_id", Type: field.TypeString, Unique: true},
		{Name: "image", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "paused", "completed", "failed"}, Default: "pending"},
		{Name: "max_parallel", Type: field.TypeInt, Default: 1},
		{Name: "failure_threshold", Type: field.TypeInt, Default: 1},
		{Name: "failure_count", Type: field.TypeInt, Default: 0},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
	}
	// DeploymentsTable holds the schema information for the "deployments" table.
	DeploymentsTable = &schema.Table{
		Name:       "deployments",
		Columns:    DeploymentsColumns,
		PrimaryKey: []*schema.Column{DeploymentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "deployment_status",
				Unique:  false,
				Columns: []*schema.Column{DeploymentsColumns[2]},
			},
			{
				Name:    "deployment_created_at",
				Unique:  false,
				Columns: []*schema.Column{DeploymentsColumns[7]},
			},
		},
	}
	// EnrollTokensColumns holds the columns for the "enroll_tokens" table.
	EnrollTokensColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "token_hash", Type: field.TypeString, Unique: true},
		{Name: "created_by", Type: field.TypeInt},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "used_at", Type: field.TypeTime, Nullable: true},
		{Name: "runner_id", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EnrollTokensTable holds the schema information for the "enroll_tokens" table.
	EnrollTokensTable = &schema.Table{
		Name:       "enroll_tokens",
		Columns:    EnrollTokensColumns,
		PrimaryKey: []*schema.Column{EnrollTokensColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "enrolltoken_expires_at",
				Unique:  false,
				Columns: []*schema.Column{EnrollTokensColumns[3]},
			},
		},
	}
	// FichesColumns holds the columns for the "fiches" table.
	FichesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "system_instructions", Type: field.TypeString, Size: 2147483647},
		{Name: "task_instructions", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "model", Type: field.TypeString},
		{Name: "allowed_tools", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"idle", "running", "failed"}, Default: "idle"},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "last_run_at", Type: field.TypeTime, Nullable: true},
		{Name: "next_run_at", Type: field.TypeTime, Nullable: true},
		{Name: "is_concierge", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "owner_id", Type: field.TypeInt},
	}
	// FichesTable holds the schema information for the "fiches" table.
	FichesTable = &schema.Table{
		Name:       "fiches",
		Columns:    FichesColumns,
		PrimaryKey: []*schema.Column{FichesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "fiches_users_fiches",
				Columns:    []*schema.Column{FichesColumns[13]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "fiche_owner_id",
				Unique:  false,
				Columns: []*schema.Column{FichesColumns[13]},
			},
			{
				Name:    "fiche_owner_id_is_concierge",
				Unique:  false,
				Columns: []*schema.Column{FichesColumns[13], FichesColumns[10]},
			},
			{
				Name:    "fiche_status",
				Unique:  false,
				Columns: []*schema.Column{FichesColumns[6]},
			},
		},
	}
	// InstancesColumns holds the columns for the "instances" table.
	InstancesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "subdomain", Type: field.TypeString, Unique: true},
		{Name: "container_name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "failed", "deprovisioning"}, Default: "active"},
		{Name: "deploy_ring", Type: field.TypeInt, Default: 0},
		{Name: "deploy_state", Type: field.TypeEnum, Enums: []string{"idle", "pending", "deploying", "succeeded", "failed", "rolled_back", "skipped"}, Default: "idle"},
		{Name: "current_image", Type: field.TypeString, Nullable: true},
		{Name: "last_healthy_image", Type: field.TypeString, Nullable: true},
		{Name: "image_digest", Type: field.TypeString, Nullable: true},
		{Name: "deploy_error", Type: field.TypeString, Nullable: true},
		{Name: "last_health_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "deploy_id", Type: field.TypeString, Nullable: true},
	}
	// InstancesTable holds the schema information for the "instances" table.
	InstancesTable = &schema.Table{
		Name:       "instances",
		Columns:    InstancesColumns,
		PrimaryKey: []*schema.Column{InstancesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "instances_deployments_instances",
				Columns:    []*schema.Column{InstancesColumns[12]},
				RefColumns: []*schema.Column{DeploymentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "instance_status_deploy_ring",
				Unique:  false,
				Columns: []*schema.Column{InstancesColumns[3], InstancesColumns[4]},
			},
			{
				Name:    "instance_deploy_id",
				Unique:  false,
				Columns: []*schema.Column{InstancesColumns[12]},
			},
			{
				Name:    "instance_deploy_state",
				Unique:  false,
				Columns: []*schema.Column{InstancesColumns[5]},
			},
		},
	}
	// RunnersColumns holds the columns for the "runners" table.
	RunnersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"offline", "online", "revoked"}, Default: "offline"},
		{Name: "secret_hash", Type: field.TypeString},
		{Name: "labels", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_seen_at", Type: field.TypeTime, Nullable: true},
	}
	// RunnersTable holds the schema information for the "runners" table.
	RunnersTable = &schema.Table{
		Name:       "runners",
		Columns:    RunnersColumns,
		PrimaryKey: []*schema.Column{RunnersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "runner_status",
				Unique:  false,
				Columns: []*schema.Column{RunnersColumns[2]},
			},
		},
	}
	// RunnerJobsColumns holds the columns for the "runner_jobs" table.
	RunnerJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "command", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "running", "completed", "failed", "cancelled"}, Default: "queued"},
		{Name: "output", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "runner_id", Type: field.TypeInt},
	}
	// RunnerJobsTable holds the schema information for the "runner_jobs" table.
	RunnerJobsTable = &schema.Table{
		Name:       "runner_jobs",
		Columns:    RunnerJobsColumns,
		PrimaryKey: []*schema.Column{RunnerJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "runner_jobs_runners_jobs",
				Columns:    []*schema.Column{RunnerJobsColumns[8]},
				RefColumns: []*schema.Column{RunnersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "runnerjob_status",
				Unique:  false,
				Columns: []*schema.Column{RunnerJobsColumns[2]},
			},
			{
				Name:    "runnerjob_runner_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{RunnerJobsColumns[8], RunnerJobsColumns[5]},
			},
		},
	}
	// ThreadsColumns holds the columns for the "threads" table.
	ThreadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "owner_id", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "fiche_id", Type: field.TypeInt},
	}
	// ThreadsTable holds the schema information for the "threads" table.
	ThreadsTable = &schema.Table{
		Name:       "threads",
		Columns:    ThreadsColumns,
		PrimaryKey: []*schema.Column{ThreadsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "threads_fiches_threads",
				Columns:    []*schema.Column{ThreadsColumns[5]},
				RefColumns: []*schema.Column{FichesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "thread_fiche_id",
				Unique:  false,
				Columns: []*schema.Column{ThreadsColumns[5]},
			},
			{
				Name:    "thread_owner_id",
				Unique:  false,
				Columns: []*schema.Column{ThreadsColumns[1]},
			},
		},
	}
	// ThreadMessagesColumns holds the columns for the "thread_messages" table.
	ThreadMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"system", "user", "assistant", "tool"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "tool_calls", Type: field.TypeJSON, Nullable: true},
		{Name: "tool_call_id", Type: field.TypeString, Nullable: true},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "thread_id", Type: field.TypeInt},
	}
	// ThreadMessagesTable holds the schema information for the "thread_messages" table.
	ThreadMessagesTable = &schema.Table{
		Name:       "thread_messages",
		Columns:    ThreadMessagesColumns,
		PrimaryKey: []*schema.Column{ThreadMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "thread_messages_threads_messages",
				Columns:    []*schema.Column{ThreadMessagesColumns[8]},
				RefColumns: []*schema.Column{ThreadsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "threadmessage_thread_id_id",
				Unique:  false,
				Columns: []*schema.Column{ThreadMessagesColumns[8], ThreadMessagesColumns[0]},
			},
			{
				Name:    "threadmessage_thread_id_tool_call_id",
				Unique:  false,
				Columns: []*schema.Column{ThreadMessagesColumns[8], ThreadMessagesColumns[4]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "is_admin", Type: field.TypeBool, Default: false},
		{Name: "sealed_credentials", Type: field.TypeBytes, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CommisJobsTable,
		CoursesTable,
		CourseEventsTable,
		DeploymentsTable,
		EnrollTokensTable,
		FichesTable,
		InstancesTable,
		RunnersTable,
		RunnerJobsTable,
		ThreadsTable,
		ThreadMessagesTable,
		UsersTable,
	}
)

func init() {
	CommisJobsTable.ForeignKeys[0].RefTable = CoursesTable
	CommisJobsTable.ForeignKeys[1].RefTable = UsersTable
	CoursesTable.ForeignKeys[0].RefTable = FichesTable
	CoursesTable.ForeignKeys[1].RefTable = UsersTable
	CourseEventsTable.ForeignKeys[0].RefTable = CoursesTable
	FichesTable.ForeignKeys[0].RefTable = UsersTable
	InstancesTable.ForeignKeys[0].RefTable = DeploymentsTable
	RunnerJobsTable.ForeignKeys[0].RefTable = RunnersTable
	ThreadsTable.ForeignKeys[0].RefTable = FichesTable
	ThreadMessagesTable.ForeignKeys[0].RefTable = ThreadsTable
}
