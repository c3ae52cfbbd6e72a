// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CommisJob is the predicate function for commisjob builders.
type CommisJob func(*sql.Selector)

// Course is the predicate function for course builders.
type Course func(*sql.Selector)

// CourseEvent is the predicate function for courseevent builders.
type CourseEvent func(*sql.Selector)

// Deployment is the predicate function for deployment builders.
type Deployment func(*sql.Selector)

// EnrollToken is the predicate function for enrolltoken builders.
type EnrollToken func(*sql.Selector)

// Fiche is the predicate function for fiche builders.
type Fiche func(*sql.Selector)

// Instance is the predicate function for instance builders.
type Instance func(*sql.Selector)

// Runner is the predicate function for runner builders.
type Runner func(*sql.Selector)

// RunnerJob is the predicate function for runnerjob builders.
type RunnerJob func(*sql.Selector)

// Thread is the predicate function for thread builders.
type Thread func(*sql.Selector)

// ThreadMessage is the predicate function for threadmessage builders.
type ThreadMessage func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
