// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/oikos-sh/brigade/ent/commisjob"
	"github.com/oikos-sh/brigade/ent/course"
	"github.com/oikos-sh/brigade/ent/courseevent"
	"github.com/oikos-sh/brigade/ent/deployment"
	"github.com/oikos-sh/brigade/ent/enrolltoken"
	"github.com/oikos-sh/brigade/ent/fiche"
	"github.com/oikos-sh/brigade/ent/instance"
	"github.com/oikos-sh/brigade/ent/runner"
	"github.com/oikos-sh/brigade/ent/runnerjob"
	"github.com/oikos-sh/brigade/ent/schema"
	"github.com/oikos-sh/brigade/ent/thread"
	"github.com/oikos-sh/brigade/ent/threadmessage"
	"github.com/oikos-sh/brigade/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	commisjobFields := schema.CommisJob{}.Fields()
	_ = commisjobFields
	// commisjobDescCreatedAt is the schema descriptor for created_at field.
	commisjobDescCreatedAt := commisjobFields[9].Descriptor()
	// commisjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	commisjob.DefaultCreatedAt = commisjobDescCreatedAt.Default.(func() time.Time)
	courseFields := schema.Course{}.Fields()
	_ = courseFields
	// courseDescCreatedAt is the schema descriptor for created_at field.
	courseDescCreatedAt := courseFields[10].Descriptor()
	// course.DefaultCreatedAt holds the default value on creation for the created_at field.
	course.DefaultCreatedAt = courseDescCreatedAt.Default.(func() time.Time)
	courseeventFields := schema.CourseEvent{}.Fields()
	_ = courseeventFields
	// courseeventDescCreatedAt is the schema descriptor for created_at field.
	courseeventDescCreatedAt := courseeventFields[3].Descriptor()
	// courseevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	courseevent.DefaultCreatedAt = courseeventDescCreatedAt.Default.(func() time.Time)
	deploymentFields := schema.Deployment{}.Fields()
	_ = deploymentFields
	// deploymentDescMaxParallel is the schema descriptor for max_parallel field.
	deploymentDescMaxParallel := deploymentFields[3].Descriptor()
	// deployment.DefaultMaxParallel holds the default value on creation for the max_parallel field.
	deployment.DefaultMaxParallel = deploymentDescMaxParallel.Default.(int)
	// deploymentDescFailureThreshold is the schema descriptor for failure_threshold field.
	deploymentDescFailureThreshold := deploymentFields[4].Descriptor()
	// deployment.DefaultFailureThreshold holds the default value on creation for the failure_threshold field.
	deployment.DefaultFailureThreshold = deploymentDescFailureThreshold.Default.(int)
	// deploymentDescFailureCount is the schema descriptor for failure_count field.
	deploymentDescFailureCount := deploymentFields[5].Descriptor()
	// deployment.DefaultFailureCount holds the default value on creation for the failure_count field.
	deployment.DefaultFailureCount = deploymentDescFailureCount.Default.(int)
	// deploymentDescCreatedAt is the schema descriptor for created_at field.
	deploymentDescCreatedAt := deploymentFields[7].Descriptor()
	// deployment.DefaultCreatedAt holds the default value on creation for the created_at field.
	deployment.DefaultCreatedAt = deploymentDescCreatedAt.Default.(func() time.Time)
	enrolltokenFields := schema.EnrollToken{}.Fields()
	_ = enrolltokenFields
	// enrolltokenDescCreatedAt is the schema descriptor for created_at field.
	enrolltokenDescCreatedAt := enrolltokenFields[5].Descriptor()
	// enrolltoken.DefaultCreatedAt holds the default value on creation for the created_at field.
	enrolltoken.DefaultCreatedAt = enrolltokenDescCreatedAt.Default.(func() time.Time)
	ficheFields := schema.Fiche{}.Fields()
	_ = ficheFields
	// ficheDescIsConcierge is the schema descriptor for is_concierge field.
	ficheDescIsConcierge := ficheFields[10].Descriptor()
	// fiche.DefaultIsConcierge holds the default value on creation for the is_concierge field.
	fiche.DefaultIsConcierge = ficheDescIsConcierge.Default.(bool)
	// ficheDescCreatedAt is the schema descriptor for created_at field.
	ficheDescCreatedAt := ficheFields[11].Descriptor()
	// fiche.DefaultCreatedAt holds the default value on creation for the created_at field.
	fiche.DefaultCreatedAt = ficheDescCreatedAt.Default.(func() time.Time)
	// ficheDescUpdatedAt is the schema descriptor for updated_at field.
	ficheDescUpdatedAt := ficheFields[12].Descriptor()
	// fiche.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	fiche.DefaultUpdatedAt = ficheDescUpdatedAt.Default.(func() time.Time)
	// fiche.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	fiche.UpdateDefaultUpdatedAt = ficheDescUpdatedAt.UpdateDefault.(func() time.Time)
	instanceFields := schema.Instance{}.Fields()
	_ = instanceFields
	// instanceDescDeployRing is the schema descriptor for deploy_ring field.
	instanceDescDeployRing := instanceFields[3].Descriptor()
	// instance.DefaultDeployRing holds the default value on creation for the deploy_ring field.
	instance.DefaultDeployRing = instanceDescDeployRing.Default.(int)
	// instanceDescCreatedAt is the schema descriptor for created_at field.
	instanceDescCreatedAt := instanceFields[11].Descriptor()
	// instance.DefaultCreatedAt holds the default value on creation for the created_at field.
	instance.DefaultCreatedAt = instanceDescCreatedAt.Default.(func() time.Time)
	runnerFields := schema.Runner{}.Fields()
	_ = runnerFields
	// runnerDescCreatedAt is the schema descriptor for created_at field.
	runnerDescCreatedAt := runnerFields[5].Descriptor()
	// runner.DefaultCreatedAt holds the default value on creation for the created_at field.
	runner.DefaultCreatedAt = runnerDescCreatedAt.Default.(func() time.Time)
	runnerjobFields := schema.RunnerJob{}.Fields()
	_ = runnerjobFields
	// runnerjobDescCreatedAt is the schema descriptor for created_at field.
	runnerjobDescCreatedAt := runnerjobFields[5].Descriptor()
	// runnerjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	runnerjob.DefaultCreatedAt = runnerjobDescCreatedAt.Default.(func() time.Time)
	threadFields := schema.Thread{}.Fields()
	_ = threadFields
	// threadDescCreatedAt is the schema descriptor for created_at field.
	threadDescCreatedAt := threadFields[3].Descriptor()
	// thread.DefaultCreatedAt holds the default value on creation for the created_at field.
	thread.DefaultCreatedAt = threadDescCreatedAt.Default.(func() time.Time)
	// threadDescUpdatedAt is the schema descriptor for updated_at field.
	threadDescUpdatedAt := threadFields[4].Descriptor()
	// thread.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	thread.DefaultUpdatedAt = threadDescUpdatedAt.Default.(func() time.Time)
	// thread.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	thread.UpdateDefaultUpdatedAt = threadDescUpdatedAt.UpdateDefault.(func() time.Time)
	threadmessageFields := schema.ThreadMessage{}.Fields()
	_ = threadmessageFields
	// threadmessageDescCreatedAt is the schema descriptor for created_at field.
	threadmessageDescCreatedAt := threadmessageFields[7].Descriptor()
	// threadmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	threadmessage.DefaultCreatedAt = threadmessageDescCreatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescIsAdmin is the schema descriptor for is_admin field.
	userDescIsAdmin := userFields[2].Descriptor()
	// user.DefaultIsAdmin holds the default value on creation for the is_admin field.
	user.DefaultIsAdmin = userDescIsAdmin.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[4].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
}
