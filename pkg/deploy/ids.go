package deploy

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GenerateDeployID builds a deployment id with a random suffix so concurrent
// generations never collide: "dep-{timestamp}-{6hex}".
func GenerateDeployID() string {
	ts := time.Now().UTC().Format("20060102T150405")
	return fmt.Sprintf("dep-%s-%s", ts, uuid.New().String()[:6])
}
