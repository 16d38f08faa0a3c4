package scheduler

import "time"

// DefaultTickInterval is the production tick period
const DefaultTickInterval = 100 * time.Millisecond
