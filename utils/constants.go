// File: utils/constants.go
package utils

import "time"

// WizardSessionPrefix is the prefix used for Redis wizard session keys.
const WizardSessionPrefix = "wizard:"

// WizardSessionTTL is how long an idle wizard session survives before the
// customer has to start over.
const WizardSessionTTL = 30 * time.Minute
