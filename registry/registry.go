/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/suparena/ddbcompat"
	"github.com/suparena/ddbcompat/client"
	errs "github.com/suparena/ddbcompat/errors"
	"github.com/suparena/ddbcompat/logger"
)

// Env carries everything a check needs to talk to the target endpoint.
type Env struct {
	// Client is the SDK client for the endpoint under test.
	Client *dynamodb.Client
	// Config is the resolved harness configuration.
	Config client.Config
	// Tables hands out shared pre-provisioned fixture tables.
	Tables *ddbcompat.SharedTables
	// Log is scoped to the running check.
	Log *logger.Logger
}

// CheckFunc is a single compatibility check. A nil return means the
// target behaved like DynamoDB for the probed surface.
type CheckFunc func(ctx context.Context, env *Env) error

// Check is a registered compatibility check.
type Check struct {
	// Name identifies the check in reports and on the command line.
	Name string
	// Description is a one-line summary for listings.
	Description string
	// VerySlow marks checks that take minutes; they only run when
	// explicitly requested.
	VerySlow bool
	// EmulatorOnly marks checks probing behavior real DynamoDB does
	// not expose; they are skipped when the target is AWS.
	EmulatorOnly bool
	// Fn executes the check.
	Fn CheckFunc
}

var (
	mu     sync.RWMutex
	checks = make(map[string]Check)
	order  []string
)

// Register adds a check to the catalog. It panics on a duplicate or
// invalid registration to surface wiring mistakes at startup.
func Register(c Check) {
	if c.Name == "" {
		panic("check registry: check with empty name")
	}
	if c.Fn == nil {
		panic(fmt.Sprintf("check registry: check %q registered with nil Fn", c.Name))
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := checks[c.Name]; exists {
		panic(fmt.Sprintf("check registry: check %q already registered", c.Name))
	}
	checks[c.Name] = c
	order = append(order, c.Name)
}

// Get returns the registered check with the given name.
func Get(name string) (Check, error) {
	mu.RLock()
	defer mu.RUnlock()
	c, ok := checks[name]
	if !ok {
		return Check{}, fmt.Errorf("check %q: %w", name, errs.ErrCheckNotFound)
	}
	return c, nil
}

// List returns every registered check in registration order.
func List() []Check {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Check, 0, len(order))
	for _, name := range order {
		out = append(out, checks[name])
	}
	return out
}
